package chronos

import "fmt"

// Offset is a UTC displacement stored as a signed whole number of
// seconds. It cannot represent sub-second displacements, and its
// magnitude must stay strictly below 24 hours.
type Offset struct {
	seconds int64
}

// OffsetZero is UTC itself.
var OffsetZero = Offset{}

// FromSecondsOffset constructs an Offset from a signed second count,
// failing with KindOutOfRange if |seconds| >= 86400.
func FromSecondsOffset(seconds int64) (Offset, error) {
	if seconds <= -SecondsPerDay || seconds >= SecondsPerDay {
		return Offset{}, outOfRangef("offset seconds %d out of range (-%d, %d)", seconds, SecondsPerDay, SecondsPerDay)
	}
	return Offset{seconds: seconds}, nil
}

func MustFromSecondsOffset(seconds int64) Offset {
	o, err := FromSecondsOffset(seconds)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// FromMillisecondsOffset divides toward zero.
func FromMillisecondsOffset(ms int64) (Offset, error) {
	return FromSecondsOffset(ms / MillisecondsPerSecond)
}

// FromTicksOffset divides toward zero.
func FromTicksOffset(ticks int64) (Offset, error) {
	return FromSecondsOffset(ticks / TicksPerSecond)
}

// FromNanosecondsOffset divides toward zero.
func FromNanosecondsOffset(nanos int64) (Offset, error) {
	return FromSecondsOffset(nanos / NanosecondsPerSecond)
}

// FromHoursOffset constructs a whole-hour Offset.
func FromHoursOffset(hours int64) (Offset, error) {
	return FromSecondsOffset(hours * SecondsPerHour)
}

// FromHoursAndMinutesOffset constructs an Offset from separate hour and
// minute components. Unlike a combined "HH:mm" parse, the sign must be
// expressed in each argument independently: FromHoursAndMinutesOffset(-5,
// -30) is -05:30, but FromHoursAndMinutesOffset(-5, 30) is -04:30.
func FromHoursAndMinutesOffset(hours, minutes int64) (Offset, error) {
	return FromSecondsOffset(hours*SecondsPerHour + minutes*SecondsPerMinute)
}

// Seconds returns the signed whole-second displacement.
func (o Offset) Seconds() int64 { return o.seconds }

// Milliseconds, Ticks, and Nanoseconds return the offset converted to the
// named unit (exact, since Offset's native resolution is coarser than
// all of them).
func (o Offset) Milliseconds() int64 { return o.seconds * MillisecondsPerSecond }
func (o Offset) Ticks() int64        { return o.seconds * TicksPerSecond }
func (o Offset) Nanoseconds() int64  { return o.seconds * NanosecondsPerSecond }

// IsNegative reports whether the offset is west of UTC.
func (o Offset) IsNegative() bool { return o.seconds < 0 }

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Hours returns the whole-hour component of the offset's absolute value.
func (o Offset) Hours() int64 { return absInt64(o.seconds) / SecondsPerHour }

// Minutes returns the whole-minute-of-hour component of the offset's
// absolute value.
func (o Offset) Minutes() int64 { return (absInt64(o.seconds) / SecondsPerMinute) % MinutesPerHour }

// SecondsComponent returns the whole-second-of-minute component of the
// offset's absolute value (named distinctly from Seconds, which returns
// the full signed value).
func (o Offset) SecondsComponent() int64 { return absInt64(o.seconds) % SecondsPerMinute }

// Negate returns -o.
func (o Offset) Negate() (Offset, error) {
	return FromSecondsOffset(-o.seconds)
}

// Plus returns o + other, failing with KindOutOfRange if the result
// leaves the representable range.
func (o Offset) Plus(other Offset) (Offset, error) {
	return FromSecondsOffset(o.seconds + other.seconds)
}

// Minus returns o - other.
func (o Offset) Minus(other Offset) (Offset, error) {
	return FromSecondsOffset(o.seconds - other.seconds)
}

// Compare orders o relative to other: -1, 0, or 1.
func (o Offset) Compare(other Offset) int {
	switch {
	case o.seconds < other.seconds:
		return -1
	case o.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

func (o Offset) String() string {
	sign := "+"
	if o.IsNegative() {
		sign = "-"
	}
	if o.SecondsComponent() != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, o.Hours(), o.Minutes(), o.SecondsComponent())
	}
	return fmt.Sprintf("%s%02d:%02d", sign, o.Hours(), o.Minutes())
}
