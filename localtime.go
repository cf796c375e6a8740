package chronos

import "fmt"

// LocalTime is a time-of-day with nanosecond precision and no date or
// time-zone component, stored as a nanosecond-of-day in
// [0, NanosecondsPerDay).
type LocalTime struct {
	nanoOfDay int64
}

var midnightLocalTime = LocalTime{}

// Midnight is 00:00:00.
var Midnight = midnightLocalTime

// Noon is 12:00:00.
var Noon = LocalTime{nanoOfDay: NanosecondsPerDay / 2}

// NewLocalTime constructs a LocalTime from hour/minute/second/nanosecond
// components, failing with KindOutOfRange if any component is out of its
// normal range.
func NewLocalTime(hour, minute, second, nanosecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, outOfRangef("hour %d out of range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, outOfRangef("minute %d out of range [0, 59]", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, outOfRangef("second %d out of range [0, 59]", second)
	}
	if nanosecond < 0 || nanosecond >= int(NanosecondsPerSecond) {
		return LocalTime{}, outOfRangef("nanosecond %d out of range [0, %d)", nanosecond, NanosecondsPerSecond)
	}
	nanoOfDay := int64(hour)*NanosecondsPerHour + int64(minute)*NanosecondsPerMinute + int64(second)*NanosecondsPerSecond + int64(nanosecond)
	return LocalTime{nanoOfDay: nanoOfDay}, nil
}

func MustNewLocalTime(hour, minute, second, nanosecond int) LocalTime {
	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// FromNanosecondOfDay constructs a LocalTime directly from a
// nanosecond-of-day value, failing with KindOutOfRange if it is outside
// [0, NanosecondsPerDay).
func FromNanosecondOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		return LocalTime{}, outOfRangef("nanosecond-of-day %d out of range [0, %d)", nanoOfDay, NanosecondsPerDay)
	}
	return LocalTime{nanoOfDay: nanoOfDay}, nil
}

// NanosecondOfDay returns the time's nanosecond-of-day, in
// [0, NanosecondsPerDay).
func (t LocalTime) NanosecondOfDay() int64 { return t.nanoOfDay }

func (t LocalTime) Hour() int        { return int(t.nanoOfDay / NanosecondsPerHour) }
func (t LocalTime) Minute() int      { return int((t.nanoOfDay / NanosecondsPerMinute) % MinutesPerHour) }
func (t LocalTime) Second() int      { return int((t.nanoOfDay / NanosecondsPerSecond) % SecondsPerMinute) }
func (t LocalTime) Millisecond() int { return int((t.nanoOfDay / NanosecondsPerMillisecond) % MillisecondsPerSecond) }
func (t LocalTime) Nanosecond() int  { return int(t.nanoOfDay % NanosecondsPerSecond) }

// PlusNanoseconds, PlusHours, PlusMinutes, and PlusSeconds wrap around
// the 24-hour clock without error; any day-carry is discarded (callers
// wanting the carried day should use LocalDateTime's corresponding
// methods instead, per spec.md §4.5).

func (t LocalTime) PlusNanoseconds(n int64) LocalTime {
	return LocalTime{nanoOfDay: floorMod(t.nanoOfDay+n, NanosecondsPerDay)}
}

func (t LocalTime) PlusSeconds(n int64) LocalTime {
	return t.PlusNanoseconds(n * NanosecondsPerSecond)
}

func (t LocalTime) PlusMinutes(n int64) LocalTime {
	return t.PlusNanoseconds(n * NanosecondsPerMinute)
}

func (t LocalTime) PlusHours(n int64) LocalTime {
	return t.PlusNanoseconds(n * NanosecondsPerHour)
}

// plusNanosecondsWithCarry is the day-carrying variant LocalDateTime uses
// internally: it returns both the wrapped LocalTime and the signed
// number of whole days the addition carried across midnight.
func (t LocalTime) plusNanosecondsWithCarry(n int64) (LocalTime, int64) {
	total := t.nanoOfDay + n
	days := floorDiv(total, NanosecondsPerDay)
	return LocalTime{nanoOfDay: total - days*NanosecondsPerDay}, days
}

// Minus returns the Duration between two times of day, within a single
// day (t - other), which may be negative.
func (t LocalTime) Minus(other LocalTime) Duration {
	d, _ := normalizedDuration(0, t.nanoOfDay-other.nanoOfDay)
	return d
}

// Compare orders t relative to other: -1, 0, or 1.
func (t LocalTime) Compare(other LocalTime) int {
	switch {
	case t.nanoOfDay < other.nanoOfDay:
		return -1
	case t.nanoOfDay > other.nanoOfDay:
		return 1
	default:
		return 0
	}
}

func (t LocalTime) IsBefore(other LocalTime) bool { return t.Compare(other) < 0 }
func (t LocalTime) IsAfter(other LocalTime) bool  { return t.Compare(other) > 0 }
func (t LocalTime) Equal(other LocalTime) bool    { return t.nanoOfDay == other.nanoOfDay }

func (t LocalTime) String() string {
	if t.Nanosecond() == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}
