package chronos

import "fmt"

// Instant represents a point on the UTC timeline, stored as a signed
// offset from the Unix epoch using the same (days, nanoOfDay) split as
// Duration. It carries no time zone or calendar information; combine it
// with a DateTimeZone to obtain local civil values.
type Instant struct {
	days      int64
	nanoOfDay int64
}

// unixEpoch is the Instant representing 1970-01-01T00:00:00Z, i.e. the
// zero value.
var unixEpoch = Instant{}

// MinInstant and MaxInstant bound the representable timeline. They are
// also used, via beforeMinInstant/afterMaxInstant, to represent unbounded
// ZoneInterval edges; those sentinels must never otherwise appear in
// public API output.
var (
	MinInstant = Instant{days: MinDays, nanoOfDay: 0}
	MaxInstant = Instant{days: MaxDays, nanoOfDay: NanosecondsPerDay - 1}
)

// beforeMinInstant and afterMaxInstant are one nanosecond beyond the
// representable range. They stand in for the local start/end of a zone
// interval with an unbounded edge, and for the saturated result of
// plusOffset at the ends of the range.
var (
	beforeMinInstant = Instant{days: MinDays - 1, nanoOfDay: NanosecondsPerDay - 1}
	afterMaxInstant  = Instant{days: MaxDays + 1, nanoOfDay: 0}
)

// FromUnixTimeSeconds returns the Instant n seconds after the Unix epoch.
func FromUnixTimeSeconds(seconds int64) (Instant, error) {
	d, err := normalizedDuration(floorDiv(seconds, SecondsPerDay), floorMod(seconds, SecondsPerDay)*NanosecondsPerSecond)
	if err != nil {
		return Instant{}, err
	}
	return Instant(d), nil
}

// FromUnixTimeMilliseconds returns the Instant n milliseconds after the
// Unix epoch.
func FromUnixTimeMilliseconds(ms int64) (Instant, error) {
	d, err := FromMilliseconds(ms)
	return Instant(d), err
}

// FromUnixTimeTicks returns the Instant n ticks (100ns units) after the
// Unix epoch.
func FromUnixTimeTicks(ticks int64) (Instant, error) {
	d, err := FromTicks(ticks)
	return Instant(d), err
}

// ToUnixTimeSeconds truncates toward negative infinity to the whole
// second count since the Unix epoch.
func (i Instant) ToUnixTimeSeconds() int64 {
	return i.days*SecondsPerDay + i.nanoOfDay/NanosecondsPerSecond
}

// ToUnixTimeMilliseconds truncates toward negative infinity to the whole
// millisecond count since the Unix epoch.
func (i Instant) ToUnixTimeMilliseconds() int64 {
	return i.days*MillisecondsPerDay + i.nanoOfDay/NanosecondsPerMillisecond
}

// ToUnixTimeTicks returns the number of 100ns ticks since the Unix epoch,
// matching Duration.BclCompatibleTicks' overflow behaviour.
func (i Instant) ToUnixTimeTicks() int64 {
	return Duration(i).BclCompatibleTicks()
}

// Plus returns i + d, failing with KindOutOfRange on overflow beyond
// [MinInstant, MaxInstant].
func (i Instant) Plus(d Duration) (Instant, error) {
	sum, err := normalizedDuration(i.days+d.days, i.nanoOfDay+d.nanoOfDay)
	if err != nil {
		return Instant{}, err
	}
	return Instant(sum), nil
}

func (i Instant) MustPlus(d Duration) Instant {
	out, err := i.Plus(d)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Minus returns i - d (an Instant offset backward by d).
func (i Instant) Minus(d Duration) (Instant, error) {
	return i.Plus(d.Negate())
}

func (i Instant) MustMinus(d Duration) Instant {
	out, err := i.Minus(d)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Since returns the elapsed Duration i - other.
func (i Instant) Since(other Instant) (Duration, error) {
	return normalizedDuration(i.days-other.days, i.nanoOfDay-other.nanoOfDay)
}

// plusOffset returns the LocalInstant obtained by shifting i by the given
// Offset. LocalInstant is an internal bridge type; it is never exposed
// directly in public method results other than as the intermediate used
// by zone arithmetic.
func (i Instant) plusOffset(o Offset) localInstant {
	d, err := normalizedDuration(i.days, i.nanoOfDay+int64(o.seconds)*NanosecondsPerSecond)
	if err != nil {
		// Offsets are bounded to +/-24h, so this can only happen at the
		// extreme edges of the representable range; saturate rather than
		// propagate, matching the sentinel-based edge handling used for
		// ZoneInterval bounds.
		if i.days+o.seconds/SecondsPerDay < 0 {
			return localInstant(beforeMinInstant)
		}
		return localInstant(afterMaxInstant)
	}
	return localInstant(d)
}

// Compare orders i relative to other: -1, 0, or 1.
func (i Instant) Compare(other Instant) int {
	return Duration(i).Compare(Duration(other))
}

// IsBefore, IsAfter, and Equal are convenience wrappers around Compare.
func (i Instant) IsBefore(other Instant) bool { return i.Compare(other) < 0 }
func (i Instant) IsAfter(other Instant) bool  { return i.Compare(other) > 0 }
func (i Instant) Equal(other Instant) bool    { return i.Compare(other) == 0 }

func (i Instant) String() string {
	return fmt.Sprintf("Instant(%s)", Duration(i).String())
}

// localInstant is the internal "pretend-UTC" bridge value used only while
// mapping between local civil time and a DateTimeZone's physical
// intervals. It shares Instant's representation but is a distinct type so
// it cannot accidentally leak into the public API.
type localInstant Instant

func (l localInstant) minus(o Offset) Instant {
	d, err := normalizedDuration(l.days, l.nanoOfDay-int64(o.seconds)*NanosecondsPerSecond)
	if err != nil {
		if l.days < 0 {
			return MinInstant
		}
		return MaxInstant
	}
	return Instant(d)
}

func (l localInstant) compare(other localInstant) int {
	return Duration(l).Compare(Duration(other))
}
