package chronos

// Scale factors shared by every value type in the package. All of them are
// exact (no floating point) so that split (days, nanoOfDay) arithmetic never
// drifts.
const (
	// NanosecondsPerTick is fixed at 100, matching the historical .NET/BCL
	// tick used by BclCompatibleTicks on Duration.
	NanosecondsPerTick = 100

	TicksPerMillisecond = 10_000
	TicksPerSecond      = TicksPerMillisecond * 1000
	TicksPerMinute      = TicksPerSecond * 60
	TicksPerHour        = TicksPerMinute * 60
	TicksPerDay         = TicksPerHour * 24

	NanosecondsPerMillisecond = NanosecondsPerTick * TicksPerMillisecond
	NanosecondsPerSecond      = NanosecondsPerMillisecond * 1000
	NanosecondsPerMinute      = NanosecondsPerSecond * 60
	NanosecondsPerHour        = NanosecondsPerMinute * 60
	NanosecondsPerDay         = NanosecondsPerHour * 24

	MillisecondsPerSecond = 1000
	MillisecondsPerMinute = MillisecondsPerSecond * 60
	MillisecondsPerHour   = MillisecondsPerMinute * 60
	MillisecondsPerDay    = MillisecondsPerHour * 24

	SecondsPerMinute = 60
	SecondsPerHour   = SecondsPerMinute * 60
	SecondsPerDay    = SecondsPerHour * 24

	MinutesPerHour = 60

	// DaysPerStandardYear and its multi-year cycle siblings are the
	// repeating-unit constants the Gregorian calendar's day<->ymd
	// bijection is built from.
	DaysPerStandardYear = 365
	DaysPer4Years       = DaysPerStandardYear*4 + 1
	DaysPer100Years     = DaysPer4Years*25 - 1
	DaysPer400Years     = DaysPer100Years*4 + 1

	// MaxDays/MinDays bound the day component of Instant and Duration so
	// that (days, nanoOfDay) arithmetic stays representable. This is the
	// "about ±5,879,000 Julian years clamped further by implementation"
	// window spec.md describes, narrowed to a generous +/-10,000 years so
	// the range matches the Gregorian calendar's supported year span. At
	// this bound days*NanosecondsPerDay does not fit an int64; the scalar
	// fast paths stay in int64 only while |days| <= fastPathDays.
	MaxDays = 3_652_059
	MinDays = -3_652_060
)
