package chronos

import (
	"fmt"
	"math"
	"math/big"
)

// Duration represents a signed length of elapsed physical time with
// nanosecond resolution. It is stored as a (days, nanoOfDay) pair rather
// than a single 64-bit nanosecond count, so that it can span a multi-
// millennium range without losing precision at the low end.
//
// The zero value is Duration.Zero. Duration is comparable and orders
// lexicographically on (days, nanoOfDay).
type Duration struct {
	days      int64
	nanoOfDay int64 // always in [0, NanosecondsPerDay)
}

// Zero is the additive identity.
var Zero = Duration{}

// Epsilon is the smallest positive Duration representable: one nanosecond.
var Epsilon = Duration{days: 0, nanoOfDay: 1}

// OneDay is exactly 24 hours.
var OneDay = Duration{days: 1, nanoOfDay: 0}

// OneWeek is exactly seven days.
var OneWeek = Duration{days: 7, nanoOfDay: 0}

// MaxValue and MinValue bound the representable range of Duration (and of
// Instant, which shares this representation).
var (
	MaxValue = Duration{days: MaxDays, nanoOfDay: NanosecondsPerDay - 1}
	MinValue = Duration{days: MinDays, nanoOfDay: 0}
)

func normalizedDuration(days, nanoOfDay int64) (Duration, error) {
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		carry := floorDiv(nanoOfDay, NanosecondsPerDay)
		days += carry
		nanoOfDay -= carry * NanosecondsPerDay
	}
	if days < MinDays || days > MaxDays {
		return Duration{}, outOfRangef("duration day count %d out of range [%d, %d]", days, MinDays, MaxDays)
	}
	return Duration{days: days, nanoOfDay: nanoOfDay}, nil
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}

// Days returns the whole-day component of the duration. Combined with
// NanosecondOfDay it is a lossless representation.
func (d Duration) Days() int64 { return d.days }

// NanosecondOfDay returns the nanosecond-of-day component, always in
// [0, NanosecondsPerDay).
func (d Duration) NanosecondOfDay() int64 { return d.nanoOfDay }

// IsNegative reports whether the duration represents a negative elapsed
// time.
func (d Duration) IsNegative() bool {
	return d.days < 0
}

// Plus returns d + other, normalizing the carry from nanoOfDay into days.
// It fails with KindOutOfRange if the result's day count leaves
// [MinDays, MaxDays].
func (d Duration) Plus(other Duration) (Duration, error) {
	return normalizedDuration(d.days+other.days, d.nanoOfDay+other.nanoOfDay)
}

// MustPlus is Plus, panicking on error. Intended for call sites that have
// already bounded their operands (constants, test fixtures).
func (d Duration) MustPlus(other Duration) Duration {
	return mustDuration(d.Plus(other))
}

// Minus returns d - other.
func (d Duration) Minus(other Duration) (Duration, error) {
	return normalizedDuration(d.days-other.days, d.nanoOfDay-other.nanoOfDay)
}

func (d Duration) MustMinus(other Duration) Duration {
	return mustDuration(d.Minus(other))
}

// Negate returns -d. Per the split representation's invariant, negating
// (days, 0) yields (-days, 0); negating (days, n) with n > 0 yields
// (-days-1, NanosecondsPerDay-n), so that nanoOfDay stays non-negative.
func (d Duration) Negate() Duration {
	if d.nanoOfDay == 0 {
		return Duration{days: -d.days}
	}
	return Duration{days: -d.days - 1, nanoOfDay: NanosecondsPerDay - d.nanoOfDay}
}

// fastPathDays is the largest |days| for which days*NanosecondsPerDay is
// guaranteed to fit an int64 twice over (once for the fast-path multiply,
// once more for a subsequent addition), used to decide whether scalar
// multiply/divide can stay in int64 arithmetic or must fall back to
// big.Int. About 250 years, matching spec.md's "~250 years" fast-path
// threshold.
const fastPathDays = 91_310

func (d Duration) totalNanosecondsInt64() (int64, bool) {
	if d.days > fastPathDays || d.days < -fastPathDays {
		return 0, false
	}
	return d.days*NanosecondsPerDay + d.nanoOfDay, true
}

// MultiplyInt64 returns d * scalar. When the result stays within the
// int64 fast path it is computed directly; otherwise it falls back to
// big.Int arithmetic to avoid silent overflow, per spec.md's scalar
// multiply/divide guarantee.
func (d Duration) MultiplyInt64(scalar int64) (Duration, error) {
	if n, ok := d.totalNanosecondsInt64(); ok {
		if product, ok := mulInt64(n, scalar); ok {
			return fromTotalNanoseconds(big.NewInt(product))
		}
	}
	total := new(big.Int).Mul(d.toBigNanoseconds(), big.NewInt(scalar))
	return fromTotalNanoseconds(total)
}

// mulInt64 multiplies two int64 values, reporting whether the exact
// product also fit in int64 (ok is false on overflow, including the
// MinInt64 * -1 edge case).
func mulInt64(a, b int64) (product int64, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	product = a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// DivideInt64 returns d / scalar, failing with KindDivideByZero if scalar
// is zero.
func (d Duration) DivideInt64(scalar int64) (Duration, error) {
	if scalar == 0 {
		return Duration{}, newError(KindDivideByZero, "division of Duration by zero")
	}
	if n, ok := d.totalNanosecondsInt64(); ok {
		return fromTotalNanoseconds(big.NewInt(n / scalar))
	}
	total := new(big.Int).Quo(d.toBigNanoseconds(), big.NewInt(scalar))
	return fromTotalNanoseconds(total)
}

// DivideFloat64 returns d / scalar as a Duration, failing with
// KindDivideByZero if scalar is zero, and with KindOutOfRange if the
// quotient is NaN, infinite or outside the Duration range.
func (d Duration) DivideFloat64(scalar float64) (Duration, error) {
	if scalar == 0 {
		return Duration{}, newError(KindDivideByZero, "division of Duration by zero")
	}
	return FromNanosecondsFloat64(d.TotalNanoseconds() / scalar)
}

func (d Duration) toBigNanoseconds() *big.Int {
	total := new(big.Int).Mul(big.NewInt(d.days), big.NewInt(NanosecondsPerDay))
	total.Add(total, big.NewInt(d.nanoOfDay))
	return total
}

// ToBigIntegerNanoseconds returns the exact elapsed nanoseconds as a
// big.Int, suitable for lossless round-tripping via FromNanosecondsBigInt.
func (d Duration) ToBigIntegerNanoseconds() *big.Int {
	return d.toBigNanoseconds()
}

func fromTotalNanoseconds(total *big.Int) (Duration, error) {
	dayNanos := big.NewInt(NanosecondsPerDay)
	days, nanoOfDay := new(big.Int), new(big.Int)
	days.DivMod(total, dayNanos, nanoOfDay)
	if !days.IsInt64() {
		return Duration{}, outOfRangef("duration nanoseconds out of range")
	}
	return normalizedDuration(days.Int64(), nanoOfDay.Int64())
}

// FromNanosecondsBigInt builds a Duration from an exact nanosecond count,
// failing with KindOutOfRange if it does not fit [MinValue, MaxValue].
func FromNanosecondsBigInt(nanos *big.Int) (Duration, error) {
	return fromTotalNanoseconds(new(big.Int).Set(nanos))
}

// FromNanosecondsInt64 builds a Duration from an exact nanosecond count.
func FromNanosecondsInt64(nanos int64) (Duration, error) {
	return normalizedDuration(floorDiv(nanos, NanosecondsPerDay), floorMod(nanos, NanosecondsPerDay))
}

// FromNanosecondsFloat64 builds a Duration from a float64 nanosecond
// count. This conversion is explicitly not round-trip precise: float64
// cannot exactly represent every nanosecond count in the supported range.
func FromNanosecondsFloat64(nanos float64) (Duration, error) {
	if math.IsNaN(nanos) || math.IsInf(nanos, 0) {
		return Duration{}, outOfRangef("duration nanoseconds %v is not finite", nanos)
	}
	days := math.Floor(nanos / NanosecondsPerDay)
	nanoOfDay := nanos - days*NanosecondsPerDay
	if days < float64(MinDays)-1 || days > float64(MaxDays)+1 {
		return Duration{}, outOfRangef("duration nanoseconds %v out of range", nanos)
	}
	return normalizedDuration(int64(days), int64(nanoOfDay))
}

// FromDays, FromHours, FromMinutes, FromSeconds, FromMilliseconds, and
// FromTicks construct a Duration from a whole count of the named unit,
// each range-checked against [MinValue, MaxValue].

func FromDays(days int64) (Duration, error) {
	return normalizedDuration(days, 0)
}

func FromHours(hours int64) (Duration, error) {
	return FromNanosecondsBigInt(new(big.Int).Mul(big.NewInt(hours), big.NewInt(NanosecondsPerHour)))
}

func FromMinutes(minutes int64) (Duration, error) {
	return FromNanosecondsBigInt(new(big.Int).Mul(big.NewInt(minutes), big.NewInt(NanosecondsPerMinute)))
}

func FromSeconds(seconds int64) (Duration, error) {
	return FromNanosecondsBigInt(new(big.Int).Mul(big.NewInt(seconds), big.NewInt(NanosecondsPerSecond)))
}

func FromMilliseconds(ms int64) (Duration, error) {
	return FromNanosecondsBigInt(new(big.Int).Mul(big.NewInt(ms), big.NewInt(NanosecondsPerMillisecond)))
}

func FromTicks(ticks int64) (Duration, error) {
	return FromNanosecondsBigInt(new(big.Int).Mul(big.NewInt(ticks), big.NewInt(NanosecondsPerTick)))
}

// TotalDays, TotalHours, TotalMinutes, TotalSeconds, TotalMilliseconds, and
// TotalNanoseconds return the duration's length as a float64 count of the
// named unit, for display and rough comparison purposes; they are lossy
// for large durations. BclCompatibleTicks returns the exact tick
// count, truncated toward zero, overflowing only beyond about 29,000
// years.

func (d Duration) TotalDays() float64 {
	return float64(d.days) + float64(d.nanoOfDay)/NanosecondsPerDay
}

func (d Duration) TotalHours() float64 {
	return d.TotalDays() * 24
}

func (d Duration) TotalMinutes() float64 {
	return d.TotalHours() * 60
}

func (d Duration) TotalSeconds() float64 {
	return d.TotalMinutes() * 60
}

func (d Duration) TotalMilliseconds() float64 {
	return d.TotalSeconds() * 1000
}

func (d Duration) TotalNanoseconds() float64 {
	return float64(d.days)*NanosecondsPerDay + float64(d.nanoOfDay)
}

// BclCompatibleTicks returns the duration in 100ns ticks, truncated toward
// zero, matching the historical BCL tick representation some
// serialization surfaces still expect. It overflows (wraps) only for
// magnitudes beyond roughly 29,000 years.
func (d Duration) BclCompatibleTicks() int64 {
	ticks := d.days*TicksPerDay + d.nanoOfDay/NanosecondsPerTick
	if d.days < 0 && d.nanoOfDay%NanosecondsPerTick != 0 {
		ticks++
	}
	return ticks
}

// Nanoseconds returns the nanosecond-of-second component in [0, 1e9).
func (d Duration) Nanoseconds() int64 {
	return d.nanoOfDay % NanosecondsPerSecond
}

// Seconds returns the whole-second-of-minute component.
func (d Duration) Seconds() int64 {
	return (d.nanoOfDay / NanosecondsPerSecond) % SecondsPerMinute
}

// Minutes returns the whole-minute-of-hour component.
func (d Duration) Minutes() int64 {
	return (d.nanoOfDay / NanosecondsPerMinute) % MinutesPerHour
}

// Hours returns the whole-hour-of-day component.
func (d Duration) Hours() int64 {
	return d.nanoOfDay / NanosecondsPerHour
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater
// than other, ordering lexicographically on (days, nanoOfDay).
func (d Duration) Compare(other Duration) int {
	switch {
	case d.days != other.days:
		if d.days < other.days {
			return -1
		}
		return 1
	case d.nanoOfDay < other.nanoOfDay:
		return -1
	case d.nanoOfDay > other.nanoOfDay:
		return 1
	default:
		return 0
	}
}

func (d Duration) String() string {
	sign := ""
	days, nanoOfDay := d.days, d.nanoOfDay
	if days < 0 {
		sign = "-"
		days = -days - 1
		nanoOfDay = NanosecondsPerDay - nanoOfDay
		if nanoOfDay == NanosecondsPerDay {
			days++
			nanoOfDay = 0
		}
	}
	hours := nanoOfDay / NanosecondsPerHour
	minutes := (nanoOfDay / NanosecondsPerMinute) % MinutesPerHour
	seconds := (nanoOfDay / NanosecondsPerSecond) % SecondsPerMinute
	nanos := nanoOfDay % NanosecondsPerSecond
	return fmt.Sprintf("%s%d:%02d:%02d:%02d.%09d", sign, days, hours, minutes, seconds, nanos)
}

func mustDuration(d Duration, err error) Duration {
	if err != nil {
		panic(err.Error())
	}
	return d
}
