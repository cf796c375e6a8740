package chronos

import (
	"math"
	"time"
)

// JulianDate is the astronomical Julian day count: the number of days
// (with a fractional part for the time of day) since noon UTC on
// -4712-01-01 (Julian calendar). It is regrounded here on Instant rather
// than time.Time, so it inherits Instant's wider representable range, but
// the conversion formulas are the teacher's: a day count derived from
// elapsed nanoseconds since the Unix epoch plus the fixed Unix-epoch
// Julian date offset.
type JulianDate float64

const (
	julianDaySeconds      = SecondsPerDay
	julianDayNanoseconds  = float64(julianDaySeconds) * 1_000_000_000
	julianDateOfUnixEpoch = 2440587.5
	julianDaysPerCentury  = 36525
	julianEpochJ2000      = 2451545.0
)

// FromInstant returns the JulianDate corresponding to instant.
func FromInstant(instant Instant) JulianDate {
	totalNanos := Duration(instant).TotalNanoseconds()
	return JulianDate(totalNanos/julianDayNanoseconds + julianDateOfUnixEpoch)
}

// NewJulianDateUTC builds a JulianDate from Gregorian-calendar civil
// fields, treated as UTC (there is no time zone in an Instant).
func NewJulianDateUTC(year, month, day, hour, minute, second, nanosecond int) (JulianDate, error) {
	dt, err := NewLocalDateTime(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		return 0, err
	}
	li := dt.toLocalInstant()
	return FromInstant(li.minus(OffsetZero)), nil
}

// ToInstant converts back to an Instant, the inverse of FromInstant.
func (jd JulianDate) ToInstant() (Instant, error) {
	totalNanos := (float64(jd) - julianDateOfUnixEpoch) * julianDayNanoseconds
	d, err := FromNanosecondsFloat64(totalNanos)
	if err != nil {
		return Instant{}, err
	}
	return Instant(d), nil
}

// ToZonedDateTime converts to the equivalent ZonedDateTime in zone.
func (jd JulianDate) ToZonedDateTime(zone DateTimeZone) (ZonedDateTime, error) {
	instant, err := jd.ToInstant()
	if err != nil {
		return ZonedDateTime{}, err
	}
	return NewZonedDateTimeFromInstant(instant, zone), nil
}

// Unix returns the whole-second Unix time corresponding to jd, truncated
// toward negative infinity.
func (jd JulianDate) Unix() (int64, error) {
	instant, err := jd.ToInstant()
	if err != nil {
		return 0, err
	}
	return instant.ToUnixTimeSeconds(), nil
}

// UnixNano returns the Unix time in nanoseconds corresponding to jd,
// mirroring the teacher's UnixNano. Unlike the teacher's version, which
// silently produces a meaningless result once the nanosecond count
// overflows an int64 (outside roughly 1678-2262), this one reports the
// overflow as a KindOutOfRange error instead of returning garbage.
func (jd JulianDate) UnixNano() (int64, error) {
	instant, err := jd.ToInstant()
	if err != nil {
		return 0, err
	}
	nanos := Duration(instant).toBigNanoseconds()
	if !nanos.IsInt64() {
		return 0, outOfRangef("julian date %v is outside the representable UnixNano range", float64(jd))
	}
	return nanos.Int64(), nil
}

// Gregorian converts jd to the equivalent time.Time, mirroring the
// teacher's Gregorian.
func (jd JulianDate) Gregorian() (time.Time, error) {
	instant, err := jd.ToInstant()
	if err != nil {
		return time.Time{}, err
	}
	sec := instant.ToUnixTimeSeconds()
	nanoOfSecond := (instant.nanoOfDay) % NanosecondsPerSecond
	return time.Unix(sec, nanoOfSecond).UTC(), nil
}

// Time returns the fractional part of jd, the time of day expressed as a
// fraction of a day, mirroring the teacher's Time.
func (jd JulianDate) Time() float64 {
	return math.Mod(float64(jd), 1)
}

// Duration returns the same fractional time of day as Time, expressed as
// a time.Duration, mirroring the teacher's Duration.
func (jd JulianDate) Duration() time.Duration {
	return time.Duration(julianDayNanoseconds * math.Mod(float64(jd), 1))
}

// Day returns the raw Julian Day Number (including its fractional time of
// day), mirroring the teacher's Day exactly: jd is already expressed in
// Julian days, so this is jd's float64 value unchanged, not an offset
// from the Unix epoch.
func (jd JulianDate) Day() float64 {
	return float64(jd)
}

// DayNumber returns the whole Julian day number (jd truncated toward
// zero), the form conventionally used to label a specific calendar day
// independent of time of day.
func (jd JulianDate) DayNumber() int {
	return int(jd)
}

// Century returns jd expressed in Julian centuries since the J2000.0
// epoch, the standard form used in astronomical ephemeris formulas.
func (jd JulianDate) Century() float64 {
	return (float64(jd) - julianEpochJ2000) / julianDaysPerCentury
}
