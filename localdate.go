package chronos

import (
	"fmt"
	"time"
)

// LocalDate is an immutable civil date — year, month, and day-of-month —
// in a particular CalendarSystem, with no time-of-day or time-zone
// component. The zero value is not a valid date (its year, month and day
// are all 0); build values with NewLocalDate or NewLocalDateInCalendar.
type LocalDate struct {
	ymdc YearMonthDayCalendar
}

// NewLocalDate constructs a LocalDate in the Gregorian/ISO calendar,
// failing with KindOutOfRange if (year, month, day) is not a valid
// Gregorian date.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	return NewLocalDateInCalendar(year, month, day, Gregorian())
}

// MustNewLocalDate is NewLocalDate, panicking on error.
func MustNewLocalDate(year, month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// NewLocalDateInCalendar constructs a LocalDate in the given calendar.
func NewLocalDateInCalendar(year, month, day int, cal CalendarSystem) (LocalDate, error) {
	if err := cal.Validate(year, month, day); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{ymdc: newYearMonthDayCalendar(int32(year), month, day, ordinalFor(cal))}, nil
}

func MustNewLocalDateInCalendar(year, month, day int, cal CalendarSystem) LocalDate {
	d, err := NewLocalDateInCalendar(year, month, day, cal)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Calendar returns the CalendarSystem this date is tagged with.
func (d LocalDate) Calendar() CalendarSystem {
	return calendarForOrdinal(d.ymdc.calendarOrdinal)
}

func (d LocalDate) Year() int  { return d.ymdc.Year() }
func (d LocalDate) Month() int { return d.ymdc.Month() }
func (d LocalDate) Day() int   { return d.ymdc.Day() }

// DaysSinceEpoch returns the signed day count from the Unix epoch in
// this date's calendar.
func (d LocalDate) DaysSinceEpoch() int64 {
	return d.Calendar().DaysSinceEpoch(d.Year(), d.Month(), d.Day())
}

// FromDaysSinceEpoch constructs a LocalDate in the Gregorian calendar
// from a signed day count since the Unix epoch.
func FromDaysSinceEpoch(days int64) LocalDate {
	return FromDaysSinceEpochInCalendar(days, Gregorian())
}

// FromDaysSinceEpochInCalendar constructs a LocalDate in the given
// calendar from a signed day count since the Unix epoch.
func FromDaysSinceEpochInCalendar(days int64, cal CalendarSystem) LocalDate {
	year, month, day := cal.YearMonthDayFromDaysSinceEpoch(days)
	return MustNewLocalDateInCalendar(year, month, day, cal)
}

// DayOfWeek returns the ISO day of week, 1 (Monday) through 7 (Sunday).
func (d LocalDate) DayOfWeek() int {
	return getDayOfWeekFromDays(d.DaysSinceEpoch())
}

// IsLeapYear reports whether this date's year is a leap year in its
// calendar.
func (d LocalDate) IsLeapYear() bool {
	return d.Calendar().IsLeapYear(d.Year())
}

// DaysInMonth returns the number of days in this date's (year, month) in
// its calendar.
func (d LocalDate) DaysInMonth() int {
	return d.Calendar().DaysInMonth(d.Year(), d.Month())
}

// PlusDays returns a copy of this date with n days added (n may be
// negative).
func (d LocalDate) PlusDays(n int) LocalDate {
	return FromDaysSinceEpochInCalendar(d.DaysSinceEpoch()+int64(n), d.Calendar())
}

// MinusDays is PlusDays(-n).
func (d LocalDate) MinusDays(n int) LocalDate { return d.PlusDays(-n) }

// PlusWeeks returns a copy of this date with n weeks (n*7 days) added.
func (d LocalDate) PlusWeeks(n int) LocalDate { return d.PlusDays(7 * n) }

// MinusWeeks is PlusWeeks(-n).
func (d LocalDate) MinusWeeks(n int) LocalDate { return d.PlusDays(-7 * n) }

// PlusMonths returns a copy of this date with n months added. Per
// spec.md's clamping rule, if the resulting day-of-month would exceed
// the new month's length, it is clamped to the last valid day of that
// month rather than overflowing into the next one.
func (d LocalDate) PlusMonths(n int) LocalDate {
	cal := d.Calendar()
	totalMonths := int64(d.Year())*int64(cal.MonthsInYear(d.Year())) + int64(d.Month()-1) + int64(n)
	monthsInYear := int64(cal.MonthsInYear(d.Year()))
	year := int(floorDiv(totalMonths, monthsInYear))
	month := int(floorMod(totalMonths, monthsInYear)) + 1
	day := d.Day()
	if maxDay := cal.DaysInMonth(year, month); day > maxDay {
		day = maxDay
	}
	return MustNewLocalDateInCalendar(year, month, day, cal)
}

// MinusMonths is PlusMonths(-n).
func (d LocalDate) MinusMonths(n int) LocalDate { return d.PlusMonths(-n) }

// PlusYears returns a copy of this date with n years added, clamping the
// day-of-month per the same rule as PlusMonths (e.g. Feb 29 plus one
// non-leap year becomes Feb 28).
func (d LocalDate) PlusYears(n int) LocalDate {
	cal := d.Calendar()
	year := d.Year() + n
	day := d.Day()
	if maxDay := cal.DaysInMonth(year, d.Month()); day > maxDay {
		day = maxDay
	}
	return MustNewLocalDateInCalendar(year, d.Month(), day, cal)
}

// MinusYears is PlusYears(-n).
func (d LocalDate) MinusYears(n int) LocalDate { return d.PlusYears(-n) }

// WithCalendar returns the same physical day re-tagged with a different
// calendar, preserving days-since-epoch.
func (d LocalDate) WithCalendar(cal CalendarSystem) LocalDate {
	return FromDaysSinceEpochInCalendar(d.DaysSinceEpoch(), cal)
}

// Compare orders d relative to other: -1, 0, or 1. Both dates must share
// a calendar; comparing across calendars fails with
// KindInvariantViolation, per spec.md's explicit rejection of the
// 1.x cross-calendar days-since-epoch comparison.
func (d LocalDate) Compare(other LocalDate) (int, error) {
	if d.ymdc.calendarOrdinal != other.ymdc.calendarOrdinal {
		return 0, invariantViolationf("cannot compare LocalDate values from different calendars (%s vs %s)", d.Calendar().ID(), other.Calendar().ID())
	}
	switch {
	case d.ymdc.year != other.ymdc.year:
		return cmpInt32(d.ymdc.year, other.ymdc.year), nil
	case d.ymdc.month != other.ymdc.month:
		return cmpUint8(d.ymdc.month, other.ymdc.month), nil
	case d.ymdc.day != other.ymdc.day:
		return cmpUint8(d.ymdc.day, other.ymdc.day), nil
	default:
		return 0, nil
	}
}

func cmpInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore, IsAfter, and Equal wrap Compare, panicking if the calendars
// differ (use Compare directly to handle that case without a panic).
func (d LocalDate) IsBefore(other LocalDate) bool {
	return mustCompare(d.Compare(other)) < 0
}

func (d LocalDate) IsAfter(other LocalDate) bool {
	return mustCompare(d.Compare(other)) > 0
}

func (d LocalDate) Equal(other LocalDate) bool {
	return d.ymdc == other.ymdc
}

func mustCompare(c int, err error) int {
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Next returns the next date, strictly after d, falling on targetDow
// (1=Monday .. 7=Sunday). If d already falls on targetDow, the result is
// 7 days later. Fails with KindOutOfRange if targetDow is not in [1, 7].
func (d LocalDate) Next(targetDow int) (LocalDate, error) {
	if targetDow < 1 || targetDow > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", targetDow)
	}
	delta := floorMod(int64(targetDow-d.DayOfWeek()), 7)
	if delta == 0 {
		delta = 7
	}
	return d.PlusDays(int(delta)), nil
}

// Previous is the mirror of Next: the nearest date strictly before d
// falling on targetDow.
func (d LocalDate) Previous(targetDow int) (LocalDate, error) {
	if targetDow < 1 || targetDow > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", targetDow)
	}
	delta := floorMod(int64(d.DayOfWeek()-targetDow), 7)
	if delta == 0 {
		delta = 7
	}
	return d.PlusDays(-int(delta)), nil
}

// NextOrSame is Next, except it returns d unchanged if d already falls
// on targetDow.
func (d LocalDate) NextOrSame(targetDow int) (LocalDate, error) {
	if targetDow < 1 || targetDow > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", targetDow)
	}
	if d.DayOfWeek() == targetDow {
		return d, nil
	}
	return d.Next(targetDow)
}

// PreviousOrSame is Previous, except it returns d unchanged if d already
// falls on targetDow.
func (d LocalDate) PreviousOrSame(targetDow int) (LocalDate, error) {
	if targetDow < 1 || targetDow > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", targetDow)
	}
	if d.DayOfWeek() == targetDow {
		return d, nil
	}
	return d.Previous(targetDow)
}

// WeekYear and WeekOfWeekYear implement the ISO-8601 week rule: week 1 is
// the week containing the year's first Thursday, per spec.md §4.4.
func (d LocalDate) WeekYear() int {
	wy, _ := isoWeekYearAndWeek(d.Calendar(), d.Year(), d.Month(), d.Day())
	return wy
}

func (d LocalDate) WeekOfWeekYear() int {
	_, w := isoWeekYearAndWeek(d.Calendar(), d.Year(), d.Month(), d.Day())
	return w
}

// FromWeekYearWeekAndDay constructs the Gregorian-calendar LocalDate for
// the given ISO week-year, week-of-week-year, and day-of-week
// (1=Monday..7=Sunday).
func FromWeekYearWeekAndDay(weekYear, week, dayOfWeek int) (LocalDate, error) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", dayOfWeek)
	}
	if week < 1 || week > 53 {
		return LocalDate{}, outOfRangef("week %d out of range [1, 53]", week)
	}
	cal := Gregorian()
	jan4 := cal.DaysSinceEpoch(weekYear, 1, 4)
	jan4Dow := getDayOfWeekFromDays(jan4)
	firstWeekMonday := jan4 - int64(jan4Dow-1)
	days := firstWeekMonday + int64(week-1)*7 + int64(dayOfWeek-1)
	return FromDaysSinceEpochInCalendar(days, cal), nil
}

// FromYearMonthWeekAndDay constructs the Gregorian-calendar LocalDate for
// the occurrence'th (1-5) dayOfWeek in the given year/month. occurrence=5
// is clamped to the last matching occurrence in the month if the month
// has only four.
func FromYearMonthWeekAndDay(year, month, occurrence, dayOfWeek int) (LocalDate, error) {
	if occurrence < 1 || occurrence > 5 {
		return LocalDate{}, outOfRangef("occurrence %d out of range [1, 5]", occurrence)
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return LocalDate{}, outOfRangef("day of week %d out of range [1, 7]", dayOfWeek)
	}
	cal := Gregorian()
	if err := cal.Validate(year, month, 1); err != nil {
		return LocalDate{}, err
	}
	first := MustNewLocalDateInCalendar(year, month, 1, cal)
	firstDow := first.DayOfWeek()
	offset := floorMod(int64(dayOfWeek-firstDow), 7)
	day := int(offset) + 1 + (occurrence-1)*7
	maxDay := cal.DaysInMonth(year, month)
	if day > maxDay {
		day -= 7
		if day > maxDay || day < 1 {
			return LocalDate{}, outOfRangef("no occurrence %d of day-of-week %d in %04d-%02d", occurrence, dayOfWeek, year, month)
		}
	}
	return NewLocalDateInCalendar(year, month, day, cal)
}

// AtTime combines this date with a time-of-day to form a LocalDateTime.
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// AtMidnight is AtTime(LocalTime at midnight).
func (d LocalDate) AtMidnight() LocalDateTime {
	return LocalDateTime{date: d, time: midnightLocalTime}
}

// GoTime converts this date to a time.Time at midnight UTC, for interop
// with stdlib code. The calendar is not preserved: non-Gregorian dates
// are first converted via WithCalendar(Gregorian()).
func (d LocalDate) GoTime() time.Time {
	g := d
	if d.ymdc.calendarOrdinal != ordinalGregorian {
		g = d.WithCalendar(Gregorian())
	}
	return time.Date(g.Year(), time.Month(g.Month()), g.Day(), 0, 0, 0, 0, time.UTC)
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}
