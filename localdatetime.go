package chronos

import "fmt"

// LocalDateTime is the pair (LocalDate, LocalTime) in the same calendar:
// an immutable civil date-time with no time-zone component.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime constructs a LocalDateTime in the Gregorian calendar.
func NewLocalDateTime(year, month, day, hour, minute, second, nanosecond int) (LocalDateTime, error) {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

func MustNewLocalDateTime(year, month, day, hour, minute, second, nanosecond int) LocalDateTime {
	dt, err := NewLocalDateTime(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err.Error())
	}
	return dt
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// TimeOfDay returns the time-of-day component.
func (dt LocalDateTime) TimeOfDay() LocalTime { return dt.time }

func (dt LocalDateTime) Calendar() CalendarSystem { return dt.date.Calendar() }

func (dt LocalDateTime) Year() int        { return dt.date.Year() }
func (dt LocalDateTime) Month() int       { return dt.date.Month() }
func (dt LocalDateTime) Day() int         { return dt.date.Day() }
func (dt LocalDateTime) Hour() int        { return dt.time.Hour() }
func (dt LocalDateTime) Minute() int      { return dt.time.Minute() }
func (dt LocalDateTime) Second() int      { return dt.time.Second() }
func (dt LocalDateTime) Nanosecond() int  { return dt.time.Nanosecond() }
func (dt LocalDateTime) DayOfWeek() int   { return dt.date.DayOfWeek() }

// PlusNanoseconds, PlusSeconds, PlusMinutes, and PlusHours decompose the
// addition into a day-carry plus a nanosecond-of-day, feeding the carry
// into LocalDate.PlusDays, per spec.md §4.5.
func (dt LocalDateTime) PlusNanoseconds(n int64) LocalDateTime {
	newTime, carry := dt.time.plusNanosecondsWithCarry(n)
	return LocalDateTime{date: dt.date.PlusDays(int(carry)), time: newTime}
}

func (dt LocalDateTime) PlusSeconds(n int64) LocalDateTime {
	return dt.PlusNanoseconds(n * NanosecondsPerSecond)
}

func (dt LocalDateTime) PlusMinutes(n int64) LocalDateTime {
	return dt.PlusNanoseconds(n * NanosecondsPerMinute)
}

func (dt LocalDateTime) PlusHours(n int64) LocalDateTime {
	return dt.PlusNanoseconds(n * NanosecondsPerHour)
}

// PlusDays, PlusWeeks, PlusMonths, and PlusYears delegate to the
// calendar's date arithmetic (via LocalDate), leaving the time-of-day
// unchanged.
func (dt LocalDateTime) PlusDays(n int) LocalDateTime {
	return LocalDateTime{date: dt.date.PlusDays(n), time: dt.time}
}

func (dt LocalDateTime) PlusWeeks(n int) LocalDateTime {
	return LocalDateTime{date: dt.date.PlusWeeks(n), time: dt.time}
}

func (dt LocalDateTime) PlusMonths(n int) LocalDateTime {
	return LocalDateTime{date: dt.date.PlusMonths(n), time: dt.time}
}

func (dt LocalDateTime) PlusYears(n int) LocalDateTime {
	return LocalDateTime{date: dt.date.PlusYears(n), time: dt.time}
}

// WithCalendar retags the date component with a different calendar,
// preserving the physical day and the time-of-day.
func (dt LocalDateTime) WithCalendar(cal CalendarSystem) LocalDateTime {
	return LocalDateTime{date: dt.date.WithCalendar(cal), time: dt.time}
}

// Compare orders dt relative to other. Both must share a calendar; see
// LocalDate.Compare.
func (dt LocalDateTime) Compare(other LocalDateTime) (int, error) {
	c, err := dt.date.Compare(other.date)
	if err != nil {
		return 0, err
	}
	if c != 0 {
		return c, nil
	}
	return dt.time.Compare(other.time), nil
}

func (dt LocalDateTime) IsBefore(other LocalDateTime) bool {
	return mustCompare(dt.Compare(other)) < 0
}

func (dt LocalDateTime) IsAfter(other LocalDateTime) bool {
	return mustCompare(dt.Compare(other)) > 0
}

func (dt LocalDateTime) Equal(other LocalDateTime) bool {
	return dt.date.Equal(other.date) && dt.time.Equal(other.time)
}

// toLocalInstant converts dt to the internal bridge value used by zone
// arithmetic: the same bit pattern as an Instant, as if this date-time's
// fields described a UTC timestamp directly.
func (dt LocalDateTime) toLocalInstant() localInstant {
	return localInstant{days: dt.date.DaysSinceEpoch(), nanoOfDay: dt.time.nanoOfDay}
}

func localDateTimeFromLocalInstant(li localInstant, cal CalendarSystem) LocalDateTime {
	date := FromDaysSinceEpochInCalendar(li.days, cal)
	time := LocalTime{nanoOfDay: li.nanoOfDay}
	return LocalDateTime{date: date, time: time}
}

func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date.String(), dt.time.String())
}
