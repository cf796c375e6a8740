package chronos

// gregorianCalendar is the proleptic Gregorian calendar, used as ISO-8601's
// calendar. It is the reference CalendarSystem implementation: every
// other calendar in this package is validated against scenarios expressed
// in terms of it (spec.md §8 scenario 6, for instance).
type gregorianCalendar struct{}

// Gregorian returns the singleton proleptic Gregorian/ISO calendar.
func Gregorian() CalendarSystem { return gregorianSingleton }

var gregorianSingleton = &gregorianCalendar{}

func init() {
	registerCalendar(ordinalGregorian, gregorianSingleton)
}

const (
	gregorianMinYear = -9998
	gregorianMaxYear = 9999
)

func (gregorianCalendar) ID() string { return "ISO" }

func (c gregorianCalendar) MinYear() int { return gregorianMinYear }
func (c gregorianCalendar) MaxYear() int { return gregorianMaxYear }

func (c gregorianCalendar) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (c gregorianCalendar) MonthsInYear(int) int { return 12 }

var gregorianDaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (c gregorianCalendar) DaysInMonth(year, month int) int {
	if month == 2 && c.IsLeapYear(year) {
		return 29
	}
	return gregorianDaysInMonth[month-1]
}

func (c gregorianCalendar) Validate(year, month, day int) error {
	if year < gregorianMinYear || year > gregorianMaxYear {
		return outOfRangef("year %d out of range [%d, %d] for calendar %s", year, gregorianMinYear, gregorianMaxYear, c.ID())
	}
	if month < 1 || month > 12 {
		return outOfRangef("month %d out of range [1, 12]", month)
	}
	if day < 1 || day > c.DaysInMonth(year, month) {
		return outOfRangef("day %d out of range [1, %d] for %04d-%02d", day, c.DaysInMonth(year, month), year, month)
	}
	return nil
}

// DaysSinceEpoch implements the standard proleptic-Gregorian bijection
// with the Unix epoch (1970-01-01 = day 0). This is Howard Hinnant's
// days_from_civil algorithm: shift to a March-based year so the leap day
// falls at the end of the 400-year cycle, then sum whole 400/100/4-year
// cycles plus the day-of-year.
func (c gregorianCalendar) DaysSinceEpoch(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var monthOffset int64
	if m > 2 {
		monthOffset = m - 3
	} else {
		monthOffset = m + 9
	}
	doy := (153*monthOffset+2)/5 + int64(day) - 1    // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy           // [0, 146096]
	return era*DaysPer400Years + doe - marchBasedEpochOffset
}

// marchBasedEpochOffset is DaysSinceEpoch's zero point expressed in the
// March-based calendar used internally: the number of days from
// 0000-03-01 (March-based) to 1970-01-01.
const marchBasedEpochOffset = 719468

func (c gregorianCalendar) YearMonthDayFromDaysSinceEpoch(days int64) (year, month, day int) {
	z := days + marchBasedEpochOffset
	era := floorDiv(z, DaysPer400Years)
	doe := z - era*DaysPer400Years // day-of-era, [0, DaysPer400Years)

	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // year-of-era, [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // day-of-year, March-based, [0, 365]
	mp := (5*doy + 2) / 153                  // March-based month, [0, 11]
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

func (c gregorianCalendar) EraNames() []string { return []string{"BC", "AD"} }

func (c gregorianCalendar) Era(year int) int {
	if year >= 1 {
		return 1 // AD
	}
	return 0 // BC
}

func (c gregorianCalendar) YearOfEra(year int) int {
	if year >= 1 {
		return year
	}
	return 1 - year
}

func (c gregorianCalendar) AbsoluteYear(yearOfEra, era int) (int, error) {
	switch era {
	case 1:
		if yearOfEra < 1 {
			return 0, outOfRangef("year-of-era %d invalid for AD", yearOfEra)
		}
		return yearOfEra, nil
	case 0:
		if yearOfEra < 1 {
			return 0, outOfRangef("year-of-era %d invalid for BC", yearOfEra)
		}
		return 1 - yearOfEra, nil
	default:
		return 0, outOfRangef("era %d not recognized by calendar %s", era, c.ID())
	}
}
