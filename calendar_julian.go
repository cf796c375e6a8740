package chronos

// julianCalendar is the proleptic Julian calendar (leap year every 4
// years with no century exception), as used before the 1582 Gregorian
// reform. It implements the same CalendarSystem contract as Gregorian,
// differing only in its bijection with days-since-epoch and its leap-year
// rule. Not to be confused with JulianDate, the astronomical day-count
// type grounded in the teacher's julian.Date.
type julianCalendar struct{}

// JulianCalendar returns the singleton proleptic Julian calendar.
func JulianCalendar() CalendarSystem { return julianSingleton }

var julianSingleton = &julianCalendar{}

func init() {
	registerCalendar(ordinalJulian, julianSingleton)
}

const (
	julianMinYear = -9998
	julianMaxYear = 9999

	// julianMarchBasedEpochOffset is the Julian-calendar analogue of
	// gregorianCalendar's marchBasedEpochOffset: the day count (in the
	// March-based internal representation) of 1969-12-19 in the Julian
	// calendar, which is the Julian-calendar date of the Unix epoch
	// (1970-01-01 Gregorian = 1969-12-19 Julian, spec.md §8 scenario 6).
	julianMarchBasedEpochOffset = 719470

	// julianCycleDays is the exact length, in days, of a 4-year Julian
	// calendar cycle (3*365 + 366): unlike the Gregorian calendar the
	// Julian leap rule has no century exception, so this cycle is exact
	// with no further correction needed.
	julianCycleDays = 4*DaysPerStandardYear + 1
)

func (julianCalendar) ID() string { return "Julian" }

func (c julianCalendar) MinYear() int { return julianMinYear }
func (c julianCalendar) MaxYear() int { return julianMaxYear }

func (c julianCalendar) IsLeapYear(year int) bool {
	// Proleptic Julian leap rule operates on the astronomical year
	// (there is no year 0 in the historical calendar, but the proleptic
	// extension used here does have one, matching NodaTime/ISO
	// convention for BC dates).
	return floorMod(int64(year), 4) == 0
}

var julianDaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (c julianCalendar) DaysInMonth(year, month int) int {
	if month == 2 && c.IsLeapYear(year) {
		return 29
	}
	return julianDaysInMonth[month-1]
}

func (c julianCalendar) MonthsInYear(int) int { return 12 }

func (c julianCalendar) Validate(year, month, day int) error {
	if year < julianMinYear || year > julianMaxYear {
		return outOfRangef("year %d out of range [%d, %d] for calendar %s", year, julianMinYear, julianMaxYear, c.ID())
	}
	if month < 1 || month > 12 {
		return outOfRangef("month %d out of range [1, 12]", month)
	}
	if day < 1 || day > c.DaysInMonth(year, month) {
		return outOfRangef("day %d out of range [1, %d] for %04d-%02d (Julian)", day, c.DaysInMonth(year, month), year, month)
	}
	return nil
}

// DaysSinceEpoch mirrors gregorianCalendar.DaysSinceEpoch's March-based
// shift and day-of-year formula, but sums whole 4-year cycles instead of
// Gregorian's 400/100/4-year correction, since the Julian leap rule
// (every 4th year, no exception) repeats exactly every 1461 days.
func (c julianCalendar) DaysSinceEpoch(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	if m <= 2 {
		y--
		m += 12
	}
	doy := (153*(m-3)+2)/5 + int64(day) - 1
	total := 365*y + floorDiv(y, 4) + doy
	return total - julianMarchBasedEpochOffset
}

// YearMonthDayFromDaysSinceEpoch is the inverse of DaysSinceEpoch: locate
// the 4-year cycle containing the target day, then the position within
// it, then the March-based month/day via the same quotient formula
// gregorianCalendar.YearMonthDayFromDaysSinceEpoch uses.
func (c julianCalendar) YearMonthDayFromDaysSinceEpoch(days int64) (year, month, day int) {
	z := days + julianMarchBasedEpochOffset
	cycles := floorDiv(z, julianCycleDays)
	rem := z - cycles*julianCycleDays // [0, 1460]

	var position, doy int64
	switch {
	case rem < 365:
		position, doy = 0, rem
	case rem < 730:
		position, doy = 1, rem-365
	case rem < 1095:
		position, doy = 2, rem-730
	default:
		position, doy = 3, rem-1095
	}
	y := 4*cycles + position

	mp := (5*doy + 2) / 153
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

func (c julianCalendar) EraNames() []string { return []string{"BC", "AD"} }

func (c julianCalendar) Era(year int) int {
	if year >= 1 {
		return 1
	}
	return 0
}

func (c julianCalendar) YearOfEra(year int) int {
	if year >= 1 {
		return year
	}
	return 1 - year
}

func (c julianCalendar) AbsoluteYear(yearOfEra, era int) (int, error) {
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
