package chronos

import "testing"

func TestGregorianDaysSinceEpochRoundTrip(t *testing.T) {
	tests := []struct {
		year, month, day int
	}{
		{1970, 1, 1},
		{2000, 2, 29},
		{1969, 12, 31},
		{1, 1, 1},
		{-1, 12, 31},
		{2024, 7, 29},
	}
	cal := Gregorian()
	for _, tt := range tests {
		days := cal.DaysSinceEpoch(tt.year, tt.month, tt.day)
		y, m, d := cal.YearMonthDayFromDaysSinceEpoch(days)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("round trip %04d-%02d-%02d -> %d -> %04d-%02d-%02d", tt.year, tt.month, tt.day, days, y, m, d)
		}
	}
}

func TestGregorianEpochIsZero(t *testing.T) {
	if got := Gregorian().DaysSinceEpoch(1970, 1, 1); got != 0 {
		t.Errorf("DaysSinceEpoch(1970,1,1) = %d, want 0", got)
	}
}

func TestJulianCalendarEpochOffset(t *testing.T) {
	// spec.md scenario 6: 1970-01-01 Gregorian = 1969-12-19 Julian.
	days := Gregorian().DaysSinceEpoch(1970, 1, 1)
	y, m, d := JulianCalendar().YearMonthDayFromDaysSinceEpoch(days)
	if y != 1969 || m != 12 || d != 19 {
		t.Errorf("Julian(0) = %04d-%02d-%02d, want 1969-12-19", y, m, d)
	}
}

func TestJulianDaysSinceEpochRoundTrip(t *testing.T) {
	tests := []struct {
		year, month, day int
	}{
		{1969, 12, 19},
		{2000, 2, 29},
		{1, 1, 1},
		{-45, 3, 15},
		{100, 2, 29}, // Julian leap year (no century exception)
	}
	cal := JulianCalendar()
	for _, tt := range tests {
		days := cal.DaysSinceEpoch(tt.year, tt.month, tt.day)
		y, m, d := cal.YearMonthDayFromDaysSinceEpoch(days)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("round trip %04d-%02d-%02d -> %d -> %04d-%02d-%02d", tt.year, tt.month, tt.day, days, y, m, d)
		}
	}
}

func TestJulianLeapYearNoCenturyException(t *testing.T) {
	cal := JulianCalendar()
	if !cal.IsLeapYear(1900) {
		t.Error("Julian calendar should treat 1900 as a leap year (no century exception)")
	}
	if !cal.IsLeapYear(2000) {
		t.Error("2000 should be a leap year in both calendars")
	}
}

func TestGregorianLeapYearCenturyException(t *testing.T) {
	cal := Gregorian()
	if cal.IsLeapYear(1900) {
		t.Error("Gregorian calendar should not treat 1900 as a leap year")
	}
	if !cal.IsLeapYear(2000) {
		t.Error("2000 should be a leap year (divisible by 400)")
	}
}

func TestDayOfWeekEpoch(t *testing.T) {
	// 1970-01-01 was a Thursday (ISO day 4).
	if got := getDayOfWeekFromDays(0); got != 4 {
		t.Errorf("getDayOfWeekFromDays(0) = %d, want 4", got)
	}
}
