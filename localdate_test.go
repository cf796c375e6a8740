package chronos

import "testing"

func TestLocalDatePlusMonthsClamps(t *testing.T) {
	d := MustNewLocalDate(2024, 1, 31)
	got := d.PlusMonths(1)
	if got.Year() != 2024 || got.Month() != 2 || got.Day() != 29 {
		t.Errorf("PlusMonths(1) = %s, want 2024-02-29", got)
	}
}

func TestLocalDatePlusYearsClampsLeapDay(t *testing.T) {
	d := MustNewLocalDate(2024, 2, 29)
	got := d.PlusYears(1)
	if got.Year() != 2025 || got.Month() != 2 || got.Day() != 28 {
		t.Errorf("PlusYears(1) = %s, want 2025-02-28", got)
	}
}

func TestLocalDateWithCalendarRoundTrip(t *testing.T) {
	d := MustNewLocalDate(1970, 1, 1)
	julian := d.WithCalendar(JulianCalendar())
	if julian.Year() != 1969 || julian.Month() != 12 || julian.Day() != 19 {
		t.Errorf("WithCalendar(Julian) = %s, want 1969-12-19", julian)
	}
	back := julian.WithCalendar(Gregorian())
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestLocalDateCompareAcrossCalendarsFails(t *testing.T) {
	greg := MustNewLocalDate(1970, 1, 1)
	julian := MustNewLocalDateInCalendar(1969, 12, 19, JulianCalendar())
	_, err := greg.Compare(julian)
	if err == nil {
		t.Fatal("expected cross-calendar comparison to fail")
	}
	if kind := err.(*Error).Kind; kind != KindInvariantViolation {
		t.Errorf("Kind = %v, want %v", kind, KindInvariantViolation)
	}
}

func TestLocalDateNext(t *testing.T) {
	// 2024-07-29 is a Monday.
	d := MustNewLocalDate(2024, 7, 29)
	if d.DayOfWeek() != 1 {
		t.Fatalf("test fixture DayOfWeek = %d, want 1 (Monday)", d.DayOfWeek())
	}
	next, err := d.Next(1)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if next.DaysSinceEpoch()-d.DaysSinceEpoch() != 7 {
		t.Errorf("Next(Monday) from a Monday should be 7 days later, got %d", next.DaysSinceEpoch()-d.DaysSinceEpoch())
	}
	nextOrSame, err := d.NextOrSame(1)
	if err != nil {
		t.Fatalf("NextOrSame() error = %v", err)
	}
	if !nextOrSame.Equal(d) {
		t.Errorf("NextOrSame(Monday) from a Monday should be unchanged, got %s", nextOrSame)
	}
}

func TestLocalDateWeekOfWeekYear(t *testing.T) {
	// 2021-01-01 is a Friday, so it belongs to ISO week 53 of 2020.
	d := MustNewLocalDate(2021, 1, 1)
	if wy := d.WeekYear(); wy != 2020 {
		t.Errorf("WeekYear() = %d, want 2020", wy)
	}
	if w := d.WeekOfWeekYear(); w != 53 {
		t.Errorf("WeekOfWeekYear() = %d, want 53", w)
	}
}

func TestFromWeekYearWeekAndDay(t *testing.T) {
	d, err := FromWeekYearWeekAndDay(2020, 53, 5)
	if err != nil {
		t.Fatalf("FromWeekYearWeekAndDay() error = %v", err)
	}
	if d.Year() != 2021 || d.Month() != 1 || d.Day() != 1 {
		t.Errorf("FromWeekYearWeekAndDay(2020, 53, 5) = %s, want 2021-01-01", d)
	}
}

func TestFromYearMonthWeekAndDay(t *testing.T) {
	// First Monday of July 2024 is 2024-07-01.
	d, err := FromYearMonthWeekAndDay(2024, 7, 1, 1)
	if err != nil {
		t.Fatalf("FromYearMonthWeekAndDay() error = %v", err)
	}
	if d.Year() != 2024 || d.Month() != 7 || d.Day() != 1 {
		t.Errorf("FromYearMonthWeekAndDay(2024, 7, 1, Monday) = %s, want 2024-07-01", d)
	}
}

func TestLocalDateOutOfRange(t *testing.T) {
	_, err := NewLocalDate(2024, 2, 30)
	if err == nil {
		t.Fatal("expected out-of-range error for 2024-02-30")
	}
}
