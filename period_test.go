package chronos

import "testing"

func TestPeriodAddToLocalDate(t *testing.T) {
	date := MustNewLocalDate(2024, 1, 31)
	p := Period{Years: 1, Months: 1}
	got, err := p.AddToLocalDate(date)
	if err != nil {
		t.Fatalf("AddToLocalDate() error = %v", err)
	}
	// 2024-01-31 + 1 year = 2025-01-31, + 1 month = 2025-02-28 (clamped).
	if got.Year() != 2025 || got.Month() != 2 || got.Day() != 28 {
		t.Errorf("AddToLocalDate() = %s, want 2025-02-28", got)
	}
}

func TestPeriodAddToLocalDateRejectsTimeComponents(t *testing.T) {
	date := MustNewLocalDate(2024, 1, 1)
	p := Period{Hours: 1}
	_, err := p.AddToLocalDate(date)
	if err == nil {
		t.Fatal("expected invariant violation for Period with time components")
	}
	if kind := err.(*Error).Kind; kind != KindInvariantViolation {
		t.Errorf("Kind = %v, want %v", kind, KindInvariantViolation)
	}
}

func TestPeriodBetweenMonthEnd(t *testing.T) {
	// spec.md scenario: Period across month-end.
	start := MustNewLocalDate(2024, 1, 31)
	end := MustNewLocalDate(2024, 3, 1)
	p, err := PeriodBetween(start, end)
	if err != nil {
		t.Fatalf("PeriodBetween() error = %v", err)
	}
	if p.Years != 0 || p.Months != 1 || p.Days != 1 {
		t.Errorf("PeriodBetween(2024-01-31, 2024-03-01) = %+v, want {Months:1 Days:1}", p)
	}
}

func TestPeriodBetweenIsReversible(t *testing.T) {
	start := MustNewLocalDate(2022, 6, 15)
	end := MustNewLocalDate(2024, 3, 2)
	p, err := PeriodBetween(start, end)
	if err != nil {
		t.Fatalf("PeriodBetween() error = %v", err)
	}
	got, err := p.AddToLocalDate(start)
	if err != nil {
		t.Fatalf("AddToLocalDate() error = %v", err)
	}
	if !got.Equal(end) {
		t.Errorf("start + Period(start, end) = %s, want %s", got, end)
	}
}

func TestPeriodBetweenNegative(t *testing.T) {
	start := MustNewLocalDate(2024, 3, 1)
	end := MustNewLocalDate(2024, 1, 31)
	p, err := PeriodBetween(start, end)
	if err != nil {
		t.Fatalf("PeriodBetween() error = %v", err)
	}
	if p.Months >= 0 || p.Days > 0 {
		t.Errorf("PeriodBetween(later, earlier) = %+v, want negative components", p)
	}
}

func TestPeriodNormalize(t *testing.T) {
	p := Period{Hours: 1, Minutes: 90}
	got := p.Normalize()
	if got.Hours != 2 || got.Minutes != 30 {
		t.Errorf("Normalize() = %+v, want {Hours:2 Minutes:30}", got)
	}
	if got.Years != 0 || got.Days != 0 {
		t.Error("Normalize() must not touch date components")
	}
}

func TestPeriodAddToLocalDateTime(t *testing.T) {
	dt := MustNewLocalDateTime(2024, 12, 31, 23, 30, 0, 0)
	p := Period{Days: 1, Hours: 1}
	got, err := p.AddToLocalDateTime(dt)
	if err != nil {
		t.Fatalf("AddToLocalDateTime() error = %v", err)
	}
	if got.Year() != 2025 || got.Month() != 1 || got.Day() != 2 || got.Hour() != 0 || got.Minute() != 30 {
		t.Errorf("AddToLocalDateTime() = %s, want 2025-01-02T00:30:00", got)
	}
}
