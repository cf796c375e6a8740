package chronos

import (
	"math"
	"testing"
)

const julianTestEpsilon = 0.000001

func equalJulianDate(got, want JulianDate) bool {
	if got == want {
		return true
	}
	return math.Abs(float64(got-want)) < julianTestEpsilon
}

func TestNewJulianDateUTC(t *testing.T) {
	tests := []struct {
		name                                    string
		year, month, day, hour, minute, second, nanosecond int
		want                                    JulianDate
	}{
		{"Jan. 1 2017", 2017, 1, 1, 0, 0, 0, 0, JulianDate(2_457_754.50000)},
		{"Jan. 1, 1990", 1990, 1, 1, 0, 0, 0, 0, JulianDate(2_447_892.50000)},
		{"July 4, 1998", 1998, 7, 4, 0, 0, 0, 0, JulianDate(2_450_998.50000)},
		{"Feb. 14, 2010 5:21", 2010, 2, 14, 5, 21, 0, 0, JulianDate(2_455_241.722917)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewJulianDateUTC(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, tt.nanosecond)
			if err != nil {
				t.Fatalf("NewJulianDateUTC() error = %v", err)
			}
			if !equalJulianDate(got, tt.want) {
				t.Errorf("NewJulianDateUTC() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	jd, err := NewJulianDateUTC(2024, 3, 15, 10, 30, 0, 0)
	if err != nil {
		t.Fatalf("NewJulianDateUTC() error = %v", err)
	}
	instant, err := jd.ToInstant()
	if err != nil {
		t.Fatalf("ToInstant() error = %v", err)
	}
	back := FromInstant(instant)
	if !equalJulianDate(back, jd) {
		t.Errorf("round trip = %f, want %f", back, jd)
	}
}

func TestJulianDateDayNumber(t *testing.T) {
	jd, err := NewJulianDateUTC(2017, 1, 1, 12, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewJulianDateUTC() error = %v", err)
	}
	if got, want := jd.DayNumber(), 2_457_755; got != want {
		t.Errorf("DayNumber() = %d, want %d", got, want)
	}
}

func TestJulianDateUnix(t *testing.T) {
	jd, err := NewJulianDateUTC(1970, 1, 1, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewJulianDateUTC() error = %v", err)
	}
	unix, err := jd.Unix()
	if err != nil {
		t.Fatalf("Unix() error = %v", err)
	}
	if unix != 0 {
		t.Errorf("Unix() = %d, want 0", unix)
	}
}
