package chronos

import "testing"

func TestLocalTimeComponents(t *testing.T) {
	tm := MustNewLocalTime(13, 45, 30, 123_456_789)
	if tm.Hour() != 13 || tm.Minute() != 45 || tm.Second() != 30 || tm.Nanosecond() != 123_456_789 {
		t.Errorf("components = %02d:%02d:%02d.%09d, want 13:45:30.123456789", tm.Hour(), tm.Minute(), tm.Second(), tm.Nanosecond())
	}
}

func TestLocalTimePlusWrapsWithoutError(t *testing.T) {
	tm := MustNewLocalTime(23, 0, 0, 0)
	got := tm.PlusHours(2)
	if got.Hour() != 1 {
		t.Errorf("PlusHours(2) from 23:00 = %s, want hour 1", got)
	}
}

func TestLocalTimePlusNanosecondsWithCarry(t *testing.T) {
	tm := MustNewLocalTime(23, 30, 0, 0)
	got, carry := tm.plusNanosecondsWithCarry(2 * NanosecondsPerHour)
	if carry != 1 {
		t.Errorf("carry = %d, want 1", carry)
	}
	if got.Hour() != 1 || got.Minute() != 30 {
		t.Errorf("result = %s, want 01:30:00", got)
	}
}

func TestLocalTimeMinus(t *testing.T) {
	a := MustNewLocalTime(10, 0, 0, 0)
	b := MustNewLocalTime(8, 30, 0, 0)
	d := a.Minus(b)
	if d.TotalMinutes() != 90 {
		t.Errorf("Minus() = %v minutes, want 90", d.TotalMinutes())
	}
}

func TestLocalTimeOutOfRange(t *testing.T) {
	_, err := NewLocalTime(24, 0, 0, 0)
	if err == nil {
		t.Fatal("expected out-of-range error for hour 24")
	}
}

func TestLocalTimeString(t *testing.T) {
	tests := []struct {
		name string
		tm   LocalTime
		want string
	}{
		{"whole seconds", MustNewLocalTime(9, 5, 3, 0), "09:05:03"},
		{"with nanoseconds", MustNewLocalTime(9, 5, 3, 1), "09:05:03.000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tm.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
