package chronos

import "testing"

func TestInstantFromUnixTimeSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
	}{
		{"epoch", 0},
		{"positive", 1_700_000_000},
		{"negative", -1_700_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := FromUnixTimeSeconds(tt.seconds)
			if err != nil {
				t.Fatalf("FromUnixTimeSeconds() error = %v", err)
			}
			if got := i.ToUnixTimeSeconds(); got != tt.seconds {
				t.Errorf("ToUnixTimeSeconds() = %d, want %d", got, tt.seconds)
			}
		})
	}
}

func TestInstantPlusMinus(t *testing.T) {
	i, err := FromUnixTimeSeconds(0)
	if err != nil {
		t.Fatalf("FromUnixTimeSeconds() error = %v", err)
	}
	oneHour := mustDuration(FromHours(1))
	later := i.MustPlus(oneHour)
	if later.ToUnixTimeSeconds() != 3600 {
		t.Errorf("ToUnixTimeSeconds() = %d, want 3600", later.ToUnixTimeSeconds())
	}
	back, err := later.Minus(oneHour)
	if err != nil {
		t.Fatalf("Minus() error = %v", err)
	}
	if !back.Equal(i) {
		t.Errorf("back = %v, want %v", back, i)
	}
}

func TestInstantSince(t *testing.T) {
	a, _ := FromUnixTimeSeconds(0)
	b, _ := FromUnixTimeSeconds(3600)
	d, err := b.Since(a)
	if err != nil {
		t.Fatalf("Since() error = %v", err)
	}
	if d.TotalHours() != 1 {
		t.Errorf("Since() = %v hours, want 1", d.TotalHours())
	}
}

func TestInstantCompare(t *testing.T) {
	a, _ := FromUnixTimeSeconds(0)
	b, _ := FromUnixTimeSeconds(1)
	if !a.IsBefore(b) {
		t.Error("expected a before b")
	}
	if !b.IsAfter(a) {
		t.Error("expected b after a")
	}
	if !a.Equal(a) {
		t.Error("expected a == a")
	}
}
