package chronos

import "testing"

func TestMapLocalUnambiguousInFixedZone(t *testing.T) {
	zone := Utc
	dt := MustNewLocalDateTime(2024, 6, 15, 12, 0, 0, 0)
	mapping, err := MapLocal(zone, dt)
	if err != nil {
		t.Fatalf("MapLocal() error = %v", err)
	}
	if mapping.Count != MappingUnambiguous {
		t.Errorf("Count = %v, want %v", mapping.Count, MappingUnambiguous)
	}
	odt, err := mapping.Single()
	if err != nil {
		t.Fatalf("Single() error = %v", err)
	}
	if odt.Offset() != OffsetZero {
		t.Errorf("Offset() = %v, want zero", odt.Offset())
	}
}

// syntheticDSTZone is a two-interval DateTimeZone used to exercise the gap
// and unambiguous cases without depending on the host's zoneinfo database:
// it switches from standard time to a one-hour-ahead "DST" at a single
// fixed Instant and never switches back, so MapLocal on the transition
// hour resolves to a gap, and times long after the transition are
// unambiguous in the new offset.
type syntheticDSTZone struct {
	transition Instant
	standard   Offset
	dst        Offset
}

func (z syntheticDSTZone) ID() string { return "Synthetic/Gap" }

func (z syntheticDSTZone) GetZoneInterval(instant Instant) ZoneInterval {
	if instant.IsBefore(z.transition) {
		return ZoneInterval{Name: "STD", WallOffset: z.standard, StandardOffset: z.standard, End: z.transition, HasEnd: true}
	}
	return ZoneInterval{Name: "DST", WallOffset: z.dst, StandardOffset: z.standard, Start: z.transition, HasStart: true}
}

func TestMapLocalGap(t *testing.T) {
	transition := MustInstantFromUnixSeconds(t, 1_700_000_000)
	zone := syntheticDSTZone{
		transition: transition,
		standard:   OffsetZero,
		dst:        MustFromSecondsOffset(3600),
	}
	// The local time one minute into the skipped hour (just after the
	// transition, expressed in standard time) falls in the gap.
	localAtTransition := localDateTimeFromLocalInstant(localInstant(transition), Gregorian())
	gapLocal := localAtTransition.PlusMinutes(1)

	mapping, err := MapLocal(zone, gapLocal)
	if err != nil {
		t.Fatalf("MapLocal() error = %v", err)
	}
	if mapping.Count != MappingGap {
		t.Errorf("Count = %v, want %v (gapLocal=%s)", mapping.Count, MappingGap, gapLocal)
	}
}

func MustInstantFromUnixSeconds(t *testing.T, seconds int64) Instant {
	t.Helper()
	i, err := FromUnixTimeSeconds(seconds)
	if err != nil {
		t.Fatalf("FromUnixTimeSeconds() error = %v", err)
	}
	return i
}

func TestResolversStrictFailsOnAmbiguous(t *testing.T) {
	mapping := ZoneLocalMapping{Zone: Utc, Count: MappingAmbiguous}
	_, err := StrictResolver(mapping)
	if err == nil {
		t.Fatal("expected StrictResolver to fail on an ambiguous mapping")
	}
	if kind := err.(*Error).Kind; kind != KindAmbiguousLocalTime {
		t.Errorf("Kind = %v, want %v", kind, KindAmbiguousLocalTime)
	}
}

func TestResolversLenientNeverFails(t *testing.T) {
	early := ZoneInterval{Name: "STD", WallOffset: OffsetZero, End: MustInstantFromUnixSeconds(t, 1000), HasEnd: true}
	late := ZoneInterval{Name: "DST", WallOffset: MustFromSecondsOffset(3600), Start: MustInstantFromUnixSeconds(t, 1000), HasStart: true}
	mapping := ZoneLocalMapping{Count: MappingGap, EarlyInterval: early, LateInterval: late}
	_, err := LenientResolver(mapping)
	if err != nil {
		t.Fatalf("LenientResolver() error = %v, want nil", err)
	}
}

// TestResolversLenientShiftsForward is spec.md's literal Scenario 1: a
// local time partway through a spring-forward gap resolves to the same
// distance past the gap's end, not to the gap's boundary.
func TestResolversLenientShiftsForward(t *testing.T) {
	earlyOffset := MustFromSecondsOffset(-5 * 3600) // EST, UTC-05:00
	lateOffset := MustFromSecondsOffset(-4 * 3600)  // EDT, UTC-04:00
	transition := MustInstantFromUnixSeconds(t, 1489302000)
	early := ZoneInterval{Name: "EST", WallOffset: earlyOffset, StandardOffset: earlyOffset, End: transition, HasEnd: true}
	late := ZoneInterval{Name: "EDT", WallOffset: lateOffset, StandardOffset: earlyOffset, Start: transition, HasStart: true}
	gapLocal := MustNewLocalDateTime(2017, 3, 12, 2, 30, 0, 0)
	mapping := ZoneLocalMapping{Count: MappingGap, LocalDateTime: gapLocal, EarlyInterval: early, LateInterval: late}

	odt, err := LenientResolver(mapping)
	if err != nil {
		t.Fatalf("LenientResolver() error = %v, want nil", err)
	}
	want := MustNewLocalDateTime(2017, 3, 12, 3, 30, 0, 0)
	if !odt.LocalDateTime().Equal(want) {
		t.Errorf("LocalDateTime() = %s, want %s", odt.LocalDateTime(), want)
	}
	if odt.Offset() != lateOffset {
		t.Errorf("Offset() = %s, want %s", odt.Offset(), lateOffset)
	}
}

func TestFixedZoneForOffset(t *testing.T) {
	offset := MustFromSecondsOffset(5 * 3600)
	zone := FixedZoneForOffset(offset)
	interval := zone.GetZoneInterval(unixEpoch)
	if interval.WallOffset != offset {
		t.Errorf("WallOffset = %v, want %v", interval.WallOffset, offset)
	}
	if interval.HasStart || interval.HasEnd {
		t.Error("expected a fixed zone's interval to be unbounded")
	}
}

func TestGetZoneIntervalsCoalesces(t *testing.T) {
	zone := Utc
	start, _ := FromUnixTimeSeconds(0)
	end, _ := FromUnixTimeSeconds(1000)
	span, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("NewInterval() error = %v", err)
	}
	intervals, err := GetZoneIntervals(zone, span, true)
	if err != nil {
		t.Fatalf("GetZoneIntervals() error = %v", err)
	}
	if len(intervals) != 1 {
		t.Errorf("len(intervals) = %d, want 1 for a fixed zone", len(intervals))
	}
}
