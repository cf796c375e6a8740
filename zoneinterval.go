package chronos

import "fmt"

// ZoneInterval describes a single period of constant UTC offset within a
// DateTimeZone: a name, a half-open [Start, End) range of Instant, and
// the wall/standard offsets in force throughout. Savings is derived as
// WallOffset - StandardOffset, so DST intervals have Savings > 0.
type ZoneInterval struct {
	Name            string
	Start           Instant
	End             Instant
	WallOffset      Offset
	StandardOffset  Offset
	HasStart        bool
	HasEnd          bool
}

// Savings returns WallOffset - StandardOffset: the extra displacement (if
// any) applied during this interval, e.g. one hour during DST.
func (zi ZoneInterval) Savings() (Offset, error) {
	return zi.WallOffset.Minus(zi.StandardOffset)
}

// Contains reports whether instant falls within [Start, End).
func (zi ZoneInterval) Contains(instant Instant) bool {
	if zi.HasStart && instant.IsBefore(zi.Start) {
		return false
	}
	if zi.HasEnd && !instant.IsBefore(zi.End) {
		return false
	}
	return true
}

// containsLocal reports whether a localInstant (a local date-time treated
// as if it were already UTC) falls in [Start + WallOffset, End +
// WallOffset), the interval's footprint in local time.
func (zi ZoneInterval) containsLocal(li localInstant) bool {
	if zi.HasStart {
		startLocal := zi.Start.plusOffset(zi.WallOffset)
		if li.compare(startLocal) < 0 {
			return false
		}
	}
	if zi.HasEnd {
		endLocal := zi.End.plusOffset(zi.WallOffset)
		if li.compare(endLocal) >= 0 {
			return false
		}
	}
	return true
}

// isoLocalStart and isoLocalEnd return the interval's boundaries expressed
// in local time (Start/End shifted by WallOffset), saturating to the
// beforeMinInstant/afterMaxInstant sentinels at an unbounded edge.
func (zi ZoneInterval) isoLocalStart() localInstant {
	if !zi.HasStart {
		return localInstant(beforeMinInstant)
	}
	return zi.Start.plusOffset(zi.WallOffset)
}

func (zi ZoneInterval) isoLocalEnd() localInstant {
	if !zi.HasEnd {
		return localInstant(afterMaxInstant)
	}
	return zi.End.plusOffset(zi.WallOffset)
}

func (zi ZoneInterval) String() string {
	startStr := "(-inf"
	if zi.HasStart {
		startStr = "[" + zi.Start.String()
	}
	endStr := "+inf)"
	if zi.HasEnd {
		endStr = zi.End.String() + ")"
	}
	return fmt.Sprintf("%s %s, %s)", zi.Name, startStr, endStr)
}
