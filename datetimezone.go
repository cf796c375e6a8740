package chronos

// DateTimeZone is the abstract contract for a time zone: a mapping from
// Instant to the UTC offset in force at that point. Concrete
// implementations (FixedDateTimeZone, the zoneinfo-backed zones built by
// ZoneProvider) need only implement ID and GetZoneInterval; MapLocal,
// AtStartOfDay, and GetZoneIntervals are generic algorithms built on top
// of that single primitive, following spec.md §4.7's split between the
// abstract zone contract and its concrete backends.
type DateTimeZone interface {
	ID() string
	// GetZoneInterval returns the ZoneInterval containing instant. Every
	// Instant falls in exactly one interval for a well-formed zone.
	GetZoneInterval(instant Instant) ZoneInterval
}

// GetUtcOffset is a convenience wrapper returning just the wall offset in
// force at instant.
func GetUtcOffset(zone DateTimeZone, instant Instant) Offset {
	return zone.GetZoneInterval(instant).WallOffset
}

// ZoneLocalMappingCount classifies how many distinct Instant values a
// LocalDateTime maps to within a particular zone.
type ZoneLocalMappingCount int

const (
	// MappingGap means the local time was skipped entirely (e.g. the hour
	// jumped over by a spring-forward transition).
	MappingGap ZoneLocalMappingCount = 0
	// MappingUnambiguous means exactly one Instant produces this local time.
	MappingUnambiguous ZoneLocalMappingCount = 1
	// MappingAmbiguous means two Instants produce this local time (e.g. the
	// hour repeated by a fall-back transition).
	MappingAmbiguous ZoneLocalMappingCount = 2
)

// ZoneLocalMapping is the result of resolving a LocalDateTime against a
// DateTimeZone: the count of matching instants, and the earlier/later
// zone intervals that bracket the ambiguity (identical to each other in
// the unambiguous case).
type ZoneLocalMapping struct {
	Zone           DateTimeZone
	LocalDateTime  LocalDateTime
	EarlyInterval  ZoneInterval
	LateInterval   ZoneInterval
	Count          ZoneLocalMappingCount
}

// First returns the OffsetDateTime produced by the earlier of the
// (possibly two) candidate intervals, failing with KindSkippedLocalTime
// if the mapping is a gap.
func (m ZoneLocalMapping) First() (OffsetDateTime, error) {
	if m.Count == MappingGap {
		return OffsetDateTime{}, newError(KindSkippedLocalTime, "local time %s falls in a gap in zone %s", m.LocalDateTime, m.Zone.ID())
	}
	return OffsetDateTime{local: m.LocalDateTime, offset: m.EarlyInterval.WallOffset}, nil
}

// Last returns the OffsetDateTime produced by the later of the (possibly
// two) candidate intervals, failing with KindSkippedLocalTime if the
// mapping is a gap.
func (m ZoneLocalMapping) Last() (OffsetDateTime, error) {
	if m.Count == MappingGap {
		return OffsetDateTime{}, newError(KindSkippedLocalTime, "local time %s falls in a gap in zone %s", m.LocalDateTime, m.Zone.ID())
	}
	return OffsetDateTime{local: m.LocalDateTime, offset: m.LateInterval.WallOffset}, nil
}

// Single returns the unique OffsetDateTime for an unambiguous mapping,
// failing with KindSkippedLocalTime for a gap or KindAmbiguousLocalTime
// for an ambiguous mapping.
func (m ZoneLocalMapping) Single() (OffsetDateTime, error) {
	switch m.Count {
	case MappingGap:
		return OffsetDateTime{}, newError(KindSkippedLocalTime, "local time %s falls in a gap in zone %s", m.LocalDateTime, m.Zone.ID())
	case MappingAmbiguous:
		return OffsetDateTime{}, newError(KindAmbiguousLocalTime, "local time %s is ambiguous in zone %s", m.LocalDateTime, m.Zone.ID())
	default:
		return OffsetDateTime{local: m.LocalDateTime, offset: m.EarlyInterval.WallOffset}, nil
	}
}

// MapLocal resolves local against zone, classifying it as a gap,
// unambiguous mapping, or ambiguous mapping. The algorithm takes the
// local date-time's bit pattern as a first-guess Instant (as if it were
// already UTC), finds the zone interval containing it, and then probes
// the immediately preceding and following intervals for a second match —
// the standard technique for resolving local-time ambiguity against an
// arbitrary offset-transition sequence.
func MapLocal(zone DateTimeZone, local LocalDateTime) (ZoneLocalMapping, error) {
	li := local.toLocalInstant()
	firstGuess := Instant(li)
	interval := zone.GetZoneInterval(firstGuess)

	if interval.containsLocal(li) {
		if earlier, ok := earlierMatchingInterval(zone, interval, li); ok {
			return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: earlier, LateInterval: interval, Count: MappingAmbiguous}, nil
		}
		if later, ok := laterMatchingInterval(zone, interval, li); ok {
			return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: interval, LateInterval: later, Count: MappingAmbiguous}, nil
		}
		return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: interval, LateInterval: interval, Count: MappingUnambiguous}, nil
	}

	// A gap mapping carries the interval before the gap as EarlyInterval
	// and the interval after it as LateInterval.
	if li.compare(interval.isoLocalStart()) < 0 {
		if earlier, ok := earlierMatchingInterval(zone, interval, li); ok {
			return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: earlier, LateInterval: earlier, Count: MappingUnambiguous}, nil
		}
		before := zone.GetZoneInterval(interval.Start.MustMinus(Epsilon))
		return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: before, LateInterval: interval, Count: MappingGap}, nil
	}
	if later, ok := laterMatchingInterval(zone, interval, li); ok {
		return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: later, LateInterval: later, Count: MappingUnambiguous}, nil
	}
	after := zone.GetZoneInterval(interval.End)
	return ZoneLocalMapping{Zone: zone, LocalDateTime: local, EarlyInterval: interval, LateInterval: after, Count: MappingGap}, nil
}

func earlierMatchingInterval(zone DateTimeZone, interval ZoneInterval, li localInstant) (ZoneInterval, bool) {
	if !interval.HasStart {
		return ZoneInterval{}, false
	}
	probe := interval.Start.MustMinus(Epsilon)
	candidate := zone.GetZoneInterval(probe)
	if candidate.containsLocal(li) {
		return candidate, true
	}
	return ZoneInterval{}, false
}

func laterMatchingInterval(zone DateTimeZone, interval ZoneInterval, li localInstant) (ZoneInterval, bool) {
	if !interval.HasEnd {
		return ZoneInterval{}, false
	}
	candidate := zone.GetZoneInterval(interval.End)
	if candidate.containsLocal(li) {
		return candidate, true
	}
	return ZoneInterval{}, false
}

// AtStartOfDay returns the earliest ZonedDateTime on date in zone: the
// offset at midnight, unless midnight falls in a gap, in which case the
// result is advanced to the gap's end (the first instant that actually
// exists on the local timeline). If the gap covers the whole date, it
// fails with KindSkippedLocalTime.
func AtStartOfDay(zone DateTimeZone, date LocalDate) (ZonedDateTime, error) {
	midnight := date.AtMidnight()
	mapping, err := MapLocal(zone, midnight)
	if err != nil {
		return ZonedDateTime{}, err
	}
	switch mapping.Count {
	case MappingGap:
		instant := mapping.EarlyInterval.End
		zdt := NewZonedDateTimeFromInstant(instant, zone)
		if zdt.LocalDateTime().Date().DaysSinceEpoch() != date.DaysSinceEpoch() {
			return ZonedDateTime{}, newError(KindSkippedLocalTime, "the whole of %s is skipped in zone %s", date, zone.ID())
		}
		return zdt, nil
	default:
		odt, err := mapping.First()
		if err != nil {
			return ZonedDateTime{}, err
		}
		return ZonedDateTime{local: odt.local, offset: odt.offset, zone: zone}, nil
	}
}

// GetZoneIntervals walks zone's transitions across the given Interval
// (which must be bounded), returning the sequence of ZoneInterval values
// overlapping it. When coalesce is true, adjacent intervals sharing a
// Name, WallOffset and StandardOffset are merged into one.
func GetZoneIntervals(zone DateTimeZone, span Interval, coalesce bool) ([]ZoneInterval, error) {
	start, ok := span.Start()
	if !ok {
		return nil, invariantViolationf("GetZoneIntervals requires a bounded Interval (no start)")
	}
	end, ok := span.End()
	if !ok {
		return nil, invariantViolationf("GetZoneIntervals requires a bounded Interval (no end)")
	}

	var result []ZoneInterval
	cursor := start
	for cursor.IsBefore(end) {
		zi := zone.GetZoneInterval(cursor)
		result = append(result, zi)
		if !zi.HasEnd || !zi.End.IsBefore(end) {
			break
		}
		cursor = zi.End
	}

	if !coalesce || len(result) < 2 {
		return result, nil
	}
	coalesced := result[:1]
	for _, zi := range result[1:] {
		last := &coalesced[len(coalesced)-1]
		if last.Name == zi.Name && last.WallOffset == zi.WallOffset && last.StandardOffset == zi.StandardOffset {
			last.End = zi.End
			last.HasEnd = zi.HasEnd
		} else {
			coalesced = append(coalesced, zi)
		}
	}
	return coalesced, nil
}
