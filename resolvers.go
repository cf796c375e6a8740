package chronos

// ZoneLocalMappingResolver turns a ZoneLocalMapping (the result of
// resolving a LocalDateTime against a DateTimeZone) into a single
// OffsetDateTime, choosing how to handle gaps and ambiguities.
type ZoneLocalMappingResolver func(mapping ZoneLocalMapping) (OffsetDateTime, error)

// ComposeResolver builds a ZoneLocalMappingResolver out of independent
// ambiguous-time and skipped-time strategies, dispatching on
// mapping.Count. Unambiguous mappings always resolve via mapping.First
// (equivalently Single), regardless of either strategy.
func ComposeResolver(ambiguous, skipped ZoneLocalMappingResolver) ZoneLocalMappingResolver {
	return func(mapping ZoneLocalMapping) (OffsetDateTime, error) {
		switch mapping.Count {
		case MappingAmbiguous:
			return ambiguous(mapping)
		case MappingGap:
			return skipped(mapping)
		default:
			return mapping.First()
		}
	}
}

// ReturnEarlier resolves an ambiguous mapping to the earlier of the two
// candidate instants.
func ReturnEarlier(mapping ZoneLocalMapping) (OffsetDateTime, error) {
	return mapping.First()
}

// ReturnLater resolves an ambiguous mapping to the later of the two
// candidate instants.
func ReturnLater(mapping ZoneLocalMapping) (OffsetDateTime, error) {
	return mapping.Last()
}

// StartOfIntervalAfter resolves a gap mapping by shifting the local time
// forward by the gap's width (the difference between the late and early
// wall offsets) and interpreting the result at the late offset, per
// NodaTime's ReturnForwardShifted: a local time that falls partway
// through the gap lands the same distance past the gap's end, not
// snapped to the gap's boundary.
func StartOfIntervalAfter(mapping ZoneLocalMapping) (OffsetDateTime, error) {
	if mapping.Count != MappingGap {
		return mapping.First()
	}
	gapWidth, err := mapping.LateInterval.WallOffset.Minus(mapping.EarlyInterval.WallOffset)
	if err != nil {
		return OffsetDateTime{}, err
	}
	shifted := mapping.LocalDateTime.PlusNanoseconds(gapWidth.Nanoseconds())
	return NewOffsetDateTime(shifted, mapping.LateInterval.WallOffset), nil
}

// EndOfIntervalBefore resolves a gap mapping by retreating to the last
// instant that existed before the gap began, expressed at the earlier
// interval's wall offset.
func EndOfIntervalBefore(mapping ZoneLocalMapping) (OffsetDateTime, error) {
	if mapping.Count != MappingGap {
		return mapping.First()
	}
	instant := mapping.EarlyInterval.End.MustMinus(Epsilon)
	return NewOffsetDateTimeFromInstant(instant, mapping.EarlyInterval.WallOffset), nil
}

// strictAmbiguous and strictSkipped both delegate to Single, which is
// guaranteed to fail for their respective mapping counts; this is just
// how StrictResolver below is expressed as a composition for symmetry
// with LenientResolver.
func strictAmbiguous(mapping ZoneLocalMapping) (OffsetDateTime, error) { return mapping.Single() }
func strictSkipped(mapping ZoneLocalMapping) (OffsetDateTime, error)  { return mapping.Single() }

// StrictResolver never guesses: it fails with KindAmbiguousLocalTime or
// KindSkippedLocalTime rather than silently picking an instant.
var StrictResolver ZoneLocalMappingResolver = ComposeResolver(strictAmbiguous, strictSkipped)

// LenientResolver never fails: ambiguous local times resolve to the
// earlier instant, and a local time in a gap is shifted forward by the
// gap's width (see StartOfIntervalAfter).
var LenientResolver ZoneLocalMappingResolver = ComposeResolver(ReturnEarlier, StartOfIntervalAfter)
