package chronos

import "fmt"

// ZonedDateTime pairs a LocalDateTime, the Offset in force, and the
// DateTimeZone that produced it. It is the only type in the package that
// can answer "what time is it in Tokyo" while also knowing the absolute
// Instant involved.
type ZonedDateTime struct {
	local  LocalDateTime
	offset Offset
	zone   DateTimeZone
}

// NewZonedDateTime resolves local against zone using resolver, which
// decides how gaps and ambiguities are handled.
func NewZonedDateTime(local LocalDateTime, zone DateTimeZone, resolver ZoneLocalMappingResolver) (ZonedDateTime, error) {
	mapping, err := MapLocal(zone, local)
	if err != nil {
		return ZonedDateTime{}, err
	}
	odt, err := resolver(mapping)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{local: odt.local, offset: odt.offset, zone: zone}, nil
}

// NewZonedDateTimeFromInstant derives the ZonedDateTime for instant in
// zone: there is exactly one such value, since instants are never
// ambiguous.
func NewZonedDateTimeFromInstant(instant Instant, zone DateTimeZone) ZonedDateTime {
	offset := GetUtcOffset(zone, instant)
	li := instant.plusOffset(offset)
	local := localDateTimeFromLocalInstant(li, Gregorian())
	return ZonedDateTime{local: local, offset: offset, zone: zone}
}

func (z ZonedDateTime) LocalDateTime() LocalDateTime { return z.local }
func (z ZonedDateTime) Offset() Offset                { return z.offset }
func (z ZonedDateTime) Zone() DateTimeZone            { return z.zone }

func (z ZonedDateTime) Year() int       { return z.local.Year() }
func (z ZonedDateTime) Month() int      { return z.local.Month() }
func (z ZonedDateTime) Day() int        { return z.local.Day() }
func (z ZonedDateTime) Hour() int       { return z.local.Hour() }
func (z ZonedDateTime) Minute() int     { return z.local.Minute() }
func (z ZonedDateTime) Second() int     { return z.local.Second() }
func (z ZonedDateTime) Nanosecond() int { return z.local.Nanosecond() }

// ToInstant returns the absolute Instant this value represents.
func (z ZonedDateTime) ToInstant() Instant {
	li := z.local.toLocalInstant()
	return li.minus(z.offset)
}

// ToOffsetDateTime discards the zone, keeping only the local date-time
// and the offset that was in force.
func (z ZonedDateTime) ToOffsetDateTime() OffsetDateTime {
	return OffsetDateTime{local: z.local, offset: z.offset}
}

// WithZone re-expresses the same Instant in a different zone.
func (z ZonedDateTime) WithZone(other DateTimeZone) ZonedDateTime {
	return NewZonedDateTimeFromInstant(z.ToInstant(), other)
}

// Compare orders two ZonedDateTime values by the Instant they represent.
func (z ZonedDateTime) Compare(other ZonedDateTime) int {
	return z.ToInstant().Compare(other.ToInstant())
}

func (z ZonedDateTime) IsBefore(other ZonedDateTime) bool { return z.Compare(other) < 0 }
func (z ZonedDateTime) IsAfter(other ZonedDateTime) bool  { return z.Compare(other) > 0 }
func (z ZonedDateTime) Equal(other ZonedDateTime) bool    { return z.Compare(other) == 0 }

func (z ZonedDateTime) String() string {
	return fmt.Sprintf("%s%s %s", z.local.String(), z.offset.String(), z.zone.ID())
}
