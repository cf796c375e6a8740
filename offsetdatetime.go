package chronos

import "fmt"

// OffsetDateTime pairs a LocalDateTime with a fixed Offset from UTC: it
// knows precisely which Instant it represents, but not which DateTimeZone
// (if any) produced that offset. Compare ZonedDateTime, which also
// carries the zone.
type OffsetDateTime struct {
	local  LocalDateTime
	offset Offset
}

// NewOffsetDateTime pairs local with offset.
func NewOffsetDateTime(local LocalDateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{local: local, offset: offset}
}

// NewOffsetDateTimeFromInstant derives the OffsetDateTime for instant at
// the given fixed offset.
func NewOffsetDateTimeFromInstant(instant Instant, offset Offset) OffsetDateTime {
	li := instant.plusOffset(offset)
	local := localDateTimeFromLocalInstant(li, Gregorian())
	return OffsetDateTime{local: local, offset: offset}
}

func (odt OffsetDateTime) LocalDateTime() LocalDateTime { return odt.local }
func (odt OffsetDateTime) Offset() Offset                { return odt.offset }

func (odt OffsetDateTime) Year() int       { return odt.local.Year() }
func (odt OffsetDateTime) Month() int      { return odt.local.Month() }
func (odt OffsetDateTime) Day() int        { return odt.local.Day() }
func (odt OffsetDateTime) Hour() int       { return odt.local.Hour() }
func (odt OffsetDateTime) Minute() int     { return odt.local.Minute() }
func (odt OffsetDateTime) Second() int     { return odt.local.Second() }
func (odt OffsetDateTime) Nanosecond() int { return odt.local.Nanosecond() }

// ToInstant returns the absolute Instant this date-time and offset
// together represent: local - offset.
func (odt OffsetDateTime) ToInstant() Instant {
	li := odt.local.toLocalInstant()
	return li.minus(odt.offset)
}

// WithOffset re-expresses the same Instant using a different offset,
// recomputing the local fields accordingly.
func (odt OffsetDateTime) WithOffset(newOffset Offset) OffsetDateTime {
	return NewOffsetDateTimeFromInstant(odt.ToInstant(), newOffset)
}

// Compare orders two OffsetDateTime values by the Instant they represent,
// not by local field order, so two equal instants expressed with
// different offsets compare equal.
func (odt OffsetDateTime) Compare(other OffsetDateTime) int {
	return odt.ToInstant().Compare(other.ToInstant())
}

func (odt OffsetDateTime) IsBefore(other OffsetDateTime) bool { return odt.Compare(other) < 0 }
func (odt OffsetDateTime) IsAfter(other OffsetDateTime) bool  { return odt.Compare(other) > 0 }
func (odt OffsetDateTime) Equal(other OffsetDateTime) bool    { return odt.Compare(other) == 0 }

func (odt OffsetDateTime) String() string {
	return fmt.Sprintf("%s%s", odt.local.String(), odt.offset.String())
}
