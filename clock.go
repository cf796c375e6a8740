package chronos

import "time"

// Clock is a source of the current Instant. Production code should take
// a Clock as a dependency rather than calling SystemClock directly, so
// that tests can substitute a fixed or stepped fake.
type Clock interface {
	GetCurrentInstant() Instant
}

// SystemClock is the Clock backed by the host's wall-clock time.
type SystemClock struct{}

func (SystemClock) GetCurrentInstant() Instant {
	return instantFromGoTime(time.Now())
}

// ZonedClock pairs a Clock with a DateTimeZone, returning ZonedDateTime
// values directly.
type ZonedClock struct {
	clock Clock
	zone  DateTimeZone
}

// NewZonedClock pairs clock with zone.
func NewZonedClock(clock Clock, zone DateTimeZone) ZonedClock {
	return ZonedClock{clock: clock, zone: zone}
}

// Now returns the current ZonedDateTime in the clock's zone.
func (zc ZonedClock) Now() ZonedDateTime {
	return NewZonedDateTimeFromInstant(zc.clock.GetCurrentInstant(), zc.zone)
}

// Today returns the current LocalDate in the clock's zone.
func (zc ZonedClock) Today() LocalDate {
	return zc.Now().LocalDateTime().Date()
}
