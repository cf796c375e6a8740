// Package chronos is a calendar-and-time-zone kernel: an Instant/Duration/
// Offset value layer, a LocalDate/LocalTime/LocalDateTime civil-calendar
// layer built on a pluggable CalendarSystem, and a DateTimeZone subsystem
// mapping between local civil time and the UTC timeline.
//
// It does not parse or format text, does not read binary TZif zoneinfo
// files directly (ZoneProvider delegates to the host's time.LoadLocation
// instead), and does not model leap seconds or sub-nanosecond precision.
package chronos
