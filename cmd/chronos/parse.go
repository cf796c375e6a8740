package main

import (
	"fmt"
	"time"

	"github.com/pachecot/chronos"
)

// parseDate parses a plain "YYYY-MM-DD" date, the only date shape the CLI
// accepts on the command line. Full text-pattern parsing is out of scope
// for the core package, so this glue lives here instead.
func parseDate(s string) (chronos.LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return chronos.LocalDate{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return chronos.NewLocalDate(t.Year(), int(t.Month()), t.Day())
}

// parseLocalDateTime parses "YYYY-MM-DDTHH:MM:SS" with an optional
// fractional-second suffix.
func parseLocalDateTime(s string) (chronos.LocalDateTime, error) {
	layouts := []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	var t time.Time
	var err error
	for _, layout := range layouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			break
		}
	}
	if err != nil {
		return chronos.LocalDateTime{}, fmt.Errorf("invalid date-time %q (want YYYY-MM-DDTHH:MM:SS): %w", s, err)
	}
	return chronos.NewLocalDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// parseInstant parses an RFC 3339 instant such as "2024-07-29T14:30:00Z".
func parseInstant(s string) (chronos.Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return chronos.Instant{}, fmt.Errorf("invalid instant %q (want RFC3339): %w", s, err)
	}
	instant, err := chronos.FromUnixTimeSeconds(t.Unix())
	if err != nil {
		return chronos.Instant{}, err
	}
	if ns := t.Nanosecond(); ns != 0 {
		nsDuration, err := chronos.FromNanosecondsInt64(int64(ns))
		if err != nil {
			return chronos.Instant{}, err
		}
		instant, err = instant.Plus(nsDuration)
		if err != nil {
			return chronos.Instant{}, err
		}
	}
	return instant, nil
}

// formatZonedDateTime renders z using layout, a Go reference-time layout
// string (from config.Config.Layout), by bridging through time.Time.
func formatZonedDateTime(z chronos.ZonedDateTime, layout string) string {
	off := z.Offset()
	loc := time.FixedZone(z.Zone().ID(), int(off.Seconds()))
	t := time.Date(z.Year(), time.Month(z.Month()), z.Day(), z.Hour(), z.Minute(), z.Second(), z.Nanosecond(), loc)
	return t.Format(layout)
}
