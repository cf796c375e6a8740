package chronos

import "fmt"

// FixedDateTimeZone is a DateTimeZone with a single constant offset for
// all time, such as "UTC" or "Etc/GMT-5". It has exactly one
// ZoneInterval, spanning the whole representable timeline.
type FixedDateTimeZone struct {
	id     string
	offset Offset
}

// NewFixedDateTimeZone constructs a FixedDateTimeZone with the given ID
// and constant offset.
func NewFixedDateTimeZone(id string, offset Offset) FixedDateTimeZone {
	return FixedDateTimeZone{id: id, offset: offset}
}

// Utc is the fixed zone UTC (offset zero).
var Utc DateTimeZone = FixedDateTimeZone{id: "UTC", offset: OffsetZero}

func (z FixedDateTimeZone) ID() string { return z.id }

func (z FixedDateTimeZone) GetZoneInterval(Instant) ZoneInterval {
	return ZoneInterval{
		Name:           z.id,
		WallOffset:     z.offset,
		StandardOffset: z.offset,
	}
}

// fixedZoneCache holds a FixedDateTimeZone for every 30-minute offset in
// [-12:00, +15:00], the range covering every offset actually observed in
// use, named "UTC+HH:mm"/"UTC-HH:mm"/"UTC" per the usual IANA Etc/GMT
// naming convention (inverted sign, which this cache does not replicate —
// names here read the natural way round).
var fixedZoneCache = buildFixedZoneCache()

func buildFixedZoneCache() map[int64]FixedDateTimeZone {
	cache := make(map[int64]FixedDateTimeZone)
	const step = 30 * SecondsPerMinute
	for seconds := int64(-12 * SecondsPerHour); seconds <= 15*SecondsPerHour; seconds += step {
		offset := MustFromSecondsOffset(seconds)
		id := "UTC"
		if seconds != 0 {
			id = fmt.Sprintf("UTC%s", offset.String())
		}
		cache[seconds] = NewFixedDateTimeZone(id, offset)
	}
	return cache
}

// FixedZoneForOffset returns the cached FixedDateTimeZone for offset,
// constructing (but not caching) a fresh one if offset falls outside the
// cache's 30-minute grid.
func FixedZoneForOffset(offset Offset) FixedDateTimeZone {
	if z, ok := fixedZoneCache[offset.Seconds()]; ok {
		return z
	}
	return NewFixedDateTimeZone(fmt.Sprintf("UTC%s", offset.String()), offset)
}
