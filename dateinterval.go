package chronos

import "fmt"

// DateInterval is an inclusive-inclusive range of LocalDate values sharing
// a single calendar, [Start, End]. Unlike Interval, both endpoints are
// always present and always included.
type DateInterval struct {
	start, end LocalDate
}

// NewDateInterval constructs a DateInterval, failing with
// KindInvariantViolation if start and end use different calendars, or
// with KindOutOfRange if end precedes start.
func NewDateInterval(start, end LocalDate) (DateInterval, error) {
	cmp, err := start.Compare(end)
	if err != nil {
		return DateInterval{}, err
	}
	if cmp > 0 {
		return DateInterval{}, outOfRangef("DateInterval end %s precedes start %s", end, start)
	}
	return DateInterval{start: start, end: end}, nil
}

func MustNewDateInterval(start, end LocalDate) DateInterval {
	iv, err := NewDateInterval(start, end)
	if err != nil {
		panic(err.Error())
	}
	return iv
}

func (iv DateInterval) Start() LocalDate { return iv.start }
func (iv DateInterval) End() LocalDate    { return iv.end }

// Length returns the number of days in the interval, counting both
// endpoints (e.g. a one-day interval where Start == End has Length 1).
func (iv DateInterval) Length() int64 {
	return iv.end.DaysSinceEpoch() - iv.start.DaysSinceEpoch() + 1
}

// Contains reports whether date falls within [Start, End], inclusive.
// date must share the interval's calendar.
func (iv DateInterval) Contains(date LocalDate) (bool, error) {
	cmpStart, err := date.Compare(iv.start)
	if err != nil {
		return false, err
	}
	cmpEnd, err := date.Compare(iv.end)
	if err != nil {
		return false, err
	}
	return cmpStart >= 0 && cmpEnd <= 0, nil
}

// ContainsInterval reports whether other is entirely contained within iv.
// Both must share a calendar.
func (iv DateInterval) ContainsInterval(other DateInterval) (bool, error) {
	startOK, err := iv.Contains(other.start)
	if err != nil {
		return false, err
	}
	endOK, err := iv.Contains(other.end)
	if err != nil {
		return false, err
	}
	return startOK && endOK, nil
}

// Equal reports whether iv and other describe the same [Start, End]
// range.
func (iv DateInterval) Equal(other DateInterval) bool {
	return iv.start.Equal(other.start) && iv.end.Equal(other.end)
}

func (iv DateInterval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.start, iv.end)
}
