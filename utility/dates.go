package utility

import (
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/stream"
)

// dateLayouts are tried in order when parsing a date from a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
}

// AsDate casts v to a date (midnight UTC). Accepted inputs are time.Time
// values and strings in one of the supported layouts.
func AsDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return truncateToDate(d), nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, d); err == nil {
				return truncateToDate(parsed), nil
			}
		}
		return time.Time{}, errors.InvalidInput("date", "unrecognized date format").WithDetail("value", d)
	default:
		return time.Time{}, errors.InvalidInput("date", "expected time.Time or string")
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange generates the dates between start and end in steps of
// intervalDays. The end date is included only when includeEnd is true.
// start must not be after end (strictly before when includeEnd is false).
func DateRange(start, end any, includeEnd bool, intervalDays int) ([]time.Time, error) {
	if intervalDays < 1 {
		return nil, errors.InvalidInput("intervalDays", "interval must be >= 1")
	}
	from, err := AsDate(start)
	if err != nil {
		return nil, err
	}
	to, err := AsDate(end)
	if err != nil {
		return nil, err
	}
	if includeEnd {
		if from.After(to) {
			return nil, errors.InvalidInput("start", "start date is after end date")
		}
	} else {
		if !from.Before(to) {
			return nil, errors.InvalidInput("start", "start date is not before end date")
		}
		to = to.AddDate(0, 0, -1)
	}

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, intervalDays) {
		out = append(out, d)
	}
	return out, nil
}

// DateStream is like DateRange but returns a lazy stream over the dates.
func DateStream(start, end any, includeEnd bool, intervalDays int) (*stream.Stream[time.Time], error) {
	dates, err := DateRange(start, end, includeEnd, intervalDays)
	if err != nil {
		return nil, err
	}
	return stream.FromSlice(dates), nil
}
