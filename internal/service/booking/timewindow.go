package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	re12Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
	re24Hour = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseWindow normalises a pair of raw time strings into absolute start and
// end instants anchored to the calendar day of day (time-of-day truncated
// first). Accepted forms, tried in order: 12-hour "H:MM AM/PM", 24-hour
// "H:MM", and RFC 3339 timestamps.
//
// Pure function: no clock reads, no store access.
func ParseWindow(startRaw, endRaw string, day time.Time) (time.Time, time.Time, error) {
	midnight := Midnight(day)

	start, err := parseInstant(startRaw, midnight)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseInstant(endRaw, midnight)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return start, end, nil
}

// Midnight truncates t to the start of its calendar day, preserving the
// location. All capacity bucketing keys off this instant.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseInstant(raw string, midnight time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	if m := re12Hour.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return time.Time{}, ErrInvalidTimeFormat
		}
		pm := strings.EqualFold(m[3], "PM")
		switch {
		case pm && hour != 12:
			hour += 12
		case !pm && hour == 12:
			hour = 0
		}
		return midnight.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
	}

	if m := re24Hour.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		// The regex only constrains shape; bound-check the values too.
		if hour > 23 || minute > 59 {
			return time.Time{}, ErrInvalidTimeFormat
		}
		return midnight.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidTimeFormat
}
