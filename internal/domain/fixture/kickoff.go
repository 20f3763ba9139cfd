package fixture

import (
	"strconv"
	"strings"
	"time"
)

// ParseKickoff turns a raw time string into an instant in loc.
//
// "DD.MM.YYYY HH:MM" (recognised by a '.') and "HH:MM" (recognised by a ':',
// meaning today) are accepted. Anything else, status tokens included, yields now.
func ParseKickoff(raw string, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}

	switch {
	case strings.Contains(raw, "."):
		datePart, timePart, _ := strings.Cut(raw, " ")
		day, month, year, ok := splitDate(datePart)
		if !ok {
			return now
		}
		hour, minute := 0, 0
		if timePart != "" {
			if hour, minute, ok = splitClock(timePart); !ok {
				return now
			}
		}
		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	case strings.Contains(raw, ":"):
		hour, minute, ok := splitClock(raw)
		if !ok {
			return now
		}
		local := now.In(loc)
		return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	default:
		return now
	}
}

func splitDate(value string) (day, month, year int, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) < 3 {
		return 0, 0, 0, false
	}
	var err error
	if day, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

func splitClock(value string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, 0, false
	}
	var err error
	if hour, err = strconv.Atoi(strings.TrimSpace(h)); err != nil {
		return 0, 0, false
	}
	if minute, err = strconv.Atoi(strings.TrimSpace(m)); err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
