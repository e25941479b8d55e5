package services

import (
	"strconv"
	"strings"
)

// ParseTimeOfDay converts a textual time of day into minutes since midnight.
// Two forms are accepted: 24-hour "HH:MM" and 12-hour "2pm" / "2 PM". Empty
// input and the "N/A" placeholder report ok=false, as does anything that
// fails to parse. Unparsable times are expected in imported scheduling data
// and are never an error.
//
// The 12-hour form keeps only the hour: "2:15pm" yields 840, not 855. The
// legacy dashboard this data comes from recorded am/pm times without
// meaningful minutes, so they are discarded here as well.
func ParseTimeOfDay(raw string) (minutes int, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0, false
	}

	lower := strings.ToLower(s)
	isPM := strings.Contains(lower, "pm")
	isAM := strings.Contains(lower, "am")

	if isAM || isPM {
		hour, ok := leadingInt(lower)
		if !ok {
			return 0, false
		}
		if isPM && hour != 12 {
			hour += 12
		}
		if isAM && hour == 12 {
			hour = 0
		}
		return hour * 60, true
	}

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH != nil || errM != nil {
			return 0, false
		}
		return hour*60 + minute, true
	}

	hour, ok := leadingInt(s)
	if !ok {
		return 0, false
	}
	return hour * 60, true
}

// leadingInt parses the run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}
