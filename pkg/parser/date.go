package parser

import (
	"strconv"
	"strings"
	"time"
)

// ParseSlashDate parses slash-delimited dates that appear in both M/D/YYYY
// and D/M/YYYY form. The MM/DD reading is tried first, so dates where both
// components are <= 12 always resolve as MM/DD. The sheets contain no schema
// contract that would let us do better; callers that need the other reading
// must normalize upstream.
func ParseSlashDate(value string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	first, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	second, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	var month, day int
	switch {
	case first <= 12 && second <= 31:
		month, day = first, second
	case second <= 12 && first <= 31:
		month, day = second, first
	default:
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// ParseInputTimestamp parses the debt sheet's "DD/MM/YYYY HH.MM.SS" input
// timestamps into a sortable instant. The date half is unambiguous DD/MM.
// A missing or malformed time half yields midnight; a malformed date half
// fails the parse.
func ParseInputTimestamp(value string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) == 0 {
		return time.Time{}, false
	}

	dateParts := strings.Split(fields[0], "/")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(dateParts[0])
	month, err2 := strconv.Atoi(dateParts[1])
	year, err3 := strconv.Atoi(dateParts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	var hour, minute, second int
	if len(fields) > 1 {
		timeParts := strings.Split(fields[1], ".")
		if len(timeParts) == 3 {
			hour, _ = strconv.Atoi(timeParts[0])
			minute, _ = strconv.Atoi(timeParts[1])
			second, _ = strconv.Atoi(timeParts[2])
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local), true
}
