package parser

import (
	"testing"
	"time"
)

func TestParseSlashDate(t *testing.T) {
	cases := []struct {
		in    string
		ok    bool
		year  int
		month time.Month
		day   int
	}{
		{"6/29/2023", true, 2023, time.June, 29},  // MM/DD branch
		{"29/6/2023", true, 2023, time.June, 29},  // DD/MM branch
		{"5/6/2023", true, 2023, time.May, 6},     // ambiguous, MM/DD wins
		{"15/7/2025", true, 2025, time.July, 15},  // DD/MM only
		{"13/13/2023", false, 0, 0, 0},
		{"6/29", false, 0, 0, 0},
		{"a/b/c", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}

	for _, c := range cases {
		got, ok := ParseSlashDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseSlashDate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if got.Year() != c.year || got.Month() != c.month || got.Day() != c.day {
			t.Errorf("ParseSlashDate(%q) = %v, want %d-%d-%d", c.in, got, c.year, c.month, c.day)
		}
	}
}

func TestParseInputTimestamp(t *testing.T) {
	got, ok := ParseInputTimestamp("15/07/2025 15.13.18")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2025, time.July, 15, 15, 13, 18, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// date-only input resolves to midnight
	got, ok = ParseInputTimestamp("26/08/2023")
	if !ok {
		t.Fatal("expected date-only parse to succeed")
	}
	if got.Hour() != 0 || got.Day() != 26 || got.Month() != time.August {
		t.Errorf("unexpected date-only result: %v", got)
	}

	if _, ok := ParseInputTimestamp(""); ok {
		t.Error("empty input should fail")
	}
	if _, ok := ParseInputTimestamp("not a date"); ok {
		t.Error("malformed input should fail")
	}
}

func TestParseInputTimestampSortable(t *testing.T) {
	earlier, _ := ParseInputTimestamp("16/09/2023 23.22.11")
	later, _ := ParseInputTimestamp("15/07/2025 15.13.18")
	if !earlier.Before(later) {
		t.Errorf("expected %v before %v", earlier, later)
	}
}
