package datefilter

import (
	"testing"
	"time"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// Fixed anchor: Saturday 15 July 2023, mid-afternoon.
var now = time.Date(2023, time.July, 15, 15, 30, 0, 0, time.Local)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRangeFor(t *testing.T) {
	cases := []struct {
		sel   Selector
		start time.Time
		end   time.Time
	}{
		{Today, day(2023, time.July, 15), day(2023, time.July, 16)},
		{Yesterday, day(2023, time.July, 14), day(2023, time.July, 15)},
		{Week, day(2023, time.July, 8), day(2023, time.July, 16)},
		{TwoWeeks, day(2023, time.July, 1), day(2023, time.July, 8)},
		{Month, day(2023, time.June, 15), day(2023, time.July, 16)},
		{Year, day(2023, time.January, 1), day(2023, time.July, 16)},
		{LastYear, day(2022, time.January, 1), day(2023, time.January, 1)},
	}

	for _, c := range cases {
		r, ok := RangeFor(c.sel, now)
		if !ok {
			t.Errorf("RangeFor(%s) should succeed", c.sel)
			continue
		}
		if !r.Start.Equal(c.start) || !r.End.Equal(c.end) {
			t.Errorf("RangeFor(%s) = [%v, %v), want [%v, %v)", c.sel, r.Start, r.End, c.start, c.end)
		}
	}

	if _, ok := RangeFor("fortnight", now); ok {
		t.Error("unknown selector should not produce a range")
	}
}

func TestRangeContainsIsHalfOpen(t *testing.T) {
	r, _ := RangeFor(Yesterday, now)

	if !r.Contains(day(2023, time.July, 14)) {
		t.Error("start boundary should be included")
	}
	if r.Contains(day(2023, time.July, 15)) {
		t.Error("end boundary should be excluded")
	}
	if r.Contains(day(2023, time.July, 13)) {
		t.Error("day before range should be excluded")
	}
}

func TestParseSelector(t *testing.T) {
	for _, s := range []string{"today", "yesterday", "week", "2weeks", "month", "year", "lastYear"} {
		if _, ok := ParseSelector(s); !ok {
			t.Errorf("ParseSelector(%q) should succeed", s)
		}
	}
	if _, ok := ParseSelector("LASTYEAR"); ok {
		t.Error("selectors are case sensitive")
	}
	if _, ok := ParseSelector(""); ok {
		t.Error("empty selector should fail")
	}
}

func TestSalesFilter(t *testing.T) {
	sales := []models.Sale{
		{ID: "in", DateEntry: "7/15/2023"},
		{ID: "out", DateEntry: "7/1/2023"},
		{ID: "bad", DateEntry: "not a date"},
	}

	got := Sales(sales, Today, now)
	if len(got) != 1 || got[0].ID != "in" {
		t.Errorf("unexpected filter result: %+v", got)
	}

	// Unknown selectors pass everything through untouched.
	if got := Sales(sales, "bogus", now); len(got) != 3 {
		t.Errorf("unknown selector should keep everything, got %d", len(got))
	}
}

func TestTransactionsFilter(t *testing.T) {
	txs := []models.Transaction{
		{ID: "a", DateOfEntry: "14/7/2023"},
		{ID: "b", DateOfEntry: "15/7/2023"},
		{ID: "c", DateOfEntry: ""},
	}

	got := Transactions(txs, Yesterday, now)
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("unexpected filter result: %+v", got)
	}
}

func TestSoldItemsFilter(t *testing.T) {
	items := []models.SoldItem{
		{ID: "old", SaleDate: "1/1/2022"},
		{ID: "older", SaleDate: "31/12/2022"},
		{ID: "current", SaleDate: "1/1/2023"},
	}

	got := SoldItems(items, LastYear, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 items in last year, got %d: %+v", len(got), got)
	}
	if got[0].ID != "old" || got[1].ID != "older" {
		t.Errorf("unexpected items kept: %+v", got)
	}
}
