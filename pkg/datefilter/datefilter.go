// Package datefilter turns symbolic range selectors into half-open local-time
// intervals and filters date-bearing record collections against them.
package datefilter

import (
	"time"

	"github.com/anandaputra/ngsdash/pkg/models"
	"github.com/anandaputra/ngsdash/pkg/parser"
)

// Selector is a symbolic date range anchored at the current day.
type Selector string

const (
	Today     Selector = "today"
	Yesterday Selector = "yesterday"
	Week      Selector = "week"
	TwoWeeks  Selector = "2weeks"
	Month     Selector = "month"
	Year      Selector = "year"
	LastYear  Selector = "lastYear"
)

// ParseSelector validates a raw selector string.
func ParseSelector(s string) (Selector, bool) {
	switch Selector(s) {
	case Today, Yesterday, Week, TwoWeeks, Month, Year, LastYear:
		return Selector(s), true
	}
	return "", false
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// RangeFor computes the interval for a selector. All boundaries derive from
// local midnight of now's day (T0):
//
//	today      [T0, T0+1d)
//	yesterday  [T0-1d, T0)
//	week       [T0-7d, T0+1d)
//	2weeks     [T0-14d, T0-7d)
//	month      [T0-30d, T0+1d)
//	year       [Jan 1, T0+1d)
//	lastYear   [Jan 1 of year-1, Jan 1 of year)
func RangeFor(sel Selector, now time.Time) (Range, bool) {
	t0 := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := t0.AddDate(0, 0, 1)

	switch sel {
	case Today:
		return Range{Start: t0, End: tomorrow}, true
	case Yesterday:
		return Range{Start: t0.AddDate(0, 0, -1), End: t0}, true
	case Week:
		return Range{Start: t0.AddDate(0, 0, -7), End: tomorrow}, true
	case TwoWeeks:
		return Range{Start: t0.AddDate(0, 0, -14), End: t0.AddDate(0, 0, -7)}, true
	case Month:
		return Range{Start: t0.AddDate(0, 0, -30), End: tomorrow}, true
	case Year:
		return Range{Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), End: tomorrow}, true
	case LastYear:
		return Range{
			Start: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()),
			End:   time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()),
		}, true
	}
	return Range{}, false
}

// Sales keeps sales whose DateEntry parses and falls inside the selector's
// range. Unknown selectors and unparseable dates drop nothing and everything
// respectively, mirroring the dashboard's lenient policy.
func Sales(sales []models.Sale, sel Selector, now time.Time) []models.Sale {
	r, ok := RangeFor(sel, now)
	if !ok {
		return sales
	}
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if d, ok := parser.ParseSlashDate(s.DateEntry); ok && r.Contains(d) {
			out = append(out, s)
		}
	}
	return out
}

// Transactions filters transaction records by DateOfEntry.
func Transactions(txs []models.Transaction, sel Selector, now time.Time) []models.Transaction {
	r, ok := RangeFor(sel, now)
	if !ok {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if d, ok := parser.ParseSlashDate(t.DateOfEntry); ok && r.Contains(d) {
			out = append(out, t)
		}
	}
	return out
}

// SoldItems filters sold-item records by SaleDate.
func SoldItems(items []models.SoldItem, sel Selector, now time.Time) []models.SoldItem {
	r, ok := RangeFor(sel, now)
	if !ok {
		return items
	}
	out := make([]models.SoldItem, 0, len(items))
	for _, it := range items {
		if d, ok := parser.ParseSlashDate(it.SaleDate); ok && r.Contains(d) {
			out = append(out, it)
		}
	}
	return out
}
