package parser

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

const categoryCSV = `Date entry,Lokalan,itemku,Vcgamer,Rate Lokalan,Rate itemku,Rate Vcgamer,Total Lokalan,Total itemku,Total Vcgamer
6/29/2023,10,20,0,95,90,85,"Rp 950.000","Rp 1.800.000",0
6/30/2023,5,15,0,95,90,85,"Rp 475.000","Rp 1.350.000",0
short,row
`

func TestParseCategorySales(t *testing.T) {
	p := New(log.Default())
	got := p.ParseCategorySales(Tokenize(categoryCSV))

	// Vcgamer is all zeros and must be omitted.
	if len(got) != 2 {
		t.Fatalf("expected 2 platforms, got %d: %+v", len(got), got)
	}

	// Sorted by revenue descending: itemku first.
	if got[0].CategoryName != "itemku" || got[1].CategoryName != "lokalan" {
		t.Errorf("unexpected order: %s, %s", got[0].CategoryName, got[1].CategoryName)
	}
	if got[0].TotalQuantity != 35 || got[0].TotalRevenue != 3150000 {
		t.Errorf("unexpected itemku totals: %+v", got[0])
	}
	if got[1].TotalQuantity != 15 || got[1].TotalRevenue != 1425000 {
		t.Errorf("unexpected lokalan totals: %+v", got[1])
	}
	if got[0].ID != "itemku-total" {
		t.Errorf("unexpected id %q", got[0].ID)
	}
	if got[0].DisplayName != "itemku" || got[1].DisplayName != "Lokalan" {
		t.Errorf("unexpected display names: %q, %q", got[0].DisplayName, got[1].DisplayName)
	}
}

func TestParseCategorySalesInRange(t *testing.T) {
	p := New(log.Default())
	start := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.Local)
	end := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.Local)

	got := p.ParseCategorySalesInRange(Tokenize(categoryCSV), start, end)

	if len(got) != 2 {
		t.Fatalf("expected 2 platforms, got %d: %+v", len(got), got)
	}
	if got[0].TotalRevenue != 1350000 || got[0].CategoryName != "itemku" {
		t.Errorf("expected only 6/30 itemku revenue, got %+v", got[0])
	}
	if got[1].TotalRevenue != 475000 {
		t.Errorf("expected only 6/30 lokalan revenue, got %+v", got[1])
	}
	if got[0].ID != "itemku-filtered" {
		t.Errorf("unexpected id %q", got[0].ID)
	}
}

func TestParseCategorySalesInRangeExcludesEnd(t *testing.T) {
	p := New(log.Default())
	start := time.Date(2023, time.June, 29, 0, 0, 0, 0, time.Local)
	end := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.Local)

	got := p.ParseCategorySalesInRange(Tokenize(categoryCSV), start, end)
	if len(got) == 0 {
		t.Fatal("expected 6/29 row to be included")
	}
	var total float64
	for _, c := range got {
		total += c.TotalRevenue
	}
	if total != 950000+1800000 {
		t.Errorf("end of range should be exclusive, got total revenue %v", total)
	}
}

func TestDigitsOnlyInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1.250", 1250},
		{"1.250 pcs", 1250},
		{"42", 42},
		{"", 0},
		{"abc", 0},
	}
	for _, c := range cases {
		if got := digitsOnlyInt(c.in); got != c.want {
			t.Errorf("digitsOnlyInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
