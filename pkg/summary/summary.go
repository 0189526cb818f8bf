// Package summary derives aggregate views from parsed record collections.
// Every function here is pure: same input, same output, no hidden state.
package summary

import (
	"sort"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// SalesSummary is the headline view of the gold-trading sheet.
type SalesSummary struct {
	TotalRevenue       float64            `json:"totalRevenue"`
	TotalPurchase      float64            `json:"totalPurchase"`
	TotalProfit        float64            `json:"totalProfit"`
	TotalTransactions  int                `json:"totalTransactions"`
	AverageTransaction float64            `json:"averageTransaction"`
	RevenueByDate      map[string]float64 `json:"revenueByDate"`
}

// Sales sums revenue, purchase and profit over the collection. Revenue and
// purchase prefer the sheet-level total columns over the per-row amounts.
// The average is 0 for an empty collection, never NaN.
func Sales(sales []models.Sale) SalesSummary {
	s := SalesSummary{
		TotalTransactions: len(sales),
		RevenueByDate:     make(map[string]float64, len(sales)),
	}

	for _, sale := range sales {
		revenue := sale.Revenue()
		s.TotalRevenue += revenue
		s.TotalPurchase += sale.Purchase()
		if sale.AllProfit != 0 {
			s.TotalProfit += sale.AllProfit
		} else {
			s.TotalProfit += sale.Profit
		}
		s.RevenueByDate[sale.DateEntry] += revenue
	}

	if s.TotalTransactions > 0 {
		s.AverageTransaction = s.TotalRevenue / float64(s.TotalTransactions)
	}
	return s
}

// CategoryBreakdown accumulates one sold-items category.
type CategoryBreakdown struct {
	TotalQuantity float64 `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	ItemCount     int     `json:"itemCount"`
}

// SoldItemsSummary is the derived view of the sold-items sheet.
type SoldItemsSummary struct {
	TotalQuantitySold      float64                      `json:"totalQuantitySold"`
	TotalRevenue           float64                      `json:"totalRevenue"`
	TotalItems             int                          `json:"totalItems"`
	AverageQuantityPerItem float64                      `json:"averageQuantityPerItem"`
	AverageRevenuePerItem  float64                      `json:"averageRevenuePerItem"`
	SalesByCategory        map[string]CategoryBreakdown `json:"salesByCategory"`
	TopSellingItems        []models.SoldItem            `json:"topSellingItems"`
	TopRevenueItems        []models.SoldItem            `json:"topRevenueItems"`
}

const topN = 5

// SoldItems computes totals, per-category breakdowns and the two top-5
// rankings. Ranking ties keep the original row order (stable sort). Empty
// input yields zeroed totals and empty breakdowns.
func SoldItems(items []models.SoldItem) SoldItemsSummary {
	s := SoldItemsSummary{
		TotalItems:      len(items),
		SalesByCategory: make(map[string]CategoryBreakdown),
	}

	for _, it := range items {
		s.TotalQuantitySold += it.Quantity
		s.TotalRevenue += it.TotalPrice

		category := it.Category
		if category == "" {
			category = "Lainnya"
		}
		b := s.SalesByCategory[category]
		b.TotalQuantity += it.Quantity
		b.TotalRevenue += it.TotalPrice
		b.ItemCount++
		s.SalesByCategory[category] = b
	}

	if s.TotalItems > 0 {
		s.AverageQuantityPerItem = s.TotalQuantitySold / float64(s.TotalItems)
		s.AverageRevenuePerItem = s.TotalRevenue / float64(s.TotalItems)
	}

	s.TopSellingItems = topBy(items, func(a, b models.SoldItem) bool { return a.Quantity > b.Quantity })
	s.TopRevenueItems = topBy(items, func(a, b models.SoldItem) bool { return a.TotalPrice > b.TotalPrice })
	return s
}

func topBy(items []models.SoldItem, less func(a, b models.SoldItem) bool) []models.SoldItem {
	ranked := make([]models.SoldItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
