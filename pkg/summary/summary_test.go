package summary

import (
	"reflect"
	"testing"

	"github.com/anandaputra/ngsdash/pkg/models"
)

func TestSales(t *testing.T) {
	sales := []models.Sale{
		{DateEntry: "6/29/2023", TotalPenjualan: 3480000, TotalPembelian: 4627000, AllProfit: 0, Profit: -1147000},
		{DateEntry: "6/30/2023", TotalPenjualan: 6632640, TotalPembelian: 6187000, AllProfit: 445640, Profit: 445640},
		{DateEntry: "6/30/2023", PenjualanEmas: 1000000, PembelianEmas: 900000, Profit: 100000},
	}

	s := Sales(sales)

	if s.TotalTransactions != 3 {
		t.Errorf("expected 3 transactions, got %d", s.TotalTransactions)
	}
	wantRevenue := 3480000.0 + 6632640 + 1000000
	if s.TotalRevenue != wantRevenue {
		t.Errorf("expected revenue %v, got %v", wantRevenue, s.TotalRevenue)
	}
	if s.TotalPurchase != 4627000+6187000+900000 {
		t.Errorf("unexpected purchase total %v", s.TotalPurchase)
	}
	if s.TotalProfit != -1147000+445640+100000 {
		t.Errorf("unexpected profit total %v", s.TotalProfit)
	}
	if s.AverageTransaction != wantRevenue/3 {
		t.Errorf("unexpected average %v", s.AverageTransaction)
	}
	if s.RevenueByDate["6/30/2023"] != 6632640+1000000 {
		t.Errorf("revenue by date should accumulate, got %v", s.RevenueByDate["6/30/2023"])
	}
}

func TestSalesDeterministic(t *testing.T) {
	sales := []models.Sale{
		{DateEntry: "7/1/2023", TotalPenjualan: 100, TotalPembelian: 80, Profit: 20},
		{DateEntry: "7/2/2023", TotalPenjualan: 200, TotalPembelian: 150, Profit: 50},
	}
	if !reflect.DeepEqual(Sales(sales), Sales(sales)) {
		t.Error("summarizing the same input twice should be identical")
	}
}

func TestSalesEmpty(t *testing.T) {
	s := Sales(nil)
	if s.TotalRevenue != 0 || s.TotalTransactions != 0 || s.AverageTransaction != 0 {
		t.Errorf("empty input should yield zeroed summary: %+v", s)
	}
	if len(s.RevenueByDate) != 0 {
		t.Errorf("expected empty revenue map, got %v", s.RevenueByDate)
	}
}

func TestSoldItems(t *testing.T) {
	items := []models.SoldItem{
		{ID: "a", Category: "Voucher", Quantity: 10, TotalPrice: 10},
		{ID: "b", Category: "", Quantity: 4, TotalPrice: 4},
		{ID: "c", Category: "Voucher", Quantity: 6, TotalPrice: 6},
	}

	s := SoldItems(items)

	if s.TotalQuantitySold != 20 || s.TotalRevenue != 20 || s.TotalItems != 3 {
		t.Errorf("unexpected totals: %+v", s)
	}
	if s.AverageQuantityPerItem != 20.0/3 {
		t.Errorf("unexpected average quantity %v", s.AverageQuantityPerItem)
	}

	voucher := s.SalesByCategory["Voucher"]
	if voucher.TotalQuantity != 16 || voucher.ItemCount != 2 {
		t.Errorf("unexpected voucher breakdown: %+v", voucher)
	}
	if _, ok := s.SalesByCategory["Lainnya"]; !ok {
		t.Error("empty category should land in Lainnya")
	}

	if len(s.TopSellingItems) != 3 || s.TopSellingItems[0].ID != "a" {
		t.Errorf("unexpected top sellers: %+v", s.TopSellingItems)
	}
}

func TestSoldItemsTopFiveIsStable(t *testing.T) {
	items := make([]models.SoldItem, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, models.SoldItem{ID: id, Quantity: 5, TotalPrice: 5})
	}

	s := SoldItems(items)

	if len(s.TopSellingItems) != 5 {
		t.Fatalf("expected top 5, got %d", len(s.TopSellingItems))
	}
	// All quantities tie, so input order must be preserved.
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if s.TopSellingItems[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, s.TopSellingItems[i].ID, want)
		}
	}
}

func TestSoldItemsEmpty(t *testing.T) {
	s := SoldItems(nil)
	if s.TotalItems != 0 || s.AverageQuantityPerItem != 0 || s.AverageRevenuePerItem != 0 {
		t.Errorf("empty input should yield zeroed summary: %+v", s)
	}
	if len(s.TopSellingItems) != 0 || len(s.SalesByCategory) != 0 {
		t.Errorf("expected empty rankings and breakdowns: %+v", s)
	}
}
