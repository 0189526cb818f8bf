package fetcher

import "github.com/anandaputra/ngsdash/pkg/models"

// Static fallback collections. These stand in when every fetch strategy for
// a kind fails, so the dashboard renders something instead of an error state.
// Only debt, sales and sold-items carry fallbacks; the other kinds degrade to
// an empty collection.

var fallbackDebts = []models.Debt{
	{
		ID:             "1",
		PlayerName:     "Djoy",
		MemberID:       "X_NGS_038",
		InputTime:      "15/07/2025 15.13.18",
		DebtDate:       "26/08/2023",
		Hutang:         15000000,
		Setor:          12000000,
		SisaPembayaran: 3000000,
		StatusTagihan:  "Hutang",
		Status:         models.DebtPending,
	},
	{
		ID:             "2",
		PlayerName:     "ayahe Nindy",
		MemberID:       "X_NGS_001",
		InputTime:      "16/09/2023 23.22.11",
		DebtDate:       "26/08/2023",
		Hutang:         8500000,
		Setor:          8500000,
		SisaPembayaran: 0,
		StatusTagihan:  "Lunas",
		Status:         models.DebtPaid,
	},
	{
		ID:             "3",
		PlayerName:     "Player Demo",
		MemberID:       "X_NGS_999",
		InputTime:      "15/07/2025 10.00.00",
		DebtDate:       "01/07/2025",
		Hutang:         3200000,
		Setor:          3200000,
		SisaPembayaran: 0,
		StatusTagihan:  "Lunas",
		Status:         models.DebtPaid,
	},
}

var fallbackSales = []models.Sale{
	{ID: "1", DateEntry: "6/29/2023", PembelianEmas: 4627000, PercentEmas: 4719540, PenjualanEmas: 3480000, TotalPenjualan: 3480000, TotalPembelian: 4627000, Profit: -1147000},
	{ID: "2", DateEntry: "6/30/2023", PembelianEmas: 6187000, PercentEmas: 6310740, PenjualanEmas: 6632640, TotalPenjualan: 6632640, TotalPembelian: 6187000, ProfitEmas: 445640, AllProfit: 445640, Profit: 445640},
	{ID: "3", DateEntry: "7/1/2023", PembelianEmas: 5314000, PercentEmas: 5420280, PenjualanEmas: 7009500, TotalPenjualan: 7009500, TotalPembelian: 5314000, ProfitEmas: 1695500, AllProfit: 1695500, Profit: 1695500},
	{ID: "4", DateEntry: "7/2/2023", PembelianEmas: 5043000, PercentEmas: 5143860, PenjualanEmas: 5632500, TotalPenjualan: 5632500, TotalPembelian: 5043000, ProfitEmas: 589500, AllProfit: 589500, Profit: 589500},
	{ID: "5", DateEntry: "7/3/2023", PembelianEmas: 7800000, PercentEmas: 7956000, PenjualanEmas: 8100000, TotalPenjualan: 8100000, TotalPembelian: 7800000, ProfitEmas: 300000, AllProfit: 300000, Profit: 300000},
}

var fallbackSoldItems = []models.SoldItem{
	{ID: "1", ItemName: "iPhone 15 Pro Max", Category: "Elektronik", Quantity: 2, UnitPrice: 18000000, TotalPrice: 36000000, SaleDate: "15/07/2025", CustomerName: "Budi Santoso", Notes: "Warna Titanium Natural"},
	{ID: "2", ItemName: "Samsung Galaxy S24 Ultra", Category: "Elektronik", Quantity: 1, UnitPrice: 16000000, TotalPrice: 16000000, SaleDate: "14/07/2025", CustomerName: "Siti Aminah", Notes: "Warna Phantom Black"},
	{ID: "3", ItemName: "MacBook Air M3", Category: "Laptop", Quantity: 1, UnitPrice: 20000000, TotalPrice: 20000000, SaleDate: "13/07/2025", CustomerName: "Ahmad Rahman", Notes: "Spec 16GB RAM, 512GB SSD"},
	{ID: "4", ItemName: "AirPods Pro 2", Category: "Aksesoris", Quantity: 3, UnitPrice: 3500000, TotalPrice: 10500000, SaleDate: "12/07/2025", CustomerName: "Lisa Wijaya", Notes: "USB-C Version"},
	{ID: "5", ItemName: "iPad Pro 12.9\"", Category: "Tablet", Quantity: 1, UnitPrice: 15000000, TotalPrice: 15000000, SaleDate: "11/07/2025", CustomerName: "Rudi Hartono", Notes: "M2 Chip, 256GB WiFi"},
}

// FallbackDebts returns a copy of the static debt collection.
func FallbackDebts() []models.Debt {
	out := make([]models.Debt, len(fallbackDebts))
	copy(out, fallbackDebts)
	return out
}

// FallbackSales returns a copy of the static sales collection.
func FallbackSales() []models.Sale {
	out := make([]models.Sale, len(fallbackSales))
	copy(out, fallbackSales)
	return out
}

// FallbackSoldItems returns a copy of the static sold-items collection.
func FallbackSoldItems() []models.SoldItem {
	out := make([]models.SoldItem, len(fallbackSoldItems))
	copy(out, fallbackSoldItems)
	return out
}
