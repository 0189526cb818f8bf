package models

import "strings"

// DebtStatus is the normalized bucket derived from the free-text StatusTagihan cell.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
	DebtOverdue DebtStatus = "overdue"
	DebtNitip   DebtStatus = "nitip"
)

// ClassifyDebtStatus maps a StatusTagihan label to its status bucket using
// case-insensitive substring matching. "lunas"/"paid" wins over "nitip"/"titip",
// which wins over "terlambat"/"overdue"; anything else is pending.
func ClassifyDebtStatus(label string) DebtStatus {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "lunas") || strings.Contains(lower, "paid"):
		return DebtPaid
	case strings.Contains(lower, "nitip") || strings.Contains(lower, "titip"):
		return DebtNitip
	case strings.Contains(lower, "terlambat") || strings.Contains(lower, "overdue"):
		return DebtOverdue
	default:
		return DebtPending
	}
}

// Debt is one row of the debt sheet. Amounts are in rupiah; SisaPembayaran may
// be negative when a player overpaid.
type Debt struct {
	ID             string     `json:"id"`
	PlayerName     string     `json:"playerName"`
	MemberID       string     `json:"memberId"`
	InputTime      string     `json:"inputTime"` // raw "DD/MM/YYYY HH.MM.SS"
	DebtDate       string     `json:"debtDate"`
	Hutang         float64    `json:"hutang"`
	Setor          float64    `json:"setor"`
	SisaPembayaran float64    `json:"sisaPembayaran"`
	StatusTagihan  string     `json:"statusTagihan"`
	Status         DebtStatus `json:"status"`
}

// Sale is one row of the gold-trading sheet. The sheet carries both per-row
// "emas" amounts and pre-aggregated "total" columns; the totals are
// authoritative when nonzero.
type Sale struct {
	ID             string  `json:"id"`
	DateEntry      string  `json:"dateEntry"`
	PembelianEmas  float64 `json:"pembelianEmas"`
	PercentEmas    float64 `json:"percentEmas"`
	PenjualanEmas  float64 `json:"penjualanEmas"`
	TotalPenjualan float64 `json:"totalPenjualan"`
	TotalPembelian float64 `json:"totalPembelian"`
	ProfitEmas     float64 `json:"profitEmas"`
	AllProfit      float64 `json:"allProfit"`
	Profit         float64 `json:"profit"`
}

// Revenue prefers the sheet-level total over the per-row amount.
func (s Sale) Revenue() float64 {
	if s.TotalPenjualan != 0 {
		return s.TotalPenjualan
	}
	return s.PenjualanEmas
}

// Purchase prefers the sheet-level total over the per-row amount.
func (s Sale) Purchase() float64 {
	if s.TotalPembelian != 0 {
		return s.TotalPembelian
	}
	return s.PembelianEmas
}

// Transaction is one row of the incoming game-transaction sheet. Payout stays
// a raw currency string; consumers parse it on demand.
type Transaction struct {
	ID          string `json:"id"`
	MemberID    string `json:"memberId"`
	PlayerName  string `json:"playerName"`
	DateOfEntry string `json:"dateOfEntry"`
	Time        string `json:"time"`
	Day         string `json:"day"`
	IDGame      string `json:"idGame"`
	NickGame    string `json:"nickGame"`
	MasukAkun   string `json:"masukAkun"`
	Coin        int    `json:"coin"`
	RateCoin    string `json:"rateCoin"`
	Room        string `json:"room"`
	Note        string `json:"note"`
	Payout      string `json:"payout"`
	IDCensored  string `json:"idCensored"`
	IDTransaksi string `json:"idTransaksi"`
}

// SoldItem is a synthetic per-row record built from the "Total Terjual" column
// of the sold-items sheet. Quantity doubles as TotalPrice because the sheet
// carries no unit price (UnitPrice is pinned to 1).
type SoldItem struct {
	ID           string  `json:"id"`
	ItemName     string  `json:"itemName"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	SaleDate     string  `json:"saleDate"`
	CustomerName string  `json:"customerName,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// CategorySales is the per-platform aggregate of the category-sales sheet.
// CategoryName is the canonical lowercase platform key.
type CategorySales struct {
	ID            string  `json:"id"`
	CategoryName  string  `json:"categoryName"`
	DisplayName   string  `json:"displayName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
