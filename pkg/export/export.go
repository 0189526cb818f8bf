// Package export renders parsed record collections back out as normalized
// CSV, mainly for the convert command.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// FilterFunc decides whether a record makes it into the output.
type FilterFunc[T any] func(T) bool

// Write renders a header plus one line per record kept by the filter.
func Write[T any](header []string, records []T, row func(T) []string, filter FilterFunc[T]) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(header, ",") + "\n")
	for _, r := range records {
		if filter == nil || filter(r) {
			buf.WriteString(strings.Join(quoteAll(row(r)), ",") + "\n")
		}
	}
	return buf.Bytes()
}

func quoteAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if strings.ContainsAny(f, ",\"") {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		out[i] = f
	}
	return out
}

// Debts renders debt records with their derived status bucket.
func Debts(debts []models.Debt, filter FilterFunc[models.Debt]) []byte {
	header := []string{"Player", "Member ID", "Waktu Input", "Tanggal Hutang", "Hutang", "Setor", "Sisa Pembayaran", "StatusTagihan", "Status"}
	return Write(header, debts, func(d models.Debt) []string {
		return []string{
			d.PlayerName, d.MemberID, d.InputTime, d.DebtDate,
			fmt.Sprintf("%.0f", d.Hutang), fmt.Sprintf("%.0f", d.Setor), fmt.Sprintf("%.0f", d.SisaPembayaran),
			d.StatusTagihan, string(d.Status),
		}
	}, filter)
}

// Sales renders sale records with the resolved revenue and profit figures.
func Sales(sales []models.Sale, filter FilterFunc[models.Sale]) []byte {
	header := []string{"Date", "Purchase", "Revenue", "Profit"}
	return Write(header, sales, func(s models.Sale) []string {
		return []string{
			s.DateEntry,
			fmt.Sprintf("%.2f", s.Purchase()),
			fmt.Sprintf("%.2f", s.Revenue()),
			fmt.Sprintf("%.2f", s.Profit),
		}
	}, filter)
}

// Transactions renders transaction records.
func Transactions(txs []models.Transaction, filter FilterFunc[models.Transaction]) []byte {
	header := []string{"Member ID", "Player", "Date", "Time", "ID Game", "Nick Game", "Coin", "Rate Coin", "Room", "Payout", "ID Transaksi"}
	return Write(header, txs, func(t models.Transaction) []string {
		return []string{
			t.MemberID, t.PlayerName, t.DateOfEntry, t.Time, t.IDGame, t.NickGame,
			fmt.Sprintf("%d", t.Coin), t.RateCoin, t.Room, t.Payout, t.IDTransaksi,
		}
	}, filter)
}

// SoldItems renders sold-item records.
func SoldItems(items []models.SoldItem, filter FilterFunc[models.SoldItem]) []byte {
	header := []string{"Item", "Category", "Quantity", "Total Price", "Sale Date"}
	return Write(header, items, func(it models.SoldItem) []string {
		return []string{
			it.ItemName, it.Category,
			fmt.Sprintf("%.0f", it.Quantity), fmt.Sprintf("%.0f", it.TotalPrice),
			it.SaleDate,
		}
	}, filter)
}
