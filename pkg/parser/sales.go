package parser

import (
	"fmt"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// Sales sheet layout (gaps are columns the dashboard does not read):
// Date entry | Pembelian Emas | 2% percent Emas | Penjualan Emas | .. | .. | Total Penjualan | Total Pembelian | .. | Profit Emas | All Profit
const (
	salesColDate           = 0
	salesColPembelianEmas  = 1
	salesColPercentEmas    = 2
	salesColPenjualanEmas  = 3
	salesColTotalPenjualan = 6
	salesColTotalPembelian = 7
	salesColProfitEmas     = 9
	salesColAllProfit      = 10
)

// ParseSales maps tokenized sales-sheet rows to Sale records. Profit falls
// back to the per-row sale minus purchase when the All Profit column is zero.
func (p *Parser) ParseSales(rows [][]string) []models.Sale {
	if len(rows) <= 1 {
		p.logger.Debug("no sales data rows to parse", "rows", len(rows))
		return nil
	}

	sales := make([]models.Sale, 0, len(rows)-1)
	for i, row := range rows[1:] {
		idx := i + 1

		dateEntry := cell(row, salesColDate)
		if dateEntry == "" || dateEntry == "Date entry" {
			p.logger.Debug("dropping invalid sales row", "row", idx)
			continue
		}

		sale := models.Sale{
			ID:             fmt.Sprintf("sale_%d", idx),
			DateEntry:      dateEntry,
			PembelianEmas:  ParseLocaleNumber(cell(row, salesColPembelianEmas)),
			PercentEmas:    ParseLocaleNumber(cell(row, salesColPercentEmas)),
			PenjualanEmas:  ParseLocaleNumber(cell(row, salesColPenjualanEmas)),
			TotalPenjualan: ParseLocaleNumber(cell(row, salesColTotalPenjualan)),
			TotalPembelian: ParseLocaleNumber(cell(row, salesColTotalPembelian)),
			ProfitEmas:     ParseLocaleNumber(cell(row, salesColProfitEmas)),
			AllProfit:      ParseLocaleNumber(cell(row, salesColAllProfit)),
		}
		sale.Profit = sale.AllProfit
		if sale.Profit == 0 {
			sale.Profit = sale.PenjualanEmas - sale.PembelianEmas
		}

		sales = append(sales, sale)
	}

	p.logger.Debug("parsed sales rows", "total", len(rows)-1, "kept", len(sales))
	return sales
}
