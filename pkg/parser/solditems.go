package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// The sold-items sheet has no fixed layout; the quantity column is found by
// header content and the date column by a list of common header keywords.
var dateHeaderKeywords = []string{"tanggal", "date", "waktu", "time", "hari", "day"}

const totalTerjualHeader = "total terjual"

// ParseSoldItems builds synthetic per-row SoldItem records from the
// "Total Terjual" column. Missing that column is the one hard structural
// failure in the parsing layer: the whole sheet is treated as unusable and an
// empty collection comes back. Rows with no usable date get a fallback date
// walking backwards from now, one day per row. Rows with quantity <= 0 are
// dropped.
func (p *Parser) ParseSoldItems(rows [][]string, now time.Time) []models.SoldItem {
	if len(rows) <= 1 {
		p.logger.Debug("no sold-items data rows to parse", "rows", len(rows))
		return nil
	}

	header := rows[0]
	totalIdx := findHeaderColumn(header, totalTerjualHeader)
	dateIdx := findDateColumn(header)

	if totalIdx == -1 {
		p.logger.Warn("sold-items sheet is missing the Total Terjual column", "header", header)
		return nil
	}
	p.logger.Debug("sold-items columns located", "totalTerjual", totalIdx, "date", dateIdx)

	items := make([]models.SoldItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		idx := i + 1

		quantity := ParseLocaleNumber(cell(row, totalIdx))
		if quantity <= 0 {
			continue
		}

		saleDate := cell(row, dateIdx)
		if dateIdx == -1 || saleDate == "" {
			saleDate = localDateString(now.AddDate(0, 0, -i))
		}

		items = append(items, models.SoldItem{
			ID:         fmt.Sprintf("sold_item_%d", idx),
			ItemName:   fmt.Sprintf("Total Terjual Row %d", idx),
			Category:   "Total Terjual",
			Quantity:   quantity,
			UnitPrice:  1,
			TotalPrice: quantity,
			SaleDate:   saleDate,
			Notes:      fmt.Sprintf("From Total Terjual column (index %d), Date column (index %d)", totalIdx, dateIdx),
		})
	}

	p.logger.Debug("parsed sold-items rows", "total", len(rows)-1, "kept", len(items))
	return items
}

func findHeaderColumn(header []string, keyword string) int {
	for i, col := range header {
		if strings.Contains(strings.ToLower(col), keyword) {
			return i
		}
	}
	return -1
}

func findDateColumn(header []string) int {
	for i, col := range header {
		lower := strings.ToLower(col)
		for _, kw := range dateHeaderKeywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}
