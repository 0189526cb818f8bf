package parser

import (
	"sort"
	"strings"
	"time"

	"github.com/anandaputra/ngsdash/pkg/models"
)

// Category-sales sheet layout:
// Date entry | Lokalan | itemku | Vcgamer | Rate Lokalan | Rate itemku | Rate Vcgamer | Total Lokalan | Total itemku | Total Vcgamer
const (
	catColDate           = 0
	catColLokalanQty     = 1
	catColItemkuQty      = 2
	catColVcgamerQty     = 3
	catColLokalanRevenue = 7
	catColItemkuRevenue  = 8
	catColVcgamerRevenue = 9

	catMinRowLen = 10
)

type platform struct {
	key     string
	display string
}

var platforms = []platform{
	{key: "lokalan", display: "Lokalan"},
	{key: "itemku", display: "itemku"},
	{key: "vcgamer", display: "Vcgamer"},
}

// ParseCategorySales sums per-platform quantity and revenue across every data
// row and returns one record per platform, sorted by revenue descending.
// Platforms with zero quantity and zero revenue are omitted.
func (p *Parser) ParseCategorySales(rows [][]string) []models.CategorySales {
	return p.sumCategorySales(rows, "total", nil)
}

// ParseCategorySalesInRange is ParseCategorySales restricted to rows whose
// first-column date falls inside [start, end). Rows with unparseable dates
// are skipped.
func (p *Parser) ParseCategorySalesInRange(rows [][]string, start, end time.Time) []models.CategorySales {
	return p.sumCategorySales(rows, "filtered", func(t time.Time) bool {
		return !t.Before(start) && t.Before(end)
	})
}

func (p *Parser) sumCategorySales(rows [][]string, idSuffix string, within func(time.Time) bool) []models.CategorySales {
	if len(rows) <= 1 {
		p.logger.Debug("no category-sales data rows to parse", "rows", len(rows))
		return nil
	}

	qty := make([]int, len(platforms))
	revenue := make([]float64, len(platforms))

	for _, row := range rows[1:] {
		if len(row) < catMinRowLen {
			continue
		}
		if within != nil {
			date, ok := ParseSlashDate(cell(row, catColDate))
			if !ok || !within(date) {
				continue
			}
		}

		qty[0] += digitsOnlyInt(cell(row, catColLokalanQty))
		qty[1] += digitsOnlyInt(cell(row, catColItemkuQty))
		qty[2] += digitsOnlyInt(cell(row, catColVcgamerQty))

		revenue[0] += ParseLocaleCurrency(cell(row, catColLokalanRevenue))
		revenue[1] += ParseLocaleCurrency(cell(row, catColItemkuRevenue))
		revenue[2] += ParseLocaleCurrency(cell(row, catColVcgamerRevenue))
	}

	result := make([]models.CategorySales, 0, len(platforms))
	for i, pl := range platforms {
		if qty[i] == 0 && revenue[i] == 0 {
			continue
		}
		result = append(result, models.CategorySales{
			ID:            pl.key + "-" + idSuffix,
			CategoryName:  pl.key,
			DisplayName:   pl.display,
			TotalQuantity: qty[i],
			TotalRevenue:  revenue[i],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result
}

// digitsOnlyInt strips every non-digit character and parses the rest, so
// "1.250 pcs" reads as 1250. Empty residue is 0.
func digitsOnlyInt(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return leadingInt(b.String())
}
