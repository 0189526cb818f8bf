package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Kind identifies one of the sheet tabs the dashboard consumes.
type Kind string

const (
	KindDebt          Kind = "debt"
	KindSales         Kind = "sales"
	KindTransaction   Kind = "transaction"
	KindSoldItems     Kind = "soldItems"
	KindCategorySales Kind = "categorySales"
)

// Kinds lists every sheet kind in fetch order.
var Kinds = []Kind{KindDebt, KindSales, KindTransaction, KindSoldItems, KindCategorySales}

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Rows turns a local export file into tokenized rows. XLSX workbooks go
// through the workbook reader, anything else is treated as CSV text.
func (p *Parser) Rows(data []byte, filename string) ([][]string, error) {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".xlsx") {
		return p.ParseWorkbook(data)
	}
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".txt") {
		return Tokenize(string(data)), nil
	}
	return nil, fmt.Errorf("unknown file type")
}

// cell returns the trimmed field at index i, or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellOr is cell with a default for empty values.
func cellOr(row []string, i int, def string) string {
	if v := cell(row, i); v != "" {
		return v
	}
	return def
}

// localDateString renders a date the way the sheets do, without zero padding.
func localDateString(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
