package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an XLSX workbook (the format Google
// Sheets uses for downloaded exports) into the same row shape the CSV
// tokenizer produces, so the record parsers work on either source.
func (p *Parser) ParseWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	var rows [][]string
	for _, r := range raw {
		row := make([]string, len(r))
		for i, c := range r {
			row[i] = cleanField(c)
		}
		if allEmpty(row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet %q", sheet)
	}

	p.logger.Debug("parsed workbook", "sheet", sheet, "rows", len(rows))
	return rows, nil
}
