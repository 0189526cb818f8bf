package parser

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := workbookBytes(t, [][]string{
		{"Player", "Member ID", "Hutang"},
		{"Djoy", "X_NGS_038", "15.000.000"},
		{"", "", ""},
		{"Nindy", "X_NGS_001", "8.500.000"},
	})

	p := New(log.Default())
	rows, err := p.ParseWorkbook(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (empty row dropped), got %d", len(rows))
	}
	if rows[1][0] != "Djoy" || rows[1][2] != "15.000.000" {
		t.Errorf("unexpected row: %v", rows[1])
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	p := New(log.Default())
	if _, err := p.ParseWorkbook([]byte("not a workbook")); err == nil {
		t.Error("expected an error for non-xlsx data")
	}
}

func TestRowsDispatchesByExtension(t *testing.T) {
	p := New(log.Default())

	rows, err := p.Rows([]byte("a,b\n1,2\n"), "export.csv")
	if err != nil || len(rows) != 2 {
		t.Errorf("csv dispatch failed: rows=%v err=%v", rows, err)
	}

	data := workbookBytes(t, [][]string{{"a", "b"}})
	rows, err = p.Rows(data, "export.XLSX")
	if err != nil || len(rows) != 1 {
		t.Errorf("xlsx dispatch failed: rows=%v err=%v", rows, err)
	}

	if _, err := p.Rows([]byte("x"), "export.pdf"); err == nil {
		t.Error("unknown extensions should error")
	}
}
