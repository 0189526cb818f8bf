package parser

import "strings"

// Tokenize splits raw CSV text into rows of trimmed fields. It honors double
// quotes as a toggle only: commas inside quotes stay in the field, but the
// "" escape is not collapsed. Blank lines and all-empty rows are dropped.
// The sheet exports rely on exactly this behavior, so it is deliberately not
// encoding/csv.
func Tokenize(csvText string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(csvText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := splitLine(line)
		if allEmpty(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, cleanField(current.String()))
	return fields
}

// cleanField trims whitespace and strips at most one leading and one trailing
// double quote.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func allEmpty(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}
