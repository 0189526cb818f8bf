package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLocaleNumber converts an Indonesian-formatted numeric cell into a
// float. Cells mix conventions freely ("1.200.000,50", "1.200.000",
// "1234.56", "Rp 15.000"), so this is a heuristic, not a strict parse:
//
//   - both "." and "," present: dots are thousands separators, the comma is
//     the decimal point
//   - only dots: thousands separators when there are more than two groups,
//     or exactly two groups with a 3-digit tail; otherwise a decimal point
//   - only a comma: decimal point
//
// Malformed residue parses to 0. The function is total; it never fails.
func ParseLocaleNumber(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := stripNumberNoise(value)

	switch {
	case strings.Contains(cleaned, ".") && strings.Contains(cleaned, ","):
		parts := strings.Split(cleaned, ",")
		cleaned = strings.ReplaceAll(parts[0], ".", "") + "." + parts[1]
	case strings.Contains(cleaned, "."):
		dotParts := strings.Split(cleaned, ".")
		if len(dotParts) > 2 || (len(dotParts) == 2 && len(dotParts[1]) == 3) {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	return parseFloatLenient(cleaned)
}

// ParseLocaleCurrency handles currency-prefixed cells ("Rp 2.100.000,00",
// "Rp2100000.00"). It differs from ParseLocaleNumber on the single-dot case:
// a dot followed by at most two digits is a decimal point, anything longer is
// a thousands separator.
func ParseLocaleCurrency(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := stripCurrencyPrefix(value)

	if strings.Contains(cleaned, ",") {
		parts := strings.Split(cleaned, ",")
		decimal := "0"
		if len(parts) > 1 && parts[1] != "" {
			decimal = parts[1]
		}
		cleaned = strings.ReplaceAll(parts[0], ".", "") + "." + decimal
	} else {
		switch dots := strings.Count(cleaned, "."); {
		case dots == 0:
			// plain number
		case dots == 1:
			afterDot := cleaned[strings.LastIndex(cleaned, ".")+1:]
			if len(afterDot) > 2 {
				cleaned = strings.ReplaceAll(cleaned, ".", "")
			}
		default:
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	return parseFloatLenient(cleaned)
}

// stripNumberNoise drops the "Rp" marker characters, whitespace and quotes,
// leaving digits, separators and signs.
func stripNumberNoise(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 'R' || r == 'p':
			return -1
		case unicode.IsSpace(r):
			return -1
		case r == '"' || r == '\'':
			return -1
		}
		return r
	}, s)
}

func stripCurrencyPrefix(s string) string {
	var b strings.Builder
	lower := strings.ToLower(s)
	for i := 0; i < len(s); i++ {
		if lower[i] == 'r' && i+1 < len(s) && lower[i+1] == 'p' {
			i++
			continue
		}
		if unicode.IsSpace(rune(s[i])) {
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.TrimSpace(b.String())
}

// parseFloatLenient mimics spreadsheet-style parsing: a full parse if
// possible, otherwise the longest leading numeric prefix, otherwise 0.
func parseFloatLenient(s string) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	end := 0
	seenDot := false
	for i, r := range s {
		if r == '-' || r == '+' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// leadingInt parses the leading integer of a cell the way spreadsheets do
// ("12 pcs" reads as 12); anything else is 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	end := 0
	for i, r := range s {
		if r == '-' && i == 0 {
			end = 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
