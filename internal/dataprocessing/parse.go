package dataprocessing

import (
	"strconv"
	"strings"
)

// ParseCurrency parses a currency-formatted cell like "$1,234.56" into
// a float. Currency symbols, thousands separators and surrounding
// whitespace are stripped first. The bool is false when the cell is
// empty or still unparseable after stripping.
func ParseCurrency(s string) (float64, bool) {
	cleaned := stripFormatting(s)
	if cleaned == "" {
		return 0, false
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// ParseCount parses an integer cell that may carry thousands
// separators, like "1,200".
func ParseCount(s string) (int64, bool) {
	cleaned := stripFormatting(s)
	if cleaned == "" {
		return 0, false
	}

	val, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// FormatCurrency renders a cleaned price back into the source file's
// "$1,234.56" form.
func FormatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func stripFormatting(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
