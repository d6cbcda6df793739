package calc

import (
	"strconv"
	"strings"
)

// displayPrecision is the number of decimals kept before trimming.
const displayPrecision = 10

// FormatNumber formats v with ten decimals, then strips trailing zeros and
// a bare trailing decimal point.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', displayPrecision, 64)
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// formatShortest returns the shortest decimal text that parses back to v.
func formatShortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
