package intent

import (
	"math"
	"strconv"
	"strings"
)

// ExtractQuantity returns the first number in text, scaled by an optional
// k (thousand) or m (million) suffix and rounded to the nearest integer.
// URLs, bare domains and @handles are removed first so digits inside them
// are never read as the quantity. Comma thousands separators are folded
// first, so "1,000" reads as 1000 rather than 1.
func ExtractQuantity(text string) (int, bool) {
	stripped := schemeURLPattern.ReplaceAllString(text, " ")
	stripped = bareDomainPattern.ReplaceAllString(stripped, " ")
	stripped = handlePattern.ReplaceAllString(stripped, " ")
	stripped = foldThousands(stripped)

	m := quantityPattern.FindStringSubmatch(stripped)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}

	value = math.Round(value)
	if value >= math.MaxInt {
		return 0, false
	}
	return int(value), true
}

// foldThousands removes comma thousands separators ("1,000,000" becomes
// "1000000"). A comma not followed by exactly three digits is kept, so "1,5k"
// still reads as 1.
func foldThousands(s string) string {
	for {
		next := thousandsPattern.ReplaceAllString(s, "$1$2$3")
		if next == s {
			return s
		}
		s = next
	}
}
