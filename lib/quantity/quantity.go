package quantity

import (
	"strconv"
	"strings"
)

// ParseQuantity reads the leading numeric expression of an ingredient
// line: plain integers and decimals ("2", "1.5"), simple fractions
// ("1/2") and mixed numbers separated by spaces or dashes ("1 1/2",
// "1-1/2"). Each delimited token is parsed on its own and the results
// are summed. ok is false when the text contains no numeric token at
// all, including bare dashes and the empty string.
func ParseQuantity(text string) (float64, bool) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	})

	var sum float64
	found := false
	for _, tok := range tokens {
		v, ok := parseToken(tok)
		if !ok {
			continue
		}
		sum += v
		found = true
	}
	if !found {
		return 0, false
	}
	return sum, true
}

func parseToken(tok string) (float64, bool) {
	if num, den, isFraction := strings.Cut(tok, "/"); isFraction {
		n, nerr := strconv.ParseFloat(num, 64)
		d, derr := strconv.ParseFloat(den, 64)
		if nerr != nil || derr != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
