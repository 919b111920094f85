package ingredient

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"recipevault-backend/lib/quantity"
	"recipevault-backend/lib/textutil"
)

// Scaled is the ephemeral, display-ready form of an ingredient after a
// scale factor has been applied. It is computed on demand and never
// persisted.
type Scaled struct {
	Quantity    float64
	HasQuantity bool
	Unit        string
	Name        string
	Text        string
}

// Scale multiplies every quantity-bearing ingredient by factor.
// Ingredients without a parsed quantity pass through unchanged. The
// caller is responsible for rejecting non-positive factors.
func Scale(ingredients []Parsed, factor float64) []Scaled {
	out := make([]Scaled, len(ingredients))
	for i, ing := range ingredients {
		out[i] = scaleOne(ing, factor)
	}
	return out
}

func scaleOne(ing Parsed, factor float64) Scaled {
	if !ing.HasQuantity {
		return Scaled{
			Unit: ing.Unit,
			Name: ing.Name,
			Text: ing.DisplayText,
		}
	}

	scaled := ing.Quantity * factor
	return Scaled{
		Quantity:    scaled,
		HasQuantity: true,
		Unit:        ing.Unit,
		Name:        ing.Name,
		Text: textutil.CollapseSpaces(fmt.Sprintf(
			"%s %s %s", formatScaled(scaled), ing.Unit, ing.Name,
		)),
	}
}

// exact integers render plain, then fractions, then a 2 decimal
// fallback
func formatScaled(x float64) string {
	if math.Mod(x, 1) == 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	if s, ok := quantity.FormatFraction(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

var servingsRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ScaleResult reports a serving-count rescale along with the numbers
// that produced it, for display.
type ScaleResult struct {
	Factor           float64
	OriginalServings float64
	DesiredServings  float64
	Ingredients      []Scaled
}

// ScaleToServings rescales a recipe from its declared serving text
// (e.g. "8 servings") to a desired count. ok is false when the
// declared text contains no number or desired is not positive; a
// recipe like that cannot be scaled by servings.
func ScaleToServings(ingredients []Parsed, servingsText string, desired float64) (ScaleResult, bool) {
	if desired <= 0 {
		return ScaleResult{}, false
	}
	token := servingsRegex.FindString(servingsText)
	if token == "" {
		return ScaleResult{}, false
	}
	declared, err := strconv.ParseFloat(token, 64)
	if err != nil || declared <= 0 {
		return ScaleResult{}, false
	}

	factor := desired / declared
	return ScaleResult{
		Factor:           factor,
		OriginalServings: declared,
		DesiredServings:  desired,
		Ingredients:      Scale(ingredients, factor),
	}, true
}
