package units

import (
	"math"
	"strings"

	"recipevault-backend/lib/textutil"
)

// Kind classifies what a unit token measures.
type Kind int

const (
	Unknown Kind = iota
	Volume
	Weight
	Temperature
)

func (k Kind) String() string {
	switch k {
	case Volume:
		return "volume"
	case Weight:
		return "weight"
	case Temperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// imperial volume units to milliliters
var volumeMl = map[string]float64{
	"cup":         240,
	"cups":        240,
	"c":           240,
	"tablespoon":  15,
	"tablespoons": 15,
	"tbsp":        15,
	"tbs":         15,
	"teaspoon":    5,
	"teaspoons":   5,
	"tsp":         5,
	"pint":        473,
	"pints":       473,
	"pt":          473,
	"quart":       946,
	"quarts":      946,
	"qt":          946,
	"gallon":      3785,
	"gallons":     3785,
	"gal":         3785,
}

// imperial weight units to grams
var weightGrams = map[string]float64{
	"pound":  454,
	"pounds": 454,
	"lb":     454,
	"lbs":    454,
}

// "oz" can mean fluid ounces or avoirdupois ounces, resolved per
// ingredient by the liquid heuristic below.
var ounceTokens = map[string]bool{
	"oz":     true,
	"ounce":  true,
	"ounces": true,
}

const fluidOunceMl = 30
const ounceGrams = 28

var fahrenheitTokens = map[string]bool{
	"f":          true,
	"°f":         true,
	"fahrenheit": true,
}

// LiquidIndicators is configuration, not logic: an ingredient name
// containing any of these reads an ambiguous "oz" as fluid ounces.
var LiquidIndicators = []string{
	"water",
	"milk",
	"oil",
	"juice",
	"broth",
	"stock",
	"wine",
	"vinegar",
	"cream",
	"butter",
}

func normalizeToken(unit string) string {
	token := strings.ToLower(strings.TrimSpace(unit))
	return strings.TrimSuffix(token, ".")
}

// Classify reports the measurement kind of a unit token. Ambiguous
// ounce tokens classify as weight, their solid default; ClassifyFor
// resolves them against an ingredient name.
func Classify(unit string) Kind {
	return ClassifyFor(unit, "")
}

// ClassifyFor classifies a unit token in the context of the ingredient
// it measures.
func ClassifyFor(unit, ingredientName string) Kind {
	token := normalizeToken(unit)
	switch {
	case token == "":
		return Unknown
	case fahrenheitTokens[token]:
		return Temperature
	case ounceTokens[token]:
		if textutil.MatchAny(ingredientName, LiquidIndicators) {
			return Volume
		}
		return Weight
	}
	if _, ok := volumeMl[token]; ok {
		return Volume
	}
	if _, ok := weightGrams[token]; ok {
		return Weight
	}
	return Unknown
}

// Conversion is the outcome of an attempted imperial to metric
// conversion. When Converted is false, Quantity and Unit carry the
// input unchanged and the Original fields are zero.
type Conversion struct {
	Quantity         float64
	Unit             string
	Converted        bool
	OriginalQuantity float64
	OriginalUnit     string
}

// Convert translates an imperial quantity to metric. Unrecognized or
// empty unit tokens no-op rather than fail; ingredientName feeds the
// liquid heuristic for ambiguous ounce tokens.
func Convert(qty float64, unit, ingredientName string) Conversion {
	token := normalizeToken(unit)
	if token == "" {
		return Conversion{Quantity: qty, Unit: unit}
	}

	if fahrenheitTokens[token] {
		return Conversion{
			Quantity:         math.Round((qty - 32) * 5 / 9),
			Unit:             "°C",
			Converted:        true,
			OriginalQuantity: qty,
			OriginalUnit:     unit,
		}
	}
	if ounceTokens[token] {
		if textutil.MatchAny(ingredientName, LiquidIndicators) {
			return volumeConversion(qty, unit, fluidOunceMl)
		}
		return weightConversion(qty, unit, ounceGrams)
	}
	if mlPerUnit, ok := volumeMl[token]; ok {
		return volumeConversion(qty, unit, mlPerUnit)
	}
	if gramsPerUnit, ok := weightGrams[token]; ok {
		return weightConversion(qty, unit, gramsPerUnit)
	}

	return Conversion{Quantity: qty, Unit: unit}
}

func volumeConversion(qty float64, unit string, mlPerUnit float64) Conversion {
	out := Conversion{
		Converted:        true,
		OriginalQuantity: qty,
		OriginalUnit:     unit,
	}
	ml := qty * mlPerUnit
	if ml >= 1000 {
		out.Quantity = math.Round(ml/100) / 10
		out.Unit = "L"
	} else {
		out.Quantity = math.Round(ml)
		out.Unit = "ml"
	}
	return out
}

func weightConversion(qty float64, unit string, gramsPerUnit float64) Conversion {
	out := Conversion{
		Converted:        true,
		OriginalQuantity: qty,
		OriginalUnit:     unit,
	}
	grams := qty * gramsPerUnit
	if grams >= 1000 {
		out.Quantity = math.Round(grams/100) / 10
		out.Unit = "kg"
	} else {
		out.Quantity = math.Round(grams)
		out.Unit = "g"
	}
	return out
}
