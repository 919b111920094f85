package ingredient

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipevault-backend/lib/quantity"
	"recipevault-backend/lib/textutil"
	"recipevault-backend/lib/units"
)

// Parsed is the structured form of one raw ingredient line. Quantity
// and Unit are in the unit system the line was written in; the
// Converted fields carry the metric equivalent when one was found,
// otherwise they repeat the originals. DisplayText is always
// derivable from the other fields, worst case the raw line verbatim.
type Parsed struct {
	Raw               string
	Quantity          float64
	HasQuantity       bool
	Unit              string
	Name              string
	ConvertedQuantity float64
	ConvertedUnit     string
	Converted         bool
	DisplayText       string
	SortOrder         int
}

// quantity run, candidate unit word, rest of the line; for lines with
// no leading number the run matches empty and the line falls through
// whole
var lineRegex = regexp.MustCompile(`^\s*([\d\s./-]*)([A-Za-z]+\.?)?\s*(.*)$`)

// ParseLine splits a raw ingredient line into quantity, unit and name
// and attaches the metric conversion when the unit is recognized. It
// is total: no input produces an error, and every branch degrades to
// DisplayText == raw.
func ParseLine(raw string) Parsed {
	out := Parsed{
		Raw:         raw,
		Name:        textutil.CollapseSpaces(raw),
		DisplayText: raw,
	}

	match := lineRegex.FindStringSubmatch(raw)
	if match == nil {
		return out
	}

	qty, ok := quantity.ParseQuantity(match[1])
	if !ok {
		// no leading number, the whole line is the name
		return out
	}
	out.Quantity = qty
	out.HasQuantity = true
	out.Unit = strings.TrimSpace(match[2])
	out.Name = cleanName(match[3])

	conv := units.Convert(qty, out.Unit, out.Name)
	out.ConvertedQuantity = conv.Quantity
	out.ConvertedUnit = conv.Unit
	out.Converted = conv.Converted
	if conv.Converted {
		out.DisplayText = textutil.CollapseSpaces(fmt.Sprintf(
			"%s %s %s (%s %s %s)",
			FormatQuantity(conv.Quantity), conv.Unit, out.Name,
			FormatQuantity(qty), out.Unit, out.Name,
		))
	}
	return out
}

// ParseLines parses a recipe's ingredient list, preserving the input
// order through SortOrder. A malformed line never affects its
// neighbors.
func ParseLines(lines []string) []Parsed {
	out := make([]Parsed, len(lines))
	for i, line := range lines {
		out[i] = ParseLine(line)
		out[i].SortOrder = i
	}
	return out
}

// FormatQuantity renders a quantity as a kitchen fraction when one
// approximates it, falling back to a plain integer or a 2 decimal
// string.
func FormatQuantity(x float64) string {
	if s, ok := quantity.FormatFraction(x); ok {
		return s
	}
	if math.Mod(x, 1) == 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func cleanName(text string) string {
	text = textutil.StripParenthetical(text)
	text = textutil.CollapseSpaces(text)
	return strings.Trim(text, " ,.")
}
