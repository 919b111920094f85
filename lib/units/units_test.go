package units

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		label    string
		qty      float64
		unit     string
		name     string
		expected Conversion
	}{
		{
			label: "cups to ml",
			qty:   1.5, unit: "cups", name: "chopped onion",
			expected: Conversion{
				Quantity: 360, Unit: "ml", Converted: true,
				OriginalQuantity: 1.5, OriginalUnit: "cups",
			},
		},
		{
			label: "volume rolls over to liters",
			qty:   5, unit: "cups", name: "water",
			expected: Conversion{
				Quantity: 1.2, Unit: "L", Converted: true,
				OriginalQuantity: 5, OriginalUnit: "cups",
			},
		},
		{
			label: "ounces of liquid take the volume path",
			qty:   2, unit: "oz", name: "olive oil",
			expected: Conversion{
				Quantity: 60, Unit: "ml", Converted: true,
				OriginalQuantity: 2, OriginalUnit: "oz",
			},
		},
		{
			label: "ounces of solids take the weight path",
			qty:   2, unit: "oz", name: "flour",
			expected: Conversion{
				Quantity: 56, Unit: "g", Converted: true,
				OriginalQuantity: 2, OriginalUnit: "oz",
			},
		},
		{
			label: "pounds to grams",
			qty:   1, unit: "lb", name: "ground beef",
			expected: Conversion{
				Quantity: 454, Unit: "g", Converted: true,
				OriginalQuantity: 1, OriginalUnit: "lb",
			},
		},
		{
			label: "weight rolls over to kilograms",
			qty:   3, unit: "lbs", name: "potatoes",
			expected: Conversion{
				Quantity: 1.4, Unit: "kg", Converted: true,
				OriginalQuantity: 3, OriginalUnit: "lbs",
			},
		},
		{
			label: "fahrenheit to celsius",
			qty:   350, unit: "F", name: "",
			expected: Conversion{
				Quantity: 177, Unit: "°C", Converted: true,
				OriginalQuantity: 350, OriginalUnit: "F",
			},
		},
		{
			label: "unrecognized units no-op",
			qty:   1, unit: "pinch", name: "salt",
			expected: Conversion{Quantity: 1, Unit: "pinch"},
		},
		{
			label: "empty unit no-ops",
			qty:   2, unit: "", name: "eggs",
			expected: Conversion{Quantity: 2, Unit: ""},
		},
		{
			label: "tablespoon abbreviation with trailing period",
			qty:   2, unit: "tbsp.", name: "sugar",
			expected: Conversion{
				Quantity: 30, Unit: "ml", Converted: true,
				OriginalQuantity: 2, OriginalUnit: "tbsp.",
			},
		},
	}

	for _, c := range testCases {
		t.Run(c.label, func(t *testing.T) {
			got := Convert(c.qty, c.unit, c.name)
			if diff := cmp.Diff(c.expected, got); diff != "" {
				t.Fatalf("unexpected conversion (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, Volume, Classify("cups"))
	require.Equal(t, Volume, Classify("tsp"))
	require.Equal(t, Weight, Classify("pound"))
	require.Equal(t, Temperature, Classify("Fahrenheit"))
	require.Equal(t, Unknown, Classify("handful"))
	require.Equal(t, Unknown, Classify(""))

	// solid default for bare ounces, liquid with context
	require.Equal(t, Weight, Classify("oz"))
	require.Equal(t, Volume, ClassifyFor("oz", "chicken broth"))
	require.Equal(t, Weight, ClassifyFor("oz", "cheddar cheese"))
}
