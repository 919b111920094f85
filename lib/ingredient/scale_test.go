package ingredient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	parsed := ParseLines([]string{
		"2 cups flour",
		"1 1/2 tsp baking soda",
		"salt to taste",
	})

	t.Run("factor of one reproduces the original quantities", func(t *testing.T) {
		scaled := Scale(parsed, 1)
		require.Len(t, scaled, 3)
		for i, s := range scaled {
			if !parsed[i].HasQuantity {
				continue
			}
			require.InDelta(t, parsed[i].Quantity, s.Quantity, 1e-9)
		}
		require.Equal(t, "2 cups flour", scaled[0].Text)
		require.Equal(t, "1 1/2 tsp baking soda", scaled[1].Text)
	})

	t.Run("doubling", func(t *testing.T) {
		scaled := Scale(parsed, 2)
		require.Equal(t, "4 cups flour", scaled[0].Text)
		require.Equal(t, "3 tsp baking soda", scaled[1].Text)
	})

	t.Run("halving produces fractions", func(t *testing.T) {
		scaled := Scale(parsed, 0.5)
		require.Equal(t, "1 cups flour", scaled[0].Text)
		require.Equal(t, "3/4 tsp baking soda", scaled[1].Text)
	})

	t.Run("quantityless lines pass through unchanged", func(t *testing.T) {
		scaled := Scale(parsed, 3)
		expected := Scaled{Name: "salt to taste", Text: "salt to taste"}
		if diff := cmp.Diff(expected, scaled[2]); diff != "" {
			t.Fatalf("unexpected passthrough (-want +got):\n%s", diff)
		}
	})

	t.Run("awkward factors fall back to two decimals", func(t *testing.T) {
		scaled := Scale(parsed, 1.0/7.0)
		require.Equal(t, "2/7 cups flour", scaled[0].Text)
		scaled = Scale(parsed, 0.123)
		require.Equal(t, "0.25 cups flour", scaled[0].Text)
	})
}

func TestScaleToServings(t *testing.T) {
	parsed := ParseLines([]string{"2 cups flour"})

	t.Run("halving by servings", func(t *testing.T) {
		result, ok := ScaleToServings(parsed, "8 servings", 4)
		require.True(t, ok)
		require.InDelta(t, 0.5, result.Factor, 1e-9)
		require.InDelta(t, 8, result.OriginalServings, 1e-9)
		require.InDelta(t, 4, result.DesiredServings, 1e-9)
		require.Len(t, result.Ingredients, 1)
		require.Equal(t, "1 cups flour", result.Ingredients[0].Text)
	})

	t.Run("integer quantities render plain", func(t *testing.T) {
		result, ok := ScaleToServings(ParseLines([]string{"2 lbs chicken"}), "8 servings", 4)
		require.True(t, ok)
		require.Equal(t, "1 lbs chicken", result.Ingredients[0].Text)
	})

	t.Run("declared servings without digits cannot scale", func(t *testing.T) {
		_, ok := ScaleToServings(parsed, "Varies", 4)
		require.False(t, ok)
	})

	t.Run("non-positive desired servings cannot scale", func(t *testing.T) {
		_, ok := ScaleToServings(parsed, "8 servings", 0)
		require.False(t, ok)
		_, ok = ScaleToServings(parsed, "8 servings", -2)
		require.False(t, ok)
	})

	t.Run("serving count is the first number in the text", func(t *testing.T) {
		result, ok := ScaleToServings(parsed, "makes 6 to 8 servings", 3)
		require.True(t, ok)
		require.InDelta(t, 0.5, result.Factor, 1e-9)
	})
}
