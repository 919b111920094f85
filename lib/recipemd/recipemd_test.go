package recipemd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(Document{
		Frontmatter: Frontmatter{
			Title:    "French Onion Soup",
			Source:   "https://example.com/soup",
			Servings: "8 servings",
			PrepTime: "20 min",
			CookTime: "1 hr",
		},
		Ingredients: []string{
			"360 ml chopped onion (1 1/2 cups chopped onion)",
			"salt to taste",
		},
		Instructions: []string{
			"Caramelize the onions.",
			"Simmer in broth.",
		},
	})
	require.NoError(t, err)

	text := string(out)
	require.True(t, strings.HasPrefix(text, "---\n"), "missing frontmatter open")
	require.Contains(t, text, "title: French Onion Soup")
	require.Contains(t, text, "servings: 8 servings")
	require.Contains(t, text, "\n---\n\n# French Onion Soup\n")
	require.Contains(t, text, "- 360 ml chopped onion (1 1/2 cups chopped onion)\n")
	require.Contains(t, text, "- salt to taste\n")
	require.Contains(t, text, "1. Caramelize the onions.\n")
	require.Contains(t, text, "2. Simmer in broth.\n")

	// no empty frontmatter keys
	require.NotContains(t, text, "tags:")
	require.NotContains(t, text, "created:")
}
