package recipes

import (
	"context"
	"strings"
	"testing"
	"time"

	"recipevault-backend/lib/testutil"
	"recipevault-backend/services/recipes/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setup(t *testing.T) (Service, context.Context, func()) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	return NewService(result.DB), ctx, func() {
		cancel()
		cleanup()
	}
}

func saveSoup(t *testing.T, ctx context.Context, service Service) Recipe {
	recipe, err := service.SaveRecipe(ctx, SaveRecipeRequest{
		Title:    "French Onion Soup",
		Servings: "8 servings",
		PrepTime: "20 min",
		CookTime: "1 hr",
		Ingredients: []string{
			"1 1/2 cups chopped onion",
			"2 oz olive oil",
			"salt to taste",
		},
		Instructions: []string{
			"Caramelize the onions.",
			"Simmer in broth.",
		},
	})
	require.NoError(t, err)
	return recipe
}

func TestSaveAndGetRecipe(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	saved := saveSoup(t, ctx, service)
	require.Equal(t, "french-onion-soup", saved.Slug)

	recipe, err := service.GetRecipe(ctx, saved.Slug)
	require.NoError(t, err)
	require.Equal(t, "French Onion Soup", recipe.Title)
	require.Len(t, recipe.Ingredients, 3)

	onion := recipe.Ingredients[0]
	require.True(t, onion.HasQuantity)
	require.InDelta(t, 1.5, onion.Quantity, 1e-9)
	require.Equal(t, "cups", onion.Unit)
	require.True(t, onion.Converted)
	require.Equal(t, "360 ml chopped onion (1 1/2 cups chopped onion)", onion.DisplayText)

	salt := recipe.Ingredients[2]
	require.False(t, salt.HasQuantity)
	require.Equal(t, "salt to taste", salt.DisplayText)
	require.Equal(t, 2, salt.SortOrder)

	require.Equal(t, []string{
		"Caramelize the onions.",
		"Simmer in broth.",
	}, recipe.Instructions)
}

func TestGetRecipeNotFound(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	_, err := service.GetRecipe(ctx, "no-such-recipe")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSlugCollision(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	first := saveSoup(t, ctx, service)
	second := saveSoup(t, ctx, service)
	require.Equal(t, "french-onion-soup", first.Slug)
	require.NotEqual(t, first.Slug, second.Slug)
	require.True(t, strings.HasPrefix(second.Slug, "french-onion-soup-"))
}

func TestListAndDelete(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	saved := saveSoup(t, ctx, service)

	summaries, err := service.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, saved.Slug, summaries[0].Slug)
	require.Equal(t, int64(3), summaries[0].IngredientCount)

	err = service.DeleteRecipe(ctx, saved.Slug)
	require.NoError(t, err)

	summaries, err = service.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 0)

	err = service.DeleteRecipe(ctx, saved.Slug)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestScaleRecipe(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	saved := saveSoup(t, ctx, service)

	scaled, err := service.ScaleRecipe(ctx, saved.Slug, 2)
	require.NoError(t, err)
	require.Len(t, scaled, 3)
	require.Equal(t, "3 cups chopped onion", scaled[0].Text)
	require.Equal(t, "4 oz olive oil", scaled[1].Text)
	require.Equal(t, "salt to taste", scaled[2].Text)
}

func TestScaleRecipeToServings(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	saved := saveSoup(t, ctx, service)

	result, err := service.ScaleRecipeToServings(ctx, saved.Slug, 4)
	require.NoError(t, err)
	require.InDelta(t, 0.5, result.Factor, 1e-9)
	require.Equal(t, "3/4 cups chopped onion", result.Ingredients[0].Text)
	require.Equal(t, "1 oz olive oil", result.Ingredients[1].Text)

	_, err = service.ScaleRecipeToServings(ctx, saved.Slug, 0)
	require.ErrorIs(t, err, ErrCannotScale)

	noCount, err := service.SaveRecipe(ctx, SaveRecipeRequest{
		Title:       "Family Stew",
		Servings:    "Varies",
		Ingredients: []string{"2 cups beef broth"},
	})
	require.NoError(t, err)
	_, err = service.ScaleRecipeToServings(ctx, noCount.Slug, 4)
	require.ErrorIs(t, err, ErrCannotScale)
}

func TestExportMarkdown(t *testing.T) {
	service, ctx, cleanup := setup(t)
	defer cleanup()

	saved := saveSoup(t, ctx, service)

	out, err := service.ExportMarkdown(ctx, saved.Slug)
	require.NoError(t, err)

	text := string(out)
	require.True(t, strings.HasPrefix(text, "---\n"))
	require.Contains(t, text, "title: French Onion Soup")
	require.Contains(t, text, "- 360 ml chopped onion (1 1/2 cups chopped onion)")
	require.Contains(t, text, "- salt to taste")
	require.Contains(t, text, "1. Caramelize the onions.")
}
