package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"recipevault-backend/lib/ingredient"
	"recipevault-backend/lib/recipemd"
	"recipevault-backend/services/recipes/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/recipes")

var ErrNotFound = fmt.Errorf("recipe not found")

// ErrCannotScale is reported when a recipe's declared serving text
// carries no number, or the requested serving count is not positive.
var ErrCannotScale = fmt.Errorf("cannot scale this recipe")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

type SaveRecipeRequest struct {
	Title     string
	SourceUrl string
	// declared serving text as authored, e.g. "8 servings"
	Servings     string
	PrepTime     string
	CookTime     string
	Ingredients  []string
	Instructions []string
}

type Recipe struct {
	Slug         string
	Title        string
	SourceUrl    string
	Servings     string
	PrepTime     string
	CookTime     string
	Ingredients  []ingredient.Parsed
	Instructions []string
	CreatedAt    time.Time
}

// SaveRecipe parses every raw ingredient line and stores the recipe.
// A line the parser cannot make sense of degrades to verbatim text;
// it never blocks its neighbors or the save.
func (s Service) SaveRecipe(ctx context.Context, req SaveRecipeRequest) (Recipe, error) {
	ctx, span := tracer.Start(ctx, "SaveRecipe")
	defer span.End()

	span.SetAttributes(attribute.String("title", req.Title))

	if strings.TrimSpace(req.Title) == "" {
		err := fmt.Errorf("a recipe requires a title")
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}

	parsed := ingredient.ParseLines(req.Ingredients)
	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	slug, err := s.newSlug(ctx, txqry, req.Title)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}

	now := time.Now()
	recipeId, err := txqry.CreateRecipe(ctx, db.CreateRecipeParams{
		Slug:         slug,
		Title:        req.Title,
		SourceUrl:    req.SourceUrl,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Instructions: string(instructions),
		CreatedAt:    now.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}

	for _, p := range parsed {
		err := txqry.CreateIngredient(ctx, ingredientRow(recipeId, p))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Recipe{}, err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}

	slog.InfoContext(ctx, "saved recipe", "slug", slug, "ingredients", len(parsed))

	return Recipe{
		Slug:         slug,
		Title:        req.Title,
		SourceUrl:    req.SourceUrl,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Ingredients:  parsed,
		Instructions: req.Instructions,
		CreatedAt:    now,
	}, nil
}

var slugStripRegex = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "recipe"
	}
	return slug
}

func (s Service) newSlug(ctx context.Context, qry *db.Queries, title string) (string, error) {
	slug := slugify(title)
	taken, err := qry.CountSlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if taken == 0 {
		return slug, nil
	}

	suffix, err := random.String(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", slug, strings.ToLower(suffix)), nil
}

func ingredientRow(recipeId int64, p ingredient.Parsed) db.CreateIngredientParams {
	return db.CreateIngredientParams{
		RecipeID: recipeId,
		RawText:  p.Raw,
		Quantity: sql.NullFloat64{
			Float64: p.Quantity,
			Valid:   p.HasQuantity,
		},
		Unit: p.Unit,
		Name: p.Name,
		ConvertedQuantity: sql.NullFloat64{
			Float64: p.ConvertedQuantity,
			Valid:   p.HasQuantity,
		},
		ConvertedUnit: p.ConvertedUnit,
		IsConverted:   p.Converted,
		DisplayText:   p.DisplayText,
		SortOrder:     int64(p.SortOrder),
	}
}

func parsedFromRow(row db.Ingredient) ingredient.Parsed {
	return ingredient.Parsed{
		Raw:               row.RawText,
		Quantity:          row.Quantity.Float64,
		HasQuantity:       row.Quantity.Valid,
		Unit:              row.Unit,
		Name:              row.Name,
		ConvertedQuantity: row.ConvertedQuantity.Float64,
		ConvertedUnit:     row.ConvertedUnit,
		Converted:         row.IsConverted,
		DisplayText:       row.DisplayText,
		SortOrder:         int(row.SortOrder),
	}
}

func (s Service) getRecipe(ctx context.Context, slug string) (Recipe, error) {
	row, err := s.qry.GetRecipeBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return Recipe{}, ErrNotFound
	}
	if err != nil {
		return Recipe{}, err
	}

	rows, err := s.qry.GetIngredients(ctx, row.ID)
	if err != nil {
		return Recipe{}, err
	}
	parsed := make([]ingredient.Parsed, len(rows))
	for i, r := range rows {
		parsed[i] = parsedFromRow(r)
	}

	var instructions []string
	err = json.Unmarshal([]byte(row.Instructions), &instructions)
	if err != nil {
		slog.WarnContext(ctx, "failed to unmarshal db instructions", "slug", slug, "err", err)
	}

	return Recipe{
		Slug:         row.Slug,
		Title:        row.Title,
		SourceUrl:    row.SourceUrl,
		Servings:     row.Servings,
		PrepTime:     row.PrepTime,
		CookTime:     row.CookTime,
		Ingredients:  parsed,
		Instructions: instructions,
		CreatedAt:    time.Unix(row.CreatedAt, 0),
	}, nil
}

func (s Service) GetRecipe(ctx context.Context, slug string) (Recipe, error) {
	ctx, span := tracer.Start(ctx, "GetRecipe")
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	recipe, err := s.getRecipe(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Recipe{}, err
	}
	return recipe, nil
}

type Summary struct {
	Slug            string
	Title           string
	Servings        string
	IngredientCount int64
}

func (s Service) ListRecipes(ctx context.Context) ([]Summary, error) {
	ctx, span := tracer.Start(ctx, "ListRecipes")
	defer span.End()

	rows, err := s.qry.ListRecipes(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Summary, len(rows))
	for i, r := range rows {
		out[i] = Summary{
			Slug:            r.Slug,
			Title:           r.Title,
			Servings:        r.Servings,
			IngredientCount: r.IngredientCount,
		}
	}
	return out, nil
}

func (s Service) DeleteRecipe(ctx context.Context, slug string) error {
	ctx, span := tracer.Start(ctx, "DeleteRecipe")
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	row, err := s.qry.GetRecipeBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteIngredients(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.DeleteRecipe(ctx, row.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return tx.Commit()
}

// ScaleRecipe applies a plain multiplier to a stored recipe's
// ingredients. The factor must be positive; what a zero or negative
// factor would even mean is the caller's problem to rule out.
func (s Service) ScaleRecipe(ctx context.Context, slug string, factor float64) ([]ingredient.Scaled, error) {
	ctx, span := tracer.Start(ctx, "ScaleRecipe")
	defer span.End()

	span.SetAttributes(
		attribute.String("slug", slug),
		attribute.Float64("factor", factor),
	)

	recipe, err := s.getRecipe(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return ingredient.Scale(recipe.Ingredients, factor), nil
}

// ScaleRecipeToServings rescales a stored recipe to a target serving
// count based on its declared serving text. ErrCannotScale is
// returned when the declared text carries no number or desired is not
// positive.
func (s Service) ScaleRecipeToServings(ctx context.Context, slug string, desired float64) (ingredient.ScaleResult, error) {
	ctx, span := tracer.Start(ctx, "ScaleRecipeToServings")
	defer span.End()

	span.SetAttributes(
		attribute.String("slug", slug),
		attribute.Float64("desired", desired),
	)

	recipe, err := s.getRecipe(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ingredient.ScaleResult{}, err
	}

	result, ok := ingredient.ScaleToServings(recipe.Ingredients, recipe.Servings, desired)
	if !ok {
		span.SetStatus(codes.Error, ErrCannotScale.Error())
		return ingredient.ScaleResult{}, ErrCannotScale
	}
	return result, nil
}

// ExportMarkdown renders a stored recipe as Markdown with YAML
// frontmatter.
func (s Service) ExportMarkdown(ctx context.Context, slug string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "ExportMarkdown")
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	recipe, err := s.getRecipe(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	lines := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		lines[i] = ing.DisplayText
	}

	return recipemd.Render(recipemd.Document{
		Frontmatter: recipemd.Frontmatter{
			Title:    recipe.Title,
			Source:   recipe.SourceUrl,
			Servings: recipe.Servings,
			PrepTime: recipe.PrepTime,
			CookTime: recipe.CookTime,
			Created:  recipe.CreatedAt.Format("2006-01-02"),
		},
		Ingredients:  lines,
		Instructions: recipe.Instructions,
	})
}
