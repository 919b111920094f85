package cmd

import (
	"fmt"
	"os"

	"recipevault-backend/lib/configutil"
	"recipevault-backend/services/recipes"

	"github.com/spf13/cobra"
)

// recipeFile mirrors SaveRecipeRequest for json5 input files.
type recipeFile struct {
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	Servings     string   `json:"servings"`
	PrepTime     string   `json:"prep_time"`
	CookTime     string   `json:"cook_time"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

var addFile string
var addTitle string
var addSource string
var addServings string
var addPrepTime string
var addCookTime string
var addIngredients []string
var addInstructions []string

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Read the recipe from a json5 file instead of flags.")
	addCmd.Flags().StringVar(&addTitle, "title", "", "Recipe title.")
	addCmd.Flags().StringVar(&addSource, "source", "", "Url the recipe came from.")
	addCmd.Flags().StringVar(&addServings, "servings", "", "Declared serving text, e.g. '8 servings'.")
	addCmd.Flags().StringVar(&addPrepTime, "prep", "", "Prep time text.")
	addCmd.Flags().StringVar(&addCookTime, "cook", "", "Cook time text.")
	addCmd.Flags().StringArrayVarP(&addIngredients, "ingredient", "i", nil, "Raw ingredient line, repeatable.")
	addCmd.Flags().StringArrayVar(&addInstructions, "instruction", nil, "Instruction step, repeatable.")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Parses and saves a recipe.",
	Run: func(cmd *cobra.Command, args []string) {
		req := recipes.SaveRecipeRequest{
			Title:        addTitle,
			SourceUrl:    addSource,
			Servings:     addServings,
			PrepTime:     addPrepTime,
			CookTime:     addCookTime,
			Ingredients:  addIngredients,
			Instructions: addInstructions,
		}
		if addFile != "" {
			file, err := configutil.ReadConfig[recipeFile](addFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			req = recipes.SaveRecipeRequest{
				Title:        file.Title,
				SourceUrl:    file.Source,
				Servings:     file.Servings,
				PrepTime:     file.PrepTime,
				CookTime:     file.CookTime,
				Ingredients:  file.Ingredients,
				Instructions: file.Instructions,
			}
		}

		recipe, err := service.SaveRecipe(cmd.Context(), req)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Printf("saved %q as %s\n", recipe.Title, recipe.Slug)
		for _, ing := range recipe.Ingredients {
			fmt.Printf("  %s\n", ing.DisplayText)
		}
	},
}
