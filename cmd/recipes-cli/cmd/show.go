package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showScale float64
var showServings float64

func init() {
	showCmd.Flags().Float64Var(&showScale, "scale", 0, "Multiply every quantity by this factor.")
	showCmd.Flags().Float64Var(&showServings, "servings", 0, "Rescale to this serving count.")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Prints a recipe's ingredients, optionally rescaled.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slug := args[0]

		var lines []string
		switch {
		case showScale != 0 && showServings != 0:
			fmt.Fprintln(os.Stderr, "--scale and --servings are mutually exclusive")
			os.Exit(1)
		case showScale != 0:
			if showScale < 0 {
				fmt.Fprintln(os.Stderr, "--scale must be positive")
				os.Exit(1)
			}
			scaled, err := service.ScaleRecipe(cmd.Context(), slug, showScale)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			for _, s := range scaled {
				lines = append(lines, s.Text)
			}
		case showServings != 0:
			result, err := service.ScaleRecipeToServings(cmd.Context(), slug, showServings)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			fmt.Printf(
				"%v servings -> %v servings (factor %.2f)\n",
				result.OriginalServings, result.DesiredServings, result.Factor,
			)
			for _, s := range result.Ingredients {
				lines = append(lines, s.Text)
			}
		default:
			recipe, err := service.GetRecipe(cmd.Context(), slug)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			for _, ing := range recipe.Ingredients {
				lines = append(lines, ing.DisplayText)
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Ingredient"})
		for _, line := range lines {
			t.AppendRow(table.Row{line})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
