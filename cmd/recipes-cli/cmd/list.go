package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the recipes in the vault.",
	Run: func(cmd *cobra.Command, args []string) {
		summaries, err := service.ListRecipes(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Slug", "Title", "Servings", "Ingredients"})

		for _, s := range summaries {
			t.AppendRow(table.Row{s.Slug, s.Title, s.Servings, s.IngredientCount})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
