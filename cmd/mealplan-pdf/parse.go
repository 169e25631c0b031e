// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mealplan-pdf/internal/export"
	"github.com/pdiddy/mealplan-pdf/internal/parse"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the meal plan a text file parses to",
	Long: `Parse reads a meal plan text file and prints the days and meal slots it
found, in week order, as YAML (or JSON with --json). Nothing is rendered.
Use it to check which lines of a file were recognized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := viper.GetString("input")
	if len(args) == 1 {
		path = args[0]
	}

	plan, err := parse.ParseFile(path)
	if err != nil {
		return err
	}

	pf := export.FromPlan(plan, path)
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return export.WriteJSON(os.Stdout, pf)
	}
	return export.WriteYAML(os.Stdout, pf)
}
