package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mealplan-pdf/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert meal plan text files to PDF",
	Long: `Convert parses a meal plan text file and writes it as a PDF table.

With no arguments it converts --input to --output. With one or more file
arguments it converts each into --output-dir, naming each PDF after its
input file, and reports a summary.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("output-dir", ".", "directory for PDFs when converting several files")
	if err := viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output-dir")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return convert.ConvertFile(convertConfig(), os.Stdout)
	}

	result := convert.ConvertBatch(args, viper.GetString("output_dir"), renderConfig(), os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
