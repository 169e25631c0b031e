// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mealplan-pdf CLI, which turns a
// plain-text weekly meal plan into a formatted PDF table.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mealplan-pdf/internal/convert"
	"github.com/pdiddy/mealplan-pdf/internal/envfile"
	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Run without a subcommand it converts the
// configured input to the configured output.
var rootCmd = &cobra.Command{
	Use:   "mealplan-pdf",
	Short: "Convert a plain-text weekly meal plan into a PDF table",
	Long: `mealplan-pdf reads a weekly meal plan written as plain text (a day name
on its own line followed by lines such as "Breakfast: ...") and renders it
as a striped, gridded table on Letter pages.

Run without a subcommand to convert meal_plan.html into meal_plan.pdf, or
use --input and --output to choose other paths.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		keys, err := envfile.Load(".env")
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded .env: %v\n", keys)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert.ConvertFile(convertConfig(), os.Stdout)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./mealplan-pdf.yaml or ~/.config/mealplan-pdf/mealplan-pdf.yaml)")
	pf.String("input", convert.DefaultInput, "meal plan text file")
	pf.String("output", convert.DefaultOutput, "PDF file to write")
	pf.String("title", types.DefaultTitle, "title printed above the table")
	pf.Bool("compress", true, "compress PDF content streams")
	pf.String("archive-dir", "archive", "directory holding the plan archive database")

	for key, flag := range map[string]string{
		"input":       "input",
		"output":      "output",
		"title":       "title",
		"compress":    "compress",
		"archive_dir": "archive-dir",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mealplan-pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mealplan-pdf"))
		}
	}

	viper.SetEnvPrefix("MEALPLAN_PDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// renderConfig returns the renderer settings resolved from flags, env, and
// config file.
func renderConfig() types.RenderConfig {
	return types.RenderConfig{
		Title:    viper.GetString("title"),
		Compress: viper.GetBool("compress"),
	}
}

func convertConfig() types.ConvertConfig {
	return types.ConvertConfig{
		RenderConfig: renderConfig(),
		InputPath:    viper.GetString("input"),
		OutputPath:   viper.GetString("output"),
	}
}

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{Dir: viper.GetString("archive_dir")}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
