// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mealplan-pdf/internal/archive"
	"github.com/pdiddy/mealplan-pdf/internal/convert"
	"github.com/pdiddy/mealplan-pdf/internal/export"
	"github.com/pdiddy/mealplan-pdf/internal/parse"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Keep parsed meal plans in a local archive",
	Long: `Archive stores parsed meal plans in a SQLite database under --archive-dir
so earlier weeks can be listed, inspected, and rendered again without their
source files. Use subcommands to save, list, show, render, or delete plans.`,
}

// --- save subcommand ---

var archiveSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Parse a meal plan file and store it in the archive",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArchiveSave,
}

func runArchiveSave(cmd *cobra.Command, args []string) error {
	path := viper.GetString("input")
	if len(args) == 1 {
		path = args[0]
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	plan, err := parse.ParseFile(path)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(context.Background(), name, path, plan)
	if err != nil {
		return err
	}
	fmt.Printf("archived: %s (%s, %d days)\n", id, name, len(plan))
	return nil
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived meal plans, newest first",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	plans, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plans)
	}

	if len(plans) == 0 {
		fmt.Printf("No plans archived in %s.\n", store.Path())
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-4s  %-20s  %s\n", "ID", "Name", "Days", "Archived", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, p := range plans {
		name := p.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-4d  %-20s  %s\n",
			p.ID, name, p.Days, p.CreatedAt.Local().Format("2006-01-02 15:04:05"), p.Source)
	}
	return nil
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived meal plan as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	pf := export.FromPlan(entry.Plan, entry.Source)
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return export.WriteJSON(os.Stdout, pf)
	}
	return export.WriteYAML(os.Stdout, pf)
}

// --- render subcommand ---

var archiveRenderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render an archived meal plan to PDF",
	Long: `Render writes an archived plan to --output exactly as convert would have
rendered its source file.`,
	Args: cobra.ExactArgs(1),
	RunE: runArchiveRender,
}

func runArchiveRender(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	out := viper.GetString("output")
	fmt.Printf("Generating PDF: %s...\n", out)
	if err := convert.WritePDF(entry.Plan, out, renderConfig()); err != nil {
		return err
	}
	fmt.Printf("✓ PDF created successfully: %s\n", out)
	return nil
}

// --- delete subcommand ---

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a plan from the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.NewStore(archiveConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	archiveSaveCmd.Flags().String("name", "", "name for the archived plan (default: input file name)")
	archiveListCmd.Flags().Bool("json", false, "output as JSON")
	archiveShowCmd.Flags().Bool("json", false, "output as JSON")

	archiveCmd.AddCommand(archiveSaveCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveRenderCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)

	rootCmd.AddCommand(archiveCmd)
}
