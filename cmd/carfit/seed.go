package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/common"
	"github.com/kurumalab/carfit/internal/config"
	"github.com/kurumalab/carfit/internal/storage"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog seed file into an empty database",
		Long: `Import categories, models, grades, and option catalogs from a JSON
seed file. Runs migrations first; refuses a database that already holds
catalog data.`,
		RunE: runSeed,
	}

	cmd.Flags().StringP("file", "f", "", "Path to the seed JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path, _ := cmd.Flags().GetString("file")
	doc, err := storage.LoadSeedFile(config.ExpandPath(path))
	if err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	if err := store.Seed(ctx, doc); err != nil {
		return err
	}
	common.LogInfo("catalog seeded", common.Fields{
		"categories": len(doc.Categories),
		"models":     len(doc.Models),
		"grades":     len(doc.Grades),
	})

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Seeded %d grades across %d models", len(doc.Grades), len(doc.Models))))
	return nil
}
