package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vladmesh/dnd-helper-sub000/internal/clients/external"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/ingest"
)

var (
	importLevel int
	importClass string
	seedFile    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog content from external sources",
}

var importSpellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "Import SRD spells from the D&D 5e API",
	Long: `Fetch spells from the D&D 5e API and upsert them by slug.
Running the import again updates existing spells instead of duplicating them.`,
	RunE: runImportSpells,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load monsters, spells, translations and enum labels from a YAML file",
	RunE:  runSeed,
}

func init() {
	importSpellsCmd.Flags().IntVar(&importLevel, "level", -1, "Only import spells of this level (0-9)")
	importSpellsCmd.Flags().StringVar(&importClass, "class", "", "Only import spells of this class (e.g. wizard)")
	importCmd.AddCommand(importSpellsCmd)

	seedCmd.Flags().StringVar(&seedFile, "file", "", "Path to the seed YAML document")
	_ = seedCmd.MarkFlagRequired("file")
}

func runImportSpells(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	client, err := external.New(&external.Config{
		BaseURL:     d.cfg.DND5eAPIBaseURL,
		HTTPTimeout: d.cfg.DND5eAPITimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	svc, err := newIngest(d, client)
	if err != nil {
		return err
	}

	input := &ingest.ImportSpellsInput{ClassID: importClass}
	if importLevel >= 0 {
		level := importLevel
		input.Level = &level
	}

	out, err := svc.ImportSpells(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to import spells: %w", err)
	}

	slog.InfoContext(ctx, "spell import finished", "created", out.Created, "updated", out.Updated)
	fmt.Printf("Imported spells: %d created, %d updated\n", out.Created, out.Updated)
	return nil
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	doc, err := ingest.LoadDocument(seedFile)
	if err != nil {
		return err
	}

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	svc, err := newIngest(d, nil)
	if err != nil {
		return err
	}

	out, err := svc.Seed(ctx, &ingest.SeedInput{Document: doc})
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", seedFile, err)
	}

	fmt.Printf("Seeded %s: %d created, %d updated, %d translations, %d labels\n",
		seedFile, out.Created, out.Updated, out.Translations, out.Labels)
	return nil
}

func newIngest(d *deps, client external.Client) (ingest.Service, error) {
	return ingest.NewOrchestrator(&ingest.Config{
		Catalog:     d.catalog,
		MonsterRepo: d.monsterRepo,
		SpellRepo:   d.spellRepo,
		Client:      client,
	})
}
