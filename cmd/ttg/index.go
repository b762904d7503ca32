package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/config"
	"github.com/hfaheem/ttg/internal/store"
)

func indexCmd() *cobra.Command {
	var strategyFlag, grammarFlag string

	cmd := &cobra.Command{
		Use:   "index [timetable.pdf]",
		Short: "Extract and cache sessions for timetable PDFs",
		Long: `Extract class sessions and cache them in the local database so later
runs can use --cached. With a file argument only that document is
indexed; without one, every PDF under the configured documents_root is
indexed and stale cache entries are pruned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			opts := pipelineOptions(cfg, strategyFlag, grammarFlag)

			var stats store.Stats
			if len(args) == 1 {
				stats, err = store.IndexOne(db, args[0], cat, opts)
			} else {
				fmt.Fprintf(os.Stderr, "Scanning %s...\n", cfg.DocumentsRoot)
				stats, err = store.IndexAll(db, cfg.DocumentsRoot, cat, opts)
			}
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "Layout strategy (lines/words); overrides config")
	cmd.Flags().StringVar(&grammarFlag, "grammar", "", "Token grammar (alnum/letters); overrides config")

	return cmd
}
