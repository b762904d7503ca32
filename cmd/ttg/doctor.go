package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/config"
	"github.com/hfaheem/ttg/internal/extract"
	"github.com/hfaheem/ttg/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify catalog, documents root, DB, and show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Catalog ===")
			fmt.Printf("  Path: %s\n", cfg.CatalogPath)
			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				fmt.Printf("  Status: ERROR (%v)\n", err)
			} else {
				fmt.Printf("  Courses: %d in %d areas\n", cat.Len(), len(cat.Areas()))
			}

			fmt.Println("\n=== Documents ===")
			checkDir("Root", cfg.DocumentsRoot)
			docs, err := extract.DiscoverDocuments(cfg.DocumentsRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  Timetable PDFs: %d\n", len(docs))
			}

			fmt.Println("\n=== Settings ===")
			fmt.Printf("  Strategy: %s\n", cfg.Strategy)
			fmt.Printf("  Grammar:  %s\n", cfg.Grammar)

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'ttg index' first)")
				return nil
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			docCount, err := db.DocumentCount()
			if err != nil {
				return fmt.Errorf("count documents: %w", err)
			}

			sessionCount, err := db.SessionCount()
			if err != nil {
				return fmt.Errorf("count sessions: %w", err)
			}

			fmt.Printf("  Documents: %d\n", docCount)
			fmt.Printf("  Sessions:  %d\n", sessionCount)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
