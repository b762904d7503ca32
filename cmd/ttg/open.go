package main

import (
	"github.com/spf13/cobra"

	"github.com/hfaheem/ttg/internal/config"
	"github.com/hfaheem/ttg/internal/open"
	"github.com/hfaheem/ttg/internal/store"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <timetable.pdf|doc-key>",
		Short: "Open a timetable document with the platform viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				// the argument may still be a plain path
				return open.Document(nil, args[0])
			}
			defer db.Close()

			return open.Document(db, args[0])
		},
	}
}
