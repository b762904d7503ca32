package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/config"
)

func coursesCmd() *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the course catalog grouped by area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			for _, a := range cat.Areas() {
				if area != "" && !strings.EqualFold(a, area) {
					continue
				}
				fmt.Printf("%s\n", a)
				for _, code := range cat.CodesInArea(a) {
					entry, _ := cat.Lookup(code)
					fmt.Printf("  %-8s %s [%s]\n",
						code, entry.FullName, strings.Join(entry.Sections, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Only list courses in this area")

	return cmd
}
