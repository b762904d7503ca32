package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfaheem/ttg/internal/config"
	"github.com/hfaheem/ttg/internal/query"
	"github.com/hfaheem/ttg/internal/store"
)

func findCmd() *cobra.Command {
	var day, course string
	var limit int

	cmd := &cobra.Command{
		Use:   "find [text]",
		Short: "Search cached sessions by course, faculty or venue",
		Long: `Search sessions cached by 'ttg index'. Output is TSV:
  day, date, time_slot, course_code, section, faculty, venue, course_name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			opts := query.Options{
				Day:    day,
				Course: course,
				Limit:  limit,
			}
			if len(args) == 1 {
				opts.Text = args[0]
			}

			results, err := query.Find(db, opts)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				fmt.Printf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Day, r.Date, r.TimeSlot,
					r.CourseCode, r.Section, r.Faculty, r.Venue, r.CourseName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Filter by weekday (Mon..Sun or full name)")
	cmd.Flags().StringVar(&course, "course", "", "Filter by exact course code")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results")

	return cmd
}
