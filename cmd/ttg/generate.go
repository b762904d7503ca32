package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/config"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/render"
	"github.com/hfaheem/ttg/internal/schedule"
	"github.com/hfaheem/ttg/internal/store"
	"github.com/hfaheem/ttg/internal/token"
	"github.com/hfaheem/ttg/internal/tui"
)

func generateCmd() *cobra.Command {
	var selectExpr, strategyFlag, grammarFlag string
	var tsv, cached bool

	cmd := &cobra.Command{
		Use:   "generate <timetable.pdf>",
		Short: "Generate your personal weekly schedule from a timetable PDF",
		Long: `Extract every class session from the institution-wide timetable PDF and
keep only the ones matching your course-section selection.

Pass the selection with --select, e.g.:
  ttg generate week31.pdf --select MFS:A,SMMT:Exc

Without --select, an interactive picker opens when stdout is a terminal.
Piped output is TSV: day, date, time_slot, course_name, faculty, venue, section.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			opts := pipelineOptions(cfg, strategyFlag, grammarFlag)

			var sessions []layout.LocatedSession
			if cached {
				db, err := store.OpenDB(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				sessions, err = store.CachedSessions(db, docPath)
				db.Close()
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}
			} else {
				sessions, err = schedule.Extract(docPath, cat, opts)
				if err != nil {
					return err
				}
			}

			isTTY := term.IsTerminal(int(os.Stdout.Fd()))

			var sel schedule.Selection
			switch {
			case selectExpr != "":
				sel, err = schedule.ParseSelection(selectExpr)
				if err != nil {
					return err
				}
				warnInvalidSections(cat, sel)
			case isTTY:
				if len(sessions) == 0 {
					return schedule.ErrNoSessions
				}
				var accepted bool
				sel, accepted, err = tui.Run(sessions, cat, nil)
				if err != nil {
					return err
				}
				if !accepted {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
				}
			default:
				return fmt.Errorf("no selection: pass --select CODE:SECTION,... or run in a terminal")
			}

			personal, err := schedule.FromSessions(sessions, sel, cat)
			if errors.Is(err, schedule.ErrNoSessions) {
				return fmt.Errorf("%w: check that the document uses the expected grid layout", err)
			}
			if err != nil {
				return err
			}

			if len(personal) == 0 {
				fmt.Fprintln(os.Stderr, "Your selection matched no classes in this timetable.")
				return nil
			}

			if tsv || !isTTY {
				render.TSV(os.Stdout, personal)
				return nil
			}

			width := 0
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}
			fmt.Print(render.Table(personal, render.Options{Width: width}))
			return nil
		},
	}

	cmd.Flags().StringVar(&selectExpr, "select", "", "Course-section pairs, e.g. MFS:A,SMMT:Exc")
	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "Layout strategy (lines/words); overrides config")
	cmd.Flags().StringVar(&grammarFlag, "grammar", "", "Token grammar (alnum/letters); overrides config")
	cmd.Flags().BoolVar(&tsv, "tsv", false, "Force TSV output")
	cmd.Flags().BoolVar(&cached, "cached", false, "Use sessions cached by 'ttg index' instead of re-extracting")

	return cmd
}

// pipelineOptions resolves strategy and grammar from flags over config,
// warning on unrecognized values rather than failing.
func pipelineOptions(cfg *config.Config, strategyFlag, grammarFlag string) schedule.Options {
	sVal := cfg.Strategy
	if strategyFlag != "" {
		sVal = strategyFlag
	}
	strat, ok := schedule.ParseStrategy(sVal)
	if !ok {
		fmt.Fprintf(os.Stderr, "WARN: unknown strategy %q, using %s\n", sVal, strat)
	}

	gVal := cfg.Grammar
	if grammarFlag != "" {
		gVal = grammarFlag
	}
	g, ok := token.ParseGrammar(gVal)
	if !ok {
		fmt.Fprintf(os.Stderr, "WARN: unknown grammar %q, using %s\n", gVal, g)
	}

	return schedule.Options{Strategy: strat, Grammar: g}
}

func warnInvalidSections(cat *catalog.Catalog, sel schedule.Selection) {
	for _, k := range sel.Keys() {
		if _, known := cat.Lookup(k.CourseCode); !known {
			fmt.Fprintf(os.Stderr, "WARN: %s is not in the course catalog\n", k.CourseCode)
			continue
		}
		if !cat.HasSection(k.CourseCode, k.Section) {
			fmt.Fprintf(os.Stderr, "WARN: section %s is not listed for %s\n", k.Section, k.CourseCode)
		}
	}
}
