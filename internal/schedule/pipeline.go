package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/extract"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/token"
)

// ErrNoSessions means the document yielded zero class sessions before
// any filtering: the layout likely doesn't match the expected grid.
// Distinct from an empty schedule, which means the selection matched
// nothing.
var ErrNoSessions = errors.New("no class sessions extracted from document")

// Strategy picks the layout resolver for a run.
type Strategy int

const (
	// StrategyLines scans plain text lines with implicit slot counting.
	StrategyLines Strategy = iota
	// StrategyWords scans positioned words with coordinate slot buckets.
	StrategyWords
)

func (s Strategy) String() string {
	if s == StrategyWords {
		return "words"
	}
	return "lines"
}

func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lines", "line":
		return StrategyLines, true
	case "words", "word":
		return StrategyWords, true
	}
	return StrategyLines, false
}

// Options configure one pipeline run. Grammar and strategy vary between
// institutional timetable formats, so both are per-run choices rather
// than constants.
type Options struct {
	Strategy Strategy
	Grammar  token.Grammar
}

// Extract runs the extraction half of the pipeline: document to located
// sessions, using the configured strategy.
func Extract(docPath string, cat *catalog.Catalog, opts Options) ([]layout.LocatedSession, error) {
	parser := token.NewParser(opts.Grammar)

	var resolver layout.Resolver
	var doc layout.Document

	switch opts.Strategy {
	case StrategyWords:
		words, err := extract.Words(docPath)
		if err != nil {
			return nil, fmt.Errorf("extract words: %w", err)
		}
		doc = layout.Document{Words: words}
		resolver = &layout.WordResolver{Parser: parser, Names: cat}
	default:
		lines, err := extract.Lines(docPath)
		if err != nil {
			return nil, fmt.Errorf("extract lines: %w", err)
		}
		doc = layout.Document{Lines: lines}
		resolver = &layout.LineResolver{Parser: parser}
	}

	return resolver.Resolve(doc), nil
}

// Generate runs the full pipeline for one document and selection. It
// returns ErrNoSessions when the document yields nothing at all; an
// empty schedule with nil error means the selection matched nothing.
func Generate(docPath string, sel Selection, cat *catalog.Catalog, opts Options) ([]PersonalSession, error) {
	sessions, err := Extract(docPath, cat, opts)
	if err != nil {
		return nil, err
	}
	return FromSessions(sessions, sel, cat)
}

// FromSessions filters already-extracted sessions, applying the same
// empty-document signalling as Generate. Used by cache-fed runs and the
// interactive picker.
func FromSessions(sessions []layout.LocatedSession, sel Selection, cat *catalog.Catalog) ([]PersonalSession, error) {
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}
	return Filter(sessions, sel, cat), nil
}
