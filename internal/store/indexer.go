package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/extract"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/schedule"
)

type Stats struct {
	Scanned int
	Updated int
	Skipped int
	Pruned  int
	Errors  int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors)
}

// IndexAll extracts and caches every PDF under root, pruning cache
// entries whose files no longer exist.
func IndexAll(db *DB, root string, cat *catalog.Catalog, opts schedule.Options) (Stats, error) {
	var stats Stats

	docs, err := extract.DiscoverDocuments(root)
	if err != nil {
		return stats, fmt.Errorf("discover: %w", err)
	}
	stats.Scanned = len(docs)

	seenKeys := make(map[string]struct{})
	for _, doc := range docs {
		key := docKey(doc.Path)
		seenKeys[key] = struct{}{}
		indexDocument(db, key, doc, cat, opts, &stats)
	}

	pruned, err := pruneDocuments(db, seenKeys)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned

	return stats, nil
}

// IndexOne extracts and caches a single document without pruning.
func IndexOne(db *DB, path string, cat *catalog.Catalog, opts schedule.Options) (Stats, error) {
	var stats Stats

	doc, err := extract.StatDocument(path)
	if err != nil {
		return stats, fmt.Errorf("stat document: %w", err)
	}
	stats.Scanned = 1

	indexDocument(db, docKey(path), doc, cat, opts, &stats)
	return stats, nil
}

// CachedSessions loads the cached extraction for path, or nil when the
// document was never indexed.
func CachedSessions(db *DB, path string) ([]layout.LocatedSession, error) {
	rows, err := db.GetSessions(docKey(path))
	if err != nil {
		return nil, err
	}
	sessions := make([]layout.LocatedSession, 0, len(rows))
	for _, r := range rows {
		s := layout.LocatedSession{
			Day:        r.Day,
			Date:       r.Date,
			TimeSlot:   r.TimeSlot,
			CourseName: r.CourseName,
		}
		s.Token.CourseCode = r.CourseCode
		s.Token.Section = r.Section
		s.Token.SessionNum = r.SessionNum
		s.Token.Faculty = r.Faculty
		s.Token.Venue = r.Venue
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func docKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func indexDocument(db *DB, key string, doc extract.DocumentInfo, cat *catalog.Catalog, opts schedule.Options, stats *Stats) {
	needs, err := needsUpdate(db, key, doc.Mtime, doc.Size)
	if err != nil {
		stats.Errors++
		return
	}
	if !needs {
		stats.Skipped++
		return
	}

	sessions, err := schedule.Extract(doc.Path, cat, opts)
	if err != nil {
		stats.Errors++
		fmt.Fprintf(os.Stderr, "  WARN: extract %s: %v\n", doc.Path, err)
		return
	}

	if err := storeDocument(db, key, doc, sessions, opts); err != nil {
		stats.Errors++
		fmt.Fprintf(os.Stderr, "  WARN: index %s: %v\n", doc.Path, err)
		return
	}
	stats.Updated++
}

func needsUpdate(db *DB, docKey string, mtime, size int64) (bool, error) {
	info, err := db.GetDocumentInfo(docKey)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // new document
	}
	return info.Mtime != mtime || info.Size != size, nil
}

func storeDocument(db *DB, key string, doc extract.DocumentInfo, sessions []layout.LocatedSession, opts schedule.Options) error {
	// delete old data first
	if err := db.DeleteDocument(key); err != nil {
		return err
	}

	sum, err := hashFile(doc.Path)
	if err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO documents (doc_key, file_path, sha256, strategy, grammar, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		key, doc.Path, sum, opts.Strategy.String(), opts.Grammar.String(), doc.Mtime, doc.Size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sessions (doc_key, seq, day, date, time_slot, course_code, section, session_num, faculty, venue, course_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range sessions {
		_, err := stmt.Exec(
			key, i, s.Day, s.Date, s.TimeSlot,
			s.Token.CourseCode, s.Token.Section, s.Token.SessionNum,
			s.Token.Faculty, s.Token.Venue, s.CourseName,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func pruneDocuments(db *DB, seenKeys map[string]struct{}) (int, error) {
	allKeys, err := db.AllDocumentKeys()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for key := range allKeys {
		if _, ok := seenKeys[key]; !ok {
			if err := db.DeleteDocument(key); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
