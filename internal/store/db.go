package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS documents (
    doc_key    TEXT PRIMARY KEY,
    file_path  TEXT NOT NULL,
    sha256     TEXT NOT NULL DEFAULT '',
    strategy   TEXT NOT NULL DEFAULT '',
    grammar    TEXT NOT NULL DEFAULT '',
    mtime      INTEGER NOT NULL DEFAULT 0,
    size       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sessions (
    doc_key     TEXT NOT NULL,
    seq         INTEGER NOT NULL,
    day         TEXT NOT NULL,
    date        TEXT NOT NULL DEFAULT '',
    time_slot   TEXT NOT NULL,
    course_code TEXT NOT NULL,
    section     TEXT NOT NULL,
    session_num INTEGER NOT NULL DEFAULT 0,
    faculty     TEXT NOT NULL,
    venue       TEXT NOT NULL,
    course_name TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (doc_key, seq)
);

CREATE INDEX IF NOT EXISTS sessions_course ON sessions(course_code, section);
`

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	db.Exec("CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)")
	d := &DB{db: db}
	d.migrateSchemaVersion()

	return d, nil
}

// schemaVersion should be bumped whenever extraction logic changes to
// force a full re-extraction of cached documents.
const schemaVersion = "1"

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		// force re-extraction by resetting all document mtime/size to 0
		d.db.Exec("UPDATE documents SET mtime = 0, size = 0")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

type DocumentInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetDocumentInfo(docKey string) (*DocumentInfo, error) {
	var info DocumentInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM documents WHERE doc_key = ?",
		docKey,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *DB) AllDocumentKeys() (map[string]struct{}, error) {
	rows, err := d.db.Query("SELECT doc_key FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys[k] = struct{}{}
	}
	return keys, rows.Err()
}

func (d *DB) DeleteDocument(docKey string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions WHERE doc_key = ?", docKey); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM documents WHERE doc_key = ?", docKey); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) DocumentCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&n)
	return n, err
}

func (d *DB) SessionCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}

type DocumentRow struct {
	DocKey   string
	FilePath string
	Sha256   string
	Strategy string
	Grammar  string
}

func (d *DB) GetDocumentByKey(docKey string) (*DocumentRow, error) {
	var doc DocumentRow
	err := d.db.QueryRow(
		"SELECT doc_key, file_path, sha256, strategy, grammar FROM documents WHERE doc_key = ?",
		docKey,
	).Scan(&doc.DocKey, &doc.FilePath, &doc.Sha256, &doc.Strategy, &doc.Grammar)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

type SessionRow struct {
	DocKey     string
	Seq        int
	Day        string
	Date       string
	TimeSlot   string
	CourseCode string
	Section    string
	SessionNum int
	Faculty    string
	Venue      string
	CourseName string
}

func (d *DB) GetSessions(docKey string) ([]SessionRow, error) {
	rows, err := d.db.Query(
		`SELECT doc_key, seq, day, date, time_slot, course_code, section, session_num, faculty, venue, course_name
		 FROM sessions WHERE doc_key = ? ORDER BY seq`,
		docKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SessionRow
	for rows.Next() {
		var s SessionRow
		if err := rows.Scan(&s.DocKey, &s.Seq, &s.Day, &s.Date, &s.TimeSlot,
			&s.CourseCode, &s.Section, &s.SessionNum, &s.Faculty, &s.Venue, &s.CourseName); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
