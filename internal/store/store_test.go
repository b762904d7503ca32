package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hfaheem/ttg/internal/extract"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/schedule"
	"github.com/hfaheem/ttg/internal/token"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "ttg.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testDocument(t *testing.T, content string) extract.DocumentInfo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "week.pdf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	doc, err := extract.StatDocument(path)
	if err != nil {
		t.Fatalf("stat doc: %v", err)
	}
	return doc
}

func sampleSessions() []layout.LocatedSession {
	return []layout.LocatedSession{
		{
			Day:      "Monday",
			Date:     "21 Jul 2025",
			TimeSlot: "8:00-9:15 am",
			Token: token.ClassToken{
				CourseCode: "MFS",
				Section:    "A",
				SessionNum: 6,
				Faculty:    "AB",
				Venue:      "C-402",
			},
		},
		{
			Day:        "Tuesday",
			TimeSlot:   "9:30-10:45 am",
			CourseName: "Strategic Marketing Management",
			Token: token.ClassToken{
				CourseCode: "SMMT",
				Section:    "Exc",
				SessionNum: 1,
				Faculty:    "AP/PD",
				Venue:      "Lab 3",
			},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	doc := testDocument(t, "fake timetable bytes")
	key := docKey(doc.Path)

	opts := schedule.Options{Strategy: schedule.StrategyLines, Grammar: token.AlphaNumeric}
	if err := storeDocument(db, key, doc, sampleSessions(), opts); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := CachedSessions(db, doc.Path)
	if err != nil {
		t.Fatalf("cached sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}

	first := got[0]
	if first.Day != "Monday" || first.Date != "21 Jul 2025" || first.TimeSlot != "8:00-9:15 am" {
		t.Errorf("first location = %q %q %q", first.Day, first.Date, first.TimeSlot)
	}
	if first.Token.CourseCode != "MFS" || first.Token.SessionNum != 6 {
		t.Errorf("first token = %+v", first.Token)
	}
	if got[1].CourseName != "Strategic Marketing Management" {
		t.Errorf("upstream course name not preserved: %q", got[1].CourseName)
	}
	if got[1].Token.Faculty != "AP/PD" {
		t.Errorf("co-taught faculty mangled: %q", got[1].Token.Faculty)
	}

	row, err := db.GetDocumentByKey(key)
	if err != nil || row == nil {
		t.Fatalf("get document: %v, %v", row, err)
	}
	if row.Strategy != "lines" || row.Grammar != "alnum" {
		t.Errorf("stored options = %s/%s", row.Strategy, row.Grammar)
	}
	if row.Sha256 == "" {
		t.Error("content hash missing")
	}
}

func TestNeedsUpdateTracksMtimeAndSize(t *testing.T) {
	db := testDB(t)
	doc := testDocument(t, "v1")
	key := docKey(doc.Path)

	needs, err := needsUpdate(db, key, doc.Mtime, doc.Size)
	if err != nil || !needs {
		t.Fatalf("new document: needs=%v err=%v, want true", needs, err)
	}

	opts := schedule.Options{}
	if err := storeDocument(db, key, doc, sampleSessions(), opts); err != nil {
		t.Fatalf("store: %v", err)
	}

	needs, err = needsUpdate(db, key, doc.Mtime, doc.Size)
	if err != nil || needs {
		t.Fatalf("unchanged document: needs=%v err=%v, want false", needs, err)
	}

	needs, err = needsUpdate(db, key, doc.Mtime, doc.Size+10)
	if err != nil || !needs {
		t.Fatalf("grown document: needs=%v err=%v, want true", needs, err)
	}
}

func TestDeleteAndCounts(t *testing.T) {
	db := testDB(t)
	doc := testDocument(t, "bytes")
	key := docKey(doc.Path)

	if err := storeDocument(db, key, doc, sampleSessions(), schedule.Options{}); err != nil {
		t.Fatalf("store: %v", err)
	}

	if n, _ := db.DocumentCount(); n != 1 {
		t.Errorf("documents = %d, want 1", n)
	}
	if n, _ := db.SessionCount(); n != 2 {
		t.Errorf("sessions = %d, want 2", n)
	}

	if err := db.DeleteDocument(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := db.DocumentCount(); n != 0 {
		t.Errorf("documents after delete = %d", n)
	}
	if n, _ := db.SessionCount(); n != 0 {
		t.Errorf("sessions after delete = %d (cascade missed)", n)
	}
}
