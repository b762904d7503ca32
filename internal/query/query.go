package query

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/store"
)

// Result is one cached session matching a find query.
type Result struct {
	DocKey     string
	Day        string
	Date       string
	TimeSlot   string
	CourseCode string
	Section    string
	Faculty    string
	Venue      string
	CourseName string
}

type Options struct {
	Text   string // substring over code, faculty, venue, course name
	Day    string // "" = all; abbreviation or full name
	Course string // "" = all; exact course code
	Limit  int
}

// Find searches cached sessions across all indexed documents. Session
// fields are short fixed strings, so indexed LIKE matching is enough.
func Find(db *store.DB, opts Options) ([]Result, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}

	var conditions []string
	var args []interface{}

	if opts.Text != "" {
		conditions = append(conditions,
			"(course_code LIKE ? OR faculty LIKE ? OR venue LIKE ? OR course_name LIKE ?)")
		pat := "%" + opts.Text + "%"
		args = append(args, pat, pat, pat, pat)
	}

	if opts.Day != "" {
		day, ok := layout.FullDayName(opts.Day)
		if !ok {
			return nil, fmt.Errorf("unknown day %q", opts.Day)
		}
		conditions = append(conditions, "day = ?")
		args = append(args, day)
	}

	if opts.Course != "" {
		conditions = append(conditions, "course_code = ?")
		args = append(args, opts.Course)
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	q := fmt.Sprintf(`
		SELECT doc_key, day, date, time_slot, course_code, section, faculty, venue, course_name
		FROM sessions
		WHERE %s
		ORDER BY doc_key, seq
		LIMIT ?
	`, where)

	args = append(args, opts.Limit)

	rows, err := db.Raw().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("find query: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(
			&r.DocKey, &r.Day, &r.Date, &r.TimeSlot,
			&r.CourseCode, &r.Section, &r.Faculty, &r.Venue, &r.CourseName,
		); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
