package schedule

import (
	"fmt"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/layout"
)

// PersonalSession is one entry of a student's personal schedule.
type PersonalSession struct {
	Day        string
	Date       string
	TimeSlot   string
	CourseName string
	Area       string
	Faculty    string
	Venue      string
	Section    string
	SessionNum int
	// Unknown marks records whose course code is absent from the catalog;
	// CourseName then carries a fallback, not a catalog name.
	Unknown bool
}

// Filter keeps the sessions whose (code, section) is in the selection and
// enriches them from the catalog. Output order mirrors input order, and
// duplicates are kept: the same pair legitimately recurs once per day.
//
// Unknown-course policy: when the resolver already supplied a course name
// (the word resolver, which falls back to the raw code) that name is kept;
// otherwise a catalog miss yields the marker "unknown course (CODE)".
// Either way Unknown is set so renderers can flag the record.
func Filter(sessions []layout.LocatedSession, sel Selection, cat *catalog.Catalog) []PersonalSession {
	var schedule []PersonalSession
	for _, s := range sessions {
		if !sel.Contains(s.Token.CourseCode, s.Token.Section) {
			continue
		}

		entry, known := cat.Lookup(s.Token.CourseCode)
		ps := PersonalSession{
			Day:        s.Day,
			Date:       s.Date,
			TimeSlot:   s.TimeSlot,
			Area:       entry.Area,
			Faculty:    s.Token.Faculty,
			Venue:      s.Token.Venue,
			Section:    s.Token.Section,
			SessionNum: s.Token.SessionNum,
			Unknown:    !known,
		}
		switch {
		case s.CourseName != "":
			ps.CourseName = s.CourseName
		case known:
			ps.CourseName = entry.FullName
		default:
			ps.CourseName = fmt.Sprintf("unknown course (%s)", s.Token.CourseCode)
		}
		schedule = append(schedule, ps)
	}
	return schedule
}
