package layout

import (
	"sort"
	"strings"

	"github.com/hfaheem/ttg/internal/token"
)

// WordResolver resolves day and time slot from positioned words. The
// current day updates whenever a word contains a weekday abbreviation;
// time slots come from the word's left coordinate tested against the
// fixed column bounds, falling back to UnknownSlot. Dates are not
// available in this layout. Course names are resolved during the scan,
// with the raw code standing in for codes missing from the catalog.
type WordResolver struct {
	Parser *token.Parser
	Names  NameLookup
}

func (r *WordResolver) Resolve(doc Document) []LocatedSession {
	var sessions []LocatedSession

	day := ""
	for _, w := range doc.Words {
		if d, ok := containedDay(w.Text); ok {
			day = d
		}

		text := strings.ReplaceAll(w.Text, "\n", "")
		tokens := r.Parser.Parse(text)
		if len(tokens) == 0 {
			continue
		}
		if day == "" {
			// unoriented: no day seen yet, drop rather than guess
			continue
		}

		slot := slotForX(w.X0)
		for _, t := range tokens {
			name, ok := r.Names.CourseName(t.CourseCode)
			if !ok {
				name = t.CourseCode
			}
			sessions = append(sessions, LocatedSession{
				Day:        day,
				TimeSlot:   slot,
				Token:      t,
				CourseName: name,
			})
		}
	}

	sortSessions(sessions)
	return sessions
}

// containedDay finds a weekday abbreviation anywhere in the word,
// case-insensitively. Header cells often glue the day to other text.
func containedDay(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, wd := range weekdayAbbrevs {
		if strings.Contains(lower, strings.ToLower(wd.abbrev)) {
			return wd.full, true
		}
	}
	return "", false
}

// sortSessions stable-sorts by weekday order then slot catalog order,
// so scattered cells of one day group together in the output.
func sortSessions(sessions []LocatedSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := dayRank(sessions[i].Day), dayRank(sessions[j].Day)
		if di != dj {
			return di < dj
		}
		return slotRank(sessions[i].TimeSlot) < slotRank(sessions[j].TimeSlot)
	})
}
