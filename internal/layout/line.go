package layout

import (
	"strings"

	"github.com/hfaheem/ttg/internal/token"
)

// minLineLen filters blank and rule lines; anything at or below this
// length carries no class tokens.
const minLineLen = 5

// LineResolver resolves day, date and time slot from a timetable reduced
// to plain text lines. Day-marker lines ("Mon 21 Jul 2025") set the
// current day and date and reset the slot counter; every following
// non-trivial line occupies the next slot in SlotCatalog. Rows past the
// last slot clamp onto it: exports occasionally carry trailing annotation
// rows, and losing slot precision there beats discarding the whole day.
type LineResolver struct {
	Parser *token.Parser
}

func (r *LineResolver) Resolve(doc Document) []LocatedSession {
	var sessions []LocatedSession

	day := ""
	date := ""
	slotIndex := 0

	for _, raw := range doc.Lines {
		line := strings.TrimSpace(raw)

		if d, dt, ok := dayMarker(line); ok {
			day = d
			date = dt
			slotIndex = 0
			continue
		}
		if day == "" {
			// cannot orient tokens before the first day marker
			continue
		}
		if len(line) <= minLineLen {
			continue
		}

		idx := slotIndex
		if idx >= len(SlotCatalog) {
			idx = len(SlotCatalog) - 1
		}
		for _, t := range r.Parser.Parse(line) {
			sessions = append(sessions, LocatedSession{
				Day:      day,
				Date:     date,
				TimeSlot: SlotCatalog[idx],
				Token:    t,
			})
		}
		slotIndex++
	}

	return sessions
}

// dayMarker reports whether line is a day-header row: a weekday
// abbreviation followed by the calendar date. Such lines carry no class
// tokens. The date remainder may be empty.
func dayMarker(line string) (day, date string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", false
	}
	full, ok := FullDayName(fields[0])
	if !ok {
		return "", "", false
	}
	return full, strings.TrimSpace(strings.TrimPrefix(line, fields[0])), true
}
