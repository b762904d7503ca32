package layout

import "strings"

// SlotCatalog is the fixed ordered list of time-slot labels used across
// timetable exports. Consumers depend on the exact labels and their
// order; do not reword or reorder.
var SlotCatalog = []string{
	"8:00-9:15 am",
	"9:30-10:45 am",
	"11:00 am-12:15 pm",
	"12:30-1:45 pm",
	"2:00-3:15 pm",
	"3:30-4:45 pm",
	"5:00-6:15 pm",
}

// UnknownSlot tags sessions whose column position matches no slot bound.
const UnknownSlot = "Unknown"

// slotColumn maps a horizontal coordinate interval to a slot label for
// position-based layouts. First containing interval wins.
type slotColumn struct {
	start, end float64
	label      string
}

var slotColumns = []slotColumn{
	{30, 130, SlotCatalog[0]},
	{130, 230, SlotCatalog[1]},
	{230, 330, SlotCatalog[2]},
	{330, 430, SlotCatalog[3]},
	{430, 530, SlotCatalog[4]},
	{530, 630, SlotCatalog[5]},
	{630, 730, SlotCatalog[6]},
}

func slotForX(x float64) string {
	for _, c := range slotColumns {
		if x >= c.start && x < c.end {
			return c.label
		}
	}
	return UnknownSlot
}

// slotRank orders labels by catalog position; UnknownSlot sorts last.
func slotRank(label string) int {
	for i, s := range SlotCatalog {
		if s == label {
			return i
		}
	}
	return len(SlotCatalog)
}

// weekdayAbbrevs maps the day abbreviations found in timetable exports
// to full weekday names, in calendar order Mon-Sun.
var weekdayAbbrevs = []struct {
	abbrev string
	full   string
}{
	{"Mon", "Monday"},
	{"Tue", "Tuesday"},
	{"Wed", "Wednesday"},
	{"Thu", "Thursday"},
	{"Fri", "Friday"},
	{"Sat", "Saturday"},
	{"Sun", "Sunday"},
}

// FullDayName resolves a day abbreviation or full name, case-insensitively.
func FullDayName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, wd := range weekdayAbbrevs {
		if strings.EqualFold(s, wd.abbrev) || strings.EqualFold(s, wd.full) {
			return wd.full, true
		}
	}
	return "", false
}

// dayRank orders full weekday names Monday-Sunday; unknown names sort last.
func dayRank(day string) int {
	for i, wd := range weekdayAbbrevs {
		if wd.full == day {
			return i
		}
	}
	return len(weekdayAbbrevs)
}
