package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hfaheem/ttg/internal/schedule"
)

const (
	colorReset = "\033[0m"
	colorDay   = "\033[1;34m" // bold blue day headers
	colorSlot  = "\033[1;32m" // bold green slot labels
	colorDim   = "\033[2m"
	colorWarn  = "\033[1;31m" // unknown-course marker
)

// TSV writes the schedule one record per line for pipes and scripting.
// Field order is part of the output contract:
// day, date, time_slot, course_name, faculty, venue, section.
func TSV(w io.Writer, sessions []schedule.PersonalSession) {
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Day,
			s.Date,
			s.TimeSlot,
			clean(s.CourseName),
			clean(s.Faculty),
			clean(s.Venue),
			s.Section,
		)
	}
}

// TSVString renders the schedule as a TSV string, for clipboard copy.
func TSVString(sessions []schedule.PersonalSession) string {
	var b strings.Builder
	TSV(&b, sessions)
	return b.String()
}

// Options control table rendering.
type Options struct {
	Width int // truncate rows to this many columns; 0 = no truncation
}

// Table renders the schedule as an ANSI table grouped under day headers.
// Input order is preserved; consecutive records of the same day share one
// header.
func Table(sessions []schedule.PersonalSession, opts Options) string {
	if len(sessions) == 0 {
		return colorDim + "(empty schedule)" + colorReset + "\n"
	}

	var b strings.Builder
	writeLine := func(s string) {
		if opts.Width > 0 && runewidth.StringWidth(stripANSI(s)) > opts.Width {
			s = runewidth.Truncate(s, opts.Width+ansiOverhead(s), "…")
		}
		b.WriteString(s)
		b.WriteString("\n")
	}

	slotWidth := 0
	for _, s := range sessions {
		if w := runewidth.StringWidth(s.TimeSlot); w > slotWidth {
			slotWidth = w
		}
	}

	currentDay := ""
	for _, s := range sessions {
		if s.Day != currentDay {
			currentDay = s.Day
			header := s.Day
			if s.Date != "" {
				header += " " + colorDim + s.Date + colorReset + colorDay
			}
			if b.Len() > 0 {
				writeLine("")
			}
			writeLine(colorDay + header + colorReset)
		}

		name := clean(s.CourseName)
		if s.Unknown {
			name = colorWarn + name + colorReset
		}
		row := fmt.Sprintf("  %s%-*s%s  %s [%s]  %s  %s",
			colorSlot, slotWidth, s.TimeSlot, colorReset,
			name, s.Section, clean(s.Faculty), clean(s.Venue),
		)
		if s.Area != "" {
			row += "  " + colorDim + s.Area + colorReset
		}
		writeLine(row)
	}

	return b.String()
}

func clean(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// stripANSI removes escape sequences for width measurement.
func stripANSI(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '\033' && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func ansiOverhead(s string) int {
	return len(s) - len(stripANSI(s))
}
