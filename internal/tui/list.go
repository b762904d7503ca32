package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each course-section row occupies.
const linesPerItem = 1

// pickRow is one selectable course-section pair in the left panel.
type pickRow struct {
	Code    string
	Section string
	Name    string
	Area    string
}

// renderList renders the left panel: filtered course-section rows with
// checkboxes, scrolled to keep the cursor visible.
func (m model) renderList(width, height int) string {
	if len(m.rows) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No courses match")
		return empty
	}

	var lines []string
	for i, r := range m.rows {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, m.formatRow(r, width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatRow formats a single row:
//
//	[x] CODE [Sec]  Course Name  (area, dimmed)
func (m model) formatRow(r pickRow, width int, selected bool) string {
	box := "[ ]"
	if m.selection.Contains(r.Code, r.Section) {
		box = styleChecked.Render("[x]")
	}

	head := fmt.Sprintf("%s [%s]", r.Code, r.Section)
	head = styleCode.Render(head)

	name := r.Name
	nameMax := width - 2 - 3 - 1 - runewidth.StringWidth(r.Code) - len(r.Section) - 4 - 2
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}

	line := fmt.Sprintf("%s %s %s", box, head, styleListNormal.Render(name))
	if r.Area != "" {
		line += " " + styleArea.Render(r.Area)
	}

	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
