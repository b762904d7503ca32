package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/render"
	"github.com/hfaheem/ttg/internal/schedule"
)

const debounceDelay = 150 * time.Millisecond

// message types

type debounceTickMsg struct {
	filter string
}

// model

type model struct {
	sessions []layout.LocatedSession
	cat      *catalog.Catalog

	allRows   []pickRow
	rows      []pickRow
	selection schedule.Selection

	filterInput textinput.Model
	cursor      int
	listOffset  int
	preview     viewport.Model
	width       int
	height      int
	ready       bool
	accepted    bool
	statusMsg   string
}

func initialModel(sessions []layout.LocatedSession, cat *catalog.Catalog, initial schedule.Selection) model {
	ti := textinput.New()
	ti.Placeholder = "Filter courses..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 128

	sel := initial
	if sel == nil {
		sel = make(schedule.Selection)
	}

	rows := buildRows(cat)
	return model{
		sessions:    sessions,
		cat:         cat,
		allRows:     rows,
		rows:        rows,
		selection:   sel,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
}

// buildRows flattens the catalog into course-section rows, grouped by
// area then catalog order, one row per valid section.
func buildRows(cat *catalog.Catalog) []pickRow {
	var rows []pickRow
	for _, area := range cat.Areas() {
		for _, code := range cat.CodesInArea(area) {
			entry, _ := cat.Lookup(code)
			for _, section := range entry.Sections {
				rows = append(rows, pickRow{
					Code:    code,
					Section: section,
					Name:    entry.FullName,
					Area:    area,
				})
			}
		}
	}
	return rows
}

// Run opens the course-section picker over an already-extracted document
// and blocks until the user accepts or cancels. The returned bool is
// false on cancel.
func Run(sessions []layout.LocatedSession, cat *catalog.Catalog, initial schedule.Selection) (schedule.Selection, bool, error) {
	m := initialModel(sessions, cat, initial)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	return fm.selection, fm.accepted, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, m.refreshPreview()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.accepted = false
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			m.accepted = true
			return m, tea.Quit

		case key.Matches(msg, keys.Toggle):
			if m.cursor < len(m.rows) {
				r := m.rows[m.cursor]
				if m.selection.Contains(r.Code, r.Section) {
					m.selection.Remove(r.Code, r.Section)
				} else {
					m.selection.Add(r.Code, r.Section)
				}
				m.statusMsg = ""
			}
			return m, m.refreshPreview()

		case key.Matches(msg, keys.Copy):
			personal := schedule.Filter(m.sessions, m.selection, m.cat)
			if err := clipboard.WriteAll(render.TSVString(personal)); err != nil {
				m.statusMsg = "clipboard error"
			} else {
				m.statusMsg = fmt.Sprintf("copied %d rows", len(personal))
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// everything else edits the filter input
		before := m.filterInput.Value()
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		if m.filterInput.Value() != before {
			return m, tea.Batch(cmd, m.scheduleDebouncedFilter(m.filterInput.Value()))
		}
		return m, cmd

	case debounceTickMsg:
		if msg.filter == m.filterInput.Value() {
			m.applyFilter(msg.filter)
		}
		return m, nil

	case previewRenderedMsg:
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *model) applyFilter(filter string) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		m.rows = m.allRows
	} else {
		var rows []pickRow
		for _, r := range m.allRows {
			hay := strings.ToLower(r.Code + " " + r.Section + " " + r.Name + " " + r.Area)
			if strings.Contains(hay, filter) {
				rows = append(rows, r)
			}
		}
		m.rows = rows
	}
	m.cursor = 0
	m.listOffset = 0
}

func (m model) scheduleDebouncedFilter(filter string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{filter: filter}
	})
}

func (m model) refreshPreview() tea.Cmd {
	return loadPreviewCmd(m.sessions, m.selection, m.cat, m.previewWidth())
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	inputRow := m.filterInput.View()

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	listContent := m.renderList(listW, panelH)
	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(listContent)

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)
	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, status)
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*45/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*55/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d selected", len(m.selection)))
	parts = append(parts, "tab toggle")
	parts = append(parts, "up/dn navigate")
	parts = append(parts, "C-u/C-d preview")
	parts = append(parts, "C-y copy")
	parts = append(parts, "Enter accept")
	parts = append(parts, "Esc cancel")
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
