package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hfaheem/ttg/internal/catalog"
	"github.com/hfaheem/ttg/internal/layout"
	"github.com/hfaheem/ttg/internal/render"
	"github.com/hfaheem/ttg/internal/schedule"
)

// previewRenderedMsg is sent when an async schedule render completes.
type previewRenderedMsg struct {
	content string
}

// loadPreviewCmd renders the personal schedule for the current selection
// asynchronously, so toggling stays responsive on large documents.
func loadPreviewCmd(sessions []layout.LocatedSession, sel schedule.Selection, cat *catalog.Catalog, width int) tea.Cmd {
	snapshot := make(schedule.Selection, len(sel))
	for k := range sel {
		snapshot[k] = struct{}{}
	}
	return func() tea.Msg {
		personal := schedule.Filter(sessions, snapshot, cat)
		content := render.Table(personal, render.Options{Width: width})
		return previewRenderedMsg{content: content}
	}
}
