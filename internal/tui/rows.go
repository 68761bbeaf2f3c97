package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/teacherhub/internal/listmgr"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

// rowItem adapts a rendered row to bubbles/list.Item.
type rowItem struct {
	row listmgr.Row
}

func (i rowItem) Title() string       { return i.row.Title }
func (i rowItem) Description() string { return i.row.Detail }
func (i rowItem) FilterValue() string { return i.row.Title }

// listContainer lets a listmgr.List render straight into a bubbles list.
type listContainer struct {
	l *list.Model
}

func (c listContainer) Clear() { c.l.SetItems([]list.Item{}) }

func (c listContainer) AddRow(r listmgr.Row) {
	c.l.InsertItem(len(c.l.Items()), rowItem{row: r})
}

// Custom delegate: title line plus a muted detail line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 2 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(rowItem)
	t := ui.Current()

	prefix := "  "
	title := it.row.Title
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
		title = t.Selected.Render(title)
	}
	fmt.Fprintf(w, "%s%s\n    %s", prefix, title, t.Muted.Render(it.row.Detail))
}
