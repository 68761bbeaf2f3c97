// Package tui is the interactive portal: one tab per section, the assignment
// and contact forms, live resource filtering and the theme toggle.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/teacherhub/internal/catalog"
	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/model"
	"github.com/idilsaglam/teacherhub/internal/portal"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

type section int

const (
	secAnnouncements section = iota
	secResources
	secSchedule
	secAssignments
	secContact
)

var sectionNames = []string{"Announcements", "Resources", "Schedule", "Assignments", "Contact"}

// NoticeDuration is how long the contact success notice stays up.
const NoticeDuration = 3 * time.Second

type hideNoticeMsg struct{}

var (
	keyQuit   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyNext   = key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next section"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev section"))
	keyTheme  = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme"))
	keyAdd    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	keyRemove = key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove"))
	keySearch = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keyType   = key.NewBinding(key.WithKeys("f", "ctrl+t"), key.WithHelp("f", "type filter"))
	keyWrite  = key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "write"))
)

// Model is the Bubble Tea model for the portal.
type Model struct {
	portal *portal.Portal
	width  int
	height int
	active section
	err    string

	// resources
	search  textinput.Model
	types   []string // "" first, meaning all types
	typeIdx int
	matches []catalog.Resource

	// assignments
	assignments list.Model
	count       int
	adding      bool
	assignForm  *formView

	// contact
	composing   bool
	contactForm *formView
	notice      bool
}

// New builds the model and renders the stored assignments.
func New(p *portal.Portal) Model {
	m := Model{
		portal: p,
		width:  80,
		height: 24,
		types:  append([]string{""}, p.ResourceTypes()...),
	}

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "Search resources..."
	m.search.CharLimit = 100
	m.refilter()

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = ui.Current().Muted
	m.assignments = l
	m.resize()

	m.assignForm = newFormView(
		fieldSpec{name: forms.FieldTitle, label: "Title", placeholder: "Essay Draft", limit: 200},
		fieldSpec{name: forms.FieldDue, label: "Due date", placeholder: "YYYY-MM-DD", limit: 10},
		fieldSpec{name: forms.FieldDetails, label: "Details", placeholder: "Optional", limit: 500},
	)
	m.contactForm = newFormView(
		fieldSpec{name: forms.FieldName, label: "Name", placeholder: "Your name", limit: 100},
		fieldSpec{name: forms.FieldEmail, label: "Email", placeholder: "you@school.edu", limit: 200},
		fieldSpec{name: forms.FieldMessage, label: "Message", placeholder: "How can I help?", limit: 1000},
	)

	items, err := p.AssignmentList().Refresh(listContainer{l: &m.assignments})
	if err != nil {
		m.err = err.Error()
	}
	m.count = len(items)
	return m
}

// Run starts the program and blocks until the user quits.
func Run(p *portal.Portal) error {
	_, err := tea.NewProgram(New(p), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// typing reports whether keys go to a text input.
func (m Model) typing() bool {
	return m.search.Focused() || m.adding || m.composing
}

func (m *Model) refilter() {
	m.matches = catalog.Filter(m.portal.Catalog().Resources, m.search.Value(), m.types[m.typeIdx])
}

// showAssignments re-renders items, keeping the cursor on an existing row.
func (m *Model) showAssignments(items []model.Assignment) {
	idx := m.assignments.Index()
	m.portal.AssignmentList().Render(items, listContainer{l: &m.assignments})
	m.count = len(items)
	if len(items) > 0 {
		m.assignments.Select(min(idx, len(items)-1))
	}
}

func (m *Model) resize() {
	m.assignments.SetSize(max(m.width-6, 20), max(m.height-12, 4))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case hideNoticeMsg:
		m.notice = false
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.err = ""
		if m.typing() {
			return m.updateTyping(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.active == secAssignments {
		var cmd tea.Cmd
		m.assignments, cmd = m.assignments.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit
	case key.Matches(msg, keyNext):
		m.active = (m.active + 1) % section(len(sectionNames))
		return m, nil
	case key.Matches(msg, keyPrev):
		m.active = (m.active + section(len(sectionNames)) - 1) % section(len(sectionNames))
		return m, nil
	case key.Matches(msg, keyTheme):
		mode, err := m.portal.ToggleTheme()
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		ui.SetTheme(mode)
		m.assignments.Styles.PaginationStyle = ui.Current().Muted
		return m, nil
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		m.active = section(s[0] - '1')
		return m, nil
	}

	switch m.active {
	case secResources:
		switch {
		case key.Matches(msg, keySearch):
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(msg, keyType):
			m.typeIdx = (m.typeIdx + 1) % len(m.types)
			m.refilter()
			return m, nil
		}

	case secAssignments:
		switch {
		case key.Matches(msg, keyAdd):
			m.adding = true
			m.assignForm.clear()
			return m, m.assignForm.Focus()
		case key.Matches(msg, keyRemove):
			it, ok := m.assignments.SelectedItem().(rowItem)
			if !ok {
				return m, nil
			}
			items, err := m.portal.RemoveAssignment(it.row.ID, it.row.Index)
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.showAssignments(items)
			return m, nil
		}
		var cmd tea.Cmd
		m.assignments, cmd = m.assignments.Update(msg)
		return m, cmd

	case secContact:
		if key.Matches(msg, keyWrite) {
			m.composing = true
			return m, m.contactForm.Focus()
		}
	}
	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.search.Focused():
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		case "ctrl+t":
			m.typeIdx = (m.typeIdx + 1) % len(m.types)
			m.refilter()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refilter()
		return m, cmd

	case m.adding:
		switch msg.String() {
		case "esc":
			m.adding = false
			m.assignForm.clear()
			m.assignForm.Blur()
			return m, nil
		case "enter":
			m.assignForm.sync()
			items, errs, err := m.portal.SubmitAssignment(m.assignForm.state.AssignmentInput())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			if m.assignForm.apply(errs) {
				m.adding = false
				m.assignForm.Blur()
				m.showAssignments(items)
			}
			return m, nil
		}
		return m, m.assignForm.Update(msg)

	case m.composing:
		switch msg.String() {
		case "esc":
			m.composing = false
			m.contactForm.Blur()
			return m, nil
		case "enter":
			m.contactForm.sync()
			_, errs, err := m.portal.SubmitContact(m.contactForm.state.ContactInput())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			if m.contactForm.apply(errs) {
				m.composing = false
				m.contactForm.Blur()
				m.notice = true
				return m, tea.Tick(NoticeDuration, func(time.Time) tea.Msg { return hideNoticeMsg{} })
			}
			return m, nil
		}
		return m, m.contactForm.Update(msg)
	}
	return m, nil
}

func (m Model) View() string {
	t := ui.Current()

	tabs := make([]string, 0, len(sectionNames))
	for i, name := range sectionNames {
		style := t.Tab
		if section(i) == m.active {
			style = t.ActiveTab
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	header := t.Title.Render("TeacherHub") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.active {
	case secAnnouncements:
		body = m.viewAnnouncements()
	case secResources:
		body = m.viewResources()
	case secSchedule:
		body = m.viewSchedule()
	case secAssignments:
		body = m.viewAssignments()
	case secContact:
		body = m.viewContact()
	}

	parts := []string{header, "", body, ""}
	if m.err != "" {
		parts = append(parts, t.Error.Render("✖ "+m.err))
	}
	parts = append(parts, t.Muted.Render(m.helpLine()), ui.Footer(m.portal.Year()))
	return ui.PanelString(strings.Join(parts, "\n"))
}

func (m Model) helpLine() string {
	switch {
	case m.search.Focused():
		return "type to filter · ctrl+t type · enter/esc done"
	case m.adding, m.composing:
		return "tab next field · enter submit · esc cancel"
	}
	help := []key.Binding{keyNext, keyTheme}
	switch m.active {
	case secResources:
		help = append(help, keySearch, keyType)
	case secAssignments:
		help = append(help, keyAdd, keyRemove)
	case secContact:
		help = append(help, keyWrite)
	}
	help = append(help, keyQuit)
	out := make([]string, 0, len(help))
	for _, b := range help {
		out = append(out, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(out, " · ")
}

func (m Model) viewAnnouncements() string {
	t := ui.Current()
	var b []string
	for _, a := range m.portal.Catalog().Announcements {
		b = append(b, t.Accent.Render(a.Title)+"  "+t.Muted.Render(a.DateLabel()), a.Body, "")
	}
	return strings.TrimRight(strings.Join(b, "\n"), "\n")
}

func (m Model) viewResources() string {
	t := ui.Current()
	typ := m.types[m.typeIdx]
	if typ == "" {
		typ = "All types"
	}
	b := []string{m.search.View() + "   " + t.Badge.Render(typ), ""}
	if len(m.matches) == 0 {
		b = append(b, t.Muted.Render("No resources match."))
	}
	for _, r := range m.matches {
		b = append(b, t.Accent.Render(r.Title)+" "+t.Badge.Render(r.Type), t.Muted.Render(r.Note))
	}
	return strings.Join(b, "\n")
}

func (m Model) viewSchedule() string {
	t := ui.Current()
	var b []string
	for _, s := range m.portal.Catalog().Schedule {
		b = append(b, t.Accent.Render(s.When)+" — "+s.Title)
	}
	return strings.Join(b, "\n")
}

func (m Model) viewAssignments() string {
	t := ui.Current()
	var b []string
	if m.adding {
		b = append(b, t.Title.Render("New assignment"), m.assignForm.View(), "")
	}
	if m.count == 0 {
		b = append(b, t.Muted.Render("No assignments yet."))
	} else {
		b = append(b, m.assignments.View())
	}
	return strings.Join(b, "\n")
}

func (m Model) viewContact() string {
	t := ui.Current()
	b := []string{t.Title.Render("Contact"), m.contactForm.View()}
	if m.notice {
		b = append(b, "", t.Success.Render("✔ Thanks! Your message was saved."))
	}
	return strings.Join(b, "\n")
}
