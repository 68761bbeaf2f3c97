package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/teacherhub/internal/catalog"
	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/model"
	"github.com/idilsaglam/teacherhub/internal/portal"
	"github.com/idilsaglam/teacherhub/internal/store/memstore"
	"github.com/idilsaglam/teacherhub/internal/theme"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

func newTestModel(t *testing.T) (Model, *portal.Portal, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	n := 0
	p := portal.New(s, catalog.Demo(),
		portal.WithClock(func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) }),
		portal.WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	t.Cleanup(func() { ui.SetTheme(theme.Light) })
	return New(p), p, s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds keys through Update and returns the final model and last command.
func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestSectionNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, secAnnouncements, m.active)

	m, _ = send(t, m, "tab")
	assert.Equal(t, secResources, m.active)
	m, _ = send(t, m, "4")
	assert.Equal(t, secAssignments, m.active)
	m, _ = send(t, m, "tab", "tab")
	assert.Equal(t, secAnnouncements, m.active)
}

func TestResourceFilter(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, "2")
	assert.Len(t, m.matches, 5)

	m, _ = send(t, m, "/", "r", "u", "b")
	assert.True(t, m.search.Focused())
	require.Len(t, m.matches, 1)
	assert.Equal(t, "Writing Rubric", m.matches[0].Title)

	m, _ = send(t, m, "r", "i", "c", "zzz")
	assert.Empty(t, m.matches)
	assert.Contains(t, m.View(), "No resources match.")

	m, _ = send(t, m, "esc")
	assert.False(t, m.search.Focused())
}

func TestResourceTypeFilter(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, "2", "f")
	assert.Equal(t, "PDF", m.types[m.typeIdx])
	assert.Len(t, m.matches, 2)

	for range m.types[1:] {
		m, _ = send(t, m, "f")
	}
	assert.Equal(t, "", m.types[m.typeIdx])
	assert.Len(t, m.matches, 5)
}

func TestAddAssignment(t *testing.T) {
	m, p, _ := newTestModel(t)
	m, _ = send(t, m, "4")
	assert.Contains(t, m.View(), "No assignments yet.")

	m, _ = send(t, m, "a", "Essay Draft", "tab", "2025-11-01", "enter")
	assert.False(t, m.adding)
	assert.Equal(t, 1, m.count)
	require.Len(t, m.assignments.Items(), 1)
	assert.Equal(t, "Essay Draft — due 11/1/2025", m.assignments.Items()[0].(rowItem).row.Title)
	assert.Contains(t, m.View(), "Essay Draft — due 11/1/2025")

	items, err := p.Assignments()
	require.NoError(t, err)
	assert.Equal(t, []model.Assignment{{ID: "id-1", Title: "Essay Draft", Due: "2025-11-01"}}, items)
}

func TestAddAssignment_Invalid(t *testing.T) {
	m, _, s := newTestModel(t)
	m, _ = send(t, m, "4", "a", "Essay", "enter")

	assert.True(t, m.adding, "form stays open")
	assert.Equal(t, "Due date is required.", m.assignForm.state.Error(forms.FieldDue))
	assert.Empty(t, m.assignForm.state.Error(forms.FieldTitle))
	assert.Equal(t, "Essay", m.assignForm.inputs[0].Value(), "inputs are not reset")
	assert.Contains(t, m.View(), "Due date is required.")
	_, ok, _ := s.Get(model.AssignmentsKey)
	assert.False(t, ok)

	m, _ = send(t, m, "esc")
	assert.False(t, m.adding)
}

func TestRemoveAssignment(t *testing.T) {
	m, p, _ := newTestModel(t)
	for _, title := range []string{"One", "Two"} {
		_, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: title, Due: "2025-11-01"})
		require.NoError(t, err)
		require.Empty(t, errs)
	}
	m = New(p)
	require.Len(t, m.assignments.Items(), 2)

	m, _ = send(t, m, "4", "d")
	require.Len(t, m.assignments.Items(), 1)
	assert.Equal(t, "id-2", m.assignments.Items()[0].(rowItem).row.ID)

	items, err := p.Assignments()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Two", items[0].Title)
}

func TestRemoveAssignment_LastRow(t *testing.T) {
	m, p, _ := newTestModel(t)
	for _, title := range []string{"One", "Two", "Three"} {
		_, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: title, Due: "2025-11-01"})
		require.NoError(t, err)
		require.Empty(t, errs)
	}
	m = New(p)

	m, _ = send(t, m, "4", "down", "down")
	require.Equal(t, 2, m.assignments.Index())

	m, _ = send(t, m, "d")
	require.Len(t, m.assignments.Items(), 2)
	assert.Equal(t, 1, m.assignments.Index())
	require.NotNil(t, m.assignments.SelectedItem())

	m, _ = send(t, m, "d")
	items, err := p.Assignments()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, 0, m.assignments.Index())

	m, _ = send(t, m, "d")
	assert.Empty(t, m.assignments.Items())
	assert.Contains(t, m.View(), "No assignments yet.")
}

// flakyStore fails every write while fail is set.
type flakyStore struct {
	*memstore.Store
	fail bool
}

func (s *flakyStore) Set(key, value string) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.Store.Set(key, value)
}

func TestStoreErrorClearsOnNextKey(t *testing.T) {
	s := &flakyStore{Store: memstore.New(), fail: true}
	t.Cleanup(func() { ui.SetTheme(theme.Light) })
	m := New(portal.New(s, catalog.Demo()))

	m, _ = send(t, m, "t")
	assert.Contains(t, m.err, "disk full")
	assert.Contains(t, m.View(), "disk full")

	s.fail = false
	m, _ = send(t, m, "2")
	assert.Empty(t, m.err)
	assert.NotContains(t, m.View(), "disk full")
}

func TestContact(t *testing.T) {
	m, p, _ := newTestModel(t)
	m, _ = send(t, m, "5", "enter", "Ada", "tab", "not-an-email", "tab", "Hello", "enter")
	assert.True(t, m.composing)
	assert.Equal(t, "Valid email required.", m.contactForm.state.Error(forms.FieldEmail))
	assert.Empty(t, m.contactForm.state.Error(forms.FieldName))
	assert.Empty(t, m.contactForm.state.Error(forms.FieldMessage))

	inbox, err := p.Inbox()
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// correct the email in place and resubmit
	m.contactForm.inputs[1].SetValue("ada@example.com")
	m, cmd := send(t, m, "enter")
	assert.False(t, m.composing)
	assert.True(t, m.notice)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Thanks! Your message was saved.")
	assert.Empty(t, m.contactForm.inputs[0].Value())

	inbox, err = p.Inbox()
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Ada", inbox[0].Name)

	next, _ := m.Update(hideNoticeMsg{})
	m = next.(Model)
	assert.False(t, m.notice)
}

func TestThemeToggle(t *testing.T) {
	m, p, _ := newTestModel(t)
	m, _ = send(t, m, "t")
	mode, err := p.Theme()
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, mode)
	assert.Equal(t, theme.Dark, ui.Current().Mode)

	_, _ = send(t, m, "t")
	mode, _ = p.Theme()
	assert.Equal(t, theme.Light, mode)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := send(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Footer(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "© 2026 TeacherHub")
	assert.Contains(t, m.View(), "Parent-Teacher Conferences")
}
