package portal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/teacherhub/internal/catalog"
	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/listmgr"
	"github.com/idilsaglam/teacherhub/internal/model"
	"github.com/idilsaglam/teacherhub/internal/store/memstore"
	"github.com/idilsaglam/teacherhub/internal/theme"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestPortal(t *testing.T) (*Portal, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	n := 0
	p := New(s, catalog.Demo(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	return p, s
}

func TestSubmitAssignment_EssayDraft(t *testing.T) {
	p, _ := newTestPortal(t)
	var rows listmgr.Rows
	_, err := p.AssignmentList().Refresh(&rows)
	require.NoError(t, err)
	require.Empty(t, rows)

	items, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: "Essay Draft", Due: "2025-11-01", Details: ""})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, items, 1)

	p.AssignmentList().Render(items, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Essay Draft — due 11/1/2025", rows[0].Title)
	assert.Empty(t, rows[0].Detail)
	assert.Equal(t, "id-1", rows[0].ID)

	stored, err := p.Assignments()
	require.NoError(t, err)
	assert.Equal(t, []model.Assignment{{ID: "id-1", Title: "Essay Draft", Due: "2025-11-01"}}, stored)
}

func TestSubmitAssignment_InvalidLeavesStore(t *testing.T) {
	p, s := newTestPortal(t)

	items, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: "  ", Due: ""})
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Equal(t, forms.FieldErrors{"title": "Title is required.", "due": "Due date is required."}, errs)

	_, ok, _ := s.Get(model.AssignmentsKey)
	assert.False(t, ok, "nothing may be written on a failed submit")
}

func TestRemoveAssignment(t *testing.T) {
	p, _ := newTestPortal(t)
	for _, title := range []string{"a", "b", "c"} {
		_, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: title, Due: "2025-11-01"})
		require.NoError(t, err)
		require.Empty(t, errs)
	}

	items, err := p.RemoveAssignment("id-2", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, titlesOf(items))

	items, err = p.RemoveAssignment("", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, titlesOf(items))

	items, err = p.RemoveAssignment("", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, titlesOf(items))
}

func titlesOf(items []model.Assignment) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	p, s := newTestPortal(t)

	_, errs, err := p.SubmitContact(forms.ContactInput{Name: "Ada", Email: "not-an-email", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, forms.FieldErrors{"email": "Valid email required."}, errs)

	_, ok, _ := s.Get(model.InboxKey)
	assert.False(t, ok)
}

func TestSubmitContact_Stores(t *testing.T) {
	p, _ := newTestPortal(t)

	items, errs, err := p.SubmitContact(forms.ContactInput{Name: " Ada ", Email: "ada@example.com", Message: "Hello"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, items, 1)
	assert.Equal(t, model.InboxMessage{ID: "id-1", Name: "Ada", Email: "ada@example.com", Message: "Hello", SubmittedAt: fixedNow}, items[0])

	inbox, err := p.Inbox()
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
	assert.True(t, inbox[0].SubmittedAt.Equal(fixedNow))
}

func TestInboxRow(t *testing.T) {
	withTime := InboxRow(model.InboxMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello", SubmittedAt: fixedNow})
	assert.Equal(t, "Ada <ada@example.com>", withTime.Title)
	assert.Equal(t, fixedNow.Local().Format("Jan 2, 2006 15:04")+" · Hello", withTime.Detail)

	unknown := InboxRow(model.InboxMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	assert.Equal(t, "Hello", unknown.Detail)
}

func TestInbox_LegacyRecords(t *testing.T) {
	p, s := newTestPortal(t)
	require.NoError(t, s.Set(model.InboxKey, `[{"name":"Ada","email":"ada@example.com","message":"Hi","ts":1730419200000}]`))

	_, errs, err := p.SubmitContact(forms.ContactInput{Name: "Bo", Email: "bo@example.com", Message: "Yo"})
	require.NoError(t, err)
	require.Empty(t, errs)

	raw, _, err := s.Get(model.InboxKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"submittedAt":"2024-11-01T00:00:00Z"`)

	inbox, err := p.Inbox()
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.True(t, inbox[0].SubmittedAt.Equal(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResources(t *testing.T) {
	p, _ := newTestPortal(t)
	assert.Len(t, p.Resources("", "PDF"), 2)
	assert.Len(t, p.Resources("rubric", ""), 1)
	assert.Empty(t, p.Resources("zzz", ""))
	assert.Equal(t, []string{"PDF", "Slide", "Doc", "Link"}, p.ResourceTypes())
}

func TestTheme(t *testing.T) {
	p, _ := newTestPortal(t)
	m, err := p.Theme()
	require.NoError(t, err)
	assert.Equal(t, theme.Light, m)

	m, err = p.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, m)

	require.NoError(t, p.SetTheme(theme.Light))
	m, _ = p.Theme()
	assert.Equal(t, theme.Light, m)
}

func TestYear(t *testing.T) {
	p, _ := newTestPortal(t)
	assert.Equal(t, 2026, p.Year())
}
