// Package portal wires the store, the persisted lists and the content into
// the operations the CLI and the TUI call.
package portal

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/teacherhub/internal/catalog"
	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/listmgr"
	"github.com/idilsaglam/teacherhub/internal/model"
	"github.com/idilsaglam/teacherhub/internal/store"
	"github.com/idilsaglam/teacherhub/internal/theme"
)

// Portal is the single owner of all portal state.
type Portal struct {
	store       store.Store
	catalog     catalog.Catalog
	validator   *forms.Validator
	assignments *listmgr.List[model.Assignment]
	inbox       *listmgr.List[model.InboxMessage]
	now         func() time.Time
	newID       func() string
	logger      *slog.Logger
}

type Option func(*Portal)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(p *Portal) { p.now = now } }

// WithIDs replaces the uuid generator used for new records.
func WithIDs(newID func() string) Option { return func(p *Portal) { p.newID = newID } }

func WithLogger(l *slog.Logger) Option { return func(p *Portal) { p.logger = l } }

func New(s store.Store, c catalog.Catalog, opts ...Option) *Portal {
	p := &Portal{
		store:     s,
		catalog:   c,
		validator: forms.NewValidator(),
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	p.logger = p.logger.With("component", "portal")
	p.assignments = listmgr.New[model.Assignment](s, model.AssignmentsKey, AssignmentRow, p.logger)
	p.inbox = listmgr.New[model.InboxMessage](s, model.InboxKey, InboxRow, p.logger)
	return p
}

// AssignmentRow renders an assignment as "<title> — due <date>" plus details.
func AssignmentRow(a model.Assignment) listmgr.Row {
	return listmgr.Row{Title: a.Line(), Detail: a.Details}
}

// InboxRow shows sender and message; the time is left out when unknown.
func InboxRow(m model.InboxMessage) listmgr.Row {
	detail := m.Message
	if !m.SubmittedAt.IsZero() {
		detail = m.SubmittedAt.Local().Format("Jan 2, 2006 15:04") + " · " + detail
	}
	return listmgr.Row{Title: m.Name + " <" + m.Email + ">", Detail: detail}
}

func (p *Portal) Catalog() catalog.Catalog { return p.catalog }

// Resources filters the catalog's resources.
func (p *Portal) Resources(query, typ string) []catalog.Resource {
	return catalog.Filter(p.catalog.Resources, query, typ)
}

func (p *Portal) ResourceTypes() []string { return catalog.Types(p.catalog.Resources) }

func (p *Portal) AssignmentList() *listmgr.List[model.Assignment] { return p.assignments }

func (p *Portal) InboxList() *listmgr.List[model.InboxMessage] { return p.inbox }

func (p *Portal) Assignments() ([]model.Assignment, error) { return p.assignments.Load() }

func (p *Portal) Inbox() ([]model.InboxMessage, error) { return p.inbox.Load() }

// SubmitAssignment validates in and appends it. Validation failures come back
// as FieldErrors with a nil error and leave the store untouched.
func (p *Portal) SubmitAssignment(in forms.AssignmentInput) ([]model.Assignment, forms.FieldErrors, error) {
	in = in.Normalize()
	if errs := p.validator.Check(in); len(errs) > 0 {
		return nil, errs, nil
	}
	items, err := p.assignments.Append(in.Record(p.newID()))
	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug("assignment added", "count", len(items))
	return items, nil, nil
}

// RemoveAssignment removes by id when one is given, else by position.
func (p *Portal) RemoveAssignment(id string, index int) ([]model.Assignment, error) {
	if id != "" {
		return p.assignments.Remove(id)
	}
	return p.assignments.RemoveAt(index)
}

// SubmitContact validates in and stores it in the local inbox.
func (p *Portal) SubmitContact(in forms.ContactInput) ([]model.InboxMessage, forms.FieldErrors, error) {
	in = in.Normalize()
	if errs := p.validator.Check(in); len(errs) > 0 {
		return nil, errs, nil
	}
	items, err := p.inbox.Append(in.Record(p.newID(), p.now().UTC()))
	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug("inbox message stored", "count", len(items))
	return items, nil, nil
}

func (p *Portal) Theme() (theme.Mode, error) { return theme.Load(p.store) }

func (p *Portal) SetTheme(m theme.Mode) error { return theme.Save(p.store, m) }

func (p *Portal) ToggleTheme() (theme.Mode, error) { return theme.Toggle(p.store) }

// Year is the current year for the footer.
func (p *Portal) Year() int { return p.now().Year() }

// Now is the portal clock.
func (p *Portal) Now() time.Time { return p.now() }
