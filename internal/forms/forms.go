// Package forms validates the portal's two write entry points, the
// assignment form and the contact form, and tracks their input state.
package forms

import (
	"strings"
	"time"

	"github.com/idilsaglam/teacherhub/internal/model"
)

// Field names, shared by inputs, errors and State.
const (
	FieldTitle   = "title"
	FieldDue     = "due"
	FieldDetails = "details"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

var (
	AssignmentFields = []string{FieldTitle, FieldDue, FieldDetails}
	ContactFields    = []string{FieldName, FieldEmail, FieldMessage}
)

type AssignmentInput struct {
	Title   string `json:"title" validate:"notblank"`
	Due     string `json:"due" validate:"required"`
	Details string `json:"details"`
}

// Normalize trims the free-text fields. Due is kept as entered.
func (in AssignmentInput) Normalize() AssignmentInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Details = strings.TrimSpace(in.Details)
	return in
}

func (in AssignmentInput) Record(id string) model.Assignment {
	return model.Assignment{ID: id, Title: in.Title, Due: in.Due, Details: in.Details}
}

type ContactInput struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"simple_email"`
	Message string `json:"message" validate:"filled"`
}

func (in ContactInput) Normalize() ContactInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

func (in ContactInput) Record(id string, at time.Time) model.InboxMessage {
	return model.InboxMessage{ID: id, Name: in.Name, Email: in.Email, Message: in.Message, SubmittedAt: at}
}

// State is the visible state of a form: current values and per-field messages.
type State struct {
	fields []string
	values map[string]string
	errors FieldErrors
}

func NewState(fields ...string) *State {
	return &State{fields: fields, values: map[string]string{}, errors: FieldErrors{}}
}

func (s *State) Fields() []string { return s.fields }

func (s *State) Value(field string) string { return s.values[field] }

func (s *State) SetValue(field, v string) { s.values[field] = v }

// Error is the message currently shown for field, "" when none.
func (s *State) Error(field string) string { return s.errors[field] }

// Apply records a submission outcome. Failing fields get their message and
// passing fields are cleared; values are kept. With no errors every message
// is cleared and the values are reset. It reports whether the submission
// passed.
func (s *State) Apply(errs FieldErrors) bool {
	s.errors = FieldErrors{}
	for _, f := range s.fields {
		if msg, ok := errs[f]; ok {
			s.errors[f] = msg
		}
	}
	if len(errs) > 0 {
		return false
	}
	s.Reset()
	return true
}

// Reset empties all values.
func (s *State) Reset() {
	s.values = map[string]string{}
}

func (s *State) AssignmentInput() AssignmentInput {
	return AssignmentInput{Title: s.Value(FieldTitle), Due: s.Value(FieldDue), Details: s.Value(FieldDetails)}
}

func (s *State) ContactInput() ContactInput {
	return ContactInput{Name: s.Value(FieldName), Email: s.Value(FieldEmail), Message: s.Value(FieldMessage)}
}
