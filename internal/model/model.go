package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Storage keys. The .v1 suffix is part of the key, not a schema version field.
const (
	AssignmentsKey = "teacherhub.assignments.v1"
	InboxKey       = "teacherhub.inbox.v1"
)

// DueLayout is the calendar-date layout a date input produces.
const DueLayout = "2006-01-02"

// Assignment is a teacher-created task. Due is kept verbatim as entered.
type Assignment struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Due     string `json:"due"`
	Details string `json:"details"`
}

// RecordID implements listmgr.Record.
func (a Assignment) RecordID() string { return a.ID }

// DueLabel renders Due as M/D/YYYY, or verbatim when it is not a calendar date.
func (a Assignment) DueLabel() string {
	d, err := time.Parse(DueLayout, a.Due)
	if err != nil {
		return a.Due
	}
	return d.Format("1/2/2006")
}

// Line is the one-line summary shown in lists, e.g. "Essay Draft — due 11/1/2025".
func (a Assignment) Line() string {
	return fmt.Sprintf("%s — due %s", a.Title, a.DueLabel())
}

// InboxMessage is a contact-form submission kept locally.
type InboxMessage struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (m InboxMessage) RecordID() string { return m.ID }

// UnmarshalJSON also reads the older {"ts": <unix millis>} timestamp, so such
// records are written back with submittedAt.
func (m *InboxMessage) UnmarshalJSON(b []byte) error {
	type plain InboxMessage
	var aux struct {
		plain
		TS *float64 `json:"ts"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*m = InboxMessage(aux.plain)
	if m.SubmittedAt.IsZero() && aux.TS != nil {
		m.SubmittedAt = time.UnixMilli(int64(*aux.TS)).UTC()
	}
	return nil
}
