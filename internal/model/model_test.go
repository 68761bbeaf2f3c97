package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentLine(t *testing.T) {
	tests := []struct {
		name string
		in   Assignment
		want string
	}{
		{name: "calendar date", in: Assignment{Title: "Essay Draft", Due: "2025-11-01"}, want: "Essay Draft — due 11/1/2025"},
		{name: "two digit month and day", in: Assignment{Title: "Quiz", Due: "2025-12-24"}, want: "Quiz — due 12/24/2025"},
		{name: "not a date is shown verbatim", in: Assignment{Title: "Read", Due: "next week"}, want: "Read — due next week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Line())
		})
	}
}

func TestInboxMessage_LegacyTimestamp(t *testing.T) {
	raw := `[{"name":"Ada","email":"ada@example.com","message":"Hi","ts":1730419200000},` +
		`{"id":"id-1","name":"Bo","email":"bo@example.com","message":"Yo","submittedAt":"2026-10-16T09:30:00Z"},` +
		`{"name":"Cy","email":"cy@example.com","message":"Hey"}]`

	var msgs []InboxMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msgs))
	require.Len(t, msgs, 3)

	assert.True(t, msgs[0].SubmittedAt.Equal(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.Equal(t, "id-1", msgs[1].ID)
	assert.True(t, msgs[1].SubmittedAt.Equal(time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)))
	assert.True(t, msgs[2].SubmittedAt.IsZero())

	out, err := json.Marshal(msgs[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"submittedAt":"2024-11-01T00:00:00Z"`)
}
