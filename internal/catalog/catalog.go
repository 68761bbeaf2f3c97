// Package catalog holds the portal's read-only content: announcements,
// resources and the weekly schedule.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Announcement struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"` // YYYY-MM-DD
	Body  string `yaml:"body"`
}

// DateLabel renders Date like "Oct 2, 2025", or verbatim if it does not parse.
func (a Announcement) DateLabel() string {
	d, err := time.Parse("2006-01-02", a.Date)
	if err != nil {
		return a.Date
	}
	return d.Format("Jan 2, 2006")
}

type Resource struct {
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
	URL   string `yaml:"url"`
	Note  string `yaml:"note"`
}

type ScheduleEntry struct {
	When  string `yaml:"when"`
	Title string `yaml:"title"`
}

func (s ScheduleEntry) Line() string { return s.When + " — " + s.Title }

// Catalog is the full content set.
type Catalog struct {
	Announcements []Announcement  `yaml:"announcements"`
	Resources     []Resource      `yaml:"resources"`
	Schedule      []ScheduleEntry `yaml:"schedule"`
}

// Demo returns the built-in sample content.
func Demo() Catalog {
	return Catalog{
		Announcements: []Announcement{
			{Title: "Parent-Teacher Conferences", Date: "2025-10-02", Body: "Sign up via the shared sheet. Each meeting is 15 minutes."},
			{Title: "Field Trip Permission Slips", Date: "2025-09-30", Body: "Please return slips by Tuesday. Volunteers welcome!"},
			{Title: "Unit 2 Assessments", Date: "2025-10-06", Body: "Assessments will be held during regular class time."},
		},
		Resources: []Resource{
			{Title: "Syllabus (English Literature)", Type: "PDF", URL: "#", Note: "Overview, grading, and policies"},
			{Title: "Poetry Slides — Metaphor & Meter", Type: "Slide", URL: "#", Note: "Interactive lesson slides"},
			{Title: "Writing Rubric", Type: "Doc", URL: "#", Note: "Criteria for essays and short responses"},
			{Title: "Research Databases (Library)", Type: "Link", URL: "#", Note: "Peer-reviewed journals & magazines"},
			{Title: "Shakespeare Sonnet Worksheet", Type: "PDF", URL: "#", Note: "Practice with sonnet structure"},
		},
		Schedule: []ScheduleEntry{
			{When: "Mon, 8:30–10:00", Title: "English 9 — Room 204"},
			{When: "Mon, 10:15–11:45", Title: "English 10 — Room 210"},
			{When: "Tue, 9:00–10:30", Title: "Dept. Planning Meeting — Library"},
			{When: "Wed, 1:00–2:30", Title: "English 9 — Room 204"},
			{When: "Thu, 11:00–12:00", Title: "Office Hours — Room 110"},
			{When: "Fri, 8:30–10:00", Title: "English 10 — Room 210"},
		},
	}
}

// LoadFile reads a YAML content file. Sections the file leaves out keep the
// demo content.
func LoadFile(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Catalog{}, fmt.Errorf("content file %s not found", path)
		}
		return Catalog{}, fmt.Errorf("read content: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse content %s: %w", path, err)
	}
	demo := Demo()
	if c.Announcements == nil {
		c.Announcements = demo.Announcements
	}
	if c.Resources == nil {
		c.Resources = demo.Resources
	}
	if c.Schedule == nil {
		c.Schedule = demo.Schedule
	}
	return c, nil
}

// Filter returns the resources matching typ exactly (when typ is set) and
// containing query in the title or note, case-insensitively.
func Filter(resources []Resource, query, typ string) []Resource {
	q := strings.ToLower(query)
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if typ != "" && r.Type != typ {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Note), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Types lists the distinct resource types in first-seen order.
func Types(resources []Resource) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range resources {
		if r.Type == "" || seen[r.Type] {
			continue
		}
		seen[r.Type] = true
		out = append(out, r.Type)
	}
	return out
}
