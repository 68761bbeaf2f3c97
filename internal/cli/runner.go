package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/teacherhub/internal/export"
	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/listmgr"
	"github.com/idilsaglam/teacherhub/internal/portal"
	"github.com/idilsaglam/teacherhub/internal/store"
	"github.com/idilsaglam/teacherhub/internal/theme"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

// Options carries what subcommands need from the root.
type Options struct {
	Portal *portal.Portal
	// Interactive starts the TUI. Nil disables the tui subcommand.
	Interactive func(*portal.Portal) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]
	p := opt.Portal

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "announcements", "news":
		return doAnnouncements(p)

	case "resources":
		return doResources(p, a)

	case "schedule":
		return doSchedule(p)

	case "assign", "assignments":
		if len(a) == 0 {
			return doAssignList(p)
		}
		switch a[0] {
		case "ls", "list":
			return doAssignList(p)
		case "add":
			return doAssignAdd(p, a[1:])
		case "rm", "remove":
			return doAssignRemove(p, a[1:])
		case "export":
			return doAssignExport(p, a[1:])
		}
		ui.Fail("usage: teacherhub assign <ls|add|rm|export>")
		return 2

	case "contact":
		return doContact(p, a)

	case "inbox":
		return doInbox(p)

	case "theme":
		return doTheme(p, a)

	case "tui", "open":
		if opt.Interactive == nil {
			ui.Fail("tui: not available")
			return 1
		}
		if err := opt.Interactive(p); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	ui.Println()
	PrintHelp()
	return 2
}

func PrintHelp() {
	ui.Println(`teacherhub - a classroom portal in your terminal

Usage:
  teacherhub [flags] <subcommand> [args]

Subcommands:
  announcements                          Show announcements
  resources [query] [--type T]           List resources, filtered by text and type
  schedule                               Show the weekly schedule
  assign ls                              List assignments
  assign add --title T --due YYYY-MM-DD [--details D]
  assign rm <index> | --id ID            Remove an assignment (1-based index)
  assign export [--out FILE]             Write assignments to a PDF
  contact --name N --email E --message M Leave a message in the local inbox
  inbox                                  Show stored messages
  theme [dark|light|toggle]              Show or change the theme
  tui                                    Open the interactive portal

Examples:
  teacherhub resources rubric
  teacherhub resources --type PDF
  teacherhub assign add --title "Essay Draft" --due 2025-11-01
  teacherhub assign rm 1`)
}

// -------------- subcommand impls ----------------

func newFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func doAnnouncements(p *portal.Portal) int {
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Title.Render("Announcements"), "")
	for _, a := range p.Catalog().Announcements {
		lines = append(lines,
			t.Accent.Render(a.Title),
			t.Muted.Render(a.DateLabel()),
			a.Body,
			"")
	}
	lines = append(lines, ui.Footer(p.Year()))
	ui.Panel(lines)
	return 0
}

func doResources(p *portal.Portal, args []string) int {
	fs := newFlags("resources")
	typ := fs.StringP("type", "t", "", "exact resource type (PDF, Slide, Doc, Link)")
	if err := fs.Parse(args); err != nil {
		ui.Fail("resources: " + err.Error())
		return 2
	}
	query := strings.Join(fs.Args(), " ")

	t := ui.Current()
	matches := p.Resources(query, *typ)
	lines := []string{fmt.Sprintf("%s  %s", t.Title.Render("Resources"), t.Muted.Render(fmt.Sprintf("%d of %d", len(matches), len(p.Catalog().Resources)))), ""}
	if len(matches) == 0 {
		lines = append(lines, t.Muted.Render("No resources match."))
	}
	for _, r := range matches {
		lines = append(lines,
			t.Accent.Render(r.Title)+" "+t.Badge.Render(r.Type),
			t.Muted.Render(r.Note),
			r.URL,
			"")
	}
	ui.Panel(lines)
	return 0
}

func doSchedule(p *portal.Portal) int {
	t := ui.Current()
	lines := []string{t.Title.Render("This week"), ""}
	for _, s := range p.Catalog().Schedule {
		lines = append(lines, t.Accent.Render(s.When)+" — "+s.Title)
	}
	ui.Panel(lines)
	return 0
}

// panelRows renders list rows as numbered panel lines.
type panelRows struct {
	lines []string
}

func (r *panelRows) Clear() { r.lines = r.lines[:0] }

func (r *panelRows) AddRow(row listmgr.Row) {
	t := ui.Current()
	r.lines = append(r.lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", row.Index+1)), row.Title))
	if row.Detail != "" {
		r.lines = append(r.lines, "    "+t.Muted.Render(row.Detail))
	}
}

func showList(title, empty string, rows *panelRows, count int) {
	t := ui.Current()
	lines := []string{fmt.Sprintf("%s  %s %d", t.Title.Render(title), t.Accent.Render("Total"), count), ""}
	if count == 0 {
		lines = append(lines, t.Muted.Render(empty))
	} else {
		lines = append(lines, rows.lines...)
	}
	ui.Panel(lines)
}

func doAssignList(p *portal.Portal) int {
	var rows panelRows
	items, err := p.AssignmentList().Refresh(&rows)
	if err != nil {
		failStore("load", err)
		return 1
	}
	showList("Assignments", "No assignments yet.", &rows, len(items))
	return 0
}

func doAssignAdd(p *portal.Portal, args []string) int {
	fs := newFlags("assign add")
	title := fs.String("title", "", "assignment title")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	details := fs.String("details", "", "optional details")
	if err := fs.Parse(args); err != nil {
		ui.Fail("assign add: " + err.Error())
		return 2
	}

	items, errs, err := p.SubmitAssignment(forms.AssignmentInput{Title: *title, Due: *due, Details: *details})
	if err != nil {
		failStore("save", err)
		return 1
	}
	if len(errs) > 0 {
		failFields(forms.AssignmentFields, errs)
		return 2
	}
	ui.OK("added")
	var rows panelRows
	p.AssignmentList().Render(items, &rows)
	showList("Assignments", "No assignments yet.", &rows, len(items))
	return 0
}

func doAssignRemove(p *portal.Portal, args []string) int {
	fs := newFlags("assign rm")
	id := fs.String("id", "", "assignment id")
	if err := fs.Parse(args); err != nil {
		ui.Fail("assign rm: " + err.Error())
		return 2
	}
	index := -1
	if *id == "" {
		if fs.NArg() != 1 {
			ui.Fail("usage: teacherhub assign rm <index> | --id ID")
			return 2
		}
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			ui.Fail("rm: not a number: " + fs.Arg(0))
			return 2
		}
		index = n - 1
	}

	before, err := p.Assignments()
	if err != nil {
		failStore("load", err)
		return 1
	}
	items, err := p.RemoveAssignment(*id, index)
	if err != nil {
		failStore("save", err)
		return 1
	}
	if len(items) == len(before) {
		ui.Hint("nothing removed. Run `teacherhub assign ls` to see valid indexes")
	} else {
		ui.OK("removed")
	}
	var rows panelRows
	p.AssignmentList().Render(items, &rows)
	showList("Assignments", "No assignments yet.", &rows, len(items))
	return 0
}

func doAssignExport(p *portal.Portal, args []string) int {
	fs := newFlags("assign export")
	out := fs.StringP("out", "o", "assignments.pdf", "output file")
	if err := fs.Parse(args); err != nil {
		ui.Fail("assign export: " + err.Error())
		return 2
	}
	items, err := p.Assignments()
	if err != nil {
		failStore("load", err)
		return 1
	}
	f, err := os.Create(*out)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	if err := export.AssignmentsPDF(f, items, p.Now()); err != nil {
		f.Close()
		ui.Fail("export: " + err.Error())
		return 1
	}
	if err := f.Close(); err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("exported %d assignment(s) to %s", len(items), *out))
	return 0
}

func doContact(p *portal.Portal, args []string) int {
	fs := newFlags("contact")
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	message := fs.String("message", "", "message")
	if err := fs.Parse(args); err != nil {
		ui.Fail("contact: " + err.Error())
		return 2
	}
	_, errs, err := p.SubmitContact(forms.ContactInput{Name: *name, Email: *email, Message: *message})
	if err != nil {
		failStore("save", err)
		return 1
	}
	if len(errs) > 0 {
		failFields(forms.ContactFields, errs)
		return 2
	}
	ui.OK("Thanks! Your message was saved.")
	return 0
}

func doInbox(p *portal.Portal) int {
	var rows panelRows
	items, err := p.InboxList().Refresh(&rows)
	if err != nil {
		failStore("load", err)
		return 1
	}
	showList("Inbox", "No messages.", &rows, len(items))
	return 0
}

func doTheme(p *portal.Portal, args []string) int {
	if len(args) == 0 {
		m, err := p.Theme()
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		ui.Println(string(m))
		return 0
	}
	var (
		m   theme.Mode
		err error
	)
	switch args[0] {
	case "toggle":
		m, err = p.ToggleTheme()
	case string(theme.Dark), string(theme.Light):
		m = theme.Mode(args[0])
		err = p.SetTheme(m)
	default:
		ui.Fail("usage: teacherhub theme [dark|light|toggle]")
		return 2
	}
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.SetTheme(m)
	ui.OK("theme: " + string(m))
	return 0
}

// failFields prints one line per failing field, in form order.
func failFields(order []string, errs forms.FieldErrors) {
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			ui.Fail(f + ": " + msg)
		}
	}
}

// failStore reports a store failure and, for a damaged data file, how to recover.
func failStore(op string, err error) {
	ui.Fail(op + ": " + err.Error())
	var corrupt *store.CorruptError
	if errors.As(err, &corrupt) {
		ui.Hint(fmt.Sprintf("%s is not valid JSON. Fix it or move it aside to start with empty lists.", corrupt.Path))
	}
}
