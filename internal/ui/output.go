// Package ui renders portal output for the terminal: themed styles, framed
// panels and one-line status messages.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects status lines and panels. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string)   { fmt.Fprintln(stdout, Current().Success.Render(symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, Current().Error.Render(symCross+" "+msg)) }

// Println writes an unstyled line to the output writer.
func Println(a ...any) { fmt.Fprintln(stdout, a...) }

// Hint prints a muted line on stderr.
func Hint(msg string) { fmt.Fprintln(stderr, Current().Muted.Render(msg)) }

// Panel draws a framed box around lines using the current theme.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(strings.Join(lines, "\n")))
}

func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current().Border).
		Padding(0, 1)
	return border.Render(inner)
}

// Footer is the closing line shown under every view.
func Footer(year int) string {
	return Current().Muted.Render(fmt.Sprintf("© %d TeacherHub", year))
}
