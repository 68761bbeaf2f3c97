package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/teacherhub/internal/forms"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

// formView is a column of text inputs bound to a forms.State.
type formView struct {
	state  *forms.State
	labels []string
	inputs []textinput.Model
	focus  int
}

type fieldSpec struct {
	name, label, placeholder string
	limit                    int
}

func newFormView(specs ...fieldSpec) *formView {
	names := make([]string, 0, len(specs))
	f := &formView{}
	for _, s := range specs {
		names = append(names, s.name)
		f.labels = append(f.labels, s.label)
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = s.placeholder
		ti.CharLimit = s.limit
		f.inputs = append(f.inputs, ti)
	}
	f.state = forms.NewState(names...)
	return f
}

func (f *formView) Focus() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *formView) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *formView) move(delta int) tea.Cmd {
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.Focus()
}

// Update handles field navigation and forwards everything else to the
// focused input.
func (f *formView) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f.move(1)
		case "shift+tab", "up":
			return f.move(-1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// sync copies the input values into the state before a submit.
func (f *formView) sync() {
	for i, name := range f.state.Fields() {
		f.state.SetValue(name, f.inputs[i].Value())
	}
}

// apply records a submission outcome; on success the inputs are emptied.
func (f *formView) apply(errs forms.FieldErrors) bool {
	if !f.state.Apply(errs) {
		return false
	}
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focus = 0
	return true
}

// clear drops values and messages.
func (f *formView) clear() {
	f.state.Apply(nil)
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focus = 0
}

func (f *formView) View() string {
	t := ui.Current()
	var b strings.Builder
	for i, name := range f.state.Fields() {
		label := f.labels[i]
		if i == f.focus && f.inputs[i].Focused() {
			label = t.Selected.Render(label)
		}
		b.WriteString(label + "\n")
		b.WriteString(f.inputs[i].View() + "\n")
		if msg := f.state.Error(name); msg != "" {
			b.WriteString(t.Error.Render(msg) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
