package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resume-wizard/internal/model"
)

// screen is one step of the wizard. A screen renders a snapshot of its slice
// of the resume and reports every edit through the callback it was built
// with; it never reads the wizard itself.
type screen interface {
	update(msg tea.Msg) tea.Cmd
	view(st Styles) string
	help() []key.Binding
}

const inputWidth = 48

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = inputWidth
	return ti
}

func newMonthInput() textinput.Model {
	ti := newInput("Month")
	ti.SetSuggestions(model.Months)
	ti.ShowSuggestions = true
	return ti
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(inputWidth + 16)
	ta.SetHeight(5)
	return ta
}

// completeMonth expands an unambiguous case-insensitive prefix to the full
// month name. Anything else is returned as typed.
func completeMonth(v string) string {
	p := strings.ToLower(strings.TrimSpace(v))
	if p == "" {
		return v
	}
	match := ""
	for _, m := range model.Months {
		if strings.HasPrefix(strings.ToLower(m), p) {
			if match != "" {
				return v
			}
			match = m
		}
	}
	if match == "" {
		return v
	}
	return match
}

// cycle moves i by delta within [0, n).
func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

func labelFor(st Styles, label string, focused bool) string {
	if focused {
		return st.Focused.Render("› " + label)
	}
	return st.Label.Render("  " + label)
}

type welcomeScreen struct{}

func (welcomeScreen) update(tea.Msg) tea.Cmd { return nil }

func (welcomeScreen) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Build your resume") + "\n\n")
	b.WriteString("This wizard walks you through your personal details, summary,\n")
	b.WriteString("education, experience, skills and projects, then lets you pick a\n")
	b.WriteString("template, preview the result and download it as a PDF.\n\n")
	b.WriteString(st.Muted.Render("Nothing is saved between sessions."))
	return b.String()
}

func (welcomeScreen) help() []key.Binding { return []key.Binding{keys.Start, keys.Quit} }
