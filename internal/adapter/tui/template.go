package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resume-wizard/internal/model"
)

type templateScreen struct {
	cursor   int
	selected model.TemplateID
	onChange func(model.TemplateID)
}

func newTemplateScreen(current model.TemplateID, onChange func(model.TemplateID)) *templateScreen {
	s := &templateScreen{selected: current, onChange: onChange}
	for i, t := range model.Catalogue {
		if t.ID == current {
			s.cursor = i
		}
	}
	return s
}

func (s *templateScreen) update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, keys.Up):
		s.cursor = cycle(s.cursor, -1, len(model.Catalogue))
	case key.Matches(km, keys.Down):
		s.cursor = cycle(s.cursor, 1, len(model.Catalogue))
	case key.Matches(km, keys.AddItem):
	default:
		return nil
	}
	s.selected = model.Catalogue[s.cursor].ID
	s.onChange(s.selected)
	return nil
}

func (s *templateScreen) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Choose a template") + "\n\n")
	for i, t := range model.Catalogue {
		mark := "( )"
		if t.ID == s.selected {
			mark = "(•)"
		}
		line := mark + " " + t.Name
		if i == s.cursor {
			line = st.Selected.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n    " + st.Muted.Render(t.Description) + "\n\n")
	}
	return b.String()
}

func (s *templateScreen) help() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))}
}
