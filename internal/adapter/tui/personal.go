package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resume-wizard/internal/model"
)

var personalLabels = []string{"Full name", "Title", "Email", "Phone", "Location", "LinkedIn", "Website"}

type personalScreen struct {
	inputs   []textinput.Model
	focus    int
	onChange func(model.PersonalInfo)
}

func newPersonalScreen(p model.PersonalInfo, onChange func(model.PersonalInfo)) *personalScreen {
	values := []string{p.Name, p.Title, p.Email, p.Phone, p.Location, p.LinkedIn, p.Website}
	s := &personalScreen{onChange: onChange}
	for i, label := range personalLabels {
		ti := newInput(label)
		ti.SetValue(values[i])
		s.inputs = append(s.inputs, ti)
	}
	s.inputs[0].Focus()
	return s
}

func (s *personalScreen) info() model.PersonalInfo {
	v := func(i int) string { return s.inputs[i].Value() }
	return model.PersonalInfo{
		Name: v(0), Title: v(1), Email: v(2), Phone: v(3), Location: v(4), LinkedIn: v(5), Website: v(6),
	}
}

func (s *personalScreen) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.NextField):
			return s.move(1)
		case key.Matches(km, keys.PrevField):
			return s.move(-1)
		}
	}
	before := s.inputs[s.focus].Value()
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if s.inputs[s.focus].Value() != before {
		s.onChange(s.info())
	}
	return cmd
}

func (s *personalScreen) move(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = cycle(s.focus, delta, len(s.inputs))
	return s.inputs[s.focus].Focus()
}

func (s *personalScreen) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Personal information") + "\n")
	b.WriteString(st.Muted.Render("LinkedIn and website are optional.") + "\n\n")
	for i, in := range s.inputs {
		b.WriteString(labelFor(st, personalLabels[i], i == s.focus) + in.View() + "\n")
	}
	return b.String()
}

func (s *personalScreen) help() []key.Binding {
	return []key.Binding{keys.NextField, keys.PrevField}
}

type summaryScreen struct {
	area     textarea.Model
	onChange func(string)
}

func newSummaryScreen(summary string, onChange func(string)) *summaryScreen {
	ta := newTextArea("A few sentences about who you are and what you do best.")
	ta.SetHeight(8)
	ta.SetValue(summary)
	ta.Focus()
	return &summaryScreen{area: ta, onChange: onChange}
}

func (s *summaryScreen) update(msg tea.Msg) tea.Cmd {
	before := s.area.Value()
	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	if v := s.area.Value(); v != before {
		s.onChange(v)
	}
	return cmd
}

func (s *summaryScreen) view(st Styles) string {
	return st.Title.Render("Professional summary") + "\n\n" + s.area.View()
}

func (s *summaryScreen) help() []key.Binding { return nil }
