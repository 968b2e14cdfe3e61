package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resume-wizard/internal/model"
	"resume-wizard/internal/usecase"
)

const (
	focusCategory = iota
	focusSkill
)

// skillsScreen edits skills grouped by category. Skills typed while no
// category exists land in the flat "Skills" category.
type skillsScreen struct {
	skills   model.Skills
	onChange func(model.Skills)
	selected int
	focus    int
	category textinput.Model
	skill    textinput.Model
}

func newSkillsScreen(s model.Skills, onChange func(model.Skills)) *skillsScreen {
	sc := &skillsScreen{
		skills:   s,
		onChange: onChange,
		category: newInput("New category, e.g. Languages"),
		skill:    newInput("New skill, e.g. Go"),
		focus:    focusSkill,
	}
	sc.skill.Focus()
	return sc
}

func (s *skillsScreen) commit(sk model.Skills) {
	s.skills = sk
	if s.selected >= len(sk) {
		s.selected = len(sk) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
	s.onChange(sk)
}

func (s *skillsScreen) selectedName() string {
	if len(s.skills) == 0 {
		return ""
	}
	return s.skills[s.selected].Name
}

func (s *skillsScreen) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.NextField), key.Matches(km, keys.PrevField):
			if s.focus == focusSkill {
				s.focus = focusCategory
				s.skill.Blur()
				return s.category.Focus()
			}
			s.focus = focusSkill
			s.category.Blur()
			return s.skill.Focus()
		case key.Matches(km, keys.Up):
			if s.selected > 0 {
				s.selected--
			}
			return nil
		case key.Matches(km, keys.Down):
			if s.selected < len(s.skills)-1 {
				s.selected++
			}
			return nil
		case key.Matches(km, keys.AddItem):
			s.add()
			return nil
		case key.Matches(km, keys.RemoveCategory):
			if name := s.selectedName(); name != "" {
				s.commit(usecase.RemoveCategory(s.skills, name))
			}
			return nil
		case key.Matches(km, keys.RemoveSkill):
			s.removeSkill()
			return nil
		}
	}
	var cmd tea.Cmd
	if s.focus == focusCategory {
		s.category, cmd = s.category.Update(msg)
	} else {
		s.skill, cmd = s.skill.Update(msg)
	}
	return cmd
}

func (s *skillsScreen) add() {
	if s.focus == focusCategory {
		if sk, ok := usecase.AddCategory(s.skills, s.category.Value()); ok {
			s.commit(sk)
			s.selected = len(sk) - 1
			s.category.SetValue("")
		}
		return
	}
	if sk, ok := usecase.AddSkill(s.skills, s.selectedName(), s.skill.Value()); ok {
		s.commit(sk)
		if len(sk) == 1 {
			s.selected = 0
		}
	}
	s.skill.SetValue("")
}

// removeSkill drops the skill named in the input, or the newest skill of the
// selected category when the input is empty.
func (s *skillsScreen) removeSkill() {
	name := s.selectedName()
	if name == "" {
		return
	}
	target := strings.TrimSpace(s.skill.Value())
	if target == "" {
		cat := s.skills[s.selected].Skills
		if len(cat) == 0 {
			return
		}
		target = cat[len(cat)-1]
	}
	s.commit(usecase.RemoveSkill(s.skills, name, target))
	s.skill.SetValue("")
}

func (s *skillsScreen) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Skills") + "\n")
	b.WriteString(st.Muted.Render("Add a category, then type skills into it. ↑/↓ picks the category.") + "\n\n")
	b.WriteString(labelFor(st, "Category", s.focus == focusCategory) + s.category.View() + "\n")
	b.WriteString(labelFor(st, "Skill", s.focus == focusSkill) + s.skill.View() + "\n\n")

	if len(s.skills) == 0 {
		b.WriteString(st.Muted.Render("No skills yet."))
		return b.String()
	}
	var card strings.Builder
	for i, c := range s.skills {
		line := c.Name + ": " + strings.Join(c.Skills, ", ")
		if len(c.Skills) == 0 {
			line = c.Name + ": " + st.Muted.Render("(empty)")
		}
		if i == s.selected {
			card.WriteString(st.Selected.Render("› "+line) + "\n")
		} else {
			card.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(st.Card.Render(strings.TrimRight(card.String(), "\n")))
	return b.String()
}

func (s *skillsScreen) help() []key.Binding {
	return []key.Binding{keys.NextField, keys.AddItem, keys.Up, keys.Down, keys.RemoveCategory, keys.RemoveSkill}
}
