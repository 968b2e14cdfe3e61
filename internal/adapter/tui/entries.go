package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resume-wizard/internal/model"
	"resume-wizard/internal/usecase"
)

type formField struct {
	field usecase.Field
	label string
	month bool
}

var dateFields = []formField{
	{usecase.FieldStartMonth, "Start month", true},
	{usecase.FieldStartYear, "Start year", false},
	{usecase.FieldEndMonth, "End month", true},
	{usecase.FieldEndYear, "End year", false},
}

func withDates(head ...formField) []formField {
	return append(head, dateFields...)
}

// entrySpec describes one list-backed screen: which fields an entry has and
// how the collection-editing operations apply to it.
type entrySpec[T usecase.Entry] struct {
	title    string
	noun     string
	fields   []formField
	descHint string
	value    func(T, usecase.Field) string
	set      func([]T, string, usecase.Field, string) []T
	add      func([]T) []T
	// current is set only for entries that can be ongoing.
	current    func(T) bool
	setCurrent func([]T, string, bool) []T
	bullets    bool
}

type entriesScreen[T usecase.Entry] struct {
	spec     entrySpec[T]
	list     []T
	onChange func([]T)
	cursor   int
	focus    int
	inputs   []textinput.Model
	desc     textarea.Model
}

func newEntriesScreen[T usecase.Entry](spec entrySpec[T], list []T, onChange func([]T)) *entriesScreen[T] {
	s := &entriesScreen[T]{spec: spec, list: list, onChange: onChange}
	s.load()
	return s
}

// descIndex is the focus index of the description area.
func (s *entriesScreen[T]) descIndex() int { return len(s.spec.fields) }

func (s *entriesScreen[T]) load() {
	if s.cursor >= len(s.list) {
		s.cursor = len(s.list) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.inputs = s.inputs[:0]
	for _, f := range s.spec.fields {
		var ti textinput.Model
		if f.month {
			ti = newMonthInput()
		} else {
			ti = newInput(f.label)
		}
		s.inputs = append(s.inputs, ti)
	}
	s.desc = newTextArea(s.spec.descHint)
	if len(s.list) == 0 {
		return
	}
	e := s.list[s.cursor]
	for i, f := range s.spec.fields {
		s.inputs[i].SetValue(s.spec.value(e, f.field))
	}
	s.desc.SetValue(s.spec.value(e, usecase.FieldDescription))
	s.applyFocus()
}

func (s *entriesScreen[T]) applyFocus() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.desc.Blur()
	if s.focus == s.descIndex() {
		return s.desc.Focus()
	}
	return s.inputs[s.focus].Focus()
}

func (s *entriesScreen[T]) commit(list []T) {
	s.list = list
	s.onChange(list)
}

func (s *entriesScreen[T]) id() string { return usecase.EntryID(s.list[s.cursor]) }

func (s *entriesScreen[T]) update(msg tea.Msg) tea.Cmd {
	km, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(km, keys.AddEntry):
			s.commit(s.spec.add(s.list))
			s.cursor = len(s.list) - 1
			s.focus = 0
			s.load()
			return nil
		case key.Matches(km, keys.NextEntry):
			if s.cursor < len(s.list)-1 {
				s.cursor++
				s.load()
			}
			return nil
		case key.Matches(km, keys.PrevEntry):
			if s.cursor > 0 {
				s.cursor--
				s.load()
			}
			return nil
		}
	}
	if len(s.list) == 0 {
		return nil
	}
	if isKey {
		switch {
		case key.Matches(km, keys.RemoveEntry):
			s.commit(usecase.RemoveEntry(s.list, s.id()))
			s.load()
			return nil
		case key.Matches(km, keys.Current) && s.spec.current != nil:
			now := !s.spec.current(s.list[s.cursor])
			s.commit(s.spec.setCurrent(s.list, s.id(), now))
			s.load()
			return nil
		case key.Matches(km, keys.NextField):
			return s.move(1)
		case key.Matches(km, keys.PrevField):
			return s.move(-1)
		}
	}

	var cmd tea.Cmd
	if s.focus == s.descIndex() {
		before := s.desc.Value()
		s.desc, cmd = s.desc.Update(msg)
		v := s.desc.Value()
		if v == before {
			return cmd
		}
		if s.spec.bullets {
			if b := usecase.BulletizeDescription(v); b != v {
				v = b
				s.desc.SetValue(v)
			}
		}
		s.commit(s.spec.set(s.list, s.id(), usecase.FieldDescription, v))
		return cmd
	}

	f := s.spec.fields[s.focus]
	before := s.inputs[s.focus].Value()
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	if v := s.inputs[s.focus].Value(); v != before {
		s.commit(s.spec.set(s.list, s.id(), f.field, v))
		// the entry may refuse the edit, e.g. end dates of a current role
		if stored := s.spec.value(s.list[s.cursor], f.field); stored != v {
			s.inputs[s.focus].SetValue(stored)
		}
	}
	return cmd
}

func (s *entriesScreen[T]) move(delta int) tea.Cmd {
	if s.focus < s.descIndex() {
		f := s.spec.fields[s.focus]
		if v := s.inputs[s.focus].Value(); f.month && completeMonth(v) != v {
			s.commit(s.spec.set(s.list, s.id(), f.field, completeMonth(v)))
			s.inputs[s.focus].SetValue(s.spec.value(s.list[s.cursor], f.field))
		}
	}
	s.focus = cycle(s.focus, delta, s.descIndex()+1)
	return s.applyFocus()
}

func (s *entriesScreen[T]) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(s.spec.title) + "\n")
	if len(s.list) == 0 {
		b.WriteString("\n" + st.Muted.Render(fmt.Sprintf("No %s yet. Press ctrl+a to add one.", s.spec.noun)) + "\n")
		return b.String()
	}
	b.WriteString(st.Muted.Render(fmt.Sprintf("%s %d of %d", s.spec.noun, s.cursor+1, len(s.list))) + "\n\n")

	var card strings.Builder
	for i, f := range s.spec.fields {
		card.WriteString(labelFor(st, f.label, i == s.focus) + s.inputs[i].View() + "\n")
	}
	if s.spec.current != nil {
		mark := "[ ]"
		if s.spec.current(s.list[s.cursor]) {
			mark = "[x]"
		}
		card.WriteString(labelFor(st, "Current", false) + mark + st.Muted.Render("  ctrl+o toggles") + "\n")
	}
	card.WriteString(labelFor(st, "Description", s.focus == s.descIndex()) + "\n")
	card.WriteString(s.desc.View())
	b.WriteString(st.Card.Render(card.String()))
	return b.String()
}

func (s *entriesScreen[T]) help() []key.Binding {
	h := []key.Binding{keys.NextField, keys.AddEntry, keys.RemoveEntry, keys.PrevEntry, keys.NextEntry}
	if s.spec.current != nil {
		h = append(h, keys.Current)
	}
	return h
}

func educationSpec() entrySpec[model.Education] {
	return entrySpec[model.Education]{
		title:    "Education",
		noun:     "education entries",
		fields:   withDates(formField{usecase.FieldDegree, "Degree", false}, formField{usecase.FieldInstitution, "Institution", false}),
		descHint: "Honours, thesis, relevant coursework (optional)",
		value:    usecase.EducationValue,
		set:      usecase.UpdateEducation,
		add:      usecase.AddEducation,
	}
}

func experienceSpec(bullets bool) entrySpec[model.Experience] {
	return entrySpec[model.Experience]{
		title:      "Work experience",
		noun:       "experience entries",
		fields:     withDates(formField{usecase.FieldTitle, "Job title", false}, formField{usecase.FieldCompany, "Company", false}),
		descHint:   "What you did and achieved, one point per line",
		value:      usecase.ExperienceValue,
		set:        usecase.UpdateExperience,
		add:        usecase.AddExperience,
		current:    func(e model.Experience) bool { return e.Current },
		setCurrent: usecase.SetExperienceCurrent,
		bullets:    bullets,
	}
}

func projectSpec() entrySpec[model.Project] {
	return entrySpec[model.Project]{
		title:    "Projects",
		noun:     "projects",
		fields:   withDates(formField{usecase.FieldTitle, "Title", false}, formField{usecase.FieldLink, "Link", false}),
		descHint: "What it is and your part in it (optional)",
		value:    usecase.ProjectValue,
		set:      usecase.UpdateProject,
		add:      usecase.AddProject,
	}
}
