package usecase

import (
	"strings"

	"github.com/google/uuid"

	"resume-wizard/internal/model"
)

// Entry is any list-backed record the wizard edits by id.
type Entry interface {
	model.Education | model.Experience | model.Project
}

// NewEntryID returns an opaque id that stays with the entry for its lifetime.
func NewEntryID() string { return uuid.NewString() }

// EntryID returns the id of any list entry.
func EntryID[T Entry](e T) string {
	switch v := any(e).(type) {
	case model.Education:
		return v.ID
	case model.Experience:
		return v.ID
	case model.Project:
		return v.ID
	}
	return ""
}

// AddEntry appends fresh to a copy of list. Insertion order is display order.
func AddEntry[T Entry](list []T, fresh T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, fresh)
}

// RemoveEntry drops the entry with id. An unknown id leaves the list as is,
// and removing the last entry leaves it empty.
func RemoveEntry[T Entry](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if EntryID(e) != id {
			out = append(out, e)
		}
	}
	return out
}

// UpdateEntry applies fn to the entry with id in a copy of list.
func UpdateEntry[T Entry](list []T, id string, fn func(*T)) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if EntryID(out[i]) == id {
			fn(&out[i])
		}
	}
	return out
}

func AddEducation(list []model.Education) []model.Education {
	return AddEntry(list, model.Education{ID: NewEntryID()})
}

func AddExperience(list []model.Experience) []model.Experience {
	return AddEntry(list, model.Experience{ID: NewEntryID()})
}

func AddProject(list []model.Project) []model.Project {
	return AddEntry(list, model.Project{ID: NewEntryID()})
}

func UpdateEducation(list []model.Education, id string, f Field, value string) []model.Education {
	return UpdateEntry(list, id, func(e *model.Education) {
		if p := educationField(e, f); p != nil {
			*p = value
		}
	})
}

// UpdateExperience sets one field. End dates of a current role stay empty.
func UpdateExperience(list []model.Experience, id string, f Field, value string) []model.Experience {
	return UpdateEntry(list, id, func(e *model.Experience) {
		if e.Current && (f == FieldEndMonth || f == FieldEndYear) {
			return
		}
		if p := experienceField(e, f); p != nil {
			*p = value
		}
	})
}

// SetExperienceCurrent flips the current flag; turning it on clears the end
// date at once.
func SetExperienceCurrent(list []model.Experience, id string, current bool) []model.Experience {
	return UpdateEntry(list, id, func(e *model.Experience) {
		e.Current = current
		if current {
			e.EndMonth = ""
			e.EndYear = ""
		}
	})
}

func UpdateProject(list []model.Project, id string, f Field, value string) []model.Project {
	return UpdateEntry(list, id, func(p *model.Project) {
		if v := projectField(p, f); v != nil {
			*v = value
		}
	})
}

// BulletizeDescription prefixes every non-empty line with a bullet unless it
// already starts with one. A line holding only a bullet becomes empty.
// Applying it twice gives the same text.
func BulletizeDescription(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == model.Bullet:
			lines[i] = ""
		case trimmed == "" || strings.HasPrefix(trimmed, model.Bullet):
		default:
			lines[i] = model.Bullet + " " + line
		}
	}
	return strings.Join(lines, "\n")
}
