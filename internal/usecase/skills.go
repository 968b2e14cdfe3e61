package usecase

import (
	"strings"

	"resume-wizard/internal/model"
)

// AddCategory appends an empty category. Empty and duplicate names are
// rejected and reported through the boolean.
func AddCategory(s model.Skills, name string) (model.Skills, bool) {
	name = strings.TrimSpace(name)
	if name == "" || s.Index(name) >= 0 {
		return s, false
	}
	out := s.Clone()
	return append(out, model.SkillCategory{Name: name, Skills: []string{}}), true
}

// RemoveCategory deletes the category and every skill in it.
func RemoveCategory(s model.Skills, name string) model.Skills {
	out := make(model.Skills, 0, len(s))
	for _, c := range s.Clone() {
		if c.Name != name {
			out = append(out, c)
		}
	}
	return out
}

// AddSkill files skill under category, creating the category when needed.
// An empty category means the flat skill list. Empty skills and exact
// duplicates within the category are silently ignored.
func AddSkill(s model.Skills, category, skill string) (model.Skills, bool) {
	skill = strings.TrimSpace(skill)
	category = strings.TrimSpace(category)
	if category == "" {
		category = model.FlatCategory
	}
	if skill == "" {
		return s, false
	}
	out := s.Clone()
	i := out.Index(category)
	if i < 0 {
		return append(out, model.SkillCategory{Name: category, Skills: []string{skill}}), true
	}
	for _, existing := range out[i].Skills {
		if existing == skill {
			return s, false
		}
	}
	out[i].Skills = append(out[i].Skills, skill)
	return out, true
}

// RemoveSkill removes an exact match from category.
func RemoveSkill(s model.Skills, category, skill string) model.Skills {
	out := s.Clone()
	i := out.Index(category)
	if i < 0 {
		return out
	}
	kept := make([]string, 0, len(out[i].Skills))
	for _, existing := range out[i].Skills {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	out[i].Skills = kept
	return out
}
