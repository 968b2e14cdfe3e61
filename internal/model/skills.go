package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlatCategory is the category a plain list of skills is filed under.
const FlatCategory = "Skills"

type SkillCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Skills is an ordered list of named categories. A flat skill list is the
// special case of a single category.
type Skills []SkillCategory

func (s Skills) Clone() Skills {
	out := make(Skills, len(s))
	for i, c := range s {
		out[i] = SkillCategory{Name: c.Name, Skills: append([]string{}, c.Skills...)}
	}
	return out
}

// Index returns the position of the named category or -1.
func (s Skills) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Count returns the number of skills across all categories.
func (s Skills) Count() int {
	n := 0
	for _, c := range s {
		n += len(c.Skills)
	}
	return n
}

// All flattens the categories in order.
func (s Skills) All() []string {
	out := make([]string, 0, s.Count())
	for _, c := range s {
		out = append(out, c.Skills...)
	}
	return out
}

// UnmarshalYAML accepts a flat sequence of strings, a sequence of
// {name, skills} objects, or a mapping of category name to skills. Mapping
// order is kept.
func (s *Skills) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var flat []string
		var cats Skills
		for _, n := range value.Content {
			switch n.Kind {
			case yaml.ScalarNode:
				flat = append(flat, n.Value)
			case yaml.MappingNode:
				var c SkillCategory
				if err := n.Decode(&c); err != nil {
					return fmt.Errorf("skills: %w", err)
				}
				cats = append(cats, c)
			default:
				return fmt.Errorf("skills: line %d: unexpected %s", n.Line, n.Tag)
			}
		}
		*s = normalizeSkills(flat, cats)
	case yaml.MappingNode:
		var cats Skills
		for i := 0; i+1 < len(value.Content); i += 2 {
			name := value.Content[i].Value
			var list []string
			if err := value.Content[i+1].Decode(&list); err != nil {
				return fmt.Errorf("skills.%s: %w", name, err)
			}
			cats = append(cats, SkillCategory{Name: name, Skills: list})
		}
		*s = normalizeSkills(nil, cats)
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("skills: line %d: expected a list or mapping", value.Line)
		}
		*s = Skills{}
	default:
		return fmt.Errorf("skills: line %d: expected a list or mapping", value.Line)
	}
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML. Object keys are read with a token
// decoder so category order survives.
func (s *Skills) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = Skills{}
		return nil
	}
	switch b[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		var flat []string
		var cats Skills
		for _, r := range raw {
			r = bytes.TrimSpace(r)
			if len(r) > 0 && r[0] == '"' {
				var v string
				if err := json.Unmarshal(r, &v); err != nil {
					return fmt.Errorf("skills: %w", err)
				}
				flat = append(flat, v)
				continue
			}
			var c SkillCategory
			if err := json.Unmarshal(r, &c); err != nil {
				return fmt.Errorf("skills: %w", err)
			}
			cats = append(cats, c)
		}
		*s = normalizeSkills(flat, cats)
	case '{':
		dec := json.NewDecoder(bytes.NewReader(b))
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		var cats Skills
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("skills: %w", err)
			}
			name, _ := tok.(string)
			var list []string
			if err := dec.Decode(&list); err != nil {
				return fmt.Errorf("skills.%s: %w", name, err)
			}
			cats = append(cats, SkillCategory{Name: name, Skills: list})
		}
		*s = normalizeSkills(nil, cats)
	default:
		return fmt.Errorf("skills: expected a list or object")
	}
	return nil
}

// normalizeSkills trims names, merges repeated categories and drops empty or
// duplicate skills within a category.
func normalizeSkills(flat []string, cats Skills) Skills {
	out := Skills{}
	add := func(category string, skills []string) {
		category = strings.TrimSpace(category)
		if category == "" {
			category = FlatCategory
		}
		i := out.Index(category)
		if i < 0 {
			out = append(out, SkillCategory{Name: category, Skills: []string{}})
			i = len(out) - 1
		}
		for _, sk := range skills {
			sk = strings.TrimSpace(sk)
			if sk == "" || contains(out[i].Skills, sk) {
				continue
			}
			out[i].Skills = append(out[i].Skills, sk)
		}
	}
	if len(flat) > 0 {
		add(FlatCategory, flat)
	}
	for _, c := range cats {
		add(c.Name, c.Skills)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
