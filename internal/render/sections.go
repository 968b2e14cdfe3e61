package render

import (
	"strings"

	"resume-wizard/internal/model"
)

func contacts(p model.PersonalInfo, websiteLabel string) []Contact {
	var out []Contact
	if p.Email != "" {
		out = append(out, Contact{Label: p.Email, Href: "mailto:" + p.Email})
	}
	if p.Phone != "" {
		out = append(out, Contact{Label: p.Phone})
	}
	if p.Location != "" {
		out = append(out, Contact{Label: p.Location})
	}
	if p.LinkedIn != "" {
		out = append(out, Contact{Label: "LinkedIn", Href: Href(p.LinkedIn)})
	}
	if p.Website != "" {
		label := websiteLabel
		if label == "" {
			label = LinkLabel(p.Website)
		}
		out = append(out, Contact{Label: label, Href: Href(p.Website)})
	}
	return out
}

// describe splits a description into free text or bullets. Once any line is
// bulleted every non-empty line is treated as a bullet.
func describe(desc string) (string, []string) {
	lines := strings.Split(desc, "\n")
	bulleted := false
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), model.Bullet) {
			bulleted = true
			break
		}
	}
	if !bulleted {
		return strings.TrimSpace(desc), nil
	}
	var bullets []string
	for _, l := range lines {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), model.Bullet))
		if l != "" {
			bullets = append(bullets, l)
		}
	}
	return "", bullets
}

func summarySection(summary string, col Column) (Section, bool) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return Section{}, false
	}
	return Section{Kind: SectionSummary, Heading: "Professional Summary", Column: col, Text: summary}, true
}

func experienceSection(list []model.Experience, months bool, col Column) (Section, bool) {
	if len(list) == 0 {
		return Section{}, false
	}
	s := Section{Kind: SectionExperience, Heading: "Work Experience", Column: col}
	for _, e := range list {
		text, bullets := describe(e.Description)
		s.Items = append(s.Items, Item{
			Title:    e.Title,
			Subtitle: e.Company,
			Period:   FormatPeriod(e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.Current, months),
			Text:     text,
			Bullets:  bullets,
		})
	}
	return s, true
}

func educationSection(list []model.Education, months bool, col Column) (Section, bool) {
	if len(list) == 0 {
		return Section{}, false
	}
	s := Section{Kind: SectionEducation, Heading: "Education", Column: col}
	for _, e := range list {
		s.Items = append(s.Items, Item{
			Title:    e.Degree,
			Subtitle: e.Institution,
			Period:   FormatPeriod(e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, false, months),
			Text:     strings.TrimSpace(e.Description),
		})
	}
	return s, true
}

func projectsSection(list []model.Project, months bool, col Column) (Section, bool) {
	if len(list) == 0 {
		return Section{}, false
	}
	s := Section{Kind: SectionProjects, Heading: "Projects", Column: col}
	for _, p := range list {
		text, bullets := describe(p.Description)
		s.Items = append(s.Items, Item{
			Title:     p.Title,
			Period:    FormatPeriod(p.StartMonth, p.StartYear, p.EndMonth, p.EndYear, false, months),
			Link:      Href(p.Link),
			LinkLabel: LinkLabel(p.Link),
			Text:      text,
			Bullets:   bullets,
		})
	}
	return s, true
}

// skillsSection drops empty categories. When grouped is false all skills are
// shown as one tag cloud.
func skillsSection(skills model.Skills, grouped bool, col Column) (Section, bool) {
	if skills.Count() == 0 {
		return Section{}, false
	}
	s := Section{Kind: SectionSkills, Heading: "Skills", Column: col}
	if !grouped {
		s.Groups = []TagGroup{{Tags: skills.All()}}
		return s, true
	}
	for _, c := range skills {
		if len(c.Skills) == 0 {
			continue
		}
		name := c.Name
		if len(skills) == 1 && name == model.FlatCategory {
			name = ""
		}
		s.Groups = append(s.Groups, TagGroup{Name: name, Tags: append([]string{}, c.Skills...)})
	}
	return s, true
}
