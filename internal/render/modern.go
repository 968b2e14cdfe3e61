package render

import (
	"html/template"

	"resume-wizard/internal/model"
)

// Modern is a single-column layout: summary, experience, education, skills
// grouped by category, then projects. Dates keep their months.
type Modern struct {
	tpl *template.Template
}

func NewModern() *Modern { return &Modern{tpl: parseLayout("modern.html")} }

func (m *Modern) ID() model.TemplateID { return model.TemplateModern }

func (m *Modern) Render(data model.ResumeData) (Document, error) {
	doc := Document{
		Template: model.TemplateModern,
		Name:     data.PersonalInfo.Name,
		Headline: data.PersonalInfo.Title,
		Contacts: contacts(data.PersonalInfo, "Portfolio"),
	}
	add := func(s Section, ok bool) {
		if ok {
			doc.Sections = append(doc.Sections, s)
		}
	}
	add(summarySection(data.Summary, ColumnMain))
	add(experienceSection(data.Experience, true, ColumnMain))
	add(educationSection(data.Education, true, ColumnMain))
	add(skillsSection(data.Skills, true, ColumnMain))
	add(projectsSection(data.Projects, true, ColumnMain))

	html, err := executeHTML(m.tpl, doc)
	if err != nil {
		return Document{}, err
	}
	doc.HTML = html
	return doc, nil
}
