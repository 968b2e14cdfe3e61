package render

import (
	"html/template"

	"resume-wizard/internal/model"
)

// Compact is a two-column layout. The sidebar carries contact details,
// skills as one tag cloud and education; the main column carries summary,
// experience and projects. Dates are shown as years only.
type Compact struct {
	tpl *template.Template
}

func NewCompact() *Compact { return &Compact{tpl: parseLayout("compact.html")} }

func (c *Compact) ID() model.TemplateID { return model.TemplateCompact }

func (c *Compact) Render(data model.ResumeData) (Document, error) {
	doc := Document{
		Template: model.TemplateCompact,
		Name:     data.PersonalInfo.Name,
		Headline: data.PersonalInfo.Title,
		Contacts: contacts(data.PersonalInfo, ""),
	}
	add := func(s Section, ok bool) {
		if ok {
			doc.Sections = append(doc.Sections, s)
		}
	}
	add(skillsSection(data.Skills, false, ColumnSidebar))
	add(educationSection(data.Education, false, ColumnSidebar))
	add(summarySection(data.Summary, ColumnMain))
	add(experienceSection(data.Experience, false, ColumnMain))
	add(projectsSection(data.Projects, false, ColumnMain))

	html, err := executeHTML(c.tpl, doc)
	if err != nil {
		return Document{}, err
	}
	doc.HTML = html
	return doc, nil
}
