package render

import "resume-wizard/internal/model"

type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
)

type Column string

const (
	ColumnMain    Column = "main"
	ColumnSidebar Column = "sidebar"
)

// Contact is one entry of the contact line. Href is empty for plain text.
type Contact struct {
	Label string
	Href  string
}

type Item struct {
	Title     string
	Subtitle  string
	Period    string
	Link      string
	LinkLabel string
	Text      string
	Bullets   []string
}

type TagGroup struct {
	Name string
	Tags []string
}

type Section struct {
	Kind    SectionKind
	Heading string
	Column  Column
	Text    string
	Items   []Item
	Groups  []TagGroup
}

// Document is the visual structure a template produces for one snapshot,
// plus its self-contained HTML.
type Document struct {
	Template model.TemplateID
	Name     string
	Headline string
	Contacts []Contact
	Sections []Section
	HTML     string
}

// Section returns the first section of the given kind.
func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

func (d Document) MainSections() []Section    { return d.column(ColumnMain) }
func (d Document) SidebarSections() []Section { return d.column(ColumnSidebar) }

func (d Document) column(c Column) []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Column == c {
			out = append(out, s)
		}
	}
	return out
}
