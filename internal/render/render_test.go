package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-wizard/internal/model"
)

func sampleData() model.ResumeData {
	d := model.Empty()
	d.PersonalInfo = model.PersonalInfo{
		Name: "Jane Doe", Title: "Engineer", Email: "jane@x.com", Phone: "555", Location: "NYC",
		LinkedIn: "linkedin.com/in/jane", Website: "https://www.jane.dev/about",
	}
	d.Summary = "Builds reliable systems."
	d.Experience = []model.Experience{{
		ID: "e1", Title: "SRE", Company: "Acme", StartMonth: "March", StartYear: "2020",
		EndMonth: "May", EndYear: "2021", Description: "• ran on-call\n• cut latency", Current: true,
	}}
	d.Education = []model.Education{{ID: "ed1", Degree: "BS", Institution: "MIT", StartYear: "2018", EndYear: "2022"}}
	d.Skills = model.Skills{{Name: "Languages", Skills: []string{"Go", "SQL"}}, {Name: "Empty", Skills: []string{}}}
	d.Projects = []model.Project{{ID: "p1", Title: "wizard", Link: "github.com/jane/wizard", StartYear: "2023"}}
	return d
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		name                     string
		sm, sy, em, ey           string
		current, months          bool
		want                     string
	}{
		{"year only", "", "2018", "", "2022", false, true, "2018 - 2022"},
		{"months", "January", "2018", "June", "2022", false, true, "January 2018 - June 2022"},
		{"months hidden", "January", "2018", "June", "2022", false, false, "2018 - 2022"},
		{"current", "March", "2020", "May", "2021", true, true, "March 2020 - Present"},
		{"no end", "", "2019", "", "", false, true, "2019"},
		{"nothing", "", "", "", "", false, true, ""},
		{"current without start", "", "", "", "", true, true, ""},
		{"end without start", "", "", "June", "2022", false, true, ""},
		{"start month only", "March", "", "", "", true, true, "March - Present"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPeriod(tt.sm, tt.sy, tt.em, tt.ey, tt.current, tt.months))
		})
	}
}

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "github.com", LinkLabel("https://www.github.com/jane"))
	assert.Equal(t, "jane.dev", LinkLabel("jane.dev"))
	assert.Equal(t, "example.co.uk", LinkLabel("blog.example.co.uk/post"))
	assert.Equal(t, "", LinkLabel("  "))
}

func TestUnknownTemplateFallsBackToModern(t *testing.T) {
	reg := DefaultRegistry()
	data := sampleData()

	want, err := reg.Render(data, model.TemplateModern)
	require.NoError(t, err)
	got, err := reg.Render(data, "unknown-template-id")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fallback render differs (-modern +unknown):\n%s", diff)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	reg := DefaultRegistry()
	for _, id := range reg.IDs() {
		a, err := reg.Render(sampleData(), id)
		require.NoError(t, err)
		b, err := reg.Render(sampleData(), id)
		require.NoError(t, err)
		assert.Equal(t, a, b, "template %s", id)
	}
}

func TestModernSections(t *testing.T) {
	doc, err := NewModern().Render(sampleData())
	require.NoError(t, err)

	var kinds []SectionKind
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SectionKind{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects}, kinds)

	exp, _ := doc.Section(SectionExperience)
	assert.Equal(t, "March 2020 - Present", exp.Items[0].Period)
	assert.Equal(t, []string{"ran on-call", "cut latency"}, exp.Items[0].Bullets)

	skills, _ := doc.Section(SectionSkills)
	require.Len(t, skills.Groups, 1, "empty categories are dropped")
	assert.Equal(t, "Languages", skills.Groups[0].Name)

	assert.Contains(t, doc.HTML, "<style>")
	assert.Contains(t, doc.HTML, "Portfolio")
	assert.Contains(t, doc.HTML, "Work Experience")
}

func TestCompactColumns(t *testing.T) {
	doc, err := NewCompact().Render(sampleData())
	require.NoError(t, err)

	var side, main []SectionKind
	for _, s := range doc.SidebarSections() {
		side = append(side, s.Kind)
	}
	for _, s := range doc.MainSections() {
		main = append(main, s.Kind)
	}
	assert.Equal(t, []SectionKind{SectionSkills, SectionEducation}, side)
	assert.Equal(t, []SectionKind{SectionSummary, SectionExperience, SectionProjects}, main)

	exp, _ := doc.Section(SectionExperience)
	assert.Equal(t, "2020 - Present", exp.Items[0].Period)

	proj, _ := doc.Section(SectionProjects)
	assert.Equal(t, "github.com", proj.Items[0].LinkLabel)
	assert.Equal(t, "https://github.com/jane/wizard", proj.Items[0].Link)

	labels := make([]string, 0, len(doc.Contacts))
	for _, c := range doc.Contacts {
		labels = append(labels, c.Label)
	}
	assert.Contains(t, labels, "jane.dev")
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	for _, r := range []Renderer{NewModern(), NewCompact()} {
		doc, err := r.Render(model.Empty())
		require.NoError(t, err)
		assert.Empty(t, doc.Sections, "template %s", r.ID())
		assert.NotContains(t, doc.HTML, "<h2>", "template %s", r.ID())
	}
}

func TestHTMLEscapesUserInput(t *testing.T) {
	d := model.Empty()
	d.PersonalInfo.Name = "<script>alert(1)</script>"
	doc, err := NewModern().Render(d)
	require.NoError(t, err)
	assert.NotContains(t, doc.HTML, "<script>")
}

func TestMarkdown(t *testing.T) {
	doc, err := NewModern().Render(sampleData())
	require.NoError(t, err)
	md := Markdown(doc)

	assert.True(t, strings.HasPrefix(md, "# Jane Doe\n"))
	assert.Contains(t, md, "## Work Experience")
	assert.Contains(t, md, "### SRE — Acme")
	assert.Contains(t, md, "- cut latency")
	assert.Contains(t, md, "**Languages:** Go, SQL")
}
