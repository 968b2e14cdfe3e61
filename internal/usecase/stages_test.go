package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-wizard/internal/model"
)

func TestValidateStep_PersonalInfo(t *testing.T) {
	d := model.Empty()
	d.PersonalInfo = model.PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Phone: "555", Location: "NYC"}

	res := ValidateStep(StepPersonalInfo, d, model.TemplateModern)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"personalInfo.title"}, res.Missing)

	d.PersonalInfo.Title = "Engineer"
	assert.True(t, CanAdvance(StepPersonalInfo, d, model.TemplateModern))
}

func TestValidateStep_Education(t *testing.T) {
	d := model.Empty()
	assert.False(t, CanAdvance(StepEducation, d, model.TemplateModern), "empty list")

	d.Education = []model.Education{{ID: "a", Degree: "BS", Institution: "MIT", StartYear: "2018", EndYear: "2022"}}
	assert.True(t, CanAdvance(StepEducation, d, model.TemplateModern))

	d.Education[0].EndYear = ""
	res := ValidateStep(StepEducation, d, model.TemplateModern)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"education[0].endYear"}, res.Missing)
}

func TestValidateStep_ExperienceAllowsMissingEndYear(t *testing.T) {
	d := model.Empty()
	d.Experience = []model.Experience{{ID: "x", Title: "SRE", Company: "Acme", StartYear: "2020", Description: "on-call", Current: true}}
	assert.True(t, CanAdvance(StepExperience, d, model.TemplateModern))

	d.Experience[0].Description = ""
	assert.False(t, CanAdvance(StepExperience, d, model.TemplateModern))
}

func TestValidateStep_Rules(t *testing.T) {
	empty := model.Empty()

	filled := model.Empty()
	filled.Summary = "Builds things."
	filled.Skills = model.Skills{{Name: "Languages", Skills: []string{"Go"}}}
	filled.Projects = []model.Project{{ID: "p"}}

	tests := []struct {
		name string
		step Step
		data model.ResumeData
		tpl  model.TemplateID
		want bool
	}{
		{"welcome", StepWelcome, empty, model.TemplateModern, true},
		{"preview", StepPreview, empty, model.TemplateModern, true},
		{"summary empty", StepSummary, empty, model.TemplateModern, false},
		{"summary whitespace", StepSummary, model.ResumeData{Summary: "  \n"}, model.TemplateModern, false},
		{"summary set", StepSummary, filled, model.TemplateModern, true},
		{"skills none", StepSkills, empty, model.TemplateModern, false},
		{"skills empty category", StepSkills, model.ResumeData{Skills: model.Skills{{Name: "Tools", Skills: []string{}}}}, model.TemplateModern, false},
		{"skills set", StepSkills, filled, model.TemplateModern, true},
		{"projects none", StepProjects, empty, model.TemplateModern, false},
		{"projects one blank entry", StepProjects, filled, model.TemplateModern, true},
		{"template set", StepTemplate, empty, model.TemplateCompact, true},
		{"template unset", StepTemplate, empty, "", false},
		{"unknown step", Step(42), filled, model.TemplateModern, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAdvance(tt.step, tt.data, tt.tpl))
		})
	}
}

func TestValidateStep_IsPure(t *testing.T) {
	d := model.Empty()
	d.Education = []model.Education{{ID: "a", Degree: "BS"}}
	before := d.Clone()

	for _, s := range Steps() {
		first := ValidateStep(s, d, model.TemplateModern)
		second := ValidateStep(s, d, model.TemplateModern)
		require.Equal(t, first, second, "step %s", s)
	}
	assert.Equal(t, before, d)
}
