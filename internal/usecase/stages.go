package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"resume-wizard/internal/model"
)

// StageValidationResult holds validation state for a step
type StageValidationResult struct {
	Valid   bool
	Missing []string
}

func (r *StageValidationResult) miss(fields ...string) {
	if len(fields) == 0 {
		return
	}
	r.Valid = false
	r.Missing = append(r.Missing, fields...)
}

// validate only caches struct metadata; results are never remembered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so Missing reads like the data file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields turns validator errors into prefixed field paths.
func missingFields(prefix string, err error) []string {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{prefix + err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, prefix+fe.Field())
	}
	return out
}

// ValidateStep reports whether the wizard may leave step given the data and
// the selected template, and which fields hold it back. It has no side
// effects.
func ValidateStep(step Step, data model.ResumeData, tpl model.TemplateID) *StageValidationResult {
	result := &StageValidationResult{
		Valid:   true,
		Missing: []string{},
	}

	switch step {
	case StepWelcome, StepPreview:
		// always passable

	case StepPersonalInfo:
		result.miss(missingFields("personalInfo.", validate.Struct(data.PersonalInfo))...)

	case StepSummary:
		if strings.TrimSpace(data.Summary) == "" {
			result.miss("summary")
		}

	case StepEducation:
		if len(data.Education) == 0 {
			result.miss("education")
		}
		for i, e := range data.Education {
			result.miss(missingFields(fmt.Sprintf("education[%d].", i), validate.Struct(e))...)
		}

	case StepExperience:
		// endYear is optional: a current role leaves it empty
		if len(data.Experience) == 0 {
			result.miss("experience")
		}
		for i, e := range data.Experience {
			result.miss(missingFields(fmt.Sprintf("experience[%d].", i), validate.Struct(e))...)
		}

	case StepSkills:
		if data.Skills.Count() == 0 {
			result.miss("skills")
		}

	case StepProjects:
		if len(data.Projects) == 0 {
			result.miss("projects")
		}

	case StepTemplate:
		if tpl == "" {
			result.miss("template")
		}

	default:
		result.miss(fmt.Sprintf("unknown step %d", int(step)))
	}

	return result
}

// CanAdvance is ValidateStep reduced to its verdict.
func CanAdvance(step Step, data model.ResumeData, tpl model.TemplateID) bool {
	return ValidateStep(step, data, tpl).Valid
}
