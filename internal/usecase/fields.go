package usecase

import "resume-wizard/internal/model"

// Field names an editable string field of a list entry. The values match the
// json names of the model.
type Field string

const (
	FieldDegree      Field = "degree"
	FieldInstitution Field = "institution"
	FieldTitle       Field = "title"
	FieldCompany     Field = "company"
	FieldLink        Field = "link"
	FieldStartMonth  Field = "startMonth"
	FieldStartYear   Field = "startYear"
	FieldEndMonth    Field = "endMonth"
	FieldEndYear     Field = "endYear"
	FieldDescription Field = "description"
)

func educationField(e *model.Education, f Field) *string {
	switch f {
	case FieldDegree:
		return &e.Degree
	case FieldInstitution:
		return &e.Institution
	case FieldStartMonth:
		return &e.StartMonth
	case FieldStartYear:
		return &e.StartYear
	case FieldEndMonth:
		return &e.EndMonth
	case FieldEndYear:
		return &e.EndYear
	case FieldDescription:
		return &e.Description
	}
	return nil
}

func experienceField(e *model.Experience, f Field) *string {
	switch f {
	case FieldTitle:
		return &e.Title
	case FieldCompany:
		return &e.Company
	case FieldStartMonth:
		return &e.StartMonth
	case FieldStartYear:
		return &e.StartYear
	case FieldEndMonth:
		return &e.EndMonth
	case FieldEndYear:
		return &e.EndYear
	case FieldDescription:
		return &e.Description
	}
	return nil
}

func projectField(p *model.Project, f Field) *string {
	switch f {
	case FieldTitle:
		return &p.Title
	case FieldLink:
		return &p.Link
	case FieldStartMonth:
		return &p.StartMonth
	case FieldStartYear:
		return &p.StartYear
	case FieldEndMonth:
		return &p.EndMonth
	case FieldEndYear:
		return &p.EndYear
	case FieldDescription:
		return &p.Description
	}
	return nil
}

func EducationValue(e model.Education, f Field) string {
	if p := educationField(&e, f); p != nil {
		return *p
	}
	return ""
}

func ExperienceValue(e model.Experience, f Field) string {
	if p := experienceField(&e, f); p != nil {
		return *p
	}
	return ""
}

func ProjectValue(p model.Project, f Field) string {
	if v := projectField(&p, f); v != nil {
		return *v
	}
	return ""
}
