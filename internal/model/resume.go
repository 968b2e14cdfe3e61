package model

// Go models for the data collected by the wizard. Date parts are kept as the
// strings the user typed; an empty string means "unset".

type PersonalInfo struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Email    string `json:"email" yaml:"email" validate:"required"`
	Phone    string `json:"phone" yaml:"phone" validate:"required"`
	Location string `json:"location" yaml:"location" validate:"required"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
}

type Education struct {
	ID          string `json:"id" yaml:"id"`
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	StartMonth  string `json:"startMonth" yaml:"startMonth"`
	StartYear   string `json:"startYear" yaml:"startYear" validate:"required"`
	EndMonth    string `json:"endMonth" yaml:"endMonth"`
	EndYear     string `json:"endYear" yaml:"endYear" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Experience struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Company     string `json:"company" yaml:"company" validate:"required"`
	StartMonth  string `json:"startMonth" yaml:"startMonth"`
	StartYear   string `json:"startYear" yaml:"startYear" validate:"required"`
	EndMonth    string `json:"endMonth" yaml:"endMonth"`
	EndYear     string `json:"endYear" yaml:"endYear"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Current     bool   `json:"current" yaml:"current"`
}

type Project struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Link        string `json:"link" yaml:"link"`
	StartMonth  string `json:"startMonth" yaml:"startMonth"`
	StartYear   string `json:"startYear" yaml:"startYear"`
	EndMonth    string `json:"endMonth" yaml:"endMonth"`
	EndYear     string `json:"endYear" yaml:"endYear"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Summary      string       `json:"summary" yaml:"summary"`
	Education    []Education  `json:"education" yaml:"education"`
	Experience   []Experience `json:"experience" yaml:"experience"`
	Skills       Skills       `json:"skills" yaml:"skills"`
	Projects     []Project    `json:"projects" yaml:"projects"`
}

// Empty returns the defaults the wizard starts from and resets to.
func Empty() ResumeData {
	return ResumeData{
		Education:  []Education{},
		Experience: []Experience{},
		Skills:     Skills{},
		Projects:   []Project{},
	}
}

// Clone returns a deep copy so callers never share backing arrays with the
// wizard's own record.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Education = append([]Education{}, d.Education...)
	out.Experience = append([]Experience{}, d.Experience...)
	out.Projects = append([]Project{}, d.Projects...)
	out.Skills = d.Skills.Clone()
	return out
}

// Bullet marks a line of a description as a list item.
const Bullet = "•"

// Months is the vocabulary offered by the month fields. Values are stored
// verbatim and never parsed.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
