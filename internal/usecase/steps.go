package usecase

import "fmt"

// Step is a 1-based position in the wizard.
type Step int

const (
	StepWelcome Step = iota + 1
	StepPersonalInfo
	StepSummary
	StepEducation
	StepExperience
	StepSkills
	StepProjects
	StepTemplate
	StepPreview
)

// StepCount is the number of screens; StepPreview is the terminal step.
const StepCount = int(StepPreview)

var stepNames = map[Step]string{
	StepWelcome:      "Welcome",
	StepPersonalInfo: "Personal Info",
	StepSummary:      "Summary",
	StepEducation:    "Education",
	StepExperience:   "Experience",
	StepSkills:       "Skills",
	StepProjects:     "Projects",
	StepTemplate:     "Template",
	StepPreview:      "Preview",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Steps returns every step in order.
func Steps() []Step {
	out := make([]Step, 0, StepCount)
	for s := StepWelcome; s <= StepPreview; s++ {
		out = append(out, s)
	}
	return out
}
