package usecase

import (
	"go.uber.org/zap"

	"resume-wizard/internal/domain"
	"resume-wizard/internal/model"
)

// Wizard owns the step index, the template choice and the resume data. All
// reads hand out copies; every setter replaces the record with a new one.
//
// Transitions only refuse out-of-range moves. Gating on CanAdvance is left to
// the surface driving the wizard.
type Wizard struct {
	step            Step
	template        model.TemplateID
	data            model.ResumeData
	defaultTemplate model.TemplateID
	log             *zap.Logger
}

type Option func(*Wizard)

func WithLogger(l *zap.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.log = l
		}
	}
}

// WithDefaultTemplate changes the template chosen at start and after Reset.
// Unknown ids are ignored.
func WithDefaultTemplate(id model.TemplateID) Option {
	return func(w *Wizard) {
		if _, ok := model.LookupTemplate(id); ok {
			w.defaultTemplate = id
		}
	}
}

func NewWizard(opts ...Option) *Wizard {
	w := &Wizard{defaultTemplate: model.DefaultTemplate, log: zap.NewNop()}
	for _, o := range opts {
		o(w)
	}
	w.Reset()
	return w
}

// Load replaces the data, e.g. with a file read at startup. Entries without
// an id, or repeating one seen earlier in their list, get a fresh id. Current
// roles lose their end date. Step and template are
// left alone.
func (w *Wizard) Load(data model.ResumeData) {
	d := data.Clone()
	if d.Education == nil {
		d.Education = []model.Education{}
	}
	if d.Experience == nil {
		d.Experience = []model.Experience{}
	}
	if d.Projects == nil {
		d.Projects = []model.Project{}
	}
	if d.Skills == nil {
		d.Skills = model.Skills{}
	}
	seen := map[string]bool{}
	for i := range d.Education {
		d.Education[i].ID = uniqueID(d.Education[i].ID, seen)
	}
	seen = map[string]bool{}
	for i := range d.Experience {
		d.Experience[i].ID = uniqueID(d.Experience[i].ID, seen)
		if d.Experience[i].Current {
			d.Experience[i].EndMonth = ""
			d.Experience[i].EndYear = ""
		}
	}
	seen = map[string]bool{}
	for i := range d.Projects {
		d.Projects[i].ID = uniqueID(d.Projects[i].ID, seen)
	}
	w.data = d
	w.log.Debug("resume data loaded",
		zap.Int("education", len(d.Education)),
		zap.Int("experience", len(d.Experience)),
		zap.Int("skills", d.Skills.Count()),
		zap.Int("projects", len(d.Projects)))
}

func uniqueID(id string, seen map[string]bool) string {
	if id == "" || seen[id] {
		id = NewEntryID()
	}
	seen[id] = true
	return id
}

func (w *Wizard) Step() Step                 { return w.step }
func (w *Wizard) Template() model.TemplateID { return w.template }

// Snapshot returns a copy of the current data.
func (w *Wizard) Snapshot() model.ResumeData { return w.data.Clone() }

// Advance moves one step forward. It reports false at the terminal step.
func (w *Wizard) Advance() bool {
	if int(w.step) >= StepCount {
		return false
	}
	from := w.step
	w.step++
	w.log.Debug("step advanced", zap.Stringer("from", from), zap.Stringer("to", w.step))
	return true
}

// Retreat moves one step back. It reports false at the first step.
func (w *Wizard) Retreat() bool {
	if w.step <= StepWelcome {
		return false
	}
	from := w.step
	w.step--
	w.log.Debug("step retreated", zap.Stringer("from", from), zap.Stringer("to", w.step))
	return true
}

// Reset starts over: first step, default template, empty data.
func (w *Wizard) Reset() {
	w.step = StepWelcome
	w.template = w.defaultTemplate
	w.data = model.Empty()
	w.log.Debug("wizard reset", zap.String("template", string(w.template)))
}

func (w *Wizard) CanAdvance() bool {
	return CanAdvance(w.step, w.data, w.template)
}

func (w *Wizard) Validation() *StageValidationResult {
	return ValidateStep(w.step, w.data, w.template)
}

// Navigation is what a navigation bar needs to draw itself.
type Navigation struct {
	Step         Step
	Total        int
	CanAdvance   bool
	IsTerminal   bool
	ShowNext     bool
	ShowPrevious bool
	ShowProgress bool
}

func (w *Wizard) Navigation() Navigation {
	terminal := int(w.step) == StepCount
	return Navigation{
		Step:         w.step,
		Total:        StepCount,
		CanAdvance:   w.CanAdvance(),
		IsTerminal:   terminal,
		ShowNext:     !terminal && w.step > StepWelcome,
		ShowPrevious: w.step > StepWelcome,
		ShowProgress: w.step > StepWelcome && !terminal,
	}
}

func (w *Wizard) SetPersonalInfo(p model.PersonalInfo) { w.data.PersonalInfo = p }

func (w *Wizard) SetSummary(s string) { w.data.Summary = s }

func (w *Wizard) SetEducation(list []model.Education) {
	w.data.Education = append([]model.Education{}, list...)
}

// SetExperience replaces the list, clearing end dates of current roles.
func (w *Wizard) SetExperience(list []model.Experience) {
	out := append([]model.Experience{}, list...)
	for i := range out {
		if out[i].Current {
			out[i].EndMonth = ""
			out[i].EndYear = ""
		}
	}
	w.data.Experience = out
}

func (w *Wizard) SetSkills(s model.Skills) { w.data.Skills = s.Clone() }

func (w *Wizard) SetProjects(list []model.Project) {
	w.data.Projects = append([]model.Project{}, list...)
}

// SetTemplate records the choice verbatim; rendering falls back for ids it
// does not know.
func (w *Wizard) SetTemplate(id model.TemplateID) {
	if id == w.template {
		return
	}
	w.log.Debug("template selected", zap.String("from", string(w.template)), zap.String("to", string(id)))
	w.template = id
}

// ExportJob packages the current snapshot and template for an Exporter. The
// job shares nothing with the wizard.
func (w *Wizard) ExportJob() *domain.ExportJob {
	return NewExportJob(w.Snapshot(), w.template)
}
