// Package tui is the terminal front end of the wizard: one screen per step,
// a navigation bar and the preview with export.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"resume-wizard/internal/domain"
	"resume-wizard/internal/model"
	"resume-wizard/internal/render"
	"resume-wizard/internal/usecase"
)

// Exporter runs an export job in the background and delivers it, finished,
// on the returned channel.
type Exporter interface {
	Start(ctx context.Context, job *domain.ExportJob) <-chan *domain.ExportJob
}

type Config struct {
	Wizard   *usecase.Wizard
	Registry *render.Registry
	// Exporter may be nil, in which case download is reported as
	// unavailable.
	Exporter Exporter
	// BulletDescriptions turns on the bullet transform for experience
	// descriptions.
	BulletDescriptions bool
	// GlamourStyle is a glamour standard style name, or "auto".
	GlamourStyle string
	Logger       *zap.Logger
}

type exportDoneMsg struct {
	job *domain.ExportJob
}

type notice struct {
	text string
	err  bool
}

type Model struct {
	cfg      Config
	wizard   *usecase.Wizard
	screen   screen
	styles   Styles
	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	width  int
	height int

	exporting bool
	notice    notice
	ctx       context.Context
	log       *zap.Logger
}

func New(cfg Config) Model {
	if cfg.Wizard == nil {
		cfg.Wizard = usecase.NewWizard()
	}
	if cfg.Registry == nil {
		cfg.Registry = render.DefaultRegistry()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		cfg:      cfg,
		wizard:   cfg.Wizard,
		styles:   DefaultStyles(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:    80,
		height:   24,
		ctx:      context.Background(),
		log:      log,
	}
	m.progress.Width = 40
	m.screen = m.newScreen()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// newScreen builds the screen for the current step from a fresh snapshot.
func (m Model) newScreen() screen {
	w := m.wizard
	snap := w.Snapshot()
	switch w.Step() {
	case usecase.StepPersonalInfo:
		return newPersonalScreen(snap.PersonalInfo, w.SetPersonalInfo)
	case usecase.StepSummary:
		return newSummaryScreen(snap.Summary, w.SetSummary)
	case usecase.StepEducation:
		return newEntriesScreen(educationSpec(), snap.Education, w.SetEducation)
	case usecase.StepExperience:
		return newEntriesScreen(experienceSpec(m.cfg.BulletDescriptions), snap.Experience, w.SetExperience)
	case usecase.StepSkills:
		return newSkillsScreen(snap.Skills, w.SetSkills)
	case usecase.StepProjects:
		return newEntriesScreen(projectSpec(), snap.Projects, w.SetProjects)
	case usecase.StepTemplate:
		return newTemplateScreen(w.Template(), w.SetTemplate)
	case usecase.StepPreview:
		doc, err := m.cfg.Registry.Render(snap, w.Template())
		return newPreviewScreen(doc, err, m.cfg.GlamourStyle, m.contentWidth(), m.contentHeight())
	}
	return welcomeScreen{}
}

func (m Model) contentWidth() int {
	if w := m.width - 4; w > 20 {
		return w
	}
	return 20
}

// contentHeight leaves room for the header, navigation and help lines.
func (m Model) contentHeight() int {
	if h := m.height - 10; h > 5 {
		return h
	}
	return 5
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.wizard.Step() == usecase.StepPreview {
			m.screen = m.newScreen()
		}
		return m, nil

	case exportDoneMsg:
		return m.exportDone(msg.job), nil

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	cmd := m.screen.update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	step := m.wizard.Step()
	switch {
	case step == usecase.StepWelcome && key.Matches(msg, keys.Start):
		return m.advance(), nil, true
	case key.Matches(msg, keys.Next):
		if step != usecase.StepWelcome && m.wizard.CanAdvance() {
			return m.advance(), nil, true
		}
		return m, nil, true
	case key.Matches(msg, keys.Previous):
		if m.wizard.Retreat() {
			m.screen = m.newScreen()
		}
		return m, nil, true
	}

	if step != usecase.StepPreview {
		return m, nil, false
	}
	switch {
	case key.Matches(msg, keys.Template):
		m.wizard.SetTemplate(m.nextTemplate())
		m.screen = m.newScreen()
		return m, nil, true
	case key.Matches(msg, keys.Restart):
		m.wizard.Reset()
		m.notice = notice{}
		m.screen = m.newScreen()
		return m, nil, true
	case key.Matches(msg, keys.Export):
		mm, cmd := m.startExport()
		return mm, cmd, true
	}
	return m, nil, false
}

func (m Model) advance() Model {
	if m.wizard.Advance() {
		m.screen = m.newScreen()
	}
	return m
}

func (m Model) nextTemplate() model.TemplateID {
	ids := m.cfg.Registry.IDs()
	for i, id := range ids {
		if id == m.wizard.Template() {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

// startExport hands a detached job to the exporter. Whatever happens to it,
// step, data and template stay as they are.
func (m Model) startExport() (Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	if m.cfg.Exporter == nil {
		m.notice = notice{text: "PDF export is not available in this session.", err: true}
		return m, nil
	}
	job := m.wizard.ExportJob()
	m.log.Info("export requested", zap.String("job", job.ID.String()), zap.String("template", string(job.Template)))
	done := m.cfg.Exporter.Start(m.ctx, job)
	m.exporting = true
	m.notice = notice{text: "Exporting " + job.FileName + "..."}
	wait := func() tea.Msg {
		return exportDoneMsg{job: <-done}
	}
	return m, tea.Batch(wait, m.spinner.Tick)
}

func (m Model) exportDone(job *domain.ExportJob) Model {
	m.exporting = false
	switch {
	case job == nil:
		m.notice = notice{text: "Export finished without a result.", err: true}
	case job.Failed():
		m.notice = notice{text: fmt.Sprintf("Export failed: %v. Your resume is unchanged; try again.", job.Err), err: true}
	default:
		m.notice = notice{text: "Saved " + job.OutputPath}
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder
	nav := m.wizard.Navigation()

	header := m.styles.Title.Render("Resume Wizard") + "  " + m.styles.Step.Render(nav.Step.String())
	b.WriteString(header + "\n")
	if nav.ShowProgress {
		pct := float64(int(nav.Step)-1) / float64(nav.Total-1)
		b.WriteString(m.progress.ViewAs(pct) + " " +
			m.styles.Muted.Render(fmt.Sprintf("Step %d of %d", nav.Step, nav.Total)) + "\n")
	}
	b.WriteString("\n" + m.screen.view(m.styles) + "\n\n")

	b.WriteString(m.navBar(nav) + "\n")
	if nav.ShowNext && !nav.CanAdvance {
		b.WriteString(m.styles.Muted.Render(missingHint(m.wizard.Validation().Missing)) + "\n")
	}
	if hb := m.screen.help(); len(hb) > 0 {
		b.WriteString(m.help.ShortHelpView(hb) + "\n")
	}
	if m.notice.text != "" {
		text := m.notice.text
		if m.exporting {
			text = m.spinner.View() + " " + text
		}
		style := m.styles.Notice
		if m.notice.err {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(text) + "\n")
	}
	return m.styles.App.Render(b.String())
}

const maxMissingShown = 3

// missingHint lists the fields holding back Next, e.g.
// "Still needed: personalInfo.title".
func missingHint(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	shown := missing
	if len(shown) > maxMissingShown {
		shown = shown[:maxMissingShown]
	}
	hint := "Still needed: " + strings.Join(shown, ", ")
	if extra := len(missing) - len(shown); extra > 0 {
		hint += fmt.Sprintf(" and %d more", extra)
	}
	return hint
}

// navBar shows Previous from the second step on and Next on every step but
// the first and the last. Next is dimmed while the step is incomplete.
func (m Model) navBar(nav usecase.Navigation) string {
	var parts []string
	if nav.ShowPrevious {
		parts = append(parts, m.styles.NavOn.Render("ctrl+b ‹ Previous"))
	}
	if nav.ShowNext {
		style := m.styles.NavOn
		if !nav.CanAdvance {
			style = m.styles.NavOff
		}
		parts = append(parts, style.Render("Next › ctrl+n"))
	}
	if nav.Step == usecase.StepWelcome {
		parts = append(parts, m.styles.NavOn.Render("enter Get started"))
	}
	return strings.Join(parts, "    ")
}
