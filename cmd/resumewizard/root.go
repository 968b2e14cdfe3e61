package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resume-wizard/internal/adapter/tui"
	"resume-wizard/internal/config"
	"resume-wizard/internal/logging"
	"resume-wizard/internal/model"
	"resume-wizard/internal/render"
	"resume-wizard/internal/usecase"
	infra "resume-wizard/pkg/infrastructure"
)

type rootOptions struct {
	configPath string
	dataPath   string
	template   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "resumewizard",
		Short: "Build a resume step by step and export it as PDF",
		Long: `resumewizard walks through personal details, summary, education,
experience, skills and projects, then previews the resume in one of the
available templates and exports it as a PDF.

Run without arguments to start the interactive wizard.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "start from a JSON or YAML resume file")
	cmd.Flags().StringVar(&opts.template, "template", "", "template to start with (overrides config)")

	cmd.AddCommand(newRenderCmd(opts), newTemplatesCmd())
	return cmd
}

// newExporter wires the chromedp renderer behind the exporter using the
// export section of cfg.
func newExporter(cfg *config.Config, reg *render.Registry, log *zap.Logger) (*usecase.Exporter, error) {
	paper, err := infra.PaperByName(cfg.Export.Paper)
	if err != nil {
		return nil, err
	}
	pdf := infra.NewChromedpRenderer(cfg.Export.ChromePath, paper, cfg.GetExportTimeout())
	return usecase.NewExporter(pdf, reg, cfg.Export.OutputDir,
		usecase.WithAttempts(cfg.Export.Attempts),
		usecase.WithExportLogger(log),
	), nil
}

func runWizard(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging, logging.Interactive)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tpl := model.TemplateID(cfg.Wizard.DefaultTemplate)
	if opts.template != "" {
		tpl = model.TemplateID(opts.template)
	}
	w := usecase.NewWizard(usecase.WithLogger(log), usecase.WithDefaultTemplate(tpl))
	if opts.dataPath != "" {
		data, err := model.LoadFile(opts.dataPath)
		if err != nil {
			return err
		}
		w.Load(data)
	}

	reg := render.DefaultRegistry()
	exp, err := newExporter(cfg, reg, log)
	if err != nil {
		return err
	}

	m := tui.New(tui.Config{
		Wizard:             w,
		Registry:           reg,
		Exporter:           exp,
		BulletDescriptions: cfg.Wizard.BulletDescriptions,
		GlamourStyle:       "auto",
		Logger:             log,
	})
	log.Info("wizard started", zap.String("template", string(w.Template())))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	return nil
}
