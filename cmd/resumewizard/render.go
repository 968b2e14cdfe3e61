package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resume-wizard/internal/config"
	"resume-wizard/internal/logging"
	"resume-wizard/internal/model"
	"resume-wizard/internal/render"
	"resume-wizard/internal/usecase"
)

type renderOptions struct {
	dataPath string
	template string
	out      string
	format   string
	strict   bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a resume file to HTML or PDF without the wizard",
		Example: `  resumewizard render --data resume.yaml --format html --out resume.html
  resumewizard render --data resume.json --template compact --format pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root.configPath, opts)
		},
	}
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "JSON or YAML resume file")
	cmd.Flags().StringVar(&opts.template, "template", "", "template id (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file; HTML goes to stdout and PDF to the export directory when empty")
	cmd.Flags().StringVar(&opts.format, "format", "html", "output format: html or pdf")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a wizard step would not be complete")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runRender(cmd *cobra.Command, configPath string, opts *renderOptions) error {
	format := strings.ToLower(opts.format)
	if format != "html" && format != "pdf" {
		return fmt.Errorf("unknown format %q (want html or pdf)", opts.format)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging, logging.Batch)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := model.LoadFile(opts.dataPath)
	if err != nil {
		return err
	}
	w := usecase.NewWizard(usecase.WithLogger(log))
	w.Load(data)

	tpl := model.TemplateID(cfg.Wizard.DefaultTemplate)
	if opts.template != "" {
		tpl = model.TemplateID(opts.template)
	}
	if _, ok := model.LookupTemplate(tpl); !ok {
		log.Warn("unknown template, using default", zap.String("template", string(tpl)))
	}
	w.SetTemplate(tpl)

	if err := checkSteps(w.Snapshot(), tpl, opts.strict, log); err != nil {
		return err
	}

	reg := render.DefaultRegistry()
	if format == "html" {
		doc, err := reg.Render(w.Snapshot(), tpl)
		if err != nil {
			return err
		}
		if opts.out == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.HTML)
			return err
		}
		if err := os.WriteFile(opts.out, []byte(doc.HTML), 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.out)
		return nil
	}

	job := w.ExportJob()
	if opts.out != "" {
		cfg.Export.OutputDir = filepath.Dir(opts.out)
		job.FileName = filepath.Base(opts.out)
	}
	exp, err := newExporter(cfg, reg, log)
	if err != nil {
		return err
	}
	if err := exp.Run(cmd.Context(), job); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", job.OutputPath)
	return nil
}

// checkSteps reports steps the wizard would not let the user leave. Only
// strict mode turns them into an error.
func checkSteps(data model.ResumeData, tpl model.TemplateID, strict bool, log *zap.Logger) error {
	var incomplete []string
	for _, s := range usecase.Steps() {
		res := usecase.ValidateStep(s, data, tpl)
		if res.Valid {
			continue
		}
		incomplete = append(incomplete, s.String())
		log.Warn("step incomplete", zap.Stringer("step", s), zap.Strings("missing", res.Missing))
	}
	if strict && len(incomplete) > 0 {
		return fmt.Errorf("incomplete steps: %s", strings.Join(incomplete, ", "))
	}
	return nil
}
