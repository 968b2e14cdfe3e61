package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-wizard/internal/domain"
	"resume-wizard/internal/model"
	"resume-wizard/internal/render"
)

// PDFRenderer turns self-contained HTML into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// DocumentRenderer picks a layout by id and renders a snapshot with it.
type DocumentRenderer interface {
	Render(data model.ResumeData, id model.TemplateID) (render.Document, error)
}

// ErrInvalidPDF is returned when the renderer keeps producing output without
// a PDF signature.
var ErrInvalidPDF = errors.New("invalid PDF output")

const (
	defaultAttempts = 3
	defaultBackoff  = time.Second
)

type Exporter struct {
	pdf      PDFRenderer
	docs     DocumentRenderer
	outDir   string
	attempts int
	backoff  time.Duration
	log      *zap.Logger
}

type ExporterOption func(*Exporter)

func WithAttempts(n int) ExporterOption {
	return func(e *Exporter) {
		if n > 0 {
			e.attempts = n
		}
	}
}

// WithBackoff sets the base delay; attempt i waits base<<i before the next.
func WithBackoff(base time.Duration) ExporterOption {
	return func(e *Exporter) {
		if base >= 0 {
			e.backoff = base
		}
	}
}

func WithExportLogger(l *zap.Logger) ExporterOption {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

func NewExporter(pdf PDFRenderer, docs DocumentRenderer, outDir string, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		pdf:      pdf,
		docs:     docs,
		outDir:   outDir,
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// unsafeName matches runs of whitespace and of characters that are not
// allowed in, or have meaning inside, a file name on common platforms.
var unsafeName = regexp.MustCompile(`[\s/\\:*?"<>|\x00-\x1f]+`)

// ExportFileName derives the document name from the subject's name, e.g.
// "Jane  Doe" gives "Jane_Doe_Resume.pdf" and "AC/DC Fan" gives
// "AC_DC_Fan_Resume.pdf". The result never contains a path separator.
func ExportFileName(name string) string {
	name = strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(name), "_"), "_.")
	if name == "" {
		return "Resume.pdf"
	}
	return name + "_Resume.pdf"
}

// NewExportJob builds a pending job over its own copy of data.
func NewExportJob(data model.ResumeData, tpl model.TemplateID) *domain.ExportJob {
	now := time.Now()
	return &domain.ExportJob{
		ID:        uuid.New(),
		Data:      data.Clone(),
		Template:  tpl,
		FileName:  ExportFileName(data.PersonalInfo.Name),
		Status:    domain.ExportPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Run renders the job's snapshot, converts it to PDF and writes it to the
// output directory. The outcome is recorded on job as well as returned.
func (e *Exporter) Run(ctx context.Context, job *domain.ExportJob) error {
	err := e.run(ctx, job)
	job.UpdatedAt = time.Now()
	if err != nil {
		job.Status = domain.ExportFailed
		job.Err = err
		e.log.Warn("export failed", zap.String("job", job.ID.String()), zap.Int("attempts", job.Attempts), zap.Error(err))
		return err
	}
	job.Status = domain.ExportCompleted
	e.log.Info("export completed", zap.String("job", job.ID.String()), zap.String("path", job.OutputPath))
	return nil
}

func (e *Exporter) run(ctx context.Context, job *domain.ExportJob) error {
	doc, err := e.docs.Render(job.Data, job.Template)
	if err != nil {
		return fmt.Errorf("render %s: %w", job.Template, err)
	}

	var pdfBytes []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		job.Attempts = i + 1
		pdfBytes, renderErr = e.pdf.RenderHTMLToPDF(ctx, doc.HTML)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdfBytes))
		}
		e.log.Debug("pdf attempt failed", zap.Int("attempt", i+1), zap.Error(renderErr))
		if i < e.attempts-1 {
			select {
			case <-time.After(e.backoff << i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return fmt.Errorf("pdf after %d attempts: %w", e.attempts, renderErr)
	}

	path, err := writeAtomic(e.outDir, job.FileName, pdfBytes)
	if err != nil {
		return err
	}
	job.OutputPath = path
	return nil
}

// Start runs the job in the background. The channel yields the finished job
// once and is then closed.
func (e *Exporter) Start(ctx context.Context, job *domain.ExportJob) <-chan *domain.ExportJob {
	done := make(chan *domain.ExportJob, 1)
	go func() {
		defer close(done)
		_ = e.Run(ctx, job)
		done <- job
	}()
	return done
}

// writeAtomic writes through a temp file in dir so a failed write never
// leaves a truncated document behind.
func writeAtomic(dir, name string, b []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("output file name %q is not a plain file name", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close pdf: %w", err)
	}
	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("move pdf into place: %w", err)
	}
	return dest, nil
}
