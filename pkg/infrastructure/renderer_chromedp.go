package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Paper is a page size in inches.
type Paper struct {
	Width  float64
	Height float64
}

var (
	PaperLetter = Paper{Width: 8.5, Height: 11}
	// A4: 210mm x 297mm
	PaperA4 = Paper{Width: 8.27, Height: 11.69}
)

// PaperByName resolves "letter" or "a4", case-insensitively.
func PaperByName(name string) (Paper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "letter":
		return PaperLetter, nil
	case "a4":
		return PaperA4, nil
	}
	return Paper{}, fmt.Errorf("unknown paper size %q", name)
}

// ChromedpRenderer prints HTML to PDF with a headless Chrome started per
// call.
type ChromedpRenderer struct {
	chromePath string
	paper      Paper
	timeout    time.Duration
}

// NewChromedpRenderer uses the Chrome found on PATH when chromePath is empty.
// A non-positive timeout defaults to one minute.
func NewChromedpRenderer(chromePath string, paper Paper, timeout time.Duration) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if paper.Width <= 0 || paper.Height <= 0 {
		paper = PaperLetter
	}
	return &ChromedpRenderer{chromePath: chromePath, paper: paper, timeout: timeout}
}

func (r *ChromedpRenderer) execOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	return opts
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, r.execOptions()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	tctx, cancelTimeout := context.WithTimeout(cctx, r.timeout)
	defer cancelTimeout()

	// the page is loaded from disk; the directory is the only resource the
	// export holds and goes away with the call
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(tctx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(r.paper.Width).
				WithPaperHeight(r.paper.Height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}
	return pdfBuf, nil
}
