package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/mvarela/cv-alchemist/internal/templates"
)

// Letter page geometry in inches.
const (
	paperWidth   = 8.5
	paperHeight  = 11
	sideMargin   = 0.75
	topMargin    = 0.6
	bottomMargin = 0.6
)

// DefaultTimeout bounds a single print run, browser startup included.
const DefaultTimeout = 60 * time.Second

// RenderError represents a failure while printing a document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Renderer prints HTML documents to PDF with a headless browser.
type Renderer struct {
	// ChromePath overrides browser discovery when set.
	ChromePath string
	// Timeout bounds each print run. Zero means DefaultTimeout.
	Timeout time.Duration
}

// RenderPDF builds the styled HTML for the CV text and prints it to a
// letter-size PDF.
func (r *Renderer) RenderPDF(ctx context.Context, content string, tpl templates.CVTemplate, title string) ([]byte, error) {
	if content == "" {
		return nil, &RenderError{Message: "no content to render"}
	}
	html := BuildHTML(content, tpl, title)
	return r.PrintHTML(ctx, html)
}

// PrintHTML prints a complete HTML document to PDF.
func (r *Renderer) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cv-alchemist-")
	if err != nil {
		return nil, &RenderError{Message: "failed to stage document", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to stage document", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginLeft(sideMargin).
				WithMarginRight(sideMargin).
				WithMarginTop(topMargin).
				WithMarginBottom(bottomMargin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless browser print failed", Cause: err}
	}

	return pdfBuf, nil
}
