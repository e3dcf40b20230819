package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RasterizationError is the typed failure the caller uses to tell "PDF
// could not be produced" apart from a successful but empty buffer, and to
// decide on an application-level fallback.
type RasterizationError struct {
	Stage string
	Err   error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("rasterization failed at %s: %v", e.Stage, e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }

const (
	renderTimeout = 60 * time.Second
	// settle delay after the DOM is ready so fonts and inline images finish
	// loading before printing
	settleDelay = 300 * time.Millisecond
)

type ChromedpRenderer struct {
	run func(ctx context.Context, actions ...chromedp.Action) error
}

func NewChromedpRenderer() *ChromedpRenderer {
	return &ChromedpRenderer{run: chromedp.Run}
}

// RenderHTMLToPDF loads the composed HTML in an isolated headless Chrome
// and prints it to a PDF buffer sized to the requested page format. Margins
// are zero: the HTML already bakes them in. The browser context and the
// temp dir holding the page are released on every exit path.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string, format domain.PageFormat) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, renderTimeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, &RasterizationError{Stage: "prepare", Err: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RasterizationError{Stage: "prepare", Err: err}
	}

	width, height := format.PaperSize()

	var pdfBuf []byte
	htmlURL := "file://" + htmlPath
	err = r.run(ctx2,
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RasterizationError{Stage: "render", Err: err}
	}
	if !strings.HasPrefix(string(pdfBuf), "%PDF") {
		return nil, &RasterizationError{Stage: "validate", Err: fmt.Errorf("invalid PDF output (len=%d)", len(pdfBuf))}
	}
	return pdfBuf, nil
}
