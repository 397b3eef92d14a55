package specsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/oemspec/go-specsheet/internal/fileutil"
)

// renderSurface abstracts the browser stage to allow testing without
// Chrome: it fills section templates slot by slot and rasterizes the
// assembled document. Bound markup comes back as the page's outer HTML
// so sections can be concatenated offline.
type renderSurface interface {
	BindSection(ctx context.Context, templateHTML string, ops []SlotOp) (string, error)
	RenderPDF(ctx context.Context, docHTML string) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ renderSurface = (*rodSurface)(nil)

// Page geometry of the printed sheet, in CSS pixels.
const (
	pageWidthPx  = 595
	pageHeightPx = 842
	pxPerInch    = 96.0
)

// applierJS mutates template slots addressed by data-layer name and
// returns the resulting document plus any slots it could not find.
// Single-target lookups report missing slots; all-target lookups
// tolerate zero matches.
const applierJS = `(ops) => {
	const missing = [];
	const targets = (op) => {
		let root = document;
		if (op.within) {
			root = document.querySelector('[data-layer="' + op.within + '"]');
			if (!root) {
				missing.push(op.within);
				return [];
			}
		}
		const sel = '[data-layer="' + op.layer + '"]';
		if (op.all) {
			return Array.from(root.querySelectorAll(sel));
		}
		const el = root.querySelector(sel);
		if (!el) {
			missing.push(op.within ? op.within + "/" + op.layer : op.layer);
			return [];
		}
		return [el];
	};
	for (const op of ops) {
		for (const el of targets(op)) {
			switch (op.kind) {
			case "text":
				el.textContent = op.text;
				break;
			case "html":
				el.innerHTML = op.text;
				break;
			case "show":
				el.style.display = "block";
				break;
			case "hide":
				el.style.display = "none";
				break;
			case "image": {
				const img = op.image;
				el.style.width = img.width + "px";
				el.style.height = img.height + "px";
				el.style.display = "flex";
				if (img.layout === "start") {
					el.style.justifyContent = "flex-start";
				} else {
					el.style.flexDirection = "column";
					el.style.justifyContent = "flex-end";
				}
				el.innerHTML = '<img src="' + img.src + '" />';
				break;
			}
			}
		}
	}
	return JSON.stringify({
		missing: missing,
		html: document.documentElement.outerHTML,
	});
}`

// rodSurface implements renderSurface using go-rod. One browser and one
// page are kept alive across sections; templates are loaded through
// temporary files so file:// image sources resolve during page load.
// Rod automatically downloads Chromium on first run if not found.
type rodSurface struct {
	timeout time.Duration
	browser *rod.Browser
	page    *rod.Page
}

// newRodSurface creates a rodSurface with the given per-navigation timeout.
func newRodSurface(timeout time.Duration) *rodSurface {
	return &rodSurface{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (s *rodSurface) ensureBrowser() error {
	if s.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	s.browser = rod.New().ControlURL(u)
	if err := s.browser.Connect(); err != nil {
		s.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// ensurePage lazily creates the shared page at the sheet's viewport.
func (s *rodSurface) ensurePage() error {
	if s.page != nil {
		return nil
	}
	if err := s.ensureBrowser(); err != nil {
		return err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             pageWidthPx,
		Height:            pageHeightPx,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = page.Close()
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	s.page = page
	return nil
}

// dropPage discards the shared page so the next operation starts fresh.
func (s *rodSurface) dropPage() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
}

// Close releases browser resources.
func (s *rodSurface) Close() error {
	s.dropPage()
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		return err
	}
	return nil
}

// navTimeout derives the navigation budget from the context deadline,
// capped at the surface's configured timeout.
func (s *rodSurface) navTimeout(ctx context.Context) (time.Duration, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}

// navigate loads HTML content into the shared page via a temporary file
// and waits for it, including file:// images, to finish loading.
func (s *rodSurface) navigate(ctx context.Context, content string) error {
	tmpPath, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer cleanup()

	timeout, err := s.navTimeout(ctx)
	if err != nil {
		return err
	}

	if err := s.page.Navigate("file://" + tmpPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := s.page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return nil
}

// BindSection loads a section template and applies its slot operations.
// A surface fault (closed page or lost session) is retried once on a
// fresh page before failing.
func (s *rodSurface) BindSection(ctx context.Context, templateHTML string, ops []SlotOp) (string, error) {
	markup, err := s.bindOnce(ctx, templateHTML, ops)
	if err != nil && isSurfaceFault(err) {
		s.dropPage()
		markup, err = s.bindOnce(ctx, templateHTML, ops)
	}
	return markup, err
}

func (s *rodSurface) bindOnce(ctx context.Context, templateHTML string, ops []SlotOp) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.ensurePage(); err != nil {
		return "", err
	}
	if err := s.navigate(ctx, templateHTML); err != nil {
		return "", err
	}

	timeout, err := s.navTimeout(ctx)
	if err != nil {
		return "", err
	}
	res, err := s.page.Timeout(timeout).Eval(applierJS, ops)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBind, err)
	}

	var applied struct {
		Missing []string `json:"missing"`
		HTML    string   `json:"html"`
	}
	if err := json.Unmarshal([]byte(res.Value.Str()), &applied); err != nil {
		return "", fmt.Errorf("%w: decoding applier result: %v", ErrBind, err)
	}
	if len(applied.Missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingSlot, strings.Join(applied.Missing, ", "))
	}
	return applied.HTML, nil
}

// RenderPDF loads the assembled document and prints it at the fixed
// sheet geometry with zero margins.
func (s *rodSurface) RenderPDF(ctx context.Context, docHTML string) ([]byte, error) {
	pdf, err := s.renderOnce(ctx, docHTML)
	if err != nil && isSurfaceFault(err) {
		s.dropPage()
		pdf, err = s.renderOnce(ctx, docHTML)
	}
	return pdf, err
}

func (s *rodSurface) renderOnce(ctx context.Context, docHTML string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensurePage(); err != nil {
		return nil, err
	}
	if err := s.navigate(ctx, docHTML); err != nil {
		return nil, err
	}

	reader, err := s.page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(pageWidthPx / pxPerInch),
		PaperHeight:     floatPtr(pageHeightPx / pxPerInch),
		MarginTop:       floatPtr(0),
		MarginBottom:    floatPtr(0),
		MarginLeft:      floatPtr(0),
		MarginRight:     floatPtr(0),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// isSurfaceFault reports whether an error indicates the page or browser
// session went away underneath us, which a fresh page can recover from.
func isSurfaceFault(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, fault := range []string{
		"session closed",
		"target closed",
		"page has been closed",
		"context was destroyed",
		"promise was collected",
	} {
		if strings.Contains(msg, fault) {
			return true
		}
	}
	return false
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
