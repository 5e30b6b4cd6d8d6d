package bookforge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/Anilcodes01/bookforge/internal/browser"
	"github.com/Anilcodes01/bookforge/internal/process"
)

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ pdfRenderer = (*rodRenderer)(nil)

// A4 page dimensions in inches and fixed layout parameters.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5

	// renderScale applies a mild down-scale so wide content fits the page.
	renderScale = 0.9
)

// rodRenderer implements pdfRenderer using go-rod. The browser process is
// launched lazily on first render and owned exclusively by this renderer.
type rodRenderer struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	binOverride string
	navTimeout  time.Duration
	pdfTimeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given stage timeouts.
func newRodRenderer(binOverride string, navTimeout, pdfTimeout time.Duration) *rodRenderer {
	return &rodRenderer{
		binOverride: binOverride,
		navTimeout:  navTimeout,
		pdfTimeout:  pdfTimeout,
	}
}

// ensureBrowser lazily resolves the executable and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	bin, err := browser.Resolve(r.binOverride)
	if err != nil {
		switch {
		case errors.Is(err, browser.ErrExecutableNotFound):
			return fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
		case errors.Is(err, browser.ErrExecutableNotAccessible):
			return fmt.Errorf("%w: %v", ErrExecutableNotAccessible, err)
		default:
			return fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
		}
	}

	// Sandboxing is disabled for constrained and containerized hosts,
	// where Chrome's sandbox cannot acquire the namespaces it needs.
	l := launcher.New().
		Bin(bin).
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		r.killProcess()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = b
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it
// to PDF bytes with A4 layout. Navigation and PDF capture carry independent
// timeouts; neither stage retries.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	navTimeout := r.navTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < navTimeout {
			navTimeout = remaining
		}
		if navTimeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(navTimeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderTimeout, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.Timeout(r.pdfTimeout).PDF(buildPDFOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// Close releases browser resources. Idempotent, and safe to call when the
// process already exited or never fully started; secondary failures are
// logged, never returned as panics.
func (r *rodRenderer) Close() error {
	if r.browser == nil && r.launcher == nil {
		return nil
	}

	var closeErr error
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			log.Printf("bookforge: browser close: %v", err)
			closeErr = err
		}
		r.browser = nil
	}
	r.killProcess()
	return closeErr
}

// killProcess force-kills the launched browser process tree. Best effort;
// the process may already be gone.
func (r *rodRenderer) killProcess() {
	if r.launcher == nil {
		return
	}
	pid := r.launcher.PID()
	r.launcher.Kill()
	if pid > 0 {
		process.KillProcessGroup(pid)
	}
	r.launcher = nil
}

// buildPDFOptions constructs the fixed PrintToPDF parameters: A4 paper,
// uniform margins, background graphics, mild down-scale.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		Scale:           floatPtr(renderScale),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
