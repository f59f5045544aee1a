package mdpress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/mdpress/mdpress/internal/fileutil"
	"github.com/mdpress/mdpress/internal/hints"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. The spawned process is
// placed in its own process group so that a timeout kills Chrome's child
// processes too, not just the launcher.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- binary comes from a fixed candidate list
	setProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting %s: %w", name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		killProcessGroup(cmd.Process.Pid)
		<-done
		return stdout.String(), stderr.String(), ctx.Err()
	case err := <-done:
		return stdout.String(), stderr.String(), err
	}
}

// DefaultBrowserPaths returns the ordered list of well-known filesystem
// locations probed for a Chrome/Chromium binary on the current OS.
// The first existing path wins; the order is deterministic.
func DefaultBrowserPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	case "windows":
		return []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
		}
	}
}

// chromeConverter converts HTML to PDF by invoking an installed
// Chrome/Chromium binary with print-to-PDF flags.
type chromeConverter struct {
	candidates []string
	runner     CommandRunner
	timeout    time.Duration
}

// newChromeConverter creates a chromeConverter. An empty candidates slice
// means the OS defaults from DefaultBrowserPaths.
func newChromeConverter(timeout time.Duration, candidates []string) *chromeConverter {
	if len(candidates) == 0 {
		candidates = DefaultBrowserPaths()
	}
	return &chromeConverter{
		candidates: candidates,
		runner:     &ExecRunner{},
		timeout:    timeout,
	}
}

// findBrowser probes the candidate paths in order and returns the first
// that exists. The error lists every probed location.
func (c *chromeConverter) findBrowser() (string, error) {
	for _, path := range c.candidates {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: probed %s%s",
		ErrBrowserNotFound, strings.Join(c.candidates, ", "), hints.ForBrowserNotFound())
}

// ToPDF converts HTML content to a PDF file at outputPath using headless
// Chrome. The HTML is written to a temporary file, Chrome prints it to a
// temporary PDF, and the result is moved to outputPath (overwriting).
// Both temporary files are removed regardless of outcome.
func (c *chromeConverter) ToPDF(ctx context.Context, htmlContent, outputPath string) error {
	// Discovery failure must surface before any process spawn.
	bin, err := c.findBrowser()
	if err != nil {
		return err
	}

	htmlPath, cleanupHTML, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanupHTML()

	// Chrome writes to its own output path; the PDF is relocated afterward.
	// MoveFile removes it on success; this covers failure paths.
	pdfPath := fileutil.ReplaceExtension(htmlPath, ".pdf")
	defer func() { _ = os.Remove(pdfPath) }()

	args := []string{
		"--headless",
		"--disable-gpu",
		"--no-pdf-header-footer",
		"--print-to-pdf=" + pdfPath,
	}
	if hints.InCI() || hints.IsInContainer() {
		args = append(args, "--no-sandbox")
	}
	args = append(args, "file://"+htmlPath)

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, stderr, err := c.runner.Run(runCtx, bin, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: timed out after %s%s", ErrBrowserRun, c.timeout, hints.ForTimeout())
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %v: %s", ErrBrowserRun, err, msg)
		}
		return fmt.Errorf("%w: %v", ErrBrowserRun, err)
	}

	if !fileutil.FileExists(pdfPath) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s", ErrPDFMissing, msg)
		}
		return fmt.Errorf("%w: browser exited cleanly but wrote nothing", ErrPDFMissing)
	}

	if err := fileutil.MoveFile(pdfPath, outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return nil
}

// Close implements pdfConverter. The chrome engine holds no resources
// between conversions.
func (c *chromeConverter) Close() error {
	return nil
}
