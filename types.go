package mdpress

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PDF engine constants.
const (
	// EngineChrome invokes an installed Chrome/Chromium binary as a
	// subprocess with print-to-PDF flags.
	EngineChrome = "chrome"

	// EngineRod drives a managed Chromium over the DevTools protocol.
	EngineRod = "rod"
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// isValidEngine checks if engine names a known PDF engine.
func isValidEngine(engine string) bool {
	switch engine {
	case EngineChrome, EngineRod:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string        // Markdown content (required)
	Title      string        // Document title for the HTML shell (optional)
	CSS        string        // Custom CSS appended after the built-in style (optional)
	OutputPath string        // Destination PDF path (required for Convert)
	Page       *PageSettings // Page settings (optional, nil = defaults)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout      time.Duration
	engine       string
	browserPaths []string
}

// defaultTimeout bounds the browser wait when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpress: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithEngine selects the PDF engine (EngineChrome or EngineRod).
// Panics on unknown engine names (programmer error; user-supplied values
// should be validated with ValidateEngine first).
func WithEngine(engine string) Option {
	if !isValidEngine(engine) {
		panic("mdpress: WithEngine: unknown engine " + engine)
	}
	return func(s *Service) {
		s.cfg.engine = engine
	}
}

// WithBrowserPaths substitutes the ordered list of filesystem locations
// probed for a Chrome/Chromium binary. The first existing path wins.
// Only the chrome engine consults this list.
func WithBrowserPaths(paths []string) Option {
	return func(s *Service) {
		s.cfg.browserPaths = paths
	}
}

// ValidateEngine checks a user-supplied engine name.
func ValidateEngine(engine string) error {
	if !isValidEngine(engine) {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, engine, EngineChrome, EngineRod)
	}
	return nil
}
