package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/fileutil"
)

// ErrInvalidTimeout indicates an unparseable or non-positive timeout value.
var ErrInvalidTimeout = errors.New("invalid timeout")

// runParams holds the fully resolved parameters for one conversion.
// Precedence: flags override config values, which override defaults.
type runParams struct {
	inputPath    string
	outputPath   string
	stylePath    string
	engine       string
	timeout      time.Duration
	browserPaths []string
	page         *mdpress.PageSettings
	htmlOnly     bool
	keepHTML     bool
	quiet        bool
	verbose      bool
}

// resolveParams merges flags, config, and defaults into runParams.
func resolveParams(flags *cliFlags, positional []string, cfg *config.Config) (*runParams, error) {
	inputPath := positional[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return nil, err
	}

	outputPath, err := resolveOutputPath(flags, positional, inputPath)
	if err != nil {
		return nil, err
	}

	engine := firstNonEmpty(flags.engine, cfg.Engine, mdpress.EngineChrome)
	if err := mdpress.ValidateEngine(engine); err != nil {
		return nil, err
	}

	timeout, err := resolveTimeout(firstNonEmpty(flags.timeout, cfg.Timeout))
	if err != nil {
		return nil, err
	}

	page, err := resolvePage(flags, cfg)
	if err != nil {
		return nil, err
	}

	return &runParams{
		inputPath:    inputPath,
		outputPath:   outputPath,
		stylePath:    firstNonEmpty(flags.style, cfg.Style),
		engine:       engine,
		timeout:      timeout,
		browserPaths: resolveBrowserPaths(flags, cfg),
		page:         page,
		htmlOnly:     flags.htmlOnly,
		keepHTML:     flags.html || cfg.HTML,
		quiet:        flags.quiet,
		verbose:      flags.verbose,
	}, nil
}

// resolveOutputPath picks the destination: --output flag, second positional
// argument, or the input path with its extension replaced.
func resolveOutputPath(flags *cliFlags, positional []string, inputPath string) (string, error) {
	if flags.output != "" && len(positional) == 2 {
		return "", fmt.Errorf("%w: output given both as argument and --output", ErrInvalidArgs)
	}
	if flags.output != "" {
		return flags.output, nil
	}
	if len(positional) == 2 {
		return positional[1], nil
	}

	ext := ".pdf"
	if flags.htmlOnly {
		ext = ".html"
	}
	return fileutil.ReplaceExtension(inputPath, ext), nil
}

// resolveTimeout parses a duration string; empty means library default.
func resolveTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, value)
	}
	return d, nil
}

// resolveBrowserPaths builds the probe list for the chrome engine.
// An explicit binary (flag or config) is probed before the candidate list;
// config paths replace the OS defaults, preserving first-match-wins order.
func resolveBrowserPaths(flags *cliFlags, cfg *config.Config) []string {
	explicit := firstNonEmpty(flags.browser, cfg.Browser.Path)

	base := cfg.Browser.Paths
	if len(base) == 0 {
		if explicit == "" {
			return nil // library defaults
		}
		base = mdpress.DefaultBrowserPaths()
	}

	if explicit == "" {
		return base
	}
	return append([]string{explicit}, base...)
}

// resolvePage merges page settings: defaults, then config, then flags.
func resolvePage(flags *cliFlags, cfg *config.Config) (*mdpress.PageSettings, error) {
	page := mdpress.DefaultPageSettings()

	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	if flags.pageSize != "" {
		page.Size = flags.pageSize
	}
	if flags.orientation != "" {
		page.Orientation = flags.orientation
	}
	if flags.margin != 0 {
		page.Margin = flags.margin
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
