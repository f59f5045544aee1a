package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the mdpress CLI.
type cliFlags struct {
	output      string
	style       string
	config      string
	timeout     string
	engine      string
	browser     string
	pageSize    string
	orientation string
	margin      float64
	html        bool
	htmlOnly    bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdpress", flag.ContinueOnError)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: input with .pdf extension)")
	fs.StringVar(&f.style, "style", "", "extra CSS file appended to the built-in style")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Engine flags
	fs.StringVar(&f.engine, "engine", "", "PDF engine: chrome, rod")
	fs.StringVar(&f.browser, "browser", "", "Chrome/Chromium binary to probe first")

	// Page layout flags
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")

	// Output mode flags
	fs.BoolVar(&f.html, "html", false, "keep the intermediate HTML next to the PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")

	// Common flags
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
