package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("usage: mdpress [flags] <input.md> [output.pdf]")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
)

// run parses arguments, reads files, and delegates to the conversion service.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpress %s\n", Version)
		return nil
	}

	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("%w: expected <input.md> [output.pdf], got %d arguments", ErrInvalidArgs, len(positional))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	params, err := resolveParams(flags, positional, cfg)
	if err != nil {
		return err
	}

	mdContent, err := readMarkdownFile(params.inputPath)
	if err != nil {
		return err
	}

	var cssContent string
	if params.stylePath != "" {
		cssContent, err = readCSSFile(params.stylePath)
		if err != nil {
			return err
		}
	}

	input := mdpress.Input{
		Markdown: mdContent,
		Title:    documentTitle(params.inputPath),
		CSS:      cssContent,
		Page:     params.page,
	}

	opts := []mdpress.Option{mdpress.WithEngine(params.engine)}
	if params.timeout > 0 {
		opts = append(opts, mdpress.WithTimeout(params.timeout))
	}
	if len(params.browserPaths) > 0 {
		opts = append(opts, mdpress.WithBrowserPaths(params.browserPaths))
	}

	svc := env.NewService(opts...)
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if params.htmlOnly {
		return convertHTMLOnly(ctx, env, svc, input, params)
	}

	if params.verbose {
		fmt.Fprintf(env.Stderr, "Converting %s (engine: %s)\n", params.inputPath, params.engine)
	}

	start := env.Now()
	input.OutputPath = params.outputPath
	if err := svc.Convert(ctx, input); err != nil {
		return err
	}

	if params.verbose {
		fmt.Fprintf(env.Stderr, "PDF rendered in %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if params.keepHTML {
		htmlPath := fileutil.ReplaceExtension(params.outputPath, ".html")
		if err := writeHTMLOutput(ctx, svc, input, htmlPath); err != nil {
			return err
		}
		if !params.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", htmlPath)
		}
	}

	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", params.outputPath)
	}
	return nil
}

// convertHTMLOnly runs only the Markdown-to-HTML stage and writes the result.
func convertHTMLOnly(ctx context.Context, env *Environment, svc converterService, input mdpress.Input, params *runParams) error {
	if err := writeHTMLOutput(ctx, svc, input, params.outputPath); err != nil {
		return err
	}
	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", params.outputPath)
	}
	return nil
}

// writeHTMLOutput converts to HTML and writes the document to path.
func writeHTMLOutput(ctx context.Context, svc converterService, input mdpress.Input, path string) error {
	htmlContent, err := svc.ConvertToHTML(ctx, input)
	if err != nil {
		return err
	}
	// #nosec G306 -- HTML output files are intended to be readable
	if err := os.WriteFile(path, []byte(htmlContent), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// readMarkdownFile reads the content of a Markdown file.
func readMarkdownFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// readCSSFile reads the content of a user CSS file.
func readCSSFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- style path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// documentTitle derives the HTML document title from the input file stem.
func documentTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
