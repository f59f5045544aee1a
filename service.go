package mdpress

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdpress/mdpress/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*chromeConverter)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// pdfConverter abstracts HTML to PDF conversion to allow different engines.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent, outputPath string) error
	Close() error
}

// Service orchestrates the markdown-to-PDF pipeline.
type Service struct {
	cfg           serviceConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			engine:  EngineChrome,
		},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		switch s.cfg.engine {
		case EngineRod:
			s.pdfConverter = newRodConverter(s.cfg.timeout)
		default:
			s.pdfConverter = newChromeConverter(s.cfg.timeout, s.cfg.browserPaths)
		}
	}

	return s
}

// Convert runs the full pipeline and writes the PDF to input.OutputPath.
// The context is used for cancellation; the configured timeout bounds the
// browser wait. Overwrites any existing file at the destination.
func (s *Service) Convert(ctx context.Context, input Input) error {
	if input.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	htmlContent, err := s.ConvertToHTML(ctx, input)
	if err != nil {
		return err
	}

	if err := s.pdfConverter.ToPDF(ctx, htmlContent, input.OutputPath); err != nil {
		return fmt.Errorf("converting to PDF: %w", err)
	}

	return nil
}

// ConvertToHTML runs only the Markdown-to-HTML stage and returns the
// complete, styled HTML document. Deterministic: the same input always
// produces byte-identical output.
func (s *Service) ConvertToHTML(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}

	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Convert to HTML
	htmlContent, err := s.htmlConverter.ToHTML(ctx, mdContent, input.Title)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	// Build combined CSS: page rules + user CSS appended after the
	// embedded stylesheet already present in the document shell.
	cssContent := buildPageCSS(input.Page)
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return htmlContent, nil
}

// Close releases resources held by the PDF engine.
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
