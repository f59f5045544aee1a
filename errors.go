package mdpress

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrWritePDF        = errors.New("failed to write PDF file")

	// Chrome engine errors.
	ErrBrowserNotFound = errors.New("no Chrome/Chromium browser found")
	ErrBrowserRun      = errors.New("browser process failed")
	ErrPDFMissing      = errors.New("browser produced no PDF output")

	// Rod engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Engine selection errors.
	ErrInvalidEngine = errors.New("invalid PDF engine")
)
