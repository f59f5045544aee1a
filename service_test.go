package mdpress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubPDFConverter captures the HTML handed to the PDF stage.
type stubPDFConverter struct {
	htmlContent string
	outputPath  string
	err         error
	closed      bool
}

func (s *stubPDFConverter) ToPDF(_ context.Context, htmlContent, outputPath string) error {
	s.htmlContent = htmlContent
	s.outputPath = outputPath
	return s.err
}

func (s *stubPDFConverter) Close() error {
	s.closed = true
	return nil
}

// newStubService builds a Service with the PDF stage stubbed out.
func newStubService(stub *stubPDFConverter, opts ...Option) *Service {
	svc := New(opts...)
	svc.pdfConverter = stub
	return svc
}

func TestService_Convert_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty output path",
			input:   Input{Markdown: "# Hi"},
			wantErr: ErrEmptyOutputPath,
		},
		{
			name:    "empty markdown",
			input:   Input{Markdown: "", OutputPath: "out.pdf"},
			wantErr: ErrEmptyMarkdown,
		},
		{
			name: "invalid page size",
			input: Input{
				Markdown:   "# Hi",
				OutputPath: "out.pdf",
				Page:       &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 0.5},
			},
			wantErr: ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubService(&stubPDFConverter{})
			defer svc.Close()

			err := svc.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Convert_PassesStyledHTMLToEngine(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{}
	svc := newStubService(stub)
	defer svc.Close()

	input := Input{
		Markdown:   "# Title\n\nBody text with ==emphasis==.",
		Title:      "report",
		CSS:        "p { color: navy; }",
		OutputPath: "report.pdf",
	}
	if err := svc.Convert(context.Background(), input); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if stub.outputPath != "report.pdf" {
		t.Errorf("outputPath = %q, want %q", stub.outputPath, "report.pdf")
	}

	wantContains := []string{
		"<!DOCTYPE html>",
		"<title>report</title>",
		"<h1",
		"Title",
		"<mark>emphasis</mark>",
		"p { color: navy; }",
		"@page",
		"font-family", // embedded stylesheet present
	}
	for _, want := range wantContains {
		if !strings.Contains(stub.htmlContent, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestService_Convert_EngineErrorWrapped(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{err: ErrBrowserNotFound}
	svc := newStubService(stub)
	defer svc.Close()

	err := svc.Convert(context.Background(), Input{Markdown: "# Hi", OutputPath: "out.pdf"})
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("Convert() error = %v, want ErrBrowserNotFound", err)
	}
}

func TestService_ConvertToHTML_StructuralElements(t *testing.T) {
	t.Parallel()

	svc := newStubService(&stubPDFConverter{})
	defer svc.Close()

	markdown := strings.Join([]string{
		"# Report",
		"",
		"## Features",
		"",
		"| Name | State |",
		"|------|-------|",
		"| One  | done  |",
		"| Two  | open  |",
		"",
		"- first",
		"- second",
		"",
		"```go",
		"package main",
		"```",
	}, "\n")

	html, err := svc.ConvertToHTML(context.Background(), Input{Markdown: markdown, Title: "report"})
	if err != nil {
		t.Fatalf("ConvertToHTML() error = %v", err)
	}

	wantContains := []string{
		"<h1", "Report",
		"<h2", "Features",
		"<table>", "<thead>", "<tbody>", "<th>", "<td>",
		"<ul>", "<li>first</li>",
		"<pre", "package",
	}
	for _, want := range wantContains {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}

	// The embedded stylesheet appears exactly once, in the head.
	if got := strings.Count(html, "font-family: -apple-system"); got != 1 {
		t.Errorf("embedded stylesheet appears %d times, want 1", got)
	}

	// Two header cells and four body cells from the 2x2 table.
	if got := strings.Count(html, "<th>"); got != 2 {
		t.Errorf("found %d <th> cells, want 2", got)
	}
	if got := strings.Count(html, "<td>"); got != 4 {
		t.Errorf("found %d <td> cells, want 4", got)
	}
}

func TestService_ConvertToHTML_Deterministic(t *testing.T) {
	t.Parallel()

	svc := newStubService(&stubPDFConverter{})
	defer svc.Close()

	input := Input{
		Markdown: "# Same\n\n- a\n- b\n\n| X | Y |\n|---|---|\n| 1 | 2 |",
		Title:    "same",
	}

	first, err := svc.ConvertToHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("first ConvertToHTML() error = %v", err)
	}
	second, err := svc.ConvertToHTML(context.Background(), input)
	if err != nil {
		t.Fatalf("second ConvertToHTML() error = %v", err)
	}

	if first != second {
		t.Error("ConvertToHTML() is not deterministic: outputs differ")
	}
}

func TestService_ConvertToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	svc := newStubService(&stubPDFConverter{})
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ConvertToHTML(ctx, Input{Markdown: "# Hi"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertToHTML() error = %v, want context.Canceled", err)
	}
}

func TestService_Convert_FullPipeline(t *testing.T) {
	t.Parallel()

	// Full run through the chrome engine with a fake runner standing in
	// for the browser: the destination PDF must materialize and the
	// intermediate HTML must be gone afterward.
	runner := &fakeRunner{writePDF: true, pdfContent: []byte("%PDF-1.4 fake")}
	svc := New(WithBrowserPaths([]string{fakeBrowser(t)}))
	defer svc.Close()
	svc.pdfConverter.(*chromeConverter).runner = runner

	outputPath := filepath.Join(t.TempDir(), "report.pdf")
	input := Input{
		Markdown:   "## Features\n\n| A | B |\n|---|---|\n| 1 | 2 |",
		Title:      "report",
		OutputPath: outputPath,
	}
	if err := svc.Convert(context.Background(), input); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("output PDF missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PDF is empty")
	}

	htmlPath := htmlArgPath(t, runner.calls[0])
	if _, err := os.Stat(htmlPath); !os.IsNotExist(err) {
		t.Errorf("intermediate HTML %s still exists", htmlPath)
	}
}

func TestService_Close_ClosesEngine(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{}
	svc := newStubService(stub)

	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stub.closed {
		t.Error("Close() did not close the PDF engine")
	}
}

func TestNew_DefaultEngineIsChrome(t *testing.T) {
	t.Parallel()

	svc := New()
	defer svc.Close()

	if _, ok := svc.pdfConverter.(*chromeConverter); !ok {
		t.Errorf("default pdfConverter is %T, want *chromeConverter", svc.pdfConverter)
	}
}

func TestNew_RodEngine(t *testing.T) {
	t.Parallel()

	svc := New(WithEngine(EngineRod))
	defer svc.Close()

	if _, ok := svc.pdfConverter.(*rodConverter); !ok {
		t.Errorf("pdfConverter is %T, want *rodConverter", svc.pdfConverter)
	}
}
