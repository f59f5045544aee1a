package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		check      func(t *testing.T, f *cliFlags, positional []string)
	}{
		{
			name: "positional args only",
			args: []string{"doc.md", "out.pdf"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if len(positional) != 2 || positional[0] != "doc.md" || positional[1] != "out.pdf" {
					t.Errorf("positional = %v, want [doc.md out.pdf]", positional)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"--output", "x.pdf", "--engine", "rod", "--timeout", "45s", "doc.md"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.output != "x.pdf" {
					t.Errorf("output = %q, want x.pdf", f.output)
				}
				if f.engine != "rod" {
					t.Errorf("engine = %q, want rod", f.engine)
				}
				if f.timeout != "45s" {
					t.Errorf("timeout = %q, want 45s", f.timeout)
				}
			},
		},
		{
			name: "shorthand flags",
			args: []string{"-o", "x.pdf", "-t", "1m", "-p", "a4", "-q", "doc.md"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.output != "x.pdf" || f.timeout != "1m" || f.pageSize != "a4" || !f.quiet {
					t.Errorf("flags = %+v, want output/timeout/pageSize/quiet set", f)
				}
			},
		},
		{
			name: "page layout flags",
			args: []string{"--orientation", "landscape", "--margin", "0.5", "doc.md"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.orientation != "landscape" {
					t.Errorf("orientation = %q, want landscape", f.orientation)
				}
				if f.margin != 0.5 {
					t.Errorf("margin = %v, want 0.5", f.margin)
				}
			},
		},
		{
			name: "html output modes",
			args: []string{"--html", "--html-only", "doc.md"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if !f.html || !f.htmlOnly {
					t.Errorf("html = %v, htmlOnly = %v, want both true", f.html, f.htmlOnly)
				}
			},
		},
		{
			name: "browser and config",
			args: []string{"--browser", "/opt/chrome", "-c", "report", "doc.md"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.browser != "/opt/chrome" || f.config != "report" {
					t.Errorf("browser = %q, config = %q", f.browser, f.config)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus", "doc.md"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f, positional)
		})
	}
}
