package main

import "testing"

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no flags", []string{"doc.md"}, false},
		{"long flag", []string{"--verbose", "doc.md"}, true},
		{"short flag", []string{"-v", "doc.md"}, true},
		{"after terminator ignored", []string{"--", "-v"}, false},
		{"empty args", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isVerbose(tt.args); got != tt.want {
				t.Errorf("isVerbose(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
