package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunMainConfigErrors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badPath, []byte("[game]\nfps = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.toml")},
		{"invalid value", badPath},
	}

	orig := *configFlag
	defer func() { *configFlag = orig }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*configFlag = tt.path
			if got := runMain(); got != 1 {
				t.Errorf("Expected exit status 1, got %d", got)
			}
		})
	}
}
