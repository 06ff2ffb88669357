package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"hintcfg/internal/extrinsic"
)

// runCLI executes the root command with args and returns combined output.
// Settings are pointed at a nonexistent file so repository defaults apply
// regardless of the host environment.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	settingsPath := filepath.Join(t.TempDir(), "absent.toml")
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--settings", settingsPath))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// sampleWithoutRow returns the embedded sample hint file with one feature
// row removed.
func sampleWithoutRow(t *testing.T, feature extrinsic.FeatureType) string {
	t.Helper()

	lines := strings.Split(extrinsic.Sample(), "\n")
	kept := lines[:0]
	removed := false
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == string(feature) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		t.Fatalf("sample has no row for feature %s", feature)
	}
	return strings.Join(kept, "\n")
}
