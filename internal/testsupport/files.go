// Package testsupport provides fixtures shared by hintcfg tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"hintcfg/internal/extrinsic"
)

// WriteHintFile writes contents to a fresh temp file and returns its path.
func WriteHintFile(t testing.TB, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "extrinsic.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write hint file: %v", err)
	}
	return path
}

// WriteSampleHintFile writes the embedded sample hint file to a temp path.
func WriteSampleHintFile(t testing.TB) string {
	t.Helper()
	return WriteHintFile(t, extrinsic.Sample())
}

// WriteSettingsFile writes CLI settings TOML to a fresh temp file and
// returns its path.
func WriteSettingsFile(t testing.TB, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hintcfg.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}
