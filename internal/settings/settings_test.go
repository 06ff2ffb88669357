package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"hintcfg/internal/settings"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	s, resolved, exists, err := settings.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected settings file to be absent in temp HOME")
	}
	if s.Logging.Level != "info" || s.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", s.Logging)
	}
	if s.Output.TableStyle != "rounded" {
		t.Fatalf("unexpected table style default: %q", s.Output.TableStyle)
	}
	if s.Output.Color != "auto" {
		t.Fatalf("unexpected color default: %q", s.Output.Color)
	}
	if s.Paths.HintFile != "" {
		t.Fatalf("expected no default hint file, got %q", s.Paths.HintFile)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	settingsPath := filepath.Join(tempDir, "hintcfg.toml")

	type payload struct {
		Paths struct {
			HintFile string `toml:"hint_file"`
		} `toml:"paths"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.HintFile = filepath.Join(tempDir, "extrinsic.cfg")
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom settings: %v", err)
	}
	if err := os.WriteFile(settingsPath, data, 0o644); err != nil {
		t.Fatalf("write custom settings: %v", err)
	}

	s, resolved, exists, err := settings.Load(settingsPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != settingsPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, settingsPath)
	}
	if s.Paths.HintFile != custom.Paths.HintFile {
		t.Fatalf("unexpected hint file: %q", s.Paths.HintFile)
	}
	if s.Logging.Level != "debug" {
		t.Fatalf("expected level to normalize to debug, got %q", s.Logging.Level)
	}
}

func TestLoadExpandsTildePaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	settingsPath := filepath.Join(tempHome, "hintcfg.toml")
	contents := "[paths]\nhint_file = \"~/extrinsic.cfg\"\n"
	if err := os.WriteFile(settingsPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s, _, _, err := settings.Load(settingsPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "extrinsic.cfg"); s.Paths.HintFile != want {
		t.Fatalf("expected %q, got %q", want, s.Paths.HintFile)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	s := settings.Default()
	s.Logging.Level = "verbose"
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for bad log level")
	}

	s = settings.Default()
	s.Logging.Format = "xml"
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for bad log format")
	}

	s = settings.Default()
	s.Output.TableStyle = "fancy"
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for bad table style")
	}

	s = settings.Default()
	s.Output.Color = "sometimes"
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for bad color mode")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := settings.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "table_style") {
		t.Fatalf("sample settings missing table_style: %s", contents)
	}

	var s settings.Settings
	if err := toml.Unmarshal(contents, &s); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("sample settings should validate: %v", err)
	}
}
