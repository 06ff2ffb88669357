package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"hintcfg/internal/logging"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("loaded hint file", slog.String("path", "/tmp/extrinsic.cfg"), slog.Int("rows", 17))

	line := buf.String()
	if !strings.Contains(line, "INFO loaded hint file") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "path=/tmp/extrinsic.cfg") {
		t.Fatalf("missing path attr: %q", line)
	}
	if !strings.Contains(line, "rows=17") {
		t.Fatalf("missing rows attr: %q", line)
	}
}

func TestConsoleQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("note", slog.String("label", "two words"))
	if !strings.Contains(buf.String(), `label="two words"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestConsoleHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestConsoleGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("hint").With(slog.String("source", "T")).Info("scored")
	if !strings.Contains(buf.String(), "hint.source=T") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("validated", slog.String("kind", "arity mismatch"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "validated" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["kind"] != "arity mismatch" {
		t.Fatalf("unexpected kind attr: %v", payload["kind"])
	}
}

func TestRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := logging.New(logging.Options{Format: "xml", Output: &buf}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should vanish")
}
