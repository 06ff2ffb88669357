package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_settings.toml
var sampleSettings string

// Paths contains file location configuration.
type Paths struct {
	// HintFile is used when a command receives no hint-file argument.
	HintFile string `toml:"hint_file"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Output contains configuration for table rendering.
type Output struct {
	TableStyle string `toml:"table_style"`
	Color      string `toml:"color"`
}

// Settings encapsulates all configuration values for the hintcfg CLI.
type Settings struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
	Output  Output  `toml:"output"`
}

// DefaultSettingsPath returns the absolute path to the default settings
// file location.
func DefaultSettingsPath() (string, error) {
	return expandPath("~/.config/hintcfg/config.toml")
}

// Load locates, parses, and validates a settings file. A missing file is
// not an error; defaults apply. The returned settings have all path fields
// expanded.
func Load(path string) (*Settings, string, bool, error) {
	s := Default()

	resolvedPath, exists, err := resolveSettingsPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open settings: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&s); err != nil {
			return nil, "", false, fmt.Errorf("parse settings: %w", err)
		}
	}

	if err := s.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := s.Validate(); err != nil {
		return nil, "", false, err
	}

	return &s, resolvedPath, exists, nil
}

func resolveSettingsPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat settings: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultSettingsPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (s *Settings) normalize() error {
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	s.Output.TableStyle = strings.ToLower(strings.TrimSpace(s.Output.TableStyle))
	s.Output.Color = strings.ToLower(strings.TrimSpace(s.Output.Color))

	hintFile := strings.TrimSpace(s.Paths.HintFile)
	if hintFile != "" {
		expanded, err := expandPath(hintFile)
		if err != nil {
			return err
		}
		hintFile = expanded
	}
	s.Paths.HintFile = hintFile
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample settings file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
