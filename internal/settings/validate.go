package settings

import "fmt"

// Validate ensures the settings are usable.
func (s *Settings) Validate() error {
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", s.Logging.Format)
	}
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", s.Logging.Level)
	}
	switch s.Output.TableStyle {
	case "rounded", "light", "ascii":
	default:
		return fmt.Errorf("output.table_style must be rounded, light, or ascii, got %q", s.Output.TableStyle)
	}
	switch s.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", s.Output.Color)
	}
	return nil
}
