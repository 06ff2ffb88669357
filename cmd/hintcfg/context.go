package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"hintcfg/internal/logging"
	"hintcfg/internal/settings"
)

type commandContext struct {
	settingsFlag *string
	logLevelFlag *string

	settingsOnce sync.Once
	settings     *settings.Settings
	settingsErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(settingsFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		settingsFlag: settingsFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureSettings() (*settings.Settings, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		s, _, _, err := settings.Load(path)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = s
	})
	return c.settings, c.settingsErr
}

// logger builds the CLI logger once, honoring the settings file and the
// --log-level override. Logs go to stderr so stdout stays parseable.
func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		level := ""
		format := ""
		if s, err := c.ensureSettings(); err == nil && s != nil {
			level = s.Logging.Level
			format = s.Logging.Format
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		logger, err := logging.New(logging.Options{Level: level, Format: format, Output: os.Stderr})
		if err != nil {
			logger = logging.NewNop()
		}
		c.log = logger
	})
	return c.log
}

// hintPath resolves the hint file a command should operate on: an explicit
// argument wins, then the settings default.
func (c *commandContext) hintPath(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return settings.ExpandPath(args[0])
	}
	s, err := c.ensureSettings()
	if err != nil {
		return "", err
	}
	if s != nil && s.Paths.HintFile != "" {
		return s.Paths.HintFile, nil
	}
	return "", errors.New("no hint file given; pass a path or set paths.hint_file in the settings file")
}

func (c *commandContext) tableStyle() string {
	if s, err := c.ensureSettings(); err == nil && s != nil {
		return s.Output.TableStyle
	}
	return "rounded"
}

func shouldSkipSettings(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipSettingsLoad"] == "true" {
			return true
		}
	}
	return false
}
