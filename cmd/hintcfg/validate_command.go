package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hintcfg/internal/extrinsic"
)

type validationVerdict struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Sources int    `json:"sources,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Line    int    `json:"line,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate [hint-file]",
		Short: "Validate a hint file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.hintPath(args)
			if err != nil {
				return err
			}

			cfg, err := extrinsic.Load(path)
			if err != nil {
				verdict := validationVerdict{Path: path, Error: err.Error()}
				var cfgErr *extrinsic.ConfigError
				if errors.As(err, &cfgErr) {
					verdict.Kind = string(cfgErr.Kind)
					verdict.Line = cfgErr.Line
					verdict.Token = cfgErr.Token
				}
				if jsonOut {
					if jsonErr := writeJSON(cmd, verdict); jsonErr != nil {
						return jsonErr
					}
				}
				return err
			}

			ctx.logger().Debug("hint file validated",
				"path", path,
				"sources", len(cfg.Sources()),
				"rows", len(cfg.Rows()))

			if jsonOut {
				return writeJSON(cmd, validationVerdict{
					Path:    path,
					Valid:   true,
					Sources: len(cfg.Sources()),
					Rows:    len(cfg.Rows()),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hint file: %s\n", path)
			fmt.Fprintf(out, "Sources: %d, rows: %d\n", len(cfg.Sources()), len(cfg.Rows()))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit a JSON verdict")
	return cmd
}
