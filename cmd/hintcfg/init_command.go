package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hintcfg/internal/extrinsic"
	"hintcfg/internal/settings"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample hint file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = "extrinsic.cfg"
			}
			expanded, err := settings.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve hint file path: %w", err)
			}
			target = expanded

			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create directory %q: %w", dir, err)
				}
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("hint file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check hint file path: %w", err)
				}
			}

			if err := os.WriteFile(target, []byte(extrinsic.Sample()), 0o644); err != nil {
				return fmt.Errorf("write sample hint file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample hint file to %s\n", target)
			fmt.Fprintln(out, "Edit the weight rows to match your evidence sources before use.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the hint file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing hint file")
	return cmd
}
