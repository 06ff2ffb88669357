package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hintcfg/internal/extrinsic"
)

func newFmtCommand(ctx *commandContext) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [hint-file]",
		Short: "Rewrite a hint file in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.hintPath(args)
			if err != nil {
				return err
			}
			cfg, err := extrinsic.Load(path)
			if err != nil {
				return err
			}

			formatted := cfg.Format()
			if !write {
				_, err := cmd.OutOrStdout().Write(formatted)
				return err
			}

			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				return fmt.Errorf("rewrite hint file: %w", err)
			}
			ctx.logger().Debug("hint file rewritten", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back instead of printing it")
	return cmd
}
