package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hintcfg/internal/extrinsic"
)

type lookupResult struct {
	Feature    string   `json:"feature"`
	Source     string   `json:"source"`
	Malus      float64  `json:"malus"`
	Bonus      float64  `json:"bonus"`
	FullLength *float64 `json:"full_length,omitempty"`
	Exponent   *float64 `json:"exponent,omitempty"`
	Overlap    *int     `json:"overlap,omitempty"`
	BonusAt    *float64 `json:"bonus_at_overlap,omitempty"`
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var overlap int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "lookup <feature> <source> [hint-file]",
		Short: "Look up the malus/bonus pair for a feature and source",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft := extrinsic.FeatureType(args[0])
			if !ft.Valid() {
				return fmt.Errorf("unknown feature type %q", args[0])
			}
			src := extrinsic.Source(args[1])
			if !src.Valid() {
				return fmt.Errorf("unknown source code %q", args[1])
			}

			path, err := ctx.hintPath(args[2:])
			if err != nil {
				return err
			}
			cfg, err := extrinsic.Load(path)
			if err != nil {
				return err
			}

			score, err := cfg.LookupBonus(ft, src)
			if err != nil {
				return err
			}

			overlapSet := cmd.Flags().Changed("overlap")
			result := lookupResult{
				Feature: string(ft),
				Source:  string(src),
				Malus:   score.Malus,
				Bonus:   score.Bonus,
			}
			if score.Curve != nil {
				full := score.Curve.FullLength
				exp := score.Curve.Exponent
				result.FullLength = &full
				result.Exponent = &exp
			}
			if overlapSet {
				at := score.BonusFor(overlap)
				result.Overlap = &overlap
				result.BonusAt = &at
			}

			if jsonOut {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: malus=%s bonus=%s\n",
				ft, src, formatFloat(score.Malus), formatFloat(score.Bonus))
			if score.Curve != nil {
				fmt.Fprintf(out, "curve: full_length=%s exponent=%s\n",
					formatFloat(score.Curve.FullLength), formatFloat(score.Curve.Exponent))
			}
			if overlapSet {
				fmt.Fprintf(out, "bonus at overlap %d: %s\n",
					overlap, formatFloat(score.BonusFor(overlap)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&overlap, "overlap", 0, "Overlap length for part-feature curve evaluation")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON")
	return cmd
}
