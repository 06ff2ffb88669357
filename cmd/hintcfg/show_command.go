package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hintcfg/internal/extrinsic"
	"hintcfg/internal/names"
)

type sourceView struct {
	Code  string   `json:"code"`
	Flags []string `json:"flags,omitempty"`
}

type scoreView struct {
	Source     string   `json:"source"`
	Malus      float64  `json:"malus"`
	Bonus      float64  `json:"bonus"`
	FullLength *float64 `json:"full_length,omitempty"`
	Exponent   *float64 `json:"exponent,omitempty"`
}

type rowView struct {
	Feature  string      `json:"feature"`
	Class    string      `json:"class"`
	Boundary bool        `json:"boundary"`
	Tuning   []float64   `json:"tuning"`
	Scores   []scoreView `json:"scores"`
}

type hintFileView struct {
	Path       string       `json:"path"`
	Group      string       `json:"group,omitempty"`
	Provenance string       `json:"provenance,omitempty"`
	Sources    []sourceView `json:"sources"`
	Rows       []rowView    `json:"rows"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show [hint-file]",
		Short: "Display the weight table of a hint file",
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

			if jsonOut {
				return writeJSON(cmd, buildView(path, cfg))
			}

			out := cmd.OutOrStdout()
			if label := cfg.GroupLabel(); label != "" {
				fmt.Fprintf(out, "Group: %s", label)
				if prov := names.Classify(label); prov != names.ProvenanceUnknown {
					fmt.Fprintf(out, " (%s)", prov)
				}
				fmt.Fprintln(out)
			}

			for _, src := range cfg.Sources() {
				flags, err := cfg.SourceFlags(src)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Source %s", src)
				if len(flags) > 0 {
					fmt.Fprintf(out, ": %s", joinFlags(flags))
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintln(out, renderWeightTable(ctx, cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the parsed configuration as JSON")
	return cmd
}

func renderWeightTable(ctx *commandContext, cfg *extrinsic.Config) string {
	sources := cfg.Sources()

	headers := []string{"FEATURE", "CLASS", "BOUNDARY", "TUNING"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
	for _, src := range sources {
		headers = append(headers, string(src))
		aligns = append(aligns, alignRight)
	}

	rows := make([][]string, 0, len(extrinsic.FeatureTypes))
	for _, row := range cfg.Rows() {
		cells := []string{
			string(row.Feature),
			row.Feature.Class().String(),
			yesNo(row.Boundary),
			formatFloats(row.Tuning),
		}
		for _, src := range sources {
			cells = append(cells, formatScore(row.Scores[src]))
		}
		rows = append(rows, cells)
	}

	return renderTable(ctx.tableStyle(), headers, rows, aligns)
}

func buildView(path string, cfg *extrinsic.Config) hintFileView {
	view := hintFileView{Path: path, Group: cfg.GroupLabel()}
	if view.Group != "" {
		if prov := names.Classify(view.Group); prov != names.ProvenanceUnknown {
			view.Provenance = string(prov)
		}
	}
	for _, src := range cfg.Sources() {
		flags, _ := cfg.SourceFlags(src)
		sv := sourceView{Code: string(src)}
		for _, flag := range flags {
			sv.Flags = append(sv.Flags, string(flag))
		}
		view.Sources = append(view.Sources, sv)
	}
	for _, row := range cfg.Rows() {
		rv := rowView{
			Feature:  string(row.Feature),
			Class:    row.Feature.Class().String(),
			Boundary: row.Boundary,
			Tuning:   row.Tuning,
		}
		for _, src := range cfg.Sources() {
			score := row.Scores[src]
			sv := scoreView{Source: string(src), Malus: score.Malus, Bonus: score.Bonus}
			if score.Curve != nil {
				full := score.Curve.FullLength
				exp := score.Curve.Exponent
				sv.FullLength = &full
				sv.Exponent = &exp
			}
			rv.Scores = append(rv.Scores, sv)
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

func formatScore(score extrinsic.Score) string {
	cell := formatFloat(score.Malus) + "/" + formatFloat(score.Bonus)
	if score.Curve != nil {
		cell += " @" + formatFloat(score.Curve.FullLength) + "^" + formatFloat(score.Curve.Exponent)
	}
	return cell
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinFlags(flags []extrinsic.Flag) string {
	parts := make([]string, len(flags))
	for i, flag := range flags {
		parts[i] = string(flag)
	}
	return strings.Join(parts, ", ")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
