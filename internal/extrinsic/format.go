package extrinsic

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
)

//go:embed sample_extrinsic.cfg
var sampleHintFile string

// Sample returns the embedded sample hint file. It parses cleanly and can
// seed a new installation.
func Sample() string {
	return sampleHintFile
}

// Format renders the configuration as canonical hint-file text. The output
// re-parses to an identical Config: floats are written with the shortest
// representation that round-trips, and rows appear in canonical feature
// order with source groups in declaration order.
func (c *Config) Format() []byte {
	var buf bytes.Buffer

	buf.WriteString("[" + sectionSources + "]\n")
	for i, src := range c.sources {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(string(src))
	}
	buf.WriteByte('\n')

	if len(c.flags) > 0 {
		buf.WriteString("\n[" + sectionSourceParams + "]\n")
		for _, src := range c.sources {
			flags := c.flags[src]
			if len(flags) == 0 {
				continue
			}
			buf.WriteString(string(src))
			for _, flag := range flags {
				buf.WriteByte(' ')
				buf.WriteString(string(flag))
			}
			buf.WriteByte('\n')
		}
	}

	if c.group != "" {
		buf.WriteString("\n[" + sectionGroup + "]\n")
		buf.WriteString(c.group)
		buf.WriteByte('\n')
	}

	buf.WriteString("\n[" + sectionGeneral + "]\n")
	for _, ft := range FeatureTypes {
		r, ok := c.rows[ft]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%-12s", string(ft))
		if r.boundary {
			buf.WriteString(" 1")
		} else {
			buf.WriteString(" 0")
		}
		for _, v := range r.tuning {
			buf.WriteByte(' ')
			buf.WriteString(formatNumber(v))
		}
		for _, src := range c.sources {
			sc := r.scores[src]
			buf.WriteString("  ")
			buf.WriteString(string(src))
			buf.WriteByte(' ')
			buf.WriteString(formatNumber(sc.Malus))
			buf.WriteByte(' ')
			buf.WriteString(formatNumber(sc.Bonus))
			if sc.Curve != nil {
				buf.WriteByte(' ')
				buf.WriteString(formatNumber(sc.Curve.FullLength))
				buf.WriteByte(' ')
				buf.WriteString(formatNumber(sc.Curve.Exponent))
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
