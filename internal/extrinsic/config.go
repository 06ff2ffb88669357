package extrinsic

import (
	"fmt"
	"math"
)

// Curve holds the fragment-length forgiveness parameters carried by part
// features. Fragments covering at least FullLength earn the row's full
// bonus; shorter fragments earn a bonus interpolated geometrically between
// the neutral factor 1 and the full bonus, shaped by Exponent.
type Curve struct {
	FullLength float64
	Exponent   float64
}

// Score is the weight tuple for one feature/source pair. Curve is non-nil
// only for part features.
type Score struct {
	Malus float64
	Bonus float64
	Curve *Curve
}

// BonusFor returns the bonus applicable to a hint fragment of the given
// overlap length. Scores without a curve return the flat bonus regardless
// of length.
func (s Score) BonusFor(overlapLength int) float64 {
	if s.Curve == nil {
		return s.Bonus
	}
	if overlapLength <= 0 {
		return 1
	}
	full := s.Curve.FullLength
	if full <= 0 || float64(overlapLength) >= full || s.Bonus <= 0 {
		return s.Bonus
	}
	frac := math.Pow(float64(overlapLength)/full, s.Curve.Exponent)
	return math.Exp(math.Log(s.Bonus) * frac)
}

// Row is one [GENERAL] weight row as exposed to callers. Maps and slices
// are copies; mutating them does not affect the Config.
type Row struct {
	Feature  FeatureType
	Boundary bool
	Tuning   []float64
	Scores   map[Source]Score
}

// Config is the immutable result of parsing a hint file.
type Config struct {
	sources []Source
	flags   map[Source][]Flag
	group   string
	rows    map[FeatureType]row
}

type row struct {
	boundary bool
	tuning   []float64
	scores   map[Source]Score
}

// Sources returns the declared evidence sources in declaration order.
func (c *Config) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Features returns the configured feature types in canonical order.
func (c *Config) Features() []FeatureType {
	out := make([]FeatureType, 0, len(c.rows))
	for _, ft := range FeatureTypes {
		if _, ok := c.rows[ft]; ok {
			out = append(out, ft)
		}
	}
	return out
}

// HasSource reports whether the source is declared in [SOURCES].
func (c *Config) HasSource(src Source) bool {
	for _, s := range c.sources {
		if s == src {
			return true
		}
	}
	return false
}

// SourceFlags returns the [SOURCE-PARAMETERS] flags for a declared source.
// Sources without parameters yield an empty slice.
func (c *Config) SourceFlags(src Source) ([]Flag, error) {
	if !c.HasSource(src) {
		return nil, fmt.Errorf("source %q not declared in [SOURCES]", src)
	}
	flags := c.flags[src]
	out := make([]Flag, len(flags))
	copy(out, flags)
	return out, nil
}

// GroupLabel returns the free-form [GROUP] label, or "" when the section
// was omitted.
func (c *Config) GroupLabel() string {
	return c.group
}

// LookupBonus returns the weight tuple for a feature/source pair. It is the
// sole read operation a consuming scorer needs.
func (c *Config) LookupBonus(ft FeatureType, src Source) (Score, error) {
	r, ok := c.rows[ft]
	if !ok {
		return Score{}, fmt.Errorf("unknown feature type %q", ft)
	}
	sc, ok := r.scores[src]
	if !ok {
		return Score{}, fmt.Errorf("source %q not declared in [SOURCES]", src)
	}
	return sc.clone(), nil
}

// Row returns a copy of the weight row for the feature type.
func (c *Config) Row(ft FeatureType) (Row, error) {
	r, ok := c.rows[ft]
	if !ok {
		return Row{}, fmt.Errorf("unknown feature type %q", ft)
	}
	out := Row{
		Feature:  ft,
		Boundary: r.boundary,
		Tuning:   make([]float64, len(r.tuning)),
		Scores:   make(map[Source]Score, len(r.scores)),
	}
	copy(out.Tuning, r.tuning)
	for src, sc := range r.scores {
		out.Scores[src] = sc.clone()
	}
	return out, nil
}

// Rows returns every weight row in canonical feature order.
func (c *Config) Rows() []Row {
	out := make([]Row, 0, len(FeatureTypes))
	for _, ft := range FeatureTypes {
		r, err := c.Row(ft)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s Score) clone() Score {
	if s.Curve == nil {
		return s
	}
	curve := *s.Curve
	s.Curve = &curve
	return s
}
