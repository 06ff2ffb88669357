package extrinsic_test

import (
	"math"
	"testing"

	"hintcfg/internal/extrinsic"
)

func TestBonusForAppliesForgivenessCurve(t *testing.T) {
	score := extrinsic.Score{
		Malus: 1,
		Bonus: 100,
		Curve: &extrinsic.Curve{FullLength: 100, Exponent: 1},
	}

	if got := score.BonusFor(0); got != 1 {
		t.Fatalf("zero overlap should be neutral, got %v", got)
	}
	if got := score.BonusFor(100); got != 100 {
		t.Fatalf("full overlap should earn full bonus, got %v", got)
	}
	if got := score.BonusFor(250); got != 100 {
		t.Fatalf("overlap beyond full length should earn full bonus, got %v", got)
	}

	half := score.BonusFor(50)
	if half <= 1 || half >= 100 {
		t.Fatalf("partial overlap should interpolate between 1 and bonus, got %v", half)
	}
	// Geometric interpolation at the midpoint with exponent 1 is sqrt(bonus).
	if math.Abs(half-10) > 1e-9 {
		t.Fatalf("expected sqrt(100)=10 at half overlap, got %v", half)
	}

	if score.BonusFor(30) >= score.BonusFor(60) {
		t.Fatal("curve must be monotone in overlap length")
	}
}

func TestBonusForWithoutCurve(t *testing.T) {
	score := extrinsic.Score{Malus: 1, Bonus: 1e10}
	if got := score.BonusFor(0); got != 1e10 {
		t.Fatalf("flat score ignores overlap, got %v", got)
	}
	if got := score.BonusFor(5000); got != 1e10 {
		t.Fatalf("flat score ignores overlap, got %v", got)
	}
}

func TestLookupBonusRejectsUnknownPairs(t *testing.T) {
	cfg := mustParse(t, buildHintFile(testRows()))

	if _, err := cfg.LookupBonus("promoter", extrinsic.SourceTransMap); err == nil {
		t.Fatal("expected error for unknown feature")
	}
	if _, err := cfg.LookupBonus(extrinsic.FeatureStart, extrinsic.SourceWiggle); err == nil {
		t.Fatal("expected error for undeclared source")
	}
}

func TestSourceFlagsRejectsUndeclaredSource(t *testing.T) {
	cfg := mustParse(t, buildHintFile(testRows()))

	if _, err := cfg.SourceFlags(extrinsic.SourceWiggle); err == nil {
		t.Fatal("expected error for undeclared source")
	}
	flags, err := cfg.SourceFlags(extrinsic.SourceManual)
	if err != nil {
		t.Fatalf("SourceFlags: %v", err)
	}
	if len(flags) != 0 {
		t.Fatalf("expected no flags for M, got %v", flags)
	}
}

func TestConfigAccessorsReturnCopies(t *testing.T) {
	cfg := mustParse(t, buildHintFile(testRows()))

	sources := cfg.Sources()
	sources[0] = extrinsic.SourceWiggle
	if cfg.Sources()[0] != extrinsic.SourceManual {
		t.Fatal("mutating Sources() result leaked into config")
	}

	row, err := cfg.Row(extrinsic.FeatureExonPart)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	row.Tuning[0] = -1
	row.Scores[extrinsic.SourceTransMap] = extrinsic.Score{}
	score := row.Scores[extrinsic.SourceManual]
	score.Curve.FullLength = -1

	fresh, err := cfg.Row(extrinsic.FeatureExonPart)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	if fresh.Tuning[0] == -1 {
		t.Fatal("mutating Row tuning leaked into config")
	}
	if fresh.Scores[extrinsic.SourceTransMap].Bonus != 1e10 {
		t.Fatal("mutating Row scores leaked into config")
	}
	if fresh.Scores[extrinsic.SourceManual].Curve.FullLength == -1 {
		t.Fatal("mutating Row curve leaked into config")
	}
}

func TestFeatureClassSchema(t *testing.T) {
	parts := map[extrinsic.FeatureType]bool{
		extrinsic.FeatureExonPart:   true,
		extrinsic.FeatureIntronPart: true,
		extrinsic.FeatureCDSPart:    true,
		extrinsic.FeatureUTRPart:    true,
	}
	for _, ft := range extrinsic.FeatureTypes {
		got := ft.Class() == extrinsic.PartFeature
		if got != parts[ft] {
			t.Fatalf("feature %s: part=%v, want %v", ft, got, parts[ft])
		}
	}
	// Lexical "part" suffixes that are span features in the schema.
	for _, ft := range []extrinsic.FeatureType{
		extrinsic.FeatureIRPart,
		extrinsic.FeatureNonExonPart,
		extrinsic.FeatureGenicPart,
	} {
		if ft.Class() != extrinsic.SpanFeature {
			t.Fatalf("feature %s should be a span feature", ft)
		}
	}
	if !extrinsic.FeatureType("CDS").Valid() {
		t.Fatal("CDS should be valid")
	}
	if extrinsic.FeatureType("cds").Valid() {
		t.Fatal("feature names are case-sensitive")
	}
}
