package extrinsic

// Source identifies a category of extrinsic evidence by its single-letter
// code. The set of known codes is fixed; files referencing any other letter
// are rejected.
type Source string

const (
	SourceManual   Source = "M" // manual anchors, typically bonus 1e+100
	SourceProtein  Source = "P" // protein alignments
	SourceEST      Source = "E" // EST/cDNA alignments
	SourceCombined Source = "C" // combined evidence
	SourceDNA      Source = "D" // DNA alignments
	SourceRetro    Source = "R" // retroposed genes
	SourceTransMap Source = "T" // transMap projections
	SourceWiggle   Source = "W" // coverage wiggle tracks (RNA-seq)
)

// KnownSources lists every admissible evidence source code.
var KnownSources = []Source{
	SourceManual,
	SourceProtein,
	SourceEST,
	SourceCombined,
	SourceDNA,
	SourceRetro,
	SourceTransMap,
	SourceWiggle,
}

// Valid reports whether s is one of the known source codes.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceProtein, SourceEST, SourceCombined,
		SourceDNA, SourceRetro, SourceTransMap, SourceWiggle:
		return true
	default:
		return false
	}
}

// Flag names a per-source behaviour toggle declared in [SOURCE-PARAMETERS].
type Flag string

const (
	// FlagIndividualLiability makes each hint of the source answer for
	// itself instead of standing or falling with its group.
	FlagIndividualLiability Flag = "individual_liability"
	// FlagOneGroupOneGene constrains a hint group of the source to support
	// at most one gene.
	FlagOneGroupOneGene Flag = "1group1gene"
)

// Valid reports whether f is a recognized source flag.
func (f Flag) Valid() bool {
	return f == FlagIndividualLiability || f == FlagOneGroupOneGene
}
