package extrinsic

// FeatureType names a gene-structure element whose prediction can be
// supported by extrinsic evidence.
type FeatureType string

// The canonical feature enumeration, in the row order hint files use.
const (
	FeatureStart       FeatureType = "start"
	FeatureStop        FeatureType = "stop"
	FeatureTSS         FeatureType = "tss"
	FeatureTTS         FeatureType = "tts"
	FeatureASS         FeatureType = "ass"
	FeatureDSS         FeatureType = "dss"
	FeatureExonPart    FeatureType = "exonpart"
	FeatureExon        FeatureType = "exon"
	FeatureIntronPart  FeatureType = "intronpart"
	FeatureIntron      FeatureType = "intron"
	FeatureCDSPart     FeatureType = "CDSpart"
	FeatureCDS         FeatureType = "CDS"
	FeatureUTRPart     FeatureType = "UTRpart"
	FeatureUTR         FeatureType = "UTR"
	FeatureIRPart      FeatureType = "irpart"
	FeatureNonExonPart FeatureType = "nonexonpart"
	FeatureGenicPart   FeatureType = "genicpart"
)

// FeatureTypes lists every required feature row in canonical order. A valid
// hint file contains exactly one [GENERAL] row per entry.
var FeatureTypes = []FeatureType{
	FeatureStart,
	FeatureStop,
	FeatureTSS,
	FeatureTTS,
	FeatureASS,
	FeatureDSS,
	FeatureExonPart,
	FeatureExon,
	FeatureIntronPart,
	FeatureIntron,
	FeatureCDSPart,
	FeatureCDS,
	FeatureUTRPart,
	FeatureUTR,
	FeatureIRPart,
	FeatureNonExonPart,
	FeatureGenicPart,
}

// FeatureClass partitions feature types by the arity of their weight rows.
// The class is fixed per feature type so field counts are enforced by the
// schema rather than re-derived from input.
type FeatureClass int

const (
	// PointFeature marks single-position signals (start, stop, splice
	// sites, transcription boundaries): one tuning value, malus+bonus per
	// source.
	PointFeature FeatureClass = iota
	// SpanFeature marks whole-interval features that must match end to
	// end: one tuning value, malus+bonus per source.
	SpanFeature
	// PartFeature marks interval fragments (exonpart and friends): two
	// tuning values, and malus+bonus plus two forgiveness-curve values per
	// source. Note irpart, nonexonpart, and genicpart end in "part"
	// lexically but are span features in the schema.
	PartFeature
)

var featureClasses = map[FeatureType]FeatureClass{
	FeatureStart:       PointFeature,
	FeatureStop:        PointFeature,
	FeatureTSS:         PointFeature,
	FeatureTTS:         PointFeature,
	FeatureASS:         PointFeature,
	FeatureDSS:         PointFeature,
	FeatureExonPart:    PartFeature,
	FeatureExon:        SpanFeature,
	FeatureIntronPart:  PartFeature,
	FeatureIntron:      SpanFeature,
	FeatureCDSPart:     PartFeature,
	FeatureCDS:         SpanFeature,
	FeatureUTRPart:     PartFeature,
	FeatureUTR:         SpanFeature,
	FeatureIRPart:      SpanFeature,
	FeatureNonExonPart: SpanFeature,
	FeatureGenicPart:   SpanFeature,
}

// Class reports the arity class for the feature type. Only valid feature
// types have a class; check Valid first for untrusted input.
func (f FeatureType) Class() FeatureClass {
	return featureClasses[f]
}

// Valid reports whether f is one of the canonical feature types.
func (f FeatureType) Valid() bool {
	_, ok := featureClasses[f]
	return ok
}

// tuningArity returns how many leading tuning values a row of this class
// carries between the boundary flag and the first source group.
func (c FeatureClass) tuningArity() int {
	if c == PartFeature {
		return 2
	}
	return 1
}

// groupArity returns how many numeric fields follow each source letter.
func (c FeatureClass) groupArity() int {
	if c == PartFeature {
		return 4
	}
	return 2
}

func (c FeatureClass) String() string {
	switch c {
	case PointFeature:
		return "point"
	case SpanFeature:
		return "span"
	case PartFeature:
		return "part"
	default:
		return "unknown"
	}
}
