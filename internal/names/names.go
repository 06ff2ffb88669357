// Package names classifies and normalizes the alignment identifiers that
// hint-producing pipelines stamp on their output, such as
// augTMR-ENSMUST00000169901.2-1. Group labels in hint files commonly reuse
// these identifiers, so the CLI uses this package to report where a hint
// set came from.
package names

import "strings"

// Provenance names the pipeline that produced an alignment identifier.
type Provenance string

const (
	ProvenanceTransMap    Provenance = "transMap"
	ProvenanceAugustusTM  Provenance = "augTM"
	ProvenanceAugustusTMR Provenance = "augTMR"
	ProvenanceAugustusCGP Provenance = "augCGP"
	ProvenanceUnknown     Provenance = "unknown"
)

var augustusPrefixes = []string{"augTMR-", "augTM-", "augCGP-"}

// StripAlignmentNumber removes a trailing -N alignment counter:
// ENSMUST00000169901.2-1 becomes ENSMUST00000169901.2. Identifiers without
// a counter are returned unchanged.
func StripAlignmentNumber(id string) string {
	i := strings.LastIndexByte(id, '-')
	if i < 0 || i == len(id)-1 {
		return id
	}
	for _, r := range id[i+1:] {
		if r < '0' || r > '9' {
			return id
		}
	}
	return id[:i]
}

// StripAugustusPrefix removes an aug(TM|TMR|CGP)- pipeline prefix when
// present.
func StripAugustusPrefix(id string) string {
	for _, prefix := range augustusPrefixes {
		if strings.HasPrefix(id, prefix) {
			return id[len(prefix):]
		}
	}
	return id
}

// Strip removes both the pipeline prefix and the alignment counter, leaving
// the bare transcript identifier.
func Strip(id string) string {
	return StripAlignmentNumber(StripAugustusPrefix(id))
}

// IsAugustus reports whether the identifier carries an Augustus pipeline
// prefix.
func IsAugustus(id string) bool {
	return StripAugustusPrefix(id) != id
}

// IsTransMap reports whether the identifier carries a transMap alignment
// counter.
func IsTransMap(id string) bool {
	return StripAlignmentNumber(id) != id
}

// Classify reports which pipeline produced the identifier. Comparative
// gene prediction output is recognized by its jg name prefix; plain labels
// with neither prefix nor counter classify as unknown.
func Classify(id string) Provenance {
	switch {
	case strings.HasPrefix(id, "augTMR-"):
		return ProvenanceAugustusTMR
	case strings.HasPrefix(id, "augTM-"):
		return ProvenanceAugustusTM
	case strings.HasPrefix(id, "augCGP-"), strings.HasPrefix(id, "jg"):
		return ProvenanceAugustusCGP
	case IsTransMap(id):
		return ProvenanceTransMap
	default:
		return ProvenanceUnknown
	}
}

// UniqueTranscripts returns the distinct bare transcript identifiers behind
// a list of alignment IDs, preserving first-seen order.
func UniqueTranscripts(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		tx := Strip(id)
		if _, ok := seen[tx]; ok {
			continue
		}
		seen[tx] = struct{}{}
		out = append(out, tx)
	}
	return out
}
