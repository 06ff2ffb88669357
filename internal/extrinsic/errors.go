package extrinsic

import "fmt"

// Kind classifies a hint-file validation failure.
type Kind string

const (
	// KindMalformedHeader covers unparseable, unknown, or duplicated
	// section headers, and content appearing before any header.
	KindMalformedHeader Kind = "malformed header"
	// KindMissingRequiredSection is returned when [SOURCES] or [GENERAL]
	// is absent. An empty [SOURCES] section is reported the same way: a
	// declaration that declares nothing is treated as missing.
	KindMissingRequiredSection Kind = "missing required section"
	// KindUnknownSource covers letters outside the known code set and
	// references to codes not declared in [SOURCES].
	KindUnknownSource Kind = "unknown source"
	// KindDuplicateSource is returned when [SOURCES] declares a code twice.
	KindDuplicateSource Kind = "duplicate source"
	// KindUnknownFlag is returned for unrecognized [SOURCE-PARAMETERS]
	// flag names.
	KindUnknownFlag Kind = "unknown flag"
	// KindUnknownFeature is returned when a [GENERAL] row does not start
	// with a canonical feature type.
	KindUnknownFeature Kind = "unknown feature"
	// KindMalformedNumber is returned for numeric fields that do not parse
	// or for boundary flags outside 0/1.
	KindMalformedNumber Kind = "malformed number"
	// KindArityMismatch is returned when a row carries the wrong number of
	// fields for its feature class and declared source list.
	KindArityMismatch Kind = "arity mismatch"
	// KindMissingFeatureRow is returned when a required feature row is
	// absent from [GENERAL].
	KindMissingFeatureRow Kind = "missing feature row"
	// KindDuplicateFeatureRow is returned when a feature row appears twice.
	KindDuplicateFeatureRow Kind = "duplicate feature row"
)

// ConfigError reports the first validation failure encountered while
// parsing a hint file. Line is 1-based; it is zero for whole-file failures
// such as a missing section. Token is the offending token when one exists.
type ConfigError struct {
	Kind  Kind
	Line  int
	Token string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Line > 0 && e.Token != "":
		return fmt.Sprintf("%s at line %d: %q", e.Kind, e.Line, e.Token)
	case e.Line > 0:
		return fmt.Sprintf("%s at line %d", e.Kind, e.Line)
	case e.Token != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Token)
	default:
		return string(e.Kind)
	}
}

func errAt(kind Kind, line int, token string) *ConfigError {
	return &ConfigError{Kind: kind, Line: line, Token: token}
}
