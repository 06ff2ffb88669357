// Package extrinsic loads, validates, and serializes extrinsic hint-weighting
// configuration files of the kind consumed by gene-prediction engines.
//
// A hint file declares the evidence sources in play ([SOURCES]), optional
// per-source behaviour flags ([SOURCE-PARAMETERS]), a free-form provenance
// label ([GROUP]), and one weight row per gene-structure feature type
// ([GENERAL]). Parsing is a single linear pass and validation is
// all-or-nothing: either every section, row, and per-source column group
// checks out and an immutable Config is returned, or a *ConfigError pinpoints
// the first offending line and token.
//
// The returned Config is never mutated after construction and is safe to
// share across any number of concurrent readers.
package extrinsic
