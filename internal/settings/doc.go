// Package settings loads and validates the hintcfg CLI's own configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the optional TOML file at
// ~/.config/hintcfg/config.toml. Settings cover the CLI surface only: the
// default hint file to operate on, log level and format, and table output
// styling. Hint files themselves are parsed by the extrinsic package and
// never fall back to defaults.
package settings
