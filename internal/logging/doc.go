// Package logging constructs the slog loggers used by the hintcfg CLI.
//
// Two handler formats are supported: a human-oriented console format
// (timestamp, level, message, key=value attrs) and standard JSON. Level and
// format normally come from the settings file; commands may override the
// level per invocation.
package logging
