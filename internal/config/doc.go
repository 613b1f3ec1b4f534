// Package config resolves the tool's settings from its config file,
// environment overrides, and built-in defaults.
//
// Precedence, highest first: TASKLOG_* environment variables, the
// config file, defaults. The file location itself follows the --config
// flag, then $TASKLOG_CONFIG, then the platform config directory.
package config
