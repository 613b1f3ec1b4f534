package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roach88/tasklog/internal/task"
)

// logFileName is the interval log's file name inside the data
// directory.
const logFileName = "tasklog.jsonl"

// Config holds the tool's settings.
type Config struct {
	// DataDir is the directory holding the interval log.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// DayStart is the time of day at which a calendar day begins, in
	// HH:MM form. Intervals starting before the boundary count toward
	// the previous day.
	DayStart string `yaml:"day_start" mapstructure:"day_start"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  defaultDataDir(),
		DayStart: "00:00",
	}
}

// LogPath returns the interval log location inside the data directory.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, logFileName)
}

// DayStartOffset parses the day_start boundary into an offset from
// midnight.
func (c Config) DayStartOffset() (time.Duration, error) {
	return task.ParseDayStart(c.DayStart)
}

// defaultDataDir picks the platform data directory: $XDG_DATA_HOME if
// set, else ~/.local/share. Without a resolvable home directory the
// log lands under the working directory.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tasklog")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasklog"
	}
	return filepath.Join(home, ".local", "share", "tasklog")
}

// ExpandHome resolves a leading ~ or ~/ against the current user's
// home directory, leaving the path untouched when home is unknown.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
