package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvConfig overrides the config file location.
	EnvConfig = "TASKLOG_CONFIG"

	// envPrefix namespaces per-key environment overrides, e.g.
	// TASKLOG_DATA_DIR and TASKLOG_DAY_START.
	envPrefix = "TASKLOG"
)

// Load resolves and reads the configuration, returning the effective
// config and the file path it came from.
//
// The file is looked up at the explicit path, then $TASKLOG_CONFIG,
// then <user config dir>/tasklog/config.yaml. A missing file at the
// default location is created with commented defaults; a missing file
// at an explicitly requested location is an error. Environment
// overrides apply on top of the file, and defaults fill the rest.
func Load(explicit string) (Config, string, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("day_start", cfg.DayStart)
	v.SetEnvPrefix(envPrefix)
	v.BindEnv("data_dir")
	v.BindEnv("day_start")

	path, required := configPath(explicit)
	if path != "" {
		switch _, err := os.Stat(path); {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return cfg, path, fmt.Errorf("read config %s: %w", path, err)
			}
		case os.IsNotExist(err) && required:
			return cfg, path, fmt.Errorf("config file %s does not exist", path)
		case os.IsNotExist(err):
			// First run: leave a file behind for the user to edit. Its
			// values match the defaults, so it needs no read.
			if err := WriteDefault(path); err != nil {
				return cfg, path, fmt.Errorf("write default config: %w", err)
			}
		default:
			return cfg, path, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.DataDir = ExpandHome(cfg.DataDir)
	if _, err := cfg.DayStartOffset(); err != nil {
		return cfg, path, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

// configPath resolves the config file location. required reports
// whether the user named the path themselves, in which case a missing
// file is an error rather than an invitation to create one.
func configPath(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(base, "tasklog", "config.yaml"), false
}

// WriteDefault writes a commented default configuration to path,
// creating parent directories as needed.
func WriteDefault(path string) error {
	content := `# tasklog configuration

# Directory holding the interval log. Defaults to the platform data
# directory ($XDG_DATA_HOME/tasklog or ~/.local/share/tasklog).
# data_dir: ~/.local/share/tasklog

# Time of day at which a calendar day begins, as HH:MM. Intervals that
# start before this boundary count toward the previous day.
day_start: "00:00"
`
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
