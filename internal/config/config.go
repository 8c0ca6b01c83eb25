package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/pocketledger/internal/common"
)

// Default locations. Both are resolved with ResolvePath.
const (
	DefaultDatabasePath = "$HOME/.local/share/pocket/pocket.db"
	DefaultBackupDir    = "$HOME/.local/share/pocket/backups"
)

// Config holds the settings the CLI needs to open the ledger.
type Config struct {
	DatabasePath string
	BackupDir    string
	LogLevel     string
	LogFormat    string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		DatabasePath: DefaultDatabasePath,
		BackupDir:    DefaultBackupDir,
		LogLevel:     "info",
		LogFormat:    "console",
	}
}

// Load reads configuration from Viper (config file, POCKET_ env vars and
// bound flags) on top of the defaults, and expands paths.
func Load() (*Config, error) {
	config := DefaultConfig()

	if v := viper.GetString("database.path"); v != "" {
		config.DatabasePath = v
	}
	if v := viper.GetString("backup.dir"); v != "" {
		config.BackupDir = v
	}
	if v := viper.GetString("logging.level"); v != "" {
		config.LogLevel = v
	}
	if v := viper.GetString("logging.format"); v != "" {
		config.LogFormat = v
	}

	var err error
	if config.DatabasePath, err = ResolvePath(config.DatabasePath); err != nil {
		return nil, err
	}
	if config.BackupDir, err = ResolvePath(config.BackupDir); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database path", common.ErrMissingConfig)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
