// Package config loads application settings from the environment.
package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8888"`
	DataDir    string `envconfig:"DATA_DIR" default:"./data"`
	DBPath     string `envconfig:"DB_PATH"`
	BackupCron string `envconfig:"BACKUP_CRON"`
}

// Load reads the configuration from environment variables. DB_PATH defaults
// to activities.db inside the data directory. An empty BACKUP_CRON disables
// the scheduled CSV backup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "activities.db")
	}

	return &cfg, nil
}
