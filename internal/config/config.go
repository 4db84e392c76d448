package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Auth struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"auth"`

	Cache struct {
		RefreshSeconds int `yaml:"refresh_seconds"`
	} `yaml:"cache"`

	Redis struct {
		Address    string `yaml:"address"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"redis"`

	Backup struct {
		Enabled       bool   `yaml:"enabled"`
		IntervalHours int    `yaml:"interval_hours"`
		Path          string `yaml:"path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"backup"`

	Export struct {
		Path string `yaml:"path"`
	} `yaml:"export"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/carshare.db"
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CacheRefreshInterval returns the background refresh period for entity caches.
func (c *Config) CacheRefreshInterval() time.Duration {
	if c.Cache.RefreshSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Cache.RefreshSeconds) * time.Second
}

// RedisTTL returns the expiry applied to mirrored cache entries.
func (c *Config) RedisTTL() time.Duration {
	if c.Redis.TTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// BackupInterval returns the period between scheduled backups.
func (c *Config) BackupInterval() time.Duration {
	if c.Backup.IntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Backup.IntervalHours) * time.Hour
}

// BcryptCost returns the configured password hashing cost.
func (c *Config) BcryptCost() int {
	if c.Auth.BcryptCost <= 0 {
		return 12
	}
	return c.Auth.BcryptCost
}
