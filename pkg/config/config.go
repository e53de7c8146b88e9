// Package config loads broker and monitor settings from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/emma-alert/emma-broker/pkg/common"
)

type Config struct {
	Redis   RedisConfig   `yaml:"redis"`
	Monitor MonitorConfig `yaml:"monitor"`
	Ingest  IngestConfig  `yaml:"ingest"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MonitorConfig struct {
	HostPort string `yaml:"host_port"`
}

type IngestConfig struct {
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Monitor: MonitorConfig{HostPort: ":2080"},
		Ingest:  IngestConfig{Rate: 5, Burst: 10},
	}
}

// Load reads configuration from file and applies environment variable
// overrides. An empty configPath skips the file and uses defaults plus
// environment only.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate ensures all required configuration values are set
func (c *Config) Validate() error {
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required (redis.addr or %s)", common.EnvKeyRedisAddr)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("redis db must not be negative")
	}
	if c.Monitor.HostPort == "" {
		return fmt.Errorf("monitor host_port is required (monitor.host_port or %s)", common.EnvKeyMonitorHostPort)
	}
	if c.Ingest.Rate < 0 || c.Ingest.Burst < 0 {
		return fmt.Errorf("ingest rate and burst must not be negative")
	}
	return nil
}

// applyEnvOverrides checks for environment variables with EMMA_ prefix
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(common.EnvKeyRedisAddr); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv(common.EnvKeyRedisPassword); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv(common.EnvKeyRedisDB); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}

	if v := os.Getenv(common.EnvKeyMonitorHostPort); v != "" {
		cfg.Monitor.HostPort = v
	}

	if v := os.Getenv(common.EnvKeyIngestRate); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Ingest.Rate = r
		}
	}
	if v := os.Getenv(common.EnvKeyIngestBurst); v != "" {
		if b, err := strconv.Atoi(v); err == nil {
			cfg.Ingest.Burst = b
		}
	}
}

// LimiterEnabled reports whether ingest rate limiting should be active.
// A zero rate or burst disables it.
func (i *IngestConfig) LimiterEnabled() bool {
	return i.Rate > 0 && i.Burst > 0
}
