package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  string        `yaml:"allowed_origins"`
	AvatarDir       string        `yaml:"avatar_dir"`
	CalcRateLimit   int           `yaml:"calc_rate_limit"`
	CalcRateWindow  time.Duration `yaml:"calc_rate_window"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Load reads the environment, then overlays the YAML file named by
// CONFIG_PATH when it is set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		AvatarDir:       getEnv("AVATAR_DIR", ""),
		CalcRateLimit:   60,
		CalcRateWindow:  time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}

	var err error
	if cfg.CalcRateLimit, err = getEnvInt("CALC_RATE_LIMIT", cfg.CalcRateLimit); err != nil {
		return nil, err
	}
	if cfg.CalcRateWindow, err = getEnvDuration("CALC_RATE_WINDOW", cfg.CalcRateWindow); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return nil, err
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
