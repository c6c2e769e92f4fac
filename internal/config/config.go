// Package config loads runtime settings with precedence
// environment > YAML file > defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of the marsrover binary.
type Config struct {
	Port               string        `yaml:"port"`
	LogLevel           string        `yaml:"logLevel"`
	LogFormat          string        `yaml:"logFormat"`
	DBPath             string        `yaml:"dbPath"`
	CatalogDir         string        `yaml:"catalogDir"`
	JWTSecret          string        `yaml:"jwtSecret"`
	JWTExpiresDays     int           `yaml:"jwtExpiresDays"`
	ClientOrigin       string        `yaml:"clientOrigin"`
	InterpretTimeout   time.Duration `yaml:"interpretTimeout"`
	RateLimitPerMinute int           `yaml:"rateLimitPerMinute"`
}

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "dev_secret_change_me"

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Port:               "5175",
		LogLevel:           "info",
		LogFormat:          "json",
		JWTSecret:          DefaultJWTSecret,
		JWTExpiresDays:     14,
		ClientOrigin:       "http://localhost:5173",
		InterpretTimeout:   10 * time.Second,
		RateLimitPerMinute: 120,
	}
}

// Load builds a Config from defaults, the YAML file at path (or
// ROVER_CONFIG when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("ROVER_CONFIG")
	}
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := mergeEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func mergeEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	str("PORT", &cfg.Port)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("DB_PATH", &cfg.DBPath)
	str("CATALOG_DIR", &cfg.CatalogDir)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("CLIENT_ORIGIN", &cfg.ClientOrigin)

	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_DAYS: %w", err)
		}
		cfg.JWTExpiresDays = n
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_PER_MINUTE: %w", err)
		}
		cfg.RateLimitPerMinute = n
	}
	if v := os.Getenv("INTERPRET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("INTERPRET_TIMEOUT: %w", err)
		}
		cfg.InterpretTimeout = d
	}
	return nil
}

// Validate rejects settings the binary cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("logFormat %q: want json or console", c.LogFormat))
	}
	if c.InterpretTimeout < 0 {
		errs = append(errs, errors.New("interpretTimeout must not be negative"))
	}
	if c.JWTExpiresDays <= 0 {
		errs = append(errs, errors.New("jwtExpiresDays must be positive"))
	}
	if c.RateLimitPerMinute <= 0 {
		errs = append(errs, errors.New("rateLimitPerMinute must be positive"))
	}
	return errors.Join(errs...)
}
