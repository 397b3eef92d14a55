// Package config loads worker configuration from a YAML file with
// environment variable overrides. Every value has a usable default so a
// bare binary can run against local services.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/oemspec/go-specsheet/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for the sheet-generation worker.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Render   RenderConfig   `yaml:"render"`
}

// ServerConfig defines the HTTP trigger endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"
}

// DatabaseConfig defines the specification record store connection.
type DatabaseConfig struct {
	URL string `yaml:"url"` // postgres:// connection string
}

// StorageConfig defines the S3-compatible object storage connection.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSSL"`
}

// RenderConfig defines rendering behavior.
type RenderConfig struct {
	Workers        int    `yaml:"workers"`        // 0 = derive from CPU count
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // per browser navigation
	ScratchDir     string `yaml:"scratchDir"`     // empty = system temp dir
}

// Timeout returns the per-navigation browser timeout.
func (r RenderConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Default returns a configuration suitable for local development.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{URL: "postgres://localhost:5432/specifications?sslmode=disable"},
		Storage: StorageConfig{
			Endpoint: "localhost:9000",
			Bucket:   "specifications",
		},
		Render: RenderConfig{TimeoutSeconds: 30},
	}
}

// Load reads the config file at path, if any, then applies environment
// overrides. An empty path skips the file and uses defaults plus
// environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yamlutil.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables. Names match
// the deployment environment of the original worker where one existed.
func (c *Config) applyEnv() {
	setString(&c.Server.Addr, "SPECSHEET_ADDR")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Storage.Endpoint, "S3_ENDPOINT")
	setString(&c.Storage.AccessKey, "S3_ACCESS_KEY")
	setString(&c.Storage.SecretKey, "S3_SECRET_KEY")
	setString(&c.Storage.Bucket, "S3_BUCKET_SPECIFICATIONS")
	setBool(&c.Storage.UseSSL, "S3_USE_SSL")
	setInt(&c.Render.Workers, "SPECSHEET_WORKERS")
	setInt(&c.Render.TimeoutSeconds, "SPECSHEET_TIMEOUT_SECONDS")
	setString(&c.Render.ScratchDir, "SPECSHEET_SCRATCH_DIR")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
