package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Storage.Endpoint != "localhost:9000" {
		t.Errorf("Storage.Endpoint = %q", cfg.Storage.Endpoint)
	}
	if cfg.Storage.Bucket != "specifications" {
		t.Errorf("Storage.Bucket = %q", cfg.Storage.Bucket)
	}
	if cfg.Storage.UseSSL {
		t.Error("Storage.UseSSL should default to false")
	}
	if cfg.Render.Workers != 0 {
		t.Errorf("Render.Workers = %d, want 0 (auto)", cfg.Render.Workers)
	}
	if got := cfg.Render.Timeout(); got != 30*time.Second {
		t.Errorf("Render.Timeout() = %v, want 30s", got)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`server:
  addr: ":9090"
storage:
  endpoint: "minio.internal:9000"
  bucket: "sheets"
  useSSL: true
render:
  workers: 3
  timeoutSeconds: 45
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Storage.Endpoint != "minio.internal:9000" {
		t.Errorf("Storage.Endpoint = %q", cfg.Storage.Endpoint)
	}
	if !cfg.Storage.UseSSL {
		t.Error("Storage.UseSSL not loaded")
	}
	if cfg.Render.Workers != 3 {
		t.Errorf("Render.Workers = %d", cfg.Render.Workers)
	}
	if got := cfg.Render.Timeout(); got != 45*time.Second {
		t.Errorf("Render.Timeout() = %v", got)
	}
	// Untouched values keep their defaults.
	if cfg.Database.URL == "" {
		t.Error("Database.URL default lost")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SPECSHEET_ADDR", ":7070")
	t.Setenv("DATABASE_URL", "postgres://db.internal:5432/specs")
	t.Setenv("S3_ENDPOINT", "s3.internal:9000")
	t.Setenv("S3_ACCESS_KEY", "worker")
	t.Setenv("S3_SECRET_KEY", "hunter2")
	t.Setenv("S3_BUCKET_SPECIFICATIONS", "prod-specifications")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("SPECSHEET_WORKERS", "5")
	t.Setenv("SPECSHEET_TIMEOUT_SECONDS", "60")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Database.URL != "postgres://db.internal:5432/specs" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Storage.AccessKey != "worker" || cfg.Storage.SecretKey != "hunter2" {
		t.Error("storage credentials not applied")
	}
	if cfg.Storage.Bucket != "prod-specifications" {
		t.Errorf("Storage.Bucket = %q", cfg.Storage.Bucket)
	}
	if !cfg.Storage.UseSSL {
		t.Error("S3_USE_SSL not applied")
	}
	if cfg.Render.Workers != 5 {
		t.Errorf("Render.Workers = %d", cfg.Render.Workers)
	}
	if got := cfg.Render.Timeout(); got != time.Minute {
		t.Errorf("Render.Timeout() = %v", got)
	}
}

func TestLoad_EnvIgnoresBadValues(t *testing.T) {
	t.Setenv("SPECSHEET_WORKERS", "lots")
	t.Setenv("S3_USE_SSL", "definitely")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Workers != 0 {
		t.Errorf("Render.Workers = %d, want default", cfg.Render.Workers)
	}
	if cfg.Storage.UseSSL {
		t.Error("unparseable S3_USE_SSL must keep the default")
	}
}
