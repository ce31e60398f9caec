package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
server:
  port: 8080
  timeout_seconds: 30
  environment: development

database:
  host: localhost
  port: 5432
  user: bookora
  dbname: bookora
  sslmode: disable

redis:
  addr: localhost:6379

logging:
  level: debug
  format: text
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfig(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want localhost", cfg.Database.Host)
	}
	if cfg.Database.DBName != "bookora" {
		t.Errorf("Database.DBName = %q, want bookora", cfg.Database.DBName)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestReadConfigMalformedFile(t *testing.T) {
	dir := writeConfig(t, "server: [not a map")

	if _, err := ReadConfig(dir); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
