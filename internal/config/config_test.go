package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scan.MinPct != 3 || cfg.Scan.MaxPct != 20 {
		t.Errorf("band = %.1f-%.1f, want 3-20", cfg.Scan.MinPct, cfg.Scan.MaxPct)
	}
	if cfg.Scan.BatchSize != 500 {
		t.Errorf("batch size = %d, want 500", cfg.Scan.BatchSize)
	}
	if cfg.Scan.Interval != "1d" {
		t.Errorf("interval = %s, want 1d", cfg.Scan.Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
scan:
  min_pct: 5
  max_pct: 12
  batch_size: 100
  interval: 1m
server:
  listen_addr: ":9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scan.MinPct != 5 || cfg.Scan.MaxPct != 12 {
		t.Errorf("band = %.1f-%.1f, want 5-12", cfg.Scan.MinPct, cfg.Scan.MaxPct)
	}
	if cfg.Scan.BatchSize != 100 {
		t.Errorf("batch size = %d, want 100", cfg.Scan.BatchSize)
	}
	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("listen addr = %s", cfg.Server.ListenAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCAN_MIN_PCT", "4.5")
	t.Setenv("SCAN_MAX_PCT", "15")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scan.MinPct != 4.5 || cfg.Scan.MaxPct != 15 {
		t.Errorf("band = %.1f-%.1f, want 4.5-15", cfg.Scan.MinPct, cfg.Scan.MaxPct)
	}
	if cfg.Database.SQLitePath != "/tmp/override.db" {
		t.Errorf("sqlite path = %s", cfg.Database.SQLitePath)
	}
}

func TestValidate_BadBand(t *testing.T) {
	path := writeConfig(t, `
scan:
  min_pct: 10
  max_pct: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for inverted band")
	}
}

func TestValidate_BadInterval(t *testing.T) {
	path := writeConfig(t, `
scan:
  interval: 2h
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown interval")
	}
}
