package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MoveRadar/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Symbols struct {
		NSEListURL string `yaml:"nse_list_url"`
		BSEListURL string `yaml:"bse_list_url"`
		StateFile  string `yaml:"state_file"`
	} `yaml:"symbols"`
	Scan struct {
		MinPct    float64 `yaml:"min_pct"`
		MaxPct    float64 `yaml:"max_pct"`
		BatchSize int     `yaml:"batch_size"`
		Interval  string  `yaml:"interval"`
		Sector    string  `yaml:"sector"`
	} `yaml:"scan"`
	Schedule struct {
		RefreshCron  string `yaml:"refresh_cron"`
		UniverseCron string `yaml:"universe_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCAN_MIN_PCT"); v != "" {
		var pct float64
		if _, err := fmt.Sscanf(v, "%f", &pct); err == nil {
			cfg.Scan.MinPct = pct
		}
	}
	if v := os.Getenv("SCAN_MAX_PCT"); v != "" {
		var pct float64
		if _, err := fmt.Sscanf(v, "%f", &pct); err == nil {
			cfg.Scan.MaxPct = pct
		}
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}

	// Defaults
	if cfg.Scan.MinPct == 0 && cfg.Scan.MaxPct == 0 {
		cfg.Scan.MinPct = 3
		cfg.Scan.MaxPct = 20
	}
	if cfg.Scan.BatchSize == 0 {
		cfg.Scan.BatchSize = 500
	}
	if cfg.Scan.Interval == "" {
		cfg.Scan.Interval = string(model.IntervalDaily)
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0/5 * * * *" // every 5 minutes; gated by market hours
	}
	if cfg.Schedule.UniverseCron == "" {
		cfg.Schedule.UniverseCron = "0 30 8 * * 1-5"
	}
	if cfg.Symbols.StateFile == "" {
		cfg.Symbols.StateFile = "data/universe.json"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8085"
	}

	return cfg, nil
}

// Validate checks that the scan parameters are sane.
func (c *Config) Validate() error {
	if c.Scan.MinPct < 0 {
		return fmt.Errorf("scan.min_pct must be non-negative")
	}
	if c.Scan.MaxPct < c.Scan.MinPct {
		return fmt.Errorf("scan.max_pct (%.2f) must be >= scan.min_pct (%.2f)", c.Scan.MaxPct, c.Scan.MinPct)
	}
	if c.Scan.BatchSize <= 0 {
		return fmt.Errorf("scan.batch_size must be positive")
	}
	switch model.Interval(c.Scan.Interval) {
	case model.IntervalDaily, model.IntervalMinute, model.Interval5Min:
	default:
		return fmt.Errorf("scan.interval must be one of 1d, 1m, 5m")
	}
	return nil
}
