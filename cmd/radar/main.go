// radar - intraday movement scanner for NSE/BSE equities
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"MoveRadar/internal/collector"
	"MoveRadar/internal/config"
	"MoveRadar/internal/symbols"
)

var cfgPath string

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	godotenv.Load() // pick up .env if present

	rootCmd := &cobra.Command{
		Use:   "radar",
		Short: "Intraday movement scanner for NSE/BSE equities",
		Long: `radar scans the NSE and BSE equity universe for stocks whose intraday
high/low movement falls inside a configurable percentage band, and delivers
the results as CSV, a JSON/WebSocket dashboard, or Telegram reports.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml (default configs/config.yaml)")

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(symbolsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.BaseURL != "" {
		return collector.NewDataAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	return collector.NewYahooFetcher(cfg.Proxy)
}

func newSources(cfg *config.Config) []symbols.Source {
	return []symbols.Source{
		symbols.NewNSESource(cfg.Symbols.NSEListURL, cfg.Proxy),
		symbols.NewBSESource(cfg.Symbols.BSEListURL, cfg.Proxy),
	}
}
