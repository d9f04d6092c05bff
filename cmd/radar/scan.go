package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"MoveRadar/internal/export"
	"MoveRadar/internal/model"
	"MoveRadar/internal/scanner"
	"MoveRadar/internal/session"
	"MoveRadar/internal/universe"
)

func scanCmd() *cobra.Command {
	var (
		minPct   float64
		maxPct   float64
		dateStr  string
		sectorF  string
		outPath  string
		intraday bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a one-shot movement scan and print or export the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			p := model.ScanParams{
				MinPct:    cfg.Scan.MinPct,
				MaxPct:    cfg.Scan.MaxPct,
				Interval:  model.Interval(cfg.Scan.Interval),
				Sector:    cfg.Scan.Sector,
				BatchSize: cfg.Scan.BatchSize,
			}
			if cmd.Flags().Changed("min") {
				p.MinPct = minPct
			}
			if cmd.Flags().Changed("max") {
				p.MaxPct = maxPct
			}
			if sectorF != "" {
				p.Sector = sectorF
			}
			if intraday {
				p.Interval = model.IntervalMinute
			}
			if p.MinPct < 0 || p.MaxPct < p.MinPct {
				return fmt.Errorf("invalid band: min=%.2f max=%.2f", p.MinPct, p.MaxPct)
			}
			if dateStr != "" {
				d, err := time.ParseInLocation("2006-01-02", dateStr, session.Location())
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				p.Date = d
			} else {
				p.Date = session.DefaultScanDate(time.Now())
			}

			ctx := cmd.Context()

			um, err := universe.NewManager(cfg.Symbols.StateFile)
			if err != nil {
				return fmt.Errorf("init universe: %w", err)
			}
			if um.IsStale(24 * time.Hour) {
				log.Println("[INFO] fetching symbol universe...")
				if err := um.Refresh(ctx, newSources(cfg)...); err != nil {
					return fmt.Errorf("refresh universe: %w", err)
				}
			}
			tickers := um.Symbols()
			log.Printf("[INFO] scanning %d symbols on %s, band %.1f%%-%.1f%%",
				len(tickers), p.Date.Format("2006-01-02"), p.MinPct, p.MaxPct)

			sc := scanner.New(newFetcher(cfg), nil)
			result := sc.ScanUniverse(ctx, tickers, p)

			if len(result.Records) == 0 {
				log.Println("[INFO] no stocks match the movement band")
			}
			if outPath != "" {
				if err := export.WriteFile(outPath, result.Records); err != nil {
					return fmt.Errorf("write csv: %w", err)
				}
				log.Printf("[INFO] wrote %d rows to %s", len(result.Records), outPath)
				return nil
			}
			return export.WriteCSV(os.Stdout, result.Records)
		},
	}

	cmd.Flags().Float64Var(&minPct, "min", 3, "minimum movement % (overrides config)")
	cmd.Flags().Float64Var(&maxPct, "max", 20, "maximum movement % (overrides config)")
	cmd.Flags().StringVar(&dateStr, "date", "", "trading date YYYY-MM-DD (default: today during market hours, else yesterday)")
	cmd.Flags().StringVar(&sectorF, "sector", "", "sector filter (requires sector data)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write results to a CSV file instead of stdout")
	cmd.Flags().BoolVar(&intraday, "intraday", false, "scan minute bars instead of daily")
	return cmd
}
