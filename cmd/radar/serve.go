package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"MoveRadar/internal/model"
	"MoveRadar/internal/notifier"
	"MoveRadar/internal/recorder"
	"MoveRadar/internal/scanner"
	"MoveRadar/internal/scheduler"
	"MoveRadar/internal/server"
	"MoveRadar/internal/universe"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the auto-refreshing scanner with a dashboard API and Telegram reports",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			fetcher := newFetcher(cfg)
			log.Printf("[INFO] data source: %s", fetcher.Name())

			um, err := universe.NewManager(cfg.Symbols.StateFile)
			if err != nil {
				return fmt.Errorf("init universe: %w", err)
			}

			var tn *notifier.TelegramNotifier
			if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
				tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			}

			var rec recorder.Recorder
			if cfg.Database.SQLitePath != "" {
				sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
				if err != nil {
					log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
					rec = recorder.NewNoopRecorder()
				} else {
					rec = sr
					defer sr.Close()
				}
			} else {
				rec = recorder.NewNoopRecorder()
			}

			hub := server.NewHub()
			srv := server.NewServer(cfg.Server.ListenAddr, hub)

			params := model.ScanParams{
				MinPct:    cfg.Scan.MinPct,
				MaxPct:    cfg.Scan.MaxPct,
				Interval:  model.Interval(cfg.Scan.Interval),
				Sector:    cfg.Scan.Sector,
				BatchSize: cfg.Scan.BatchSize,
			}
			sc := scanner.New(fetcher, nil)

			sched := scheduler.NewScheduler(ctx, sc, um, newSources(cfg), tn, rec, hub, params)
			if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.UniverseCron); err != nil {
				return fmt.Errorf("register cron tasks: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			go func() {
				if err := srv.Start(); err != nil {
					log.Printf("[ERROR] dashboard server: %v", err)
				}
			}()

			if tn != nil {
				go tn.StartPolling(ctx, sched.HandleCommand)
				log.Println("[INFO] Telegram polling started")
			}

			if os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, executing scan now")
				go sched.RunScanNow()
			}

			log.Println("[INFO] MoveRadar is running. Press Ctrl+C to stop.")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			log.Println("[INFO] shutdown signal received, stopping...")
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("[WARN] server shutdown: %v", err)
			}
			log.Println("[INFO] MoveRadar stopped")
			return nil
		},
	}
}
