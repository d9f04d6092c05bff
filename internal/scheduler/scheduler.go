package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"MoveRadar/internal/model"
	"MoveRadar/internal/notifier"
	"MoveRadar/internal/recorder"
	"MoveRadar/internal/scanner"
	"MoveRadar/internal/server"
	"MoveRadar/internal/session"
	"MoveRadar/internal/symbols"
	"MoveRadar/internal/universe"
)

// universeMaxAge forces a symbol refresh before scanning with a listing
// older than one day.
const universeMaxAge = 24 * time.Hour

// Scheduler manages the recurring scan and universe refresh tasks. It
// replaces a blocking sleep-and-rerun loop with cron jobs that have explicit
// Start/Stop and a cancellation context.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Universe *universe.Manager
	Sources  []symbols.Source
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Hub      *server.Hub
	Params   model.ScanParams // template; Date is filled per run
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, um *universe.Manager, srcs []symbols.Source, tn *notifier.TelegramNotifier, rec recorder.Recorder, hub *server.Hub, params model.ScanParams) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Universe: um,
		Sources:  srcs,
		Notifier: tn,
		Recorder: rec,
		Hub:      hub,
		Params:   params,
		Ctx:      ctx,
	}
}

// RegisterAll registers the recurring scan and the daily universe refresh.
func (s *Scheduler) RegisterAll(refreshCron, universeCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(universeCron, s.universeTask); err != nil {
		return fmt.Errorf("register universe task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes a scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.runScan(false)
}

// refreshTask runs a scan on the cron tick, but only while the market
// session is open; outside it auto-refresh is paused.
func (s *Scheduler) refreshTask() {
	if !session.InTradingWindow(time.Now()) {
		log.Println("[INFO] market closed, auto-refresh paused")
		return
	}
	s.runScan(true)
}

func (s *Scheduler) runScan(live bool) {
	if s.Universe.IsStale(universeMaxAge) {
		log.Println("[INFO] symbol universe stale, refreshing before scan")
		s.universeTask()
	}
	tickers := s.Universe.Symbols()
	if len(tickers) == 0 {
		log.Println("[WARN] empty symbol universe, skipping scan")
		return
	}

	p := s.Params
	p.Date = session.DefaultScanDate(time.Now())
	if live {
		// Live ticks scan minute bars so the movement tracks the session.
		p.Interval = model.IntervalMinute
	}

	log.Printf("[INFO] scanning %d symbols on %s, band %.1f%%-%.1f%%",
		len(tickers), p.Date.Format("2006-01-02"), p.MinPct, p.MaxPct)
	result := s.Scanner.ScanUniverse(s.Ctx, tickers, p)
	log.Printf("[INFO] scan %s matched %d of %d symbols in %s",
		result.RunID, len(result.Records), result.UniverseSize,
		result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))

	if s.Hub != nil {
		s.Hub.Publish(result)
	}
	if err := s.Recorder.RecordScan(result); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	s.trySend(notifier.FormatScanReport(result))
}

// universeTask refreshes the cached NSE+BSE symbol list.
func (s *Scheduler) universeTask() {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Minute)
	defer cancel()
	if err := s.Universe.Refresh(ctx, s.Sources...); err != nil {
		log.Printf("[ERROR] universe refresh: %v", err)
		return
	}
	st := s.Universe.Status()
	log.Printf("[INFO] universe refreshed: %d symbols (nse=%d bse=%d)",
		len(st.Symbols), st.NSECount, st.BSECount)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.RunScanNow()
		return "Scan started."
	case "/status":
		st := s.Universe.Status()
		return notifier.FormatUniverseStatus(&st)
	default:
		return "Commands:\n/scan - run a scan now\n/status - symbol universe status"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Send(text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
