package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"MoveRadar/internal/model"
)

func TestSQLiteRecorder_RecordScan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	started := time.Now()
	result := &model.ScanResult{
		RunID:        "test-run",
		Date:         "2025-08-22",
		MinPct:       3,
		MaxPct:       20,
		Interval:     model.IntervalDaily,
		UniverseSize: 2,
		Records: []model.MovementRecord{
			{Symbol: "FOO.NS", MovementPct: 6.0, Open: 100, High: 106, Low: 100, Close: 104, Sector: "Unknown"},
			{Symbol: "QUX.BO", MovementPct: 5.3, Open: 250, High: 264, Low: 250, Close: 261, Sector: "Unknown"},
		},
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}
	if err := r.RecordScan(result); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	var runs, movers int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scan_runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM movers WHERE run_id = ?", "test-run").Scan(&movers); err != nil {
		t.Fatalf("count movers: %v", err)
	}
	if runs != 1 || movers != 2 {
		t.Errorf("runs=%d movers=%d, want 1 and 2", runs, movers)
	}

	var matched int
	if err := r.db.QueryRow("SELECT matched FROM scan_runs WHERE id = ?", "test-run").Scan(&matched); err != nil {
		t.Fatalf("select matched: %v", err)
	}
	if matched != 2 {
		t.Errorf("matched = %d, want 2", matched)
	}
}
