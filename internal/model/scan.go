package model

import "time"

// MovementRecord is one row of scan output. Immutable once built; ownership
// passes to the caller aggregating results across batches.
type MovementRecord struct {
	Symbol      string  `json:"symbol"`
	MovementPct float64 `json:"movement_pct"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Sector      string  `json:"sector"`
}

// ScanParams carries the caller-validated inputs of a movement scan.
// MinPct and MaxPct are inclusive bounds.
type ScanParams struct {
	Date      time.Time
	MinPct    float64
	MaxPct    float64
	Interval  Interval
	Sector    string // optional filter; empty means all sectors
	BatchSize int
}

// ScanResult is the combined, sorted output of one full universe scan.
type ScanResult struct {
	RunID        string           `json:"run_id"`
	Date         string           `json:"date"`
	MinPct       float64          `json:"min_pct"`
	MaxPct       float64          `json:"max_pct"`
	Interval     Interval         `json:"interval"`
	UniverseSize int              `json:"universe_size"`
	Records      []MovementRecord `json:"records"`
	StartedAt    time.Time        `json:"started_at"`
	FinishedAt   time.Time        `json:"finished_at"`
}
