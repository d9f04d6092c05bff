package scanner

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"MoveRadar/internal/model"
)

// DefaultBatchSize bounds the number of tickers per provider request.
const DefaultBatchSize = 500

// ScanUniverse splits tickers into fixed-size batches, scans each in turn,
// and returns the combined result sorted by movement descending. A failed
// batch degrades to zero rows for its tickers; it never aborts the scan.
func (s *Scanner) ScanUniverse(ctx context.Context, tickers []string, p model.ScanParams) *model.ScanResult {
	size := p.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	result := &model.ScanResult{
		RunID:        uuid.NewString(),
		Date:         p.Date.Format("2006-01-02"),
		MinPct:       p.MinPct,
		MaxPct:       p.MaxPct,
		Interval:     p.Interval,
		UniverseSize: len(tickers),
		StartedAt:    time.Now(),
	}

	for start := 0; start < len(tickers); start += size {
		end := start + size
		if end > len(tickers) {
			end = len(tickers)
		}
		records, err := s.Scan(ctx, tickers[start:end], p)
		if err != nil {
			log.Printf("[WARN] batch %d-%d failed, skipping: %v", start, end, err)
			continue
		}
		result.Records = append(result.Records, records...)
	}

	SortRecords(result.Records)
	result.FinishedAt = time.Now()
	return result
}

// SortRecords orders by movement descending with symbol ascending on ties,
// so any batch partition of the same universe yields an identical table.
func SortRecords(records []model.MovementRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].MovementPct != records[j].MovementPct {
			return records[i].MovementPct > records[j].MovementPct
		}
		return records[i].Symbol < records[j].Symbol
	})
}
