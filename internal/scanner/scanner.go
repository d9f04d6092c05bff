package scanner

import (
	"context"
	"fmt"

	"MoveRadar/internal/calculator"
	"MoveRadar/internal/collector"
	"MoveRadar/internal/model"
	"MoveRadar/internal/sector"
)

// Scanner finds tickers whose intraday high/low movement falls inside a
// percentage band.
type Scanner struct {
	Fetcher collector.Fetcher
	Sectors sector.Lookup // optional; nil disables sector filtering
}

// New creates a Scanner.
func New(fetcher collector.Fetcher, sectors sector.Lookup) *Scanner {
	return &Scanner{Fetcher: fetcher, Sectors: sectors}
}

// Scan fetches bars for one batch of tickers and returns the movers inside
// [MinPct, MaxPct]. Tickers with no usable data are skipped. The result is
// unordered; ScanUniverse applies the final sort.
func (s *Scanner) Scan(ctx context.Context, tickers []string, p model.ScanParams) ([]model.MovementRecord, error) {
	if len(tickers) == 0 {
		return nil, nil
	}
	table, err := s.Fetcher.FetchBatch(ctx, tickers, p.Date, p.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch batch: %w", err)
	}

	records := make([]model.MovementRecord, 0)
	for _, sym := range tickers {
		rec, ok := buildRecord(sym, table[sym], p)
		if !ok {
			continue
		}
		if s.Sectors != nil {
			rec.Sector = s.Sectors.Sector(sym)
			if p.Sector != "" && rec.Sector != p.Sector {
				continue
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// buildRecord derives a MovementRecord from a ticker's bars. The movement
// value comes from the latest bar with a usable high/low; Open comes from the
// first bar and High/Low/Close from the last, so intraday series surface the
// session's opening and most recent prices. ok is false when the ticker has
// no signal or falls outside the band.
func buildRecord(sym string, bars []model.OHLCV, p model.ScanParams) (model.MovementRecord, bool) {
	if len(bars) == 0 {
		return model.MovementRecord{}, false
	}

	pct := 0.0
	found := false
	for i := len(bars) - 1; i >= 0; i-- {
		v, err := calculator.MovementPct(bars[i].High, bars[i].Low)
		if err == nil {
			pct = v
			found = true
			break
		}
	}
	if !found {
		return model.MovementRecord{}, false
	}
	if pct < p.MinPct || pct > p.MaxPct {
		return model.MovementRecord{}, false
	}

	last := bars[len(bars)-1]
	return model.MovementRecord{
		Symbol:      sym,
		MovementPct: calculator.Round2(pct),
		Open:        bars[0].Open,
		High:        last.High,
		Low:         last.Low,
		Close:       last.Close,
		Sector:      sector.Unknown,
	}, true
}
