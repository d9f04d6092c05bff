package collector

import (
	"context"
	"time"

	"MoveRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Table model.PriceTable
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBatch(_ context.Context, symbols []string, _ time.Time, _ model.Interval) (model.PriceTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	table := make(model.PriceTable, len(symbols))
	for _, sym := range symbols {
		if bars, ok := m.Table[sym]; ok {
			table[sym] = bars
		}
	}
	return table, nil
}

// Bar builds a single-session bar; used by the mock and in tests.
func Bar(open, high, low, close float64) model.OHLCV {
	return model.OHLCV{
		Time:   time.Date(2025, 8, 22, 9, 15, 0, 0, time.UTC),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: 100000,
	}
}
