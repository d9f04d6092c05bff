package collector

import (
	"context"
	"time"

	"MoveRadar/internal/model"
)

// Fetcher defines the interface for fetching price data for a batch of tickers.
// Implementations return a PriceTable keyed by the requested symbols; a ticker
// with no trade data for the date is simply absent from the table.
type Fetcher interface {
	FetchBatch(ctx context.Context, symbols []string, date time.Time, interval model.Interval) (model.PriceTable, error)
	Name() string
}
