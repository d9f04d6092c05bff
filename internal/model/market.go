package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Interval is the bar granularity requested from a price provider.
type Interval string

const (
	IntervalDaily  Interval = "1d"
	IntervalMinute Interval = "1m"
	Interval5Min   Interval = "5m"
)

// PriceTable maps a ticker symbol to its bars for one scan request.
// Every key was present in the request batch; a requested ticker with no
// trade data is simply absent. The table never outlives the scan call
// that created it.
type PriceTable map[string][]OHLCV
