package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"MoveRadar/internal/model"
)

// DataAPIFetcher implements Fetcher against a self-hosted market data REST
// API that serves bulk bar requests, so a whole batch costs one round trip.
type DataAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewDataAPIFetcher creates a new fetcher with optional proxy support.
func NewDataAPIFetcher(baseURL, apiKey, proxyURL string) *DataAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &DataAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
	}
}

func (f *DataAPIFetcher) Name() string { return "dataapi" }

// apiBar is the expected JSON shape of one bar from the data API.
type apiBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

type bulkBarsRequest struct {
	Symbols  []string `json:"symbols"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Interval string   `json:"interval"`
}

func (f *DataAPIFetcher) FetchBatch(ctx context.Context, symbols []string, date time.Time, interval model.Interval) (model.PriceTable, error) {
	day := date.Format("2006-01-02")
	payload, err := json.Marshal(bulkBarsRequest{
		Symbols:  symbols,
		Start:    day,
		End:      day,
		Interval: string(interval),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal bulk request: %w", err)
	}

	endpoint := f.BaseURL + "/api/v1/bars/bulk"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bulk bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch bulk bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload2 map[string][]apiBar
	if err := json.NewDecoder(resp.Body).Decode(&payload2); err != nil {
		return nil, fmt.Errorf("decode bulk bars: %w", err)
	}

	requested := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		requested[s] = true
	}

	table := make(model.PriceTable, len(payload2))
	for sym, rows := range payload2 {
		// The table must never carry symbols the caller did not ask for.
		if !requested[sym] {
			continue
		}
		bars := make([]model.OHLCV, 0, len(rows))
		for _, b := range rows {
			if b.Open == 0 && b.High == 0 && b.Low == 0 && b.Close == 0 {
				continue
			}
			bars = append(bars, model.OHLCV{
				Time:   time.Unix(b.Timestamp, 0),
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: b.Volume,
			})
		}
		sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
		if len(bars) > 0 {
			table[sym] = bars
		}
	}
	return table, nil
}
