package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MoveRadar/internal/model"
)

func TestDataAPIFetchBatch_DropsUnrequestedSymbols(t *testing.T) {
	var gotReq bulkBarsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		// A misbehaving provider returns a symbol nobody asked for.
		json.NewEncoder(w).Encode(map[string][]apiBar{
			"FOO.NS":   {{Timestamp: 1700000000, Open: 100, High: 106, Low: 100, Close: 104}},
			"STRAY.BO": {{Timestamp: 1700000000, Open: 50, High: 60, Low: 50, Close: 55}},
			"EMPTY.NS": {{}},
		})
	}))
	defer srv.Close()

	f := NewDataAPIFetcher(srv.URL, "", "")
	table, err := f.FetchBatch(context.Background(),
		[]string{"FOO.NS", "EMPTY.NS"}, time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC), model.IntervalDaily)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(gotReq.Symbols) != 2 || gotReq.Symbols[0] != "FOO.NS" {
		t.Errorf("request symbols = %v", gotReq.Symbols)
	}
	if _, ok := table["STRAY.BO"]; ok {
		t.Error("table contains a symbol that was never requested")
	}
	if _, ok := table["EMPTY.NS"]; ok {
		t.Error("all-zero bars should be dropped")
	}
	bars, ok := table["FOO.NS"]
	if !ok || len(bars) != 1 {
		t.Fatalf("FOO.NS bars = %v", bars)
	}
	if bars[0].High != 106 || bars[0].Low != 100 {
		t.Errorf("bar = %+v", bars[0])
	}
}

func TestDataAPIFetchBatch_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := NewDataAPIFetcher(srv.URL, "secret", "")
	if _, err := f.FetchBatch(context.Background(),
		[]string{"FOO.NS"}, time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC), model.IntervalDaily); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization = %q", gotAuth)
	}
}
