package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"

	"MoveRadar/internal/model"
)

func TestHandleMovers_BeforeFirstScan(t *testing.T) {
	hub := NewHub()
	rec := httptest.NewRecorder()
	hub.handleMovers(rec, httptest.NewRequest("GET", "/api/movers", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var body struct {
		Records []model.MovementRecord `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Records) != 0 {
		t.Errorf("expected no records, got %v", body.Records)
	}
}

func TestHandleMovers_AfterPublish(t *testing.T) {
	hub := NewHub()
	hub.Publish(&model.ScanResult{
		RunID:  "run-1",
		Date:   "2025-08-22",
		MinPct: 3,
		MaxPct: 20,
		Records: []model.MovementRecord{
			{Symbol: "FOO.NS", MovementPct: 6.0, Open: 100, High: 106, Low: 100, Close: 104, Sector: "Unknown"},
		},
	})

	rec := httptest.NewRecorder()
	hub.handleMovers(rec, httptest.NewRequest("GET", "/api/movers", nil))

	var got model.ScanResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.RunID != "run-1" || len(got.Records) != 1 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestHandleMoversCSV(t *testing.T) {
	hub := NewHub()
	hub.Publish(&model.ScanResult{
		Records: []model.MovementRecord{
			{Symbol: "FOO.NS", MovementPct: 6.0, Open: 100, High: 106, Low: 100, Close: 104, Sector: "Unknown"},
		},
	})

	rec := httptest.NewRecorder()
	hub.handleMoversCSV(rec, httptest.NewRequest("GET", "/api/movers.csv", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "FOO.NS,6.00,") {
		t.Errorf("row = %q", lines[1])
	}
}

func dialWS(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srvURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestHandleWS_SnapshotOnConnect(t *testing.T) {
	hub := NewHub()
	hub.Publish(&model.ScanResult{RunID: "snapshot-run"})

	srv := httptest.NewServer(http.HandlerFunc(hub.handleWS))
	defer srv.Close()

	conn := dialWS(t, srv.URL)
	defer conn.Close()

	var got model.ScanResult
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if got.RunID != "snapshot-run" {
		t.Errorf("snapshot run id = %q, want snapshot-run", got.RunID)
	}
}

// Clients connecting while the scheduler publishes must never see the
// snapshot write race a broadcast write on the same connection.
func TestHandleWS_ConnectDuringPublish(t *testing.T) {
	hub := NewHub()
	hub.Publish(&model.ScanResult{RunID: "run-0"})

	srv := httptest.NewServer(http.HandlerFunc(hub.handleWS))
	defer srv.Close()

	stop := make(chan struct{})
	var pubWG sync.WaitGroup
	pubWG.Add(1)
	go func() {
		defer pubWG.Done()
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
				hub.Publish(&model.ScanResult{RunID: fmt.Sprintf("run-%d", i)})
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(
				"ws"+strings.TrimPrefix(srv.URL, "http"), nil)
			if err != nil {
				t.Errorf("dial: %v", err)
				return
			}
			defer conn.Close()
			// Snapshot plus a couple of broadcasts, each a whole frame.
			for j := 0; j < 3; j++ {
				var got model.ScanResult
				if err := conn.ReadJSON(&got); err != nil {
					t.Errorf("read frame %d: %v", j, err)
					return
				}
				if got.RunID == "" {
					t.Errorf("frame %d has no run id", j)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(stop)
	pubWG.Wait()
}
