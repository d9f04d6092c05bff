package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"MoveRadar/internal/export"
	"MoveRadar/internal/model"
)

// Hub holds the latest scan result and pushes fresh results to websocket
// clients as the scheduler publishes them.
type Hub struct {
	mu       sync.RWMutex
	latest   *model.ScanResult
	clientMu sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Publish stores the latest result and broadcasts it to connected clients.
func (h *Hub) Publish(result *model.ScanResult) {
	h.mu.Lock()
	h.latest = result
	h.mu.Unlock()
	h.broadcast(result)
}

// Latest returns the most recently published result, or nil before the
// first scan completes.
func (h *Hub) Latest() *model.ScanResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

func (h *Hub) broadcast(result *model.ScanResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[ERROR] marshal scan result: %v", err)
		return
	}
	h.clientMu.Lock()
	defer h.clientMu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade: %v", err)
		return
	}

	// Register and send the on-connect snapshot under the same lock; the
	// websocket allows a single writer, and a broadcast racing the snapshot
	// would write the connection concurrently.
	h.clientMu.Lock()
	if latest := h.Latest(); latest != nil {
		if data, err := json.Marshal(latest); err == nil {
			conn.WriteMessage(websocket.TextMessage, data)
		}
	}
	h.clients[conn] = true
	h.clientMu.Unlock()

	// Drain reads until the client goes away.
	go func() {
		defer func() {
			h.clientMu.Lock()
			delete(h.clients, conn)
			h.clientMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) handleMovers(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	latest := h.Latest()
	if latest == nil {
		w.Write([]byte(`{"records":[]}`))
		return
	}
	if err := json.NewEncoder(w).Encode(latest); err != nil {
		log.Printf("[ERROR] encode movers response: %v", err)
	}
}

func (h *Hub) handleMoversCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="intraday_movements.csv"`)
	var records []model.MovementRecord
	if latest := h.Latest(); latest != nil {
		records = latest.Records
	}
	if err := export.WriteCSV(w, records); err != nil {
		log.Printf("[ERROR] write csv response: %v", err)
	}
}

// Server serves the dashboard API.
type Server struct {
	Hub  *Hub
	http *http.Server
}

// NewServer wires the Hub's handlers onto addr.
func NewServer(addr string, hub *Hub) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/movers", hub.handleMovers)
	mux.HandleFunc("/api/movers.csv", hub.handleMoversCSV)
	mux.HandleFunc("/ws", hub.handleWS)
	return &Server{
		Hub:  hub,
		http: &http.Server{Addr: addr, Handler: mux},
	}
}

// Start begins serving. Blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] dashboard listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
