package universe

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"MoveRadar/internal/model"
	"MoveRadar/internal/symbols"
)

// Manager owns the cached NSE+BSE symbol universe with concurrency safety.
// It replaces ad-hoc session globals: state starts empty (or loaded from
// disk) and changes only through Refresh.
type Manager struct {
	mu       sync.Mutex
	state    *model.SymbolUniverse
	filePath string
}

// NewManager creates a Manager, loading cached state from disk when filePath
// is set. An empty filePath disables persistence.
func NewManager(filePath string) (*Manager, error) {
	state := &model.SymbolUniverse{}
	if filePath != "" {
		loaded, err := LoadState(filePath)
		if err != nil {
			return nil, err
		}
		state = loaded
	}
	return &Manager{state: state, filePath: filePath}, nil
}

// Symbols returns a copy of the cached symbol list.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.state.Symbols))
	copy(out, m.state.Symbols)
	return out
}

// Size returns the number of cached symbols.
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.Symbols)
}

// IsStale reports whether the cache is empty or older than maxAge.
func (m *Manager) IsStale(maxAge time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.state.Symbols) == 0 {
		return true
	}
	return time.Since(m.state.FetchedAt) > maxAge
}

// Status returns a copy of the current state.
func (m *Manager) Status() model.SymbolUniverse {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := *m.state
	st.Symbols = append([]string(nil), m.state.Symbols...)
	return st
}

// Refresh fetches all sources, merges the results, and persists the cache.
// A source that fails is skipped; the refresh fails only when no source
// yields symbols, in which case the previous list is kept.
func (m *Manager) Refresh(ctx context.Context, sources ...symbols.Source) error {
	lists := make([][]string, 0, len(sources))
	counts := make(map[string]int, len(sources))
	var firstErr error

	for _, src := range sources {
		list, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("[WARN] %s symbol fetch failed: %v", src.Name(), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		counts[src.Name()] = len(list)
		lists = append(lists, list)
	}

	merged := symbols.Merge(lists...)
	if len(merged) == 0 {
		if firstErr != nil {
			return fmt.Errorf("universe refresh: %w", firstErr)
		}
		return fmt.Errorf("universe refresh: no symbols from any source")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Symbols = merged
	m.state.NSECount = counts["nse"]
	m.state.BSECount = counts["bse"]
	m.state.FetchedAt = time.Now()
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save universe state: %v", err)
	}
	return nil
}

func (m *Manager) save() error {
	if m.filePath == "" {
		return nil
	}
	return SaveState(m.filePath, m.state)
}
