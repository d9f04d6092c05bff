package symbols

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultNSEListURL = "https://nsearchives.nseindia.com/content/equities/EQUITY_L.csv"

// NSESource fetches the NSE equity listing (CSV) and appends the ".NS" suffix.
type NSESource struct {
	URL    string
	Client *http.Client
}

// NewNSESource creates an NSE listing source with optional proxy support.
func NewNSESource(listURL, proxyURL string) *NSESource {
	if listURL == "" {
		listURL = defaultNSEListURL
	}
	return &NSESource{URL: listURL, Client: newHTTPClient(proxyURL)}
}

func (s *NSESource) Name() string { return "nse" }

func (s *NSESource) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nse fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nse: status %d, body: %s", resp.StatusCode, string(body))
	}
	return parseNSEList(resp.Body)
}

// parseNSEList reads the equity listing CSV and returns suffixed symbols.
func parseNSEList(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("nse parse: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("nse: empty listing")
	}

	col := 0
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "SYMBOL") {
			col = i
			break
		}
	}

	symbols := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		sym := strings.TrimSpace(row[col])
		if sym == "" {
			continue
		}
		symbols = append(symbols, sym+".NS")
	}
	return symbols, nil
}
