package symbols

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBSEListURL = "https://api.bseindia.com/BseIndiaAPI/api/ListOfScripData/f/"

// bseScripGroups is the set of listing groups included in the scan universe.
const bseScripGroups = "A,B,XT,X,XC,XD,Z,ZP,Y,F,T,MT,IF,IT,BE"

// BSESource fetches the BSE scrip listing and appends the ".BO" suffix.
type BSESource struct {
	URL    string
	Client *http.Client
}

// NewBSESource creates a BSE listing source with optional proxy support.
func NewBSESource(listURL, proxyURL string) *BSESource {
	if listURL == "" {
		listURL = defaultBSEListURL
	}
	return &BSESource{URL: listURL, Client: newHTTPClient(proxyURL)}
}

func (s *BSESource) Name() string { return "bse" }

type bseScrip struct {
	ScripID string `json:"scrip_id"`
}

func (s *BSESource) Fetch(ctx context.Context) ([]string, error) {
	payload, err := json.Marshal(map[string]string{
		"statustype": "A",
		"scrip_grp":  bseScripGroups,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	// The BSE API rejects requests without browser origin headers.
	req.Header.Set("Referer", "https://www.bseindia.com/")
	req.Header.Set("Origin", "https://www.bseindia.com")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bse fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bse read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := body
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return nil, fmt.Errorf("bse: status %d, body: %s", resp.StatusCode, string(snippet))
	}
	return parseBSEList(body)
}

// parseBSEList decodes the scrip table, tolerating both the bare-array and
// the {"Table": [...]} response shapes the API has served over time.
func parseBSEList(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)

	var scrips []bseScrip
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &scrips); err != nil {
			return nil, fmt.Errorf("bse parse: %w", err)
		}
	} else {
		var wrapper struct {
			Table []bseScrip `json:"Table"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("bse parse: %w", err)
		}
		scrips = wrapper.Table
	}

	symbols := make([]string, 0, len(scrips))
	for _, sc := range scrips {
		id := strings.TrimSpace(sc.ScripID)
		if id == "" {
			continue
		}
		symbols = append(symbols, id+".BO")
	}
	return symbols, nil
}
