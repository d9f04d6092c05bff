package symbols

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// Source yields the raw ticker list of one exchange, already carrying its
// exchange suffix.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
	Name() string
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   60 * time.Second,
		Transport: transport,
	}
}

// Merge unions ticker lists, dropping duplicates and empty entries.
// The output is sorted for deterministic batching.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
