package sector

// Unknown is the placeholder label used when no sector data exists for a symbol.
const Unknown = "Unknown"

// Lookup resolves a ticker symbol to its sector label. No bundled data source
// exists yet; callers supply their own implementation or pass nil, in which
// case every record carries the Unknown placeholder and sector filtering is
// a pass-through.
type Lookup interface {
	Sector(symbol string) string
}

// Static is a map-backed Lookup for callers that bring their own sector data.
type Static map[string]string

func (s Static) Sector(symbol string) string {
	if sec, ok := s[symbol]; ok {
		return sec
	}
	return Unknown
}
