package model

import "time"

// SymbolUniverse is the cached, merged NSE+BSE symbol list.
type SymbolUniverse struct {
	Symbols   []string  `json:"symbols"`
	NSECount  int       `json:"nse_count"`
	BSECount  int       `json:"bse_count"`
	FetchedAt time.Time `json:"fetched_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
