package notifier

import (
	"fmt"
	"strings"

	"MoveRadar/internal/model"
)

// reportLimit caps the number of movers listed in one Telegram message.
const reportLimit = 15

// FormatScanReport formats a scan result into a Telegram message.
func FormatScanReport(result *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>MoveRadar scan</b> | %s\n", result.Date))
	b.WriteString(fmt.Sprintf("Band %.1f%%-%.1f%% | %d of %d symbols matched\n\n",
		result.MinPct, result.MaxPct, len(result.Records), result.UniverseSize))

	if len(result.Records) == 0 {
		b.WriteString("No stocks match the movement band.")
		return b.String()
	}

	top := result.Records
	if len(top) > reportLimit {
		top = top[:reportLimit]
	}
	for i, r := range top {
		b.WriteString(fmt.Sprintf("%2d. <b>%s</b> %.2f%%  O %.2f  H %.2f  L %.2f  C %.2f\n",
			i+1, r.Symbol, r.MovementPct, r.Open, r.High, r.Low, r.Close))
	}
	if len(result.Records) > len(top) {
		b.WriteString(fmt.Sprintf("… and %d more\n", len(result.Records)-len(top)))
	}
	return b.String()
}

// FormatUniverseStatus formats the cached symbol universe for display.
func FormatUniverseStatus(st *model.SymbolUniverse) string {
	var b strings.Builder
	b.WriteString("📦 <b>Symbol universe</b>\n\n")
	b.WriteString(fmt.Sprintf("Total: %d\n", len(st.Symbols)))
	b.WriteString(fmt.Sprintf("NSE: %d | BSE: %d\n", st.NSECount, st.BSECount))
	if !st.FetchedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Fetched: %s\n", st.FetchedAt.Format("2006-01-02 15:04")))
	} else {
		b.WriteString("Not fetched yet\n")
	}
	return b.String()
}
