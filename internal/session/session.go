package session

import "time"

// NSE/BSE cash-market session hours, Indian Standard Time.
const (
	openHour    = 9
	openMinute  = 15
	closeHour   = 15
	closeMinute = 30
)

var ist *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	ist = loc
}

// Location returns the exchange timezone.
func Location() *time.Location { return ist }

// InTradingWindow reports whether t falls within the 09:15-15:30 IST session,
// boundaries included.
func InTradingWindow(t time.Time) bool {
	t = t.In(ist)
	mins := t.Hour()*60 + t.Minute()
	return mins >= openHour*60+openMinute && mins <= closeHour*60+closeMinute
}

// DefaultScanDate returns the trading date to scan when the caller does not
// pick one: today while the session is open, otherwise the previous day.
func DefaultScanDate(now time.Time) time.Time {
	now = now.In(ist)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ist)
	if InTradingWindow(now) {
		return day
	}
	return day.AddDate(0, 0, -1)
}
