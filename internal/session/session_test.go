package session

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 8, 22, hour, min, 0, 0, Location())
}

func TestInTradingWindow(t *testing.T) {
	cases := []struct {
		hour, min int
		want      bool
	}{
		{9, 14, false},
		{9, 15, true},
		{12, 0, true},
		{15, 30, true},
		{15, 31, false},
		{8, 0, false},
		{20, 45, false},
	}
	for _, c := range cases {
		if got := InTradingWindow(at(c.hour, c.min)); got != c.want {
			t.Errorf("InTradingWindow(%02d:%02d) = %v, want %v", c.hour, c.min, got, c.want)
		}
	}
}

func TestDefaultScanDate_DuringSession(t *testing.T) {
	got := DefaultScanDate(at(11, 30))
	want := time.Date(2025, 8, 22, 0, 0, 0, 0, Location())
	if !got.Equal(want) {
		t.Errorf("expected today %v, got %v", want, got)
	}
}

func TestDefaultScanDate_AfterClose(t *testing.T) {
	got := DefaultScanDate(at(18, 0))
	want := time.Date(2025, 8, 21, 0, 0, 0, 0, Location())
	if !got.Equal(want) {
		t.Errorf("expected previous day %v, got %v", want, got)
	}
}

func TestDefaultScanDate_OtherTimezone(t *testing.T) {
	// 07:30 UTC is 13:00 IST, inside the session.
	now := time.Date(2025, 8, 22, 7, 30, 0, 0, time.UTC)
	got := DefaultScanDate(now)
	want := time.Date(2025, 8, 22, 0, 0, 0, 0, Location())
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
