package utils

import (
	"testing"
	"time"
)

func TestBucketLabel(t *testing.T) {
	ts := func(hour, min int) time.Time {
		return time.Date(2024, time.March, 14, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		ts       time.Time
		interval string
		want     string
	}{
		{"sub-hour afternoon", ts(14, 5), "5m", "2:05 PM"},
		{"sub-hour midnight hour", ts(0, 5), "1m", "12:05 AM"},
		{"sub-hour 1pm", ts(13, 0), "15m", "1:00 PM"},
		{"sub-hour noon", ts(12, 30), "30m", "12:30 PM"},
		{"hourly", ts(14, 0), "1h", "2:00 PM"},
		{"hourly noon", ts(12, 0), "1h", "12:00 PM"},
		{"90 minute drops minutes", ts(10, 30), "90m", "10:00 AM"},
		{"60m alias", ts(9, 0), "60m", "9:00 AM"},
		{"daily", ts(15, 0), "1d", "03/14"},
		{"five day", ts(15, 0), "5d", "03/14"},
		{"weekly", ts(0, 0), "1wk", "Thu"},
		{"monthly", ts(0, 0), "1mo", "03/14"},
		{"quarterly", ts(0, 0), "3mo", "Mar 24"},
		{"unknown multi-year", ts(0, 0), "1y", "2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketLabel(tt.ts, tt.interval); got != tt.want {
				t.Errorf("BucketLabel(%v, %q) = %q, want %q", tt.ts, tt.interval, got, tt.want)
			}
		})
	}
}

func TestValidTokens(t *testing.T) {
	if !IsValidPeriod("1d") || !IsValidPeriod("max") {
		t.Error("expected known periods to validate")
	}
	if IsValidPeriod("2d") {
		t.Error("unexpected period validated")
	}
	if !IsValidInterval("1m") || !IsValidInterval("3mo") {
		t.Error("expected known intervals to validate")
	}
	if IsValidInterval("7m") {
		t.Error("unexpected interval validated")
	}
}
