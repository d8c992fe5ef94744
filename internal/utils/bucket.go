package utils

import "time"

// BucketLabel maps a bar timestamp and its sampling interval to the
// short label rendered on chart axes. The label granularity shrinks as
// the interval grows so the axis stays readable for any span:
//
//	sub-hour intraday  -> "2:05 PM"
//	hourly class       -> "2:00 PM"
//	daily, monthly     -> "03/14"
//	weekly             -> "Mon"
//	quarterly          -> "Mar 24"
//	anything longer    -> "2024"
//
// The 12-hour clock follows the usual convention: hour 0 renders as
// "12 AM", hour 12 as "12 PM", hour 13 as "1 PM".
func BucketLabel(ts time.Time, interval string) string {
	switch interval {
	case "1m", "2m", "5m", "15m", "30m":
		return ts.Format("3:04 PM")
	case "60m", "90m", "1h":
		return ts.Format("3:00 PM")
	case "1d", "5d":
		return ts.Format("01/02")
	case "1wk":
		return ts.Format("Mon")
	case "1mo":
		return ts.Format("01/02")
	case "3mo", "6mo":
		return ts.Format("Jan 06")
	default:
		return ts.Format("2006")
	}
}
