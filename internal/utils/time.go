package utils

import "time"

const (
	layoutDate     = "January 2, 2006"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02 15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDate renders the human-readable date used in email bodies and
// ledger rows.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatClock renders the time-of-day column for ledger rows.
func FormatClock(t time.Time) string {
	return t.Format(layoutTime)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}
