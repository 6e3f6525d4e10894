package repository

import "time"

// shortClock trims a TIME column value ("09:00:00") to the "HH:MM"
// form used throughout the wizard. Values already in short form pass
// through unchanged.
func shortClock(s string) string {
	if len(s) == 8 && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}

// dateString formats a DATE column value (scanned as time.Time because
// the DSN sets parseTime) back to "YYYY-MM-DD".
func dateString(t time.Time) string { return t.Format("2006-01-02") }
