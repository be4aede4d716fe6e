package timeutil

import "time"

const dateLayout = "2006-01-02"

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

// FormatRunStamp renders a time as a filesystem-safe run identifier.
func FormatRunStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
