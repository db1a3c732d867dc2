package aggregate

import (
	"strconv"
	"strings"
	"time"
)

// Serial day numbers outside this window are not treated as Excel dates.
const (
	minExcelSerial = 20000
	maxExcelSerial = 70000
)

var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order: day/month/year, ISO, day-month-year.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
}

// ParseDateHint decodes a date hint cell as an Excel serial day number or one
// of the accepted textual layouts.
func ParseDateHint(hint string) (time.Time, bool) {
	raw := strings.TrimSpace(hint)
	if raw == "" {
		return time.Time{}, false
	}

	if isDigits(raw) {
		if serial, err := strconv.Atoi(raw); err == nil && serial >= minExcelSerial && serial <= maxExcelSerial {
			return excelEpoch.AddDate(0, 0, serial), true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t in UTC with a trailing Z, keeping microseconds only when present.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999") + "Z"
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
