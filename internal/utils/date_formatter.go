package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/moneymgr/internal/constants"
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(constants.DisplayDate)
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(constants.DateTimeFormat)
}

// ParseDateInput accepts "today", "yesterday", YYYY-MM-DD or YYYY-MM-DD HH:MM
// in the local zone. A bare date keeps the time of day from now.
func ParseDateInput(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "", "today", "now":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if t, err := time.ParseInLocation(constants.DateTimeFormat, s, now.Location()); err == nil {
		return t, nil
	}

	d, err := time.ParseInLocation(constants.DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', use YYYY-MM-DD", s)
	}
	h, m, sec := now.Clock()
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, sec, 0, now.Location()), nil
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Month %d", month)
	}
	return time.Month(month).String()[:3]
}
