// Package editlock decides whether a transaction may still be changed.
//
// A transaction is mutable for Window after the backend created it. All
// functions take the current instant explicitly and never read the clock.
// A record without a usable creation time is treated as locked.
package editlock

import (
	"fmt"
	"time"

	"github.com/hance08/moneymgr/internal/model"
)

const (
	Window = 12 * time.Hour

	// LockedLabel replaces the remaining time once the window has closed.
	LockedLabel = "Locked"
)

// IsEditable reports whether tx may be edited or deleted at now.
func IsEditable(tx model.Transaction, now time.Time) bool {
	if !tx.CreatedAt.Valid {
		return false
	}
	return now.Sub(tx.CreatedAt.Time) < Window
}

// TimeRemaining returns how long tx stays editable, never below zero.
func TimeRemaining(tx model.Transaction, now time.Time) time.Duration {
	if !tx.CreatedAt.Valid {
		return 0
	}
	remaining := Window - now.Sub(tx.CreatedAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatRemaining renders d as whole hours and minutes ("3h 25m").
// Seconds are truncated. Zero or negative durations render as LockedLabel.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return LockedLabel
	}
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Status is the lock state of one transaction at one instant.
type Status struct {
	Editable  bool
	Remaining time.Duration
}

func (s Status) String() string {
	if !s.Editable {
		return LockedLabel
	}
	return FormatRemaining(s.Remaining)
}

// Evaluate computes the full lock status of tx at now.
func Evaluate(tx model.Transaction, now time.Time) Status {
	return Status{
		Editable:  IsEditable(tx, now),
		Remaining: TimeRemaining(tx, now),
	}
}
