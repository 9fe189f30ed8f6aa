// Package state holds the interactive session state and the reducer that
// advances it. State is a value: Reduce never mutates its argument, and the
// session loop performs any backend call the new state asks for.
package state

import (
	"time"

	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
)

type View int

const (
	ViewDashboard View = iota
	ViewHistory
)

func (v View) String() string {
	if v == ViewHistory {
		return "History"
	}
	return "Dashboard"
}

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient message that disappears at ExpiresAt.
type Notice struct {
	Kind      NoticeKind
	Message   string
	ExpiresAt time.Time
}

type State struct {
	View         View
	Period       model.Period
	Filters      model.Filter
	Transactions []model.Transaction
	Loading      bool
	// Stale is set when the history must be fetched again.
	Stale bool

	Form          *form.Form
	PendingDelete *model.Transaction
	Notice        *Notice

	NoticeDuration time.Duration
}

func New(period model.Period, noticeDuration time.Duration) State {
	if !period.IsValid() {
		period = model.PeriodMonth
	}
	return State{
		View:           ViewDashboard,
		Period:         period,
		Stale:          true,
		NoticeDuration: noticeDuration,
	}
}

// NoticeActive reports whether a notice should still be shown at now.
func (s State) NoticeActive(now time.Time) bool {
	return s.Notice != nil && now.Before(s.Notice.ExpiresAt)
}

func (s State) notify(kind NoticeKind, msg string, at time.Time) State {
	s.Notice = &Notice{Kind: kind, Message: msg, ExpiresAt: at.Add(s.NoticeDuration)}
	return s
}
