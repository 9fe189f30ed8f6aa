package views

import (
	"time"

	"github.com/hance08/moneymgr/internal/state"
	"github.com/pterm/pterm"
)

// RenderNotice prints the session notice while it is still active.
func RenderNotice(s state.State, now time.Time) {
	if !s.NoticeActive(now) {
		return
	}
	if s.Notice.Kind == state.NoticeError {
		pterm.Error.Println(s.Notice.Message)
		return
	}
	pterm.Success.Println(s.Notice.Message)
}
