package state

import (
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/logic/editlock"
	"github.com/hance08/moneymgr/internal/model"
)

// Reduce returns the state that follows s after e.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case LoadStarted:
		s.Loading = true
		s.Stale = false

	case TransactionsLoaded:
		s.Loading = false
		s.Transactions = e.Transactions

	case LoadFailed:
		s.Loading = false
		s = s.notify(NoticeError, errhandler.UserMessage(e.Err, constants.MsgLoadFailed), e.At)

	case ViewChanged:
		s.View = e.View

	case PeriodChanged:
		if e.Period.IsValid() {
			s.Period = e.Period
		}

	case FiltersChanged:
		s.Filters = e.Filters
		s.Stale = true

	case FiltersCleared:
		s.Filters = model.Filter{}
		s.Stale = true

	case CreateOpened:
		f := form.NewCreate(e.Now, e.Defaults)
		s.Form = &f

	case EditOpened:
		if !editlock.IsEditable(e.Transaction, e.Now) {
			return s.notify(NoticeError, constants.MsgLocked, e.Now)
		}
		f := form.NewEdit(e.Transaction)
		s.Form = &f

	case FormEdited:
		if s.Form == nil {
			return s
		}
		f := e.Form
		s.Form = &f

	case FormClosed:
		s.Form = nil

	case SubmitSucceeded:
		if s.Form == nil {
			return s
		}
		msg := constants.MsgAdded
		if s.Form.Mode == form.ModeEdit {
			msg = constants.MsgUpdated
		}
		s.Form = nil
		s.Stale = true
		s = s.notify(NoticeSuccess, msg, e.At)

	case SubmitFailed:
		if s.Form == nil {
			return s
		}
		fallback := constants.MsgAddFailed
		if s.Form.Mode == form.ModeEdit {
			fallback = constants.MsgUpdateFailed
		}
		msg := errhandler.UserMessage(e.Err, fallback)
		f := s.Form.Failed(msg)
		s.Form = &f
		s = s.notify(NoticeError, msg, e.At)

	case DeleteRequested:
		if !editlock.IsEditable(e.Transaction, e.Now) {
			return s.notify(NoticeError, constants.MsgLocked, e.Now)
		}
		tx := e.Transaction
		s.PendingDelete = &tx

	case DeleteCancelled:
		s.PendingDelete = nil

	case DeleteSucceeded:
		if s.PendingDelete == nil {
			return s
		}
		s.PendingDelete = nil
		s.Stale = true
		s = s.notify(NoticeSuccess, constants.MsgDeleted, e.At)

	case DeleteFailed:
		s.PendingDelete = nil
		s = s.notify(NoticeError, errhandler.UserMessage(e.Err, constants.MsgDeleteFailed), e.At)

	case NoticeExpired:
		if s.Notice != nil && !e.Now.Before(s.Notice.ExpiresAt) {
			s.Notice = nil
		}
	}

	return s
}
