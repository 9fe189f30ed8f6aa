package state

import (
	"time"

	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
)

// Event is one user or network action fed to Reduce.
type Event interface {
	event()
}

type LoadStarted struct{}

type TransactionsLoaded struct {
	Transactions []model.Transaction
}

type LoadFailed struct {
	Err error
	At  time.Time
}

type ViewChanged struct {
	View View
}

type PeriodChanged struct {
	Period model.Period
}

type FiltersChanged struct {
	Filters model.Filter
}

type FiltersCleared struct{}

type CreateOpened struct {
	Now      time.Time
	Defaults form.Defaults
}

// EditOpened is refused with an error notice when the transaction is locked.
type EditOpened struct {
	Transaction model.Transaction
	Now         time.Time
}

// FormEdited replaces the open form after the user changed a field.
type FormEdited struct {
	Form form.Form
}

type FormClosed struct{}

type SubmitSucceeded struct {
	At time.Time
}

type SubmitFailed struct {
	Err error
	At  time.Time
}

type DeleteRequested struct {
	Transaction model.Transaction
	Now         time.Time
}

type DeleteCancelled struct{}

type DeleteSucceeded struct {
	At time.Time
}

type DeleteFailed struct {
	Err error
	At  time.Time
}

type NoticeExpired struct {
	Now time.Time
}

func (LoadStarted) event()        {}
func (TransactionsLoaded) event() {}
func (LoadFailed) event()         {}
func (ViewChanged) event()        {}
func (PeriodChanged) event()      {}
func (FiltersChanged) event()     {}
func (FiltersCleared) event()     {}
func (CreateOpened) event()       {}
func (EditOpened) event()         {}
func (FormEdited) event()         {}
func (FormClosed) event()         {}
func (SubmitSucceeded) event()    {}
func (SubmitFailed) event()       {}
func (DeleteRequested) event()    {}
func (DeleteCancelled) event()    {}
func (DeleteSucceeded) event()    {}
func (DeleteFailed) event()       {}
func (NoticeExpired) event()      {}
