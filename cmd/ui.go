package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/service"
	"github.com/hance08/moneymgr/internal/state"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/ui/prompts"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type uiRunner struct {
	svc   *service.Service
	state state.State
}

func NewUICmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start an interactive session",
		Long:  `Browse the dashboard and history, and add, edit or delete transactions from one menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ui.IsInteractive() {
				return fmt.Errorf("the interactive session needs a terminal")
			}
			runner := &uiRunner{
				svc:   a.Service,
				state: state.New(a.Service.Config.DefaultPeriod(), a.Service.Config.UI.NoticeDuration),
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *uiRunner) dispatch(e state.Event) {
	r.state = state.Reduce(r.state, e)
}

func (r *uiRunner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := r.svc.Transaction.Now()
		r.dispatch(state.NoticeExpired{Now: now})

		if r.state.Stale {
			r.reload(ctx)
		}

		pterm.Println()
		if err := r.render(ctx, now); err != nil {
			return err
		}
		views.RenderNotice(r.state, now)

		action, err := prompts.PromptSessionAction(r.state)
		if err != nil {
			return err
		}

		if err := r.handle(ctx, action); err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println(constants.MsgCancelled)
				r.dispatch(state.FormClosed{})
				r.dispatch(state.DeleteCancelled{})
				continue
			}
			return err
		}
		if action == prompts.ActionQuit {
			return nil
		}
	}
}

func (r *uiRunner) reload(ctx context.Context) {
	r.dispatch(state.LoadStarted{})

	txs, err := r.svc.Transaction.List(ctx, r.state.Filters)
	if err != nil {
		r.dispatch(state.LoadFailed{Err: err, At: r.svc.Transaction.Now()})
		return
	}
	r.dispatch(state.TransactionsLoaded{Transactions: txs})
}

func (r *uiRunner) render(ctx context.Context, now time.Time) error {
	if r.state.View == state.ViewHistory {
		return views.NewTransactionListView(now).Render(r.state.Transactions, r.state.Filters, r.svc.Config.Defaults.Limit)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Loading dashboard...")
	dash, err := r.svc.Dashboard.Load(ctx, r.state.Period, r.state.Filters)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		pterm.Error.Println(errhandler.UserMessage(err, constants.MsgStatsFailed))
		return nil
	}
	return views.RenderDashboard(dash, r.state.Filters)
}

func (r *uiRunner) handle(ctx context.Context, action prompts.Action) error {
	switch action {
	case prompts.ActionDashboard:
		r.dispatch(state.ViewChanged{View: state.ViewDashboard})

	case prompts.ActionHistory:
		r.dispatch(state.ViewChanged{View: state.ViewHistory})

	case prompts.ActionPeriod:
		p, err := prompts.PromptPeriod(r.state.Period)
		if err != nil {
			return err
		}
		r.dispatch(state.PeriodChanged{Period: p})

	case prompts.ActionFilters:
		f, err := prompts.PromptFilter(r.state.Filters, r.svc.Taxonomy)
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return err
			}
			pterm.Error.Println(err)
			return nil
		}
		r.dispatch(state.FiltersChanged{Filters: f})

	case prompts.ActionClearFilters:
		r.dispatch(state.FiltersCleared{})

	case prompts.ActionRefresh:
		r.dispatch(state.FiltersChanged{Filters: r.state.Filters})

	case prompts.ActionAdd:
		r.dispatch(state.CreateOpened{
			Now: r.svc.Transaction.Now(),
			Defaults: form.Defaults{
				Division: r.svc.Config.DefaultDivision(),
				Account:  r.svc.Config.DefaultAccount(),
			},
		})
		return r.runForm(ctx)

	case prompts.ActionEdit:
		tx, err := r.pickEditable("Which transaction do you want to edit?")
		if err != nil || tx == nil {
			return err
		}
		r.dispatch(state.EditOpened{Transaction: *tx, Now: r.svc.Transaction.Now()})
		return r.runForm(ctx)

	case prompts.ActionDelete:
		tx, err := r.pickEditable("Which transaction do you want to delete?")
		if err != nil || tx == nil {
			return err
		}
		return r.runDelete(ctx, *tx)
	}

	return nil
}

// pickEditable offers only rows still inside the edit window.
func (r *uiRunner) pickEditable(title string) (*model.Transaction, error) {
	var editable []model.Transaction
	for _, tx := range r.state.Transactions {
		if r.svc.Transaction.LockStatus(tx).Editable {
			editable = append(editable, tx)
		}
	}
	if len(editable) == 0 {
		pterm.Info.Println("No transactions are inside the 12-hour edit window")
		return nil, nil
	}
	return prompts.PromptPickTransaction(title, editable)
}

func (r *uiRunner) runForm(ctx context.Context) error {
	for r.state.Form != nil {
		current := *r.state.Form

		edited, err := prompts.PromptDraft(current, r.svc.Taxonomy, r.svc.Transaction.Now())
		if err != nil {
			return err
		}

		submitted, in := edited.Submit(r.svc.Transaction.Validator())
		r.dispatch(state.FormEdited{Form: submitted})
		if in == nil {
			views.RenderFieldErrors(submitted.Errors)
			continue
		}

		if err := views.RenderDraftSummary(submitted.Mode, in); err != nil {
			return err
		}
		ok, err := prompts.PromptConfirm("Save this transaction?", true)
		if err != nil {
			return err
		}
		if !ok {
			r.dispatch(state.FormClosed{})
			return nil
		}

		if submitted.Mode == form.ModeEdit {
			_, err = r.svc.Transaction.Update(ctx, *submitted.Editing, submitted.Draft)
		} else {
			_, err = r.svc.Transaction.Create(ctx, submitted.Draft)
		}

		now := r.svc.Transaction.Now()
		if err == nil {
			r.dispatch(state.SubmitSucceeded{At: now})
			return nil
		}

		r.dispatch(state.SubmitFailed{Err: err, At: now})
		pterm.Error.Println(r.state.Form.SubmitError)

		retry, err := prompts.PromptConfirm("Edit and try again?", true)
		if err != nil {
			return err
		}
		if !retry {
			r.dispatch(state.FormClosed{})
		}
	}
	return nil
}

func (r *uiRunner) runDelete(ctx context.Context, tx model.Transaction) error {
	r.dispatch(state.DeleteRequested{Transaction: tx, Now: r.svc.Transaction.Now()})
	if r.state.PendingDelete == nil {
		return nil
	}

	if err := views.RenderTransactionDeletePreview(r.state.PendingDelete); err != nil {
		return err
	}

	ok, err := ui.Confirm("Do you want to delete this transaction?")
	if err != nil {
		return err
	}
	if !ok {
		r.dispatch(state.DeleteCancelled{})
		return nil
	}

	if err := r.svc.Transaction.Delete(ctx, *r.state.PendingDelete); err != nil {
		r.dispatch(state.DeleteFailed{Err: err, At: r.svc.Transaction.Now()})
		return nil
	}
	r.dispatch(state.DeleteSucceeded{At: r.svc.Transaction.Now()})
	return nil
}
