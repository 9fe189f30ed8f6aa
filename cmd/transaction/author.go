package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/form"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/service"
	"github.com/hance08/moneymgr/internal/ui/prompts"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/pterm/pterm"
)

type saveFunc func(ctx context.Context, d model.Draft) (*model.Transaction, error)

// authoring drives a form from first prompt to a confirmed backend write.
// In flag mode there is a single attempt and no prompt.
type authoring struct {
	svc         *service.Service
	interactive bool
	save        saveFunc
	failMsg     string
}

// Run returns the saved transaction, or nil when the user cancelled.
func (a *authoring) Run(ctx context.Context, f form.Form, prompt bool) (*model.Transaction, error) {
	for {
		if prompt {
			next, err := prompts.PromptDraft(f, a.svc.Taxonomy, a.svc.Transaction.Now())
			if err != nil {
				return nil, err
			}
			f = next
		}

		next, in := f.Submit(a.svc.Transaction.Validator())
		f = next
		if in == nil {
			views.RenderFieldErrors(f.Errors)
			if !a.interactive {
				return nil, fmt.Errorf("transaction not saved: %d invalid field(s)", len(f.Errors))
			}
			prompt = true
			continue
		}

		if err := views.RenderDraftSummary(f.Mode, in); err != nil {
			return nil, err
		}

		if a.interactive {
			ok, err := prompts.PromptConfirm("Save this transaction?", true)
			if err != nil {
				return nil, err
			}
			if !ok {
				pterm.Info.Println("Nothing saved")
				return nil, nil
			}
		}

		tx, err := a.save(ctx, f.Draft)
		if err == nil {
			return tx, nil
		}

		if !a.interactive || errors.Is(err, service.ErrTransactionLocked) || errhandler.IsInterrupt(err) {
			return nil, errhandler.Wrap(err, a.failMsg)
		}
		msg := errhandler.UserMessage(err, a.failMsg)

		f = f.Failed(msg)
		pterm.Error.Println(f.SubmitError)

		retry, err := prompts.PromptConfirm("Edit and try again?", true)
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, nil
		}
		prompt = true
	}
}
