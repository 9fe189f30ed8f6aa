package errhandler

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/moneymgr/internal/constants"
	"github.com/hance08/moneymgr/internal/service"
	"github.com/hance08/moneymgr/internal/store"
	"github.com/hance08/moneymgr/internal/validation"
	"github.com/pterm/pterm"
)

func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println(constants.MsgCancelled)
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// IsInterrupt reports whether the user aborted a survey or huh prompt
// or hit Ctrl+C while a request was in flight.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// UserMessage picks the one line shown to the user for a failed action.
// Backend messages win; transport failures and unknown errors use fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrTransactionLocked) {
		return constants.MsgLocked
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return "Please fix the highlighted fields"
	}

	var apiErr *store.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

// Wrap turns err into the error returned to the root command. A backend or
// policy message replaces the error text; otherwise the fallback is
// prefixed to the underlying cause. The original chain stays intact.
func Wrap(err error, fallback string) error {
	if err == nil {
		return nil
	}
	msg := UserMessage(err, fallback)
	if msg == fallback {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	return &userError{msg: msg, err: err}
}
