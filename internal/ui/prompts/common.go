package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/moneymgr/internal/model"
)

// AnyLabel is the option that leaves a filter field unset.
const AnyLabel = "Any"

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

func optionList(options []model.Option, allowAny bool) []huh.Option[string] {
	var opts []huh.Option[string]
	if allowAny {
		opts = append(opts, huh.NewOption(AnyLabel, ""))
	}
	for _, o := range options {
		opts = append(opts, huh.NewOption(optionTitle(o), o.Value))
	}
	return opts
}

func optionTitle(o model.Option) string {
	if o.Icon == "" {
		return o.Label
	}
	return o.Icon + " " + o.Label
}

// typedOptions converts taxonomy options for a select bound to a string enum.
func typedOptions[T ~string](options []model.Option) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(optionTitle(o), T(o.Value)))
	}
	return opts
}
