package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/moneymgr/internal/state"
)

type Action string

const (
	ActionDashboard    Action = "dashboard"
	ActionHistory      Action = "history"
	ActionAdd          Action = "add"
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
	ActionPeriod       Action = "period"
	ActionFilters      Action = "filters"
	ActionClearFilters Action = "clear-filters"
	ActionRefresh      Action = "refresh"
	ActionQuit         Action = "quit"
)

// PromptSessionAction offers the actions that make sense for the current view.
func PromptSessionAction(s state.State) (Action, error) {
	var opts []huh.Option[Action]

	if s.View == state.ViewDashboard {
		opts = append(opts,
			huh.NewOption("📜 Transaction history", ActionHistory),
			huh.NewOption("📅 Change period", ActionPeriod),
		)
	} else {
		opts = append(opts,
			huh.NewOption("📊 Dashboard", ActionDashboard),
			huh.NewOption("✏️  Edit a transaction", ActionEdit),
			huh.NewOption("🗑  Delete a transaction", ActionDelete),
		)
	}

	opts = append(opts,
		huh.NewOption("➕ Add transaction", ActionAdd),
		huh.NewOption("🔍 Filters", ActionFilters),
	)
	if s.Filters.IsActive() {
		opts = append(opts, huh.NewOption("✖ Clear filters", ActionClearFilters))
	}
	opts = append(opts,
		huh.NewOption("🔄 Refresh", ActionRefresh),
		huh.NewOption("Quit", ActionQuit),
	)

	var action Action
	err := huh.NewSelect[Action]().
		Title("What next?").
		Options(opts...).
		Value(&action).
		Run()

	return action, err
}
