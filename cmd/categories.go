package cmd

import (
	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewCategoriesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "List categories, divisions and accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.NewTaxonomyView().Render(a.Service.Taxonomy)
		},
	}
}
