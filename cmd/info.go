package cmd

import (
	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/model"
	"github.com/hance08/moneymgr/internal/ui/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type infoRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, backend URL and whether the backend answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	svc := r.app.Service
	cfg := svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	reachable := true
	if err := svc.Dashboard.CheckBackend(r.cmd.Context()); err != nil {
		r.app.Logger.Debug("backend check failed", zap.Error(err))
		reachable = false
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		APIBaseURL:     svc.BaseURL,
		APIReachable:   reachable,
		APITimeout:     cfg.API.Timeout.String(),
		DefaultDiv:     model.DivisionLabel(cfg.DefaultDivision()),
		DefaultAccount: model.AccountLabel(cfg.DefaultAccount()),
		DefaultPeriod:  string(cfg.DefaultPeriod()),
		LogLevel:       cfg.Log.Level,
		LogFile:        cfg.Log.File,
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}
