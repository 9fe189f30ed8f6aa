package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/moneymgr/cmd/transaction"
	"github.com/hance08/moneymgr/internal/app"
	"github.com/hance08/moneymgr/internal/config"
	"github.com/hance08/moneymgr/internal/errhandler"
	"github.com/hance08/moneymgr/internal/ui"
	"github.com/hance08/moneymgr/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "moneymgr"
	envPrefix = "MONEYMGR"
)

var cfgFile string

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Filled in by PersistentPreRunE once flags are parsed.
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:           "mm",
		Short:         "mm is a terminal client for the Money Manager API",
		Long:          `mm records, edits and reviews income, expenses and transfers stored by the Money Manager backend.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := initConfig()
			if err != nil {
				return err
			}

			built, done, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = done
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().String("api", "", "override the backend base URL")
	rootCmd.PersistentFlags().String("log-level", "", "override the log level (debug, info, warn, error, off)")
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(transaction.NewTransactionCmd(application))

	rootCmd.AddCommand(transaction.NewAddCmd(application))
	rootCmd.AddCommand(transaction.NewListCmd(application))
	rootCmd.AddCommand(transaction.NewShowCmd(application))
	rootCmd.AddCommand(transaction.NewEditCmd(application))
	rootCmd.AddCommand(transaction.NewDeleteCmd(application))

	rootCmd.AddCommand(NewDashboardCmd(application))
	rootCmd.AddCommand(NewCategoriesCmd(application))
	rootCmd.AddCommand(NewUICmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	err := rootCmd.ExecuteContext(ctx)
	cleanup()

	if err != nil {
		if errhandler.IsInterrupt(err) {
			errhandler.HandleError(err)
			return
		}

		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func initConfig() (*config.Config, error) {
	created := false

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		created, err = createDefaultConfig(appDir)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	if created && ui.IsInteractive() && !viper.IsSet("api.base_url") {
		if err := initWizard(); err != nil {
			return nil, err
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg, nil
}

func initWizard() error {
	baseURL, err := prompts.PromptInitBaseURL(config.NewDefault().API.BaseURL)
	if err != nil {
		return err
	}

	viper.Set("api.base_url", baseURL)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Backend set to: %s\n", baseURL)

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}

// createDefaultConfig writes config.yaml with the built-in defaults when
// it does not exist yet, and reports whether it did.
func createDefaultConfig(appDir string) (bool, error) {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	defaults := config.NewDefault()
	fresh := viper.New()
	fresh.Set("api.timeout", defaults.API.Timeout.String())
	fresh.Set("defaults.division", defaults.Defaults.Division)
	fresh.Set("defaults.account", defaults.Defaults.Account)
	fresh.Set("defaults.period", defaults.Defaults.Period)
	fresh.Set("defaults.limit", defaults.Defaults.Limit)
	fresh.Set("log.level", defaults.Log.Level)
	fresh.Set("log.file", defaults.Log.File)
	fresh.Set("ui.notice_duration", defaults.UI.NoticeDuration.String())

	if err := fresh.WriteConfigAs(configPath); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
