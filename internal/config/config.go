package config

import (
	"fmt"
	"time"

	"github.com/hance08/moneymgr/internal/model"
)

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	UI         UIConfig       `mapstructure:"ui"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DefaultsConfig struct {
	Division string `mapstructure:"division"`
	Account  string `mapstructure:"account"`
	Period   string `mapstructure:"period"`
	Limit    int    `mapstructure:"limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 15 * time.Second,
		},
		Defaults: DefaultsConfig{
			Division: string(model.DivisionPersonal),
			Account:  string(model.AccountMain),
			Period:   string(model.PeriodMonth),
			Limit:    20,
		},
		Log: LogConfig{Level: "warn"},
		UI:  UIConfig{NoticeDuration: 3 * time.Second},
	}
}

// Validate checks taxonomy-backed defaults and numeric bounds, and rewrites
// the defaults in their canonical lowercase form.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	division, err := model.ParseDivision(c.Defaults.Division)
	if err != nil {
		return fmt.Errorf("defaults.division: %w", err)
	}
	account, err := model.ParseAccount(c.Defaults.Account)
	if err != nil {
		return fmt.Errorf("defaults.account: %w", err)
	}
	period, err := model.ParsePeriod(c.Defaults.Period)
	if err != nil {
		return fmt.Errorf("defaults.period: %w", err)
	}
	c.Defaults.Division = string(division)
	c.Defaults.Account = string(account)
	c.Defaults.Period = string(period)

	if c.Defaults.Limit <= 0 {
		return fmt.Errorf("defaults.limit must be positive, got %d", c.Defaults.Limit)
	}
	if c.UI.NoticeDuration < 0 {
		return fmt.Errorf("ui.notice_duration can't be negative")
	}
	return nil
}

func (c *Config) DefaultDivision() model.Division {
	return model.Division(c.Defaults.Division)
}

func (c *Config) DefaultAccount() model.Account {
	return model.Account(c.Defaults.Account)
}

func (c *Config) DefaultPeriod() model.Period {
	return model.Period(c.Defaults.Period)
}
