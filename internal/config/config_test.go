package config

import (
	"testing"
	"time"

	"github.com/hance08/moneymgr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := NewDefault()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.DivisionPersonal, cfg.DefaultDivision())
	assert.Equal(t, model.AccountMain, cfg.DefaultAccount())
	assert.Equal(t, model.PeriodMonth, cfg.DefaultPeriod())
	assert.Equal(t, 3*time.Second, cfg.UI.NoticeDuration)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"unknown division", func(c *Config) { c.Defaults.Division = "home" }},
		{"unknown account", func(c *Config) { c.Defaults.Account = "wallet" }},
		{"unknown period", func(c *Config) { c.Defaults.Period = "decade" }},
		{"zero limit", func(c *Config) { c.Defaults.Limit = 0 }},
		{"negative notice", func(c *Config) { c.UI.NoticeDuration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateNormalizesDefaults(t *testing.T) {
	cfg := NewDefault()
	cfg.Defaults.Division = "Office"
	cfg.Defaults.Account = " Savings"
	cfg.Defaults.Period = "YEAR "

	require.NoError(t, cfg.Validate())

	assert.Equal(t, model.DivisionOffice, cfg.DefaultDivision())
	assert.Equal(t, model.AccountSavings, cfg.DefaultAccount())
	assert.Equal(t, model.PeriodYear, cfg.DefaultPeriod())
}
