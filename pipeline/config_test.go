package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/internal/errs"
)

func TestDefaultConfig_NeedsTargetNameToValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.ErrorIs(t, cfg.Validate(), errs.ErrTargetColumnMissing)

	cfg.TargetName = "bad_flag"
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate_RejectsOutOfRangeThresholds(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
	}{
		{"missing below zero", func(c *Config) { c.MissingThreshold = -0.1 }},
		{"missing above one", func(c *Config) { c.MissingThreshold = 1.1 }},
		{"correlation below zero", func(c *Config) { c.CorrelationThreshold = -0.1 }},
		{"correlation above one", func(c *Config) { c.CorrelationThreshold = 1.1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TargetName = "bad_flag"
			tc.edit(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_DelegatesToWoEConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetName = "bad_flag"
	cfg.WoE.IVThreshold = -1
	require.Error(t, cfg.Validate())
}
