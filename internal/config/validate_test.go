package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name: "empty params are valid",
			mutate: func(c *Config) {
				c.Params = ParamsConfig{}
			},
		},
		{
			name:        "newer version",
			mutate:      func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr:     true,
			errContains: "newer than this rcmd supports",
		},
		{
			name:        "empty binary",
			mutate:      func(c *Config) { c.Rclone.Binary = "  " },
			wantErr:     true,
			errContains: "rclone.binary is empty",
		},
		{
			name:        "zero copied_for",
			mutate:      func(c *Config) { c.Copy.CopiedFor = 0 },
			wantErr:     true,
			errContains: "copy.copied_for must be positive",
		},
		{
			name:        "negative notify_for",
			mutate:      func(c *Config) { c.Copy.NotifyFor = -1 },
			wantErr:     true,
			errContains: "copy.notify_for must be positive",
		},
		{
			name:        "unitless copied_for",
			mutate:      func(c *Config) { c.Copy.CopiedFor = 1500 },
			wantErr:     true,
			errContains: "durations need a unit",
		},
		{
			name:   "one millisecond is accepted",
			mutate: func(c *Config) { c.Copy.NotifyFor = time.Millisecond },
		},
		{
			name:        "unknown clipboard mode",
			mutate:      func(c *Config) { c.Clipboard.Mode = "pbcopy" },
			wantErr:     true,
			errContains: "Unknown clipboard mode",
		},
		{
			name:        "unknown colour mode",
			mutate:      func(c *Config) { c.Output.Color = "rainbow" },
			wantErr:     true,
			errContains: "output.color 'rainbow' isn't valid",
		},
		{
			name:   "empty colour mode means auto",
			mutate: func(c *Config) { c.Output.Color = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.NoError(t, Validate(nil))
}

func TestValidate_BareIntegerDurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("copy:\n  copied_for: 1500\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Nanosecond, cfg.Copy.CopiedFor)

	err = Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "copy.copied_for is 1.5µs")
	assert.Contains(t, err.Error(), "'1500ms'")
}

func TestMarshal_WritesDurationsWithUnits(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "copied_for: 1.5s")
	assert.Contains(t, string(data), "notify_for: 2s")
}
