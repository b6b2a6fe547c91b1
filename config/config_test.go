// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvshape/config"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "XY", cfg.Cut.Plane)
	assert.Equal(t, 1.0, cfg.Cut.Offset)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Sort, cfg.Sort)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvshape.yaml")
	yamlDoc := "input: data/in.txt\nlog:\n  level: debug\n  format: json\ncut:\n  plane: yz\n  offset: 0.5\nsort: x\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	t.Setenv(config.EnvSort, "name")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/in.txt", cfg.Input)
	assert.Equal(t, config.Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, config.Cut{Plane: "yz", Offset: 0.5}, cfg.Cut)
	assert.Equal(t, "name", cfg.Sort, "environment wins over the file")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o600))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		config.EnvInput:     "x.txt",
		config.EnvLogLevel:  "error",
		config.EnvCutOffset: " 2.5 ",
	})))
	assert.Equal(t, "x.txt", cfg.Input)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 2.5, cfg.Cut.Offset)

	assert.Error(t, cfg.ApplyEnv(env(map[string]string{config.EnvCutOffset: "abc"})))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"Level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"Format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"Plane", func(c *config.Config) { c.Cut.Plane = "XW" }},
		{"Sort", func(c *config.Config) { c.Sort = "area" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
