package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/tapcalc/internal/configs"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapcalc.cue")
	src := `
format: "%.2f"
precision: 100
alt: true
log_level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	cfg, err := loadConfig(configs.NewLoader([]string{path}, schema))
	require.NoError(t, err)
	require.Equal(t, "%.2f", cfg.format)
	require.Equal(t, uint(100), cfg.prec)
	require.True(t, cfg.alt)
	require.False(t, cfg.strict)
	require.Equal(t, "> ", cfg.prompt)
	require.Equal(t, "debug", cfg.logLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(configs.NewLoader(nil, schema))
	require.NoError(t, err)
	require.Equal(t, defaultConfig, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown":  `colour: "blue"`,
		"negative": `precision: -1`,
		"level":    `log_level: "loud"`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tapcalc.cue")
			require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
			_, err := loadConfig(configs.NewLoader([]string{path}, schema))
			require.Error(t, err)
		})
	}
}

func TestConfigPathsExtraFirst(t *testing.T) {
	paths := configPaths("/some/where.cue")
	require.NotEmpty(t, paths)
	require.Equal(t, "/some/where.cue", paths[0])
}
