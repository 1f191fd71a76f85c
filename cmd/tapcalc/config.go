package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/zephyrtronium/tapcalc/internal/configs"
)

//go:embed schema.cue
var schema string

// config holds the settings that may come from config files. Flags override
// them.
type config struct {
	format   string
	prec     uint
	alt      bool
	strict   bool
	prompt   string
	logLevel string
}

var defaultConfig = config{
	format:   "%g",
	prompt:   "> ",
	logLevel: "info",
}

// configPaths lists the config files that exist, in order of precedence.
// extra, if not empty, comes first.
func configPaths(extra string) []string {
	var paths []string
	if extra != "" {
		paths = append(paths, extra)
	}

	filenames := []string{
		"tapcalc.cue",
		".tapcalc.cue",
	}
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

// loadConfig reads settings from a loader over the defaults.
func loadConfig(loader configs.Loader) (config, error) {
	cfg := defaultConfig
	if err := loader.Err(); err != nil {
		return cfg, err
	}
	if s := configs.First[string](loader, "format"); s != "" {
		cfg.format = s
	}
	if p := configs.First[int](loader, "precision"); p > 0 {
		cfg.prec = uint(p)
	}
	cfg.alt = configs.First[bool](loader, "alt")
	cfg.strict = configs.First[bool](loader, "strict")
	if s := configs.First[string](loader, "prompt"); s != "" {
		cfg.prompt = s
	}
	if s := configs.First[string](loader, "log_level"); s != "" {
		cfg.logLevel = s
	}
	return cfg, nil
}
