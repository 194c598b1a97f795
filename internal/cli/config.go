package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds the optional defaults a user can put in a TOML file:
//
//	background = "#202020"
//	font       = "DejaVuSans-Bold"
//	fit_width  = 512
//	fit_height = 512
//
// Flags override every field.
type config struct {
	Background string `toml:"background"`
	Font       string `toml:"font"`
	FitWidth   int    `toml:"fit_width"`
	FitHeight  int    `toml:"fit_height"`
}

func defaultConfig() config {
	return config{Background: "white"}
}

// loadConfig reads the config file at path. An empty path falls back to
// <user config dir>/dango/config.toml, which is allowed to be absent; an
// explicitly given path is not.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "dango", "config.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if cfg.Background == "" {
		cfg.Background = "white"
	}
	return cfg, nil
}
