// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds defaults an optional --config TOML file may override
// before command-line flags are applied; flags always win over the file.
type fileConfig struct {
	Maximize     bool `toml:"maximize"`
	ForceDoubles bool `toml:"force_doubles"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("lsapctl: read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("lsapctl: parse config %s: %w", path, err)
	}
	return cfg, nil
}
