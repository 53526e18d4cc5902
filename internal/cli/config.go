package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/delehef/metro/pkg/render"
)

// fileConfig is the optional TOML configuration accepted by --config.
//
//	[render]
//	splat = 3
//	color = false
//	rounded = true
//
// Fields are pointers so an absent key is distinguishable from an explicit
// zero value; unset keys keep their defaults.
type fileConfig struct {
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Splat   *int  `toml:"splat"`
	Color   *bool `toml:"color"`
	Rounded *bool `toml:"rounded"`
}

// loadConfig reads and decodes a TOML config file.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// apply layers the config's set values over s.
func (c fileConfig) apply(s render.Settings) render.Settings {
	if c.Render.Splat != nil {
		s = s.Splat(*c.Render.Splat)
	}
	if c.Render.Color != nil {
		s = s.Color(*c.Render.Color)
	}
	if c.Render.Rounded != nil {
		s = s.Rounded(*c.Render.Rounded)
	}
	return s
}
