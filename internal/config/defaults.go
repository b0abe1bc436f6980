package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings. They match the embedded
// defaults/snake.yaml and are used when that fails to parse.
func DefaultSettings() Settings {
	return Settings{
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 10 * time.Minute,
		},
		Theme: ThemeConfig{
			Border: Glyph{Glyph: "■", Color: "default"},
			Food:   Glyph{Glyph: "■", Color: "cyan"},
			Head:   Glyph{Glyph: "■", Color: "red"},
			Body:   Glyph{Glyph: "■", Color: "red"},
		},
	}
}
