// Package config provides YAML-based settings loading for the snake
// binaries. Only ambient concerns live here; the playfield, starting score
// and tick timing are fixed in package snake.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Validation errors returned by Settings.Validate.
var (
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	ErrInvalidGlyph    = errors.New("config: glyph must be a single character")
	ErrInvalidColor    = errors.New("config: unknown color")
	ErrInvalidServer   = errors.New("config: invalid server settings")
)

// Settings is the root of the YAML document.
type Settings struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log destination for play; empty discards
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig maps each render category to a glyph and color.
type ThemeConfig struct {
	Border Glyph `yaml:"border"`
	Food   Glyph `yaml:"food"`
	Head   Glyph `yaml:"head"`
	Body   Glyph `yaml:"body"`
}

// Glyph is how one category is drawn.
type Glyph struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Validate checks every field that cannot be defaulted.
func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.Log.Level)
	}
	if s.Server.Address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServer)
	}
	if s.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle_timeout %s", ErrInvalidServer, s.Server.IdleTimeout)
	}

	for _, c := range []core.Category{core.CategoryBorder, core.CategoryFood, core.CategoryHead, core.CategoryBody} {
		g := s.Theme.For(c)
		if utf8.RuneCountInString(g.Glyph) != 1 {
			return fmt.Errorf("%w: theme.%s.glyph = %q", ErrInvalidGlyph, c, g.Glyph)
		}
		if _, ok := core.ParseColor(g.Color); !ok {
			return fmt.Errorf("%w: theme.%s.color = %q", ErrInvalidColor, c, g.Color)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (s Settings) LogLevel() log.Level {
	lvl, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// For returns the glyph configured for a category.
func (t ThemeConfig) For(c core.Category) Glyph {
	switch c {
	case core.CategoryFood:
		return t.Food
	case core.CategoryHead:
		return t.Head
	case core.CategoryBody:
		return t.Body
	default:
		return t.Border
	}
}

// Resolve returns the rune and color to draw. Invalid entries fall back to
// a plain block.
func (g Glyph) Resolve() (rune, core.Color) {
	r, size := utf8.DecodeRuneInString(g.Glyph)
	if size == 0 || r == utf8.RuneError {
		r = '■'
	}
	c, ok := core.ParseColor(g.Color)
	if !ok {
		c = core.ColorDefault
	}
	return r, c
}
