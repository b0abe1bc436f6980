package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

The snake moves one cell per tick. Each tick waits up to half a second
for a turn; the first valid turn wins and later keys are dropped.

Controls:
  Arrows/WASD/HJKL  - Turn
  R                 - Play again (after game over)
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(settings)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, settings, "snake")

	// Get terminal size for the first layout
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	if err := tui.Run(settings, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
