// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake play       - Play in this terminal
//	snake serve      - Start SSH server for remote play
//	snake version    - Print version information
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <lvl>   - Override log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a 32x16 walled field. Eat food to grow, avoid the walls and
your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  version  - Print version information

Examples:
  snake play
  snake play --seed 42
  snake serve --config ./snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
