// snaketerm is a terminal Snake game.
//
// Usage:
//
//	snaketerm play           - Play in the current terminal
//	snaketerm serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Input/render frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Path to a game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Snake in your terminal",
	Long: `snaketerm is a classic Snake game for the terminal.

Steer the snake onto food to grow; hitting a wall or your own body ends
the game. Fill the board to win.

Examples:
  snaketerm play
  snaketerm play --config ./my-board.yaml
  snaketerm serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Input/render frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
