// blockfall is a falling-block puzzle for the terminal, a desktop window
// or SSH.
//
// Usage:
//
//	blockfall                - Start menu, then play in the terminal
//	blockfall play           - Play in the terminal, skipping the menu
//	blockfall window         - Play in a desktop window
//	blockfall serve          - Start SSH server for remote play
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log-file <path>     - Append logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle",
	Long: `Blockfall drops seven kinds of blocks into a 10x20 well. Fill rows to
clear them; the game speeds up as your score grows.

Available commands:
  play     - Play in the terminal without the start menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall window --seed 42
  blockfall serve --ssh :2222`,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTerminal(false)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
