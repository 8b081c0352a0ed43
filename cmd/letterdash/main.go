// letterdash is a terminal reflex game: type the shown letter before time runs out.
//
// Usage:
//
//	letterdash               - Play (same as "letterdash play")
//	letterdash play          - Play in this terminal
//	letterdash scores        - Show high scores and recent runs
//	letterdash serve         - Start SSH server for remote play
//	letterdash config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible letters
//	--db <path>           - Set database path (default: ~/.letterdash/scores.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
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
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letterdash",
	Short: "Letter Dash - a reflex game for your terminal",
	Long: `Letter Dash shows a letter and gives you a shrinking amount of time to
press it. Every correct letter moves your Buddy Runner along the track;
clear every level to finish the run.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  letterdash
  letterdash play --difficulty hard
  letterdash scores --plain
  letterdash serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.letterdash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play defaults to ~/.letterdash/letterdash.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every round, hit and miss")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
