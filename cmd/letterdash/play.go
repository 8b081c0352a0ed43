package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letter-dash/internal/audio"
	"github.com/vovakirdan/letter-dash/internal/config"
	"github.com/vovakirdan/letter-dash/internal/core"
	"github.com/vovakirdan/letter-dash/internal/games/letterdash"
	"github.com/vovakirdan/letter-dash/internal/platform/tui"
	"github.com/vovakirdan/letter-dash/internal/storage"
)

var (
	flagPlayer  string
	flagNoMusic bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Letter Dash",
	Long: `Start Letter Dash in this terminal.

Controls:
  Enter      - Start a run
  A-Z/click  - Answer with a letter
  Tab        - Music on/off
  Ctrl+R     - Restart
  Ctrl+Y     - Copy your last result
  Ctrl+S     - Save a screenshot
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - More time and attempts, slower speed-up
  normal - The default run
  hard   - Less time and fewer attempts
  fixed  - The time per letter never shrinks

Examples:
  letterdash play
  letterdash play --player Ada --difficulty easy
  letterdash play --no-music
  letterdash play --config ./my-letterdash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Bare "letterdash" plays too, so it takes the same flags
	for _, cmd := range []*cobra.Command{playCmd, rootCmd} {
		cmd.Flags().StringVar(&flagPlayer, "player", "", "Player name shown on the scoreboard")
		cmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Start with the background music off")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	logger, logCloser, err := newLogger(nil, config.UserConfigPath("letterdash.log"), "letterdash")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Play without logs
		logger, logCloser = log.New(io.Discard), io.NopCloser(nil)
	}
	defer logCloser.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
		Player: flagPlayer,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - best score stays in memory
		store = nil
	}
	if store != nil {
		opts.Keeper = storage.NewBestKeeper(store, letterdash.GameID, logger)
	}

	musicCfg := cfg.Audio
	if flagNoMusic {
		musicCfg.Enabled = false
	}
	music := audio.NewMusicLoop(musicCfg, audio.WithLogger(logger))
	opts.Music = music

	// Run the game
	runErr := tui.Run(opts)

	// Release audio and storage before potential exit
	//nolint:errcheck // Best-effort cleanup
	music.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
