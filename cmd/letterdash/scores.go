package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letter-dash/internal/games/letterdash"
	"github.com/vovakirdan/letter-dash/internal/platform/tui"
	"github.com/vovakirdan/letter-dash/internal/share"
	"github.com/vovakirdan/letter-dash/internal/storage"
)

var (
	flagPlain   bool
	flagLimit   int
	flagClear   bool
	flagSession string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the Letter Dash high scores and recent runs.

Without a terminal, or with --plain, the top results are printed as text
followed by share links for the best run. --session lists the runs of one
play session; its id is written to the log with every saved result.

Examples:
  letterdash scores
  letterdash scores --plain --limit 5
  letterdash scores --session 3f2c9a1e-...
  letterdash scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
	scoresCmd.Flags().StringVar(&flagSession, "session", "", "List the runs of one play session")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(letterdash.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	if flagSession != "" {
		if err := printSession(os.Stdout, store, flagSession); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	results, err := store.TopResults(letterdash.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Letter Dash")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'letterdash play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %-9s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %-9s  %s\n", "----", "------", "-----", "-----", "------", "----")

	// Print results
	for i, row := range tui.ResultRows(results) {
		dateStr := results[i].CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6s  %-5s  %-9s  %s\n", i+1, row[1], row[2], row[3], row[4], dateStr)
	}

	if stats, err := store.GetGameStats(letterdash.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Finished: %d  Average: %.0f\n", stats.GamesCount, stats.FinishedCount, stats.AvgScore)
	}

	// Share links for the best run
	best := results[0]
	payload := share.Build(letterdash.Summary{
		Player:   best.Player,
		Score:    best.Score,
		Level:    best.Level,
		Finished: best.Finished,
	}, share.DetectTheme())
	fmt.Println()
	fmt.Println(payload.String())
	fmt.Println()
	fmt.Println("X:        " + payload.XIntent())
	fmt.Println("Facebook: " + payload.FacebookIntent())
	fmt.Println("LinkedIn: " + payload.LinkedInIntent())
}

// printSession lists the runs of one session in the order they were played.
func printSession(w io.Writer, store *storage.Store, sessionID string) error {
	results, err := store.SessionResults(sessionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session %s - Letter Dash\n\n", sessionID)
	if len(results) == 0 {
		fmt.Fprintln(w, "No runs recorded for this session.")
		return nil
	}

	fmt.Fprintf(w, "  %-3s  %-16s  %-6s  %-5s  %-9s  %s\n", "#", "Player", "Score", "Level", "Result", "Time")
	fmt.Fprintf(w, "  %-3s  %-16s  %-6s  %-5s  %-9s  %s\n", "-", "------", "-----", "-----", "------", "----")
	best := 0
	for i, row := range tui.ResultRows(results) {
		timeStr := results[i].CreatedAt.Local().Format("15:04:05")
		fmt.Fprintf(w, "  %-3d  %-16s  %-6s  %-5s  %-9s  %s\n", i+1, row[1], row[2], row[3], row[4], timeStr)
		best = max(best, results[i].Score)
	}
	fmt.Fprintf(w, "\nRuns: %d  Best: %d\n", len(results), best)
	return nil
}
