package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/javi-run/internal/platform/tui"
	"github.com/vovakirdan/javi-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs and the high score",
	Long: `Display the best recorded runs.

On a terminal this opens a scrollable table; when piped, or with --plain,
it prints a listing. Backends without run history only show the high
score.

Examples:
  javirun scores
  javirun scores --plain --limit 5
  javirun scores --store savedata
  javirun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Erase the high score and run history")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain listing even on a terminal")
}

// clearer is implemented by backends that can be erased.
type clearer interface {
	Clear() error
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := openStore(storage.Kind(flagStore), storage.KindSQLite)
	if err != nil {
		fail("opening scores store: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		c, ok := store.(clearer)
		if !ok {
			store.Close()
			fail("this store cannot be cleared")
		}
		if err := c.Clear(); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	runs := runStore(store)
	if runs != nil && !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(runs, width, height); err != nil {
			store.Close()
			fail("showing scores: %v", err)
		}
		return
	}

	printScores(store, runs)
}

func printScores(store storage.Backend, runs storage.RunStore) {
	fmt.Println("Javi Run - High Scores")
	fmt.Println()

	if runs == nil {
		high, err := store.LoadHighScore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		fmt.Printf("Best: %d\n", high)
		return
	}

	entries, err := runs.TopRuns(flagScoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'javirun play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range entries {
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n",
			i+1, entry.Score,
			fmt.Sprintf("%.1fs", entry.Duration.Seconds()),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := runs.Stats(); err == nil {
		fmt.Println(tui.StatsLine(stats))
	}
}
