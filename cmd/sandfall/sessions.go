package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sandfall/internal/platform/tui"
	"sandfall/internal/storage"
)

var (
	flagTop   int
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse past play sessions",
	Long: `Open an interactive browser over recorded play sessions.

With --top, print the N sessions with the most grains as plain text
instead of opening the browser. With --clear, delete all recorded
sessions.

Examples:
  sandfall sessions
  sandfall sessions --top 10
  sandfall sessions --clear`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagTop, "top", 0, "Print the top N sessions instead of opening the browser")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions cleared.")
		return
	}

	if flagTop > 0 {
		printTopSessions(store, flagTop)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunSessionBrowser(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session browser: %v\n", err)
		os.Exit(1)
	}
}

func printTopSessions(store *storage.Store, n int) {
	entries, err := store.TopSessions(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sandfall play' and pour some sand!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "Rank", "Player", "Grains", "Ticks", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "----", "------", "------", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-10d  %s\n", i+1, entry.Player, entry.Grains, entry.Ticks, dateStr)
	}

	totals, err := store.GetTotals()
	if err == nil && totals.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d grains painted, last played %s\n",
			totals.Sessions, totals.Grains, totals.LastPlayed.Format(time.DateOnly))
	}
}
