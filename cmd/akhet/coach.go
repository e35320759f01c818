package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet"
	"github.com/fberthelot/akhet/pkg/core"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Ask the oracle for advice on the year so far",
	Long: `Sends the current progress scores and collection summaries to the
oracle and prints its coaching advice. Requires a Gemini API key in the
environment.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service := openService()

		provider, err := akhet.NewOracle(ctx, slog.Default())
		if err != nil {
			fatal("Failed to reach the oracle", err)
		}

		advice, err := provider.Advice(ctx, coachPayload(service))
		if err != nil {
			fatal("The oracle stayed silent", err)
		}
		fmt.Println(advice)
	},
}

// coachPayload condenses the snapshot into the numbers the advice prompt
// cares about, not the raw collections.
func coachPayload(service *core.Service) map[string]any {
	snap := service.Snapshot()

	progress := make(map[string]int, len(core.Categories()))
	for _, cat := range core.Categories() {
		progress[string(cat)] = service.CategoryProgress(cat)
	}

	booksRead := 0
	for _, b := range snap.Books {
		if b.Status == core.BookRead {
			booksRead++
		}
	}
	tripsDone := 0
	for _, t := range snap.Trips {
		if t.Status == core.TripDone {
			tripsDone++
		}
	}

	return map[string]any{
		"globalProgress":   service.GlobalProgress(),
		"categoryProgress": progress,
		"booksRead":        booksRead,
		"tripsDone":        tripsDone,
		"gymSessions":      len(snap.GymSessions),
		"activeWatches":    len(snap.ActiveWatches),
		"rewardsUnlocked":  service.UnlockedCount(),
	}
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Dump the service introspection state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(service.State()); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(stateCmd)
}
