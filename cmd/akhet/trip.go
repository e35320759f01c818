package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet"
	"github.com/fberthelot/akhet/pkg/core"
)

var (
	tripMotive    string
	tripDuration  int
	tripStartDate string
	tripNoOracle  bool
	tripJSON      bool
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage the travel plan",
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trips",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		trips := service.Snapshot().Trips
		if tripJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(trips); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, t := range trips {
			fmt.Printf("%-14s %-12s %-9s %dj  %s\n", t.ID, t.Status, t.Motive, t.Duration, t.Country)
		}
	},
}

var tripAddCmd = &cobra.Command{
	Use:   "add [country]",
	Short: "Plan a trip",
	Long: `Plan a trip to a country. Unless --no-oracle is set, the country
code, flag and coordinates are resolved through the oracle; lookup failures
only cost the decoration.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		service := openService()

		trip := core.Trip{
			Country:   args[0],
			Motive:    core.TravelMotive(tripMotive),
			Duration:  tripDuration,
			StartDate: tripStartDate,
		}

		if !tripNoOracle {
			if provider, err := akhet.NewOracle(ctx, slog.Default()); err == nil {
				if visuals, err := provider.Visuals(ctx, trip.Country); err == nil {
					trip.CountryCode = visuals.Code
					trip.BgImageURL = visuals.ImageURL
					lat, lng := visuals.Lat, visuals.Lng
					trip.Lat = &lat
					trip.Lng = &lng
				} else {
					slog.Default().Warn("country lookup failed", "country", trip.Country, "error", err)
				}
			}
		}

		created, ok := service.AddTrip(ctx, trip)
		if !ok {
			fmt.Fprintln(os.Stderr, "A country is required")
			os.Exit(1)
		}
		fmt.Printf("Trip to %s planned (%s).\n", created.Country, created.ID)
	},
}

var tripStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Set a trip status (À organiser, Organisé, Effectué, Annulé, Reporté)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		status := core.TravelStatus(args[1])
		if !service.UpdateTrip(context.Background(), args[0], core.TripUpdate{Status: &status}) {
			fmt.Fprintf(os.Stderr, "No trip with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Trip %s is now '%s'.\n", args[0], args[1])
	},
}

var tripCommentCmd = &cobra.Command{
	Use:   "comment [id] [text]",
	Short: "Attach a comment to a trip",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.UpdateTrip(context.Background(), args[0], core.TripUpdate{Comment: &args[1]}) {
			fmt.Fprintf(os.Stderr, "No trip with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Trip %s comment updated.\n", args[0])
	},
}

var tripRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.RemoveTrip(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No trip with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Trip %s removed.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.AddCommand(tripListCmd)
	tripCmd.AddCommand(tripAddCmd)
	tripCmd.AddCommand(tripStatusCmd)
	tripCmd.AddCommand(tripCommentCmd)
	tripCmd.AddCommand(tripRemoveCmd)

	tripListCmd.Flags().BoolVar(&tripJSON, "json", false, "Output in JSON format")

	tripAddCmd.Flags().StringVarP(&tripMotive, "motive", "m", "", "Motive (Vacances, Sport, Autre)")
	tripAddCmd.Flags().IntVarP(&tripDuration, "duration", "d", 0, "Duration in days")
	tripAddCmd.Flags().StringVar(&tripStartDate, "start", "", "Start date (YYYY-MM-DD)")
	tripAddCmd.Flags().BoolVar(&tripNoOracle, "no-oracle", false, "Skip the country visuals lookup")
}
