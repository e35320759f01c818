package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	vaultevents "github.com/fberthelot/akhet/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault for external document changes",
	Long: `Streams change events for the vault documents until interrupted.
The pattern matches collection keys ("goals", "books", ...), not filenames.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service := openService()

		events, err := service.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch vault", err)
		}

		// Bridge the typed channel into the generic event source so the
		// stream shuts down with the signal context.
		source := vaultevents.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching... (Ctrl+C to stop)")
		for event := range source.Events() {
			fmt.Println(event.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "*", "Key pattern to watch")
}
