package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet/pkg/core"
)

var (
	gymType string
	gymDate string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Manage the weekly run log",
}

var runToggleCmd = &cobra.Command{
	Use:   "toggle [week] [slot]",
	Short: "Flip one run slot (r1-r4) of a week (1-52)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		week, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("Invalid week", err)
		}

		if !service.ToggleRun(context.Background(), week, core.RunSlot(args[1])) {
			fmt.Fprintf(os.Stderr, "Invalid week %d or slot %s\n", week, args[1])
			os.Exit(1)
		}
		fmt.Printf("Week %d slot %s toggled.\n", week, args[1])
	},
}

var runListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the run grid",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		for _, w := range service.Snapshot().WeeklyRuns {
			fmt.Printf("S%02d %s%s%s%s\n", w.Week,
				mark(w.R1), mark(w.R2), mark(w.R3), mark(w.R4))
		}
	},
}

var gymCmd = &cobra.Command{
	Use:   "gym",
	Short: "Manage gym sessions",
}

var gymAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Log a gym session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		sess := core.GymSession{
			Title: args[0],
			Type:  core.GymSessionType(gymType),
			Date:  gymDate,
		}
		created, ok := service.AddGymSession(context.Background(), sess)
		if !ok {
			fmt.Fprintln(os.Stderr, "A title is required")
			os.Exit(1)
		}
		fmt.Printf("Session '%s' logged (%s).\n", created.Title, created.ID)
	},
}

var gymListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gym sessions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		for _, s := range service.Snapshot().GymSessions {
			fmt.Printf("%-14s %-6s %s  %s\n", s.ID, s.Type, s.Date, s.Title)
		}
	},
}

var gymRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a gym session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.RemoveGymSession(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No session with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Session %s removed.\n", args[0])
	},
}

var darebeeCmd = &cobra.Command{
	Use:   "darebee [url]",
	Short: "Show or set the tracked workout program URL",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if len(args) == 0 {
			fmt.Println(service.Snapshot().DarebeeURL)
			return
		}
		service.SetDarebeeURL(context.Background(), args[0])
		fmt.Println("Workout program updated.")
	},
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return "."
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.AddCommand(runToggleCmd)
	runCmd.AddCommand(runListCmd)

	rootCmd.AddCommand(gymCmd)
	gymCmd.AddCommand(gymAddCmd)
	gymCmd.AddCommand(gymListCmd)
	gymCmd.AddCommand(gymRemoveCmd)

	rootCmd.AddCommand(darebeeCmd)

	gymAddCmd.Flags().StringVarP(&gymType, "type", "t", string(core.GymFree), "Session type (Cours, Libre)")
	gymAddCmd.Flags().StringVarP(&gymDate, "date", "d", "", "Session date (defaults to today)")
}
