package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet/pkg/core"
)

var (
	goalCategory string
	goalMonth    int
	goalAmount   float64
	goalComment  string
	goalJSON     bool
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage yearly goals",
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals, optionally filtered by category",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		goals := service.Snapshot().Goals
		if goalCategory != "" {
			goals = service.Goals(core.Category(goalCategory))
		}
		if goalJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(goals); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, g := range goals {
			mark := " "
			if g.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %-14s m%02d  %s  %s\n", mark, g.ID, g.Month, g.Category, g.Title)
		}
	},
}

var goalAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a personal goal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		goal := core.Goal{
			Category: core.Category(goalCategory),
			Title:    args[0],
			Month:    goalMonth,
		}
		if cmd.Flags().Changed("amount") {
			goal.Amount = &goalAmount
		}

		created, ok := service.AddGoal(context.Background(), goal)
		if !ok {
			fmt.Fprintln(os.Stderr, "Invalid goal: check title, category and month (1-12)")
			os.Exit(1)
		}
		fmt.Printf("Goal '%s' added (%s).\n", created.Title, created.ID)
	},
}

var goalToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Flip the completion flag of a goal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.ToggleGoal(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No goal with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Goal %s toggled.\n", args[0])
	},
}

var goalRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.RemoveGoal(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "No goal with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Goal %s removed.\n", args[0])
	},
}

var goalAmountCmd = &cobra.Command{
	Use:   "amount [id] [value]",
	Short: "Set the amount of a financial goal",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		var value float64
		if _, err := fmt.Sscanf(args[1], "%g", &value); err != nil {
			fatal("Invalid amount", err)
		}
		if !service.UpdateGoalAmount(context.Background(), args[0], value) {
			fmt.Fprintf(os.Stderr, "No goal with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Goal %s amount set to %g.\n", args[0], value)
	},
}

var goalCommentCmd = &cobra.Command{
	Use:   "comment [id] [text]",
	Short: "Attach a comment to a goal",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if !service.UpdateGoalComment(context.Background(), args[0], args[1]) {
			fmt.Fprintf(os.Stderr, "No goal with id %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Goal %s comment updated.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalToggleCmd)
	goalCmd.AddCommand(goalRemoveCmd)
	goalCmd.AddCommand(goalAmountCmd)
	goalCmd.AddCommand(goalCommentCmd)

	goalListCmd.Flags().StringVarP(&goalCategory, "category", "c", "", "Filter by category (e.g. Finance, Lecture)")
	goalListCmd.Flags().BoolVar(&goalJSON, "json", false, "Output in JSON format")

	goalAddCmd.Flags().StringVarP(&goalCategory, "category", "c", "", "Goal category")
	goalAddCmd.Flags().IntVarP(&goalMonth, "month", "m", 0, "Month (1-12)")
	goalAddCmd.Flags().Float64Var(&goalAmount, "amount", 0, "Tracked amount (financial goals)")
	goalAddCmd.MarkFlagRequired("category")
	goalAddCmd.MarkFlagRequired("month")
}
