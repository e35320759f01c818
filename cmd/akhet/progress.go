package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet/pkg/core"
)

var progressJSON bool

var progressCmd = &cobra.Command{
	Use:   "progress [category]",
	Short: "Show progress, globally or for one category",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		if len(args) == 1 {
			cat := core.Category(args[0])
			if !cat.Valid() {
				fmt.Fprintf(os.Stderr, "Unknown category %s\n", args[0])
				os.Exit(1)
			}
			fmt.Printf("%s: %d%%\n", cat, service.CategoryProgress(cat))
			return
		}

		if progressJSON {
			out := make(map[string]int, len(core.Categories())+1)
			for _, cat := range core.Categories() {
				out[string(cat)] = service.CategoryProgress(cat)
			}
			out["global"] = service.GlobalProgress()
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, cat := range core.Categories() {
			fmt.Printf("%-14s %3d%%\n", cat, service.CategoryProgress(cat))
		}
		fmt.Printf("%-14s %3d%%\n", "Global", service.GlobalProgress())
	},
}

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Show the badge catalog and unlock states",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		rewards := service.Rewards()
		for _, r := range rewards {
			state := " "
			if r.Unlocked {
				state = "★"
			}
			scope := "Global"
			if r.Category != "" {
				scope = string(r.Category)
			}
			fmt.Printf("[%s] %s %-14s %3d%%  %s\n", state, r.Icon, scope, r.Threshold, r.Title)
		}
		fmt.Printf("\n%d/%d badges unlocked\n", service.UnlockedCount(), len(rewards))
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(rewardsCmd)

	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "Output in JSON format")
}
