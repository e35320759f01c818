package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fberthelot/akhet/pkg/core"
)

var (
	exportOutput string
	resetForce   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full dashboard as one JSON archive",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		data, err := service.Export(context.Background())
		if err != nil {
			fatal("Failed to export", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			fatal("Failed to write archive", err)
		}
		fmt.Printf("Archive written to %s.\n", exportOutput)
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON archive, overwriting the collections it names",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := openService()

		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read archive", err)
		}

		if err := service.Import(context.Background(), data); err != nil {
			if errors.Is(err, core.ErrCorruptImport) {
				fmt.Fprintln(os.Stderr, "Archive is corrupt or invalid; nothing was imported")
				os.Exit(1)
			}
			fatal("Failed to import", err)
		}
		fmt.Println("Archive imported.")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the vault and restore the seeded yearly plan",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !resetForce {
			fmt.Fprintln(os.Stderr, "This wipes all dashboard data. Re-run with --force to confirm.")
			os.Exit(1)
		}

		service := openService()
		if err := service.Reset(context.Background()); err != nil {
			fatal("Failed to reset", err)
		}
		fmt.Println("Vault reset to the seeded yearly plan.")
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the archive to a file instead of stdout")
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm the reset")
}
