package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fberthelot/akhet"
	"github.com/fberthelot/akhet/pkg/core"
)

var (
	vaultFlag string
	verbose   bool
)

// cliConfig mirrors the optional <vault>/../config file ~/.akhet/config.yaml.
type cliConfig struct {
	Vault   string `yaml:"vault"`
	Prefix  string `yaml:"prefix"`
	Verbose bool   `yaml:"verbose"`
}

var config cliConfig

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "akhet",
	Short: "A single-user annual goal dashboard backed by local JSON documents",
	Long: `Akhet tracks your yearly goals, readings, trips, trainings and sport
sessions in a local vault of JSON documents, and turns them into progress
scores and badges.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()

		level := slog.LevelInfo
		if verbose || config.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (defaults to the enclosing vault or ~/.akhet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func loadConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".akhet", "config.yaml"))
	if err != nil {
		return
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		fmt.Fprintf(os.Stderr, "ignoring invalid config.yaml: %v\n", err)
	}
}

// vaultPath resolves the vault directory: flag, then config file, then the
// enclosing vault, then ~/.akhet.
func vaultPath() string {
	if vaultFlag != "" {
		return vaultFlag
	}
	if config.Vault != "" {
		return config.Vault
	}
	if cwd, err := os.Getwd(); err == nil {
		if found, err := akhet.FindVault(cwd); err == nil {
			return found
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to resolve home directory", err)
	}
	return filepath.Join(home, ".akhet")
}

// openService wires the dashboard service over the resolved vault.
func openService() *core.Service {
	opts := []akhet.Option{
		akhet.WithLogger(slog.Default()),
	}
	if config.Prefix != "" {
		opts = append(opts, akhet.WithPrefix(config.Prefix))
	}

	service, err := akhet.New(vaultPath(), opts...)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return service
}
