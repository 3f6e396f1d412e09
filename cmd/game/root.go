// cmd/game/root.go
package main

import (
	"fmt"
	"io"
	"os"

	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:          "game",
	Short:        "Firewall Frenzy tower defense",
	Long:         "Firewall Frenzy: place firewalls, IDS sensors, honeypots and patch servers to keep four waves of malware away from the host.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Path jitter seed (0 = from settings, else time-based)")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadSettings reads the settings file and applies flags that were set explicitly.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return settings, err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = seed
	}
	return settings, nil
}

func newLogger(settings config.Settings, w io.Writer) (zerolog.Logger, error) {
	return logging.New(settings.LogLevel, settings.LogFormat, w)
}
