// cmd/game/simulate.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/logging"

	"github.com/spf13/cobra"
)

var (
	simMaxTicks int
	simMix      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a headless match with the autopilot",
	Long:  "simulate builds towers along the path before every wave, plays until victory or defeat and prints a summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("max-ticks") {
			settings.MaxTicks = simMaxTicks
		}
		if cmd.Flags().Changed("mix") {
			settings.Autopilot.Mix = splitMix(simMix)
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		logger, err := newLogger(settings, os.Stderr)
		if err != nil {
			return err
		}

		game := app.NewGame(app.Options{Seed: settings.Seed})
		logging.NewEventLogger(logger, func() string { return game.MatchID }).Attach(game.EventDispatcher)

		pilot, err := app.NewAutopilot(game, settings.Autopilot, settings.MaxTicks)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err := pilot.Run(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
		return err
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simMaxTicks, "max-ticks", 0, "Tick budget, 0 = unlimited (default from settings)")
	simulateCmd.Flags().StringVar(&simMix, "mix", "", "Comma separated tower mix, e.g. firewall,ids")
}

func splitMix(s string) []string {
	var mix []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			mix = append(mix, strings.ToLower(part))
		}
	}
	return mix
}
