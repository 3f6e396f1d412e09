// cmd/game/play.go
package main

import (
	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/logging"
	"firewall-frenzy/internal/state"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"
)

var playScale float64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("scale") {
			settings.WindowScale = playScale
			if err := settings.Validate(); err != nil {
				return err
			}
		}
		logger, err := newLogger(settings, os.Stderr)
		if err != nil {
			return err
		}

		game := app.NewGame(app.Options{Seed: settings.Seed})
		logging.NewEventLogger(logger, func() string { return game.MatchID }).Attach(game.EventDispatcher)
		logger.Info().Int64("seed", game.Rng.Seed()).Str("match", game.MatchID).Msg("starting game window")

		face := text.NewGoXFace(basicfont.Face7x13)
		sm := state.NewStateMachine()
		sm.SetState(state.NewMenuState(sm, face, func() state.State {
			return state.NewPlayState(sm, game, face, logger)
		}))

		ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
		ebiten.SetWindowTitle("Firewall Frenzy")
		ebiten.SetTPS(config.TicksPerSecond)
		return ebiten.RunGame(&AppGame{stateMachine: sm})
	},
}

func init() {
	playCmd.Flags().Float64Var(&playScale, "scale", 1, "Window scale factor")
}

// AppGame адаптирует машину состояний к ebiten.Game
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
