// internal/state/play_state.go
package state

import (
	"errors"

	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/system"
	"firewall-frenzy/internal/ui"
	"firewall-frenzy/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// PlayState — основное состояние: ввод, шаг симуляции, отрисовка.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	hud      *ui.HUD
	face     text.Face
	logger   zerolog.Logger
}

func NewPlayState(sm *StateMachine, game *app.Game, face text.Face, logger zerolog.Logger) *PlayState {
	palette := render.Palette{
		Background: config.BackgroundColor,
		Path:       config.PathColor,
		Title:      config.TitleColor,
		Host:       config.HostColor,
		Range:      config.RangeColor,
		HealthBack: config.HealthBackColor,
		HealthFill: config.HealthFillColor,
		Text:       config.TextLightColor,
		TextDark:   config.TextDarkColor,
	}
	p := &PlayState{
		sm:       sm,
		game:     game,
		renderer: render.NewRenderer(palette, face, config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(face, config.ScreenWidth, config.ScreenHeight),
		face:     face,
		logger:   logger,
	}
	p.hud.Sync(game.Snapshot(), game.CanBuild())
	return p
}

func (p *PlayState) Enter() {
	p.hud.Pause.SetPaused(false)
}

func (p *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.pause()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		p.showInfo()
		return nil
	}

	if p.game.CanBuild() {
		for i, key := range towerKeys {
			if inpututil.IsKeyJustPressed(key) {
				p.selectTower(defs.TowerTypes[i])
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.game.Restart()
	}

	x, y := ebiten.CursorPosition()
	p.game.HandlePointerMove(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Сначала UI, потом карта
		if cmd, hit := p.hud.Click(x, y); hit {
			if p.handleCommand(cmd) {
				return nil
			}
		} else {
			p.place(float64(x), float64(y))
		}
	}

	p.game.Update()
	p.hud.Sync(p.game.Snapshot(), p.game.CanBuild())
	return nil
}

// handleCommand выполняет команду HUD. Возвращает true, если кадр прерван сменой состояния.
func (p *PlayState) handleCommand(cmd ui.Command) bool {
	switch cmd.Action {
	case ui.ActionSelectTower:
		p.selectTower(cmd.Tower)
	case ui.ActionStartWave:
		p.game.StartWave()
	case ui.ActionRestart:
		p.game.Restart()
	case ui.ActionPause:
		p.pause()
		return true
	case ui.ActionInfo:
		p.showInfo()
		return true
	}
	return false
}

func (p *PlayState) selectTower(t defs.TowerType) {
	if err := p.game.SelectTower(t); err != nil {
		p.logger.Error().Err(err).Msg("select tower")
	}
}

func (p *PlayState) place(x, y float64) {
	placed, err := p.game.HandlePointerDown(x, y)
	switch {
	case errors.Is(err, system.ErrInsufficientCredits):
		p.logger.Debug().Err(err).Msg("placement refused")
	case err != nil:
		p.logger.Error().Err(err).Msg("placement failed")
	case placed:
		p.logger.Debug().Float64("x", x).Float64("y", y).Msg("tower placed by pointer")
	}
}

func (p *PlayState) pause() {
	p.sm.SetState(NewPauseState(p.sm, p, p.face))
}

func (p *PlayState) showInfo() {
	p.sm.SetState(NewInfoState(p.sm, p, p.face))
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	snap := p.game.Snapshot()
	p.renderer.Draw(screen, snap)
	x, y := ebiten.CursorPosition()
	p.hud.Draw(screen, snap, x, y)
}

func (p *PlayState) Exit() {}

// HUD возвращает панель интерфейса.
func (p *PlayState) HUD() *ui.HUD {
	return p.hud
}
