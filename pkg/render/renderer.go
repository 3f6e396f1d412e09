// pkg/render/renderer.go
package render

import (
	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/utils"
	"firewall-frenzy/pkg/polyline"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws a game snapshot onto the logical canvas.
type Renderer struct {
	palette      Palette
	face         text.Face
	screenWidth  float64
	screenHeight float64
}

func NewRenderer(palette Palette, face text.Face, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		palette:      palette,
		face:         face,
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
	}
}

// Draw рисует кадр: фон, путь, хост, башни, врагов, превью, снаряды.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.Background)
	r.drawTitle(screen)
	r.drawPath(screen, snap.Path)
	r.drawHost(screen, snap.Path)

	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	if snap.Preview != nil && !snap.WaveActive {
		r.drawPreview(screen, snap.Preview.Type, snap.Preview.X, snap.Preview.Y)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
}

func (r *Renderer) drawTitle(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(r.screenWidth-20, 15)
	op.ColorScale.ScaleWithColor(r.palette.Title)
	op.PrimaryAlign = text.AlignEnd
	text.Draw(screen, "Firewall Frenzy", r.face, op)
}

func (r *Renderer) drawPath(screen *ebiten.Image, path polyline.Path) {
	if len(path) < 2 {
		return
	}
	half := float32(config.PathWidth / 2)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathWidth, r.palette.Path, true)
	}
	// Круглые стыки сегментов
	for _, p := range path {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), half, r.palette.Path, true)
	}
}

// HostPosition returns where the host is drawn: the path end pulled inside the canvas margins.
func HostPosition(path polyline.Path, screenWidth, screenHeight float64) polyline.Point {
	end := path.Last()
	return polyline.Point{
		X: utils.Clamp(end.X, config.HostMarginX, screenWidth-config.HostMarginX),
		Y: utils.Clamp(end.Y, config.HostMarginY, screenHeight-config.HostMarginY),
	}
}

func (r *Renderer) drawHost(screen *ebiten.Image, path polyline.Path) {
	if len(path) == 0 {
		return
	}
	host := HostPosition(path, r.screenWidth, r.screenHeight)
	x, y := float32(host.X), float32(host.Y)

	// монитор
	vector.DrawFilledRect(screen, x-18, y-24, 36, 26, r.palette.Text, true)
	vector.DrawFilledRect(screen, x-15, y-21, 30, 20, DarkenColor(r.palette.Path), true)
	vector.DrawFilledRect(screen, x-3, y+2, 6, 5, r.palette.Text, true)
	vector.DrawFilledRect(screen, x-10, y+7, 20, 3, r.palette.Text, true)

	r.drawText(screen, "HOST", r.face, host.X, host.Y+25, r.palette.Host, text.AlignCenter, text.AlignCenter)
}

func (r *Renderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	def := defs.MustTowerStats(t.Type)
	fill := def.Visuals.Color
	if !t.Active {
		fill = WithAlpha(fill, 0.6)
	}
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), def.Visuals.Radius, fill, true)
	vector.StrokeCircle(screen, float32(t.X), float32(t.Y), def.Visuals.Radius, 2, DarkenColor(def.Visuals.Color), true)
	r.drawText(screen, def.Visuals.Glyph, r.face, t.X, t.Y, r.palette.TextDark, text.AlignCenter, text.AlignCenter)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	def := defs.MustEnemyStats(e.Type)
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, def.Visuals.Radius, def.Visuals.Color, true)
	r.drawText(screen, def.Visuals.Glyph, r.face, e.X, e.Y, r.palette.TextDark, text.AlignCenter, text.AlignCenter)

	// полоска здоровья
	barX := x - config.HealthBarWidth/2
	barY := y - 25
	vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, r.palette.HealthBack, false)
	fill := float32(utils.Clamp(e.HealthFraction, 0, 1)) * config.HealthBarWidth
	vector.DrawFilledRect(screen, barX, barY, fill, config.HealthBarHeight, r.palette.HealthFill, false)
}

func (r *Renderer) drawPreview(screen *ebiten.Image, t defs.TowerType, px, py float64) {
	def, err := defs.TowerStats(t)
	if err != nil {
		return
	}
	x, y := float32(px), float32(py)
	vector.StrokeCircle(screen, x, y, float32(def.Range), 2, r.palette.Range, true)
	vector.DrawFilledCircle(screen, x, y, def.Visuals.Radius, WithAlpha(def.Visuals.Color, 0.7), true)
	r.drawText(screen, def.Visuals.Glyph, r.face, px, py, r.palette.TextDark, text.AlignCenter, text.AlignCenter)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	c := defs.MustTowerStats(p.Tower).Visuals.Color
	x, y := float32(p.X), float32(p.Y)
	// след
	vector.StrokeLine(screen, float32(p.StartX), float32(p.StartY), x, y, 2, WithAlpha(c, 0.3), true)
	vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, WithAlpha(c, 0.6), true)
	vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius/3, c, true)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, h, v text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	text.Draw(screen, s, face, op)
}
