// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000 // логическая ширина холста
	ScreenHeight = 600  // логическая высота холста

	TicksPerSecond = 60
	TickDuration   = 1.0 / TicksPerSecond

	StartingCredits = 100
	BaseHealth      = 20

	PathJitter     = 25.0 // максимальное смещение промежуточной точки пути
	PathMargin     = 20.0 // отступ от краёв холста для промежуточных точек
	PathWidth      = 40.0
	HostMarginX    = 60.0
	HostMarginY    = 80.0
	ProjectileStep = 0.15 // доля пути снаряда за тик

	MessageDuration = 2 * TicksPerSecond // сколько тиков висит сообщение

	ProjectileRadius = 8.0
	HealthBarWidth   = 24.0
	HealthBarHeight  = 4.0

	HUDHeight        = 44
	ButtonWidth      = 118
	ButtonHeight     = 28
	ButtonSpacing    = 8
	InfoButtonWidth  = 70
	IndicatorOffsetX = 30
)

var (
	BackgroundColor = color.RGBA{0x0a, 0x14, 0x28, 255}
	PathColor       = color.RGBA{0x00, 0xd4, 0xff, 255}
	TitleColor      = color.RGBA{0xff, 0x88, 0x00, 255}
	HostColor       = color.RGBA{0xff, 0x00, 0x00, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	RangeColor      = color.RGBA{0, 255, 0, 77}
	HealthBackColor = color.RGBA{0xff, 0x33, 0x33, 255}
	HealthFillColor = color.RGBA{0x00, 0xff, 0x00, 255}
	HUDColor        = color.RGBA{0x14, 0x1e, 0x3c, 230}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	DisabledColor   = color.RGBA{70, 70, 90, 160}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
)

// BasePath is the anchor polyline every wave's path is jittered from.
var BasePath = [][2]float64{
	{-20, 300},
	{150, 100},
	{400, 200},
	{600, 100},
	{800, 350},
	{1020, 300},
}
