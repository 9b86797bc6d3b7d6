// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 480
	ScreenHeight = 800
	TPS          = 60
	WindowTitle  = "BoomBoomBoom"

	// насколько снаряд может выйти за экран до удаления
	BulletBoundsMargin = 50
	// граница выхода пассажира, грузовика и бомбардировщика
	OffscreenMargin = 100

	DeathSequenceFrames = 120
	NotificationFrames  = 180
	NotificationFadeIn  = 0.08
	NotificationFadeOut = 40

	HUDMargin         = 10
	HUDLineHeight     = 16
	ProgressBarWidth  = 200
	ProgressBarHeight = 8

	TextCharWidth = 7
	TextOffsetY   = 4

	// Терминальный рендерер: сколько пикселей в одной клетке
	TermCellWidth  = 8
	TermCellHeight = 16
	TermFrameMs    = 16
)

var (
	BackgroundColor   = color.RGBA{12, 14, 28, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PlayerColor       = color.RGBA{80, 200, 255, 255}
	WingmanColor      = color.RGBA{120, 220, 200, 255}
	PlayerBulletColor = color.RGBA{255, 240, 120, 255}
	EnemyBulletColor  = color.RGBA{255, 90, 90, 255}
	MissileColor      = color.RGBA{255, 160, 40, 255}
	PassengerColor    = color.RGBA{240, 240, 255, 255}
	CargoColor        = color.RGBA{180, 150, 90, 255}
	BomberColor       = color.RGBA{110, 120, 90, 255}
	ExplosionColor    = color.RGBA{255, 200, 80, 255}
	ProgressColor     = color.RGBA{50, 205, 50, 255}
	ProgressBackColor = color.RGBA{60, 60, 70, 200}
	HealthColor       = color.RGBA{220, 60, 60, 255}
	StrokeWidth       = 2.0

	// по типу врага (small, medium, large, boss)
	EnemyColors = map[string]color.RGBA{
		"small":  {200, 80, 80, 255},
		"medium": {220, 130, 60, 255},
		"large":  {180, 60, 160, 255},
		"boss":   {230, 40, 40, 255},
	}
	// по типу бонуса
	ItemColors = map[string]color.RGBA{
		"double_fire": {255, 215, 0, 255},
		"bomb":        {255, 80, 40, 255},
		"missile":     {255, 160, 40, 255},
		"life":        {60, 220, 90, 255},
		"wingman":     {80, 160, 255, 255},
	}
)
