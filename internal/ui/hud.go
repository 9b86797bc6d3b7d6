// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

const noticeSlideDistance = 120

// HUD собирает индикаторы поверх игрового поля.
type HUD struct {
	Health  *PlayerHealthIndicator
	Level   *PlayerLevelIndicator
	Mission *MissionIndicator
	Pause   *PauseButton
	Bomb    *BombButton

	face   font.Face
	width  float32
	height float32
}

func NewHUD(width, height float32, face font.Face) *HUD {
	m := float32(config.HUDMargin)
	health := NewPlayerHealthIndicator(m, m)
	return &HUD{
		Health:  health,
		Level:   NewPlayerLevelIndicator(m, m+health.GetHeight()+8),
		Mission: NewMissionIndicator(width/2, m+12, config.TextLightColor),
		Pause:   NewPauseButton(width-m-14, m+14, 8, config.TextLightColor, config.ProgressColor),
		Bomb:    NewBombButton(width-m-26, height-m-26, 22, config.ItemColors["bomb"]),
		face:    face,
		width:   width,
		height:  height,
	}
}

// Draw рисует весь HUD для текущего кадра.
func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	p := g.World.Player
	h.Health.Draw(screen, p.Lives, g.Config.Player.Lives, p.Health, p.MaxHealth, h.face)
	h.Level.Draw(screen, p.BulletLevel, entity.MaxBulletLevel, p.WingmenLevel, entity.MaxWingmenLevel)

	if g.MissionMode() {
		h.Mission.Draw(screen, min(g.CompletedMissions+1, g.TotalMissions), g.TotalMissions, g.Phases.BossFightActive(), h.face)
		h.drawProgress(screen, g)
	}

	h.Pause.SetPaused(g.IsPaused())
	h.Pause.Draw(screen)
	h.Bomb.Draw(screen, g.Powerups.Bombs, h.face)

	h.drawStatus(screen, g)
	h.drawNotice(screen, g)
}

func (h *HUD) drawProgress(screen *ebiten.Image, g *app.Game) {
	x := (h.width - config.ProgressBarWidth) / 2
	y := float32(config.HUDMargin + 22)
	render.Bar(screen, x, y, config.ProgressBarWidth, config.ProgressBarHeight, g.Progress.Display, config.ProgressColor, config.ProgressBackColor)
	label := fmt.Sprintf("%d%%", int(g.Progress.Display*100))
	render.DrawTextCentered(screen, label, h.face, int(h.width/2), int(y)+config.ProgressBarHeight+config.HUDLineHeight-2, config.TextLightColor)
}

// drawStatus: счёт убийств и текущая фаза внизу слева.
func (h *HUD) drawStatus(screen *ebiten.Image, g *app.Game) {
	x := config.HUDMargin
	y := int(h.height) - config.HUDMargin - config.HUDLineHeight
	info := g.Phases.Info()
	render.DrawText(screen, fmt.Sprintf("%s  %s", info.Phase, info.Progress), h.face, x, y, render.WithAlpha(config.TextLightColor, 0.7))
	render.DrawText(screen, fmt.Sprintf("Kills %d  Lv %d", g.KillCount, g.Level), h.face, x, y+config.HUDLineHeight, config.TextLightColor)
	if g.Powerups.Missile.Active {
		render.DrawText(screen, "MISSILES", h.face, x, y-config.HUDLineHeight, config.MissileColor)
	}
}

// Сообщение въезжает справа и гаснет к концу жизни.
func (h *HUD) drawNotice(screen *ebiten.Image, g *app.Game) {
	n := g.Notifications.Current
	if n == nil {
		return
	}
	clr := render.WithAlpha(color.RGBA{255, 230, 120, 255}, n.Alpha)
	outline := render.WithAlpha(color.RGBA{0, 0, 0, 255}, n.Alpha)
	w := render.TextWidth(h.face, n.Text)
	x := int(h.width)/2 - w/2 + int((1-n.Slide)*noticeSlideDistance)
	y := int(h.height / 3)
	render.DrawTextOutlined(screen, n.Text, h.face, x, y, 1, clr, outline)
}

// HandleClick обрабатывает клики по кнопкам HUD. Возвращает true, если
// клик пришёлся на кнопку и не должен двигать самолёт.
func (h *HUD) HandleClick(x, y int, g *app.Game) bool {
	switch {
	case h.Pause.IsClicked(x, y):
		g.TogglePause()
		h.Pause.TogglePause()
		return true
	case h.Bomb.IsClicked(x, y):
		if g.UseBomb() {
			h.Bomb.HandleClick()
		}
		return true
	}
	return false
}
