// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs the play screen: input, one logic frame, world and HUD.
type GameState struct {
	sm    *StateMachine
	env   *Env
	frame int

	// палец или кнопка мыши зажаты на поле, а не на HUD
	dragging bool
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	return &GameState{sm: sm, env: env}
}

func (g *GameState) Enter() {
	g.dragging = false
	log.Printf("[GameState] entered, state %s", g.env.Game.State)
}

func (g *GameState) Update(frame int) {
	game := g.env.Game
	g.frame = frame

	if game.State.Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sm.SetState(NewMenuState(g.sm, g.env))
			return
		}
		game.Update()
		return
	}

	pressed := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if pressed && game.State == component.StatePlaying {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if game.UseBomb() {
			g.env.HUD.Bomb.HandleClick()
		}
	}

	g.handlePointer()
	if game.IsPaused() {
		g.pause()
		return
	}
	g.handleKeys()

	game.Update()
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g, g.env))
}

// handlePointer: клик по HUD или перетаскивание самолёта мышью и пальцем.
func (g *GameState) handlePointer() {
	game := g.env.Game
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.dragging = !g.env.HUD.HandleClick(x, y, game)
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		game.MovePlayer(float64(x), float64(y))
	} else {
		g.dragging = false
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.env.HUD.HandleClick(x, y, game)
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		game.MovePlayer(float64(x), float64(y))
	}
}

func (g *GameState) handleKeys() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	if dx != 0 || dy != 0 {
		g.env.Game.NudgePlayer(dx, dy)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.env.Game
	g.env.Renderer.Draw(screen, game.World, g.frame)
	g.env.HUD.Draw(screen, game)

	switch game.State {
	case component.StateDying:
		g.drawCause(screen, game.DeathCause)
	case component.StatePassengerDying:
		g.drawCause(screen, game.PassengerDeathCause)
	}
	if game.State.Terminal() {
		g.drawResult(screen, game.State)
	}
}

// drawCause пульсирующим кольцом отмечает, откуда пришёл смертельный удар.
func (g *GameState) drawCause(screen *ebiten.Image, c *event.DeathCause) {
	if c == nil {
		return
	}
	r := float32(24 + 8*math.Sin(float64(g.frame)*0.3))
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 3, config.HealthColor, true)
}

// drawResult рисует итог сессии поверх затемнённого поля.
func (g *GameState) drawResult(screen *ebiten.Image, s component.GameState) {
	game := g.env.Game
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	var title, detail string
	titleColor := config.TextLightColor
	switch s {
	case component.StateMissionComplete:
		title = "MISSION COMPLETE"
		detail = fmt.Sprintf("%d/%d missions", game.CompletedMissions, game.TotalMissions)
		titleColor = config.ProgressColor
	case component.StatePassengerFailed:
		title = "ESCORT FAILED"
		if c := game.PassengerDeathCause; c != nil {
			detail = fmt.Sprintf("Passenger lost to %s (%s)", c.By, c.Kind)
		}
		titleColor = config.HealthColor
	default:
		title = "GAME OVER"
		if c := game.DeathCause; c != nil {
			detail = fmt.Sprintf("Shot down by %s (%s)", c.By, c.Kind)
		}
		titleColor = config.HealthColor
	}

	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	face := g.env.Face
	render.DrawTextOutlined(screen, title, face, cx-render.TextWidth(face, title)/2, cy-40, 1, titleColor, color.Black)
	if detail != "" {
		render.DrawTextCentered(screen, detail, face, cx, cy-40+config.HUDLineHeight+4, config.TextLightColor)
	}
	render.DrawTextCentered(screen, fmt.Sprintf("Kills: %d", game.KillCount), face, cx, cy, config.TextLightColor)
	render.DrawTextCentered(screen, fmt.Sprintf("Best: %d", g.env.Store.HighestKills()), face, cx, cy+config.HUDLineHeight, config.TextLightColor)
	render.DrawTextCentered(screen, "Tap to continue", face, cx, cy+3*config.HUDLineHeight, render.WithAlpha(config.TextLightColor, 0.7))
}

func (g *GameState) Exit() {}
