// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	env           *Env
}

func NewPauseState(sm *StateMachine, prevState *GameState, env *Env) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		env:           env,
	}
}

func (s *PauseState) Enter() {
	if !s.env.Game.IsPaused() {
		s.env.Game.TogglePause()
	}
}

func (s *PauseState) Update(frame int) {
	// на паузе гаснут только сообщения
	s.env.Game.Update()

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.env.HUD.Pause.IsClicked(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.env.Game.Quit()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.env))
		return
	}
	if unpause {
		s.env.HUD.Pause.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	render.DrawTextCentered(screen, "PAUSED", s.env.Face, config.ScreenWidth/2, config.ScreenHeight/2-10, color.White)
	render.DrawTextCentered(screen, "P to resume, Q to quit", s.env.Face, config.ScreenWidth/2, config.ScreenHeight/2+config.HUDLineHeight, config.TextLightColor)
}

// Exit снимает игру с паузы, если она ещё стоит.
func (s *PauseState) Exit() {
	if s.env.Game.IsPaused() {
		s.env.Game.TogglePause()
	}
}
