// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/ui"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

var _ State = (*MenuState)(nil)

const (
	menuButtonWidth  = 240
	menuButtonHeight = 44
	menuButtonGap    = 16
	menuTop          = 300
)

// MenuState — стартовый экран: режим, покупка бомб, статистика.
type MenuState struct {
	sm  *StateMachine
	env *Env

	start *ui.MenuButton
	mode  *ui.MenuButton
	bombs *ui.MenuButton
	sound *ui.MenuButton

	message string
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	x := (config.ScreenWidth - menuButtonWidth) / 2
	row := func(i int) image.Rectangle {
		y := menuTop + i*(menuButtonHeight+menuButtonGap)
		return image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight)
	}
	return &MenuState{
		sm:    sm,
		env:   env,
		start: ui.NewMenuButton(row(0), "Start", env.Face),
		mode:  ui.NewMenuButton(row(1), "", env.Face),
		bombs: ui.NewMenuButton(row(2), fmt.Sprintf("Buy %d bombs (%d kills)", BombPackSize, BombPackCost), env.Face),
		sound: ui.NewMenuButton(row(3), "", env.Face),
	}
}

func (m *MenuState) Enter() {
	m.message = ""
	m.refreshLabels()
}

func (m *MenuState) refreshLabels() {
	if m.env.Config.MissionMode {
		m.mode.Text = "Mode: Missions"
	} else {
		m.mode.Text = "Mode: Endless"
	}
	m.sound.Disabled = m.env.Audio == nil
	if m.env.Audio != nil && m.env.Audio.Muted() {
		m.sound.Text = "Sound: off"
	} else {
		m.sound.Text = "Sound: on"
	}
	m.bombs.Disabled = m.env.Store.TotalKills() < BombPackCost
}

func (m *MenuState) Update(frame int) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.startGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.toggleMode()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch {
	case m.start.IsClicked(x, y):
		m.startGame()
	case m.mode.IsClicked(x, y):
		m.toggleMode()
	case m.bombs.IsClicked(x, y):
		m.buyBombs()
	case m.sound.IsClicked(x, y):
		m.env.Audio.SetMuted(!m.env.Audio.Muted())
		m.refreshLabels()
	}
}

func (m *MenuState) toggleMode() {
	m.env.Config.MissionMode = !m.env.Config.MissionMode
	m.refreshLabels()
}

func (m *MenuState) buyBombs() {
	g := m.env.Game
	if g.PurchaseBombs(BombPackSize, BombPackCost) {
		m.message = fmt.Sprintf("%d bombs ready", g.Powerups.Bombs)
	} else {
		m.message = "Not enough kills!"
	}
	m.refreshLabels()
}

func (m *MenuState) startGame() {
	m.env.Game.Start()
	m.sm.SetState(NewGameState(m.sm, m.env))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.env.Renderer.Painter().Plane(screen, config.ScreenWidth/2, 170, 60, 60, true, config.PlayerColor)
	render.DrawTextCentered(screen, config.WindowTitle, m.env.Face, config.ScreenWidth/2, 240, config.TextLightColor)

	for _, b := range []*ui.MenuButton{m.start, m.mode, m.bombs, m.sound} {
		b.Draw(screen)
	}

	y := menuTop + 4*(menuButtonHeight+menuButtonGap) + 20
	lines := []string{
		fmt.Sprintf("Total kills: %d", m.env.Store.TotalKills()),
		fmt.Sprintf("Best run: %d", m.env.Store.HighestKills()),
		fmt.Sprintf("Rescues: %d", m.env.Store.TotalRescues()),
		fmt.Sprintf("Bombs: %d", m.env.Game.Powerups.Bombs),
	}
	for i, line := range lines {
		render.DrawTextCentered(screen, line, m.env.Face, config.ScreenWidth/2, y+i*config.HUDLineHeight, config.TextLightColor)
	}
	if m.message != "" {
		render.DrawTextCentered(screen, m.message, m.env.Face, config.ScreenWidth/2, y+len(lines)*config.HUDLineHeight+12, config.ItemColors["double_fire"])
	}
}

func (m *MenuState) Exit() {}
