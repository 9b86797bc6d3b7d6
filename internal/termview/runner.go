package termview

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
)

// шагов PlayerSpeed за одно нажатие: автоповтор
// клавиш в терминале реже кадров.
const keyNudgeSteps = 3

// Runner крутит игру в терминале: ввод из PollEvent, логика и кадр по тикеру.
type Runner struct {
	screen tcell.Screen
	view   *View
	game   *app.Game
}

func NewRunner(screen tcell.Screen, game *app.Game) *Runner {
	return &Runner{screen: screen, view: NewView(screen), game: game}
}

// Run блокируется до выхода игрока или отмены ctx.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(config.TermFrameMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := r.HandleEvent(ev); quit {
				log.Printf("[Terminal] quit, kills %d", r.game.KillCount)
				r.game.Quit()
				return nil
			}
		case <-ticker.C:
			r.game.Update()
			r.view.Draw(r.game)
		}
	}
}

// HandleEvent применяет ввод к игре. Возвращает true, если игрок вышел.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			r.handleDrag(ev.Position())
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) handleKey(key tcell.Key, ch rune) bool {
	g := r.game
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		g.NudgePlayer(-keyNudgeSteps, 0)
	case tcell.KeyRight:
		g.NudgePlayer(keyNudgeSteps, 0)
	case tcell.KeyUp:
		g.NudgePlayer(0, -keyNudgeSteps)
	case tcell.KeyDown:
		g.NudgePlayer(0, keyNudgeSteps)
	case tcell.KeyEnter:
		if g.State.Terminal() {
			g.Start()
		}
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return true
		case 'p':
			g.TogglePause()
		case 'b', ' ':
			g.UseBomb()
		case 'a':
			g.NudgePlayer(-keyNudgeSteps, 0)
		case 'd':
			g.NudgePlayer(keyNudgeSteps, 0)
		case 'w':
			g.NudgePlayer(0, -keyNudgeSteps)
		case 's':
			g.NudgePlayer(0, keyNudgeSteps)
		}
	}
	return false
}

// handleDrag ставит самолёт в центр клетки под мышью.
func (r *Runner) handleDrag(cx, cy int) {
	x, y := FromCell(cx, cy)
	r.game.MovePlayer(x, y)
}
