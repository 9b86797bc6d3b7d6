package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

// gridCanvas запоминает нарисованные клетки.
type gridCanvas struct {
	cells map[[2]int]rune
	shown int
}

func newGridCanvas() *gridCanvas { return &gridCanvas{cells: map[[2]int]rune{}} }

func (c *gridCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = r
}
func (c *gridCanvas) Clear() { c.cells = map[[2]int]rune{} }
func (c *gridCanvas) Show()  { c.shown++ }

func (c *gridCanvas) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		if r, ok := c.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func newTestRunner() (*Runner, *gridCanvas) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 7
	canvas := newGridCanvas()
	return &Runner{view: NewView(canvas), game: app.NewGame(cfg, nil, nil)}, canvas
}

func TestCellMapping(t *testing.T) {
	t.Run("round trip lands in the same cell", func(t *testing.T) {
		cx, cy := ToCell(123, 456)
		x, y := FromCell(cx, cy)
		if gx, gy := ToCell(x, y); gx != cx || gy != cy {
			t.Errorf("got cell (%d,%d), want (%d,%d)", gx, gy, cx, cy)
		}
	})

	t.Run("status row is above the field", func(t *testing.T) {
		_, cy := ToCell(0, 0)
		if cy != hudRows {
			t.Errorf("top of field maps to row %d, want %d", cy, hudRows)
		}
	})

	t.Run("grid covers the field", func(t *testing.T) {
		w, h := GridSize()
		if w*config.TermCellWidth != config.ScreenWidth {
			t.Errorf("width %d cells does not cover %d px", w, config.ScreenWidth)
		}
		if (h-hudRows)*config.TermCellHeight != config.ScreenHeight {
			t.Errorf("height %d rows does not cover %d px", h, config.ScreenHeight)
		}
	})
}

func TestViewDraw(t *testing.T) {
	r, canvas := newTestRunner()
	p := r.game.World.Player
	p.Invulnerable = 0

	r.view.Draw(r.game)

	if canvas.shown != 1 {
		t.Errorf("Show called %d times, want 1", canvas.shown)
	}
	cx, cy := ToCell(p.X, p.Y)
	if got := canvas.cells[[2]int{cx, cy}]; got != 'A' {
		t.Errorf("player cell has %q, want 'A'", got)
	}
	w, _ := GridSize()
	if status := canvas.row(0, w); !strings.Contains(status, "K0") {
		t.Errorf("status row %q has no kill counter", status)
	}

	t.Run("offscreen bullets are clipped", func(t *testing.T) {
		canvas.Clear()
		r.view.put(-40, 300, '*', tcell.StyleDefault)
		r.view.put(100, -40, '*', tcell.StyleDefault)
		if len(canvas.cells) != 0 {
			t.Errorf("drew %d cells outside the field", len(canvas.cells))
		}
	})

	t.Run("pause banner", func(t *testing.T) {
		r.game.TogglePause()
		r.view.Draw(r.game)
		_, h := GridSize()
		if row := canvas.row(h/2, w); !strings.Contains(row, "PAUSED") {
			t.Errorf("row %q has no pause banner", row)
		}
	})
}

func TestHandleKey(t *testing.T) {
	t.Run("quit keys", func(t *testing.T) {
		r, _ := newTestRunner()
		if !r.handleKey(tcell.KeyRune, 'q') {
			t.Error("q should quit")
		}
		if !r.handleKey(tcell.KeyEscape, 0) {
			t.Error("Esc should quit")
		}
	})

	t.Run("arrow nudges player", func(t *testing.T) {
		r, _ := newTestRunner()
		p := r.game.World.Player
		x := p.X
		r.handleKey(tcell.KeyLeft, 0)
		if want := x - keyNudgeSteps*entity.PlayerSpeed; p.X != want {
			t.Errorf("player x = %v, want %v", p.X, want)
		}
	})

	t.Run("p toggles pause", func(t *testing.T) {
		r, _ := newTestRunner()
		r.handleKey(tcell.KeyRune, 'p')
		if !r.game.IsPaused() {
			t.Fatal("game should be paused")
		}
		r.handleKey(tcell.KeyRune, 'p')
		if r.game.IsPaused() {
			t.Error("game should resume")
		}
	})

	t.Run("enter restarts only after the run ends", func(t *testing.T) {
		r, _ := newTestRunner()
		r.game.KillCount = 5
		r.handleKey(tcell.KeyEnter, 0)
		if r.game.KillCount != 5 {
			t.Fatal("enter during play must not restart")
		}
		r.game.Quit()
		r.handleKey(tcell.KeyEnter, 0)
		if r.game.KillCount != 0 || r.game.State.Terminal() {
			t.Errorf("after restart kills = %d, state = %s", r.game.KillCount, r.game.State)
		}
	})
}

func TestHandleDrag(t *testing.T) {
	r, _ := newTestRunner()
	r.handleDrag(10, 20)
	wantX, wantY := FromCell(10, 20)
	p := r.game.World.Player
	if p.X != wantX || p.Y != wantY {
		t.Errorf("player at (%v,%v), want (%v,%v)", p.X, p.Y, wantX, wantY)
	}
}
