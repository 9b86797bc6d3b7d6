// internal/termview/view.go
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
)

// строки статуса сверху, под ними поле
const hudRows = 1

var (
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleWingman   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleBullet    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMissile   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePassenger = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCargo     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleBomber    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleEffect    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleNotice    = tcell.StyleDefault.Foreground(tcell.ColorYellow)

	enemyStyles = map[defs.EnemyKind]tcell.Style{
		defs.EnemySmall:  tcell.StyleDefault.Foreground(tcell.ColorLightGreen),
		defs.EnemyMedium: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		defs.EnemyLarge:  tcell.StyleDefault.Foreground(tcell.ColorPurple),
		defs.EnemyBoss:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
	enemyGlyphs = map[defs.EnemyKind]rune{
		defs.EnemySmall:  'v',
		defs.EnemyMedium: 'V',
		defs.EnemyLarge:  'W',
		defs.EnemyBoss:   '#',
	}
	itemGlyphs = map[defs.ItemKind]rune{
		defs.ItemDoubleFire: 'F',
		defs.ItemBomb:       'B',
		defs.ItemMissile:    'M',
		defs.ItemLife:       '+',
		defs.ItemWingman:    'W',
	}
)

// Canvas is the part of tcell.Screen the view draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// View рисует мир клетками терминала: одна клетка покрывает
// TermCellWidth×TermCellHeight пикселей поля.
type View struct {
	screen Canvas
}

func NewView(screen Canvas) *View {
	return &View{screen: screen}
}

// ToCell переводит координаты поля в клетку экрана.
func ToCell(x, y float64) (int, int) {
	return int(x / config.TermCellWidth), int(y/config.TermCellHeight) + hudRows
}

// FromCell maps a cell back to the field, to the cell centre.
func FromCell(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * config.TermCellWidth, (float64(cy-hudRows) + 0.5) * config.TermCellHeight
}

// GridSize includes the status row.
func GridSize() (int, int) {
	return config.ScreenWidth / config.TermCellWidth, config.ScreenHeight/config.TermCellHeight + hudRows
}

func (v *View) put(x, y float64, r rune, style tcell.Style) {
	cx, cy := ToCell(x, y)
	w, h := GridSize()
	if cx < 0 || cy < hudRows || cx >= w || cy >= h {
		return
	}
	v.screen.SetContent(cx, cy, r, nil, style)
}

// fill закрашивает прямоугольник тела, чтобы крупные цели занимали
// несколько клеток.
func (v *View) fill(b component.Body, r rune, style tcell.Style) {
	for y := b.Top(); y < b.Bottom(); y += config.TermCellHeight {
		for x := b.Left(); x < b.Right(); x += config.TermCellWidth {
			v.put(x, y, r, style)
		}
	}
	v.put(b.X, b.Y, r, style)
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Draw выводит кадр целиком и показывает его.
func (v *View) Draw(g *app.Game) {
	v.screen.Clear()
	w := g.World

	for _, c := range w.Cargo {
		v.fill(c.Body, '=', styleCargo)
	}
	for _, b := range w.Bombers {
		v.fill(b.Body, '=', styleBomber)
		for _, bomb := range b.Pending {
			v.put(bomb.X, bomb.Y, 'o', styleBomber)
		}
	}
	for _, p := range w.Passengers {
		v.fill(p.Body, 'P', stylePassenger)
	}
	for _, e := range w.Enemies {
		v.fill(e.Body, enemyGlyphs[e.Kind], enemyStyles[e.Kind])
	}
	for _, it := range w.Items {
		v.put(it.X, it.Y, itemGlyphs[it.Kind], tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}
	for _, b := range w.PlayerBullets {
		v.put(b.X, b.Y, '|', styleBullet)
	}
	for _, b := range w.EnemyBullets {
		v.put(b.X, b.Y, '*', styleEnemyShot)
	}
	for _, m := range w.Missiles {
		v.put(m.X, m.Y, '^', styleMissile)
	}
	for i := range w.Effects {
		e := &w.Effects[i]
		v.put(e.X, e.Y, '%', styleEffect)
	}
	for _, wm := range w.Wingmen {
		v.put(wm.X, wm.Y, 'a', styleWingman)
	}
	if p := w.Player; p != nil && !p.Blink() {
		v.fill(p.Body, 'A', stylePlayer)
	}

	v.drawHUD(g)
	v.screen.Show()
}

func (v *View) drawHUD(g *app.Game) {
	width, height := GridSize()
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}
	p := g.World.Player
	status := fmt.Sprintf(" L%d HP%d P%d B%d K%d %s", p.Lives, p.Health, p.BulletLevel, g.Powerups.Bombs, g.KillCount, g.Phases.Phase)
	if g.MissionMode() {
		status += fmt.Sprintf(" %d%%", int(g.Progress.Display*100))
	}
	v.text(0, 0, status, styleHUD)

	if n := g.Notifications.Current; n != nil {
		v.text(1, height-2, n.Text, styleNotice)
	}
	switch {
	case g.State.Terminal():
		v.text(1, height/2, fmt.Sprintf("%s  kills %d  [enter] again  [q] quit", g.State, g.KillCount), styleNotice.Bold(true))
	case g.IsPaused():
		v.text(1, height/2, "PAUSED  [p] resume", styleNotice.Bold(true))
	}
}
