package pattern

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// SimpleKind — рисунок простого генератора
type SimpleKind string

const (
	SimpleCircle   SimpleKind = "circle"
	SimpleScatter3 SimpleKind = "scatter_3"
	SimpleScatter5 SimpleKind = "scatter_5"
	SimpleDirect   SimpleKind = "direct"
	SimpleSingle   SimpleKind = "single"
)

// Параметры стрельбы по типу врага. Интервал в кадрах.
type aesthetic struct {
	speed        float64
	patterns     []SimpleKind
	fireInterval int
}

var aesthetics = map[defs.EnemyKind]aesthetic{
	defs.EnemyBoss: {
		speed:        1.0,
		patterns:     []SimpleKind{SimpleCircle, SimpleScatter3, SimpleScatter5, SimpleDirect},
		fireInterval: 48,
	},
	defs.EnemyLarge: {
		speed:        5,
		patterns:     []SimpleKind{SimpleSingle},
		fireInterval: 180,
	},
}

const (
	maxBossWaves = 3
	waveDecay    = 0.01
)

// Generator fires the simple per-type pattern of one enemy.
type Generator struct {
	rng      *utils.PRNGService
	clock    int
	lastFire int
	fired    bool
	wave     float64
}

func NewGenerator(rng *utils.PRNGService) *Generator {
	return &Generator{rng: rng}
}

// Update продвигает часы генератора и гасит счётчик волн.
func (g *Generator) Update() {
	g.clock++
	if g.wave > 0 {
		g.wave = math.Max(0, g.wave-waveDecay)
	}
}

func (g *Generator) Waves() float64 { return g.wave }

// Generate возвращает залп врага из точки (x, y) в сторону цели.
// Пустой результат, если тип не стреляет или не прошёл интервал.
func (g *Generator) Generate(kind defs.EnemyKind, x, y, targetX, targetY float64) []Shot {
	a, ok := aesthetics[kind]
	if !ok || len(a.patterns) == 0 {
		return nil
	}
	if g.fired && g.clock-g.lastFire < a.fireInterval {
		return nil
	}
	if kind == defs.EnemyBoss && g.wave >= maxBossWaves {
		return nil
	}

	p, _ := utils.Pick(g.rng, a.patterns)
	var shots []Shot
	switch p {
	case SimpleCircle:
		shots = g.circle(x, y, a.speed)
	case SimpleScatter3:
		shots = g.scatter(x, y, targetX, targetY, a.speed, 3, math.Pi/3, 0.5, 10, 4, 450)
	case SimpleScatter5:
		shots = g.scatter(x, y, targetX, targetY, a.speed, 5, math.Pi/2, 0.4, 9, 3, 500)
	case SimpleDirect:
		shots = g.direct(x, y, a.speed)
	case SimpleSingle:
		shots = g.single(x, y, targetX, targetY, a.speed)
	}
	for i := range shots {
		shots[i].Owner = kind
	}

	g.fired = true
	g.lastFire = g.clock
	if kind == defs.EnemyBoss {
		g.wave++
	}
	return shots
}

func (g *Generator) life(min int) int {
	return min + g.rng.Intn(200)
}

func (g *Generator) circle(x, y, base float64) []Shot {
	const count = 12
	step := 2 * math.Pi / count
	shots := make([]Shot, 0, count)
	for i := 0; i < count; i++ {
		a := float64(i) * step
		speed := base + g.rng.Float64()*0.3
		shots = append(shots, Shot{
			X: x, Y: y,
			VX: math.Cos(a) * speed, VY: math.Sin(a) * speed,
			Size:     8 + g.rng.Float64()*4,
			LifeTime: g.life(400),
		})
	}
	return shots
}

func (g *Generator) scatter(x, y, tx, ty, base float64, count int, spread, jitter, size, sizeJitter float64, minLife int) []Shot {
	baseAngle := math.Atan2(ty-y, tx-x)
	mid := float64(count-1) / 2
	step := spread / float64(count-1)
	shots := make([]Shot, 0, count)
	for i := 0; i < count; i++ {
		a := baseAngle + (float64(i)-mid)*step
		speed := base + g.rng.Float64()*jitter
		shots = append(shots, Shot{
			X: x, Y: y,
			VX: math.Cos(a) * speed, VY: math.Sin(a) * speed,
			Size:     size + g.rng.Float64()*sizeJitter,
			LifeTime: g.life(minLife),
		})
	}
	return shots
}

func (g *Generator) direct(x, y, base float64) []Shot {
	shots := make([]Shot, 0, 3)
	for i := 0; i < 3; i++ {
		speed := base + g.rng.Float64()*0.3
		shots = append(shots, Shot{
			X: x + float64(i-1)*15, Y: y,
			VY:       speed,
			Size:     8 + g.rng.Float64()*3,
			LifeTime: g.life(600),
		})
	}
	return shots
}

func (g *Generator) single(x, y, tx, ty, base float64) []Shot {
	a := math.Atan2(ty-y, tx-x)
	speed := base + g.rng.Float64()*0.3
	return []Shot{{
		X: x, Y: y,
		VX: math.Cos(a) * speed, VY: math.Sin(a) * speed,
		Size:     9,
		LifeTime: 500,
	}}
}

// Reset сбрасывает интервал и волны.
func (g *Generator) Reset() {
	g.fired = false
	g.lastFire = 0
	g.wave = 0
}
