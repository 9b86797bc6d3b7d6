// internal/system/spawner.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/interfaces"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	// отступ одиночных врагов от краёв экрана
	singleSpawnSpacing = 80
	spawnAttempts      = 10
	largeSpawnY        = -150
	formationSpawnY    = -120
	bossSpawnY         = -150
	bossShootJitter    = 30
	largeShootJitter   = 300
)

// Пороги ускорения спавна, в кадрах игрового времени
var spawnRateSteps = []struct {
	After int
	Mul   float64
}{
	{After: 2 * 60 * config.TPS, Mul: 1.2},
	{After: 4 * 60 * config.TPS, Mul: 1.3},
	{After: 6 * 60 * config.TPS, Mul: 1.4},
}

// EnemySpawnerSystem выпускает обычных врагов в пределах, которые
// разрешает текущая боевая фаза.
type EnemySpawnerSystem struct {
	world *entity.World
	cfg   config.SpawnConfig
	rng   *utils.PRNGService

	frame          int
	lastSpawn      int
	hasSpawned     bool
	lastBossDefeat int
	bossDefeated   bool
}

func NewEnemySpawnerSystem(world *entity.World, cfg config.SpawnConfig, rng *utils.PRNGService, dispatcher *event.Dispatcher) *EnemySpawnerSystem {
	s := &EnemySpawnerSystem{world: world, cfg: cfg, rng: rng}
	if dispatcher != nil {
		dispatcher.Subscribe(event.BossDefeated, s)
	}
	return s
}

func (s *EnemySpawnerSystem) OnEvent(e event.Event) {
	if e.Type == event.BossDefeated {
		s.lastBossDefeat = s.frame
		s.bossDefeated = true
	}
}

func (s *EnemySpawnerSystem) Frame() int { return s.frame }

// SpawnRate returns the per-frame spawn chance for the current game time.
func (s *EnemySpawnerSystem) SpawnRate() float64 {
	rate := s.cfg.BaseRate
	for _, step := range spawnRateSteps {
		if s.frame > step.After {
			rate *= step.Mul
		}
	}
	return rate
}

func (s *EnemySpawnerSystem) blocked() bool {
	if s.hasSpawned && s.frame-s.lastSpawn < s.cfg.ThrottleFrames {
		return true
	}
	if s.world.HasEnemyOfKind(defs.EnemyBoss) {
		return true
	}
	if s.bossDefeated && s.frame-s.lastBossDefeat < s.cfg.BossCooldownFrames {
		return true
	}
	return false
}

func (s *EnemySpawnerSystem) Update(policy interfaces.SpawnPolicy) {
	s.frame++
	if s.blocked() || !policy.CanSpawnEnemies() {
		return
	}
	if !s.rng.Chance(s.SpawnRate()) {
		return
	}

	kind, ok := s.chooseKind(policy.AllowedEnemyTypes())
	if !ok {
		return
	}
	switch kind {
	case defs.EnemySmall:
		s.SpawnSingleEnemy(defs.EnemySmall)
	case defs.EnemyMedium:
		// промах по шансу формации не даёт ничего
		if s.rng.Chance(s.cfg.FormationChance) {
			s.spawnMediumFormation()
		}
	}
}

// chooseKind выбирает мелкого или среднего врага по весам. Крупных
// выпускает менеджер фаз.
func (s *EnemySpawnerSystem) chooseKind(allowed []defs.EnemyKind) (defs.EnemyKind, bool) {
	var table []utils.WeightedEntry[defs.EnemyKind]
	for _, k := range allowed {
		switch k {
		case defs.EnemySmall:
			table = append(table, utils.WeightedEntry[defs.EnemyKind]{Value: k, Weight: s.cfg.SmallWeight})
		case defs.EnemyMedium:
			table = append(table, utils.WeightedEntry[defs.EnemyKind]{Value: k, Weight: s.cfg.MediumWeight})
		}
	}
	return utils.ChooseWeighted(s.rng, table)
}

func (s *EnemySpawnerSystem) markSpawned() {
	s.lastSpawn = s.frame
	s.hasSpawned = true
}

func (s *EnemySpawnerSystem) zoneX() float64 {
	w := s.world.Width
	return w*0.1 + s.rng.Float64()*w*0.8
}

func (s *EnemySpawnerSystem) spawnMediumFormation() {
	count := 2 + s.rng.Intn(2)
	members := s.world.Factory.NewFormation(defs.EnemyMedium, flight.Line, s.zoneX(), formationSpawnY, count, flight.Straight)
	for _, e := range members {
		s.world.AddEnemy(e)
	}
	s.markSpawned()
}

// минимальная дистанция до живых врагов для одиночки
func overlapDistance(kind defs.EnemyKind) float64 {
	switch kind {
	case defs.EnemySmall:
		return 80
	case defs.EnemyMedium:
		return 100
	}
	return 120
}

func (s *EnemySpawnerSystem) occupied(x, y, safe float64) bool {
	for _, e := range s.world.Enemies {
		if utils.Distance(e.X, e.Y, x, y) < safe {
			return true
		}
	}
	return false
}

// SpawnSingleEnemy выпускает одиночного врага со случайной траекторией.
// До десяти попыток найти место без соседей; после них берётся последняя точка.
func (s *EnemySpawnerSystem) SpawnSingleEnemy(kind defs.EnemyKind) *entity.Enemy {
	safe := overlapDistance(kind)
	var x, y float64
	for i := 0; i < spawnAttempts; i++ {
		x = singleSpawnSpacing + s.rng.Float64()*(s.world.Width-singleSpawnSpacing*2)
		y = -50 - s.rng.Float64()*100
		if !s.occupied(x, y, safe) {
			break
		}
	}
	e := s.world.SpawnEnemy(kind, x, y)
	e.Flight = flight.RandomPattern(s.rng)
	e.Dirs = flight.RandomDirections(s.rng)
	e.FlightFrame = 0
	s.markSpawned()
	return e
}

// SpawnLargeEnemy выпускает крупного врага в безопасной зоне сверху.
func (s *EnemySpawnerSystem) SpawnLargeEnemy() *entity.Enemy {
	e := s.world.SpawnEnemy(defs.EnemyLarge, s.zoneX(), largeSpawnY)
	e.ShootTimer = s.rng.Intn(largeShootJitter)
	return e
}

// SpawnBoss выпускает босса по центру над экраном.
func (s *EnemySpawnerSystem) SpawnBoss() *entity.Enemy {
	e := s.world.SpawnEnemy(defs.EnemyBoss, s.world.Width/2, bossSpawnY)
	e.ShootTimer = s.rng.Intn(bossShootJitter)
	return e
}
