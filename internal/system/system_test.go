package system

import (
	"testing"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

type eventLog struct{ got []event.Event }

func (l *eventLog) OnEvent(e event.Event) { l.got = append(l.got, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, types ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

func enemyBullet(x, y float64, owner defs.EnemyKind) *entity.EnemyBullet {
	return entity.NewEnemyBullet(pattern.Shot{X: x, Y: y, Owner: owner})
}

func newTestWorld(seed int64) *entity.World {
	return entity.NewWorld(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(seed), nil, nil)
}

// fakeScene is a scripted scene for the phase manager.
type fakeScene struct {
	mission   bool
	large     bool
	bossAlive bool
	nonBoss   int

	largeSpawned int
	singles      []defs.EnemyKind
	bossSpawned  int
	passenger    *entity.Passenger
}

func (f *fakeScene) HasEnemyOfKind(kind defs.EnemyKind) bool {
	switch kind {
	case defs.EnemyLarge:
		return f.large
	case defs.EnemyBoss:
		return f.bossAlive
	}
	return false
}
func (f *fakeScene) CountNonBossEnemies() int { return f.nonBoss }
func (f *fakeScene) SpawnLargeEnemy() { f.largeSpawned++ }
func (f *fakeScene) SpawnSingleEnemy(kind defs.EnemyKind) { f.singles = append(f.singles, kind) }
func (f *fakeScene) SpawnBoss() *entity.Enemy {
	f.bossSpawned++
	f.bossAlive = true
	return nil
}
func (f *fakeScene) SpawnPassenger() *entity.Passenger { return f.passenger }
func (f *fakeScene) MissionMode() bool { return f.mission }

func newPassenger(seed int64) *entity.Passenger {
	rng := utils.NewPRNGService(seed)
	r := flight.PassengerRoute(config.ScreenWidth, config.ScreenHeight, rng)
	return entity.NewPassenger(r, config.ScreenWidth, config.ScreenHeight, rng)
}

func newTestPhases(scene *fakeScene) (*BattlePhaseManager, *eventLog) {
	d := event.NewDispatcher()
	l := listen(d, event.PhaseChanged, event.PassengerEscaped, event.BossSpawned)
	cfg := config.DefaultGameConfig().Phase
	return NewBattlePhaseManager(cfg, scene, utils.NewPRNGService(7), d), l
}

func TestBattlePhaseWarmup(t *testing.T) {
	m, l := newTestPhases(&fakeScene{})
	cfg := config.DefaultGameConfig().Phase
	for i := 0; i < cfg.WarmupFrames-1; i++ {
		m.Update()
	}
	if m.Phase != PhaseWarmup {
		t.Fatalf("phase = %s before warmup ends", m.Phase)
	}
	m.Update()
	if m.Phase != PhaseIntense {
		t.Fatalf("phase = %s, want intense", m.Phase)
	}
	if m.TargetCount < cfg.MinLarge || m.TargetCount > cfg.MaxLarge {
		t.Errorf("target %d outside [%d,%d]", m.TargetCount, cfg.MinLarge, cfg.MaxLarge)
	}
	if l.count(event.PhaseChanged) != 1 {
		t.Errorf("PhaseChanged dispatched %d times", l.count(event.PhaseChanged))
	}
}

func TestBattlePhaseIntenseToBoss(t *testing.T) {
	t.Run("quota met and no large left", func(t *testing.T) {
		scene := &fakeScene{}
		m, _ := newTestPhases(scene)
		m.startIntense()
		m.SetTargetCount(5)
		m.LargeSpawned = 5
		m.Update()
		if m.Phase != PhaseBoss {
			t.Fatalf("phase = %s, want boss", m.Phase)
		}
		if scene.largeSpawned != 0 {
			t.Errorf("spawned %d large enemies past quota", scene.largeSpawned)
		}
	})

	t.Run("large enemy still alive", func(t *testing.T) {
		scene := &fakeScene{large: true}
		m, _ := newTestPhases(scene)
		m.startIntense()
		m.SetTargetCount(2)
		m.LargeSpawned = 2
		for i := 0; i < 10; i++ {
			m.Update()
		}
		if m.Phase != PhaseIntense {
			t.Fatalf("phase = %s while large enemy alive", m.Phase)
		}
		scene.large = false
		m.Update()
		if m.Phase != PhaseBoss {
			t.Fatalf("phase = %s, want boss", m.Phase)
		}
	})

	t.Run("spawns never exceed target", func(t *testing.T) {
		scene := &fakeScene{large: true}
		m, _ := newTestPhases(scene)
		m.startIntense()
		m.SetTargetCount(3)
		for i := 0; i < 5000; i++ {
			m.Update()
		}
		if scene.largeSpawned != 3 || m.LargeSpawned != 3 {
			t.Errorf("spawned %d (counter %d), want 3", scene.largeSpawned, m.LargeSpawned)
		}
	})
}

func TestBattlePhaseBossWarning(t *testing.T) {
	scene := &fakeScene{nonBoss: 4}
	m, l := newTestPhases(scene)
	m.startBoss()
	for i := 0; i < 10; i++ {
		m.Update()
	}
	if scene.bossSpawned != 0 {
		t.Fatal("boss spawned while the field is not clear")
	}
	scene.nonBoss = 0
	m.Update()
	if scene.bossSpawned != 1 || !m.BossFightActive() {
		t.Fatalf("boss spawned %d, fight active %v", scene.bossSpawned, m.BossFightActive())
	}
	if l.count(event.BossSpawned) != 1 {
		t.Errorf("BossSpawned dispatched %d times", l.count(event.BossSpawned))
	}
	m.Update()
	if scene.bossSpawned != 1 {
		t.Error("boss spawned twice")
	}
}

func TestOnBossDefeatedIsIdempotent(t *testing.T) {
	scene := &fakeScene{}
	m, l := newTestPhases(scene)
	m.startBoss()
	m.Update() // поле чистое, босс появляется
	before := l.count(event.PhaseChanged)

	m.OnBossDefeated()
	m.OnBossDefeated()
	if m.Phase != PhaseRest {
		t.Fatalf("phase = %s, want rest in endless mode", m.Phase)
	}
	if got := l.count(event.PhaseChanged) - before; got != 1 {
		t.Errorf("phase changed %d times, want 1", got)
	}
}

func TestBossAbsenceEndsFight(t *testing.T) {
	scene := &fakeScene{mission: true, passenger: newPassenger(3)}
	m, _ := newTestPhases(scene)
	m.startBoss()
	m.Update()
	scene.bossAlive = false
	m.Update()
	if m.Phase != PhasePassenger {
		t.Fatalf("phase = %s, want passenger", m.Phase)
	}
	if m.Passenger() != scene.passenger {
		t.Error("manager does not track the spawned passenger")
	}
}

func TestPassengerEscapeLeavesPhase(t *testing.T) {
	scene := &fakeScene{mission: true, passenger: newPassenger(5)}
	m, l := newTestPhases(scene)
	m.Phase = PhaseBoss
	m.bossFight = true
	m.OnBossDefeated()
	if m.Phase != PhasePassenger {
		t.Fatalf("phase = %s, want passenger", m.Phase)
	}

	scene.passenger.Escaped = true
	m.Update()
	if m.Phase != PhasePassengerEnd || m.EndReason != EndEscaped {
		t.Fatalf("phase = %s reason %q, want passenger_end/escaped", m.Phase, m.EndReason)
	}
	if l.count(event.PassengerEscaped) != 1 {
		t.Errorf("PassengerEscaped dispatched %d times", l.count(event.PassengerEscaped))
	}
	if m.Passenger() != nil {
		t.Error("passenger reference kept after escort")
	}
	m.Update()
	if m.Phase != PhaseRest {
		t.Errorf("phase = %s, want rest", m.Phase)
	}
}

func TestPassengerDestroyed(t *testing.T) {
	scene := &fakeScene{mission: true, passenger: newPassenger(6)}
	m, _ := newTestPhases(scene)

	m.OnPassengerDestroyed()
	if m.Phase != PhaseWarmup {
		t.Fatalf("destroy outside escort changed phase to %s", m.Phase)
	}

	m.Phase = PhaseBoss
	m.bossFight = true
	m.OnBossDefeated()
	scene.passenger.TakeDamage(scene.passenger.Health)
	m.Update()
	if m.Phase != PhasePassengerEnd || m.EndReason != EndDestroyed {
		t.Errorf("phase = %s reason %q, want passenger_end/destroyed", m.Phase, m.EndReason)
	}
}

func TestSpawnPolicy(t *testing.T) {
	m, _ := newTestPhases(&fakeScene{})
	tests := []struct {
		phase   Phase
		can     bool
		allowed int
	}{
		{PhaseWarmup, true, 2},
		{PhaseIntense, true, 3},
		{PhasePassenger, true, 2},
		{PhaseRest, false, 0},
		{PhaseBoss, false, 0},
		{PhasePassengerEnd, false, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.phase), func(t *testing.T) {
			m.Phase = tc.phase
			if m.CanSpawnEnemies() != tc.can {
				t.Errorf("CanSpawnEnemies = %v", !tc.can)
			}
			if got := len(m.AllowedEnemyTypes()); got != tc.allowed {
				t.Errorf("allowed types = %d, want %d", got, tc.allowed)
			}
			if m.Info().Progress == "" {
				t.Error("empty HUD label")
			}
		})
	}
}

type staticPolicy struct {
	can     bool
	allowed []defs.EnemyKind
}

func (p staticPolicy) CanSpawnEnemies() bool               { return p.can }
func (p staticPolicy) AllowedEnemyTypes() []defs.EnemyKind { return p.allowed }

func TestSpawnerRespectsPolicy(t *testing.T) {
	w := newTestWorld(11)
	cfg := config.DefaultGameConfig().Spawn
	cfg.BaseRate = 1
	s := NewEnemySpawnerSystem(w, cfg, utils.NewPRNGService(11), event.NewDispatcher())

	for i := 0; i < 200; i++ {
		s.Update(staticPolicy{can: false})
	}
	if len(w.Enemies) != 0 {
		t.Fatalf("%d enemies spawned while phase forbids it", len(w.Enemies))
	}

	small := staticPolicy{can: true, allowed: []defs.EnemyKind{defs.EnemySmall}}
	s.Update(small)
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies))
	}
	for i := 0; i < cfg.ThrottleFrames-1; i++ {
		s.Update(small)
	}
	if len(w.Enemies) != 1 {
		t.Errorf("throttle broken: %d enemies", len(w.Enemies))
	}
	s.Update(small)
	if len(w.Enemies) != 2 {
		t.Errorf("enemies = %d after throttle, want 2", len(w.Enemies))
	}
}

func TestSpawnerBossGating(t *testing.T) {
	w := newTestWorld(12)
	cfg := config.DefaultGameConfig().Spawn
	cfg.BaseRate = 1
	d := event.NewDispatcher()
	s := NewEnemySpawnerSystem(w, cfg, utils.NewPRNGService(12), d)
	policy := staticPolicy{can: true, allowed: []defs.EnemyKind{defs.EnemySmall}}

	boss := s.SpawnBoss()
	for i := 0; i < 100; i++ {
		s.Update(policy)
	}
	if len(w.Enemies) != 1 {
		t.Fatalf("spawned next to a live boss: %d enemies", len(w.Enemies))
	}

	w.RemoveEnemyAt(w.IndexOfEnemy(boss))
	d.Dispatch(event.Event{Type: event.BossDefeated})
	for i := 0; i < cfg.BossCooldownFrames-1; i++ {
		s.Update(policy)
	}
	if len(w.Enemies) != 0 {
		t.Fatalf("spawned during boss cooldown: %d enemies", len(w.Enemies))
	}
	s.Update(policy)
	if len(w.Enemies) != 1 {
		t.Errorf("enemies = %d after cooldown, want 1", len(w.Enemies))
	}
}

func TestSpawnRateGrowsWithTime(t *testing.T) {
	s := NewEnemySpawnerSystem(newTestWorld(1), config.SpawnConfig{BaseRate: 0.01}, utils.NewPRNGService(1), nil)
	if s.SpawnRate() != 0.01 {
		t.Fatalf("rate = %v", s.SpawnRate())
	}
	s.frame = 7 * 60 * config.TPS
	want := 0.01 * 1.2 * 1.3 * 1.4
	if got := s.SpawnRate(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("rate = %v, want %v", got, want)
	}
}

type collectorFunc func(defs.ItemKind)

func (f collectorFunc) CollectItem(k defs.ItemKind) { f(k) }

func newTestCollisions(w *entity.World) (*CollisionSystem, *eventLog) {
	d := event.NewDispatcher()
	l := listen(d, event.EnemyKilled, event.BossDefeated, event.PlayerHit, event.PlayerDied, event.PassengerDestroyed, event.ItemCollected)
	return NewCollisionSystem(w, d, utils.NewPRNGService(1), nil, 25), l
}

func TestBulletKillsSmallEnemy(t *testing.T) {
	w := newTestWorld(1)
	c, l := newTestCollisions(w)
	e := w.SpawnEnemy(defs.EnemySmall, 100, 100)
	w.PlayerBullets = append(w.PlayerBullets, entity.NewPlayerBullet(100, 100, 12, 8, 1, false))

	c.Update()
	if len(w.Enemies) != 0 || len(w.PlayerBullets) != 0 {
		t.Fatalf("enemies %d bullets %d after hit", len(w.Enemies), len(w.PlayerBullets))
	}
	if e.Alive() {
		t.Error("enemy still alive")
	}
	if len(l.got) != 1 {
		t.Fatalf("events = %v", l.got)
	}
	data := l.got[0].Data.(event.EnemyKilledData)
	if !data.Credited || data.Kind != string(defs.EnemySmall) {
		t.Errorf("kill data = %+v", data)
	}
	if len(w.Effects) == 0 {
		t.Error("no destroy animation")
	}
}

func TestBulletHitsOneEnemy(t *testing.T) {
	w := newTestWorld(2)
	c, l := newTestCollisions(w)
	a := w.SpawnEnemy(defs.EnemyMedium, 200, 200)
	b := w.SpawnEnemy(defs.EnemyMedium, 200, 200)
	w.PlayerBullets = append(w.PlayerBullets, entity.NewPlayerBullet(200, 200, 12, 8, 1, false))

	c.Update()
	damaged := 0
	for _, e := range []*entity.Enemy{a, b} {
		if e.HP < e.MaxHP {
			damaged++
		}
	}
	if damaged != 1 {
		t.Errorf("bullet damaged %d enemies, want 1", damaged)
	}
	if len(w.PlayerBullets) != 0 {
		t.Error("bullet not consumed")
	}
	if l.count(event.EnemyKilled) != 0 {
		t.Error("medium enemy should survive one bullet")
	}
}

func TestEnemyAboveScreenIgnoresBullets(t *testing.T) {
	w := newTestWorld(3)
	c, _ := newTestCollisions(w)
	e := w.SpawnEnemy(defs.EnemySmall, 100, -40)
	w.PlayerBullets = append(w.PlayerBullets, entity.NewPlayerBullet(100, -40, 12, 8, 1, false))
	c.Update()
	if !e.Alive() || len(w.PlayerBullets) != 1 {
		t.Error("enemy above the screen took a hit")
	}
}

func TestRamIsNotCredited(t *testing.T) {
	w := newTestWorld(4)
	c, l := newTestCollisions(w)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	w.SpawnEnemy(defs.EnemyMedium, 240, 600)

	c.Update()
	if len(w.Enemies) != 0 {
		t.Fatal("rammed enemy survived")
	}
	if l.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit dispatched %d times", l.count(event.PlayerHit))
	}
	for _, e := range l.got {
		if e.Type == event.EnemyKilled && e.Data.(event.EnemyKilledData).Credited {
			t.Error("ram credited as a kill")
		}
	}
	if w.Player.Health != 75 {
		t.Errorf("player health = %d, want 75", w.Player.Health)
	}
}

func TestPlayerDeathCause(t *testing.T) {
	w := newTestWorld(5)
	c, l := newTestCollisions(w)
	cfg := config.DefaultGameConfig().Player
	cfg.Lives = 1
	cfg.Health = 10
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, cfg)
	w.EnemyBullets = append(w.EnemyBullets, enemyBullet(240, 600, defs.EnemyLarge))

	c.Update()
	if l.count(event.PlayerDied) != 1 {
		t.Fatalf("PlayerDied dispatched %d times", l.count(event.PlayerDied))
	}
	for _, e := range l.got {
		if e.Type == event.PlayerDied {
			cause := e.Data.(event.DeathCause)
			if cause.Kind != "bullet" || cause.By != string(defs.EnemyLarge) {
				t.Errorf("cause = %+v", cause)
			}
		}
	}
}

func TestPassengerCollisions(t *testing.T) {
	w := newTestWorld(6)
	c, l := newTestCollisions(w)
	ps := newPassenger(6)
	ps.X, ps.Y = 240, 300
	w.Passengers = append(w.Passengers, ps)

	e := w.SpawnEnemy(defs.EnemyLarge, 240, 300)
	c.Update()
	if e.Alive() || len(w.Enemies) != 0 {
		t.Error("enemy survived ramming the passenger")
	}
	if ps.Health != ps.MaxHealth-PassengerRamDamage {
		t.Errorf("passenger health = %d", ps.Health)
	}
	if l.count(event.EnemyKilled) != 0 {
		t.Error("passenger ram must not be credited")
	}

	for ps.Health > 0 {
		w.EnemyBullets = append(w.EnemyBullets, enemyBullet(ps.X, ps.Y, defs.EnemyMedium))
		c.Update()
	}
	if len(w.EnemyBullets) != 0 {
		t.Error("bullet hitting passenger not removed")
	}
	if l.count(event.PassengerDestroyed) != 1 {
		t.Errorf("PassengerDestroyed dispatched %d times", l.count(event.PassengerDestroyed))
	}
	w.EnemyBullets = append(w.EnemyBullets, enemyBullet(ps.X, ps.Y, defs.EnemySmall))
	c.Update()
	if l.count(event.PassengerDestroyed) != 1 {
		t.Error("destroyed passenger reported twice")
	}
}

func TestPassengerBumpsPlayer(t *testing.T) {
	w := newTestWorld(9)
	c, l := newTestCollisions(w)
	w.Player = entity.NewPlayer(240, 300, w.Width, w.Height, config.DefaultGameConfig().Player)
	ps := newPassenger(9)
	ps.X, ps.Y = 240, 300
	w.Passengers = append(w.Passengers, ps)

	for i := 0; i < 5; i++ {
		c.Update()
	}
	if want := ps.MaxHealth - 5*PassengerBumpDamage; ps.Health != want {
		t.Errorf("passenger health = %d, want %d", ps.Health, want)
	}
	if want := w.Player.MaxHealth - PassengerBumpDamage; w.Player.Health != want {
		t.Errorf("player health = %d, want %d", w.Player.Health, want)
	}
	if l.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit dispatched %d times, want 1", l.count(event.PlayerHit))
	}
}

func TestMissileExplosion(t *testing.T) {
	w := newTestWorld(10)
	c, l := newTestCollisions(w)
	near := w.SpawnEnemy(defs.EnemyLarge, 200, 210)
	edge := w.SpawnEnemy(defs.EnemyLarge, 255, 200)
	outside := w.SpawnEnemy(defs.EnemyLarge, 320, 200)
	small := w.SpawnEnemy(defs.EnemySmall, 200, 190)
	w.Missiles = append(w.Missiles, entity.NewTrackingMissile(200, 200, config.MissileConfig{
		Speed:           5,
		Damage:          50,
		ExplosionRadius: 60,
		Life:            100,
	}))

	c.Update()

	tests := []struct {
		name string
		e    *entity.Enemy
		want int
	}{
		{"full damage inside the trigger radius", near, near.MaxHP - 50},
		{"reduced damage in the blast ring", edge, edge.MaxHP - 30},
		{"no damage beyond the blast", outside, outside.MaxHP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.e.HP != tt.want {
				t.Errorf("hp = %d, want %d", tt.e.HP, tt.want)
			}
		})
	}
	if small.Alive() || w.IndexOfEnemy(small) >= 0 {
		t.Error("small enemy survived the blast")
	}
	if l.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled dispatched %d times, want 1", l.count(event.EnemyKilled))
	}
	if len(w.Missiles) != 0 {
		t.Error("missile not consumed")
	}
}

func TestItemPickup(t *testing.T) {
	w := newTestWorld(7)
	d := event.NewDispatcher()
	var got []defs.ItemKind
	c := NewCollisionSystem(w, d, utils.NewPRNGService(1), collectorFunc(func(k defs.ItemKind) { got = append(got, k) }), 25)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	w.Items = append(w.Items, entity.NewItem(250, 600, defs.ItemBomb), entity.NewItem(240, 100, defs.ItemLife))

	c.Update()
	if len(got) != 1 || got[0] != defs.ItemBomb {
		t.Errorf("collected %v", got)
	}
	if len(w.Items) != 1 {
		t.Errorf("items left %d, want 1", len(w.Items))
	}
}

func TestBossKillDispatchesDefeat(t *testing.T) {
	w := newTestWorld(8)
	c, l := newTestCollisions(w)
	boss := w.SpawnEnemy(defs.EnemyBoss, 240, 200)
	boss.HP = 1
	w.PlayerBullets = append(w.PlayerBullets, entity.NewPlayerBullet(240, 200, 12, 8, 1, false))

	c.Update()
	if l.count(event.BossDefeated) != 1 {
		t.Errorf("BossDefeated dispatched %d times", l.count(event.BossDefeated))
	}
	if w.IndexOfEnemy(boss) >= 0 {
		t.Error("boss still in the world")
	}
}

func newTestPowerups(w *entity.World) (*PowerupSystem, *event.Dispatcher, *NotificationSystem) {
	d := event.NewDispatcher()
	n := NewNotificationSystem(d, true)
	return NewPowerupSystem(w, config.DefaultGameConfig().Missile, utils.NewPRNGService(1), d), d, n
}

func TestCollectItems(t *testing.T) {
	w := newTestWorld(9)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	s, _, n := newTestPowerups(w)

	s.CollectItem(defs.ItemBomb)
	if s.Bombs != 1 {
		t.Errorf("bombs = %d", s.Bombs)
	}
	s.CollectItem(defs.ItemMissile)
	if !s.Missile.Active {
		t.Error("missile mode not active")
	}
	s.CollectItem(defs.ItemWingman)
	if w.Player.WingmenLevel != 1 || len(w.Wingmen) == 0 {
		t.Errorf("wingmen level %d, count %d", w.Player.WingmenLevel, len(w.Wingmen))
	}
	w.Player.Health = 10
	s.CollectItem(defs.ItemLife)
	if w.Player.Health != 60 {
		t.Errorf("health = %d, want 60", w.Player.Health)
	}
	if n.Current == nil || n.Current.Text != "Health restored!" {
		t.Errorf("notification = %+v", n.Current)
	}
}

func TestHitDisablesMissiles(t *testing.T) {
	w := newTestWorld(10)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	s, d, _ := newTestPowerups(w)
	s.ActivateMissileMode()
	w.Player.WingmenLevel = 2
	s.UpdateWingmen()

	d.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Damage: 25}})
	if s.Missile.Active {
		t.Error("missiles survived a hit")
	}
	if len(w.Wingmen) == 0 {
		t.Error("wingmen lost without losing a life")
	}
	d.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Damage: 25, LifeLost: true}})
	if len(w.Wingmen) != 0 {
		t.Error("wingmen kept after life loss")
	}
}

func TestMissileModeFires(t *testing.T) {
	w := newTestWorld(11)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	s, _, _ := newTestPowerups(w)
	s.ActivateMissileMode()
	for i := 0; i < 200; i++ {
		s.UpdateMissileMode()
	}
	if len(w.Missiles) < 3 {
		t.Errorf("missiles fired = %d in 200 frames", len(w.Missiles))
	}
}

func TestClearScreen(t *testing.T) {
	w := newTestWorld(12)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	s, _, _ := newTestPowerups(w)

	if s.ClearScreen() {
		t.Fatal("bomb used without stock")
	}
	s.Bombs = 1
	w.EnemyBullets = append(w.EnemyBullets, enemyBullet(10, 10, defs.EnemyLarge))
	if !s.ClearScreen() {
		t.Fatal("bomb not used")
	}
	if s.Bombs != 0 || len(w.EnemyBullets) != 0 || len(w.Bombers) != 1 || !s.Bombing() {
		t.Errorf("bombs %d bullets %d bombers %d", s.Bombs, len(w.EnemyBullets), len(w.Bombers))
	}
	for i := 0; i < 2000 && s.Bombing(); i++ {
		s.UpdateBombers()
	}
	if s.Bombing() || len(w.Bombers) != 0 {
		t.Error("bomber never left")
	}
}

func TestAvailableItems(t *testing.T) {
	w := newTestWorld(13)
	w.Player = entity.NewPlayer(240, 600, w.Width, w.Height, config.DefaultGameConfig().Player)
	s, _, _ := newTestPowerups(w)
	has := func(k defs.ItemKind) bool {
		for _, it := range s.AvailableItems() {
			if it == k {
				return true
			}
		}
		return false
	}
	if has(defs.ItemLife) {
		t.Error("life offered with full lives")
	}
	s.Bombs = 1
	if has(defs.ItemBomb) {
		t.Error("bomb offered while in stock")
	}
	if !has(defs.ItemDoubleFire) {
		t.Error("double fire must always be available")
	}
}

func TestNotificationLifetime(t *testing.T) {
	d := event.NewDispatcher()
	n := NewNotificationSystem(d, true)
	d.Notify("hello")
	if n.Current == nil {
		t.Fatal("notification not shown")
	}
	for i := 0; i < config.NotificationFrames-1; i++ {
		n.Update()
	}
	if n.Current == nil {
		t.Fatal("notification expired early")
	}
	n.Update()
	if n.Current != nil {
		t.Error("notification outlived its lifetime")
	}

	off := NewNotificationSystem(d, false)
	d.Notify("quiet")
	if off.Current != nil || len(off.History) != 0 {
		t.Error("disabled system shows notifications")
	}
}

func TestCargoLaunch(t *testing.T) {
	w := newTestWorld(14)
	s := NewCargoSystem(w, config.CargoConfig{SpawnRate: 1, MaxActive: 1}, utils.NewPRNGService(14), event.NewDispatcher(),
		func() []defs.ItemKind { return []defs.ItemKind{defs.ItemBomb} })
	s.Spawn()
	s.Spawn()
	if len(w.Cargo) != 1 {
		t.Fatalf("cargo planes = %d, want 1", len(w.Cargo))
	}
	for i := 0; i < 5000 && len(w.Cargo) > 0; i++ {
		s.Update()
	}
	if len(w.Cargo) != 0 {
		t.Error("cargo plane never left")
	}
}
