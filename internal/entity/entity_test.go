package entity

import (
	"math"
	"testing"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

func newTestWorld(seed int64) *World {
	return NewWorld(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(seed), nil, nil)
}

func TestFactoryScalesHealth(t *testing.T) {
	w := newTestWorld(1)
	w.Factory.Difficulty = func() float64 { return 1.5 }

	e := w.Factory.NewEnemy(defs.EnemyMedium, 100, -50)
	if e.MaxHP != 18 || e.HP != 18 {
		t.Errorf("medium hp = %d/%d, want 18/18", e.HP, e.MaxHP)
	}

	w.Factory.Difficulty = func() float64 { return math.NaN() }
	e = w.Factory.NewEnemy(defs.EnemyLarge, 100, -50)
	if e.MaxHP != 1000 {
		t.Errorf("NaN difficulty should fall back to 1, got hp %d", e.MaxHP)
	}
}

func TestEnemyIDsAreUnique(t *testing.T) {
	w := newTestWorld(2)
	seen := map[uint64]bool{}
	for i := 0; i < 20; i++ {
		e := w.SpawnEnemy(defs.EnemySmall, 100, -50)
		if seen[uint64(e.ID)] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[uint64(e.ID)] = true
	}
}

func TestSmallEnemiesGetFlightPattern(t *testing.T) {
	w := newTestWorld(3)
	for i := 0; i < 50; i++ {
		e := w.Factory.NewEnemy(defs.EnemySmall, 200, -50)
		if e.Flight == flight.None {
			t.Fatal("small enemy without a flight pattern")
		}
		if e.CanShoot() {
			t.Fatal("small enemies never shoot")
		}
	}
}

func TestTakeDamageNeverHeals(t *testing.T) {
	w := newTestWorld(4)
	e := w.Factory.NewEnemy(defs.EnemyMedium, 100, 100)
	e.TakeDamage(-50)
	if e.HP != e.MaxHP {
		t.Errorf("negative damage changed hp to %d", e.HP)
	}
	e.TakeDamage(20)
	if e.Alive() {
		t.Errorf("hp %d should be dead", e.HP)
	}
	if e.HP > e.MaxHP {
		t.Errorf("hp %d above max %d", e.HP, e.MaxHP)
	}
}

func TestFormation(t *testing.T) {
	t.Run("members follow the leader", func(t *testing.T) {
		w := newTestWorld(5)
		group := w.Factory.NewFormation(defs.EnemyMedium, flight.Line, 240, -120, 3, flight.Straight)
		if len(group) != 3 {
			t.Fatalf("got %d members", len(group))
		}
		for _, e := range group {
			w.AddEnemy(e)
		}
		leader := group[0]
		if !leader.IsLeader {
			t.Fatal("first member should lead")
		}
		for _, e := range w.Enemies {
			e.Update()
		}
		for _, m := range group[1:] {
			if m.LeaderID != leader.ID {
				t.Errorf("member leader id %d, want %d", m.LeaderID, leader.ID)
			}
			if m.X != leader.X+m.FormationOffset.X || m.Y != leader.Y+m.FormationOffset.Y {
				t.Errorf("member at (%v, %v), leader at (%v, %v) offset %+v", m.X, m.Y, leader.X, leader.Y, m.FormationOffset)
			}
		}
	})

	t.Run("members fall straight when the leader is gone", func(t *testing.T) {
		w := newTestWorld(6)
		group := w.Factory.NewFormation(defs.EnemyMedium, flight.Line, 240, -120, 3, flight.Straight)
		for _, e := range group[1:] {
			w.AddEnemy(e)
		}
		m := group[1]
		x, y := m.X, m.Y
		m.Update()
		if m.Y != y+m.Speed {
			t.Errorf("y = %v, want %v", m.Y, y+m.Speed)
		}
		if m.X != flight.ClampToScreen(x, m.W, w.Width) {
			t.Errorf("x moved from %v to %v", x, m.X)
		}
	})
}

func TestLargeEnemyHover(t *testing.T) {
	w := newTestWorld(7)
	e := w.SpawnEnemy(defs.EnemyLarge, 240, 100)
	for i := 0; i < 30 && !e.HoverMode; i++ {
		e.Update()
	}
	if !e.HoverMode {
		t.Fatal("large enemy never reached hover")
	}
	for i := 0; i < 2000; i++ {
		e.Update()
		if e.Y < hoverMinY || e.Y > hoverMaxY {
			t.Fatalf("hover y %v outside [%d, %d]", e.Y, hoverMinY, hoverMaxY)
		}
		if e.CanShoot() {
			if e.ShootTimer%LargeFireInterval != 0 {
				t.Fatalf("fired at timer %d", e.ShootTimer)
			}
			if shots := e.Shoot(); len(shots) != 1 {
				t.Fatalf("large volley has %d shots", len(shots))
			}
		}
	}
}

func TestBoss(t *testing.T) {
	t.Run("descends then takes position", func(t *testing.T) {
		w := newTestWorld(8)
		b := w.SpawnEnemy(defs.EnemyBoss, 240, 100)
		if !b.IsBoss() {
			t.Fatal("boss state missing")
		}
		for i := 0; i < 100 && !b.Boss.InPosition; i++ {
			if b.CanShoot() {
				t.Fatal("boss fired before reaching position")
			}
			b.Update()
		}
		if !b.Boss.InPosition {
			t.Fatal("boss never reached position")
		}
	})

	t.Run("summons three minions every 300 frames", func(t *testing.T) {
		w := newTestWorld(9)
		b := w.SpawnEnemy(defs.EnemyBoss, 240, BossTargetY)
		for i := 0; i < 301; i++ {
			b.Update()
		}
		if got := w.CountNonBossEnemies(); got != BossMinionCount {
			t.Errorf("minions = %d, want %d", got, BossMinionCount)
		}
	})

	t.Run("phase two below half health", func(t *testing.T) {
		w := newTestWorld(10)
		b := w.SpawnEnemy(defs.EnemyBoss, 240, BossTargetY)
		b.Update()
		speed := b.Speed
		b.TakeDamage(b.MaxHP/2 + 1)
		b.Update()
		if b.Boss.Phase != 2 {
			t.Fatalf("phase = %d", b.Boss.Phase)
		}
		if math.Abs(b.Speed-speed*1.2) > 1e-9 {
			t.Errorf("speed = %v, want %v", b.Speed, speed*1.2)
		}
	})

	t.Run("rotation angle stays normalized", func(t *testing.T) {
		w := newTestWorld(11)
		b := w.SpawnEnemy(defs.EnemyBoss, 240, BossTargetY)
		for i := 0; i < 3000; i++ {
			b.Update()
			if b.CanShoot() {
				w.SpawnEnemyBullets(b.Shoot())
			}
			w.EnemyBullets = nil
			a := b.Boss.RotationAngle
			if a < 0 || a >= 2*math.Pi {
				t.Fatalf("angle %v out of range", a)
			}
		}
	})
}

func TestEnemyBullet(t *testing.T) {
	t.Run("default size", func(t *testing.T) {
		b := NewEnemyBullet(pattern.Shot{X: 10, Y: 10, VY: 3})
		if b.W != EnemyBulletWidth || b.H != EnemyBulletHeight {
			t.Errorf("size %vx%v", b.W, b.H)
		}
	})

	t.Run("lifetime expires", func(t *testing.T) {
		b := NewEnemyBullet(pattern.Shot{X: 100, Y: 100, LifeTime: 2})
		b.Update()
		if b.Expired(480, 800) {
			t.Fatal("expired early")
		}
		b.Update()
		if !b.Expired(480, 800) {
			t.Fatal("should expire after its lifetime")
		}
	})

	t.Run("bounds include the margin", func(t *testing.T) {
		cases := []struct {
			x, y float64
			gone bool
		}{
			{-50, 100, false},
			{-50.5, 100, true},
			{530, 100, false},
			{531, 100, true},
			{100, 850, false},
			{100, 851, true},
		}
		for _, tc := range cases {
			b := NewEnemyBullet(pattern.Shot{X: tc.x, Y: tc.y})
			if got := b.Expired(480, 800); got != tc.gone {
				t.Errorf("(%v, %v): expired = %v, want %v", tc.x, tc.y, got, tc.gone)
			}
		}
	})
}

func TestPlayer(t *testing.T) {
	cfg := config.DefaultGameConfig().Player

	t.Run("upgrade cycle", func(t *testing.T) {
		p := NewPlayer(240, 700, 480, 800, cfg)
		want := []int{2, 4, 8, 10, 2}
		for i, lvl := range want {
			p.UpgradeBulletLevel()
			if p.BulletLevel != lvl {
				t.Fatalf("step %d: level %d, want %d", i, p.BulletLevel, lvl)
			}
		}
		if p.BulletTier != 2 {
			t.Errorf("tier = %d, want 2", p.BulletTier)
		}
		if p.Damage() != cfg.BaseDamage+2*cfg.TierDamage {
			t.Errorf("damage = %d", p.Damage())
		}
	})

	t.Run("barrels per level", func(t *testing.T) {
		for lvl, n := range map[int]int{1: 1, 2: 2, 4: 4, 8: 8, 10: 10} {
			if got := len(BarrelOffsets(lvl)); got != n {
				t.Errorf("level %d: %d barrels, want %d", lvl, got, n)
			}
		}
	})

	t.Run("invulnerability blocks damage", func(t *testing.T) {
		p := NewPlayer(240, 700, 480, 800, cfg)
		if r := p.TakeDamage(cfg.HitDamage); !r.Applied {
			t.Fatal("first hit should apply")
		}
		if r := p.TakeDamage(cfg.HitDamage); r.Applied {
			t.Fatal("second hit should be absorbed")
		}
		if p.Health != cfg.Health-cfg.HitDamage {
			t.Errorf("health = %d", p.Health)
		}
	})

	t.Run("losing a life resets health and barrels", func(t *testing.T) {
		p := NewPlayer(240, 700, 480, 800, cfg)
		p.UpgradeBulletLevel()
		p.UpgradeBulletLevel()
		p.WingmenLevel = 3
		var lost bool
		for i := 0; i < 4; i++ {
			p.Invulnerable = 0
			lost = p.TakeDamage(cfg.HitDamage).LifeLost
		}
		if !lost {
			t.Fatal("fourth hit should cost a life")
		}
		if p.Lives != cfg.Lives-1 || p.Health != cfg.Health {
			t.Errorf("lives %d health %d", p.Lives, p.Health)
		}
		if p.BulletLevel != 2 || p.WingmenLevel != 0 {
			t.Errorf("level %d wingmen %d", p.BulletLevel, p.WingmenLevel)
		}
	})

	t.Run("move is clamped to the screen", func(t *testing.T) {
		p := NewPlayer(240, 700, 480, 800, cfg)
		p.MoveTo(-100, 2000)
		if p.X != PlayerWidth/2 || p.Y != 800-PlayerHeight/2 {
			t.Errorf("at (%v, %v)", p.X, p.Y)
		}
	})
}

func TestWingmenForLevel(t *testing.T) {
	cases := []struct{ level, left, right int }{
		{0, 0, 0}, {1, 1, 0}, {2, 1, 1}, {3, 2, 1}, {4, 2, 2}, {5, 3, 2}, {6, 3, 3}, {9, 3, 3},
	}
	for _, tc := range cases {
		l, r := WingmenForLevel(tc.level)
		if l != tc.left || r != tc.right {
			t.Errorf("level %d: (%d, %d), want (%d, %d)", tc.level, l, r, tc.left, tc.right)
		}
	}
}

func TestMissileTracksNearest(t *testing.T) {
	w := newTestWorld(12)
	cfg := config.DefaultGameConfig().Missile
	near := w.Factory.NewEnemy(defs.EnemyMedium, 150, 300)
	far := w.Factory.NewEnemy(defs.EnemyMedium, 100, 100)
	m := NewTrackingMissile(100, 400, cfg)
	m.Update([]*Enemy{far, near})
	if m.Target() != near {
		t.Fatal("missile should lock the nearest enemy in range")
	}
	if sp := math.Hypot(m.VX, m.VY); sp > cfg.Speed+1e-9 {
		t.Errorf("speed %v above cap", sp)
	}
	if m.VX <= 0 {
		t.Errorf("missile should turn toward the target, vx = %v", m.VX)
	}
}

func TestPassengerEscapesAfterRepair(t *testing.T) {
	rng := utils.NewPRNGService(13)
	r := flight.Route{StartX: -100, StartY: 400, TargetX: 580, TargetY: 400}
	p := NewPassenger(r, 480, 800, rng)

	repairFrames := 0
	for i := 0; i < 10000 && !p.Escaped; i++ {
		x := p.X
		p.Update()
		if p.State == Repairing {
			if p.X != x && repairFrames > 0 {
				t.Fatal("passenger moved while repairing")
			}
			repairFrames++
		}
	}
	if !p.Escaped {
		t.Fatal("passenger never escaped")
	}
	if !p.Repair.Triggered || p.State != Repaired {
		t.Errorf("repair state %s triggered %v", p.State, p.Repair.Triggered)
	}
	want := int(math.Ceil(p.Repair.Duration * config.TPS))
	if repairFrames != want {
		t.Errorf("repair lasted %d frames, want %d", repairFrames, want)
	}

	progress := p.FlightProgress()
	p.Update()
	if p.FlightProgress() != progress {
		t.Error("escaped passenger kept flying")
	}
}

func TestPassengerDamage(t *testing.T) {
	rng := utils.NewPRNGService(14)
	p := NewPassenger(flight.PassengerRoute(480, 800, rng), 480, 800, rng)
	p.TakeDamage(60)
	p.TakeDamage(60)
	if !p.Destroyed() || p.Health != 0 {
		t.Errorf("health %d destroyed %v", p.Health, p.Destroyed())
	}
}

type itemSink struct{ items []defs.ItemKind }

func (s *itemSink) SpawnEnemy(defs.EnemyKind, float64, float64) *Enemy { return nil }
func (s *itemSink) SpawnEnemyBullets([]pattern.Shot)                  {}
func (s *itemSink) SpawnItem(_, _ float64, k defs.ItemKind)          { s.items = append(s.items, k) }

func TestCargoDropsOnce(t *testing.T) {
	rng := utils.NewPRNGService(15)
	sink := &itemSink{}
	avail := func() []defs.ItemKind { return []defs.ItemKind{defs.ItemDoubleFire} }
	c := NewCargoPlane(flight.CargoRoute(480, 800, rng), 480, 800, rng, sink, avail)
	for i := 0; i < 5000 && !c.Escaped; i++ {
		c.Update()
	}
	if !c.Escaped || !c.Dropped {
		t.Fatalf("escaped %v dropped %v", c.Escaped, c.Dropped)
	}
	if n := len(sink.items); n < 1 || n > 3 {
		t.Errorf("dropped %d items", n)
	}
}

func TestBomber(t *testing.T) {
	rng := utils.NewPRNGService(16)
	b := NewBomber(480, 800, rng)
	if len(b.Pending) != MaxPendingBombs {
		t.Fatalf("prefilled %d bombs", len(b.Pending))
	}
	total := 0
	for i := 0; i < 5000 && !b.Escaped; i++ {
		for _, d := range b.Update() {
			total++
			if d.Y < 80 || d.Y > 720 {
				t.Errorf("bomb at y %v outside 10–90 %%", d.Y)
			}
			if d.Radius < BombBaseRadius*0.8 || d.Radius > BombBaseRadius*1.5 {
				t.Errorf("radius %v", d.Radius)
			}
		}
		if len(b.Pending) > MaxPendingBombs {
			t.Fatalf("%d pending bombs", len(b.Pending))
		}
	}
	if !b.Escaped {
		t.Fatal("bomber never left the screen")
	}
	if total < MaxPendingBombs {
		t.Errorf("only %d detonations", total)
	}
}

func TestCountEnemyBulletsInBounds(t *testing.T) {
	w := newTestWorld(17)
	w.SpawnEnemyBullets([]pattern.Shot{{X: 10, Y: 10}, {X: -60, Y: 10}, {X: 100, Y: 900}})
	if got := w.CountEnemyBulletsInBounds(); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}
