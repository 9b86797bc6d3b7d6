package component

// EffectKind — вид визуального эффекта
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectDestroyNormal
	EffectDestroyLarge
	EffectDestroyBoss
)

// Fragment is one piece of a destroy animation.
type Fragment struct {
	OffsetX, OffsetY float64
	Scale            float64
	Rotation         float64
}

// Effect — короткоживущий визуальный эффект. Логика только считает жизнь,
// рисует его рендерер.
type Effect struct {
	Kind      EffectKind
	X, Y      float64
	Radius    float64
	Life      int
	MaxLife   int
	Fragments []Fragment
}

const (
	explosionLife     = 15
	explosionGrowth   = 4
	destroyLife       = 7
	destroyBossLife   = 60
	fragmentMaxOffset = 20
)

// NewExplosion makes an expanding blast ring.
func NewExplosion(x, y float64) Effect {
	return Effect{Kind: EffectExplosion, X: x, Y: y, Life: explosionLife, MaxLife: explosionLife}
}

// NewDestroyAnimation scatters fragments. rand must return values in [0, 1).
// Количество фрагментов: обычная 1, крупная 2, босс 5.
func NewDestroyAnimation(x, y float64, kind EffectKind, rand func() float64) Effect {
	life, count := destroyLife, 1
	switch kind {
	case EffectDestroyLarge:
		count = 2
	case EffectDestroyBoss:
		life, count = destroyBossLife, 5
	default:
		kind = EffectDestroyNormal
	}
	e := Effect{Kind: kind, X: x, Y: y, Life: life, MaxLife: life}
	for i := 0; i < count; i++ {
		e.Fragments = append(e.Fragments, Fragment{
			OffsetX:  (rand() - 0.5) * 2 * fragmentMaxOffset,
			OffsetY:  (rand() - 0.5) * 2 * fragmentMaxOffset,
			Scale:    1 + rand()*0.5,
			Rotation: rand() * 6.283185307179586,
		})
	}
	return e
}

// Update продвигает эффект на кадр.
func (e *Effect) Update() {
	e.Life--
	if e.Kind == EffectExplosion {
		e.Radius += explosionGrowth
	}
}

func (e *Effect) Alive() bool { return e.Life > 0 }

// Alpha fades from 1 at spawn to 0 at the end of life.
func (e *Effect) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	a := float64(e.Life) / float64(e.MaxLife)
	if a < 0 {
		return 0
	}
	return a
}

// Shake — тряска экрана.
type Shake struct {
	Intensity        float64
	Duration         int
	Timer            int
	OffsetX, OffsetY float64
}

// Start запускает тряску. Более слабая тряска не перебивает текущую.
func (s *Shake) Start(intensity float64, duration int) {
	if s.Active() && intensity < s.Intensity {
		return
	}
	s.Intensity = intensity
	s.Duration = duration
	s.Timer = duration
}

func (s *Shake) Active() bool { return s.Timer > 0 }

// Update затухает тряску линейно по времени.
func (s *Shake) Update(rand func() float64) {
	if s.Timer <= 0 {
		s.OffsetX, s.OffsetY = 0, 0
		return
	}
	s.Timer--
	k := s.Intensity * float64(s.Timer) / float64(s.Duration)
	s.OffsetX = (rand() - 0.5) * 2 * k
	s.OffsetY = (rand() - 0.5) * 2 * k
}

func (s *Shake) Reset() { *s = Shake{} }
