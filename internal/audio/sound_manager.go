package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

const (
	sampleRate = beep.SampleRate(44100)
	// один и тот же звук не чаще, чем раз в этот интервал
	minCueGap = 60 * time.Millisecond
)

var _ entity.AudioPort = (*SoundManager)(nil)

// Cue — синтезированный звуковой эффект.
type Cue struct {
	Wave     WaveType
	From, To float64 // частота в начале и в конце, Гц
	Duration time.Duration
	Gain     float64
}

// Звуки игры
var (
	CueBossShoot   = Cue{Wave: WaveSquare, From: 220, To: 110, Duration: 120 * time.Millisecond, Gain: 0.25}
	CueEnemyDeath  = Cue{Wave: WaveNoise, From: 0, To: 0, Duration: 200 * time.Millisecond, Gain: 0.3}
	CueMissile     = Cue{Wave: WaveSaw, From: 300, To: 900, Duration: 250 * time.Millisecond, Gain: 0.2}
	CueItemCollect = Cue{Wave: WaveSine, From: 660, To: 1320, Duration: 150 * time.Millisecond, Gain: 0.35}
	CueCargoComing = Cue{Wave: WaveSine, From: 330, To: 440, Duration: 400 * time.Millisecond, Gain: 0.3}
	CuePassenger   = Cue{Wave: WaveSine, From: 523, To: 784, Duration: 500 * time.Millisecond, Gain: 0.3}
	CueBomber      = Cue{Wave: WaveSaw, From: 90, To: 60, Duration: 800 * time.Millisecond, Gain: 0.3}
)

// SoundManager проигрывает звуки игры через общий микшер beep.
// До Initialize все Play* ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	muted       bool
	lastPlayed  map[*Cue]time.Time
	now         func() time.Time
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     volume,
		lastPlayed: make(map[*Cue]time.Time),
		now:        time.Now,
	}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(c *Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.now()
	if last, ok := sm.lastPlayed[c]; ok && now.Sub(last) < minCueGap {
		return
	}
	sm.lastPlayed[c] = now

	s := withVolume(NewTone(*c, sampleRate), sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlayBossShoot()   { sm.play(&CueBossShoot) }
func (sm *SoundManager) PlayEnemyDeath()  { sm.play(&CueEnemyDeath) }
func (sm *SoundManager) PlayMissile()     { sm.play(&CueMissile) }
func (sm *SoundManager) PlayItemCollect() { sm.play(&CueItemCollect) }
func (sm *SoundManager) PlayCargoComing() { sm.play(&CueCargoComing) }
func (sm *SoundManager) PlayPassenger()   { sm.play(&CuePassenger) }
func (sm *SoundManager) PlayBomber()      { sm.play(&CueBomber) }

// withVolume maps 0..1 onto beep's logarithmic volume.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
