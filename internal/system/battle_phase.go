// internal/system/battle_phase.go
package system

import (
	"fmt"
	"log"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/interfaces"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// Phase — боевая фаза сессии
type Phase string

const (
	PhaseWarmup       Phase = "warmup"
	PhaseIntense      Phase = "intense"
	PhaseRest         Phase = "rest"
	PhasePassenger    Phase = "passenger"
	PhasePassengerEnd Phase = "passenger_end"
	PhaseBoss         Phase = "boss"
)

// Причины завершения сопровождения
const (
	EndEscaped   = "escaped"
	EndDestroyed = "destroyed"
)

// PhaseInfo describes the current phase for the HUD.
type PhaseInfo struct {
	Phase    Phase
	Elapsed  int
	Duration string
	Progress string
}

// BattlePhaseManager ведёт сессию по кругу
// warmup → intense → boss → passenger → passenger_end → rest → intense …
type BattlePhaseManager struct {
	Phase Phase
	Timer int

	TargetCount  int
	LargeSpawned int
	RestFrames   int
	EndReason    string

	bossWarning bool
	bossFight   bool
	passenger   *entity.Passenger

	cfg        config.PhaseConfig
	ctx        interfaces.PhaseContext
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewBattlePhaseManager(cfg config.PhaseConfig, ctx interfaces.PhaseContext, rng *utils.PRNGService, dispatcher *event.Dispatcher) *BattlePhaseManager {
	m := &BattlePhaseManager{
		Phase:      PhaseWarmup,
		cfg:        cfg,
		ctx:        ctx,
		rng:        rng,
		dispatcher: dispatcher,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.BossDefeated, m)
	}
	return m
}

func (m *BattlePhaseManager) OnEvent(e event.Event) {
	if e.Type == event.BossDefeated {
		m.OnBossDefeated()
	}
}

// Update продвигает фазу на один кадр.
func (m *BattlePhaseManager) Update() {
	m.Timer++
	switch m.Phase {
	case PhaseWarmup:
		if m.Timer >= m.cfg.WarmupFrames {
			m.startIntense()
		}
	case PhaseIntense:
		m.updateIntense()
	case PhaseRest:
		if m.Timer >= m.RestFrames {
			m.startIntense()
		}
	case PhasePassenger:
		m.updatePassenger()
	case PhasePassengerEnd:
		m.startRest()
	case PhaseBoss:
		m.updateBoss()
	}
}

func (m *BattlePhaseManager) enter(p Phase, reason string) {
	from := m.Phase
	m.Phase = p
	m.Timer = 0
	log.Printf("[BattlePhase] %s -> %s %s", from, p, reason)
	m.dispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: string(from), To: string(p), Reason: reason},
	})
}

func (m *BattlePhaseManager) notify(text string) {
	m.dispatcher.Notify(text)
}

// notifyMission пишет сообщение только в режиме миссий.
func (m *BattlePhaseManager) notifyMission(text string) {
	if m.ctx.MissionMode() {
		m.notify(text)
	}
}

func (m *BattlePhaseManager) startIntense() {
	m.enter(PhaseIntense, "")
	m.TargetCount = m.cfg.MinLarge + m.rng.Intn(m.cfg.MaxLarge-m.cfg.MinLarge+1)
	m.LargeSpawned = 0
	m.notifyMission("Monsters incoming!")
}

// SetTargetCount переопределяет число крупных врагов текущей фазы intense.
func (m *BattlePhaseManager) SetTargetCount(n int) {
	m.TargetCount = n
}

func (m *BattlePhaseManager) updateIntense() {
	spawned, target := m.LargeSpawned, m.TargetCount
	if spawned < target && m.rng.Chance(m.cfg.LargeSpawnChance) {
		m.ctx.SpawnLargeEnemy()
		m.LargeSpawned++
	}
	// решение принимается по счётчику до спавна в этом кадре
	if spawned >= target && !m.ctx.HasEnemyOfKind(defs.EnemyLarge) {
		m.startBoss()
	}
}

func (m *BattlePhaseManager) startRest() {
	m.enter(PhaseRest, m.EndReason)
	span := m.cfg.RestMaxFrames - m.cfg.RestMinFrames
	m.RestFrames = m.cfg.RestMinFrames
	if span > 0 {
		m.RestFrames += m.rng.Intn(span + 1)
	}
	m.notify("Take a breather")
}

func (m *BattlePhaseManager) startBoss() {
	m.enter(PhaseBoss, "large enemies cleared")
	m.bossWarning = true
	m.bossFight = false
	m.notifyMission("BOSS incoming")
	m.notifyMission("Clearing the battlefield...")
}

func (m *BattlePhaseManager) updateBoss() {
	if m.bossWarning {
		if m.ctx.CountNonBossEnemies() == 0 {
			m.spawnBoss()
		}
		return
	}
	if m.bossFight && !m.ctx.HasEnemyOfKind(defs.EnemyBoss) {
		m.OnBossDefeated()
	}
}

func (m *BattlePhaseManager) spawnBoss() {
	if boss := m.ctx.SpawnBoss(); boss != nil {
		log.Printf("[BattlePhase] boss %d spawned hp=%d", boss.ID, boss.HP)
	}
	m.bossWarning = false
	m.bossFight = true
	m.notify("BOSS has appeared")
	m.notify("Get ready!")
	m.dispatcher.Dispatch(event.Event{Type: event.BossSpawned})
}

// BossFightActive reports a boss on screen and not yet defeated.
func (m *BattlePhaseManager) BossFightActive() bool {
	return m.Phase == PhaseBoss && m.bossFight
}

// OnBossDefeated завершает бой с боссом. Повторные вызовы ничего не
// делают: бой считается законченным один раз.
func (m *BattlePhaseManager) OnBossDefeated() {
	if !m.BossFightActive() {
		return
	}
	m.bossFight = false
	if m.ctx.MissionMode() {
		m.notify("Boss defeated!")
		m.startPassenger()
		return
	}
	m.EndReason = ""
	m.startRest()
}

func (m *BattlePhaseManager) startPassenger() {
	m.enter(PhasePassenger, "boss defeated")
	if m.passenger != nil {
		return
	}
	m.passenger = m.ctx.SpawnPassenger()
	if m.passenger == nil {
		return
	}
	m.notifyMission("Airliner entering the danger zone")
	m.dispatcher.Dispatch(event.Event{Type: event.PassengerSpawned})
}

func (m *BattlePhaseManager) updatePassenger() {
	if p := m.passenger; p != nil {
		switch {
		case p.Escaped:
			m.notify("Airliner is out of danger")
			m.dispatcher.Dispatch(event.Event{Type: event.PassengerEscaped})
			m.endPassenger(EndEscaped)
			return
		case p.Destroyed():
			m.OnPassengerDestroyed()
			return
		}
	}
	if m.rng.Chance(m.cfg.InterferenceRate) {
		kind := defs.EnemyMedium
		if m.rng.Chance(0.7) {
			kind = defs.EnemySmall
		}
		m.ctx.SpawnSingleEnemy(kind)
	}
}

// OnPassengerDestroyed закрывает сопровождение после гибели пассажира.
func (m *BattlePhaseManager) OnPassengerDestroyed() {
	if m.Phase != PhasePassenger {
		return
	}
	m.notify("Airliner crashed")
	m.endPassenger(EndDestroyed)
}

func (m *BattlePhaseManager) endPassenger(reason string) {
	m.EndReason = reason
	m.enter(PhasePassengerEnd, reason)
	m.passenger = nil
}

// Passenger returns the escorted plane of this mission, or nil.
func (m *BattlePhaseManager) Passenger() *entity.Passenger { return m.passenger }

func (m *BattlePhaseManager) CanSpawnEnemies() bool {
	switch m.Phase {
	case PhaseWarmup, PhaseIntense, PhasePassenger:
		return true
	}
	return false
}

// AllowedEnemyTypes lists what the spawner may send in this phase.
func (m *BattlePhaseManager) AllowedEnemyTypes() []defs.EnemyKind {
	switch m.Phase {
	case PhaseWarmup, PhasePassenger:
		return []defs.EnemyKind{defs.EnemySmall, defs.EnemyMedium}
	case PhaseIntense:
		return []defs.EnemyKind{defs.EnemySmall, defs.EnemyMedium, defs.EnemyLarge}
	}
	return nil
}

// Info собирает подписи для HUD.
func (m *BattlePhaseManager) Info() PhaseInfo {
	elapsed := m.Timer / config.TPS
	info := PhaseInfo{Phase: m.Phase, Elapsed: elapsed}
	switch m.Phase {
	case PhaseWarmup:
		total := m.cfg.WarmupFrames / config.TPS
		info.Duration = fmt.Sprintf("%ds", total)
		info.Progress = fmt.Sprintf("%d/%ds", elapsed, total)
	case PhaseRest:
		total := (m.RestFrames + config.TPS/2) / config.TPS
		info.Duration = fmt.Sprintf("%ds", total)
		info.Progress = fmt.Sprintf("%d/%ds", elapsed, total)
	case PhaseIntense:
		info.Duration = "dynamic"
		info.Progress = fmt.Sprintf("%d/%d large enemies", m.LargeSpawned, m.TargetCount)
	case PhaseBoss:
		if m.bossWarning {
			info.Duration = "clearing"
			info.Progress = "preparing boss fight"
		} else {
			info.Duration = "boss fight"
			info.Progress = "boss fight in progress"
		}
	case PhasePassenger:
		if p := m.passenger; p != nil {
			est := p.EstimatedFlightTime()
			info.Duration = fmt.Sprintf("~%ds", est)
			info.Progress = fmt.Sprintf("in flight %d/%ds", p.FlightTimer/config.TPS, est)
		} else {
			info.Duration = "waiting"
			info.Progress = "waiting"
		}
	case PhasePassengerEnd:
		info.Duration = "escort over"
		if m.EndReason == EndEscaped {
			info.Progress = "airliner escaped"
		} else {
			info.Progress = "escort failed"
		}
	}
	return info
}
