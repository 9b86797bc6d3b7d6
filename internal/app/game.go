// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/interfaces"
	"github.com/cheraljun/BoomBoomBoom/internal/system"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	playerStartOffset = 100
	missionKillsBonus = 5
)

var _ interfaces.PhaseContext = (*Game)(nil)

// Game holds the session state and runs one logic frame per Update.
type Game struct {
	// снимок настроек текущего забега, снимается в Start
	Config          *config.GameConfig
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Store           interfaces.Persistence

	Phases        *system.BattlePhaseManager
	Spawner       *system.EnemySpawnerSystem
	Collisions    *system.CollisionSystem
	Powerups      *system.PowerupSystem
	Cargo         *system.CargoSystem
	Notifications *system.NotificationSystem
	Pilot         *system.PlayerSystem
	Movement      *system.MovementSystem
	Projectiles   *system.ProjectileSystem
	Effects       *system.VisualEffectSystem

	State component.GameState

	KillCount         int
	TaskKills         int
	MissionCount      int
	CompletedMissions int
	TotalMissions     int
	Level             int
	GameTime          int
	Progress          ProgressBar

	DeathTimer          int
	DeathCause          *event.DeathCause
	PassengerDeathCause *event.DeathCause

	// сколько кадров упало с паникой
	FrameErrors int

	audio      entity.AudioPort
	settings   *config.GameConfig
	killsSaved bool
}

// NewGame creates a session and starts the first run. store и audio
// могут быть nil.
func NewGame(cfg *config.GameConfig, store interfaces.Persistence, audio entity.AudioPort) *Game {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	g := &Game{
		Rng:      utils.NewPRNGService(cfg.Seed),
		Store:    store,
		audio:    audio,
		settings: cfg,
	}
	g.Start()
	return g
}

// Start сбрасывает сессию: новый мир, новые системы, новые подписки.
// Купленные бомбы переходят в новую сессию. Настройки копируются, так что
// правки общей конфигурации (меню, перечитанный YAML) ждут следующего
// забега.
func (g *Game) Start() {
	bombs := 0
	if g.Powerups != nil {
		bombs = g.Powerups.Bombs
	}

	snapshot := *g.settings
	cfg := &snapshot
	g.Config = cfg
	d := event.NewDispatcher()
	g.EventDispatcher = d
	g.World = entity.NewWorld(config.ScreenWidth, config.ScreenHeight, g.Rng, g.audio, g.difficulty)
	w := g.World
	w.Player = entity.NewPlayer(w.Width/2, w.Height-playerStartOffset, w.Width, w.Height, cfg.Player)

	g.Notifications = system.NewNotificationSystem(d, cfg.MissionMode)
	g.Pilot = system.NewPlayerSystem(w)
	g.Movement = system.NewMovementSystem(w)
	g.Projectiles = system.NewProjectileSystem(w)
	g.Effects = system.NewVisualEffectSystem(w, g.Rng)
	g.Powerups = system.NewPowerupSystem(w, cfg.Missile, g.Rng, d)
	g.Powerups.Bombs = bombs
	g.Spawner = system.NewEnemySpawnerSystem(w, cfg.Spawn, g.Rng, d)
	g.Cargo = system.NewCargoSystem(w, cfg.Cargo, g.Rng, d, g.Powerups.AvailableItems)
	g.Collisions = system.NewCollisionSystem(w, d, g.Rng, g.Powerups, cfg.Player.HitDamage)
	g.Phases = system.NewBattlePhaseManager(cfg.Phase, g, g.Rng, d)

	listener := &GameEventListener{game: g}
	d.Subscribe(event.EnemyKilled, listener)
	d.Subscribe(event.PassengerEscaped, listener)
	d.Subscribe(event.PassengerDestroyed, listener)
	d.Subscribe(event.PlayerDied, listener)

	g.State = component.StatePlaying
	g.KillCount = 0
	g.TaskKills = 0
	g.MissionCount = 0
	g.CompletedMissions = 0
	g.Level = 1
	g.GameTime = 0
	g.DeathTimer = 0
	g.DeathCause = nil
	g.PassengerDeathCause = nil
	g.killsSaved = false
	g.Progress = ProgressBar{Easing: cfg.Progress.Easing}

	g.TotalMissions = 0
	if cfg.MissionMode {
		p := cfg.Progress
		g.TotalMissions = p.MinMissions + g.Rng.Intn(p.MaxMissions-p.MinMissions+1)
	}
	log.Printf("[Game] new session: missionMode=%v missions=%d", cfg.MissionMode, g.TotalMissions)
}

func (g *Game) difficulty() float64 { return Difficulty(g.KillCount) }

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.Credited {
			g.KillCount++
			if g.Config.MissionMode {
				g.TaskKills++
			}
		}
	case event.PassengerEscaped:
		g.onPassengerEscaped()
	case event.PassengerDestroyed:
		if g.State != component.StatePlaying {
			return
		}
		if cause, ok := e.Data.(event.DeathCause); ok {
			g.PassengerDeathCause = &cause
		}
		g.startDeathSequence(component.StatePassengerDying)
	case event.PlayerDied:
		if cause, ok := e.Data.(event.DeathCause); ok {
			g.DeathCause = &cause
		}
		g.startDeathSequence(component.StateDying)
	}
}

func (g *Game) onPassengerEscaped() {
	g.MissionCount++
	if g.Store != nil {
		g.Store.AddRescue()
	}
	if !g.Config.MissionMode {
		return
	}
	g.CompletedMissions++
	g.TaskKills = 0
	log.Printf("[Game] mission %d/%d complete", g.CompletedMissions, g.TotalMissions)
	g.EventDispatcher.Dispatch(event.Event{Type: event.MissionCompleted, Data: g.CompletedMissions})
}

func (g *Game) startDeathSequence(s component.GameState) {
	g.State = s
	g.DeathTimer = config.DeathSequenceFrames
	g.World.ScreenShake.Reset()
}

// Update runs one logic frame. Паника внутри кадра логируется и
// считается, следующий кадр идёт как обычно.
func (g *Game) Update() {
	defer func() {
		if r := recover(); r != nil {
			g.FrameErrors++
			log.Printf("[Game] frame %d failed: %v", g.GameTime, r)
		}
	}()

	switch g.State {
	case component.StateDying:
		g.DeathTimer--
		if g.DeathTimer <= 0 {
			g.State = component.StateGameOver
			g.saveKills()
		}
		return
	case component.StatePassengerDying:
		g.DeathTimer--
		if g.DeathTimer <= 0 {
			g.State = component.StatePassengerFailed
			g.Movement.RemoveDestroyedPassengers()
			g.Phases.OnPassengerDestroyed()
			g.saveKills()
		}
		return
	case component.StatePaused:
		g.Notifications.Update()
		return
	case component.StatePlaying:
	default:
		return
	}
	g.step()
}

// step runs one frame in a fixed order.
func (g *Game) step() {
	g.GameTime++
	g.Effects.UpdateShake()

	g.Pilot.Update()
	g.Spawner.Update(g.Phases)
	g.Cargo.Spawn()
	g.Movement.Update()
	g.Cargo.Update()
	g.Projectiles.UpdateBullets()
	g.Powerups.UpdateMissileMode()
	g.Projectiles.UpdateMissiles()
	g.Effects.Update()
	g.Notifications.Update()
	g.Powerups.UpdateBombers()
	g.Phases.Update()
	g.Collisions.Update()
	g.checkLevelUp()
	g.checkMissionComplete()
	g.Progress.Update(g.CalculateProgress())
}

func (g *Game) checkLevelUp() {
	level := LevelFor(g.KillCount, g.MissionCount)
	if level <= g.Level {
		return
	}
	g.Level = level
	g.EventDispatcher.Notify(fmt.Sprintf("Power %d", level))
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: level})
}

func (g *Game) checkMissionComplete() {
	if !g.Config.MissionMode || g.State != component.StatePlaying {
		return
	}
	if g.CompletedMissions >= g.TotalMissions {
		g.State = component.StateMissionComplete
		log.Printf("[Game] all %d missions complete, kills=%d", g.TotalMissions, g.KillCount)
		g.saveKills()
	}
}

// CalculateProgress returns real campaign progress in mission mode.
func (g *Game) CalculateProgress() float64 {
	if !g.Config.MissionMode {
		return 0
	}
	flightProgress := -1.0
	if ps := g.World.ActivePassenger(); ps != nil {
		flightProgress = ps.FlightProgress()
	}
	return CalculateGameProgress(ProgressInput{
		TotalMissions:     g.TotalMissions,
		CompletedMissions: g.CompletedMissions,
		TaskKills:         g.TaskKills,
		BaseKills:         g.Config.Progress.BaseKills,
		PassengerFlight:   flightProgress,
	})
}

// saveKills записывает убийства сессии один раз.
func (g *Game) saveKills() {
	if g.killsSaved || g.Store == nil {
		return
	}
	g.Store.AddKills(g.KillCount)
	g.killsSaved = true
}

// --- ввод ---

// MovePlayer ставит игрока под палец или курсор.
func (g *Game) MovePlayer(x, y float64) {
	if g.State == component.StatePlaying && g.World.Player != nil {
		g.World.Player.MoveTo(x, y)
	}
}

// NudgePlayer сдвигает игрока на (dx, dy) шагов клавиатуры.
func (g *Game) NudgePlayer(dx, dy float64) {
	if p := g.World.Player; p != nil {
		g.MovePlayer(p.X+dx*entity.PlayerSpeed, p.Y+dy*entity.PlayerSpeed)
	}
}

func (g *Game) UseBomb() bool {
	if g.State != component.StatePlaying {
		return false
	}
	return g.Powerups.ClearScreen()
}

func (g *Game) TogglePause() {
	switch g.State {
	case component.StatePlaying:
		g.State = component.StatePaused
	case component.StatePaused:
		g.State = component.StatePlaying
	}
}

func (g *Game) IsPaused() bool { return g.State == component.StatePaused }

// Quit обрывает сессию, сохраняя её убийства.
func (g *Game) Quit() {
	g.saveKills()
	g.State = component.StateGameOver
}

// PurchaseBombs покупает бомбы за накопленные убийства.
func (g *Game) PurchaseBombs(count, cost int) bool {
	if g.Store == nil || !g.Store.SpendKills(cost) {
		g.EventDispatcher.Notify("Not enough kills!")
		return false
	}
	g.Powerups.Bombs += count
	g.EventDispatcher.Notify(fmt.Sprintf("Bought %d bombs, %d in stock", count, g.Powerups.Bombs))
	return true
}

// --- interfaces.PhaseContext ---

func (g *Game) HasEnemyOfKind(kind defs.EnemyKind) bool { return g.World.HasEnemyOfKind(kind) }

func (g *Game) CountNonBossEnemies() int { return g.World.CountNonBossEnemies() }

func (g *Game) SpawnLargeEnemy() { g.Spawner.SpawnLargeEnemy() }

func (g *Game) SpawnSingleEnemy(kind defs.EnemyKind) { g.Spawner.SpawnSingleEnemy(kind) }

func (g *Game) SpawnBoss() *entity.Enemy { return g.Spawner.SpawnBoss() }

func (g *Game) SpawnPassenger() *entity.Passenger {
	if !g.Config.MissionMode {
		return nil
	}
	w := g.World
	r := flight.PassengerRoute(w.Width, w.Height, g.Rng)
	ps := entity.NewPassenger(r, w.Width, w.Height, g.Rng)
	w.Passengers = append(w.Passengers, ps)
	w.Audio.PlayPassenger()
	return ps
}

func (g *Game) MissionMode() bool { return g.Config.MissionMode }
