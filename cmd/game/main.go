// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cheraljun/BoomBoomBoom/internal/audio"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/state"
	"github.com/cheraljun/BoomBoomBoom/internal/storage"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

// AppGame adapts the state machine to ebiten.Game. Logic steps in frames
// at a fixed TPS, so there is no delta time.
type AppGame struct {
	stateMachine *state.StateMachine
	watcher      *config.Watcher
	configPath   string
	enemiesPath  string
	cfg          *config.GameConfig
}

func (a *AppGame) Update() error {
	a.reloadConfig()
	a.stateMachine.Update()
	return nil
}

// reloadConfig подхватывает изменённый YAML. Game копирует настройки в
// Start, так что правки действуют со следующего забега. Таблица врагов
// действует на следующих появившихся врагов.
func (a *AppGame) reloadConfig() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Poll() {
		if filepath.Clean(name) == filepath.Clean(a.enemiesPath) {
			if err := defs.LoadEnemyDefinitions(a.enemiesPath); err != nil {
				log.Printf("[Defs] reload skipped: %v", err)
			}
			continue
		}
		if filepath.Clean(name) != filepath.Clean(a.configPath) {
			continue
		}
		next, err := config.LoadGameConfig(a.configPath)
		if err != nil {
			log.Printf("[Config] reload skipped: %v", err)
			continue
		}
		next.MissionMode = a.cfg.MissionMode
		*a.cfg = *next
		log.Printf("[Config] %s reloaded, applies to the next run", name)
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "config/game.yaml", "path to the game config")
	enemiesPath := flag.String("enemies", "config/enemies.yaml", "path to the enemy stat table")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	endless := flag.Bool("endless", false, "start in endless mode")
	mute := flag.Bool("mute", false, "disable sound")
	fontPath := flag.String("font", "", "TTF font for the HUD")
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
		log.Printf("[Defs] %v, using built-in enemy stats", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *endless {
		cfg.MissionMode = false
	}

	store, err := storage.Open(storage.AppName)
	if err != nil {
		log.Printf("[Storage] %v, stats kept in memory", err)
	}

	sound := audio.NewSoundManager(0.5)
	if err := sound.Initialize(); err != nil {
		log.Printf("[Audio] %v, playing without sound", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)

	face, err := render.LoadFace(*fontPath, 14)
	if err != nil {
		log.Printf("[Font] %v, using built-in face", err)
	}

	watcher, err := config.NewWatcher(filepath.Dir(*configPath))
	if err != nil {
		log.Printf("[Config] hot reload disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	env := state.NewEnv(cfg, store, sound, face)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, env))

	app := &AppGame{
		stateMachine: sm,
		watcher:      watcher,
		configPath:   *configPath,
		enemiesPath:  *enemiesPath,
		cfg:          cfg,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
