// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/audio"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/storage"
	"github.com/cheraljun/BoomBoomBoom/internal/termview"
)

func main() {
	configPath := flag.String("config", "config/game.yaml", "path to the game config")
	enemiesPath := flag.String("enemies", "config/enemies.yaml", "path to the enemy stat table")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	endless := flag.Bool("endless", false, "endless mode")
	sound := flag.Bool("sound", false, "play sound effects")
	logPath := flag.String("log", "", "log file, empty to discard")
	flag.Parse()

	// лог в терминал сломает картинку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

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

	var game *app.Game
	if *sound {
		sm := audio.NewSoundManager(0.5)
		if err := sm.Initialize(); err != nil {
			log.Printf("[Audio] %v", err)
		}
		defer sm.Cleanup()
		game = app.NewGame(cfg, store, sm)
	} else {
		game = app.NewGame(cfg, store, nil)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := termview.NewRunner(screen, game).Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("[Terminal] %v", err)
	}
	game.Quit()
	stats := store.Snapshot()
	log.Printf("[Terminal] total kills %d, best %d, rescues %d", stats.TotalKills, stats.HighestKills, stats.TotalRescues)
}
