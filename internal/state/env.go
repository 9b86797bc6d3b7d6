package state

import (
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/internal/app"
	"github.com/cheraljun/BoomBoomBoom/internal/audio"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/storage"
	"github.com/cheraljun/BoomBoomBoom/internal/ui"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

const (
	// покупка бомб в меню
	BombPackSize = 4
	BombPackCost = 350
)

// Env holds what every state shares.
type Env struct {
	Config   *config.GameConfig
	Store    *storage.DataManager
	Audio    *audio.SoundManager
	Face     font.Face
	Game     *app.Game
	Renderer *render.WorldRenderer
	HUD      *ui.HUD
}

// NewEnv создаёт игру и всё, что нужно для её отрисовки. audio может быть nil.
func NewEnv(cfg *config.GameConfig, store *storage.DataManager, sound *audio.SoundManager, face font.Face) *Env {
	env := &Env{
		Config:   cfg,
		Store:    store,
		Audio:    sound,
		Face:     face,
		Renderer: render.NewWorldRenderer(config.ScreenWidth, config.ScreenHeight),
		HUD:      ui.NewHUD(config.ScreenWidth, config.ScreenHeight, face),
	}
	if sound != nil {
		env.Game = app.NewGame(cfg, store, sound)
	} else {
		env.Game = app.NewGame(cfg, store, nil)
	}
	return env
}
