package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerConfig — параметры игрока
type PlayerConfig struct {
	Lives              int     `yaml:"lives"`
	Health             int     `yaml:"health"`
	FireInterval       int     `yaml:"fireInterval"`
	BulletSpeed        float64 `yaml:"bulletSpeed"`
	BaseDamage         int     `yaml:"baseDamage"`
	TierDamage         int     `yaml:"tierDamage"`
	InvulnerableFrames int     `yaml:"invulnerableFrames"`
	HitDamage          int     `yaml:"hitDamage"`
}

// Спавн обычных врагов
type SpawnConfig struct {
	BaseRate           float64 `yaml:"baseRate"`
	ThrottleFrames     int     `yaml:"throttleFrames"`
	BossCooldownFrames int     `yaml:"bossCooldownFrames"`
	FormationChance    float64 `yaml:"formationChance"`
	SmallWeight        int     `yaml:"smallWeight"`
	MediumWeight       int     `yaml:"mediumWeight"`
}

// PhaseConfig — параметры боевых фаз
type PhaseConfig struct {
	WarmupFrames     int     `yaml:"warmupFrames"`
	MinLarge         int     `yaml:"minLarge"`
	MaxLarge         int     `yaml:"maxLarge"`
	LargeSpawnChance float64 `yaml:"largeSpawnChance"`
	RestMinFrames    int     `yaml:"restMinFrames"`
	RestMaxFrames    int     `yaml:"restMaxFrames"`
	InterferenceRate float64 `yaml:"interferenceRate"`
}

// Грузовые самолёты с бонусами
type CargoConfig struct {
	SpawnRate float64 `yaml:"spawnRate"`
	MaxActive int     `yaml:"maxActive"`
}

// MissileConfig tunes homing missiles.
type MissileConfig struct {
	Speed             float64 `yaml:"speed"`
	Damage            int     `yaml:"damage"`
	ExplosionRadius   float64 `yaml:"explosionRadius"`
	Life              int     `yaml:"life"`
	TurnSpeed         float64 `yaml:"turnSpeed"`
	LockRange         float64 `yaml:"lockRange"`
	MinIntervalFrames int     `yaml:"minIntervalFrames"`
	MaxIntervalFrames int     `yaml:"maxIntervalFrames"`
}

// Миссии и полоса прогресса
type ProgressConfig struct {
	MinMissions int     `yaml:"minMissions"`
	MaxMissions int     `yaml:"maxMissions"`
	BaseKills   int     `yaml:"baseKills"`
	Easing      float64 `yaml:"easing"`
}

// GameConfig — настраиваемые параметры игры, читаются из YAML.
type GameConfig struct {
	MissionMode bool           `yaml:"missionMode"`
	Seed        int64          `yaml:"seed"`
	Player      PlayerConfig   `yaml:"player"`
	Spawn       SpawnConfig    `yaml:"spawn"`
	Phase       PhaseConfig    `yaml:"phase"`
	Cargo       CargoConfig    `yaml:"cargo"`
	Missile     MissileConfig  `yaml:"missile"`
	Progress    ProgressConfig `yaml:"progress"`
}

// DefaultGameConfig возвращает конфигурацию по умолчанию.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		MissionMode: true,
		Player: PlayerConfig{
			Lives:              3,
			Health:             100,
			FireInterval:       7,
			BulletSpeed:        12,
			BaseDamage:         8,
			TierDamage:         2,
			InvulnerableFrames: 60,
			HitDamage:          25,
		},
		Spawn: SpawnConfig{
			BaseRate:           0.012,
			ThrottleFrames:     30,
			BossCooldownFrames: 180,
			FormationChance:    0.6,
			SmallWeight:        70,
			MediumWeight:       30,
		},
		Phase: PhaseConfig{
			WarmupFrames:     300,
			MinLarge:         2,
			MaxLarge:         12,
			LargeSpawnChance: 0.02,
			RestMinFrames:    60,
			RestMaxFrames:    180,
			InterferenceRate: 0.012,
		},
		Cargo: CargoConfig{
			SpawnRate: 0.003,
			MaxActive: 1,
		},
		Missile: MissileConfig{
			Speed:             10,
			Damage:            50,
			ExplosionRadius:   60,
			Life:              300,
			TurnSpeed:         0.15,
			LockRange:         200,
			MinIntervalFrames: 1,
			MaxIntervalFrames: 60,
		},
		Progress: ProgressConfig{
			MinMissions: 1,
			MaxMissions: 5,
			BaseKills:   20,
			Easing:      0.15,
		},
	}
}

// Validate проверяет значения, которые иначе ломают игру.
func (c *GameConfig) Validate() error {
	if c.Player.Lives <= 0 || c.Player.Health <= 0 {
		return fmt.Errorf("player lives and health must be positive")
	}
	if c.Player.FireInterval <= 0 {
		return fmt.Errorf("player fireInterval must be positive, got %d", c.Player.FireInterval)
	}
	if c.Phase.MinLarge <= 0 || c.Phase.MaxLarge < c.Phase.MinLarge {
		return fmt.Errorf("phase large range [%d, %d] is invalid", c.Phase.MinLarge, c.Phase.MaxLarge)
	}
	if c.Phase.RestMaxFrames < c.Phase.RestMinFrames {
		return fmt.Errorf("phase rest range [%d, %d] is invalid", c.Phase.RestMinFrames, c.Phase.RestMaxFrames)
	}
	if c.Progress.MinMissions <= 0 || c.Progress.MaxMissions < c.Progress.MinMissions {
		return fmt.Errorf("mission range [%d, %d] is invalid", c.Progress.MinMissions, c.Progress.MaxMissions)
	}
	if c.Progress.BaseKills <= 0 {
		return fmt.Errorf("progress baseKills must be positive")
	}
	if c.Missile.MinIntervalFrames <= 0 || c.Missile.MaxIntervalFrames < c.Missile.MinIntervalFrames {
		return fmt.Errorf("missile interval range [%d, %d] is invalid", c.Missile.MinIntervalFrames, c.Missile.MaxIntervalFrames)
	}
	return nil
}

// LoadGameConfig читает YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func LoadGameConfig(path string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveGameConfig записывает конфигурацию в YAML.
func SaveGameConfig(path string, cfg *GameConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
