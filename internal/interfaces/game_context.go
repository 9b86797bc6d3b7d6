// internal/interfaces/game_context.go
package interfaces

import (
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

// PhaseContext — то, что менеджер боевых фаз может делать со сценой.
// Реализуется игрой, чтобы система не зависела от app.
type PhaseContext interface {
	HasEnemyOfKind(kind defs.EnemyKind) bool
	CountNonBossEnemies() int
	SpawnLargeEnemy()
	SpawnSingleEnemy(kind defs.EnemyKind)
	SpawnBoss() *entity.Enemy
	SpawnPassenger() *entity.Passenger
	MissionMode() bool
}

// SpawnPolicy lets the phase gate regular spawns.
type SpawnPolicy interface {
	CanSpawnEnemies() bool
	AllowedEnemyTypes() []defs.EnemyKind
}

// ItemCollector применяет подобранный бонус.
type ItemCollector interface {
	CollectItem(kind defs.ItemKind)
}
