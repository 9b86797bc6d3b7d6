// internal/event/types.go
package event

const (
	EnemyKilled        EventType = "EnemyKilled"        // Враг уничтожен, Data: EnemyKilledData
	BossSpawned        EventType = "BossSpawned"        // Босс появился
	BossDefeated       EventType = "BossDefeated"       // Босс уничтожен
	PhaseChanged       EventType = "PhaseChanged"       // Data: PhaseChangedData
	PassengerSpawned   EventType = "PassengerSpawned"   // Пассажирский самолёт вылетел
	PassengerEscaped   EventType = "PassengerEscaped"   // Пассажир долетел
	PassengerDestroyed EventType = "PassengerDestroyed" // Пассажир сбит
	PlayerHit          EventType = "PlayerHit"          // Data: PlayerHitData
	PlayerDied         EventType = "PlayerDied"         // Жизни кончились
	ItemCollected      EventType = "ItemCollected"      // Data: defs.ItemKind
	MissionCompleted   EventType = "MissionCompleted"   // Data: int, номер миссии
	LevelUp            EventType = "LevelUp"            // Data: int, новый уровень
	Notification       EventType = "Notification"       // Data: string
)

// EnemyKilledData says who died and whether the kill counts.
type EnemyKilledData struct {
	Kind     string
	X, Y     float64
	Credited bool
}

// PhaseChangedData — переход между боевыми фазами.
type PhaseChangedData struct {
	From, To string
	Reason   string
}

type PlayerHitData struct {
	Damage   int
	LifeLost bool
}

// DeathCause — что убило игрока или пассажира. Экран смерти
// подсвечивает эту точку.
type DeathCause struct {
	Kind string // "bullet", "collision"
	By   string // тип виновника: small, boss, passenger, player, ...
	X, Y float64
}
