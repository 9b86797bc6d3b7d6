// internal/defs/types.go
package defs

// EnemyKind — тип врага
type EnemyKind string

const (
	EnemySmall  EnemyKind = "small"
	EnemyMedium EnemyKind = "medium"
	EnemyLarge  EnemyKind = "large"
	EnemyBoss   EnemyKind = "boss"
)

// ItemKind — тип бонуса, который сбрасывает грузовой самолёт
type ItemKind string

const (
	ItemDoubleFire ItemKind = "double_fire"
	ItemBomb       ItemKind = "bomb"
	ItemMissile    ItemKind = "missile"
	ItemLife       ItemKind = "life"
	ItemWingman    ItemKind = "wingman"
)

// Все бонусы в порядке приоритета выдачи.
var AllItemKinds = []ItemKind{ItemLife, ItemMissile, ItemBomb, ItemWingman, ItemDoubleFire}
