package pattern

import "github.com/cheraljun/BoomBoomBoom/internal/defs"

// Shot описывает снаряд, который нужно создать. Генераторы ничего не
// знают о коллекциях сессии и только возвращают список выстрелов.
type Shot struct {
	X, Y     float64
	VX, VY   float64
	Size     float64 // 0 означает размер по умолчанию
	LifeTime int     // 0 означает без ограничения
	Owner    defs.EnemyKind
}
