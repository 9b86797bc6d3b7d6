// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     EnemyKind `yaml:"id"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	HP     int       `yaml:"hp"`
	Speed  float64   `yaml:"speed"`
	Score  int       `yaml:"score"`
}

// DefaultEnemyDefinitions is the built-in stat table.
func DefaultEnemyDefinitions() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: EnemySmall, Width: 30, Height: 30, HP: 1, Speed: 6, Score: 10},
		{ID: EnemyMedium, Width: 50, Height: 50, HP: 12, Speed: 2, Score: 30},
		{ID: EnemyLarge, Width: 80, Height: 80, HP: 1000, Speed: 1, Score: 80},
		{ID: EnemyBoss, Width: 160, Height: 140, HP: 50000, Speed: 0.6, Score: 1500},
	}
}
