// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyLibrary is a map to hold all enemy definitions, keyed by their kind.
var EnemyLibrary = buildEnemyLibrary(DefaultEnemyDefinitions())

func buildEnemyLibrary(list []EnemyDefinition) map[EnemyKind]EnemyDefinition {
	lib := make(map[EnemyKind]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.ID] = def
	}
	return lib
}

// Enemy возвращает характеристики типа. Для неизвестного типа
// используются характеристики small.
func Enemy(kind EnemyKind) EnemyDefinition {
	if def, ok := EnemyLibrary[kind]; ok {
		return def
	}
	return EnemyLibrary[EnemySmall]
}

// ResetEnemyDefinitions восстанавливает встроенную таблицу.
func ResetEnemyDefinitions() {
	EnemyLibrary = buildEnemyLibrary(DefaultEnemyDefinitions())
}

// ParseEnemyDefinitions разбирает YAML-список и проверяет значения.
func ParseEnemyDefinitions(data []byte) ([]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		switch def.ID {
		case EnemySmall, EnemyMedium, EnemyLarge, EnemyBoss:
		default:
			return nil, fmt.Errorf("unknown enemy kind %q", def.ID)
		}
		if def.HP <= 0 || def.Width <= 0 || def.Height <= 0 || def.Speed < 0 {
			return nil, fmt.Errorf("enemy %q has invalid stats", def.ID)
		}
	}
	return enemyDefs, nil
}

// LoadEnemyDefinitions reads the enemy configuration file and overrides
// the matching entries of EnemyLibrary. Kinds absent from the file keep
// their built-in stats.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	enemyDefs, err := ParseEnemyDefinitions(file)
	if err != nil {
		return err
	}

	lib := buildEnemyLibrary(DefaultEnemyDefinitions())
	for _, def := range enemyDefs {
		lib[def.ID] = def
	}
	EnemyLibrary = lib

	log.Printf("[Defs] Loaded %d enemy definitions from %s", len(enemyDefs), path)
	return nil
}
