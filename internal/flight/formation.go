package flight

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// FormationType — построение группы
type FormationType string

const (
	Line       FormationType = "line"
	VFormation FormationType = "vformation"
	Diamond    FormationType = "diamond"
)

const (
	formationSpacing  = 45
	placementAttempts = 10
)

// Offset is a member's displacement from the leader.
type Offset struct {
	X, Y float64
}

// FormationOffsets returns offsets for count members. The first is the leader.
func FormationOffsets(t FormationType, count int) []Offset {
	if count <= 0 {
		return nil
	}
	const s = formationSpacing
	switch t {
	case Line:
		out := make([]Offset, count)
		for i := range out {
			out[i] = Offset{X: (float64(i) - float64(count-1)/2) * s}
		}
		return out
	case VFormation:
		out := make([]Offset, count)
		for i := range out {
			side := -1.0
			if i%2 == 0 {
				side = 1
			}
			dist := float64((i + 1) / 2)
			out[i] = Offset{X: side * dist * s * 0.8, Y: dist * s * 0.6}
		}
		return out
	case Diamond:
		all := []Offset{
			{0, 0},
			{-s, s * 0.8},
			{s, s * 0.8},
			{-s * 0.7, -s * 0.5},
			{s * 0.7, -s * 0.5},
		}
		if count > len(all) {
			count = len(all)
		}
		return all[:count]
	}
	return []Offset{{0, 0}}
}

// SafeDistance задаёт минимальную дистанцию центра формации до других врагов.
func SafeDistance(kind defs.EnemyKind) float64 {
	switch kind {
	case defs.EnemySmall:
		return 100
	case defs.EnemyMedium:
		return 120
	}
	return 150
}

func overlaps(x, y, safe float64, occupied []component.Position) bool {
	for _, p := range occupied {
		if math.Hypot(p.X-x, p.Y-y) < safe {
			return true
		}
	}
	return false
}

// PlaceFormation ищет центр формации, не задевающий занятые позиции.
// До 10 попыток в зоне 10–90 % ширины; после неудачи центр экрана выше
// верхней кромки. Итог прижимается к зоне и не опускается ниже y = -60.
func PlaceFormation(centerX, centerY float64, kind defs.EnemyKind, occupied []component.Position, screenW float64, rng *utils.PRNGService) (float64, float64) {
	zoneStart, zoneEnd := screenW*0.1, screenW*0.9
	safe := SafeDistance(kind)

	x, y := centerX, centerY
	attempts := 0
	for overlaps(x, y, safe, occupied) && attempts < placementAttempts {
		x = rng.Range(zoneStart, zoneEnd)
		y = centerY - rng.Float64()*80
		attempts++
	}
	if attempts >= placementAttempts {
		x = screenW / 2
		y = -100 - rng.Float64()*100
	}

	x = math.Max(zoneStart+80, math.Min(zoneEnd-80, x))
	y = math.Min(-60, y)
	return x, y
}
