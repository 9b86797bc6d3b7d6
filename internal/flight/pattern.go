// Package flight — траектории обычных врагов, построение формаций
// и маршруты самолётов, пересекающих экран.
package flight

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// Pattern — траектория одиночного врага
type Pattern string

const (
	None            Pattern = ""
	Straight        Pattern = "straight"
	SideArc         Pattern = "side_arc"
	HorizontalSweep Pattern = "horizontal_sweep"
	LShape          Pattern = "lshape"
)

// Длительность горизонтальной фазы, в кадрах
const (
	sideArcFrames = 60
	sweepFrames   = 100
	lShapeFrames  = 80
	arcAmplitude  = 2
)

// SmallPatterns are the paths picked at random.
var SmallPatterns = []Pattern{Straight, SideArc, HorizontalSweep, LShape}

// Directions of the horizontal legs, -1 or 1.
type Directions struct {
	Arc   float64
	Sweep float64
	L     float64
}

// RandomPattern выбирает случайную траекторию.
func RandomPattern(rng *utils.PRNGService) Pattern {
	p, _ := utils.Pick(rng, SmallPatterns)
	return p
}

// RandomDirections выбирает направления для одиночного врага.
func RandomDirections(rng *utils.PRNGService) Directions {
	return Directions{Arc: rng.Sign(), Sweep: rng.Sign(), L: rng.Sign()}
}

// FormationDirections: для формации дуга и проход идут от ближнего
// края к центру; направление L случайное.
func FormationDirections(centerX, screenW float64, rng *utils.PRNGService) Directions {
	side := -1.0
	if centerX < screenW/2 {
		side = 1
	}
	return Directions{Arc: side, Sweep: side, L: rng.Sign()}
}

func dir(d float64) float64 {
	if d == 0 {
		return 1
	}
	return d
}

// NextPosition returns the position after frame (frames start at 1).
// Во время горизонтальной фазы враг не снижается.
func NextPosition(p Pattern, x, y, speed float64, frame int, d Directions) (float64, float64) {
	switch p {
	case SideArc:
		if frame < sideArcFrames {
			progress := float64(frame) / sideArcFrames
			return x + math.Sin(progress*2*math.Pi)*arcAmplitude*dir(d.Arc), y
		}
	case HorizontalSweep:
		if frame < sweepFrames {
			return x + dir(d.Sweep)*speed, y
		}
	case LShape:
		if frame < lShapeFrames {
			return x + dir(d.L)*speed, y
		}
	}
	return x, y + speed
}

// ClampMargin is the edge inset for the centre of an enemy of width w.
func ClampMargin(w float64) float64 {
	return math.Max(w/2+20, 40)
}

// ClampToScreen удерживает x в пределах экрана с отступом.
func ClampToScreen(x, w, screenW float64) float64 {
	m := ClampMargin(w)
	return utils.Clamp(x, m, screenW-m)
}
