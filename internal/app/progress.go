// internal/app/progress.go
package app

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// killTier — ступень веса убийств: первые Count убийств ступени дают
// по Points очков.
type killTier struct {
	Count  int
	Points float64
}

var killTiers = []killTier{
	{Count: 20, Points: 1.0},
	{Count: 10, Points: 0.67},
	{Count: 10, Points: 0.40},
	{Count: math.MaxInt, Points: 0.20},
}

const (
	// доля отрезка миссии, которую закрывают базовые убийства
	killShare = 0.75
	// сверх базы убийства дают не больше половины killShare
	extraShare = 0.5
)

// KillProgressRatio weighs kills by tier and divides by baseKills.
// Может быть больше 1.
func KillProgressRatio(kills, baseKills int) float64 {
	if kills <= 0 || baseKills <= 0 {
		return 0
	}
	points := 0.0
	remaining := kills
	for _, t := range killTiers {
		if remaining <= 0 {
			break
		}
		n := min(remaining, t.Count)
		points += float64(n) * t.Points
		remaining -= n
	}
	return points / float64(baseKills)
}

// ProgressInput is everything the progress bar depends on.
type ProgressInput struct {
	TotalMissions     int
	CompletedMissions int
	TaskKills         int
	BaseKills         int
	// доля пути активного пассажира или -1, если его нет
	PassengerFlight float64
}

// killContribution считает вклад убийств в отрезок миссии шириной w.
func killContribution(ratio, w float64) float64 {
	base := w * killShare
	if ratio <= 1 {
		return ratio * base
	}
	extra := ratio - 1
	diminishing := extra / (1 + extra*0.5)
	return base + diminishing*base*extraShare
}

// CalculateGameProgress — доля пройденной кампании от 0 до 1.
// Завершённые миссии дают целые отрезки; текущий отрезок заполняют
// убийства и полёт пассажира, который добирает остаток отрезка.
func CalculateGameProgress(in ProgressInput) float64 {
	if in.TotalMissions <= 0 {
		return 0
	}
	w := 1 / float64(in.TotalMissions)
	completed := float64(in.CompletedMissions) * w

	seg := math.Min(killContribution(KillProgressRatio(in.TaskKills, in.BaseKills), w), w)
	if in.PassengerFlight >= 0 {
		seg += utils.Clamp(in.PassengerFlight, 0, 1) * math.Max(0, w-seg)
	}
	return utils.Clamp(completed+seg, 0, 1)
}

// ProgressBar плавно догоняет реальный прогресс.
type ProgressBar struct {
	Real    float64
	Display float64
	Easing  float64
}

const progressEpsilon = 0.0001

// Update подтягивает отображаемое значение на долю Easing от разрыва.
func (b *ProgressBar) Update(real float64) {
	b.Real = real
	diff := b.Real - b.Display
	if math.Abs(diff) > progressEpsilon {
		b.Display += diff * b.Easing
		if math.Abs(b.Real-b.Display) < progressEpsilon {
			b.Display = b.Real
		}
	} else {
		b.Display = b.Real
	}
	b.Display = utils.Clamp(b.Display, 0, 1)
}

func (b *ProgressBar) Reset() {
	b.Real = 0
	b.Display = 0
}

// Difficulty is the enemy HP multiplier. It grows with log(kills).
func Difficulty(kills int) float64 {
	return 1 + math.Log(float64(kills)+1)*0.4
}

// LevelFor maps kills and rescues to a power level.
func LevelFor(kills, missions int) int {
	return (kills+missions*5)/20 + 1
}
