// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры. Update получает номер логического кадра: логика
// шагает кадрами при фиксированных 60 TPS.
type State interface {
	Enter()
	Update(frame int)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и счётчик кадров.
type StateMachine struct {
	current State
	frame   int
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает текущий экран и открывает новый. Смена из Update
// текущего экрана допустима: новый получит управление со следующего кадра.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State { return sm.current }

// Frame returns how many times Update ran.
func (sm *StateMachine) Frame() int { return sm.frame }

func (sm *StateMachine) Update() {
	sm.frame++
	if sm.current != nil {
		sm.current.Update(sm.frame)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
