package component

// GameState — состояние игровой сессии
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateDying
	StatePassengerDying
	StateGameOver
	StateMissionComplete
	StatePassengerFailed
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDying:
		return "dying"
	case StatePassengerDying:
		return "passenger_dying"
	case StateGameOver:
		return "gameover"
	case StateMissionComplete:
		return "mission_complete"
	case StatePassengerFailed:
		return "passenger_failed"
	}
	return "unknown"
}

// Terminal reports a finished session that needs a restart.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateMissionComplete || s == StatePassengerFailed
}
