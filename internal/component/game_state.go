package component

// GameState - фаза сессии
type GameState int

const (
	IdleState GameState = iota // ждём первый клик
	RunningState
)

func (s GameState) String() string {
	switch s {
	case IdleState:
		return "idle"
	case RunningState:
		return "running"
	}
	return "unknown"
}
