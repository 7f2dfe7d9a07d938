// internal/component/score.go
package component

// Score - счёт игрока за сессию. Не сбрасывается.
type Score struct {
	Value int
}

// Add applies a score delta.
func (s *Score) Add(delta int) {
	s.Value += delta
}
