// internal/system/movement.go
package system

import (
	"balloon-pop/internal/entity"
)

// MovementSystem двигает шары вверх и обновляет осколки лопнувших.
type MovementSystem struct {
	pool      *entity.Pool
	lifecycle *LifecycleSystem
}

func NewMovementSystem(pool *entity.Pool, lifecycle *LifecycleSystem) *MovementSystem {
	return &MovementSystem{pool: pool, lifecycle: lifecycle}
}

// Update advances every balloon by one tick.
func (s *MovementSystem) Update() {
	for _, b := range s.pool.Balloons {
		if b.Exploded {
			if SweepParticles(b) == 0 {
				s.lifecycle.Reset(b)
			}
			continue
		}

		b.Y -= b.Speed
		// Margin is the balloon's own radius.
		if b.Y < -b.Radius() {
			s.lifecycle.Reset(b)
		}
	}
}
