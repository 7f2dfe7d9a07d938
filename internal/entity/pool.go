// internal/entity/pool.go
package entity

import "balloon-pop/internal/component"

// Pool owns every balloon of a session, kept in creation order.
type Pool struct {
	Balloons []*component.Balloon
}

// NewPool creates a pool of n zero balloons. Callers reset them before use.
func NewPool(n int) *Pool {
	p := &Pool{Balloons: make([]*component.Balloon, 0, n)}
	for i := 0; i < n; i++ {
		p.Balloons = append(p.Balloons, &component.Balloon{})
	}
	return p
}

// Len returns the number of balloons.
func (p *Pool) Len() int {
	return len(p.Balloons)
}

// Reverse calls fn for each balloon from the most recently created to the
// first, stopping when fn returns false.
func (p *Pool) Reverse(fn func(i int, b *component.Balloon) bool) {
	for i := len(p.Balloons) - 1; i >= 0; i-- {
		if !fn(i, p.Balloons[i]) {
			return
		}
	}
}

// ParticleCount returns the number of live particles across the pool.
func (p *Pool) ParticleCount() int {
	n := 0
	for _, b := range p.Balloons {
		n += len(b.Particles)
	}
	return n
}
