package entity

import (
	"testing"

	"balloon-pop/internal/component"
)

func TestReverseVisitsNewestFirst(t *testing.T) {
	p := NewPool(4)
	var order []int
	p.Reverse(func(i int, _ *component.Balloon) bool {
		order = append(order, i)
		return true
	})
	want := []int{3, 2, 1, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order: got=%v want=%v", order, want)
		}
	}
}

func TestReverseStops(t *testing.T) {
	p := NewPool(5)
	visited := 0
	p.Reverse(func(i int, _ *component.Balloon) bool {
		visited++
		return i != 3
	})
	if visited != 2 {
		t.Fatalf("visited: got=%d want=2", visited)
	}
}

func TestParticleCount(t *testing.T) {
	p := NewPool(2)
	p.Balloons[1].Particles = []*component.Particle{{}, {}, {}}
	if got := p.ParticleCount(); got != 3 {
		t.Fatalf("got=%d want=3", got)
	}
}
