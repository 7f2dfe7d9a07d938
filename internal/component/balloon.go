// internal/component/balloon.go
package component

import "image/color"

// Balloon is a rising circle the player can pop. While Exploded is false the
// Particles slice is empty; once popped it holds the burst until every
// particle has expired.
type Balloon struct {
	Position
	Diameter     float64
	Speed        float64
	Color        color.NRGBA // fill color, alpha included
	PaletteIndex int
	Exploded     bool
	Particles    []*Particle
}

// Radius returns half the diameter.
func (b *Balloon) Radius() float64 {
	return b.Diameter / 2
}

// BalloonColor is a palette color resolved to RGB.
type BalloonColor struct {
	Index int
	RGB   color.NRGBA
}
