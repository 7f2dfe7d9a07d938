// internal/component/particle.go
package component

import "image/color"

// Particle is a fading fragment of a popped balloon.
type Particle struct {
	Position
	Velocity Velocity
	Color    color.NRGBA // inherited from the balloon at pop time
	Size     float64
	Lifespan float64
}

// Finished reports whether the particle has faded out.
func (p *Particle) Finished() bool {
	return p.Lifespan < 0
}

// Alpha is the draw alpha derived from the remaining lifespan.
func (p *Particle) Alpha() uint8 {
	switch {
	case p.Lifespan <= 0:
		return 0
	case p.Lifespan >= 255:
		return 255
	}
	return uint8(p.Lifespan)
}
