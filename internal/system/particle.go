// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"balloon-pop/internal/component"
	"balloon-pop/internal/config"
	"balloon-pop/internal/utils"
)

// SpawnParticles creates n particles at (x, y) flying out in random
// directions with the given base color.
func SpawnParticles(rng *utils.PRNGService, x, y float64, base color.NRGBA, n int) []*component.Particle {
	particles := make([]*component.Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Angle()
		speed := rng.Range(config.ParticleMinSpeed, config.ParticleMaxSpeed)
		particles = append(particles, &component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Color:    base,
			Size:     rng.Range(config.ParticleMinSize, config.ParticleMaxSize),
			Lifespan: config.ParticleLifespan,
		})
	}
	return particles
}

// UpdateParticle applies one explicit Euler step: horizontal drag, gravity,
// integration and fade.
func UpdateParticle(p *component.Particle) {
	p.Velocity.X *= config.ParticleDrag
	p.Velocity.Y += config.ParticleGravity
	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
	p.Lifespan -= config.ParticleDecay
}

// SweepParticles updates every particle of b, drops the finished ones and
// returns how many are left.
func SweepParticles(b *component.Balloon) int {
	live := b.Particles[:0]
	for _, p := range b.Particles {
		UpdateParticle(p)
		if !p.Finished() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(b.Particles); i++ {
		b.Particles[i] = nil
	}
	b.Particles = live
	return len(live)
}
