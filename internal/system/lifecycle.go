// internal/system/lifecycle.go
package system

import (
	"balloon-pop/internal/component"
	"balloon-pop/internal/config"
	"balloon-pop/internal/utils"
)

// LifecycleSystem владеет переходами шара: появление, взрыв.
type LifecycleSystem struct {
	rng      *utils.PRNGService
	viewport *component.Viewport
	palette  []component.BalloonColor
}

// NewLifecycleSystem creates the system. The viewport is read on every reset,
// so resizing changes where new balloons appear.
func NewLifecycleSystem(rng *utils.PRNGService, viewport *component.Viewport) *LifecycleSystem {
	palette := make([]component.BalloonColor, len(config.Palette))
	for i, entry := range config.Palette {
		palette[i] = component.BalloonColor{Index: i, RGB: utils.MustParseHexColor(entry.Hex)}
	}
	return &LifecycleSystem{rng: rng, viewport: viewport, palette: palette}
}

// Reset respawns the balloon below the visible area with fresh size, speed,
// color and alpha. Any particles are dropped.
func (s *LifecycleSystem) Reset(b *component.Balloon) {
	c := s.palette[s.rng.Intn(len(s.palette))]
	fill := c.RGB
	fill.A = uint8(s.rng.Range(config.BalloonMinAlpha, config.BalloonMaxAlpha))

	b.PaletteIndex = c.Index
	b.Color = fill
	b.Diameter = s.rng.Range(config.BalloonMinDiameter, config.BalloonMaxDiameter)
	b.X = s.rng.Range(0, s.viewport.Width)
	b.Y = s.rng.Range(s.viewport.Height, s.viewport.Height+config.SpawnDepth)
	b.Speed = s.rng.Range(config.BalloonMinSpeed, config.BalloonMaxSpeed)
	b.Exploded = false
	b.Particles = nil
}

// Explode marks the balloon popped and fills it with a particle burst at its
// current position. It is a pure state transition: sound is the caller's job.
// Popping an already exploded balloon does nothing and returns false.
func (s *LifecycleSystem) Explode(b *component.Balloon) bool {
	if b.Exploded {
		return false
	}
	b.Exploded = true
	b.Particles = SpawnParticles(s.rng, b.X, b.Y, b.Color, config.ParticlesPerPop)
	return true
}
