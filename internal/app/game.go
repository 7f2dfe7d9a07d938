// internal/app/game.go
package app

import (
	"log"

	"balloon-pop/internal/component"
	"balloon-pop/internal/config"
	"balloon-pop/internal/entity"
	"balloon-pop/internal/event"
	"balloon-pop/internal/system"
	"balloon-pop/internal/utils"
)

// AudioUnlocker is whatever has to be woken up by the first player gesture.
type AudioUnlocker interface {
	Unlock()
}

// Options configure a new session.
type Options struct {
	Balloons int
	Seed     int64
	Width    int
	Height   int
	Unlocker AudioUnlocker // nil means no audio
}

// Game holds the state of one play session: balloons, score and phase.
type Game struct {
	Pool            *entity.Pool
	Score           component.Score
	Viewport        *component.Viewport
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Lifecycle       *system.LifecycleSystem
	MovementSystem  *system.MovementSystem

	phase    component.GameState
	unlocker AudioUnlocker
	ticks    int
}

// NewGame creates a session with every balloon already placed below the
// screen. The session starts idle: nothing moves until Start is called.
func NewGame(opts Options) *Game {
	n := opts.Balloons
	if n <= 0 {
		n = config.NumBalloons
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = config.ScreenWidth, config.ScreenHeight
	}

	viewport := &component.Viewport{Width: float64(w), Height: float64(h)}
	rng := utils.NewPRNGService(opts.Seed)
	pool := entity.NewPool(n)
	lifecycle := system.NewLifecycleSystem(rng, viewport)

	g := &Game{
		Pool:            pool,
		Viewport:        viewport,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		Lifecycle:       lifecycle,
		MovementSystem:  system.NewMovementSystem(pool, lifecycle),
		phase:           component.IdleState,
		unlocker:        opts.Unlocker,
	}
	for _, b := range pool.Balloons {
		lifecycle.Reset(b)
	}
	return g
}

// Started reports whether the first gesture has happened.
func (g *Game) Started() bool {
	return g.phase == component.RunningState
}

// Phase returns the current session phase.
func (g *Game) Phase() component.GameState {
	return g.phase
}

// Ticks returns how many frames have been simulated.
func (g *Game) Ticks() int {
	return g.ticks
}

// Start handles the session start gesture: unlocks audio and switches the
// session to running. Calling it again does nothing.
func (g *Game) Start() {
	if g.Started() {
		return
	}
	if g.unlocker != nil {
		g.unlocker.Unlock()
	}
	g.phase = component.RunningState
	log.Printf("session started with %d balloons", g.Pool.Len())
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionStarted})
}

// HandleClick processes one pointer press. The first press only starts the
// session; later presses pop at most one balloon, newest first. It returns the
// popped balloon or nil.
func (g *Game) HandleClick(x, y float64) *component.Balloon {
	if !g.Started() {
		g.Start()
		return nil
	}

	b := system.FindHit(g.Pool, x, y)
	if b == nil {
		return nil
	}
	points := config.PointsFor(b.PaletteIndex)
	g.Score.Add(points)
	g.Lifecycle.Explode(b)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.BalloonPopped,
		Data: event.PopData{
			X:            b.X,
			Y:            b.Y,
			PaletteIndex: b.PaletteIndex,
			Points:       points,
			Score:        g.Score.Value,
		},
	})
	return b
}

// Update advances the simulation by one frame. Before the session starts it
// is a no-op.
func (g *Game) Update() {
	if !g.Started() {
		return
	}
	g.MovementSystem.Update()
	g.ticks++
}

// Resize changes the drawing surface. Score and balloons are kept; only new
// spawns use the new size.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.Viewport.Width, g.Viewport.Height = float64(width), float64(height)
}
