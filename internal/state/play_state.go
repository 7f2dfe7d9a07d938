// internal/state/play_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"balloon-pop/internal/config"
)

var _ State = (*PlayState)(nil)

// PlayState runs the game: clicks pop balloons, every tick moves them.
type PlayState struct {
	sm        *StateMachine
	scene     *Scene
	showDebug bool
	debugText string
}

func NewPlayState(sm *StateMachine, scene *Scene) *PlayState {
	return &PlayState{sm: sm, scene: scene}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.scene.Sink != nil {
		muted := !s.scene.Sink.Muted()
		s.scene.Sink.SetMuted(muted)
		log.Printf("sound muted: %v", muted)
	}

	for _, p := range justPressed() {
		s.scene.Game.HandleClick(float64(p.X), float64(p.Y))
	}
	s.scene.Game.Update()

	if s.showDebug && s.scene.Game.Ticks()%config.DebugOverlayInterval == 0 {
		s.debugText = fmt.Sprintf("TPS: %0.1f FPS: %0.1f particles: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), s.scene.Game.Pool.ParticleCount())
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.scene.Renderer.Draw(screen, s.scene.Game.Pool)
	s.scene.HUD.Draw(screen, s.scene.Game.Score.Value, screen.Bounds().Dx())

	if s.showDebug {
		ebitenutil.DebugPrintAt(screen, s.debugText, config.HUDMargin, screen.Bounds().Dy()-config.HUDMargin*2)
	}
}

func (s *PlayState) Exit() {}
