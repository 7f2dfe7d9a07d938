// internal/state/idle_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"balloon-pop/internal/config"
)

// Убеждаемся, что IdleState соответствует интерфейсу State
var _ State = (*IdleState)(nil)

// IdleState shows the start prompt. The session does not tick here.
type IdleState struct {
	sm    *StateMachine
	scene *Scene
}

func NewIdleState(sm *StateMachine, scene *Scene) *IdleState {
	return &IdleState{sm: sm, scene: scene}
}

func (s *IdleState) Enter() {
	log.Println("waiting for the first click")
}

func (s *IdleState) Update() {
	if len(justPressed()) == 0 {
		return
	}
	// Первый клик только разблокирует звук и запускает игру.
	s.scene.Game.Start()
	s.sm.SetState(NewPlayState(s.sm, s.scene))
}

func (s *IdleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	s.scene.Prompt.Draw(screen, w, h)
}

func (s *IdleState) Exit() {}
