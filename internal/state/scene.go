// internal/state/scene.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"balloon-pop/internal/app"
	"balloon-pop/internal/audio"
	"balloon-pop/internal/ui"
	"balloon-pop/pkg/render"
)

// Scene bundles what both states draw and drive.
type Scene struct {
	Game     *app.Game
	Renderer *render.BalloonRenderer
	HUD      *ui.HUD
	Prompt   *ui.Prompt
	Sink     *audio.PopSink
}

// justPressed returns every mouse click and new touch of this tick.
func justPressed() []image.Point {
	var pts []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}
