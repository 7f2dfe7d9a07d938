// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"balloon-pop/internal/config"
)

// HUD рисует подпись слева сверху и счёт справа сверху.
type HUD struct {
	face   font.Face
	label  string
	color  color.Color
	margin int
}

func NewHUD(face font.Face, label string) *HUD {
	return &HUD{
		face:   face,
		label:  label,
		color:  config.TextColor,
		margin: config.HUDMargin,
	}
}

// Draw renders the overlay for a surface width wide.
func (h *HUD) Draw(screen *ebiten.Image, score int, width int) {
	top := h.margin + h.face.Metrics().Ascent.Ceil()

	text.Draw(screen, h.label, h.face, h.margin, top, h.color)

	scoreText := fmt.Sprintf(config.ScoreFormat, score)
	x := width - h.margin - font.MeasureString(h.face, scoreText).Ceil()
	text.Draw(screen, scoreText, h.face, x, top, h.color)
}
