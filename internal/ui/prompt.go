// internal/ui/prompt.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"balloon-pop/internal/config"
)

// Prompt is the centered call to action shown until the first click.
type Prompt struct {
	face    font.Face
	message string
	color   color.Color
}

func NewPrompt(face font.Face, message string) *Prompt {
	return &Prompt{face: face, message: message, color: config.PromptColor}
}

func (p *Prompt) Draw(screen *ebiten.Image, width, height int) {
	m := p.face.Metrics()
	x := (width - font.MeasureString(p.face, p.message).Ceil()) / 2
	y := height/2 + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	text.Draw(screen, p.message, p.face, x, y, p.color)
}
