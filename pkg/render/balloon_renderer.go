// pkg/render/balloon_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"balloon-pop/internal/component"
	"balloon-pop/internal/config"
	"balloon-pop/internal/entity"
	"balloon-pop/internal/utils"
)

// BalloonRenderer рисует шары, звёзды на них и осколки.
type BalloonRenderer struct {
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewBalloonRenderer() *BalloonRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &BalloonRenderer{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 32),
		fillIs:  make([]uint16, 0, 48),
	}
}

// Draw renders every balloon of the pool in creation order.
func (r *BalloonRenderer) Draw(screen *ebiten.Image, pool *entity.Pool) {
	for _, b := range pool.Balloons {
		if b.Exploded {
			r.drawParticles(screen, b)
			continue
		}
		r.drawBalloon(screen, b)
	}
}

func (r *BalloonRenderer) drawBalloon(screen *ebiten.Image, b *component.Balloon) {
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius()), b.Color, true)

	outer := b.Diameter * config.StarOuterFactor
	inner := outer / config.StarInnerRatio
	offset := b.Radius() / 2
	sx := b.X + offset*math.Cos(math.Pi/4)
	sy := b.Y - offset*math.Sin(math.Pi/4)
	r.drawStar(screen, sx, sy, outer, inner, config.StarColor)
}

func (r *BalloonRenderer) drawParticles(screen *ebiten.Image, b *component.Balloon) {
	for _, p := range b.Particles {
		c := WithAlpha(p.Color, p.Alpha())
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), c, true)
	}
}

func (r *BalloonRenderer) drawStar(target *ebiten.Image, x, y, outer, inner float64, c color.NRGBA) {
	pts := utils.StarVertices(x, y, outer, inner, config.StarPoints)
	if len(pts) == 0 {
		return
	}

	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
