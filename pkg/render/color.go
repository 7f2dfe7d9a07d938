// pkg/render/color.go
package render

import "image/color"

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
