// internal/component/viewport.go
package component

// Viewport is the current drawing surface size in logical pixels.
type Viewport struct {
	Width, Height float64
}
