// internal/utils/geometry.go
package utils

import "math"

// Point is a 2D vertex in screen space.
type Point struct {
	X, Y float64
}

// StarVertices returns the outline of an npoints star centered at (x, y).
// Vertices alternate inner radius, outer radius, starting at angle 0 with the
// outer tips offset by half a step.
func StarVertices(x, y, outer, inner float64, npoints int) []Point {
	if npoints <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(npoints)
	half := step / 2
	pts := make([]Point, 0, npoints*2)
	for i := 0; i < npoints; i++ {
		a := step * float64(i)
		pts = append(pts,
			Point{X: x + math.Cos(a)*inner, Y: y + math.Sin(a)*inner},
			Point{X: x + math.Cos(a+half)*outer, Y: y + math.Sin(a+half)*outer},
		)
	}
	return pts
}
