// internal/system/hit.go
package system

import (
	"balloon-pop/internal/component"
	"balloon-pop/internal/entity"
	"balloon-pop/internal/utils"
)

// HitTest reports whether (x, y) lies strictly inside a balloon that has not
// popped yet. A point exactly on the rim is a miss.
func HitTest(b *component.Balloon, x, y float64) bool {
	return !b.Exploded && utils.Dist(x, y, b.X, b.Y) < b.Radius()
}

// FindHit scans the pool newest first and returns the first balloon under the
// pointer, or nil.
func FindHit(pool *entity.Pool, x, y float64) *component.Balloon {
	var hit *component.Balloon
	pool.Reverse(func(_ int, b *component.Balloon) bool {
		if HitTest(b, x, y) {
			hit = b
			return false
		}
		return true
	})
	return hit
}
