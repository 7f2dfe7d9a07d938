// internal/event/types.go
package event

const (
	SessionStarted EventType = "SessionStarted" // первый клик, звук разблокирован
	BalloonPopped  EventType = "BalloonPopped"  // шар лопнул от клика
)

// PopData is the payload of BalloonPopped.
type PopData struct {
	X, Y         float64
	PaletteIndex int
	Points       int
	Score        int // score after the pop
}
