// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TPS          = 60

	NumBalloons = 30

	BalloonMinDiameter = 50.0
	BalloonMaxDiameter = 200.0
	BalloonMinAlpha    = 50.0
	BalloonMaxAlpha    = 200.0
	BalloonMinSpeed    = 0.5
	BalloonMaxSpeed    = 3.0
	SpawnDepth         = 200.0 // насколько ниже экрана может появиться шар

	ParticlesPerPop      = 15
	ParticleLifespan     = 255.0
	ParticleDecay        = 5.0
	ParticleMinSize      = 2.0
	ParticleMaxSize      = 5.0
	ParticleMinSpeed     = 1.0
	ParticleMaxSpeed     = 4.0
	ParticleGravity      = 0.05
	ParticleDrag         = 0.95
	StarPoints           = 5
	StarOuterFactor      = 1.0 / 6.0 // доля диаметра шара
	StarInnerRatio       = 2.5
	StarAlpha            = 150
	HUDMargin            = 20
	HUDFontSize          = 32
	PromptFontSize       = 24
	AudioSampleRate      = 48000
	PopVolume            = 0.6
	SynthPopDurationMs   = 180
	SynthPopToneStartHz  = 520.0
	SynthPopToneEndHz    = 140.0
	SynthPopNoiseDecay   = 38.0
	SynthPopToneDecay    = 16.0
	DebugOverlayInterval = 30
)

const (
	DefaultLabel  = "414730084"
	DefaultPrompt = "Click anywhere to start (enables sound)"
	ScoreFormat   = "Score: %d"
	DefaultSound  = "assets/pop.mp3"
	WindowTitle   = "Balloon Pop"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{0xeb, 0x64, 0x24, 255}
	PromptColor     = color.RGBA{255, 255, 255, 255}
	StarColor       = color.NRGBA{255, 255, 255, StarAlpha}
)

// PaletteEntry is one of the fixed balloon colors and the points it is worth.
type PaletteEntry struct {
	Hex    string
	Points int
}

// Palette - фиксированная таблица цветов и очков, порядок важен.
var Palette = []PaletteEntry{
	{Hex: "#ff595e", Points: 1},
	{Hex: "#ffca3a", Points: 2},
	{Hex: "#8ac926", Points: -1},
	{Hex: "#1982c4", Points: 1},
	{Hex: "#6a4c93", Points: -1},
}

// PointsFor returns the score delta of the palette entry at index i.
// Indices outside the palette are worth nothing.
func PointsFor(i int) int {
	if i < 0 || i >= len(Palette) {
		return 0
	}
	return Palette[i].Points
}
