// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"balloon-pop/internal/app"
	"balloon-pop/internal/assets"
	popaudio "balloon-pop/internal/audio"
	"balloon-pop/internal/config"
	"balloon-pop/internal/event"
	"balloon-pop/internal/state"
	"balloon-pop/internal/ui"
	"balloon-pop/pkg/render"
)

var (
	configFlag   = flag.String("config", "balloons.toml", "path to an optional TOML settings file")
	seedFlag     = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	mutedFlag    = flag.Bool("muted", false, "start with the pop sound muted")
	soundFlag    = flag.String("sound", "", "pop sound asset (.mp3 or .wav)")
	fontFlag     = flag.String("font", "", "TTF/OTF font for the HUD")
	balloonsFlag = flag.Int("balloons", 0, "number of balloons")
)

type AppGame struct {
	stateMachine *state.StateMachine
	game         *app.Game
}

func (a *AppGame) Update() error {
	if runtime.GOOS != "js" && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window: the canvas is always the size of the viewport.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.game.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func loadSettings() config.Settings {
	settings, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			settings.Seed = *seedFlag
		case "muted":
			settings.Muted = *mutedFlag
		case "sound":
			settings.Sound = *soundFlag
		case "font":
			settings.Font = *fontFlag
		case "balloons":
			settings.Balloons = *balloonsFlag
		}
	})
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}
	return settings
}

func main() {
	flag.Parse()
	settings := loadSettings()

	// Контекст звука может быть только один на процесс.
	audioCtx := audio.NewContext(config.AudioSampleRate)
	sounds := assets.NewSoundManager(audioCtx)
	defer sounds.Cleanup()
	sink := popaudio.NewPopSink(sounds.LoadPop(settings.Sound), settings.Muted)

	faces, err := assets.LoadFaces(settings.Font, config.HUDFontSize, config.PromptFontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(app.Options{
		Balloons: settings.Balloons,
		Seed:     settings.Seed,
		Width:    settings.WindowWidth,
		Height:   settings.WindowHeight,
		Unlocker: sink,
	})
	game.EventDispatcher.Subscribe(event.BalloonPopped, sink)

	scene := &state.Scene{
		Game:     game,
		Renderer: render.NewBalloonRenderer(),
		HUD:      ui.NewHUD(faces.HUD, settings.Label),
		Prompt:   ui.NewPrompt(faces.Prompt, settings.Prompt),
		Sink:     sink,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewIdleState(sm, scene))

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, game: game}); err != nil {
		log.Fatal(err)
	}
}
