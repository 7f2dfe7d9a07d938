package app

import (
	"testing"

	"balloon-pop/internal/component"
	"balloon-pop/internal/event"
)

type fakeUnlocker struct{ calls int }

func (f *fakeUnlocker) Unlock() { f.calls++ }

func newTestGame(n int) (*Game, *fakeUnlocker) {
	u := &fakeUnlocker{}
	return NewGame(Options{Balloons: n, Seed: 11, Width: 800, Height: 600, Unlocker: u}), u
}

// placeBalloon parks the i-th balloon at (x, y) with the given palette entry.
func placeBalloon(g *Game, i int, x, y, diameter float64, palette int) *component.Balloon {
	b := g.Pool.Balloons[i]
	b.X, b.Y, b.Diameter, b.PaletteIndex = x, y, diameter, palette
	return b
}

func TestIdleSessionDoesNotMove(t *testing.T) {
	g, _ := newTestGame(5)
	before := make([]float64, g.Pool.Len())
	for i, b := range g.Pool.Balloons {
		before[i] = b.Y
	}
	for i := 0; i < 10; i++ {
		g.Update()
	}
	for i, b := range g.Pool.Balloons {
		if b.Y != before[i] {
			t.Fatalf("balloon %d moved before the session started", i)
		}
	}
	if g.Ticks() != 0 {
		t.Fatalf("ticks: got=%d want=0", g.Ticks())
	}

	g.HandleClick(0, 0)
	g.Update()
	for i, b := range g.Pool.Balloons {
		if b.Y >= before[i] {
			t.Fatalf("balloon %d should rise once the session is running", i)
		}
	}
}

func TestFirstClickOnlyStarts(t *testing.T) {
	g, u := newTestGame(1)
	placeBalloon(g, 0, 100, 100, 80, 1)

	var started int
	g.EventDispatcher.Subscribe(event.SessionStarted, event.ListenerFunc(func(event.Event) { started++ }))

	if popped := g.HandleClick(100, 100); popped != nil {
		t.Fatal("the start gesture must not pop a balloon")
	}
	if !g.Started() || u.calls != 1 || started != 1 {
		t.Fatalf("started=%v unlock calls=%d events=%d", g.Started(), u.calls, started)
	}
	if g.Score.Value != 0 {
		t.Fatalf("score: got=%d want=0", g.Score.Value)
	}

	g.Start()
	if u.calls != 1 || started != 1 {
		t.Fatal("start must happen once")
	}
}

func TestScoreScenario(t *testing.T) {
	g, _ := newTestGame(2)
	placeBalloon(g, 0, 100, 100, 80, 2) // third palette entry, -1
	placeBalloon(g, 1, 400, 100, 80, 1) // second palette entry, +2
	g.HandleClick(0, 0)

	if g.HandleClick(400, 100) == nil {
		t.Fatal("expected a hit")
	}
	if g.Score.Value != 2 {
		t.Fatalf("score: got=%d want=2", g.Score.Value)
	}
	if g.HandleClick(100, 100) == nil {
		t.Fatal("expected a hit")
	}
	if g.Score.Value != 1 {
		t.Fatalf("score: got=%d want=1", g.Score.Value)
	}
}

func TestScorePerPaletteEntry(t *testing.T) {
	want := []int{1, 2, -1, 1, -1}
	for i, w := range want {
		g, _ := newTestGame(1)
		placeBalloon(g, 0, 50, 50, 60, i)
		g.Start()
		g.HandleClick(50, 50)
		if g.Score.Value != w {
			t.Errorf("palette %d: got=%d want=%d", i, g.Score.Value, w)
		}
	}
}

func TestOverlappingClickPopsOne(t *testing.T) {
	g, _ := newTestGame(3)
	for i := 0; i < 3; i++ {
		placeBalloon(g, i, 200, 200, 100, 0)
	}
	g.Start()

	var pops []event.PopData
	g.EventDispatcher.Subscribe(event.BalloonPopped, event.ListenerFunc(func(e event.Event) {
		pops = append(pops, e.Data.(event.PopData))
	}))

	popped := g.HandleClick(200, 200)
	if popped != g.Pool.Balloons[2] {
		t.Fatal("the newest balloon should be popped first")
	}
	exploded := 0
	for _, b := range g.Pool.Balloons {
		if b.Exploded {
			exploded++
		}
	}
	if exploded != 1 || len(pops) != 1 {
		t.Fatalf("exploded=%d events=%d want 1 and 1", exploded, len(pops))
	}
	if pops[0].Score != 1 || pops[0].Points != 1 {
		t.Fatalf("event payload: %+v", pops[0])
	}

	if g.HandleClick(200, 200) != g.Pool.Balloons[1] {
		t.Fatal("second click should pop the next balloon down")
	}
}

func TestClickOnRimMisses(t *testing.T) {
	g, _ := newTestGame(1)
	placeBalloon(g, 0, 100, 100, 60, 0)
	g.Start()
	if g.HandleClick(130, 100) != nil {
		t.Fatal("a click exactly on the rim is a miss")
	}
	if g.Score.Value != 0 {
		t.Fatal("a miss must not change the score")
	}
}

func TestResizeKeepsState(t *testing.T) {
	g, _ := newTestGame(2)
	b := placeBalloon(g, 0, 100, 100, 60, 1)
	g.Start()
	g.HandleClick(100, 100)

	g.Resize(1920, 1080)
	if g.Viewport.Width != 1920 || g.Viewport.Height != 1080 {
		t.Fatalf("viewport: got=%+v", *g.Viewport)
	}
	if g.Score.Value != 2 || !b.Exploded || g.Pool.Len() != 2 {
		t.Fatal("resize must not touch score or balloons")
	}

	g.Resize(0, 100)
	if g.Viewport.Width != 1920 {
		t.Fatal("invalid sizes are ignored")
	}
}

func TestNilUnlocker(t *testing.T) {
	g := NewGame(Options{Seed: 1})
	g.Start()
	if !g.Started() {
		t.Fatal("session should start without audio")
	}
	if g.Pool.Len() == 0 {
		t.Fatal("default balloon count should apply")
	}
}
