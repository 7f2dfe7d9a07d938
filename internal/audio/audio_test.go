package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"balloon-pop/internal/config"
	"balloon-pop/internal/event"
)

type fakeSound struct {
	playing bool
	plays   int
	stops   int
}

func (f *fakeSound) Play()           { f.playing = true; f.plays++ }
func (f *fakeSound) Stop()           { f.playing = false; f.stops++ }
func (f *fakeSound) IsPlaying() bool { return f.playing }

var pop = event.Event{Type: event.BalloonPopped, Data: event.PopData{}}

func TestUnlockPrimesPlayback(t *testing.T) {
	snd := &fakeSound{}
	sink := NewPopSink(snd, false)
	sink.Unlock()
	if snd.plays != 1 || snd.stops != 1 || snd.playing {
		t.Fatalf("prime: plays=%d stops=%d playing=%v", snd.plays, snd.stops, snd.playing)
	}
	sink.Unlock()
	if snd.plays != 1 {
		t.Fatal("unlock should only prime once")
	}
}

func TestPopWaitsForUnlock(t *testing.T) {
	snd := &fakeSound{}
	sink := NewPopSink(snd, false)
	sink.OnEvent(pop)
	if snd.plays != 0 {
		t.Fatal("nothing should play before the unlock gesture")
	}
}

func TestPopSkipsWhilePlaying(t *testing.T) {
	snd := &fakeSound{}
	sink := NewPopSink(snd, false)
	sink.Unlock()

	sink.OnEvent(pop)
	sink.OnEvent(pop)
	if sink.Plays() != 1 {
		t.Fatalf("overlapping pops: got=%d plays want=1", sink.Plays())
	}

	snd.playing = false
	sink.OnEvent(pop)
	if sink.Plays() != 2 {
		t.Fatalf("got=%d plays want=2", sink.Plays())
	}
}

func TestPopIgnoresOtherEvents(t *testing.T) {
	snd := &fakeSound{}
	sink := NewPopSink(snd, false)
	sink.Unlock()
	sink.OnEvent(event.Event{Type: event.SessionStarted})
	if sink.Plays() != 0 {
		t.Fatal("only pops play the sound")
	}
}

func TestMutedAndMissingSound(t *testing.T) {
	snd := &fakeSound{}
	sink := NewPopSink(snd, true)
	sink.Unlock()
	sink.OnEvent(pop)
	if sink.Plays() != 0 {
		t.Fatal("muted sink must stay silent")
	}
	sink.SetMuted(false)
	sink.OnEvent(pop)
	if sink.Plays() != 1 || sink.Muted() {
		t.Fatal("unmuted sink should play")
	}

	silent := NewPopSink(nil, false)
	silent.Unlock()
	silent.OnEvent(pop)
	if silent.Plays() != 0 {
		t.Fatal("a sink without a sound never plays")
	}
}

func TestSynthesizedPopShape(t *testing.T) {
	samples := Render(SynthesizePop(config.AudioSampleRate))
	want := config.AudioSampleRate * config.SynthPopDurationMs / 1000
	if len(samples) != want {
		t.Fatalf("length: got=%d want=%d", len(samples), want)
	}
	peak := 0.0
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, s)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak < 0.05 {
		t.Fatalf("pop is too quiet, peak=%f", peak)
	}
	if last := samples[len(samples)-1]; math.Abs(last[0]) > 1e-9 {
		t.Fatalf("tail should be silent, got=%f", last[0])
	}
}

func TestEncodePCM16(t *testing.T) {
	pcm := EncodePCM16([][2]float64{{1, -1}, {0, 2}})
	if len(pcm) != 8 {
		t.Fatalf("bytes: got=%d want=8", len(pcm))
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[0:])); v != math.MaxInt16 {
		t.Errorf("left: got=%d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[2:])); v != -math.MaxInt16 {
		t.Errorf("right: got=%d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[6:])); v != math.MaxInt16 {
		t.Errorf("clamped: got=%d", v)
	}
}

func TestSynthesizePopPCMLength(t *testing.T) {
	pcm := SynthesizePopPCM(config.AudioSampleRate)
	if len(pcm) != config.AudioSampleRate*config.SynthPopDurationMs/1000*4 {
		t.Fatalf("pcm bytes: got=%d", len(pcm))
	}
}
