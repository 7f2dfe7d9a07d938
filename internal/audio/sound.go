// internal/audio/sound.go
package audio

import (
	"log"
	"sync"

	"balloon-pop/internal/event"
)

// Sound is a loaded sound asset.
type Sound interface {
	Play()
	Stop()
	IsPlaying() bool
}

// PopSink plays the pop sound when a balloon bursts. It is a BalloonPopped
// listener and the session's audio unlocker.
type PopSink struct {
	mu       sync.Mutex
	sound    Sound
	muted    bool
	unlocked bool
	plays    int
}

// NewPopSink wraps sound, which may be nil when no audio is available.
func NewPopSink(sound Sound, muted bool) *PopSink {
	return &PopSink{sound: sound, muted: muted}
}

// Unlock primes playback with a play-then-stop. Browsers only allow audio
// after a user gesture, so this must run inside the first click.
func (s *PopSink) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked {
		return
	}
	s.unlocked = true
	if s.sound == nil {
		log.Println("audio unavailable, playing silently")
		return
	}
	s.sound.Play()
	s.sound.Stop()
}

// OnEvent plays the pop unless it is still playing from an earlier burst.
func (s *PopSink) OnEvent(e event.Event) {
	if e.Type != event.BalloonPopped {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sound == nil || s.muted || !s.unlocked {
		return
	}
	if s.sound.IsPlaying() {
		return
	}
	s.sound.Play()
	s.plays++
}

// SetMuted toggles playback.
func (s *PopSink) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// Muted reports whether playback is off.
func (s *PopSink) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Plays returns how many pops were actually played.
func (s *PopSink) Plays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays
}
