// internal/assets/sound_manager.go
package assets

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	popaudio "balloon-pop/internal/audio"
)

// PlayerSound adapts an ebiten audio player to audio.Sound.
type PlayerSound struct {
	player *audio.Player
}

func (s *PlayerSound) Play() {
	if err := s.player.SetPosition(0); err != nil {
		log.Printf("WARNING: rewinding sound: %v", err)
	}
	s.player.Play()
}

func (s *PlayerSound) Stop() {
	s.player.Pause()
	if err := s.player.SetPosition(0); err != nil {
		log.Printf("WARNING: rewinding sound: %v", err)
	}
}

func (s *PlayerSound) IsPlaying() bool {
	return s.player.IsPlaying()
}

// SoundManager загружает и кэширует звуки в PCM, чтобы их можно было
// проигрывать повторно с начала.
type SoundManager struct {
	ctx    *audio.Context
	sounds map[string]*PlayerSound
}

// NewSoundManager wraps the process-wide audio context.
func NewSoundManager(ctx *audio.Context) *SoundManager {
	return &SoundManager{
		ctx:    ctx,
		sounds: make(map[string]*PlayerSound),
	}
}

// LoadSound decodes an mp3 or wav file into a replayable sound.
func (m *SoundManager) LoadSound(path string) (*PlayerSound, error) {
	if s, ok := m.sounds[path]; ok {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %q: %w", path, err)
	}
	pcm, err := decodePCM(m.ctx.SampleRate(), path, raw)
	if err != nil {
		return nil, err
	}
	s := &PlayerSound{player: m.ctx.NewPlayerFromBytes(pcm)}
	m.sounds[path] = s
	log.Printf("Loaded sound %s (%d bytes of PCM)", path, len(pcm))
	return s, nil
}

// LoadPop returns the pop sound from path, or the synthesized pop when the
// file is missing or cannot be decoded.
func (m *SoundManager) LoadPop(path string) *PlayerSound {
	if path != "" {
		s, err := m.LoadSound(path)
		if err == nil {
			return s
		}
		log.Printf("WARNING: %v, using synthesized pop", err)
	}
	const key = "synth:pop"
	if s, ok := m.sounds[key]; ok {
		return s
	}
	s := &PlayerSound{player: m.ctx.NewPlayerFromBytes(popaudio.SynthesizePopPCM(m.ctx.SampleRate()))}
	m.sounds[key] = s
	return s
}

// Cleanup закрывает всех плееров.
func (m *SoundManager) Cleanup() {
	for key, s := range m.sounds {
		if err := s.player.Close(); err != nil {
			log.Printf("WARNING: closing sound %s: %v", key, err)
		}
		delete(m.sounds, key)
	}
}

func decodePCM(sampleRate int, path string, raw []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported sound format %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("sound %q has no audio data", path)
	}
	return pcm, nil
}
