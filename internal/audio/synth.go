// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"balloon-pop/internal/config"
	"balloon-pop/internal/utils"
)

// popGenerator is a noise burst over a falling sine tone, both decaying fast.
type popGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
	seed  uint32
}

func newPopGenerator(sr beep.SampleRate, d time.Duration) *popGenerator {
	return &popGenerator{sr: sr, total: sr.N(d), seed: 0x2545f491}
}

func (g *popGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		freq := utils.Lerp(config.SynthPopToneStartHz, config.SynthPopToneEndHz, progress)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		tone := math.Sin(2 * math.Pi * g.phase)

		sample := 0.6*noise*math.Exp(-t*config.SynthPopNoiseDecay) +
			0.5*tone*math.Exp(-t*config.SynthPopToneDecay)
		sample = utils.Clamp(sample, -1, 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error { return nil }

// release fades the last samples of a fixed-length stream to silence.
type release struct {
	streamer beep.Streamer
	pos      int
	total    int
	length   int
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	start := r.total - r.length
	for i := 0; i < n; i++ {
		if r.pos >= start && r.length > 0 {
			vol := float64(r.total-r.pos-1) / float64(r.length)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.pos++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// SynthesizePop builds the fallback pop sound used when no asset is found.
func SynthesizePop(sampleRate int) beep.Streamer {
	sr := beep.SampleRate(sampleRate)
	d := time.Duration(config.SynthPopDurationMs) * time.Millisecond
	pop := &release{
		streamer: beep.Take(sr.N(d), newPopGenerator(sr, d)),
		total:    sr.N(d),
		length:   sr.N(20 * time.Millisecond),
	}
	return &effects.Volume{
		Streamer: pop,
		Base:     2,
		Volume:   math.Log2(config.PopVolume),
	}
}

// Render drains a finite streamer into stereo samples.
func Render(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// EncodePCM16 converts samples to 16-bit little endian stereo, the format
// ebiten's audio players consume.
func EncodePCM16(samples [][2]float64) []byte {
	pcm := make([]byte, len(samples)*4)
	for i, s := range samples {
		l := int16(utils.Clamp(s[0], -1, 1) * math.MaxInt16)
		r := int16(utils.Clamp(s[1], -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(r))
	}
	return pcm
}

// SynthesizePopPCM renders the fallback pop to PCM bytes.
func SynthesizePopPCM(sampleRate int) []byte {
	return EncodePCM16(Render(SynthesizePop(sampleRate)))
}
