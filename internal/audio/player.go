// Package audio sonifies encrypted point sequences: each point becomes a
// short sine tone whose pitch follows the point's height, so a message can
// be heard as well as seen.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cipher-visualization/internal/cipher"
	"github.com/iburimskiy/cipher-visualization/internal/geom"
)

const (
	// Tone pitch range in Hz, mapped from point height.
	minFreq = 220.0
	maxFreq = 880.0

	// MaxTones caps how many points of a sequence are sonified.
	MaxTones = 32

	toneDuration = time.Second / 8
	ringSize     = 4096
	meterWindow  = 1024
)

// Player turns point sequences into tone sequences through the speaker.
// The speaker is initialized once on the first Play; each later call
// replaces whatever is still sounding. Play must be called from a single
// goroutine; Playing and Level are safe to poll from the frame loop.
type Player struct {
	sampleRate beep.SampleRate
	tap        *toneTap
	initDone   bool
	playing    atomic.Bool
}

func NewPlayer(sampleRate int) *Player {
	return &Player{
		sampleRate: beep.SampleRate(sampleRate),
		tap:        newToneTap(ringSize),
	}
}

// Play sonifies points in sequence order, one tone per point up to
// MaxTones. An empty sequence only stops the current playback.
func (p *Player) Play(points []geom.Point3) error {
	if !p.initDone {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
			return err
		}
		p.initDone = true
	}

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	if len(points) == 0 {
		p.playing.Store(false)
		return nil
	}

	n := len(points)
	if n > MaxTones {
		n = MaxTones
	}
	streams := make([]beep.Streamer, 0, n+1)
	for _, pt := range points[:n] {
		tone, err := generators.SinTone(p.sampleRate, int(ToneFrequency(pt)))
		if err != nil {
			return err
		}
		streams = append(streams, beep.Take(p.sampleRate.N(toneDuration), tone))
	}
	streams = append(streams, beep.Callback(func() {
		p.playing.Store(false)
	}))

	p.tap.setSource(beep.Seq(streams...))
	p.playing.Store(true)
	speaker.Play(p.tap)
	return nil
}

// Playing reports whether a tone sequence is still sounding.
func (p *Player) Playing() bool {
	return p.playing.Load()
}

// Level returns a 0..1 loudness estimate of the most recently played
// samples, compressed for display.
func (p *Player) Level() float64 {
	samples := p.tap.snapshot(meterWindow)
	if len(samples) == 0 {
		return 0
	}

	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	level := math.Pow(rms, 0.3)
	if level > 1 {
		level = 1
	}
	return level
}

// ToneFrequency maps a point's height into the tone pitch range. The torus
// keeps heights within the minor radius; the polynomial surface is
// unbounded, so anything taller pins to the range ends.
func ToneFrequency(p geom.Point3) float64 {
	t := (p.Z/cipher.MinorRadius + 1) / 2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return minFreq + t*(maxFreq-minFreq)
}
