package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// toneTap sits between the tone sequence and the speaker, copying played
// samples into a ring buffer so the frame loop can draw a level meter from
// recently played audio. The speaker mixer calls Stream from its own
// goroutine; the mutex covers both the source swap and the ring.
type toneTap struct {
	mu     sync.RWMutex
	src    beep.Streamer
	buffer [][2]float64
	next   int
}

func newToneTap(ringSize int) *toneTap {
	return &toneTap{buffer: make([][2]float64, ringSize)}
}

// setSource points the tap at a new tone sequence and zeroes the ring.
func (t *toneTap) setSource(src beep.Streamer) {
	t.mu.Lock()
	t.src = src
	t.next = 0
	for i := range t.buffer {
		t.buffer[i] = [2]float64{}
	}
	t.mu.Unlock()
}

func (t *toneTap) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	src := t.src
	t.mu.Unlock()
	if src == nil {
		return 0, false
	}

	n, ok := src.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.next] = samples[i]
			t.next++
			if t.next >= len(t.buffer) {
				t.next = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *toneTap) Err() error {
	t.mu.RLock()
	src := t.src
	t.mu.RUnlock()
	if src == nil {
		return nil
	}
	return src.Err()
}

// snapshot returns up to the last n samples (stereo) from the ring buffer,
// most recent last.
func (t *toneTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, 0, n)
	idx := t.next - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
