package audio

import (
	"math"
	"testing"

	"github.com/iburimskiy/cipher-visualization/internal/geom"
)

type constStreamer struct{ v float64 }

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.v, c.v}
	}
	return len(samples), true
}

func (c constStreamer) Err() error { return nil }

type rampStreamer struct{ n float64 }

func (r *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{r.n, r.n}
		r.n++
	}
	return len(samples), true
}

func (r *rampStreamer) Err() error { return nil }

func TestToneFrequencyRange(t *testing.T) {
	cases := []struct {
		z    float64
		want float64
	}{
		{-1, 220},
		{0, 550},
		{1, 880},
	}
	for _, c := range cases {
		got := ToneFrequency(geom.Point3{Z: c.z})
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("ToneFrequency(z=%g) = %g, want %g", c.z, got, c.want)
		}
	}
}

func TestToneFrequencyClampsTallPoints(t *testing.T) {
	if got := ToneFrequency(geom.Point3{Z: 50}); got != 880 {
		t.Fatalf("ToneFrequency(z=50) = %g, want 880", got)
	}
	if got := ToneFrequency(geom.Point3{Z: -50}); got != 220 {
		t.Fatalf("ToneFrequency(z=-50) = %g, want 220", got)
	}
}

func TestTapStopsWithoutSource(t *testing.T) {
	tap := newToneTap(8)
	n, ok := tap.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Fatalf("sourceless tap streamed (%d, %v), want (0, false)", n, ok)
	}
}

func TestTapRecordsInOrder(t *testing.T) {
	tap := newToneTap(8)
	tap.setSource(&rampStreamer{})

	tap.Stream(make([][2]float64, 4))

	got := tap.snapshot(4)
	for i, s := range got {
		if s[0] != float64(i) {
			t.Fatalf("snapshot[%d] = %g, want %d (chronological order)", i, s[0], i)
		}
	}
}

func TestTapRingWraps(t *testing.T) {
	tap := newToneTap(8)
	tap.setSource(&rampStreamer{})

	tap.Stream(make([][2]float64, 12))

	got := tap.snapshot(8)
	if len(got) != 8 {
		t.Fatalf("snapshot returned %d samples, want 8", len(got))
	}
	// Oldest surviving sample is number 4 of the 12 streamed.
	if got[0][0] != 4 || got[7][0] != 11 {
		t.Fatalf("ring kept [%g..%g], want [4..11]", got[0][0], got[7][0])
	}
}

func TestTapSetSourceResetsRing(t *testing.T) {
	tap := newToneTap(8)
	tap.setSource(constStreamer{v: 0.9})
	tap.Stream(make([][2]float64, 8))

	tap.setSource(constStreamer{v: 0})
	for i, s := range tap.snapshot(8) {
		if s != ([2]float64{}) {
			t.Fatalf("snapshot[%d] = %v after reset, want zero", i, s)
		}
	}
}

func TestPlayerLevel(t *testing.T) {
	p := NewPlayer(44100)
	if lv := p.Level(); lv != 0 {
		t.Fatalf("fresh player level = %g, want 0", lv)
	}

	p.tap.setSource(constStreamer{v: 0.5})
	p.tap.Stream(make([][2]float64, 2048))

	lv := p.Level()
	want := math.Pow(0.5, 0.3)
	if math.Abs(lv-want) > 1e-12 {
		t.Fatalf("level = %g, want %g", lv, want)
	}
}
