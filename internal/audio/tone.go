package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is an oscillator with a linear frequency sweep and a fade-out.
type tone struct {
	cue      Cue
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewTone возвращает конечный поток для звука c.
func NewTone(c Cue, rate beep.SampleRate) beep.Streamer {
	return &tone{cue: c, rate: rate, duration: rate.N(c.Duration)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.duration)
		env := (1 - progress) * (1 - progress)

		var val float64
		switch t.cue.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= env * t.cue.Gain
		samples[i][0] = val
		samples[i][1] = val

		freq := t.cue.From + (t.cue.To-t.cue.From)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
