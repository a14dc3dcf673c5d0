package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine wave with a linear fade out.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
}

func newTone(freq float64, d time.Duration) *tone {
	return &tone{freq: freq, total: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		gain := 1 - float64(t.position)/float64(t.total)
		v := math.Sin(2*math.Pi*t.phase) * gain
		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Chime is the two-note cue played when a level is ready.
func Chime() beep.Streamer {
	notes := beep.Seq(newTone(880, 90*time.Millisecond), newTone(1320, 160*time.Millisecond))
	return &effects.Volume{Streamer: notes, Base: 2, Volume: -2}
}

// Speaker plays cues. A Speaker that failed to open stays silent.
type Speaker struct {
	mu    sync.Mutex
	ready bool
}

// OpenSpeaker initialises audio output.
func OpenSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Speaker{}, err
	}
	return &Speaker{ready: true}, nil
}

// Play queues s without blocking.
func (sp *Speaker) Play(s beep.Streamer) {
	if sp == nil {
		return
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.ready {
		speaker.Play(s)
	}
}

// Close releases the audio device.
func (sp *Speaker) Close() {
	if sp == nil {
		return
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.ready {
		speaker.Close()
		sp.ready = false
	}
}
