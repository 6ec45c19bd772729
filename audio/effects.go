package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orrery/constant"
)

// glide is a sine oscillator whose frequency moves linearly from one pitch to another
type glide struct {
	from     float64
	to       float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a fixed-pitch sine streamer
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, rate)
}

// NewGlide creates a sine streamer sweeping from one frequency to another over duration
func NewGlide(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &glide{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(g.position) / float64(g.duration)
		freq := g.from + (g.to-g.from)*t
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// envelope applies linear attack and release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope spanning duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain
// math.Log2(0) is -Inf, so zero gain is rendered silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSelectChime builds a two-partial bell tone for body selection
func CreateSelectChime(rate beep.SampleRate) beep.Streamer {
	d := constant.SelectChimeDuration

	fund := NewEnvelope(NewTone(constant.SelectChimeFreq, d, rate), d,
		constant.SelectChimeAttack, constant.SelectChimeRelease, rate)
	over := NewEnvelope(NewTone(constant.SelectChimeOvertone, d, rate), d,
		constant.SelectChimeAttack, constant.SelectChimeRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, constant.ChimeVolume)
}

// CreateResetSweep builds the falling glide played when the view returns to overview
func CreateResetSweep(rate beep.SampleRate) beep.Streamer {
	d := constant.ResetSweepDuration
	sweep := NewGlide(constant.ResetSweepFromFreq, constant.ResetSweepToFreq, d, rate)
	shaped := NewEnvelope(sweep, d, constant.ResetSweepAttack, constant.ResetSweepRelease, rate)
	return newVolume(shaped, constant.ChimeVolume)
}
