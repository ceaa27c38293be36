package flappybird

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(48000)

// Audio plays short procedural blips through the system mixer. When
// the speaker cannot be initialized the resource stays installed but
// every Play call is a no-op; sound is never a reason to refuse to
// run.
type Audio struct {
	mixer   *beep.Mixer
	enabled bool
}

type AudioModule struct{}

func (mod AudioModule) Install(app *App, cmd *Commands) {
	audio := &Audio{mixer: &beep.Mixer{}}

	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*100)); err != nil {
		app.Logger().Warnf("audio disabled: %v", err)
	} else {
		speaker.Play(audio.mixer)
		audio.enabled = true
	}

	cmd.AddResources(audio)
}

func (a *Audio) PlayFlap() {
	a.playTone(660, 70*time.Millisecond)
}

func (a *Audio) PlayScore() {
	a.playTone(880, 90*time.Millisecond)
	a.playTone(1320, 90*time.Millisecond)
}

func (a *Audio) PlayHit() {
	a.playTone(160, 220*time.Millisecond)
}

func (a *Audio) playTone(freq float64, d time.Duration) {
	if !a.enabled {
		return
	}
	speaker.Lock()
	a.mixer.Add(newTone(freq, d, audioSampleRate))
	speaker.Unlock()
}

// tone is a sine oscillator with a linear fade-out so blips do not
// click when they end.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}

		fade := 1.0 - float64(t.position)/float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * 0.25 * fade
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
