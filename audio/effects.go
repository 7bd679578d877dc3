package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/planet-survivor/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that produces duration worth of samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreatePickupSound generates a short blip for scrap collection
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	return tone(1046.5, WaveSine, constants.PickupSoundDuration,
		constants.PickupSoundAttack, constants.PickupSoundRelease, rate)
}

// CreateEnergySound generates a bright two-partial chime for energy cells
func CreateEnergySound(rate beep.SampleRate) beep.Streamer {
	d := constants.PickupSoundDuration
	fund := tone(1318.5, WaveSine, d, constants.PickupSoundAttack, constants.PickupSoundRelease, rate)
	over := tone(2637.0, WaveSine, d, constants.PickupSoundAttack, constants.PickupSoundRelease/2, rate)
	return beep.Take(rate.N(d), beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)))
}

// CreateLevelUpSound generates a rising C-E-G arpeggio
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99} {
		notes = append(notes, tone(f, WaveSquare, constants.LevelUpNoteDuration,
			constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// CreateLifeLostSound generates a low harsh buzz
func CreateLifeLostSound(rate beep.SampleRate) beep.Streamer {
	return tone(110, WaveSaw, constants.LifeLostSoundDuration,
		constants.LifeLostSoundAttack, constants.LifeLostSoundRelease, rate)
}

// CreateGameOverSound generates a long rumble of low saw and noise
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d := constants.GameOverSoundDuration
	low := tone(82.4, WaveSaw, d, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)
	hiss := tone(0, WaveNoise, d, constants.GameOverSoundAttack, constants.GameOverSoundRelease/2, rate)
	return beep.Take(rate.N(d), beep.Mix(newVolume(low, 0.6), newVolume(hiss, 0.25)))
}

// GetSoundEffect returns the streamer for st scaled by volume, nil for unknown types
func GetSoundEffect(st SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch st {
	case SoundPickup:
		s = CreatePickupSound(rate)
	case SoundEnergy:
		s = CreateEnergySound(rate)
	case SoundLevelUp:
		s = CreateLevelUpSound(rate)
	case SoundLifeLost:
		s = CreateLifeLostSound(rate)
	case SoundGameOver:
		s = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
