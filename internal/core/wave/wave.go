package wave

import (
	"math"

	"github.com/snptkdn/pomodoro/internal/core/model"
)

// Sample is one (tick, amplitude) point of a waveform.
type Sample struct {
	X float64
	Y float64
}

// Signal lazily produces samples of a sine waveform. It never terminates on
// its own; restarting means constructing a new Signal, not rewinding one.
type Signal struct {
	cursor float64
	step   float64
	period float64
	scale  float64
}

// New creates a Signal starting at cursor zero. Parameters are not validated;
// a zero period divides to NaN samples.
func New(step, period, scale float64) *Signal {
	return &Signal{
		step:   step,
		period: period,
		scale:  scale,
	}
}

// Cursor returns the tick index of the next sample to be produced.
func (signal *Signal) Cursor() float64 {
	return signal.cursor
}

// Next returns the sample at the current cursor and advances the cursor by
// one step. The phase leads by WindowSize ticks so the initial window fill
// looks like a waveform already in flight rather than a start from phase
// zero; a negative cursor clamps to zero amplitude.
func (signal *Signal) Next() Sample {
	sample := Sample{X: signal.cursor}
	if signal.cursor >= 0 {
		adjusted := signal.cursor - model.WindowSize
		sample.Y = signal.scale * math.Sin(adjusted*2*math.Pi/signal.period)
	}
	signal.cursor += signal.step
	return sample
}
