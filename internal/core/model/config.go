package model

// WindowSize is the number of samples kept per signal window: thirty minutes
// of history at one sample per second.
const WindowSize = 1800

// SessionTicks is the clock end bound at which a session is discarded and
// rebuilt from scratch, one full cycle after the initial window.
const SessionTicks = 2 * WindowSize

// AmplitudeLimit bounds the chart's y-axis; signal scales stay inside it.
const AmplitudeLimit = 20.0

// SignalConfig describes one periodic waveform shown on the chart.
type SignalConfig struct {
	Name   string
	Step   float64
	Period float64
	Scale  float64
}

// DefaultSignals returns the three fixed timer phases.
func DefaultSignals() []SignalConfig {
	const oneMinute = 60.0
	return []SignalConfig{
		{Name: "Break", Step: 1.0, Period: 5 * oneMinute, Scale: 18},
		{Name: "Work", Step: 1.0, Period: 25 * oneMinute, Scale: 15},
		{Name: "Lunch", Step: 1.0, Period: 30 * oneMinute, Scale: 10},
	}
}
