package session

import (
	"fmt"
	"math"

	"github.com/snptkdn/pomodoro/internal/core/model"
	"github.com/snptkdn/pomodoro/internal/core/wave"
)

// Track pairs one signal with its rolling sample window.
type Track struct {
	name   string
	signal *wave.Signal
	window *Window
}

// Name returns the track's display name.
func (track *Track) Name() string {
	return track.name
}

// Points appends the track's window contents oldest-to-newest onto dst.
func (track *Track) Points(dst []wave.Sample) []wave.Sample {
	return track.window.Append(dst)
}

// Window exposes the track's sample window.
func (track *Track) Window() *Window {
	return track.window
}

// Session owns the signal generators, their windows and the display clock for
// one run of the visualizer. A completed session is replaced wholesale by a
// fresh New, never rewound in place.
type Session struct {
	tracks []*Track
	clock  [2]float64
}

// New constructs a session from the given signal configurations, drawing
// exactly WindowSize samples per signal so every window starts full, and sets
// the clock to [0, WindowSize].
func New(configs []model.SignalConfig) *Session {
	s := &Session{clock: [2]float64{0, model.WindowSize}}
	for _, config := range configs {
		track := &Track{
			name:   config.Name,
			signal: wave.New(config.Step, config.Period, config.Scale),
			window: NewWindow(model.WindowSize),
		}
		for i := 0; i < model.WindowSize; i++ {
			track.window.Push(track.signal.Next())
		}
		s.tracks = append(s.tracks, track)
	}
	return s
}

// Tracks returns the session's tracks in configuration order.
func (s *Session) Tracks() []*Track {
	return s.tracks
}

// Tick advances every track by one sample and moves both clock bounds by one.
// This is the only mutator of window contents; window lengths never change.
func (s *Session) Tick() {
	for _, track := range s.tracks {
		track.window.Push(track.signal.Next())
	}
	s.clock[0]++
	s.clock[1]++
}

// Clock returns the visible x-axis range.
func (s *Session) Clock() (start, end float64) {
	return s.clock[0], s.clock[1]
}

// Done reports whether the clock has reached the end of the session cycle.
func (s *Session) Done() bool {
	return s.clock[1] >= model.SessionTicks
}

// Cursor returns the leading signal's next tick index, shown on the x-axis.
func (s *Session) Cursor() float64 {
	if len(s.tracks) == 0 {
		return 0
	}
	return s.tracks[0].signal.Cursor()
}

// ElapsedLabel formats the clock end bound as MM:SS within the current
// half-window, e.g. 125 ticks in renders as "02:05".
func (s *Session) ElapsedLabel() string {
	elapsed := int(math.Mod(s.clock[1], model.WindowSize))
	return fmt.Sprintf("%02d:%02d", elapsed/60, elapsed%60)
}
