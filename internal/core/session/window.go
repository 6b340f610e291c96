package session

import "github.com/snptkdn/pomodoro/internal/core/wave"

// Window is a fixed-capacity ring buffer over the most recent samples of one
// signal. Once full, every push overwrites the oldest sample in place, so the
// arena never grows and the full window is always exactly capacity long.
type Window struct {
	arena []wave.Sample
	head  int
	count int
}

// NewWindow creates an empty window holding up to capacity samples.
func NewWindow(capacity int) *Window {
	return &Window{arena: make([]wave.Sample, capacity)}
}

// Len returns the number of samples currently held.
func (window *Window) Len() int {
	return window.count
}

// Push appends a sample, dropping the oldest one when the window is full.
func (window *Window) Push(sample wave.Sample) {
	if window.count < len(window.arena) {
		window.arena[(window.head+window.count)%len(window.arena)] = sample
		window.count++
		return
	}
	window.arena[window.head] = sample
	window.head = (window.head + 1) % len(window.arena)
}

// At returns the i-th sample in order, 0 being the oldest.
func (window *Window) At(i int) wave.Sample {
	return window.arena[(window.head+i)%len(window.arena)]
}

// Append writes the samples oldest-to-newest onto dst and returns it.
func (window *Window) Append(dst []wave.Sample) []wave.Sample {
	for i := 0; i < window.count; i++ {
		dst = append(dst, window.At(i))
	}
	return dst
}
