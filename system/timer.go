// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "time"

// Timer measures frame times.
type Timer struct {
	// Now returns the current time; it is [time.Now] by default.
	Now func() time.Time

	start  time.Time
	last   time.Time
	delta  time.Duration
	frames int
}

// NewTimer returns a new Timer started now.
func NewTimer() *Timer {
	t := &Timer{Now: time.Now}
	t.Reset()
	return t
}

// Reset restarts the timer.
func (t *Timer) Reset() {
	t.start = t.Now()
	t.last = t.start
	t.delta = 0
	t.frames = 0
}

// Tick marks the start of a new frame and returns the time since
// the previous one.
func (t *Timer) Tick() time.Duration {
	now := t.Now()
	t.delta = now.Sub(t.last)
	t.last = now
	t.frames++
	return t.delta
}

// Delta returns the duration of the last frame.
func (t *Timer) Delta() time.Duration {
	return t.delta
}

// DeltaSeconds returns the duration of the last frame in seconds.
func (t *Timer) DeltaSeconds() float32 {
	return float32(t.delta.Seconds())
}

// Elapsed returns the time since the timer was started, as of the last tick.
func (t *Timer) Elapsed() time.Duration {
	return t.last.Sub(t.start)
}

// Frames returns the number of ticks since the timer was started.
func (t *Timer) Frames() int {
	return t.frames
}

// FPS returns the average frames per second since the timer was started.
func (t *Timer) FPS() float64 {
	el := t.Elapsed()
	if el <= 0 {
		return 0
	}
	return float64(t.frames) / el.Seconds()
}
