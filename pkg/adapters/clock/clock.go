// Package clock provides the timer adapters behind the wait primitive.
package clock

import "time"

// System sleeps on the real wall clock.
type System struct{}

// Sleep blocks for the given duration.
func (System) Sleep(d time.Duration) { time.Sleep(d) }

// Fake records requested durations and returns immediately. Intended for
// tests that exercise waits without real delays.
type Fake struct {
	Slept []time.Duration
}

// Sleep records the duration without blocking.
func (f *Fake) Sleep(d time.Duration) { f.Slept = append(f.Slept, d) }
