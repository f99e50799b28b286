// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package asynctimers

import (
	std_time "time"

	cage_time "github.com/bradnelson/async-timers/internal/cage/time"
)

// PeriodicTimer is a restartable recurring alarm.
//
// It is always in exactly one of two states. While started, Tick returns a
// channel that delivers the firing instant once per period, indefinitely.
// While stopped it holds no interval state at all and Tick returns Never().
// The zero value is a stopped timer, ready for use.
//
// If the consumer is slow, missed periods are coalesced: at most one tick is
// held for it and the rest are dropped, so the next receive fires promptly
// but the timer never replays a backlog. Exact drift-free scheduling is not
// a goal.
//
// PeriodicTimer starts no goroutines and holds no resources that outlive it;
// abandoning one in either state leaks nothing.
type PeriodicTimer struct {
	// clock supports timer mocking for tick-sensitive tests. A nil clock
	// reads the standard library clock.
	clock cage_time.Clock

	// ticker is the interval primitive generating deadlines every period.
	// A nil ticker is the stopped state.
	ticker cage_time.Ticker

	period std_time.Duration
}

// NewPeriodicTimer returns a started timer which first fires one full period
// after this call, not immediately, and every period thereafter.
//
// A stopped timer is just new(PeriodicTimer).
func NewPeriodicTimer(period std_time.Duration) *PeriodicTimer {
	t := &PeriodicTimer{}
	t.Start(period)
	return t
}

// Start replaces the timer's state with a started one, whatever the current
// state. Any progress toward a prior deadline is discarded: restarting
// resets the phase, and the first fire lands one full period from now.
//
// Start panics if period is not positive, like time.NewTicker.
func (t *PeriodicTimer) Start(period std_time.Duration) {
	t.Stop()
	t.period = period
	t.ticker = t.readClock().NewTicker(period)
}

// Stop replaces the timer's state with a stopped one. Subsequent Tick calls
// return Never() until the timer is started again. Stopping a stopped timer
// is a no-op.
func (t *PeriodicTimer) Stop() {
	if t.ticker == nil {
		return
	}

	t.ticker.Stop()

	// Drop a tick that fired but was never received, so a handle obtained
	// from Tick before this call cannot deliver it later.
	select {
	case <-t.ticker.C():
	default:
	}

	t.ticker = nil
	t.period = 0
}

// Tick returns the channel on which the timer fires.
//
// While started, each receive yields the firing instant of one elapsed
// period. A fire that is not received stays pending and wins a later
// select, so a branch that merely raced and lost costs the timer nothing.
// While stopped, the returned channel is Never() and the branch stays
// unready indefinitely.
func (t *PeriodicTimer) Tick() <-chan std_time.Time {
	if t.ticker == nil {
		return Never()
	}
	return t.ticker.C()
}

// Active returns whether the timer is currently started.
func (t *PeriodicTimer) Active() bool {
	return t.ticker != nil
}

// Period returns the current period, or zero while stopped.
func (t *PeriodicTimer) Period() std_time.Duration {
	return t.period
}

func (t *PeriodicTimer) readClock() cage_time.Clock {
	if t.clock == nil {
		return cage_time.RealClock{}
	}
	return t.clock
}
