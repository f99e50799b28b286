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

// OneshotTimer is a reschedulable single alarm.
//
// It is always in exactly one of two states. While scheduled, Tick returns a
// channel that delivers the firing instant exactly once, at a deadline fixed
// when Schedule was called. Once that single fire has been received, or
// after Cancel, the timer is expired: Tick returns a channel that never
// delivers, until the timer is re-armed with Schedule. The zero value is an
// expired timer, ready for use.
//
// This is the asymmetry with PeriodicTimer: a oneshot fire consumes the
// armed state, a periodic fire regenerates the next deadline. A fire that
// happened but was not yet received is still pending, so the timer keeps
// winning the next select until the fire is actually consumed once.
//
// OneshotTimer starts no goroutines and holds no resources that outlive it;
// abandoning one in either state leaks nothing.
type OneshotTimer struct {
	// clock supports timer mocking for tick-sensitive tests. A nil clock
	// reads the standard library clock.
	clock cage_time.Clock

	// timer is the armed sleep primitive. A nil timer is the expired state.
	timer cage_time.Timer

	deadline std_time.Time
}

// NewOneshotTimer returns a scheduled timer whose deadline is d from now.
//
// An expired timer is just new(OneshotTimer).
func NewOneshotTimer(d std_time.Duration) *OneshotTimer {
	t := &OneshotTimer{}
	t.Schedule(d)
	return t
}

// Schedule replaces the timer's state with a scheduled one, whatever the
// current state. The new deadline is measured from the moment of this call,
// never from an earlier schedule, and any pending or undelivered fire from
// the previous arming is discarded.
//
// A non-positive duration fires as soon as the channel is received from,
// like time.NewTimer.
func (t *OneshotTimer) Schedule(d std_time.Duration) {
	t.disarm()
	c := t.readClock()
	t.deadline = c.Now().Add(d)
	t.timer = c.NewTimer(d)
}

// Cancel replaces the timer's state with an expired one, pre-empting the
// pending fire if one exists. A fire that already happened but was never
// received is discarded too. Cancelling an expired timer is a no-op.
func (t *OneshotTimer) Cancel() {
	t.disarm()
	t.deadline = std_time.Time{}
}

// Tick returns the channel on which the timer fires.
//
// While scheduled, the channel delivers the firing instant once. The
// delivery is consumed by the receive itself, so a select branch that loses
// a race consumes nothing: the fire stays pending and the deadline is
// unchanged for the next wait. While expired, the returned channel never
// delivers a value.
func (t *OneshotTimer) Tick() <-chan std_time.Time {
	if t.timer == nil {
		return Never()
	}
	return t.timer.C()
}

// Deadline returns the deadline fixed by the most recent Schedule and
// whether the timer is still armed. Armed reflects control state only: it
// stays true after a natural fire (only the consumer of a channel can
// observe the receive) and turns false on Cancel or on the zero value.
func (t *OneshotTimer) Deadline() (std_time.Time, bool) {
	return t.deadline, t.timer != nil
}

// disarm stops the underlying timer and swallows an undelivered fire. The
// non-blocking drain matters: when Stop reports the timer already fired,
// the value may sit in the channel buffer or may already have been received
// by the owner, and only the former leaves anything to drain.
func (t *OneshotTimer) disarm() {
	if t.timer == nil {
		return
	}

	if !t.timer.Stop() {
		select {
		case <-t.timer.C():
		default:
		}
	}

	t.timer = nil
}

func (t *OneshotTimer) readClock() cage_time.Clock {
	if t.clock == nil {
		return cage_time.RealClock{}
	}
	return t.clock
}
