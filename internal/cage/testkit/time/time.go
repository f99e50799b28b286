// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package time

import (
	"time"

	"github.com/stretchr/testify/mock"

	cage_time_mocks "github.com/bradnelson/async-timers/internal/cage/time/mocks"
)

// NewTimer returns a mock timer and a mock clock configured to provide it.
func NewTimer() (*cage_time_mocks.Timer, *cage_time_mocks.Clock) {
	timer := new(cage_time_mocks.Timer)
	clock := new(cage_time_mocks.Clock)
	clock.On("NewTimer", mock.AnythingOfType("time.Duration")).Return(timer)
	return timer, clock
}

// NewTicker returns a mock ticker and a mock clock configured to provide it.
func NewTicker() (*cage_time_mocks.Ticker, *cage_time_mocks.Clock) {
	ticker := new(cage_time_mocks.Ticker)
	clock := new(cage_time_mocks.Clock)
	clock.On("NewTicker", mock.AnythingOfType("time.Duration")).Return(ticker)
	return ticker, clock
}

// RWChanToROChan converts a bi-directional channel to a read-only one.
func RWChanToROChan(rw chan time.Time) <-chan time.Time {
	return rw
}

type FiringTimerOption struct {
	StopReturnFalse bool
}

// NewFiringTimer expands on NewTimer by providing a channel to which tests can write
// in order to simulate a timer expiration.
func NewFiringTimer(o *FiringTimerOption) (*cage_time_mocks.Timer, *cage_time_mocks.Clock, chan time.Time, <-chan time.Time) {
	timer, clock := NewTimer()

	if o != nil && o.StopReturnFalse {
		timer.On("Stop").Return(false)
	} else {
		timer.On("Stop").Return(true)
	}

	// Create a channel that is a read-only "copy" of another bi-directional one.
	// The read-only end is what the mock Timer emits from its C method, while the
	// test writes to the bi-directional one, effectively controlling the read-only
	// channel "remotely" at this layer.
	ch := make(chan time.Time, 1)
	timer.On("C").Return(RWChanToROChan(ch))

	return timer, clock, ch, RWChanToROChan(ch)
}

// NewFiringTicker expands on NewTicker by providing a channel to which tests can write
// in order to simulate tick delivery.
func NewFiringTicker() (*cage_time_mocks.Ticker, *cage_time_mocks.Clock, chan time.Time, <-chan time.Time) {
	ticker, clock := NewTicker()
	ticker.On("Stop").Return()

	ch := make(chan time.Time, 1)
	ticker.On("C").Return(RWChanToROChan(ch))

	return ticker, clock, ch, RWChanToROChan(ch)
}
