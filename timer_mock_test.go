// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package asynctimers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testkit_time "github.com/bradnelson/async-timers/internal/cage/testkit/time"
)

// These tests cover control-surface interactions that clock-driven tests
// cannot observe, e.g. that re-arming disarms the prior primitive instead of
// leaking it.

func TestOneshotTimerScheduleDisarmsPriorTimer(t *testing.T) {
	timer, clock, _, _ := testkit_time.NewFiringTimer(nil)
	clock.On("Now").Return(time.Now())

	ot := &OneshotTimer{clock: clock}
	ot.Schedule(time.Second)
	ot.Schedule(time.Second)

	timer.AssertCalled(t, "Stop")
	clock.AssertNumberOfCalls(t, "NewTimer", 2)
}

func TestOneshotTimerCancelDrainsUndeliveredFire(t *testing.T) {
	timer, clock, rw, _ := testkit_time.NewFiringTimer(&testkit_time.FiringTimerOption{StopReturnFalse: true})
	clock.On("Now").Return(time.Now())

	ot := &OneshotTimer{clock: clock}
	ot.Schedule(time.Second)

	// Simulate a fire nobody received yet.
	rw <- time.Now()

	ot.Cancel()

	timer.AssertCalled(t, "Stop")
	assert.Len(t, rw, 0, "undelivered fire must be drained on Cancel")
	assert.Nil(t, ot.Tick())

	_, armed := ot.Deadline()
	assert.False(t, armed)
}

func TestOneshotTimerTickReturnsUnderlyingChannel(t *testing.T) {
	_, clock, rw, _ := testkit_time.NewFiringTimer(nil)
	clock.On("Now").Return(time.Now())

	ot := &OneshotTimer{clock: clock}
	ot.Schedule(time.Minute)

	fired := time.Now()
	rw <- fired

	select {
	case tm := <-ot.Tick():
		require.True(t, tm.Equal(fired))
	default:
		t.Fatal("Tick did not expose the underlying timer channel")
	}
}

func TestPeriodicTimerStopStopsTicker(t *testing.T) {
	ticker, clock, _, _ := testkit_time.NewFiringTicker()

	pt := &PeriodicTimer{clock: clock}
	pt.Start(time.Second)
	pt.Stop()

	ticker.AssertCalled(t, "Stop")
	assert.Nil(t, pt.Tick())
	assert.False(t, pt.Active())
	assert.Zero(t, pt.Period())
}

func TestPeriodicTimerRestartReplacesTicker(t *testing.T) {
	ticker, clock, rw, _ := testkit_time.NewFiringTicker()

	pt := &PeriodicTimer{clock: clock}
	pt.Start(time.Second)

	// A tick pending from the first arming must not leak into the second.
	rw <- time.Now()

	pt.Start(2 * time.Second)

	ticker.AssertCalled(t, "Stop")
	assert.Len(t, rw, 0, "pending tick must be drained on restart")
	clock.AssertNumberOfCalls(t, "NewTicker", 2)
	assert.Equal(t, 2*time.Second, pt.Period())
}
