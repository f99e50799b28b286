// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradnelson/async-timers/internal/cage/testkit"
	"github.com/bradnelson/async-timers/internal/demo"
)

func TestLoopRunsScenario(t *testing.T) {
	cfg := demo.Config{
		StartDelay: "20ms",
		StopDelay:  "60ms",
		ExitDelay:  "30ms",
		Period:     "10ms",
	}
	require.NoError(t, demo.FinalizeConfig(&cfg))

	loop := demo.NewLoop(testkit.NewZapLogger(), cfg)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	var ticks int
	var phases []demo.Phase
	deadline := time.After(5 * time.Second)

	for {
		select {
		case <-loop.TickCh:
			ticks++
		case p := <-loop.PhaseCh:
			phases = append(phases, p)
		case err := <-done:
			require.NoError(t, err)

			// Drain observer channels: the final sends may still be buffered.
			for {
				select {
				case <-loop.TickCh:
					ticks++
					continue
				case p := <-loop.PhaseCh:
					phases = append(phases, p)
					continue
				default:
				}
				break
			}

			assert.GreaterOrEqual(t, ticks, 1, "heartbeat never observed between start and stop")
			assert.Equal(t, []demo.Phase{demo.PhaseStarted, demo.PhaseStopped, demo.PhaseExited}, phases)
			return
		case <-deadline:
			t.Fatal("scenario did not finish within 5s")
		}
	}
}

func TestLoopCancel(t *testing.T) {
	loop := demo.NewLoop(testkit.NewZapLogger(), demo.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
