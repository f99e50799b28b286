// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package demo drives the canonical start/stop scenario: a start delay arms
// a heartbeat, a stop delay disarms it, and an exit delay ends the loop. It
// exists to exercise the timer types the way an application event loop
// would, with every timer in the select at all times regardless of state.
package demo

import (
	"context"
	"time"

	"go.uber.org/zap"

	asynctimers "github.com/bradnelson/async-timers"
	cage_zap "github.com/bradnelson/async-timers/internal/cage/log/zap"
)

// Phase identifies a scenario transition reported on Loop.PhaseCh.
type Phase string

const (
	// PhaseStarted is reported when the start delay fires and the heartbeat begins.
	PhaseStarted Phase = "started"

	// PhaseStopped is reported when the stop delay fires and the heartbeat ends.
	PhaseStopped Phase = "stopped"

	// PhaseExited is reported just before Run returns normally.
	PhaseExited Phase = "exited"
)

// Loop runs the demo scenario from a single goroutine which exclusively owns
// all four timers.
type Loop struct {
	// Log receives debug/info-level messages.
	Log *zap.Logger

	// Config holds the scenario delays and the heartbeat period.
	Config Config

	// TickCh transports each heartbeat fire to an observer, e.g. the CLI
	// printer. Sends are non-blocking: a fire is dropped when no receiver
	// is ready.
	TickCh chan time.Time

	// PhaseCh transports scenario transitions to observers. Sends are
	// non-blocking like TickCh.
	PhaseCh chan Phase
}

// NewLoop returns a Loop ready to Run.
func NewLoop(log *zap.Logger, cfg Config) *Loop {
	return &Loop{
		Log:     log,
		Config:  cfg,
		TickCh:  make(chan time.Time, 1),
		PhaseCh: make(chan Phase, 1),
	}
}

// Run blocks until the scenario completes or ctx is canceled.
//
// Each iteration waits on every timer at once. The stopped/expired timers
// contribute nil channels to the select, so no branch needs to be added or
// removed as the scenario progresses.
func (l *Loop) Run(ctx context.Context) error {
	begin := time.Now()

	startDelay := asynctimers.NewOneshotTimer(l.Config.GetStartDelay())
	stopDelay := new(asynctimers.OneshotTimer)
	exitDelay := new(asynctimers.OneshotTimer)
	heartbeat := new(asynctimers.PeriodicTimer)

	l.Log.Info(
		"scenario started",
		cage_zap.Tag("demo"),
		zap.Duration("startDelay", l.Config.GetStartDelay()),
		zap.Duration("stopDelay", l.Config.GetStopDelay()),
		zap.Duration("exitDelay", l.Config.GetExitDelay()),
		zap.Duration("period", l.Config.GetPeriod()),
	)

	for {
		select {
		case <-ctx.Done():
			heartbeat.Stop()
			l.Log.Info("scenario canceled", cage_zap.Tag("demo"), zap.Error(ctx.Err()))
			return ctx.Err()

		case <-startDelay.Tick():
			heartbeat.Start(l.Config.GetPeriod())
			stopDelay.Schedule(l.Config.GetStopDelay())
			l.Log.Info(
				"heartbeat started",
				cage_zap.Tag("demo"),
				zap.Duration("period", l.Config.GetPeriod()),
				cage_zap.Elapsed("elapsed", time.Since(begin)),
			)
			l.notify(PhaseStarted)

		case tm := <-heartbeat.Tick():
			l.Log.Debug("heartbeat tick", cage_zap.Tag("demo"), cage_zap.Elapsed("elapsed", time.Since(begin)))
			select { // Only send if there's a receiver.
			case l.TickCh <- tm:
			default:
			}

		case <-stopDelay.Tick():
			heartbeat.Stop()
			exitDelay.Schedule(l.Config.GetExitDelay())
			l.Log.Info(
				"heartbeat stopped",
				cage_zap.Tag("demo"),
				cage_zap.Elapsed("elapsed", time.Since(begin)),
			)
			l.notify(PhaseStopped)

		case <-exitDelay.Tick():
			l.Log.Info("scenario finished", cage_zap.Tag("demo"), cage_zap.Elapsed("elapsed", time.Since(begin)))
			l.notify(PhaseExited)
			return nil
		}
	}
}

func (l *Loop) notify(p Phase) {
	select { // Only send if there's a receiver.
	case l.PhaseCh <- p:
	default:
	}
}
