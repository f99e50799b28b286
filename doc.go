// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package asynctimers provides timers that can be stopped, restarted, and
// rescheduled without being destroyed and recreated.
//
// A raw time.Ticker cannot be disarmed without discarding it, and a raw
// time.Timer is awkward to re-arm correctly from inside a select loop. That
// makes both painful when a timer's existence depends on runtime state, e.g.
// "only run the heartbeat while connected". PeriodicTimer and OneshotTimer
// wrap those primitives behind a stable handle whose Tick method always
// returns a channel fit for a select branch:
//
//	select {
//	case tm := <-periodic.Tick():
//	    // fires every period while started, never while stopped
//	case tm := <-oneshot.Tick():
//	    // fires once while scheduled, never again until re-armed
//	}
//
// While a timer is inactive its Tick channel is nil, so the branch simply
// never becomes ready; the loop needs no sentinel values or special casing.
// Receiving from the channel is what completes a wait. A select branch that
// loses the race performs no receive and therefore leaves the timer's state
// and pending deadline untouched.
//
// A timer instance is owned by a single goroutine at a time. The control
// methods (Start, Stop, Schedule, Cancel) are synchronous, total, and must
// not be called concurrently with each other from multiple goroutines.
package asynctimers
