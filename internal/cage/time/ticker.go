// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package time

import (
	std_time "time"
)

// Ticker is the injectable recurring suspension primitive. It delivers a
// value on C once per period. The underlying standard library ticker keeps
// at most one pending value, so a slow receiver observes coalesced ticks
// rather than a burst of stale ones.
type Ticker interface {
	Reset(std_time.Duration)
	Stop()
	C() <-chan std_time.Time
}

type RealTicker struct {
	t *std_time.Ticker
}

func (f *RealTicker) Reset(d std_time.Duration) {
	f.t.Reset(d)
}

func (f *RealTicker) Stop() {
	f.t.Stop()
}

func (f *RealTicker) C() <-chan std_time.Time {
	return f.t.C
}

var _ Ticker = (*RealTicker)(nil)
