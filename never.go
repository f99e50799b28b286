// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package asynctimers

import (
	std_time "time"
)

// Never returns a channel on which no value is ever delivered.
//
// It is the uniform representation of "no pending event": a receive from a
// nil channel blocks forever, and a select branch reading from one is never
// ready. Unlike parking on time.After with a huge duration, a nil channel
// registers no wake source at all, so it costs nothing no matter how many
// select iterations reuse it.
//
// Receiving from Never outside a select, or in a select whose other branches
// can also never become ready, blocks the calling goroutine forever. Always
// race it against at least one eventually-ready source.
func Never() <-chan std_time.Time {
	return nil
}
