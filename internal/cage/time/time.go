// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package time

import (
	std_time "time"

	"github.com/hako/durafmt"
)

// DurationShort returns d as a human-readable string with only its most
// significant unit, e.g. "2 seconds".
func DurationShort(d std_time.Duration) string {
	// Workaround for durafmt panic caused by lack of support for microseconds, e.g. when a
	// tick is observed almost immediately after scheduling.
	if d < std_time.Millisecond {
		d = 0
	}
	return durafmt.ParseShort(d).String()
}
