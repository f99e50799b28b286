// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package zap

import (
	std_time "time"

	std_zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cage_time "github.com/bradnelson/async-timers/internal/cage/time"
)

const TagKey = "logTag"

// Tag labels a log entry with the subsystem(s) it came from.
func Tag(tags ...string) zapcore.Field {
	return std_zap.Strings(TagKey, append([]string{}, tags...))
}

// Elapsed renders a duration in short human-readable form, e.g. "2 seconds".
func Elapsed(key string, d std_time.Duration) zapcore.Field {
	return std_zap.String(key, cage_time.DurationShort(d))
}
