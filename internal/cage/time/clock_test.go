// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package time_test

import (
	"testing"
	"time"

	cage_time "github.com/bradnelson/async-timers/internal/cage/time"
)

type FixedClock struct {
	cage_time.RealClock // implement non-SUT behaviors to satisfy Clock interface

	Month                time.Month
	Year, Day, Hour, Min int
}

func (f FixedClock) Now() time.Time {
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Min, 0, 0, time.UTC)
}

func TestDatetime(t *testing.T) {
	var c FixedClock
	var expected string
	var actual string

	c = FixedClock{Year: 2015, Month: 1, Day: 2, Hour: 3, Min: 4}
	expected = "20150102-0304"
	actual = cage_time.Datetime(c)
	if expected != actual {
		t.Errorf("expected %s, got %s", expected, actual)
	}

	c = FixedClock{Year: 2015, Month: 11, Day: 12, Hour: 13, Min: 14}
	expected = "20151112-1314"
	actual = cage_time.Datetime(c)
	if expected != actual {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func TestRealClockNowIsUTC(t *testing.T) {
	now := cage_time.RealClock{}.Now()
	if now.Location() != time.UTC {
		t.Errorf("expected UTC location, got %s", now.Location())
	}
}

func TestRealTimerFires(t *testing.T) {
	timer := cage_time.RealClock{}.NewTimer(10 * time.Millisecond)

	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("timer did not fire within 1s")
	}
}

func TestRealTickerRepeats(t *testing.T) {
	ticker := cage_time.RealClock{}.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for n := 0; n < 2; n++ {
		select {
		case <-ticker.C():
		case <-time.After(time.Second):
			t.Fatalf("ticker did not fire (tick %d) within 1s", n+1)
		}
	}
}

func TestDurationShort(t *testing.T) {
	if actual := cage_time.DurationShort(2 * time.Second); actual != "2 seconds" {
		t.Errorf("expected 2 seconds, got %s", actual)
	}

	// Sub-millisecond inputs are clamped to zero instead of panicking.
	if actual := cage_time.DurationShort(500 * time.Microsecond); actual == "" {
		t.Error("expected non-empty string for sub-millisecond duration")
	}
}
