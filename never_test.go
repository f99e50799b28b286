// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package asynctimers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	asynctimers "github.com/bradnelson/async-timers"
)

func TestNeverIsNil(t *testing.T) {
	assert.Nil(t, asynctimers.Never())
}

func TestNeverAlwaysLosesRaces(t *testing.T) {
	ready := make(chan time.Time, 1)
	ready <- time.Now()

	for n := 0; n < 3; n++ {
		select {
		case <-asynctimers.Never():
			t.Fatal("Never delivered a value")
		case tm := <-ready:
			ready <- tm
		}
	}
}
