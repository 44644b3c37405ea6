// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/korugl/core"
)

func TestNewTime(t *testing.T) {
	c := qt.New(t)

	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 50, EventPollDelay: 10})
	defer tm.Stop()
	c.Assert(tm.Fps(), qt.Equals, 50)
	c.Assert(tm.FrameInterval(), qt.Equals, 20*time.Millisecond)

	select {
	case <-tm.FpsTicker().C:
	case <-time.After(time.Second):
		t.Fatal("fps ticker did not tick")
	}
	select {
	case <-tm.EventTicker().C:
	case <-time.After(time.Second):
		t.Fatal("event ticker did not tick")
	}
}

func TestNewTimeUncapped(t *testing.T) {
	c := qt.New(t)
	tm := core.NewTime(core.TimeConfiguration{})
	defer tm.Stop()
	c.Assert(tm.Fps(), qt.Equals, 0)
	c.Assert(tm.FrameInterval(), qt.Equals, time.Nanosecond)
}
