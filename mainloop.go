// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// MainLoop is the single goroutine on which all native objects and all
// component code run. Other goroutines interact with it only through
// [MainLoop.Invoke] and [MainLoop.Quit].
type MainLoop struct {
	mu    sync.Mutex
	queue []func()
	quit  bool
	code  int

	// wake has capacity one: a redundant wakeup is coalesced.
	wake chan struct{}

	goroutine atomic.Int64
}

// NewMainLoop returns a stopped loop. Run it with [MainLoop.Run], or
// drive it manually with [MainLoop.RunPending] in tests.
func NewMainLoop() *MainLoop {
	return &MainLoop{wake: make(chan struct{}, 1)}
}

// Invoke schedules f to run on the loop goroutine. Safe from any
// goroutine; callbacks run in scheduling order.
func (l *MainLoop) Invoke(f func()) {
	l.mu.Lock()
	l.queue = append(l.queue, f)
	l.mu.Unlock()
	l.notify()
}

// Quit makes [MainLoop.Run] return code once pending callbacks drain.
func (l *MainLoop) Quit(code int) {
	l.mu.Lock()
	l.quit = true
	l.code = code
	l.mu.Unlock()
	l.notify()
}

func (l *MainLoop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run adopts the calling goroutine as the loop goroutine and processes
// callbacks until [MainLoop.Quit], returning the quit code.
func (l *MainLoop) Run() int {
	l.adopt()
	for {
		l.RunPending()
		l.mu.Lock()
		quit, code := l.quit, l.code
		l.mu.Unlock()
		if quit {
			return code
		}
		<-l.wake
	}
}

// RunPending runs queued callbacks until the queue is empty, including
// callbacks scheduled by the callbacks themselves. Tests use it to step
// the loop without blocking in Run.
func (l *MainLoop) RunPending() {
	if l.goroutine.Load() == 0 {
		l.adopt()
	}
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		f := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()
		f()
	}
}

func (l *MainLoop) adopt() { l.goroutine.Store(goid.Get()) }

// assertLoopGoroutine panics when called off the loop goroutine. Engine
// state and native objects are unsynchronized; touching them elsewhere
// is a race, not a slowdown.
func (l *MainLoop) assertLoopGoroutine() {
	if g := l.goroutine.Load(); g != 0 && g != goid.Get() {
		panic("vgtk: engine state accessed outside the main loop goroutine")
	}
}
