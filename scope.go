// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrTaskTerminated is returned by [Scope.TrySend] when the component
// task behind the scope has shut down.
var ErrTaskTerminated = errors.New("vgtk: component task has terminated")

// Scope is a handle for sending messages to one component. Scopes are
// safe to use from any goroutine, and to hold after the component is
// gone: sends to a dead component are dropped.
//
// A scope can be muted. The engine mutes a component's whole scope chain
// while patching its object tree, so that property writes which make the
// toolkit echo signals back (setting a check button's state fires its
// toggled handler) do not feed the component its own render as input.
// A muted send is silently discarded; system lifecycle messages travel a
// separate path and are never muted.
type Scope struct {
	name  string
	muted *atomic.Int32
	task  *Task
}

func newScope(name string, task *Task) *Scope {
	return &Scope{name: name, muted: &atomic.Int32{}, task: task}
}

// inherit derives a child component's scope. The mute counter is shared:
// muting the parent mutes every descendant, which is what makes patching
// a subtree echo-proof regardless of which component's handlers fire.
func (s *Scope) inherit(name string, task *Task) *Scope {
	return &Scope{name: name, muted: s.muted, task: task}
}

// Name returns the owning component's name, for diagnostics.
func (s *Scope) Name() string { return s.name }

// Muted reports whether sends are currently suppressed.
func (s *Scope) Muted() bool { return s.muted.Load() > 0 }

func (s *Scope) mute() { s.muted.Add(1) }

// unmute decrements the mute counter, saturating at zero.
func (s *Scope) unmute() {
	for {
		v := s.muted.Load()
		if v == 0 {
			return
		}
		if s.muted.CompareAndSwap(v, v-1) {
			return
		}
	}
}

// Send delivers a message to the component, dropping it silently if the
// scope is muted or the component has terminated.
func (s *Scope) Send(msg Message) {
	slog.Debug("scope send", "scope", s.name, "muted", s.Muted())
	if s.Muted() {
		return
	}
	if !s.task.enqueue(updateMsg{msg: msg}) {
		slog.Debug("send to terminated component", "scope", s.name)
	}
}

// TrySend is [Send] that reports delivery failure. A muted drop is not a
// failure; only a terminated component is.
func (s *Scope) TrySend(msg Message) error {
	slog.Debug("scope try_send", "scope", s.name, "muted", s.Muted())
	if s.Muted() {
		return nil
	}
	if !s.task.enqueue(updateMsg{msg: msg}) {
		return ErrTaskTerminated
	}
	return nil
}

// Close abandons the component: the inbox stops accepting messages and
// the task shuts down abnormally on its next poll, without unmounting.
// This is the moral equivalent of every handle to the component going
// away at once.
func (s *Scope) Close() {
	s.task.queue.close()
	s.task.wake()
}
