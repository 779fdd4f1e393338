// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/bodil/vgtk/object"
)

// VHandler is one signal handler in a widget descriptor. Handlers are
// identified across renders by the pair (signal name, ID); an unchanged
// pair keeps the live native connection, so handlers declared at the same
// source location survive re-renders without churn.
type VHandler struct {
	Name string

	// ID distinguishes handlers on the same signal. [OnSignal] derives it
	// from the caller's source location.
	ID string

	// Connect makes the native connection, routing emissions into the
	// owning component's scope.
	Connect func(obj object.Object, scope *Scope) (object.HandlerID, error)
}

func (h VHandler) applyTo(w *VWidget) { w.Handlers = append(w.Handlers, h) }

// OnSignal declares a handler for the named signal. fn translates the
// native event into a component message, which is enqueued on the owning
// component's scope; the native callback returns immediately. The handler
// identity is derived from the call site, so a handler declared on the
// same source line keeps its connection across renders.
func OnSignal(signal string, fn func(*object.Event) Message) VHandler {
	return OnSignalID(signal, callerID(2), fn)
}

// OnSignalID is [OnSignal] with an explicit handler identity, for
// handlers declared in loops or helpers where the call site is not
// distinct per handler.
func OnSignalID(signal, id string, fn func(*object.Event) Message) VHandler {
	return VHandler{
		Name: signal,
		ID:   id,
		Connect: func(obj object.Object, scope *Scope) (object.HandlerID, error) {
			return obj.Connect(signal, func(e *object.Event) {
				scope.Send(fn(e))
			})
		},
	}
}

// callerID returns a "dir/file.go:line" identity for the caller at the
// given stack depth. One path element of directory is enough to keep
// same-named files in different packages distinct.
func callerID(level int) string {
	_, file, line, ok := runtime.Caller(level)
	if !ok {
		return "callerID: cannot determine caller"
	}
	return fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(file)), filepath.Base(file), line)
}
