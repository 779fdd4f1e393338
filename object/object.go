// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object defines the capability boundary between the vgtk engine
// and a native retained-mode toolkit. The engine only ever talks to the
// toolkit through the [Object] interface, the narrow container capability
// interfaces, and a [Registry] of constructible classes; it never assumes
// anything about how objects draw themselves.
//
// A driver package (see offscreen) provides the concrete object system.
package object

// HandlerID identifies one live signal connection on an [Object].
// It is returned by [Object.Connect] and consumed by [Object.Disconnect].
type HandlerID int64

// Event is delivered to a connected signal callback when the signal fires.
type Event struct {

	// Source is the object the signal was emitted on.
	Source Object

	// Args are the signal's payload arguments, excluding the source.
	Args []any
}

// Object is one native toolkit object. All capability interfaces in this
// package embed Object; the engine discovers what an object can do by
// type assertion, mirroring the downcast-based dispatch of the toolkits
// this boundary abstracts over.
type Object interface {

	// TypeName returns the native class identifier, e.g. "Label".
	TypeName() string

	// Property returns the current value of the named property.
	// It returns an error if the class has no such property.
	Property(name string) (any, error)

	// SetProperty sets the named property. It returns an error if the
	// class has no such property. A driver counts every call as a native
	// write, whether or not the value changed; callers are expected to
	// compare first.
	SetProperty(name string, value any) error

	// Connect attaches a callback to the named signal. The callback runs
	// synchronously whenever the signal is emitted. It returns an error
	// if the class has no such signal.
	Connect(signal string, fn func(*Event)) (HandlerID, error)

	// Disconnect removes a connection made with Connect. Disconnecting
	// an unknown or already-removed id is a no-op.
	Disconnect(id HandlerID)

	// Emit fires the named signal, invoking all connected callbacks in
	// connection order before returning.
	Emit(signal string, args ...any)

	// Destroy releases the native object. Further use is invalid apart
	// from Destroyed. Destroying twice is a no-op.
	Destroy()

	// Destroyed reports whether Destroy has been called.
	Destroyed() bool

	// OnDestroy registers a hook that runs when the object is destroyed.
	// Used by the engine's one-shot signal futures to resolve to a
	// cancellation outcome instead of hanging.
	OnDestroy(fn func())
}
