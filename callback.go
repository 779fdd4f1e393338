// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"log/slog"
	"reflect"
)

// Callback is how a child component reports events to its parent. The
// parent puts a Callback in the child's property bag with [BindCallback];
// when the child invokes Send during its own update, the value is
// translated into a parent message and delivered to the parent's scope.
//
// The zero Callback is valid and does nothing.
type Callback[T any] struct {
	fn func(T) Message
}

// BindCallback wraps a translation from the child's value type to the
// parent's message type. Call it inside the parent's View.
func BindCallback[T any](fn func(T) Message) Callback[T] {
	return Callback[T]{fn: fn}
}

// IsSet reports whether the callback is bound.
func (c Callback[T]) IsSet() bool { return c.fn != nil }

// Equal reports whether two callbacks wrap the same function. Components
// use it when comparing old and new property bags in Change.
func (c Callback[T]) Equal(other Callback[T]) bool {
	if c.fn == nil || other.fn == nil {
		return c.fn == nil && other.fn == nil
	}
	return reflect.ValueOf(c.fn).Pointer() == reflect.ValueOf(other.fn).Pointer()
}

// Send delivers a value to the parent. It must be called while the child
// component is being polled (inside Update, Change or a lifecycle
// method); the parent scope is resolved from the running task. Calling
// an unbound callback does nothing.
func (c Callback[T]) Send(value T) {
	if c.fn == nil {
		return
	}
	scope := currentParentScope()
	if scope == nil {
		slog.Error("callback invoked outside a component update; dropping")
		return
	}
	scope.Send(c.fn(value))
}
