// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"log/slog"
	"reflect"

	"github.com/jinzhu/copier"
)

// Message is a component's message type. Components define their own
// concrete message types and switch on them in Update.
type Message = any

// Job is deferred work returned from an update via [Defer]. It runs on
// its own goroutine and its resulting message is delivered back to the
// component through the main loop.
type Job func() Message

// Component is a self-contained unit of state: it consumes messages
// through Update and describes its native object tree through View.
// All methods are called on the main loop goroutine only.
type Component interface {

	// Update consumes one message and reports what should happen next.
	Update(msg Message) UpdateAction

	// View renders the component's current state as a fresh descriptor
	// tree. It must not mutate state.
	View() VNode
}

// Creator is implemented by components that want to initialize from the
// property bag their parent declared. Without it, exported fields of the
// bag are copied onto matching exported fields of the component.
type Creator interface {
	Create(props any)
}

// Changer is implemented by components that can receive a new property
// bag from their parent on re-render. A component that is used as a
// sub-component and does not implement Changer is a programming error,
// caught when the first new bag arrives.
type Changer interface {
	Change(props any) UpdateAction
}

// Mounter is implemented by components that want to know when their
// object tree has been realized.
type Mounter interface {
	Mounted()
}

// Unmounter is implemented by components that want to know when their
// object tree has been torn down. The native objects are already gone
// when it runs.
type Unmounter interface {
	Unmounted()
}

type actionKind int

const (
	actionNone actionKind = iota
	actionRender
	actionDefer
)

// UpdateAction is the outcome of an Update or Change: do nothing,
// re-render, or run a deferred job.
type UpdateAction struct {
	kind actionKind
	job  Job
}

// None reports that the message changed nothing visible.
func None() UpdateAction { return UpdateAction{kind: actionNone} }

// Render requests a re-render once the current message batch drains.
func Render() UpdateAction { return UpdateAction{kind: actionRender} }

// Defer schedules a job on its own goroutine. The job's message is
// delivered to the component when it completes.
func Defer(job Job) UpdateAction { return UpdateAction{kind: actionDefer, job: job} }

// newComponent instantiates a component model and feeds it its initial
// property bag. model may be the struct type or a pointer to it.
func newComponent(model reflect.Type, props any) Component {
	if model.Kind() == reflect.Pointer {
		model = model.Elem()
	}
	comp, ok := reflect.New(model).Interface().(Component)
	if !ok {
		panic("vgtk: " + model.String() + " does not implement Component")
	}
	if c, ok := comp.(Creator); ok {
		c.Create(props)
		return comp
	}
	if props != nil {
		if err := copier.Copy(comp, props); err != nil {
			slog.Error("cannot copy props into component", "component", model.String(), "err", err)
		}
	}
	return comp
}

// componentName returns the component's model type name for diagnostics.
func componentName(comp Component) string {
	t := reflect.TypeOf(comp)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
