// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgtk is a declarative UI engine over an opaque native toolkit.
//
// Applications are trees of components. A [Component] holds state,
// consumes messages through Update, and describes its native object tree
// as a descriptor tree through View. The engine keeps the live object
// tree in sync with the descriptors by reconciliation: it diffs the
// fresh tree against the live one and issues the minimal set of native
// calls.
//
// The native toolkit is abstracted behind the [object] package; the
// offscreen package provides an in-memory driver used by the tests and
// examples. All engine and component code runs on a single [MainLoop]
// goroutine; [Scope] handles and [Defer] jobs bridge in from other
// goroutines.
package vgtk

import (
	"fmt"
	"reflect"

	"github.com/bodil/vgtk/object"
)

// App ties a main loop to an object registry. One App per process is the
// normal arrangement.
type App struct {
	Loop     *MainLoop
	Registry *object.Registry
}

// NewApp returns an App with a fresh main loop.
func NewApp(registry *object.Registry) *App {
	return &App{Loop: NewMainLoop(), Registry: registry}
}

func (a *App) environment() *env {
	return &env{loop: a.Loop, registry: a.Registry}
}

// Quit stops the app's main loop with the given exit code.
func (a *App) Quit(code int) { a.Loop.Quit(code) }

// Open arranges for a top-level component of type C to be created when
// the application object activates. The component's view root must be a
// window; it is shown and the component mounted on activation. Call on
// the main loop goroutine.
func Open[C Component](a *App, app object.Object) error {
	_, err := app.Connect("activate", func(*object.Event) {
		comp := newComponent(reflect.TypeOf((*C)(nil)).Elem(), nil)
		task := newPartialTask(comp, nil, nil, a.environment()).finalise()
		win := task.object()
		if _, ok := win.(object.Window); !ok {
			panic(fmt.Sprintf("vgtk: %s: top-level view root must be a Window, not %s",
				componentName(comp), win.TypeName()))
		}
		if appl, ok := app.(object.Application); ok {
			if err := appl.AddWindow(win); err != nil {
				panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", win.TypeName(), app.TypeName(), err))
			}
		}
		if w, ok := win.(object.Widget); ok {
			w.Show()
		}
		task.start()
		task.sendSystem(mountedMsg{})
	})
	return err
}

// Run constructs the application object, opens a top-level component of
// type C on it, activates it, and runs the main loop to completion,
// returning the quit code.
func Run[C Component](a *App, construct Constructor) int {
	a.Loop.Invoke(func() {
		obj, err := construct(a.Registry)
		if err != nil {
			panic(fmt.Sprintf("vgtk: cannot construct application: %v", err))
		}
		app, ok := obj.(object.Application)
		if !ok {
			panic(fmt.Sprintf("vgtk: Run needs an Application object, not %s", obj.TypeName()))
		}
		if err := Open[C](a, app); err != nil {
			panic(fmt.Sprintf("vgtk: cannot connect to activate on %s: %v", app.TypeName(), err))
		}
		app.Activate()
	})
	return a.Loop.Run()
}

// RunApplication runs a component whose view root is the application
// object itself, with windows and actions as its children. The root is
// realized in two phases: the application object exists before
// activation, its children only after, because window creation is only
// legal once the toolkit has activated.
func RunApplication(a *App, comp Component) int {
	a.Loop.Invoke(func() {
		partial := newPartialTask(comp, nil, nil, a.environment())
		app, ok := partial.object().(object.Application)
		if !ok {
			panic(fmt.Sprintf("vgtk: RunApplication: view root must be an Application, not %s",
				partial.object().TypeName()))
		}
		started := false
		_, err := app.Connect("activate", func(*object.Event) {
			if started {
				return
			}
			started = true
			task := partial.finalise()
			task.start()
			task.sendSystem(mountedMsg{})
		})
		if err != nil {
			panic(fmt.Sprintf("vgtk: cannot connect to activate on %s: %v", app.TypeName(), err))
		}
		app.Activate()
	})
	return a.Loop.Run()
}
