// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import "github.com/bodil/vgtk/object"

// localContext is what "the current component" means while a task is
// being polled: the scope of its parent (for callbacks) and its root
// object (for dialogs and window lookups). Only ever touched on the main
// loop goroutine, so a package variable is enough; nested polls restore
// the previous value.
type localContext struct {
	parentScope *Scope
	current     object.Object
}

var currentContext localContext

func pushLocalContext(t *Task) func() {
	prev := currentContext
	var obj object.Object
	if t.ui != nil {
		obj = t.ui.object()
	}
	currentContext = localContext{parentScope: t.parentScope, current: obj}
	return func() { currentContext = prev }
}

func currentParentScope() *Scope { return currentContext.parentScope }

// CurrentObject returns the root object of the component currently being
// polled, or nil outside a poll or after the object is destroyed.
func CurrentObject() object.Object {
	if obj := currentContext.current; obj != nil && !obj.Destroyed() {
		return obj
	}
	return nil
}

// CurrentWindow resolves a window for the component currently being
// polled: its own root if that is a window, or the active window when
// the root is an application. Used to parent dialogs.
func CurrentWindow() object.Object {
	obj := CurrentObject()
	if obj == nil {
		return nil
	}
	if _, ok := obj.(object.Window); ok {
		return obj
	}
	if app, ok := obj.(object.Application); ok {
		return app.ActiveWindow()
	}
	return nil
}
