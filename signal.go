// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"

	"github.com/bodil/vgtk/object"
)

// SignalOnce returns a channel that delivers the signal's first emission
// and then closes, disconnecting the handler. If the object is destroyed
// before the signal fires, the channel closes without a value. Call on
// the main loop goroutine; receive anywhere.
func SignalOnce(obj object.Object, signal string) (<-chan *object.Event, error) {
	ch := make(chan *object.Event, 1)
	done := false
	var id object.HandlerID
	id, err := obj.Connect(signal, func(e *object.Event) {
		if done {
			return
		}
		done = true
		obj.Disconnect(id)
		ch <- e
		close(ch)
	})
	if err != nil {
		return nil, err
	}
	obj.OnDestroy(func() {
		if done {
			return
		}
		done = true
		close(ch)
	})
	return ch, nil
}

// DialogResponse is the outcome of [RunDialog]: the response code, or
// Canceled if the dialog was destroyed without responding.
type DialogResponse struct {
	Code     int
	Canceled bool
}

// RunDialog shows a dialog and blocks until it responds or is destroyed.
// It must be called off the main loop goroutine, typically inside a
// [Defer] job; the dialog itself is wired up on the loop.
func RunDialog(loop *MainLoop, dialog object.Object) DialogResponse {
	out := make(chan DialogResponse, 1)
	loop.Invoke(func() {
		ch, err := SignalOnce(dialog, "response")
		if err != nil {
			panic(fmt.Sprintf("vgtk: %s has no response signal: %v", dialog.TypeName(), err))
		}
		if w, ok := dialog.(object.Widget); ok {
			w.Show()
		}
		go func() {
			e, ok := <-ch
			if !ok {
				out <- DialogResponse{Canceled: true}
				return
			}
			var code int
			if len(e.Args) > 0 {
				code, _ = e.Args[0].(int)
			}
			out <- DialogResponse{Code: code}
		}()
	})
	return <-out
}
