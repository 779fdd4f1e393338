// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodil/vgtk/offscreen"
)

func TestSignalOnceResolvesAndDisconnects(t *testing.T) {
	driver := offscreen.New()
	button := driver.NewButton()

	ch, err := SignalOnce(button, "clicked")
	require.NoError(t, err)

	button.Click()
	e, ok := <-ch
	require.True(t, ok)
	assert.Same(t, button, e.Source.(*offscreen.Button))

	// Second emission goes nowhere; the channel is closed.
	button.Click()
	_, ok = <-ch
	assert.False(t, ok)
	assert.Equal(t, 1, driver.Stats.Disconnects)
}

func TestSignalOnceCancelledByDestroy(t *testing.T) {
	driver := offscreen.New()
	button := driver.NewButton()

	ch, err := SignalOnce(button, "clicked")
	require.NoError(t, err)

	button.Destroy()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestSignalOnceUnknownSignal(t *testing.T) {
	driver := offscreen.New()
	button := driver.NewButton()

	_, err := SignalOnce(button, "no-such-signal")
	assert.Error(t, err)
}

func TestRunDialogResponse(t *testing.T) {
	r := newRig(t)
	dialog := r.driver.NewDialog()

	res := make(chan DialogResponse, 1)
	go func() { res <- RunDialog(r.app.Loop, dialog) }()

	r.waitFor(func() bool { return dialog.Visible() })
	dialog.Respond(7)

	got := <-res
	assert.False(t, got.Canceled)
	assert.Equal(t, 7, got.Code)
}

func TestRunDialogCancelledByDestroy(t *testing.T) {
	r := newRig(t)
	dialog := r.driver.NewDialog()

	res := make(chan DialogResponse, 1)
	go func() { res <- RunDialog(r.app.Loop, dialog) }()

	r.waitFor(func() bool { return dialog.Visible() })
	dialog.Destroy()

	got := <-res
	assert.True(t, got.Canceled)
}
