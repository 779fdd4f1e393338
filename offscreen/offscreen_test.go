// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodil/vgtk/object"
)

func TestRegistryConstructsKnownClasses(t *testing.T) {
	d := New()
	for _, name := range []string{"Label", "Button", "Box", "Window", "Dialog", "Menu"} {
		obj, err := d.Registry.Construct(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, obj.TypeName())
	}

	_, err := d.Registry.Construct("Application")
	assert.Error(t, err)
}

func TestPropertyReadWrite(t *testing.T) {
	d := New()
	label := d.NewLabel()

	v, err := label.Property("label")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, label.SetProperty("label", "hello"))
	v, _ = label.Property("label")
	assert.Equal(t, "hello", v)

	_, err = label.Property("bogus")
	assert.Error(t, err)
	assert.Error(t, label.SetProperty("bogus", 1))
}

func TestStatsCountNativeCalls(t *testing.T) {
	d := New()
	button := d.NewButton()
	assert.Equal(t, 1, d.Stats.Constructs)

	require.NoError(t, button.SetProperty("label", "x"))
	assert.Equal(t, 1, d.Stats.PropertyWrites)

	id, err := button.Connect("clicked", func(*object.Event) {})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Stats.Connects)

	button.Disconnect(id)
	assert.Equal(t, 1, d.Stats.Disconnects)

	button.Destroy()
	assert.Equal(t, 1, d.Stats.Destroys)

	d.Stats.Reset()
	assert.Zero(t, d.Stats.Constructs)
}

func TestEmitReachesConnectedHandlers(t *testing.T) {
	d := New()
	button := d.NewButton()

	var clicks int
	_, err := button.Connect("clicked", func(e *object.Event) {
		assert.Same(t, button, e.Source.(*Button))
		clicks++
	})
	require.NoError(t, err)

	button.Click()
	button.Click()
	assert.Equal(t, 2, clicks)

	_, err = button.Connect("no-such-signal", func(*object.Event) {})
	assert.Error(t, err)
}

func TestCheckButtonEchoesToggled(t *testing.T) {
	d := New()
	check := d.NewCheckButton()

	var toggles int
	_, err := check.Connect("toggled", func(*object.Event) { toggles++ })
	require.NoError(t, err)

	// A write that changes the value echoes; a no-op write does not.
	require.NoError(t, check.SetProperty("active", true))
	assert.Equal(t, 1, toggles)
	require.NoError(t, check.SetProperty("active", true))
	assert.Equal(t, 1, toggles)

	check.Toggle()
	assert.Equal(t, 2, toggles)
	v, _ := check.Property("active")
	assert.Equal(t, false, v)
}

func TestDestroyEmitsDestroyAndRunsHooks(t *testing.T) {
	d := New()
	label := d.NewLabel()

	var signal, hook bool
	_, err := label.Connect("destroy", func(*object.Event) { signal = true })
	require.NoError(t, err)
	label.OnDestroy(func() { hook = true })

	label.Destroy()
	assert.True(t, signal)
	assert.True(t, hook)
	assert.True(t, label.Destroyed())

	// Idempotent.
	label.Destroy()
	assert.Equal(t, 1, d.Stats.Destroys)
}

func TestContainerChildProperties(t *testing.T) {
	d := New()
	box := d.NewBox()
	label := d.NewLabel()
	require.NoError(t, box.Add(label))

	v, err := box.ChildProperty(label, "expand")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	require.NoError(t, box.SetChildProperty(label, "expand", true))
	v, _ = box.ChildProperty(label, "expand")
	assert.Equal(t, true, v)

	_, err = box.ChildProperty(label, "bogus")
	assert.Error(t, err)

	other := d.NewLabel()
	_, err = box.ChildProperty(other, "expand")
	assert.Error(t, err)

	// ListBox has no child properties at all.
	list := d.NewListBox()
	require.NoError(t, list.Add(label))
	_, err = list.ChildProperty(label, "anything")
	assert.Error(t, err)
}

func TestBinRefusesSecondChild(t *testing.T) {
	d := New()
	frame := d.NewFrame()
	require.NoError(t, frame.Add(d.NewLabel()))
	assert.Error(t, frame.Add(d.NewLabel()))
}

func TestWindowChildAndTitlebar(t *testing.T) {
	d := New()
	win := d.NewWindow()
	bar := d.NewHeaderBar()
	body := d.NewBox()

	win.SetTitlebar(bar)
	require.NoError(t, win.Add(body))
	assert.Error(t, win.Add(d.NewBox()))

	assert.Same(t, bar, win.Titlebar().(*HeaderBar))
	assert.Same(t, body, win.Child().(*Box))

	require.NoError(t, win.Remove(body))
	assert.Nil(t, win.Child())
}

func TestApplicationWindowsAndActions(t *testing.T) {
	d := New()
	app := NewApplication(d, "camp.lol.offscreen")

	win := d.NewWindow()
	require.NoError(t, app.AddWindow(win))
	assert.Same(t, win, app.ActiveWindow().(*Window))

	assert.Error(t, app.AddWindow(d.NewLabel()))

	action := d.NewSimpleAction()
	require.NoError(t, action.SetProperty("name", "quit"))
	require.NoError(t, app.AddAction(action))
	assert.Same(t, action, app.Action("quit").(*SimpleAction))

	require.NoError(t, app.RemoveAction("quit"))
	assert.Error(t, app.RemoveAction("quit"))

	require.NoError(t, app.RemoveWindow(win))
	assert.Nil(t, app.ActiveWindow())
}
