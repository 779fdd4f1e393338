// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodil/vgtk/object"
	"github.com/bodil/vgtk/offscreen"
)

func TestOpenCreatesWindowOnActivate(t *testing.T) {
	r := newRig(t)
	appObj := offscreen.NewApplication(r.driver, "camp.lol.open")

	var err error
	r.app.Loop.Invoke(func() { err = Open[*counterModel](r.app, appObj) })
	r.run()
	require.NoError(t, err)
	assert.Empty(t, appObj.Windows())

	appObj.Activate()
	r.run()

	require.Len(t, appObj.Windows(), 1)
	win := appObj.Windows()[0].(*offscreen.Window)
	assert.True(t, win.Visible())
}

func TestRunQuitsWithCode(t *testing.T) {
	driver := offscreen.New()
	app := NewApp(driver.Registry)
	appObj := offscreen.NewApplication(driver, "camp.lol.run")

	go func() {
		app.Loop.Invoke(func() { app.Quit(4) })
	}()

	code := Run[*counterModel](app, func(*object.Registry) (object.Object, error) {
		return appObj, nil
	})
	assert.Equal(t, 4, code)
	assert.Len(t, appObj.Windows(), 1)
}

// appRootModel owns the application object itself, with a window child.
type appRootModel struct {
	appObj  *offscreen.Application
	mounted bool
}

func (m *appRootModel) Mounted() { m.mounted = true }

func (m *appRootModel) Update(Message) UpdateAction { return None() }

func (m *appRootModel) View() VNode {
	return WidgetWith("Application",
		func(*object.Registry) (object.Object, error) { return m.appObj, nil },
		Widget("Window", Widget("Label")),
	)
}

func TestRunApplicationTwoPhaseBootstrap(t *testing.T) {
	driver := offscreen.New()
	app := NewApp(driver.Registry)
	model := &appRootModel{appObj: offscreen.NewApplication(driver, "camp.lol.tp")}

	// The window child must not exist until activation; the application
	// object itself must. Activation happens inside RunApplication, so
	// observe the intermediate state from a hook on the activate signal,
	// connected before RunApplication's own handler.
	var windowsAtActivate int
	_, err := model.appObj.Connect("activate", func(*object.Event) {
		windowsAtActivate = len(model.appObj.Windows())
	})
	require.NoError(t, err)

	go func() {
		app.Loop.Invoke(func() { app.Quit(0) })
	}()
	code := RunApplication(app, model)

	assert.Equal(t, 0, code)
	assert.Equal(t, 0, windowsAtActivate)
	assert.Len(t, model.appObj.Windows(), 1)
}

func TestCurrentObjectAndWindowDuringPoll(t *testing.T) {
	r := newRig(t)
	model := &introspectModel{}
	task := r.mount(model)

	task.Scope().Send(struct{}{})
	r.run()

	assert.Same(t, task.object(), model.sawObject)
	assert.Same(t, task.object(), model.sawWindow)
	assert.Nil(t, CurrentObject())
}

type introspectModel struct {
	sawObject object.Object
	sawWindow object.Object
}

func (m *introspectModel) Update(Message) UpdateAction {
	m.sawObject = CurrentObject()
	m.sawWindow = CurrentWindow()
	return None()
}

func (m *introspectModel) View() VNode { return Widget("Window") }
