// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMuteCounterIsSharedWithInheritedScopes(t *testing.T) {
	r := newRig(t)
	task := r.mount(&counterModel{})
	parent := task.Scope()
	child := parent.inherit("child", task)

	require.False(t, parent.Muted())
	require.False(t, child.Muted())

	parent.mute()
	assert.True(t, parent.Muted())
	assert.True(t, child.Muted())

	child.unmute()
	assert.False(t, parent.Muted())
}

func TestUnmuteSaturatesAtZero(t *testing.T) {
	r := newRig(t)
	task := r.mount(&counterModel{})
	scope := task.Scope()

	scope.unmute()
	scope.unmute()
	assert.False(t, scope.Muted())

	scope.mute()
	assert.True(t, scope.Muted())
	scope.unmute()
	assert.False(t, scope.Muted())
}

func TestMutedSendIsDropped(t *testing.T) {
	r := newRig(t)
	model := &counterModel{}
	task := r.mount(model)
	scope := task.Scope()

	scope.mute()
	scope.Send(incr{})
	require.NoError(t, scope.TrySend(incr{}))
	scope.unmute()
	r.run()

	assert.Equal(t, 0, model.Counter)
}

func TestTrySendAfterUnmount(t *testing.T) {
	r := newRig(t)
	task := r.mount(&counterModel{})

	require.NoError(t, task.Scope().TrySend(incr{}))
	r.run()

	task.sendSystem(unmountedMsg{})
	r.run()

	assert.ErrorIs(t, task.Scope().TrySend(incr{}), ErrTaskTerminated)
}

func TestScopeName(t *testing.T) {
	r := newRig(t)
	task := r.mount(&counterModel{})
	assert.Equal(t, "vgtk.counterModel", task.Scope().Name())
}
