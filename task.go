// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bodil/vgtk/object"
)

// componentMessage is the task inbox's message union: user messages from
// scopes, and system lifecycle messages from the engine. System messages
// bypass scope muting.
type componentMessage interface{ componentMessage() }

type updateMsg struct{ msg Message }
type propsMsg struct{ props any }
type mountedMsg struct{}
type unmountedMsg struct{}

func (updateMsg) componentMessage()    {}
func (propsMsg) componentMessage()     {}
func (mountedMsg) componentMessage()   {}
func (unmountedMsg) componentMessage() {}

// TaskState is a component task's lifecycle position.
type TaskState int

const (
	// TaskConstructed: object tree realized, Mounted not yet delivered.
	TaskConstructed TaskState = iota

	// TaskMounted: live and processing messages.
	TaskMounted

	// TaskUnmounted: object tree torn down, task finished.
	TaskUnmounted
)

// env is the per-application engine context shared by every task.
type env struct {
	loop     *MainLoop
	registry *object.Registry
}

func (s *Scope) registry() *object.Registry { return s.task.env.registry }

// Task runs one component: it owns the instance, its inbox, and the live
// state of its object tree. Apart from the inbox, a Task is confined to
// the main loop goroutine; wakeups from elsewhere arrive as scheduled
// polls through [MainLoop.Invoke].
type Task struct {
	env         *env
	comp        Component
	scope       *Scope
	parentScope *Scope
	ui          state
	queue       *inbox

	scheduled atomic.Bool
	state     TaskState
	done      bool
}

// partialTask is a task whose root object is realized but whose children
// are not. The application bootstrap needs this split: the toolkit's
// root object must exist before activation, but windows may only be
// created in response to it.
type partialTask struct {
	task *Task
	view VNode
}

func newPartialTask(comp Component, parent object.Object, parentScope *Scope, e *env) *partialTask {
	t := &Task{env: e, comp: comp, queue: &inbox{}, parentScope: parentScope, state: TaskConstructed}
	name := componentName(comp)
	if parentScope != nil {
		t.scope = parentScope.inherit(name, t)
	} else {
		t.scope = newScope(name, t)
	}
	view := comp.View()
	w, ok := view.(*VWidget)
	if !ok {
		panic(fmt.Sprintf("vgtk: %s: view root must be a widget node", name))
	}
	t.ui = buildRootObjectState(w, parent, t.scope)
	return &partialTask{task: t, view: view}
}

func (p *partialTask) object() object.Object { return p.task.object() }

// finalise realizes the root's children and returns the completed task.
func (p *partialTask) finalise() *Task {
	p.task.ui.(*objectState).buildChildren(p.view.(*VWidget), p.task.scope)
	return p.task
}

// newTask builds a complete sub-component task. The engine context is
// taken from the parent scope.
func newTask(comp Component, parent object.Object, parentScope *Scope) *Task {
	return newPartialTask(comp, parent, parentScope, parentScope.task.env).finalise()
}

func (t *Task) object() object.Object { return t.ui.object() }

// Scope returns the task's message handle.
func (t *Task) Scope() *Scope { return t.scope }

// State returns the task's lifecycle position.
func (t *Task) State() TaskState { return t.state }

// start schedules the task's first poll.
func (t *Task) start() { t.wake() }

// enqueue delivers a user message, reporting false if the inbox is
// closed. Any goroutine.
func (t *Task) enqueue(m componentMessage) bool {
	if !t.queue.push(m) {
		return false
	}
	t.wake()
	return true
}

// sendSystem delivers a lifecycle message, ignoring mute and logging a
// drop if the task is already gone. Any goroutine.
func (t *Task) sendSystem(m componentMessage) {
	if !t.queue.push(m) {
		slog.Debug("lifecycle message for terminated component dropped",
			"component", t.scope.Name(), "message", fmt.Sprintf("%T", m))
		return
	}
	t.wake()
}

// wake schedules a poll unless one is already pending.
func (t *Task) wake() {
	if t.scheduled.CompareAndSwap(false, true) {
		t.env.loop.Invoke(t.poll)
	}
}

// poll drains the inbox, applying every queued message to the component,
// then re-renders at most once if any of them asked for it. The render
// patches the live tree under a muted scope so that toolkit echo signals
// from our own property writes never come back as input.
func (t *Task) poll() {
	t.env.loop.assertLoopGoroutine()
	t.scheduled.Store(false)
	if t.done {
		return
	}
	restore := pushLocalContext(t)
	defer restore()

	render := false
	for {
		msg, ok := t.queue.pop()
		if !ok {
			if t.queue.isClosed() {
				// Every handle to the component is gone without an
				// orderly unmount. Nothing left to tear down safely;
				// just stop.
				slog.Debug("component terminating: all handles dropped", "component", t.scope.Name())
				t.done = true
				return
			}
			break
		}
		switch m := msg.(type) {
		case updateMsg:
			t.applyAction(t.comp.Update(m.msg), &render)
		case propsMsg:
			ch, ok := t.comp.(Changer)
			if !ok {
				panic(fmt.Sprintf("vgtk: %s is used as a sub-component but does not implement Changer",
					t.scope.Name()))
			}
			t.applyAction(ch.Change(m.props), &render)
		case mountedMsg:
			slog.Debug("component mounted", "component", t.scope.Name())
			t.state = TaskMounted
			if mounter, ok := t.comp.(Mounter); ok {
				mounter.Mounted()
			}
		case unmountedMsg:
			if t.ui != nil {
				t.ui.unmount()
				t.ui = nil
			}
			if unmounter, ok := t.comp.(Unmounter); ok {
				unmounter.Unmounted()
			}
			slog.Debug("component unmounted", "component", t.scope.Name())
			t.state = TaskUnmounted
			t.done = true
			t.queue.close()
			return
		}
	}

	if render {
		if t.ui == nil {
			slog.Debug("component rendering without a UI; terminating", "component", t.scope.Name())
			t.done = true
			return
		}
		view := t.comp.View()
		t.scope.mute()
		ok := t.ui.patch(view, nil, t.scope)
		t.scope.unmute()
		if !ok {
			panic(fmt.Sprintf("vgtk: %s: root widget class may not change between renders", t.scope.Name()))
		}
	}
}

func (t *Task) applyAction(a UpdateAction, render *bool) {
	switch a.kind {
	case actionRender:
		*render = true
	case actionDefer:
		t.runJob(a.job)
	}
}

// runJob runs a deferred job on its own goroutine and routes its message
// back through the main loop into the component's scope.
func (t *Task) runJob(job Job) {
	scope := t.scope
	loop := t.env.loop
	go func() {
		msg := job()
		loop.Invoke(func() {
			scope.Send(msg)
		})
	}()
}
