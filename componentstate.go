// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"reflect"

	"github.com/bodil/vgtk/object"
)

// componentState is the live counterpart of a [VComponent]: a running
// sub-component task and the root object it manages. The parent's
// reconciliation never descends into the sub-tree; it only forwards
// property bags and lifecycle messages to the task.
type componentState struct {
	model reflect.Type
	obj   object.Object
	task  *Task
}

func buildComponentState(spec *VComponent, parent object.Object, scope *Scope) *componentState {
	comp := newComponent(spec.Model, spec.Props)
	task := newTask(comp, parent, scope)
	obj := task.object()
	for _, p := range spec.ChildProps {
		p.Apply(obj, parent, true)
	}
	task.start()
	task.sendSystem(mountedMsg{})
	return &componentState{model: spec.Model, obj: obj, task: task}
}

func (s *componentState) object() object.Object { return s.obj }

// patch keeps the running instance when the model type matches,
// forwarding the new property bag; a different model type means a
// different component, so the instance is told to unmount and the
// parent reconstructs.
func (s *componentState) patch(node VNode, parent object.Object, scope *Scope) bool {
	spec, ok := node.(*VComponent)
	if !ok {
		return false
	}
	if s.model != spec.Model {
		s.task.sendSystem(unmountedMsg{})
		return false
	}
	for _, p := range spec.ChildProps {
		p.Apply(s.obj, parent, false)
	}
	s.task.sendSystem(propsMsg{props: spec.Props})
	return true
}

func (s *componentState) unmount() {
	s.task.sendSystem(unmountedMsg{})
}
