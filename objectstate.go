// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"

	"github.com/bodil/vgtk/object"
)

type handlerKey struct {
	name string
	id   string
}

// objectState is the live counterpart of a [VWidget]: the native object,
// the signal connections held for it, and the live states of its
// children in descriptor order.
type objectState struct {
	obj      object.Object
	handlers map[handlerKey]object.HandlerID
	children []state
}

func (s *objectState) object() object.Object { return s.obj }

func constructObject(spec *VWidget, scope *Scope) object.Object {
	if spec.Constructor != nil {
		obj, err := spec.Constructor(scope.registry())
		if err != nil {
			panic(fmt.Sprintf("vgtk: cannot construct %s: %v", spec.Type, err))
		}
		return obj
	}
	obj, err := scope.registry().Construct(spec.Type)
	if err != nil {
		panic(fmt.Sprintf("vgtk: cannot construct %s: %v", spec.Type, err))
	}
	return obj
}

// buildRootObjectState realizes a widget descriptor without its
// children: construct, force-apply properties, connect handlers. The
// split from buildChildren exists for the application bootstrap, which
// must hold a realized but childless root until the toolkit activates.
func buildRootObjectState(spec *VWidget, parent object.Object, scope *Scope) *objectState {
	obj := constructObject(spec, scope)
	for _, p := range spec.Properties {
		p.Apply(obj, parent, true)
	}
	handlers := make(map[handlerKey]object.HandlerID, len(spec.Handlers))
	for _, h := range spec.Handlers {
		id, err := h.Connect(obj, scope)
		if err != nil {
			panic(fmt.Sprintf("vgtk: cannot connect signal %q on %s: %v", h.Name, spec.Type, err))
		}
		handlers[handlerKey{h.Name, h.ID}] = id
	}
	return &objectState{obj: obj, handlers: handlers}
}

// buildChildren realizes and attaches the descriptor's children, then
// shows the object.
func (s *objectState) buildChildren(spec *VWidget, scope *Scope) {
	total := len(spec.Children)
	for i, childSpec := range spec.Children {
		child := buildState(childSpec, s.obj, scope)
		addChild(s.obj, i, total, childSpec, child.object())
		s.children = append(s.children, child)
	}
	if w, ok := s.obj.(object.Widget); ok {
		w.Show()
	}
}

func buildObjectState(spec *VWidget, parent object.Object, scope *Scope) *objectState {
	s := buildRootObjectState(spec, parent, scope)
	s.buildChildren(spec, scope)
	return s
}

// patch reconciles the live node against a fresh descriptor. Children
// are matched by position: the first incompatible child makes that index
// and everything after it reconstruct; live children past the end of the
// descriptor are removed; descriptor children past the end of the live
// list are appended. Then the node's own properties and handlers are
// reconciled.
func (s *objectState) patch(node VNode, parent object.Object, scope *Scope) bool {
	spec, ok := node.(*VWidget)
	if !ok {
		return false
	}
	if s.obj.TypeName() != spec.Type {
		return false
	}

	reconstructFrom := -1
	removeFrom := -1
	var appended []state

	length := len(s.children)
	if len(spec.Children) > length {
		length = len(spec.Children)
	}
loop:
	for i := 0; i < length; i++ {
		var live state
		if i < len(s.children) {
			live = s.children[i]
		}
		var childSpec VNode
		if i < len(spec.Children) {
			childSpec = spec.Children[i]
		}
		switch {
		case live != nil && childSpec != nil:
			if !live.patch(childSpec, s.obj, scope) {
				reconstructFrom = i
				break loop
			}
		case live != nil:
			removeFrom = i
			break loop
		default:
			child := buildState(childSpec, s.obj, scope)
			addChild(s.obj, i, len(spec.Children), childSpec, child.object())
			appended = append(appended, child)
		}
	}

	if reconstructFrom >= 0 {
		if _, ok := s.obj.(object.Window); ok && reconstructFrom == 0 && len(s.children) == 2 {
			panic(fmt.Sprintf("vgtk: cannot replace the title bar widget of a realized %s", s.obj.TypeName()))
		}
		for _, child := range s.children[reconstructFrom:] {
			removeChild(s.obj, child.object())
			child.unmount()
		}
		s.children = s.children[:reconstructFrom]
		total := len(spec.Children)
		for i := reconstructFrom; i < total; i++ {
			childSpec := spec.Children[i]
			child := buildState(childSpec, s.obj, scope)
			addChild(s.obj, i, total, childSpec, child.object())
			if w, ok := child.object().(object.Widget); ok {
				w.Show()
			}
			s.children = append(s.children, child)
		}
	} else {
		if removeFrom >= 0 {
			if _, ok := s.obj.(object.Window); ok && removeFrom == 1 && len(s.children) == 2 {
				panic(fmt.Sprintf("vgtk: cannot remove the main child of a %s holding a title bar", s.obj.TypeName()))
			}
			for _, child := range s.children[removeFrom:] {
				removeChild(s.obj, child.object())
				child.unmount()
			}
			s.children = s.children[:removeFrom]
		}
		if len(appended) > 0 {
			if _, ok := s.obj.(object.Window); ok && len(s.children) == 1 {
				panic(fmt.Sprintf("vgtk: cannot add a title bar widget to a realized %s", s.obj.TypeName()))
			}
			for _, child := range appended {
				if w, ok := child.object().(object.Widget); ok {
					w.Show()
				}
				s.children = append(s.children, child)
			}
		}
	}

	for _, p := range spec.Properties {
		p.Apply(s.obj, parent, false)
	}
	for _, p := range spec.ChildProps {
		p.Apply(s.obj, parent, false)
	}
	s.patchHandlers(spec.Handlers, scope)
	return true
}

// patchHandlers reconciles signal connections by (signal, ID): pairs in
// both sets keep their live connection, stale pairs disconnect, new
// pairs connect.
func (s *objectState) patchHandlers(specs []VHandler, scope *Scope) {
	seen := make(map[handlerKey]bool, len(specs))
	for _, h := range specs {
		key := handlerKey{h.Name, h.ID}
		seen[key] = true
		if _, ok := s.handlers[key]; ok {
			continue
		}
		id, err := h.Connect(s.obj, scope)
		if err != nil {
			panic(fmt.Sprintf("vgtk: cannot connect signal %q on %s: %v", h.Name, s.obj.TypeName(), err))
		}
		s.handlers[key] = id
	}
	for key, id := range s.handlers {
		if !seen[key] {
			s.obj.Disconnect(id)
			delete(s.handlers, key)
		}
	}
}

func (s *objectState) unmount() {
	for _, child := range s.children {
		child.unmount()
	}
	s.children = nil
	for key, id := range s.handlers {
		s.obj.Disconnect(id)
		delete(s.handlers, key)
	}
	s.obj.Destroy()
}
