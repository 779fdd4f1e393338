// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"

	"github.com/bodil/vgtk/object"
)

// state is one node of the live tree: the realized counterpart of a
// descriptor node, owning a native object and its signal connections.
type state interface {

	// object returns the live native object at this node.
	object() object.Object

	// patch reconciles the node against a fresh descriptor. It returns
	// false, without touching the native object, when the descriptor is
	// incompatible (different kind, class or component model) and the
	// node must be reconstructed by its parent.
	patch(node VNode, parent object.Object, scope *Scope) bool

	// unmount tears the node down: children first, then connections,
	// then the native object.
	unmount()
}

func buildState(node VNode, parent object.Object, scope *Scope) state {
	switch n := node.(type) {
	case *VWidget:
		return buildObjectState(n, parent, scope)
	case *VComponent:
		return buildComponentState(n, parent, scope)
	}
	panic(fmt.Sprintf("vgtk: unknown descriptor node type %T", node))
}
