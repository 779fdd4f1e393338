// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"reflect"

	"github.com/bodil/vgtk/object"
)

// VNode is one node of a descriptor tree: either a [VWidget] describing a
// native object, or a [VComponent] describing an embedded sub-component.
// A descriptor tree is produced fresh by every call to a component's View
// and is never mutated afterwards; it is read-only input to
// reconciliation.
type VNode interface {
	Item

	childProperties() []VProperty
}

// Item is anything that can appear in a [Widget] call: properties,
// handlers, and child nodes.
type Item interface {
	applyTo(w *VWidget)
}

// VWidget describes one native object: its class, how to construct it,
// the properties and signal handlers to apply, and its children.
type VWidget struct {

	// Type is the native class identifier, resolved through the
	// [object.Registry] unless Constructor is set.
	Type string

	// Constructor, if non-nil, builds the object explicitly. Used for
	// classes that cannot be default-constructed, like Application.
	Constructor Constructor

	// Properties are applied to the object itself, in order.
	Properties []VProperty

	// ChildProps are applied through the object's parent once the object
	// is attached; they describe the parent-child relationship.
	ChildProps []VProperty

	// Handlers are the signal connections to hold while this node is live.
	Handlers []VHandler

	// Children are the node's child descriptors, in attachment order.
	Children []VNode
}

// Constructor builds a native object outside the registry's generic path.
type Constructor func(r *object.Registry) (object.Object, error)

func (w *VWidget) applyTo(parent *VWidget)      { parent.Children = append(parent.Children, w) }
func (w *VWidget) childProperties() []VProperty { return w.ChildProps }

// VComponent describes an embedded sub-component: the identity of its
// model type, an opaque property bag handed to the instance, and any
// child-placement properties to apply to the sub-component's root object
// once it is mounted.
type VComponent struct {

	// Model is the sub-component's model type, the identity reconciliation
	// uses to decide whether an existing instance can be kept.
	Model reflect.Type

	// Props is the opaque property bag delivered to Create on mount and
	// Change on every subsequent patch.
	Props any

	// ChildProps are forwarded to the mount point.
	ChildProps []VProperty
}

func (c *VComponent) applyTo(parent *VWidget)      { parent.Children = append(parent.Children, c) }
func (c *VComponent) childProperties() []VProperty { return c.ChildProps }

// Widget builds a [VWidget] descriptor for the named class from
// properties, handlers, and children.
func Widget(typ string, items ...Item) *VWidget {
	w := &VWidget{Type: typ}
	for _, item := range items {
		item.applyTo(w)
	}
	return w
}

// WidgetWith is [Widget] for classes that need an explicit constructor.
func WidgetWith(typ string, ctor Constructor, items ...Item) *VWidget {
	w := Widget(typ, items...)
	w.Constructor = ctor
	return w
}

// ComponentNode builds a [VComponent] descriptor for the component type C
// with the given property bag and optional child-placement properties.
func ComponentNode[C Component](props any, childProps ...VProperty) *VComponent {
	return &VComponent{
		Model:      reflect.TypeOf((*C)(nil)).Elem(),
		Props:      props,
		ChildProps: childProps,
	}
}

// childProperty returns the named child-placement property of a node,
// or nil. Placement uses it to detect marker properties like the box
// center slot.
func childProperty(n VNode, name string) *VProperty {
	props := n.childProperties()
	for i := range props {
		if props[i].Name == name {
			return &props[i]
		}
	}
	return nil
}
