// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"
	"reflect"

	"github.com/bodil/vgtk/object"
)

// VProperty is one property in a widget descriptor. Apply is
// compare-then-set: it reads the current native value and only writes
// when the descriptor value differs, unless force is set (first
// construction, or reattachment after the child moved parents).
type VProperty struct {
	Name string

	// child marks a property of the parent-child relationship rather
	// than of the object itself.
	child bool

	Apply func(obj, parent object.Object, force bool)
}

func (p VProperty) applyTo(w *VWidget) {
	if p.child {
		w.ChildProps = append(w.ChildProps, p)
	} else {
		w.Properties = append(w.Properties, p)
	}
}

// Property declares an object property. A property the class does not
// have is a programming error in the view and panics with the class and
// property names.
func Property(name string, value any) VProperty {
	return VProperty{
		Name: name,
		Apply: func(obj, parent object.Object, force bool) {
			current, err := obj.Property(name)
			if err != nil {
				panic(fmt.Sprintf("vgtk: cannot read property %q of %s: %v", name, obj.TypeName(), err))
			}
			if force || !propertyEqual(current, value) {
				if err := obj.SetProperty(name, value); err != nil {
					panic(fmt.Sprintf("vgtk: cannot set property %q of %s: %v", name, obj.TypeName(), err))
				}
			}
		},
	}
}

// ChildProperty declares a property of the parent-child relationship,
// applied through the parent once the child is attached.
func ChildProperty(name string, value any) VProperty {
	return VProperty{
		Name:  name,
		child: true,
		Apply: func(obj, parent object.Object, force bool) {
			if parent == nil {
				return
			}
			c, ok := parent.(object.ChildPropertyContainer)
			if !ok {
				panic(fmt.Sprintf("vgtk: class %s has no child properties", parent.TypeName()))
			}
			current, err := c.ChildProperty(obj, name)
			if err != nil {
				panic(fmt.Sprintf("vgtk: cannot read child property %q of %s in %s: %v",
					name, obj.TypeName(), parent.TypeName(), err))
			}
			if force || !propertyEqual(current, value) {
				if err := c.SetChildProperty(obj, name, value); err != nil {
					panic(fmt.Sprintf("vgtk: cannot set child property %q of %s in %s: %v",
						name, obj.TypeName(), parent.TypeName(), err))
				}
			}
		},
	}
}

// markerProperty is a pure placement marker: no native write of its own,
// the placement logic looks for it by name while attaching the child.
func markerProperty(name string) VProperty {
	return VProperty{
		Name:  name,
		child: true,
		Apply: func(obj, parent object.Object, force bool) {},
	}
}

// CenterWidget marks a box child for the center slot instead of ordinary
// packing. With several children marked, the last one wins the slot.
func CenterWidget() VProperty { return markerProperty("center-widget") }

// CustomTitle marks a header bar child as the custom title widget.
func CustomTitle() VProperty { return markerProperty("custom-title") }

func propertyEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
