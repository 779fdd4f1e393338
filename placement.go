// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"fmt"

	"github.com/bodil/vgtk/object"
)

// addChild attaches a freshly built child to its parent. Placement
// dispatches on the parent's capabilities, most specific first: most
// classes take children through the generic container path, but several
// route them through dedicated calls depending on the child's kind, its
// index, or a marker child property on the descriptor. index and total
// are the child's position and the total child count in the descriptor.
// Misplacement is a programming error in the view and panics.
//
// After placement, the descriptor's child properties are force-applied
// through the parent.
func addChild(parent object.Object, index, total int, spec VNode, child object.Object) {
	switch p := parent.(type) {
	case object.Application:
		switch c := child.(type) {
		case object.Window:
			if err := p.AddWindow(c); err != nil {
				panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
			}
		case object.Action:
			if err := p.AddAction(c); err != nil {
				panic(fmt.Sprintf("vgtk: cannot add action %q to %s: %v", c.ActionName(), parent.TypeName(), err))
			}
		default:
			panic(fmt.Sprintf("vgtk: %s's children must be Windows or Actions, but %s was found",
				parent.TypeName(), child.TypeName()))
		}

	case object.MenuButton:
		if total > 1 {
			panic(fmt.Sprintf("vgtk: %s can only have 1 child, but %d were found", parent.TypeName(), total))
		}
		if menu, ok := child.(object.Menu); ok {
			p.SetPopup(menu)
		} else if _, ok := child.(object.Widget); ok {
			p.SetPopover(child)
		} else {
			panic(fmt.Sprintf("vgtk: %s's child must be a Menu or a Widget, but %s was found",
				parent.TypeName(), child.TypeName()))
		}

	case object.MenuItem:
		if total > 1 {
			panic(fmt.Sprintf("vgtk: %s can only have 1 child, but %d were found", parent.TypeName(), total))
		}
		if menu, ok := child.(object.Menu); ok {
			p.SetSubmenu(menu)
		} else {
			panic(fmt.Sprintf("vgtk: %s's child must be a Menu, but %s was found",
				parent.TypeName(), child.TypeName()))
		}

	case object.Dialog:
		requireWidget(parent, child)
		content, ok := p.ContentArea().(object.Container)
		if !ok {
			panic(fmt.Sprintf("vgtk: %s has no usable content area", parent.TypeName()))
		}
		if err := content.Add(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	case object.ApplicationWindow:
		switch c := child.(type) {
		case object.Action:
			if err := p.AddAction(c); err != nil {
				panic(fmt.Sprintf("vgtk: cannot add action %q to %s: %v", c.ActionName(), parent.TypeName(), err))
			}
		case object.ShortcutsWindow:
			p.SetHelpOverlay(c)
		default:
			requireWidget(parent, child)
			addWindowChild(p, index, total, child)
		}

	case object.Window:
		requireWidget(parent, child)
		addWindowChild(p, index, total, child)

	case object.Box:
		requireWidget(parent, child)
		if childProperty(spec, "center-widget") != nil {
			p.SetCenterWidget(child)
		} else if err := p.Add(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	case object.HeaderBar:
		requireWidget(parent, child)
		if childProperty(spec, "custom-title") != nil {
			p.SetCustomTitle(child)
		} else if err := p.Add(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	case object.Grid:
		requireWidget(parent, child)
		// Position child properties follow placement; attach at the
		// origin with unit spans.
		if err := p.Attach(child, 0, 0, 1, 1); err != nil {
			panic(fmt.Sprintf("vgtk: cannot attach %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	case object.Bin:
		if total > 1 {
			panic(fmt.Sprintf("vgtk: %s can only have 1 child, but %d were found", parent.TypeName(), total))
		}
		requireWidget(parent, child)
		if err := p.Add(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	case object.Container:
		requireWidget(parent, child)
		if err := p.Add(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	default:
		panic(fmt.Sprintf("vgtk: don't know how to add children to a %s", parent.TypeName()))
	}

	for _, cp := range spec.childProperties() {
		cp.Apply(child, parent, true)
	}
}

// addWindowChild places a widget child on a window: a single child goes
// in directly; with two children the first becomes the title bar and the
// second the main child.
func addWindowChild(p object.Window, index, total int, child object.Object) {
	if total == 2 && index == 0 {
		p.SetTitlebar(child)
		return
	}
	if err := p.Add(child); err != nil {
		panic(fmt.Sprintf("vgtk: cannot add %s to %s: %v", child.TypeName(), p.TypeName(), err))
	}
}

func requireWidget(parent, child object.Object) {
	if _, ok := child.(object.Widget); !ok {
		panic(fmt.Sprintf("vgtk: %s's children must be Widgets, but %s was found",
			parent.TypeName(), child.TypeName()))
	}
}

// removeChild detaches a live child during reconciliation. It mirrors
// the placement dispatch in [addChild]: Applications dispatch on the
// child's kind, classes placed through one-shot setters clear the
// corresponding slot, and everything else goes through the generic
// container path. Reconstruction after a child class change comes
// through here too, so every placement route needs a removal route.
func removeChild(parent, child object.Object) {
	switch p := parent.(type) {
	case object.Application:
		switch c := child.(type) {
		case object.Window:
			if err := p.RemoveWindow(c); err != nil {
				panic(fmt.Sprintf("vgtk: cannot remove %s from %s: %v", child.TypeName(), parent.TypeName(), err))
			}
		case object.Action:
			if err := p.RemoveAction(c.ActionName()); err != nil {
				panic(fmt.Sprintf("vgtk: cannot remove action %q from %s: %v", c.ActionName(), parent.TypeName(), err))
			}
		default:
			panic(fmt.Sprintf("vgtk: %s's children must be Windows or Actions, but %s was found",
				parent.TypeName(), child.TypeName()))
		}

	case object.MenuButton:
		if _, ok := child.(object.Menu); ok {
			p.SetPopup(nil)
		} else {
			p.SetPopover(nil)
		}

	case object.MenuItem:
		p.SetSubmenu(nil)

	case object.Container:
		if err := p.Remove(child); err != nil {
			panic(fmt.Sprintf("vgtk: cannot remove %s from %s: %v", child.TypeName(), parent.TypeName(), err))
		}

	default:
		panic(fmt.Sprintf("vgtk: don't know how to remove children from a %s", parent.TypeName()))
	}
}
