// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Capability interfaces. The engine's child placement logic asserts a
// parent (and sometimes a child) against these, most specific first, to
// find the right insertion call. Toolkits have many strange ways of
// adding children to a parent; the closed set below covers them.

// Widget is an object that can be made visible.
type Widget interface {
	Object

	// Show makes the widget visible. Called once construction of the
	// widget and its children is complete.
	Show()

	// Hide makes the widget invisible without destroying it.
	Hide()
}

// Container is an object that accepts children through the generic
// add/remove path.
type Container interface {
	Object

	// Add appends a child through the container's ordinary insertion
	// call. Returns an error if the child kind is not accepted.
	Add(child Object) error

	// Remove detaches a child previously added. Returns an error if the
	// child is not present.
	Remove(child Object) error
}

// ChildPropertyContainer is a container whose parent-child relationship
// carries its own properties (packing options and the like). These are
// properties of the relationship, not of either object alone.
type ChildPropertyContainer interface {
	Container

	// ChildProperty returns the current value of a child property for
	// the given attached child.
	ChildProperty(child Object, name string) (any, error)

	// SetChildProperty sets a child property for the given attached child.
	SetChildProperty(child Object, name string, value any) error
}

// Application is the process-level root object. It takes Window and
// Action children through dedicated registration calls, never through
// Container.
type Application interface {
	Object

	AddWindow(w Object) error
	RemoveWindow(w Object) error
	AddAction(a Object) error
	RemoveAction(name string) error

	// Activate emits the application's activate signal. Top-level
	// components build their windows in response.
	Activate()

	// ActiveWindow returns the application's current active window,
	// or nil.
	ActiveWindow() Object
}

// Window takes one or two widget children: with two, the first becomes
// the title bar and the second the main child.
type Window interface {
	Container

	SetTitlebar(w Object)
	Titlebar() Object

	// Child returns the window's main child widget, or nil.
	Child() Object
}

// ApplicationWindow additionally takes Action children and an optional
// help overlay.
type ApplicationWindow interface {
	Window

	AddAction(a Object) error
	SetHelpOverlay(w Object)
}

// Dialog is a window whose children must be added to its nested content
// area, not to the dialog itself.
type Dialog interface {
	Window

	// ContentArea returns the box children are packed into.
	ContentArea() Object
}

// MenuButton takes exactly one child, dispatched to SetPopup for Menu
// children and SetPopover for any other widget.
type MenuButton interface {
	Object

	SetPopup(menu Object)
	SetPopover(w Object)
}

// MenuItem takes exactly one Menu child via SetSubmenu.
type MenuItem interface {
	Object

	SetSubmenu(menu Object)
}

// Menu marks menu-model objects so placement can tell popup from popover.
type Menu interface {
	Object

	IsMenu()
}

// ShortcutsWindow marks the help-overlay window class accepted by
// ApplicationWindow.SetHelpOverlay.
type ShortcutsWindow interface {
	Window

	IsShortcutsWindow()
}

// Bin is a container that holds at most one child.
type Bin interface {
	Container

	// Child returns the single child, or nil.
	Child() Object
}

// Box packs children linearly; one child may occupy the center slot via
// SetCenterWidget instead of ordinary packing.
type Box interface {
	Container

	SetCenterWidget(w Object)
}

// HeaderBar packs children linearly; one child may replace the title via
// SetCustomTitle.
type HeaderBar interface {
	Container

	SetCustomTitle(w Object)
}

// Grid positions children on a two-dimensional grid. Attach places a
// child at an explicit cell with the given spans.
type Grid interface {
	Container

	Attach(w Object, left, top, width, height int) error
}

// Action is a named, window-less object registered on applications and
// application windows.
type Action interface {
	Object

	// ActionName returns the action's registration name.
	ActionName() string
}
