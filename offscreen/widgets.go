// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"

	"github.com/bodil/vgtk/object"
)

// The standard widget classes. Property sets are deliberately small:
// enough surface for the engine, the tests, and the examples, with the
// same kebab-case naming the real toolkit uses.

func registerWidgets(d *Driver) {
	r := d.Registry
	r.RegisterType("Label", func() object.Object { return d.NewLabel() })
	r.RegisterType("Image", func() object.Object { return d.NewImage() })
	r.RegisterType("Button", func() object.Object { return d.NewButton() })
	r.RegisterType("CheckButton", func() object.Object { return d.NewCheckButton() })
	r.RegisterType("Entry", func() object.Object { return d.NewEntry() })
	r.RegisterType("Box", func() object.Object { return d.NewBox() })
	r.RegisterType("Grid", func() object.Object { return d.NewGrid() })
	r.RegisterType("ListBox", func() object.Object { return d.NewListBox() })
	r.RegisterType("Frame", func() object.Object { return d.NewFrame() })
	r.RegisterType("ScrolledWindow", func() object.Object { return d.NewScrolledWindow() })
	r.RegisterType("Popover", func() object.Object { return d.NewPopover() })
	r.RegisterType("HeaderBar", func() object.Object { return d.NewHeaderBar() })
	r.RegisterType("Window", func() object.Object { return d.NewWindow() })
	r.RegisterType("ApplicationWindow", func() object.Object { return d.NewApplicationWindow() })
	r.RegisterType("Dialog", func() object.Object { return d.NewDialog() })
	r.RegisterType("ShortcutsWindow", func() object.Object { return d.NewShortcutsWindow() })
	r.RegisterType("MenuButton", func() object.Object { return d.NewMenuButton() })
	r.RegisterType("Menu", func() object.Object { return d.NewMenu() })
	r.RegisterType("MenuItem", func() object.Object { return d.NewMenuItem() })
	r.RegisterType("SimpleAction", func() object.Object { return d.NewSimpleAction() })
	// Application is intentionally not registered: like the platform it
	// models, it cannot be default-constructed and must be built through
	// an explicit constructor (see NewApplication).
}

// Label

type Label struct{ widgetBase }

func (d *Driver) NewLabel() *Label {
	w := &Label{}
	w.Base = d.newBase("Label", w, map[string]any{
		"label": "", "halign": "fill", "valign": "fill", "use-markup": false,
	})
	return w
}

// Image

type Image struct{ widgetBase }

func (d *Driver) NewImage() *Image {
	w := &Image{}
	w.Base = d.newBase("Image", w, map[string]any{"icon-name": ""})
	return w
}

// Button

type Button struct{ widgetBase }

func (d *Driver) NewButton() *Button {
	w := &Button{}
	w.Base = d.newBase("Button", w, map[string]any{
		"label": "", "image": "", "always-show-image": false, "sensitive": true,
	}, "clicked")
	return w
}

// Click emits the clicked signal, as a user pressing the button would.
func (w *Button) Click() { w.Emit("clicked") }

// CheckButton re-emits toggled whenever its active property changes,
// whether the user or a property write flipped it. This is the native
// echo behavior the engine's mute mechanism exists to suppress.
type CheckButton struct{ widgetBase }

func (d *Driver) NewCheckButton() *CheckButton {
	w := &CheckButton{}
	w.Base = d.newBase("CheckButton", w, map[string]any{
		"label": "", "active": false, "sensitive": true,
	}, "clicked", "toggled")
	w.onSet = func(name string, _, _ any) {
		if name == "active" {
			w.Emit("toggled")
		}
	}
	return w
}

// Toggle flips the active property as a user click would, which in turn
// emits toggled.
func (w *CheckButton) Toggle() {
	active, _ := w.Property("active")
	_ = w.SetProperty("active", active != true)
}

// Entry

type Entry struct{ widgetBase }

func (d *Driver) NewEntry() *Entry {
	w := &Entry{}
	w.Base = d.newBase("Entry", w, map[string]any{
		"text": "", "placeholder-text": "",
	}, "changed", "activate")
	w.onSet = func(name string, _, _ any) {
		if name == "text" {
			w.Emit("changed")
		}
	}
	return w
}

// Box

type Box struct {
	containerBase
	center object.Object
}

func (d *Driver) NewBox() *Box {
	w := &Box{}
	w.Base = d.newBase("Box", w, map[string]any{
		"spacing": 0, "orientation": "horizontal", "homogeneous": false,
		"halign": "fill", "valign": "fill", "border-width": 0,
	})
	w.defaultChildProps = func() map[string]any {
		return map[string]any{"expand": false, "fill": true, "pack-type": "start", "position": 0}
	}
	return w
}

// SetCenterWidget places w in the box's center slot. A later call
// displaces the current center widget back to ordinary packing; the last
// center request wins.
func (w *Box) SetCenterWidget(child object.Object) {
	if w.center != nil {
		w.attach(w.center)
	}
	w.center = child
}

// CenterWidget returns the current center slot occupant, or nil.
func (w *Box) CenterWidget() object.Object { return w.center }

func (w *Box) Remove(child object.Object) error {
	if w.center == child {
		w.center = nil
		return nil
	}
	return w.containerBase.Remove(child)
}

// Grid

type Grid struct{ containerBase }

func (d *Driver) NewGrid() *Grid {
	w := &Grid{}
	w.Base = d.newBase("Grid", w, map[string]any{
		"row-spacing": 0, "column-spacing": 0, "border-width": 0,
	})
	w.defaultChildProps = func() map[string]any {
		return map[string]any{"left": 0, "top": 0, "width": 1, "height": 1}
	}
	return w
}

func (w *Grid) Attach(child object.Object, left, top, width, height int) error {
	w.attach(child)
	props := w.childProps[child]
	props["left"], props["top"], props["width"], props["height"] = left, top, width, height
	return nil
}

// ListBox

type ListBox struct{ containerBase }

func (d *Driver) NewListBox() *ListBox {
	w := &ListBox{}
	w.Base = d.newBase("ListBox", w, map[string]any{"selection-mode": "none"})
	return w
}

// binBase holds at most one child.
type binBase struct {
	widgetBase
	child object.Object
}

func (b *binBase) Add(child object.Object) error {
	if b.child != nil {
		return fmt.Errorf("offscreen: %s already has a child", b.typ)
	}
	b.child = child
	return nil
}

func (b *binBase) Remove(child object.Object) error {
	if b.child != child {
		return fmt.Errorf("offscreen: %s: cannot remove %s: not the child", b.typ, child.TypeName())
	}
	b.child = nil
	return nil
}

func (b *binBase) Child() object.Object { return b.child }

// Frame

type Frame struct{ binBase }

func (d *Driver) NewFrame() *Frame {
	w := &Frame{}
	w.Base = d.newBase("Frame", w, map[string]any{"label": "", "border-width": 0})
	return w
}

// ScrolledWindow

type ScrolledWindow struct{ binBase }

func (d *Driver) NewScrolledWindow() *ScrolledWindow {
	w := &ScrolledWindow{}
	w.Base = d.newBase("ScrolledWindow", w, map[string]any{"border-width": 0})
	return w
}

// Popover

type Popover struct{ binBase }

func (d *Driver) NewPopover() *Popover {
	w := &Popover{}
	w.Base = d.newBase("Popover", w, map[string]any{"position": "bottom"})
	return w
}

// HeaderBar

type HeaderBar struct {
	containerBase
	customTitle object.Object
}

func (d *Driver) NewHeaderBar() *HeaderBar {
	w := &HeaderBar{}
	w.Base = d.newBase("HeaderBar", w, map[string]any{
		"title": "", "subtitle": "", "show-close-button": false,
	})
	return w
}

func (w *HeaderBar) SetCustomTitle(child object.Object) { w.customTitle = child }

func (w *HeaderBar) Remove(child object.Object) error {
	if w.customTitle == child {
		w.customTitle = nil
		return nil
	}
	return w.containerBase.Remove(child)
}

// CustomTitle returns the custom title widget, or nil.
func (w *HeaderBar) CustomTitle() object.Object { return w.customTitle }

// Window

type Window struct {
	widgetBase
	child    object.Object
	titlebar object.Object
}

func (d *Driver) newWindowBase(typ string, self object.Object, extra map[string]any, signals ...string) Base {
	props := map[string]any{
		"title": "", "border-width": 0, "default-width": 0, "default-height": 0,
		"resizable": true,
	}
	for k, v := range extra {
		props[k] = v
	}
	return d.newBase(typ, self, props, signals...)
}

func (d *Driver) NewWindow() *Window {
	w := &Window{}
	w.Base = d.newWindowBase("Window", w, nil)
	return w
}

func (w *Window) Add(child object.Object) error {
	if w.child != nil {
		return fmt.Errorf("offscreen: %s already has a main child", w.typ)
	}
	w.child = child
	return nil
}

func (w *Window) Remove(child object.Object) error {
	if w.child == child {
		w.child = nil
		return nil
	}
	if w.titlebar == child {
		w.titlebar = nil
		return nil
	}
	return fmt.Errorf("offscreen: %s: cannot remove %s: not a child", w.typ, child.TypeName())
}

func (w *Window) SetTitlebar(child object.Object) { w.titlebar = child }
func (w *Window) Titlebar() object.Object         { return w.titlebar }
func (w *Window) Child() object.Object            { return w.child }

// ApplicationWindow

type ApplicationWindow struct {
	Window
	actions     map[string]object.Object
	helpOverlay object.Object
}

func (d *Driver) NewApplicationWindow() *ApplicationWindow {
	w := &ApplicationWindow{actions: map[string]object.Object{}}
	w.Base = d.newWindowBase("ApplicationWindow", w, map[string]any{"show-menubar": false})
	return w
}

func (w *ApplicationWindow) AddAction(a object.Object) error {
	act, ok := a.(object.Action)
	if !ok {
		return fmt.Errorf("offscreen: %s is not an Action", a.TypeName())
	}
	w.actions[act.ActionName()] = a
	return nil
}

func (w *ApplicationWindow) SetHelpOverlay(o object.Object) { w.helpOverlay = o }

// HelpOverlay returns the window's help overlay, or nil.
func (w *ApplicationWindow) HelpOverlay() object.Object { return w.helpOverlay }

// Dialog routes ordinary children into its content area box.

type Dialog struct {
	Window
	content *Box
}

func (d *Driver) NewDialog() *Dialog {
	w := &Dialog{content: d.NewBox()}
	w.Base = d.newWindowBase("Dialog", w, map[string]any{"modal": false}, "response")
	_ = w.content.SetProperty("orientation", "vertical")
	return w
}

func (w *Dialog) ContentArea() object.Object { return w.content }

func (w *Dialog) Add(child object.Object) error    { return w.content.Add(child) }
func (w *Dialog) Remove(child object.Object) error { return w.content.Remove(child) }

// Respond emits the response signal with the given code, as a user
// pressing one of the dialog's buttons would.
func (w *Dialog) Respond(code int) { w.Emit("response", code) }

// ShortcutsWindow

type ShortcutsWindow struct{ Window }

func (d *Driver) NewShortcutsWindow() *ShortcutsWindow {
	w := &ShortcutsWindow{}
	w.Base = d.newWindowBase("ShortcutsWindow", w, nil)
	return w
}

func (w *ShortcutsWindow) IsShortcutsWindow() {}

// MenuButton

type MenuButton struct {
	widgetBase
	popup   object.Object
	popover object.Object
}

func (d *Driver) NewMenuButton() *MenuButton {
	w := &MenuButton{}
	w.Base = d.newBase("MenuButton", w, map[string]any{"label": "", "direction": "down"}, "clicked")
	return w
}

func (w *MenuButton) SetPopup(menu object.Object) { w.popup = menu }
func (w *MenuButton) SetPopover(o object.Object)  { w.popover = o }

// Popup returns the menu set with SetPopup, or nil.
func (w *MenuButton) Popup() object.Object { return w.popup }

// PopoverChild returns the widget set with SetPopover, or nil.
func (w *MenuButton) PopoverChild() object.Object { return w.popover }

// Menu

type Menu struct{ containerBase }

func (d *Driver) NewMenu() *Menu {
	w := &Menu{}
	w.Base = d.newBase("Menu", w, map[string]any{})
	return w
}

func (w *Menu) IsMenu() {}

// MenuItem

type MenuItem struct {
	widgetBase
	submenu object.Object
}

func (d *Driver) NewMenuItem() *MenuItem {
	w := &MenuItem{}
	w.Base = d.newBase("MenuItem", w, map[string]any{"label": ""}, "activate")
	return w
}

func (w *MenuItem) SetSubmenu(menu object.Object) { w.submenu = menu }

// Submenu returns the item's submenu, or nil.
func (w *MenuItem) Submenu() object.Object { return w.submenu }

// SimpleAction

type SimpleAction struct{ Base }

func (d *Driver) NewSimpleAction() *SimpleAction {
	w := &SimpleAction{}
	w.Base = d.newBase("SimpleAction", w, map[string]any{"name": "", "enabled": true}, "activate")
	return w
}

func (w *SimpleAction) ActionName() string {
	name, _ := w.Property("name")
	s, _ := name.(string)
	return s
}

// Application cannot be default-constructed; build one with
// [NewApplication] and hand it to the engine through a widget
// descriptor's explicit constructor.
type Application struct {
	Base
	windows []object.Object
	actions map[string]object.Object
}

func (d *Driver) NewApplication(id string) *Application {
	w := &Application{actions: map[string]object.Object{}}
	w.Base = d.newBase("Application", w, map[string]any{"application-id": id}, "activate", "startup", "shutdown")
	return w
}

// NewApplication builds an application object on the given driver.
func NewApplication(d *Driver, id string) *Application { return d.NewApplication(id) }

func (w *Application) AddWindow(win object.Object) error {
	if _, ok := win.(object.Window); !ok {
		return fmt.Errorf("offscreen: %s is not a Window", win.TypeName())
	}
	w.windows = append(w.windows, win)
	return nil
}

func (w *Application) RemoveWindow(win object.Object) error {
	for i, existing := range w.windows {
		if existing == win {
			w.windows = append(w.windows[:i], w.windows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("offscreen: window not registered on application")
}

func (w *Application) AddAction(a object.Object) error {
	act, ok := a.(object.Action)
	if !ok {
		return fmt.Errorf("offscreen: %s is not an Action", a.TypeName())
	}
	w.actions[act.ActionName()] = a
	return nil
}

func (w *Application) RemoveAction(name string) error {
	if _, ok := w.actions[name]; !ok {
		return fmt.Errorf("offscreen: no action %q registered", name)
	}
	delete(w.actions, name)
	return nil
}

// Action returns the registered action by name, or nil.
func (w *Application) Action(name string) object.Object { return w.actions[name] }

func (w *Application) Activate() { w.Emit("activate") }

func (w *Application) ActiveWindow() object.Object {
	if len(w.windows) == 0 {
		return nil
	}
	return w.windows[len(w.windows)-1]
}

// Windows returns the application's registered windows in order.
func (w *Application) Windows() []object.Object { return w.windows }
