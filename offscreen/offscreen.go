// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen is an in-memory implementation of the [object]
// toolkit boundary. It exists so that the engine, its tests, and the
// examples can run without a display server: objects are property maps,
// signals are synchronous callback lists, and containers track children
// in plain slices.
//
// The driver keeps counters of native calls ([Stats]) so tests can assert
// properties like "an unchanged patch issues zero property writes".
package offscreen

import (
	"fmt"
	"slices"

	"github.com/bodil/vgtk/object"
)

// Stats counts native calls made against a [Driver]'s objects.
type Stats struct {
	Constructs     int
	PropertyWrites int
	Connects       int
	Disconnects    int
	Destroys       int
}

// Reset zeroes all counters.
func (s *Stats) Reset() { *s = Stats{} }

// Driver is one offscreen object system. All objects created through its
// [Registry] share its [Stats].
type Driver struct {
	Registry *object.Registry
	Stats    Stats

	nextID object.HandlerID
}

// New returns a driver with the standard widget classes registered.
func New() *Driver {
	d := &Driver{Registry: object.NewRegistry()}
	registerWidgets(d)
	return d
}

type conn struct {
	id     object.HandlerID
	signal string
	fn     func(*object.Event)
}

// Base implements [object.Object] for all offscreen classes. Concrete
// widget types embed it and set self to themselves so emitted events and
// capability assertions see the outer type.
type Base struct {
	driver    *Driver
	typ       string
	self      object.Object
	props     map[string]any
	signals   map[string]bool
	conns     []conn
	destroyed bool
	onDestroy []func()

	// onSet, if set, runs after a property write changes a value. It is
	// how widgets model native echo signals, e.g. CheckButton emitting
	// toggled when its active property is written.
	onSet func(name string, old, value any)
}

func (d *Driver) newBase(typ string, self object.Object, props map[string]any, signals ...string) Base {
	d.Stats.Constructs++
	sigs := map[string]bool{"destroy": true}
	for _, s := range signals {
		sigs[s] = true
	}
	return Base{driver: d, typ: typ, self: self, props: props, signals: sigs}
}

func (b *Base) TypeName() string { return b.typ }

// PropertyNames returns the class's property names in sorted order.
func (b *Base) PropertyNames() []string {
	names := make([]string, 0, len(b.props))
	for name := range b.props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (b *Base) Property(name string) (any, error) {
	v, ok := b.props[name]
	if !ok {
		return nil, fmt.Errorf("offscreen: class %s has no property %q", b.typ, name)
	}
	return v, nil
}

func (b *Base) SetProperty(name string, value any) error {
	old, ok := b.props[name]
	if !ok {
		return fmt.Errorf("offscreen: class %s has no property %q", b.typ, name)
	}
	b.driver.Stats.PropertyWrites++
	b.props[name] = value
	if b.onSet != nil && old != value {
		b.onSet(name, old, value)
	}
	return nil
}

func (b *Base) Connect(signal string, fn func(*object.Event)) (object.HandlerID, error) {
	if !b.signals[signal] {
		return 0, fmt.Errorf("offscreen: class %s has no signal %q", b.typ, signal)
	}
	b.driver.nextID++
	id := b.driver.nextID
	b.conns = append(b.conns, conn{id: id, signal: signal, fn: fn})
	b.driver.Stats.Connects++
	return id, nil
}

func (b *Base) Disconnect(id object.HandlerID) {
	for i, c := range b.conns {
		if c.id == id {
			b.conns = slices.Delete(b.conns, i, i+1)
			b.driver.Stats.Disconnects++
			return
		}
	}
}

func (b *Base) Emit(signal string, args ...any) {
	if b.destroyed && signal != "destroy" {
		return
	}
	// Snapshot: callbacks may disconnect themselves.
	conns := slices.Clone(b.conns)
	for _, c := range conns {
		if c.signal == signal {
			c.fn(&object.Event{Source: b.self, Args: args})
		}
	}
}

func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.driver.Stats.Destroys++
	b.Emit("destroy")
	for _, fn := range b.onDestroy {
		fn()
	}
	b.conns = nil
	b.onDestroy = nil
}

func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) OnDestroy(fn func()) { b.onDestroy = append(b.onDestroy, fn) }

// widgetBase adds visibility tracking to Base.
type widgetBase struct {
	Base
	visible bool
}

func (w *widgetBase) Show() { w.visible = true }
func (w *widgetBase) Hide() { w.visible = false }

// Visible reports whether Show has been called more recently than Hide.
func (w *widgetBase) Visible() bool { return w.visible }

// containerBase adds generic child tracking plus per-relationship child
// properties to widgetBase.
type containerBase struct {
	widgetBase
	children   []object.Object
	childProps map[object.Object]map[string]any

	// defaultChildProps seeds the child property map when a child is
	// attached; nil means the container has no child properties.
	defaultChildProps func() map[string]any
}

func (c *containerBase) attach(child object.Object) {
	c.children = append(c.children, child)
	if c.defaultChildProps != nil {
		if c.childProps == nil {
			c.childProps = map[object.Object]map[string]any{}
		}
		c.childProps[child] = c.defaultChildProps()
	}
}

func (c *containerBase) Add(child object.Object) error {
	c.attach(child)
	return nil
}

func (c *containerBase) Remove(child object.Object) error {
	for i, ch := range c.children {
		if ch == child {
			c.children = slices.Delete(c.children, i, i+1)
			delete(c.childProps, child)
			return nil
		}
	}
	return fmt.Errorf("offscreen: %s: cannot remove %s: not a child", c.typ, child.TypeName())
}

// Children returns the container's attached children in order.
func (c *containerBase) Children() []object.Object { return c.children }

func (c *containerBase) ChildProperty(child object.Object, name string) (any, error) {
	if c.defaultChildProps == nil {
		return nil, fmt.Errorf("offscreen: class %s has no child properties", c.typ)
	}
	props, ok := c.childProps[child]
	if !ok {
		return nil, fmt.Errorf("offscreen: %s: %s is not an attached child", c.typ, child.TypeName())
	}
	v, ok := props[name]
	if !ok {
		return nil, fmt.Errorf("offscreen: %s has no child property %q", c.typ, name)
	}
	return v, nil
}

func (c *containerBase) SetChildProperty(child object.Object, name string, value any) error {
	if c.defaultChildProps == nil {
		return fmt.Errorf("offscreen: class %s has no child properties", c.typ)
	}
	props, ok := c.childProps[child]
	if !ok {
		return fmt.Errorf("offscreen: %s: %s is not an attached child", c.typ, child.TypeName())
	}
	if _, ok := props[name]; !ok {
		return fmt.Errorf("offscreen: %s has no child property %q", c.typ, name)
	}
	c.driver.Stats.PropertyWrites++
	props[name] = value
	return nil
}
