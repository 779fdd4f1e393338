// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodil/vgtk/object"
	"github.com/bodil/vgtk/offscreen"
)

// badgeProps is the property bag for badge. No Creator on the component,
// so the bag's fields are copied onto it by name.
type badgeProps struct {
	Text   string
	OnPoke Callback[string]
}

// badge is a child component rendering a single button.
type badge struct {
	Text   string
	OnPoke Callback[string]

	changes int
	mounted bool
}

type poked struct{}

func (b *badge) Change(props any) UpdateAction {
	next := props.(badgeProps)
	b.changes++
	if next.Text == b.Text && next.OnPoke.Equal(b.OnPoke) {
		return None()
	}
	b.Text = next.Text
	b.OnPoke = next.OnPoke
	return Render()
}

func (b *badge) Mounted() { b.mounted = true }

func (b *badge) Update(msg Message) UpdateAction {
	if _, ok := msg.(poked); ok {
		b.OnPoke.Send(b.Text)
	}
	return None()
}

func (b *badge) View() VNode {
	return Widget("Button",
		Property("label", b.Text),
		OnSignal("clicked", func(*object.Event) Message { return poked{} }),
	)
}

// parentModel embeds a badge and collects its pokes.
type parentModel struct {
	Text     string
	Pokes    []string
	UseBadge bool
}

type setText struct{ text string }
type pokeArrived struct{ from string }
type dropBadge struct{}

func (m *parentModel) Update(msg Message) UpdateAction {
	switch msg := msg.(type) {
	case setText:
		m.Text = msg.text
		return Render()
	case pokeArrived:
		m.Pokes = append(m.Pokes, msg.from)
		return None()
	case dropBadge:
		m.UseBadge = false
		return Render()
	}
	return None()
}

func (m *parentModel) View() VNode {
	items := []Item{Property("orientation", "vertical")}
	if m.UseBadge {
		items = append(items, ComponentNode[*badge](badgeProps{
			Text: m.Text,
			OnPoke: BindCallback(func(from string) Message {
				return pokeArrived{from: from}
			}),
		}))
	} else {
		items = append(items, Widget("Label", Property("label", "gone")))
	}
	return Widget("Window", Widget("Box", items...))
}

func badgeButton(task *Task) *offscreen.Button {
	box := task.object().(*offscreen.Window).Child().(*offscreen.Box)
	return box.Children()[0].(*offscreen.Button)
}

func TestSubComponentMountsWithProps(t *testing.T) {
	r := newRig(t)
	model := &parentModel{Text: "hello", UseBadge: true}
	task := r.mount(model)

	button := badgeButton(task)
	assert.Equal(t, "hello", prop(t, button, "label"))
}

func TestSubComponentReceivesNewProps(t *testing.T) {
	r := newRig(t)
	model := &parentModel{Text: "hello", UseBadge: true}
	task := r.mount(model)
	button := badgeButton(task)

	task.Scope().Send(setText{text: "goodbye"})
	r.run()
	assert.Equal(t, "goodbye", prop(t, button, "label"))

	// An unchanged parent render still delivers the bag, and the child
	// declines to re-render.
	r.driver.Stats.Reset()
	task.Scope().Send(setText{text: "goodbye"})
	r.run()
	assert.Zero(t, r.driver.Stats.PropertyWrites)
}

func TestSubComponentCallbackReachesParent(t *testing.T) {
	r := newRig(t)
	model := &parentModel{Text: "hello", UseBadge: true}
	task := r.mount(model)
	button := badgeButton(task)

	button.Click()
	r.run()
	// click -> badge poll -> callback -> parent poll
	r.run()

	require.Equal(t, []string{"hello"}, model.Pokes)
}

func TestSubComponentUnmountsWithParentTree(t *testing.T) {
	r := newRig(t)
	model := &parentModel{Text: "hello", UseBadge: true}
	task := r.mount(model)
	button := badgeButton(task)

	task.Scope().Send(dropBadge{})
	r.run()
	// The badge's unmount is a message to its own task.
	r.run()

	assert.True(t, button.Destroyed())
	box := task.object().(*offscreen.Window).Child().(*offscreen.Box)
	require.Len(t, box.Children(), 1)
	assert.Equal(t, "gone", prop(t, box.Children()[0], "label"))
}

func TestMountedHook(t *testing.T) {
	r := newRig(t)
	b := &badge{Text: "hi"}
	task := r.mount(b)

	assert.True(t, b.mounted)
	assert.Equal(t, TaskMounted, task.State())
}

// defaultCopyProps exercises the no-Creator path: fields copied by name.
type plainChildProps struct {
	Caption string
}

type plainChild struct {
	Caption string
}

func (c *plainChild) Update(Message) UpdateAction { return None() }

func (c *plainChild) Change(props any) UpdateAction {
	next := props.(plainChildProps)
	if next.Caption == c.Caption {
		return None()
	}
	c.Caption = next.Caption
	return Render()
}

func (c *plainChild) View() VNode {
	return Widget("Label", Property("label", c.Caption))
}

type plainParent struct{}

func (p *plainParent) Update(Message) UpdateAction { return None() }

func (p *plainParent) View() VNode {
	return Widget("Window",
		Widget("Box",
			ComponentNode[*plainChild](plainChildProps{Caption: "copied"}),
		),
	)
}

func TestDefaultPropsCopy(t *testing.T) {
	r := newRig(t)
	task := r.mount(&plainParent{})

	box := task.object().(*offscreen.Window).Child().(*offscreen.Box)
	label := box.Children()[0].(*offscreen.Label)
	assert.Equal(t, "copied", prop(t, label, "label"))
}
