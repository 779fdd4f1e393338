// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgtk

import "sync"

// inbox is a component task's message queue: an unbounded FIFO with an
// explicit closed state. Pushes may come from any goroutine (scopes,
// deferred jobs); pops happen only on the main loop goroutine. Closing
// drops nothing: queued messages remain poppable, only further pushes
// are refused.
type inbox struct {
	mu     sync.Mutex
	items  []componentMessage
	closed bool
}

// push appends a message, reporting false if the inbox is closed.
func (q *inbox) push(m componentMessage) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, m)
	return true
}

// pop removes and returns the oldest message. ok is false when the inbox
// is empty.
func (q *inbox) pop() (m componentMessage, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	m = q.items[0]
	q.items = q.items[1:]
	return m, true
}

func (q *inbox) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

func (q *inbox) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
