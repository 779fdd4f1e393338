// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "fmt"

// Registry maps native class identifiers to default constructors. This is
// the generic construct-by-class-name path; classes that cannot be
// default-constructed (the platform Application object) are built through
// an explicit constructor closure on the widget descriptor instead.
//
// A Registry is confined to the main loop goroutine, like everything else
// that touches native objects.
type Registry struct {
	types map[string]func() Object
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]func() Object{}}
}

// RegisterType registers a default constructor for the given class name,
// replacing any previous registration.
func (r *Registry) RegisterType(name string, ctor func() Object) {
	r.types[name] = ctor
}

// Known reports whether the class name has a registered constructor.
func (r *Registry) Known(name string) bool {
	_, ok := r.types[name]
	return ok
}

// Construct default-constructs an instance of the named class.
func (r *Registry) Construct(name string) (Object, error) {
	ctor, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("object: unknown class %q", name)
	}
	return ctor(), nil
}
