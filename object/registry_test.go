// Copyright (c) 2026, The Vgtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodil/vgtk/object"
	"github.com/bodil/vgtk/offscreen"
)

func TestRegistryKnownAndConstruct(t *testing.T) {
	d := offscreen.New()
	r := d.Registry

	assert.True(t, r.Known("Label"))
	assert.False(t, r.Known("Flux"))

	obj, err := r.Construct("Label")
	require.NoError(t, err)
	assert.Equal(t, "Label", obj.TypeName())

	_, err = r.Construct("Flux")
	assert.ErrorContains(t, err, "unknown class")
}

func TestRegisterTypeReplaces(t *testing.T) {
	r := object.NewRegistry()
	d := offscreen.New()

	r.RegisterType("Thing", func() object.Object { return d.NewLabel() })
	obj, err := r.Construct("Thing")
	require.NoError(t, err)
	assert.Equal(t, "Label", obj.TypeName())

	r.RegisterType("Thing", func() object.Object { return d.NewButton() })
	obj, err = r.Construct("Thing")
	require.NoError(t, err)
	assert.Equal(t, "Button", obj.TypeName())
}
