// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/kinds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrimitives(t *testing.T) {
	for _, k := range kinds.KindsValues() {
		g, ok := kinds.DefaultGeometry(k)
		if !ok {
			continue
		}
		ms, err := New(g)
		require.NoError(t, err, k.String())
		assert.NoError(t, ms.Validate(), k.String())
		assert.Positive(t, ms.NumTriangles(), k.String())
		assert.False(t, ms.BBox.IsEmpty(), k.String())
	}
}

func TestNewNotPrimitive(t *testing.T) {
	_, err := New(kinds.Geometry{Kind: kinds.Camera})
	assert.Error(t, err)
}

func TestBoxBounds(t *testing.T) {
	ms := NewMesh("box")
	ms.AddBox(math32.Vec3(1, 2, 3), 1, math32.Vector3{})
	require.NoError(t, ms.Validate())
	assert.Equal(t, 24, ms.NumVertices())
	assert.Equal(t, 12, ms.NumTriangles())
	assert.InDelta(t, -0.5, ms.BBox.Min.X, 1e-6)
	assert.InDelta(t, 1, ms.BBox.Max.Y, 1e-6)
	assert.InDelta(t, 1.5, ms.BBox.Max.Z, 1e-6)
}

func TestIcosphereOnSphere(t *testing.T) {
	ms := NewMesh("ico")
	ms.AddIcosphere(2, 1, math32.Vector3{})
	require.NoError(t, ms.Validate())
	assert.Equal(t, 20*4, ms.NumTriangles())
	for i := 0; i < ms.NumVertices(); i++ {
		assert.InDelta(t, 2, ms.Position(i).Length(), 1e-4)
	}
}

func TestConeApex(t *testing.T) {
	g, _ := kinds.DefaultGeometry(kinds.Cone)
	ms, err := New(g)
	require.NoError(t, err)
	assert.InDelta(t, 1, ms.BBox.Max.Y, 1e-6)
	assert.InDelta(t, -1, ms.BBox.Min.Y, 1e-6)
}

func TestCenter(t *testing.T) {
	ms := NewMesh("plane")
	ms.AddPlane(2, 2, 1, 1, math32.Vec3(3, 4, 5))
	off := ms.Center()
	assert.InDelta(t, -3, off.X, 1e-6)
	c := ms.BBox.Center()
	assert.InDelta(t, 0, c.X, 1e-6)
	assert.InDelta(t, 0, c.Y, 1e-6)
	assert.InDelta(t, 0, c.Z, 1e-6)
}

func TestValidateBadIndex(t *testing.T) {
	ms := NewMesh("bad")
	ms.AddVertex(math32.Vector3{}, math32.Vec3(0, 0, 1), math32.Vector2{})
	ms.AddTriangle(0, 0, 5)
	assert.Error(t, ms.Validate())
}
