// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh generates triangle meshes for the primitive shapes
// used by the scene factory. The shape generators are based on
// https://github.com/g3n/engine and the original gi3d package.
package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/kinds"
)

// Mesh holds indexed triangle data: positions, normals and texture
// coordinates for each vertex, plus the triangle index list.
// Meshes are shared by reference across all objects using them.
type Mesh struct {

	// Name is the unique name of the mesh.
	Name string

	// Vertex holds the xyz position of each vertex.
	Vertex []float32

	// Normal holds the xyz normal of each vertex.
	Normal []float32

	// TexCoord holds the uv texture coordinate of each vertex.
	TexCoord []float32

	// Index holds three vertex indexes per triangle.
	Index []uint32

	// BBox is the bounding box of all vertex positions.
	BBox math32.Box3
}

// NewMesh returns a new empty mesh with the given name.
func NewMesh(name string) *Mesh {
	ms := &Mesh{Name: name}
	ms.BBox.SetEmpty()
	return ms
}

// New builds the mesh for the given primitive geometry.
func New(g kinds.Geometry) (*Mesh, error) {
	ms := NewMesh(g.Kind.String())
	switch g.Kind {
	case kinds.Plane:
		ms.AddPlane(g.Width, g.Height, g.WidthSegs, g.HeightSegs, math32.Vector3{})
	case kinds.Cube:
		ms.AddBox(math32.Vec3(g.Width, g.Height, g.Depth), g.WidthSegs, math32.Vector3{})
	case kinds.Circle:
		ms.AddDiskSector(g.Radius, g.RadialSegs, 0, 360, math32.Vector3{})
	case kinds.UVSphere:
		ms.AddSphereSector(g.Radius, g.WidthSegs, g.HeightSegs, 0, 360, 0, 180, math32.Vector3{})
	case kinds.IcoSphere:
		ms.AddIcosphere(g.Radius, g.Detail, math32.Vector3{})
	case kinds.Cylinder, kinds.Cone:
		ms.AddCylinderSector(g.Height, g.TopRadius, g.Radius, g.RadialSegs, g.HeightSegs, 0, 360, true, true, math32.Vector3{})
	case kinds.Torus:
		ms.AddTorus(g.Radius, g.Tube, g.RadialSegs, g.TubularSegs, 360, math32.Vector3{})
	default:
		return nil, fmt.Errorf("mesh.New: %v is not a primitive kind", g.Kind)
	}
	return ms, nil
}

// NumVertices returns the number of vertices in the mesh.
func (ms *Mesh) NumVertices() int {
	return len(ms.Vertex) / 3
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// AddVertex appends a vertex and returns its index.
func (ms *Mesh) AddVertex(pos, norm math32.Vector3, uv math32.Vector2) uint32 {
	idx := uint32(ms.NumVertices())
	ms.Vertex = append(ms.Vertex, pos.X, pos.Y, pos.Z)
	ms.Normal = append(ms.Normal, norm.X, norm.Y, norm.Z)
	ms.TexCoord = append(ms.TexCoord, uv.X, uv.Y)
	ms.BBox.ExpandByPoint(pos)
	return idx
}

// AddTriangle appends a triangle with the given vertex indexes,
// in counter-clockwise order.
func (ms *Mesh) AddTriangle(a, b, c uint32) {
	ms.Index = append(ms.Index, a, b, c)
}

// Position returns the position of the vertex at index i.
func (ms *Mesh) Position(i int) math32.Vector3 {
	return math32.Vec3(ms.Vertex[3*i], ms.Vertex[3*i+1], ms.Vertex[3*i+2])
}

// Translate moves every vertex by the given offset.
func (ms *Mesh) Translate(off math32.Vector3) {
	for i := 0; i < len(ms.Vertex); i += 3 {
		ms.Vertex[i] += off.X
		ms.Vertex[i+1] += off.Y
		ms.Vertex[i+2] += off.Z
	}
	if !ms.BBox.IsEmpty() {
		ms.BBox.Min.SetAdd(off)
		ms.BBox.Max.SetAdd(off)
	}
}

// Center translates the mesh so that the center of its bounding box
// is at the origin, and returns the offset that was applied.
func (ms *Mesh) Center() math32.Vector3 {
	if ms.BBox.IsEmpty() {
		return math32.Vector3{}
	}
	off := ms.BBox.Center().Negate()
	ms.Translate(off)
	return off
}

// Validate checks that the buffers are consistent and that every
// index refers to an existing vertex.
func (ms *Mesh) Validate() error {
	nv := ms.NumVertices()
	if len(ms.Vertex)%3 != 0 || len(ms.Normal) != len(ms.Vertex) || len(ms.TexCoord) != 2*nv {
		return fmt.Errorf("mesh %q: inconsistent buffer sizes: %d vertex, %d normal, %d uv", ms.Name, len(ms.Vertex), len(ms.Normal), len(ms.TexCoord))
	}
	if len(ms.Index)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", ms.Name, len(ms.Index))
	}
	for i, idx := range ms.Index {
		if int(idx) >= nv {
			return fmt.Errorf("mesh %q: index %d at %d out of range (%d vertices)", ms.Name, idx, i, nv)
		}
	}
	return nil
}
