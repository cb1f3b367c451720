// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinds

// Geometry describes the fixed shape parameters used to build the mesh
// for a primitive kind. Only the fields relevant to Kind are used.
// All dimensions are in scene units; all primitives are unit scale and
// callers change the size through the object transform instead.
type Geometry struct {

	// Kind is the primitive kind that this geometry describes.
	Kind Kinds

	// Width is the X size of planes and boxes.
	Width float32

	// Height is the Y size of planes, boxes, cylinders and cones.
	Height float32

	// Depth is the Z size of boxes.
	Depth float32

	// Radius is the radius of circles, spheres, cones and the main
	// radius of a torus.
	Radius float32

	// TopRadius is the top radius of a cylinder; 0 for a cone.
	TopRadius float32

	// Tube is the radius of the torus tube.
	Tube float32

	// WidthSegs is the number of segments around a sphere, or across a plane.
	WidthSegs int

	// HeightSegs is the number of segments along the height.
	HeightSegs int

	// RadialSegs is the number of segments around a circle, cylinder, cone or torus ring.
	RadialSegs int

	// TubularSegs is the number of segments around the torus tube.
	TubularSegs int

	// Detail is the subdivision level of an icosphere.
	Detail int

	// DoubleSided marks shapes whose back faces must not be culled.
	DoubleSided bool
}

// defaultGeometry holds the default parameters for each primitive kind.
var defaultGeometry = map[Kinds]Geometry{
	Plane:     {Kind: Plane, Width: 1, Height: 1, WidthSegs: 1, HeightSegs: 1, DoubleSided: true},
	Cube:      {Kind: Cube, Width: 1, Height: 1, Depth: 1, WidthSegs: 1, HeightSegs: 1},
	Circle:    {Kind: Circle, Radius: 1, RadialSegs: 10},
	UVSphere:  {Kind: UVSphere, Radius: 1, WidthSegs: 30, HeightSegs: 30},
	IcoSphere: {Kind: IcoSphere, Radius: 1, Detail: 2},
	Cylinder:  {Kind: Cylinder, Radius: 1, TopRadius: 1, Height: 1, RadialSegs: 20, HeightSegs: 20},
	Cone:      {Kind: Cone, Radius: 1, TopRadius: 0, Height: 2, RadialSegs: 10, HeightSegs: 10},
	Torus:     {Kind: Torus, Radius: 0.5, Tube: 0.1, RadialSegs: 10, TubularSegs: 50},
}

// DefaultGeometry returns the default geometry for the given primitive
// kind, and false if the kind is not a primitive.
func DefaultGeometry(k Kinds) (Geometry, bool) {
	g, ok := defaultGeometry[k]
	return g, ok
}
