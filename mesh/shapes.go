// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from g3n: https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	cmath "github.com/chewxy/math32"

	"cogentcore.org/core/math32"
)

// AddPlane adds a plane in the XY plane facing +Z, centered on offset,
// with the given size and number of segments in each direction.
func (ms *Mesh) AddPlane(width, height float32, wsegs, hsegs int, offset math32.Vector3) {
	ms.addPlaneAxes(0, 1, 2, 1, -1, width, height, 0, wsegs, hsegs, offset)
}

// AddBox adds a box with the given size centered on offset, with
// the given number of segments on each face edge.
func (ms *Mesh) AddBox(size math32.Vector3, segs int, offset math32.Vector3) {
	hs := size.MulScalar(0.5)
	ms.addPlaneAxes(2, 1, 0, -1, -1, size.Z, size.Y, hs.X, segs, segs, offset)  // +X
	ms.addPlaneAxes(2, 1, 0, 1, -1, size.Z, size.Y, -hs.X, segs, segs, offset)  // -X
	ms.addPlaneAxes(0, 2, 1, 1, 1, size.X, size.Z, hs.Y, segs, segs, offset)    // +Y
	ms.addPlaneAxes(0, 2, 1, 1, -1, size.X, size.Z, -hs.Y, segs, segs, offset)  // -Y
	ms.addPlaneAxes(0, 1, 2, 1, -1, size.X, size.Y, hs.Z, segs, segs, offset)   // +Z
	ms.addPlaneAxes(0, 1, 2, -1, -1, size.X, size.Y, -hs.Z, segs, segs, offset) // -Z
}

// addPlaneAxes adds a grid of quads spanning axes u and v at
// coordinate w along the remaining axis. The signs udir and vdir
// orient the face so that its normal points away from the origin
// (or along +w for a zero depth plane).
func (ms *Mesh) addPlaneAxes(u, v, w int, udir, vdir, width, height, depth float32, gridX, gridY int, offset math32.Vector3) {
	if gridX < 1 {
		gridX = 1
	}
	if gridY < 1 {
		gridY = 1
	}
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	hw := width / 2
	hh := height / 2

	var norm math32.Vector3
	wsign := float32(1)
	if depth < 0 {
		wsign = -1
	}
	setDim(&norm, w, wsign)

	stidx := uint32(ms.NumVertices())
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - hh
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - hw
			var pt math32.Vector3
			setDim(&pt, u, x*udir)
			setDim(&pt, v, y*vdir)
			setDim(&pt, w, depth)
			pt.SetAdd(offset)
			uv := math32.Vec2(float32(ix)/float32(gridX), 1-float32(iy)/float32(gridY))
			ms.AddVertex(pt, norm, uv)
		}
	}
	row := uint32(gridX + 1)
	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := stidx + uint32(ix) + row*uint32(iy)
			b := stidx + uint32(ix) + row*uint32(iy+1)
			c := stidx + uint32(ix+1) + row*uint32(iy+1)
			d := stidx + uint32(ix+1) + row*uint32(iy)
			ms.AddTriangle(a, b, d)
			ms.AddTriangle(b, c, d)
		}
	}
}

func setDim(v *math32.Vector3, dim int, val float32) {
	switch dim {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}

// AddDiskSector adds a disk (filled circle) or disk sector with the
// given radius, number of radial segments (minimum 3), and sector
// start angle and angle length in degrees. The disk lies on the XY
// plane facing +Z, and the angle runs counter-clockwise from +X.
func (ms *Mesh) AddDiskSector(radius float32, segs int, angStart, angLen float32, offset math32.Vector3) {
	if segs < 3 {
		segs = 3
	}
	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	norm := math32.Vec3(0, 0, 1)

	center := ms.AddVertex(offset, norm, math32.Vec2(0.5, 0.5))
	for i := 0; i <= segs; i++ {
		seg := angStRad + float32(i)/float32(segs)*angLenRad
		vx := radius * cmath.Cos(seg)
		vy := radius * cmath.Sin(seg)
		pt := math32.Vec3(vx, vy, 0).Add(offset)
		ms.AddVertex(pt, norm, math32.Vec2((vx/radius+1)/2, (vy/radius+1)/2))
	}
	for i := uint32(1); i <= uint32(segs); i++ {
		ms.AddTriangle(center+i, center+i+1, center)
	}
}
