// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted directly from g3n: https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	cmath "github.com/chewxy/math32"

	"cogentcore.org/core/math32"
)

// AddCylinderSector adds a generalized cylinder (truncated cone) sector
// with the specified top and bottom radii, height, number of radial
// segments, number of height segments, sector start angle in degrees
// (start = -1,0,0), sector size angle in degrees, and presence of a top
// and/or bottom cap. A top radius of 0 makes a cone.
// Height is along the Y axis, centered on offset.
func (ms *Mesh) AddCylinderSector(height, topRad, botRad float32, radialSegs, heightSegs int, angStart, angLen float32, top, bottom bool, offset math32.Vector3) {
	if radialSegs < 3 {
		radialSegs = 3
	}
	if heightSegs < 1 {
		heightSegs = 1
	}
	hHt := height / 2
	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	tanTheta := (botRad - topRad) / height

	vtxs := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		row := make([]uint32, 0, radialSegs+1)
		v := float32(y) / float32(heightSegs)
		radius := v*(botRad-topRad) + topRad
		for x := 0; x <= radialSegs; x++ {
			u := float32(x) / float32(radialSegs)
			ang := u*angLenRad + angStRad
			sin := cmath.Sin(ang)
			cos := cmath.Cos(ang)
			pt := math32.Vec3(-radius*cos, -v*height+hHt, radius*sin).Add(offset)
			norm := math32.Vec3(-cos, tanTheta, sin).Normal()
			row = append(row, ms.AddVertex(pt, norm, math32.Vec2(u, 1-v)))
		}
		vtxs = append(vtxs, row)
	}

	for x := 0; x < radialSegs; x++ {
		for y := 0; y < heightSegs; y++ {
			v1 := vtxs[y][x]
			v2 := vtxs[y+1][x]
			v3 := vtxs[y+1][x+1]
			v4 := vtxs[y][x+1]
			ms.AddTriangle(v1, v2, v4)
			ms.AddTriangle(v2, v3, v4)
		}
	}

	if top && topRad > 0 {
		ms.addCylinderCap(hHt, topRad, radialSegs, angStRad, angLenRad, true, offset)
	}
	if bottom && botRad > 0 {
		ms.addCylinderCap(-hHt, botRad, radialSegs, angStRad, angLenRad, false, offset)
	}
}

// addCylinderCap adds a fan of triangles closing one end of a cylinder.
func (ms *Mesh) addCylinderCap(y, radius float32, radialSegs int, angStRad, angLenRad float32, top bool, offset math32.Vector3) {
	ny := float32(-1)
	if top {
		ny = 1
	}
	norm := math32.Vec3(0, ny, 0)
	center := ms.AddVertex(math32.Vec3(0, y, 0).Add(offset), norm, math32.Vec2(0.5, 0.5))
	for x := 0; x <= radialSegs; x++ {
		u := float32(x) / float32(radialSegs)
		ang := u*angLenRad + angStRad
		cos := cmath.Cos(ang)
		sin := cmath.Sin(ang)
		pt := math32.Vec3(-radius*cos, y, radius*sin).Add(offset)
		ms.AddVertex(pt, norm, math32.Vec2(0.5-cos*0.5, 0.5+sin*0.5*ny))
	}
	for x := uint32(1); x <= uint32(radialSegs); x++ {
		if top {
			ms.AddTriangle(center, center+x, center+x+1)
		} else {
			ms.AddTriangle(center, center+x+1, center+x)
		}
	}
}

// AddTorus adds a torus in the XY plane with the given ring radius,
// tube radius, number of segments around the ring and around the tube,
// and arc length in degrees (360 for a closed ring).
func (ms *Mesh) AddTorus(radius, tube float32, radialSegs, tubularSegs int, arc float32, offset math32.Vector3) {
	if radialSegs < 3 {
		radialSegs = 3
	}
	if tubularSegs < 3 {
		tubularSegs = 3
	}
	arcRad := math32.DegToRad(arc)
	stidx := uint32(ms.NumVertices())
	for j := 0; j <= radialSegs; j++ {
		for i := 0; i <= tubularSegs; i++ {
			u := float32(i) / float32(tubularSegs) * arcRad
			v := float32(j) / float32(radialSegs) * cmath.Pi * 2
			cu, su := cmath.Cos(u), cmath.Sin(u)
			cv, sv := cmath.Cos(v), cmath.Sin(v)
			pt := math32.Vec3((radius+tube*cv)*cu, (radius+tube*cv)*su, tube*sv)
			center := math32.Vec3(radius*cu, radius*su, 0)
			norm := pt.Sub(center).Normal()
			ms.AddVertex(pt.Add(offset), norm, math32.Vec2(float32(i)/float32(tubularSegs), float32(j)/float32(radialSegs)))
		}
	}
	row := uint32(tubularSegs + 1)
	for j := uint32(1); j <= uint32(radialSegs); j++ {
		for i := uint32(1); i <= uint32(tubularSegs); i++ {
			a := stidx + row*j + i - 1
			b := stidx + row*(j-1) + i - 1
			c := stidx + row*(j-1) + i
			d := stidx + row*j + i
			ms.AddTriangle(a, b, d)
			ms.AddTriangle(b, c, d)
		}
	}
}
