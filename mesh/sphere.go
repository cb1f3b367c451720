// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	cmath "github.com/chewxy/math32"

	"cogentcore.org/core/math32"
)

// AddSphereSector adds a sphere sector with the specified radius,
// number of radial segments in each dimension, radial sector start
// angle and length in degrees (0 - 360), start = -1,0,0, and
// elevation start angle and length in degrees (0 - 180), top = 0, bot = 180.
// offset is an arbitrary offset (for composing shapes).
func (ms *Mesh) AddSphereSector(radius float32, widthSegs, heightSegs int, angStart, angLen, elevStart, elevLen float32, offset math32.Vector3) {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	elevStRad := math32.DegToRad(elevStart)
	elevLenRad := math32.DegToRad(elevLen)
	elevEndRad := elevStRad + elevLenRad

	vtxs := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		row := make([]uint32, 0, widthSegs+1)
		v := float32(y) / float32(heightSegs)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			px := -radius * cmath.Cos(angStRad+u*angLenRad) * cmath.Sin(elevStRad+v*elevLenRad)
			py := radius * cmath.Cos(elevStRad+v*elevLenRad)
			pz := radius * cmath.Sin(angStRad+u*angLenRad) * cmath.Sin(elevStRad+v*elevLenRad)
			norm := math32.Vec3(px, py, pz).Normal()
			row = append(row, ms.AddVertex(math32.Vec3(px, py, pz).Add(offset), norm, math32.Vec2(u, v)))
		}
		vtxs = append(vtxs, row)
	}

	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxs[y][x+1]
			v2 := vtxs[y][x]
			v3 := vtxs[y+1][x]
			v4 := vtxs[y+1][x+1]
			if y != 0 || elevStRad > 0 {
				ms.AddTriangle(v1, v2, v4)
			}
			if y != heightSegs-1 || elevEndRad < cmath.Pi {
				ms.AddTriangle(v2, v3, v4)
			}
		}
	}
}

// icosahedron base vertices and faces.
var (
	icoT = (1 + cmath.Sqrt(5)) / 2

	icoVertices = []math32.Vector3{
		{X: -1, Y: icoT}, {X: 1, Y: icoT}, {X: -1, Y: -icoT}, {X: 1, Y: -icoT},
		{Y: -1, Z: icoT}, {Y: 1, Z: icoT}, {Y: -1, Z: -icoT}, {Y: 1, Z: -icoT},
		{X: icoT, Z: -1}, {X: icoT, Z: 1}, {X: -icoT, Z: -1}, {X: -icoT, Z: 1},
	}

	icoFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	octVertices = []math32.Vector3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}

	octFaces = [][3]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
	}
)

// AddIcosphere adds a sphere made by subdividing each face of an
// icosahedron detail times and projecting the result onto a sphere
// of the given radius. Detail 0 is a plain icosahedron.
func (ms *Mesh) AddIcosphere(radius float32, detail int, offset math32.Vector3) {
	ms.addPolyhedron(icoVertices, icoFaces, radius, detail, offset)
}

// AddOctahedron adds an octahedron with the given radius.
func (ms *Mesh) AddOctahedron(radius float32, offset math32.Vector3) {
	ms.addPolyhedron(octVertices, octFaces, radius, 0, offset)
}

// addPolyhedron subdivides each triangular face into (detail+1)^2
// triangles whose vertices are projected onto the sphere.
// Faces are not indexed across each other, so the result has flat
// seams in the uv mapping but smooth normals.
func (ms *Mesh) addPolyhedron(base []math32.Vector3, faces [][3]int, radius float32, detail int, offset math32.Vector3) {
	if detail < 0 {
		detail = 0
	}
	cols := detail + 1
	for _, f := range faces {
		a, b, c := base[f[0]], base[f[1]], base[f[2]]
		// grid[i][j] is the point i steps from a toward c, j steps toward b
		grid := make([][]math32.Vector3, cols+1)
		for i := 0; i <= cols; i++ {
			aj := a.Add(c.Sub(a).MulScalar(float32(i) / float32(cols)))
			bj := b.Add(c.Sub(b).MulScalar(float32(i) / float32(cols)))
			rows := cols - i
			grid[i] = make([]math32.Vector3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					grid[i][j] = aj
				} else {
					grid[i][j] = aj.Add(bj.Sub(aj).MulScalar(float32(j) / float32(rows)))
				}
			}
		}
		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					ms.addSphereTri(grid[i][k+1], grid[i+1][k], grid[i][k], radius, offset)
				} else {
					ms.addSphereTri(grid[i][k+1], grid[i+1][k+1], grid[i+1][k], radius, offset)
				}
			}
		}
	}
}

// addSphereTri projects the three points onto the sphere and adds them
// as a triangle, with spherical uv coordinates.
func (ms *Mesh) addSphereTri(p0, p1, p2 math32.Vector3, radius float32, offset math32.Vector3) {
	var idx [3]uint32
	for i, p := range [3]math32.Vector3{p0, p1, p2} {
		n := p.Normal()
		u := cmath.Atan2(n.Z, -n.X)/(2*cmath.Pi) + 0.5
		v := cmath.Atan2(-n.Y, cmath.Sqrt(n.X*n.X+n.Z*n.Z))/cmath.Pi + 0.5
		idx[i] = ms.AddVertex(n.MulScalar(radius).Add(offset), n, math32.Vec2(u, v))
	}
	ms.AddTriangle(idx[0], idx[1], idx[2])
}
