// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textmesh

import (
	cmath "github.com/chewxy/math32"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/mesh"
)

// layer is one ring of the extrusion: the contour pushed out by
// offset along the bevel vectors, at depth z.
type layer struct {
	z, offset float32
}

// layers returns the extrusion rings from front to back. With a
// bevel, the front and back rings follow a quarter circle from the
// outline out to BevelSize.
func layers(op *Options) []layer {
	if !op.Bevel || op.BevelSegments < 1 {
		return []layer{{0, 0}, {op.Depth, 0}}
	}
	segs := op.BevelSegments
	ls := make([]layer, 0, 2*segs+2)
	ring := func(b int) (z, off float32) {
		t := float32(b) / float32(segs)
		z = op.BevelThickness * cmath.Cos(t*cmath.Pi/2)
		off = op.BevelSize*cmath.Sin(t*cmath.Pi/2) + op.BevelOffset
		return
	}
	for b := 0; b < segs; b++ {
		z, off := ring(b)
		ls = append(ls, layer{-z, off})
	}
	full := op.BevelSize + op.BevelOffset
	ls = append(ls, layer{0, full}, layer{op.Depth, full})
	for b := segs - 1; b >= 0; b-- {
		z, off := ring(b)
		ls = append(ls, layer{op.Depth + z, off})
	}
	return ls
}

// bevelVectors returns, for each point of c, the direction to push it
// outward from the filled region, scaled so that edges move by unit
// distance.
func bevelVectors(c contour) []math32.Vector2 {
	n := len(c)
	bv := make([]math32.Vector2, n)
	for i := range n {
		prev, cur, next := c[(i+n-1)%n], c[i], c[(i+1)%n]
		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)
		v := n1.Add(n2)
		l := v.Length()
		if l < 1e-9 {
			bv[i] = n1
			continue
		}
		v = v.DivScalar(l)
		s := v.Dot(n1)
		if s < 0.5 {
			s = 0.5
		}
		bv[i] = v.DivScalar(s)
	}
	return bv
}

// edgeNormal returns the unit normal on the right of the edge a->b,
// which faces away from the filled region for counter-clockwise
// outer contours and clockwise holes.
func edgeNormal(a, b math32.Vector2) math32.Vector2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(d.Y/l, -d.X/l)
}

// extrudeShape adds the caps and walls of one shape to ms.
func extrudeShape(ms *mesh.Mesh, sh shape, op *Options) {
	conts := make([]contour, 0, 1+len(sh.holes))
	conts = append(conts, sh.outer)
	conts = append(conts, sh.holes...)

	var pts, bvs []math32.Vector2
	idxs := make([][]int, len(conts))
	for ci, c := range conts {
		idx := make([]int, len(c))
		for i := range c {
			idx[i] = len(pts) + i
		}
		idxs[ci] = idx
		pts = append(pts, c...)
		bvs = append(bvs, bevelVectors(c)...)
	}
	tris := earClip(pts, mergeHoles(pts, idxs[0], idxs[1:]))
	ls := layers(op)

	pos := func(l layer, k int) math32.Vector3 {
		p := pts[k].Add(bvs[k].MulScalar(l.offset))
		return math32.Vec3(p.X, p.Y, l.z)
	}

	addCap := func(l layer, front bool) {
		nz := float32(1)
		if front {
			nz = -1
		}
		norm := math32.Vec3(0, 0, nz)
		st := uint32(ms.NumVertices())
		for k := range pts {
			p := pos(l, k)
			ms.AddVertex(p, norm, math32.Vec2(p.X, p.Y))
		}
		for _, t := range tris {
			a, b, c := st+uint32(t[0]), st+uint32(t[1]), st+uint32(t[2])
			if front {
				ms.AddTriangle(a, c, b)
			} else {
				ms.AddTriangle(a, b, c)
			}
		}
	}
	addCap(ls[0], true)
	addCap(ls[len(ls)-1], false)

	for _, idx := range idxs {
		n := len(idx)
		for li := 0; li < len(ls)-1; li++ {
			l0, l1 := ls[li], ls[li+1]
			v0 := float32(li) / float32(len(ls)-1)
			v1 := float32(li+1) / float32(len(ls)-1)
			for i := range n {
				j := (i + 1) % n
				p0, p1 := pos(l0, idx[i]), pos(l0, idx[j])
				p2, p3 := pos(l1, idx[j]), pos(l1, idx[i])
				norm := p1.Sub(p0).Cross(p2.Sub(p0))
				if norm.Length() < 1e-12 {
					norm = p2.Sub(p0).Cross(p3.Sub(p0))
				}
				norm = norm.Normal()
				u0 := float32(i) / float32(n)
				u1 := float32(i+1) / float32(n)
				a := ms.AddVertex(p0, norm, math32.Vec2(u0, v0))
				b := ms.AddVertex(p1, norm, math32.Vec2(u1, v0))
				c := ms.AddVertex(p2, norm, math32.Vec2(u1, v1))
				d := ms.AddVertex(p3, norm, math32.Vec2(u0, v1))
				ms.AddTriangle(a, b, c)
				ms.AddTriangle(a, c, d)
			}
		}
	}
}
