// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textmesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

const triEpsilon = 1e-12

// cross2 returns the z component of (b-a) x (c-a).
func cross2(a, b, c math32.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// polyArea returns twice the signed area of the polygon given by
// indexes into pts.
func polyArea(pts []math32.Vector2, poly []int) float32 {
	var a float32
	n := len(poly)
	for i := range n {
		p, q := pts[poly[i]], pts[poly[(i+1)%n]]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// segmentsCross reports whether segments ab and cd properly intersect.
func segmentsCross(a, b, c, d math32.Vector2) bool {
	o1 := cross2(a, b, c)
	o2 := cross2(a, b, d)
	o3 := cross2(c, d, a)
	o4 := cross2(c, d, b)
	return ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) && ((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0))
}

// blocked reports whether the segment ab crosses any edge of the
// given polygons, ignoring edges that touch a or b.
func blocked(pts []math32.Vector2, a, b math32.Vector2, polys ...[]int) bool {
	for _, poly := range polys {
		n := len(poly)
		for i := range n {
			c, d := pts[poly[i]], pts[poly[(i+1)%n]]
			if c == a || c == b || d == a || d == b {
				continue
			}
			if segmentsCross(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// mergeHoles joins each hole into the outer polygon through a bridge
// edge from the hole's rightmost vertex to a visible outer vertex,
// returning a single polygon that can be ear clipped. The outer
// polygon must be counter-clockwise and the holes clockwise.
func mergeHoles(pts []math32.Vector2, outer []int, holes [][]int) []int {
	poly := slices.Clone(outer)
	if len(holes) == 0 {
		return poly
	}
	type hole struct {
		idx []int
		max int
	}
	hs := make([]hole, len(holes))
	for i, h := range holes {
		m := 0
		for j := range h {
			if pts[h[j]].X > pts[h[m]].X {
				m = j
			}
		}
		hs[i] = hole{h, m}
	}
	slices.SortStableFunc(hs, func(a, b hole) int {
		ax, bx := pts[a.idx[a.max]].X, pts[b.idx[b.max]].X
		switch {
		case ax > bx:
			return -1
		case ax < bx:
			return 1
		}
		return 0
	})

	for hi, h := range hs {
		m := pts[h.idx[h.max]]
		rest := make([][]int, 0, len(hs)-hi+1)
		rest = append(rest, poly)
		for _, oh := range hs[hi:] {
			rest = append(rest, oh.idx)
		}
		best := -1
		var bestD float32
		for pass := 0; pass < 3 && best < 0; pass++ {
			for i, pi := range poly {
				p := pts[pi]
				if pass == 0 && p.X < m.X {
					continue
				}
				dx, dy := p.X-m.X, p.Y-m.Y
				d := dx*dx + dy*dy
				if best >= 0 && d >= bestD {
					continue
				}
				if pass < 2 && blocked(pts, m, p, rest...) {
					continue
				}
				best, bestD = i, d
			}
		}
		np := make([]int, 0, len(poly)+len(h.idx)+2)
		np = append(np, poly[:best+1]...)
		np = append(np, h.idx[h.max:]...)
		np = append(np, h.idx[:h.max]...)
		np = append(np, h.idx[h.max], poly[best])
		np = append(np, poly[best+1:]...)
		poly = np
	}
	return poly
}

// earClip triangulates the simple polygon given by indexes into pts,
// returning triangles in counter-clockwise order. Vertices that
// coincide with an ear's corners, as occur along hole bridges, do not
// block the ear. On a degenerate polygon it returns the triangles
// found so far.
func earClip(pts []math32.Vector2, poly []int) [][3]int {
	nv := len(poly)
	if nv < 3 {
		return nil
	}
	vs := slices.Clone(poly)
	if polyArea(pts, vs) < 0 {
		slices.Reverse(vs)
	}
	tris := make([][3]int, 0, nv-2)
	count := 2 * nv
	for v := nv - 1; nv > 2; {
		count--
		if count <= 0 {
			break
		}
		u := v
		if nv <= u {
			u = 0
		}
		v = u + 1
		if nv <= v {
			v = 0
		}
		w := v + 1
		if nv <= w {
			w = 0
		}
		if isEar(pts, vs, u, v, w) {
			tris = append(tris, [3]int{vs[u], vs[v], vs[w]})
			vs = slices.Delete(vs, v, v+1)
			nv--
			count = 2 * nv
		}
	}
	return tris
}

func isEar(pts []math32.Vector2, vs []int, u, v, w int) bool {
	a, b, c := pts[vs[u]], pts[vs[v]], pts[vs[w]]
	if cross2(a, b, c) <= triEpsilon {
		return false
	}
	for p := range vs {
		if p == u || p == v || p == w {
			continue
		}
		pt := pts[vs[p]]
		if pt == a || pt == b || pt == c {
			continue
		}
		if cross2(a, b, pt) >= 0 && cross2(b, c, pt) >= 0 && cross2(c, a, pt) >= 0 {
			return false
		}
	}
	return true
}
