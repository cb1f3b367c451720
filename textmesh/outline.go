// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textmesh

import (
	"slices"

	"cogentcore.org/core/math32"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// contour is a closed polygon; the first point is not repeated at the end.
type contour []math32.Vector2

// area returns the signed area of the contour, positive when
// counter-clockwise with Y up.
func (c contour) area() float32 {
	var a float32
	n := len(c)
	for i := range n {
		p, q := c[i], c[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// contains reports whether pt is inside the contour, by ray crossing.
func (c contour) contains(pt math32.Vector2) bool {
	in := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := c[i], c[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) && pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}

// shape is one filled region: an outer contour, counter-clockwise,
// and the holes inside it, clockwise.
type shape struct {
	outer contour
	holes []contour
}

// glyphContours flattens the glyph outline into contours, scaled by
// scale and translated by off, with curves split into segs lines.
func glyphContours(outline font.GlyphOutline, scale float32, off math32.Vector2, segs int) []contour {
	if segs < 1 {
		segs = 1
	}
	var cs []contour
	var cur contour
	for _, s := range outline.Segments {
		arg := func(i int) math32.Vector2 {
			return math32.Vec2(s.Args[i].X*scale+off.X, s.Args[i].Y*scale+off.Y)
		}
		var last math32.Vector2
		if len(cur) > 0 {
			last = cur[len(cur)-1]
		}
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			cs = appendContour(cs, cur)
			cur = contour{arg(0)}
		case opentype.SegmentOpLineTo:
			cur = append(cur, arg(0))
		case opentype.SegmentOpQuadTo:
			c1, p := arg(0), arg(1)
			for i := 1; i <= segs; i++ {
				t := float32(i) / float32(segs)
				mt := 1 - t
				cur = append(cur, last.MulScalar(mt*mt).Add(c1.MulScalar(2*mt*t)).Add(p.MulScalar(t*t)))
			}
		case opentype.SegmentOpCubeTo:
			c1, c2, p := arg(0), arg(1), arg(2)
			for i := 1; i <= segs; i++ {
				t := float32(i) / float32(segs)
				mt := 1 - t
				cur = append(cur, last.MulScalar(mt*mt*mt).Add(c1.MulScalar(3*mt*mt*t)).Add(c2.MulScalar(3*mt*t*t)).Add(p.MulScalar(t*t*t)))
			}
		}
	}
	return appendContour(cs, cur)
}

// appendContour cleans up c and appends it to cs if it still
// encloses some area.
func appendContour(cs []contour, c contour) []contour {
	if len(c) == 0 {
		return cs
	}
	cl := contour{c[0]}
	for _, p := range c[1:] {
		if !nearlyEqual(p, cl[len(cl)-1]) {
			cl = append(cl, p)
		}
	}
	for len(cl) > 1 && nearlyEqual(cl[0], cl[len(cl)-1]) {
		cl = cl[:len(cl)-1]
	}
	if len(cl) < 3 || math32.Abs(cl.area()) < 1e-12 {
		return cs
	}
	return append(cs, cl)
}

func nearlyEqual(a, b math32.Vector2) bool {
	return math32.Abs(a.X-b.X) < 1e-7 && math32.Abs(a.Y-b.Y) < 1e-7
}

// buildShapes sorts contours into outer boundaries and holes by their
// nesting depth, which works for both TrueType and CFF winding
// conventions. Outer contours are made counter-clockwise and holes
// clockwise.
func buildShapes(cs []contour) []shape {
	order := make([]int, len(cs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		aa, ab := math32.Abs(cs[a].area()), math32.Abs(cs[b].area())
		switch {
		case aa > ab:
			return -1
		case aa < ab:
			return 1
		}
		return 0
	})

	depth := make([]int, len(cs))
	shapeOf := make(map[int]int)
	var shapes []shape
	for oi, ci := range order {
		c := cs[ci]
		parent := -1
		for pj := oi - 1; pj >= 0; pj-- {
			pc := order[pj]
			if cs[pc].contains(c[0]) {
				if parent < 0 {
					parent = pc
				}
				depth[ci]++
			}
		}
		if depth[ci]%2 == 0 {
			if c.area() < 0 {
				slices.Reverse(c)
			}
			shapeOf[ci] = len(shapes)
			shapes = append(shapes, shape{outer: c})
			continue
		}
		if c.area() > 0 {
			slices.Reverse(c)
		}
		// the innermost containing contour of even depth owns this hole
		owner := parent
		for pj := oi - 1; pj >= 0; pj-- {
			pc := order[pj]
			if depth[pc]%2 == 0 && cs[pc].contains(c[0]) {
				owner = pc
				break
			}
		}
		if si, ok := shapeOf[owner]; ok {
			shapes[si].holes = append(shapes[si].holes, c)
		}
	}
	return shapes
}
