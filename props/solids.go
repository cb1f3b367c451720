// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"log/slog"

	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
)

// SolidProperties is the shared part of the controllers for solids:
// transform and material fields, and rebuilding the mesh when a
// geometry field changes.
type SolidProperties struct {
	Base

	// Solid is the bound solid.
	Solid *scene.Solid
}

func (sp *SolidProperties) setSolid(kind kinds.Kinds, sld *scene.Solid, surface Surface) {
	sp.init(kind, sld, surface)
	sp.Solid = sld
	sp.refresh = sp.rebuild
}

// rebuild regenerates the mesh of the solid after a geometry change.
func (sp *SolidProperties) rebuild() {
	if err := sp.Solid.Rebuild(); err != nil {
		slog.Error("props: rebuilding mesh", "solid", sp.Solid.Name, "err", err)
	}
}

// initSolid adds the transform fields, then the geometry fields added
// by geom, then the material fields.
func (sp *SolidProperties) initSolid(geom func(g *kinds.Geometry)) {
	if !sp.begin() {
		return
	}
	sp.addPose(&sp.Solid.Pose, nil)
	sp.capture(&sp.Solid.Geometry)
	geom(&sp.Solid.Geometry)
	sp.addMaterial(sp.Solid.Material)
}

func (sp *SolidProperties) size(label string, v *float32) {
	sp.addFloat(GroupGeometry, label, v, 0.001, 1000, 0.1, sp.rebuild)
}

func (sp *SolidProperties) segments(label string, v *int, min int) {
	sp.addInt(GroupGeometry, label, v, min, 512, sp.rebuild)
}

// PlaneProperties edits a plane.
type PlaneProperties struct {
	SolidProperties
}

func (pp *PlaneProperties) InitProperties() {
	pp.initSolid(func(g *kinds.Geometry) {
		pp.size("width", &g.Width)
		pp.size("height", &g.Height)
	})
}

// BoxProperties edits a cube.
type BoxProperties struct {
	SolidProperties
}

func (bp *BoxProperties) InitProperties() {
	bp.initSolid(func(g *kinds.Geometry) {
		bp.size("width", &g.Width)
		bp.size("height", &g.Height)
		bp.size("depth", &g.Depth)
		bp.segments("segments", &g.WidthSegs, 1)
	})
}

// CircleProperties edits a circle.
type CircleProperties struct {
	SolidProperties
}

func (cp *CircleProperties) InitProperties() {
	cp.initSolid(func(g *kinds.Geometry) {
		cp.size("radius", &g.Radius)
		cp.segments("segments", &g.RadialSegs, 3)
	})
}

// SphereProperties edits a UV sphere.
type SphereProperties struct {
	SolidProperties
}

func (sp *SphereProperties) InitProperties() {
	sp.initSolid(func(g *kinds.Geometry) {
		sp.size("radius", &g.Radius)
		sp.segments("width segments", &g.WidthSegs, 3)
		sp.segments("height segments", &g.HeightSegs, 2)
	})
}

// IcosphereProperties edits an icosphere.
type IcosphereProperties struct {
	SolidProperties
}

func (ip *IcosphereProperties) InitProperties() {
	ip.initSolid(func(g *kinds.Geometry) {
		ip.size("radius", &g.Radius)
		ip.addInt(GroupGeometry, "detail", &g.Detail, 0, 6, ip.rebuild)
	})
}

// CylinderProperties edits a cylinder.
type CylinderProperties struct {
	SolidProperties
}

func (cp *CylinderProperties) InitProperties() {
	cp.initSolid(func(g *kinds.Geometry) {
		cp.size("top radius", &g.TopRadius)
		cp.size("bottom radius", &g.Radius)
		cp.size("height", &g.Height)
		cp.segments("radial segments", &g.RadialSegs, 3)
		cp.segments("height segments", &g.HeightSegs, 1)
	})
}

// ConeProperties edits a cone.
type ConeProperties struct {
	SolidProperties
}

func (cp *ConeProperties) InitProperties() {
	cp.initSolid(func(g *kinds.Geometry) {
		cp.size("radius", &g.Radius)
		cp.size("height", &g.Height)
		cp.segments("radial segments", &g.RadialSegs, 3)
		cp.segments("height segments", &g.HeightSegs, 1)
	})
}

// TorusProperties edits a torus.
type TorusProperties struct {
	SolidProperties
}

func (tp *TorusProperties) InitProperties() {
	tp.initSolid(func(g *kinds.Geometry) {
		tp.size("radius", &g.Radius)
		tp.size("tube", &g.Tube)
		tp.segments("radial segments", &g.RadialSegs, 3)
		tp.segments("tubular segments", &g.TubularSegs, 3)
	})
}

// TextProperties edits 3D text: the string and the extrusion options.
type TextProperties struct {
	SolidProperties
}

func (tp *TextProperties) InitProperties() {
	if !tp.begin() {
		return
	}
	tp.addPose(&tp.Solid.Pose, nil)
	if tx := tp.Solid.Text; tx != nil {
		tp.capture(tx)
		op := &tx.Options
		tp.addValue(GroupText, "text", &tx.String, tp.rebuild)
		tp.addFloat(GroupText, "size", &op.Size, 0.01, 100, 0.1, tp.rebuild)
		tp.addFloat(GroupText, "depth", &op.Depth, 0, 100, 0.05, tp.rebuild)
		tp.addInt(GroupText, "curve segments", &op.CurveSegments, 1, 64, tp.rebuild)
		tp.addValue(GroupText, "bevel", &op.Bevel, tp.rebuild)
		tp.addFloat(GroupText, "bevel thickness", &op.BevelThickness, 0, 10, 0.01, tp.rebuild)
		tp.addFloat(GroupText, "bevel size", &op.BevelSize, 0, 10, 0.01, tp.rebuild)
		tp.addFloat(GroupText, "bevel offset", &op.BevelOffset, -10, 10, 0.01, tp.rebuild)
		tp.addInt(GroupText, "bevel segments", &op.BevelSegments, 1, 32, tp.rebuild)
	}
	tp.addMaterial(tp.Solid.Material)
}
