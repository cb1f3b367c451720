// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"cogentcore.org/scenegen/scene"
)

// Build returns a group with the given name containing one subgroup
// per non-empty object, each holding one solid per run of faces that
// share a material. Faces with more than three vertices are split into
// triangle fans.
func (md *Model) Build(name string) *scene.Group {
	gp := scene.NewGroup(name)
	for i := range md.Objects {
		ob := &md.Objects[i]
		if len(ob.Faces) == 0 {
			continue
		}
		objgp := scene.NewGroup(ob.Name)
		md.buildObject(objgp, ob)
		gp.AddChild(objgp)
	}
	return gp
}

// buildObject adds the solids for the object to objgp.
func (md *Model) buildObject(objgp *scene.Group, ob *Object) {
	matName := ""
	var ms *mesh.Mesh
	sldidx := 0
	for fi := range ob.Faces {
		face := &ob.Faces[fi]
		if face.Material != matName || ms == nil {
			sldnm := fmt.Sprintf("%s_%d", ob.Name, sldidx)
			ms = mesh.NewMesh(sldnm)
			matName = face.Material
			objgp.AddChild(scene.NewSolid(sldnm, kinds.ImportedModel, ms, md.material(matName, sldnm)))
			sldidx++
		}
		// triangle fans: 0, i-1, i
		for idx := 2; idx < len(face.Vertices); idx++ {
			md.addTriangle(ms, face, 0, idx-1, idx)
		}
	}
}

// addTriangle copies the three face vertices into ms, using a flat
// normal for any vertex without one in the file.
func (md *Model) addTriangle(ms *mesh.Mesh, face *Face, a, b, c int) {
	fv := [3]int{a, b, c}
	var pos [3]math32.Vector3
	for i, vi := range fv {
		pos[i] = vec3(md.Vertices, face.Vertices[vi])
	}
	flat := math32.Normal(pos[0], pos[1], pos[2])
	var idx [3]uint32
	for i, vi := range fv {
		norm := flat
		if ni := face.Normals[vi]; ni != noIndex {
			norm = vec3(md.Normals, ni)
		}
		var uv math32.Vector2
		if ti := face.Uvs[vi]; ti != noIndex {
			uv = math32.Vec2(md.Uvs[2*ti], md.Uvs[2*ti+1])
		}
		idx[i] = ms.AddVertex(pos[i], norm, uv)
	}
	ms.AddTriangle(idx[0], idx[1], idx[2])
}

func vec3(data []float32, i int) math32.Vector3 {
	return math32.Vec3(data[3*i], data[3*i+1], data[3*i+2])
}

// material returns a new scene material for the named obj material.
func (md *Model) material(matnm, sldnm string) *scene.Material {
	mat := md.Materials[matnm]
	if mat == nil {
		mat = defaultMat
		if matnm != "" {
			md.Warnings = append(md.Warnings, fmt.Sprintf("could not find material: %s for object %s. using default material.", matnm, sldnm))
		}
	}
	smat := scene.NewMaterial()
	smat.ID = mat.Name
	smat.CullBack = false // obj files do not reliably work with this on!
	smat.Color = mat.Diffuse
	smat.Color.A = 0xFF
	if mat.Opacity > 0 {
		smat.Color.A = uint8(mat.Opacity * float32(0xFF))
	}
	smat.Emissive = mat.Emissive
	if mat.Shininess != 0 {
		smat.Shiny = mat.Shininess
	}
	if mat.MapKd != "" {
		if tx := md.Textures[mat.MapKd]; tx != nil {
			smat.SetTexture(tx)
		} else {
			smat.TextureName = mat.MapKd
			slog.Debug("obj: texture not loaded", "file", mat.MapKd)
		}
		if mat.Tiling.Repeat.X > 0 {
			smat.Tiling.Repeat = mat.Tiling.Repeat
		}
		smat.Tiling.Off = mat.Tiling.Off
	}
	return smat
}
