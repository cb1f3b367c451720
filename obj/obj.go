// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on the decoder in https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj decodes Wavefront OBJ models and their MTL material
// libraries into scene groups. Polygons, groups, materials with
// diffuse textures and negative indexes are supported; curves,
// free-form surfaces and line elements are not.
package obj

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/scene"
)

// Model contains all decoded data from the obj and mtl files,
// plus any textures that the materials refer to once they are loaded.
type Model struct {

	// Objects are the decoded objects, in file order.
	Objects []Object

	// Matlib is the name of the material library referenced by mtllib.
	Matlib string

	// Materials maps material name to material.
	Materials map[string]*Material

	// Vertices holds the vertex positions, 3 per vertex.
	Vertices []float32

	// Normals holds the vertex normals, 3 per normal.
	Normals []float32

	// Uvs holds the texture coordinates, 2 per coordinate.
	Uvs []float32

	// Warnings are messages about unsupported or missing content.
	Warnings []string

	// Textures maps a texture file name, as given in map_Kd, to the loaded texture.
	Textures map[string]*scene.Texture
}

// Object is one o or g section of the file.
type Object struct {
	Name  string
	Faces []Face

	// names of the materials used, in order of first use
	materials []string
}

// Face is one polygon. Vertices, Uvs and Normals are parallel
// zero-based index lists; Uvs and Normals hold noIndex where the
// file gives none.
type Face struct {
	Vertices []int
	Uvs      []int
	Normals  []int
	Material string
	Smooth   bool
}

// Material is one newmtl entry of a material library.
type Material struct {
	Name       string
	Illum      int     // illum model number
	Opacity    float32 // d, or 1 - Tr
	Refraction float32 // Ni
	Shininess  float32 // Ns
	Ambient    color.RGBA
	Diffuse    color.RGBA
	Specular   color.RGBA
	Emissive   color.RGBA

	// MapKd is the diffuse texture file, relative to the library.
	MapKd  string
	Tiling scene.Tiling
}

// defaultMat replaces every material when no library could be read.
var defaultMat = &Material{
	Name:      "default",
	Diffuse:   color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF},
	Ambient:   color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF},
	Specular:  color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	Shininess: 30.0,
}

const (
	noIndex = -1
	objType = "obj"
	mtlType = "mtl"
)

// decoder holds the parsing state while reading obj and mtl lines.
type decoder struct {
	md            *Model
	line          uint
	objCurrent    *Object
	matCurrent    *Material
	smoothCurrent bool
}

// Decode reads the .obj data from objr and, if mtlr is non-nil, the
// associated .mtl data. If there is no material data, or it fails to
// parse, every material falls back to a light gray default and a
// warning is recorded.
func Decode(objr io.Reader, mtlr io.Reader) (*Model, error) {
	if objr == nil {
		return nil, errors.New("obj.Decode: no obj reader")
	}
	dec := &decoder{md: &Model{
		Materials: make(map[string]*Material),
		Textures:  make(map[string]*scene.Texture),
	}}
	if err := dec.parse(objr, dec.parseObjLine); err != nil {
		return nil, err
	}

	dec.matCurrent = nil
	useDef := mtlr == nil
	if mtlr != nil {
		if err := dec.parse(mtlr, dec.parseMtlLine); err != nil {
			dec.appendWarn(mtlType, "using default materials: "+err.Error())
			useDef = true
		}
	}
	if useDef {
		for key := range dec.md.Materials {
			dec.md.Materials[key] = defaultMat
		}
	}
	return dec.md, nil
}

// TextureFiles returns the distinct texture files referenced by the materials.
func (md *Model) TextureFiles() []string {
	var fs []string
	seen := map[string]bool{}
	for _, mat := range md.Materials {
		if mat.MapKd == "" || seen[mat.MapKd] {
			continue
		}
		seen[mat.MapKd] = true
		fs = append(fs, mat.MapKd)
	}
	return fs
}

// NumFaces returns the total number of faces in all objects.
func (md *Model) NumFaces() int {
	n := 0
	for i := range md.Objects {
		n += len(md.Objects[i].Faces)
	}
	return n
}

// parse calls parseLine with the fields of each line of r that is
// neither blank nor a comment, keeping dec.line current.
func (dec *decoder) parse(r io.Reader, parseLine func(fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	dec.line = 0
	for sc.Scan() {
		dec.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := parseLine(fields); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (dec *decoder) parseObjLine(fields []string) error {
	ltype := fields[0]
	switch ltype {
	case "mtllib":
		return dec.parseMatlib(fields[1:])
	case "o", "g": // groups become objects too
		return dec.parseObject(fields[1:])
	case "v":
		return dec.parseFloats("v", fields[1:], 3, &dec.md.Vertices)
	case "vn":
		return dec.parseFloats("vn", fields[1:], 3, &dec.md.Normals)
	case "vt":
		return dec.parseFloats("vt", fields[1:], 2, &dec.md.Uvs)
	case "f":
		return dec.parseFace(fields[1:])
	case "usemtl":
		return dec.parseUsemtl(fields[1:])
	case "s":
		return dec.parseSmooth(fields[1:])
	default:
		dec.appendWarn(objType, "field not supported: "+ltype)
	}
	return nil
}

// mtllib <file>
func (dec *decoder) parseMatlib(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("mtllib without a file name")
	}
	dec.md.Matlib = fields[0]
	return nil
}

// o <name>, g <name>
func (dec *decoder) parseObject(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("object without a name")
	}
	dec.md.Objects = append(dec.md.Objects, Object{Name: fields[0]})
	dec.objCurrent = &dec.md.Objects[len(dec.md.Objects)-1]
	return nil
}

// parseFloats parses the first n values of a v, vn or vt line into dst.
func (dec *decoder) parseFloats(ltype string, fields []string, n int, dst *[]float32) error {
	if len(fields) < n {
		return dec.formatError(fmt.Sprintf("%s needs %d values, got %d", ltype, n, len(fields)))
	}
	for _, f := range fields[:n] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.formatError(fmt.Sprintf("%s: %v", ltype, err))
		}
		*dst = append(*dst, float32(val))
	}
	return nil
}

// current returns the object being read, starting an unnamed one
// for content that comes before any o or g line.
func (dec *decoder) current() *Object {
	if dec.objCurrent == nil {
		dec.parseObject([]string{fmt.Sprintf("unnamed%d", dec.line)})
	}
	return dec.objCurrent
}

// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *decoder) parseFace(fields []string) error {
	ob := dec.current()
	if len(fields) < 3 {
		return dec.formatError(fmt.Sprintf("face needs at least 3 vertices, got %d", len(fields)))
	}
	if len(ob.materials) == 0 && dec.matCurrent != nil {
		ob.materials = append(ob.materials, dec.matCurrent.Name)
	}
	n := len(fields)
	face := Face{
		Vertices: make([]int, n),
		Uvs:      make([]int, n),
		Normals:  make([]int, n),
		Smooth:   dec.smoothCurrent,
	}
	if dec.matCurrent != nil {
		face.Material = dec.matCurrent.Name
	}
	counts := [3]int{len(dec.md.Vertices) / 3, len(dec.md.Uvs) / 2, len(dec.md.Normals) / 3}
	names := [3]string{"vertex", "uv", "normal"}
	for i, fld := range fields {
		dst := [3]*int{&face.Vertices[i], &face.Uvs[i], &face.Normals[i]}
		refs := strings.SplitN(fld, "/", 3)
		for k := range dst {
			*dst[k] = noIndex
			if k >= len(refs) || refs[k] == "" {
				if k == 0 {
					return dec.formatError("face vertex without a position index")
				}
				continue
			}
			idx, err := dec.faceIndex(refs[k], counts[k], names[k])
			if err != nil {
				return err
			}
			*dst[k] = idx
		}
	}
	ob.Faces = append(ob.Faces, face)
	return nil
}

// faceIndex parses one face index. Positive indexes are absolute and
// 1-based; negative ones are relative to the n items parsed so far.
func (dec *decoder) faceIndex(s string, n int, what string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("face %s index: %v", what, err))
	}
	idx := 0
	switch {
	case val > 0:
		idx = int(val - 1)
	case val < 0:
		idx = n + int(val)
	default:
		return 0, dec.formatError(fmt.Sprintf("face %s index 0", what))
	}
	if idx < 0 || idx >= n {
		return 0, dec.formatError(fmt.Sprintf("face %s index %d out of range (%d defined)", what, val, n))
	}
	return idx, nil
}

// usemtl <name>
func (dec *decoder) parseUsemtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("usemtl without a material name")
	}
	ob := dec.current()
	name := fields[0]
	mat, ok := dec.md.Materials[name]
	if !ok {
		mat = &Material{Name: name}
		dec.md.Materials[name] = mat
	}
	ob.materials = append(ob.materials, name)
	dec.matCurrent = mat
	return nil
}

// s <0|1|off|on>; smoothing group numbers above 1 count as on.
func (dec *decoder) parseSmooth(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("s without a value")
	}
	switch fields[0] {
	case "0", "off":
		dec.smoothCurrent = false
	case "on":
		dec.smoothCurrent = true
	default:
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return dec.formatError(fmt.Sprintf("invalid smoothing group %q", fields[0]))
		}
		dec.smoothCurrent = true
	}
	return nil
}

func (dec *decoder) formatError(msg string) error {
	return fmt.Errorf("obj: line %d: %s", dec.line, msg)
}

func (dec *decoder) appendWarn(ftype string, msg string) {
	dec.md.Warnings = append(dec.md.Warnings, fmt.Sprintf("%s line %d: %s", ftype, dec.line, msg))
}
