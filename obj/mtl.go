// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"image/color"
	"strconv"
)

func (dec *decoder) parseMtlLine(fields []string) error {
	ltype := fields[0]
	if ltype != "newmtl" && dec.matCurrent == nil {
		return dec.formatError(ltype + " before newmtl")
	}
	switch ltype {
	case "newmtl":
		return dec.parseNewmtl(fields[1:])
	case "d":
		return dec.parseFloat("d", fields[1:], &dec.matCurrent.Opacity)
	case "Ka":
		return dec.parseRGB("Ka", fields[1:], &dec.matCurrent.Ambient)
	case "Kd":
		return dec.parseRGB("Kd", fields[1:], &dec.matCurrent.Diffuse)
	case "Ke":
		return dec.parseRGB("Ke", fields[1:], &dec.matCurrent.Emissive)
	case "Ks":
		return dec.parseRGB("Ks", fields[1:], &dec.matCurrent.Specular)
	case "Ni":
		return dec.parseFloat("Ni", fields[1:], &dec.matCurrent.Refraction)
	case "Ns":
		return dec.parseFloat("Ns", fields[1:], &dec.matCurrent.Shininess)
	case "illum":
		return dec.parseIllum(fields[1:])
	case "map_Kd":
		return dec.parseMapKd(fields[1:])
	default:
		dec.appendWarn(mtlType, "field not supported: "+ltype)
	}
	return nil
}

// newmtl <name>
func (dec *decoder) parseNewmtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("newmtl without a name")
	}
	name := fields[0]
	mat := dec.md.Materials[name]
	if mat == nil {
		mat = &Material{Name: name}
		dec.md.Materials[name] = mat
	}
	dec.matCurrent = mat
	return nil
}

// parseFloat parses a single value line such as d, Ni or Ns.
func (dec *decoder) parseFloat(ltype string, fields []string, dst *float32) error {
	if len(fields) < 1 {
		return dec.formatError(ltype + " without a value")
	}
	val, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return dec.formatError(ltype + ": invalid number " + strconv.Quote(fields[0]))
	}
	*dst = float32(val)
	return nil
}

// parseRGB parses a color line of 0-1 components:
// Kd r g b
func (dec *decoder) parseRGB(ltype string, fields []string, dst *color.RGBA) error {
	if len(fields) < 3 {
		return dec.formatError(ltype + " needs 3 components")
	}
	var c [3]uint8
	for pos, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.formatError(ltype + ": invalid number " + strconv.Quote(f))
		}
		c[pos] = uint8(min(max(val, 0), 1)*255 + 0.5)
	}
	*dst = color.RGBA{c[0], c[1], c[2], 0xFF}
	return nil
}

// illum <0-10>
func (dec *decoder) parseIllum(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("illum without a value")
	}
	val, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return dec.formatError("illum: invalid model " + strconv.Quote(fields[0]))
	}
	dec.matCurrent.Illum = int(val)
	return nil
}

// map_Kd [-s u [v]] [-o u [v]] <file>; other options are skipped
// with a warning.
func (dec *decoder) parseMapKd(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("map_Kd without a file")
	}
	// pair reads one or two numbers following an option at fields[i]
	pair := func(i int) (float32, float32, int) {
		if i+1 >= len(fields) {
			return 0, 0, i
		}
		r1, _ := strconv.ParseFloat(fields[i+1], 32)
		r2 := r1
		i++
		if i+1 < len(fields)-1 {
			if rt, err := strconv.ParseFloat(fields[i+1], 32); err == nil {
				r2 = rt
				i++
			}
		}
		return float32(r1), float32(r2), i
	}
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case f == "-s":
			var x, y float32
			x, y, i = pair(i)
			dec.matCurrent.Tiling.Repeat.Set(x, y)
		case f == "-o":
			var x, y float32
			x, y, i = pair(i)
			dec.matCurrent.Tiling.Off.Set(x, y)
		case f[0] == '-':
			dec.appendWarn(mtlType, "map_Kd option not supported: "+f)
		default:
			dec.matCurrent.MapKd = f
		}
	}
	return nil
}
