// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/scenegen/config"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/pflag"
)

// ScriptVersion is the manifest version of parsed scripts.
const ScriptVersion = "1.0"

// ParseScript parses a scene script into a manifest. Each non-blank
// line that does not start with # is one command:
//
//	add <Kind> [--props] [--name n] [--pos x,y,z] [--rot x,y,z] [--scale s|x,y,z]
//	text <string> [--font path] [common flags]
//	obj <path> [common flags]
//	material [--id id] [--color hex] [--shiny n] [--reflective n]
//
// Arguments are split like a shell command line, so quoted strings
// may contain spaces. A material line sets the shared material.
func ParseScript(src string) (*Manifest, error) {
	m := &Manifest{Version: ScriptVersion}
	sc := bufio.NewScanner(strings.NewReader(src))
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := m.parseLine(line); err != nil {
			return nil, fmt.Errorf("manifest: line %d: %w", ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) parseLine(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("error parsing args %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	if cmd == "material" {
		return m.parseMaterial(args)
	}

	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	props := fs.Bool("props", false, "attach a property controller")
	name := fs.String("name", "", "object name")
	pos := fs.String("pos", "", "position x,y,z")
	rot := fs.String("rot", "", "rotation x,y,z in degrees")
	scale := fs.String("scale", "", "scale s or x,y,z")
	font := fs.String("font", "", "font path for text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s needs exactly one argument, got %d", cmd, fs.NArg())
	}
	o := Object{Name: *name, Props: *props}
	switch cmd {
	case "add":
		o.Kind = fs.Arg(0)
	case "text":
		o.Kind = "Text"
		o.Text = fs.Arg(0)
		o.Font = *font
	case "obj":
		o.Kind = "ImportedModel"
		o.Path = fs.Arg(0)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	for _, v := range []struct {
		str string
		dst *[]float32
	}{{*pos, &o.Position}, {*rot, &o.Rotation}, {*scale, &o.Scale}} {
		if v.str == "" {
			continue
		}
		if *v.dst, err = parseFloats(v.str); err != nil {
			return err
		}
	}
	m.Objects = append(m.Objects, o)
	return nil
}

func (m *Manifest) parseMaterial(args []string) error {
	mt := &Material{Material: config.Default().Material}
	fs := pflag.NewFlagSet("material", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&mt.ID, "id", "", "registered material id")
	fs.StringVar(&mt.Color, "color", mt.Color, "hex color")
	fs.Float32Var(&mt.Shiny, "shiny", mt.Shiny, "shininess")
	fs.Float32Var(&mt.Reflective, "reflective", mt.Reflective, "reflectiveness")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("material takes no arguments, got %q", fs.Args())
	}
	if mt.ID == "" {
		if _, err := mt.RGBA(); err != nil {
			return err
		}
	}
	m.SharedMaterial = mt
	return nil
}

// parseFloats parses a comma separated list of numbers.
func parseFloats(s string) ([]float32, error) {
	flds := strings.Split(s, ",")
	vals := make([]float32, len(flds))
	for i, fld := range flds {
		v, err := strconv.ParseFloat(strings.TrimSpace(fld), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", fld, s)
		}
		vals[i] = float32(v)
	}
	return vals, nil
}
