// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props provides the property controllers that expose the
// editable attributes of scene objects to a property editing surface.
// There is one controller type per object kind, plus [NamedProperties]
// for imported models.
package props

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
	"github.com/jinzhu/copier"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNodeType is returned by [New] when the node does not match the kind.
var ErrNodeType = errors.New("props: node type does not match kind")

// Group names for fields.
const (
	GroupTransform = "transform"
	GroupGeometry  = "geometry"
	GroupMaterial  = "material"
	GroupText      = "text"
	GroupCamera    = "camera"
	GroupLight     = "light"
)

// Surface is the property editing surface that controllers register
// their fields with, such as a GUI panel.
type Surface interface {

	// AddField adds the field under the given group.
	AddField(group string, fd *Field)
}

// Controller is a property controller bound to a single node.
type Controller interface {
	scene.PropertyController

	// Fields returns the fields created by InitProperties.
	Fields() []*Field

	// Kind returns the object kind the controller is for.
	Kind() kinds.Kinds

	// Node returns the bound node.
	Node() scene.Node

	// Reset restores every bound value to what it was when
	// InitProperties was called.
	Reset()
}

// Base provides the shared implementation of [Controller].
type Base struct {
	kind    kinds.Kinds
	node    scene.Node
	surface Surface
	fields  []*Field
	inited  bool
	caser   cases.Caser

	// snapshots pair each captured struct pointer with a copy of it.
	snapshots [][2]any

	// refresh is called after Reset, to rebuild derived state.
	refresh func()
}

func (b *Base) init(kind kinds.Kinds, node scene.Node, surface Surface) {
	b.kind = kind
	b.node = node
	b.surface = surface
	b.caser = cases.Title(language.English)
}

func (b *Base) Fields() []*Field {
	return b.fields
}

func (b *Base) Kind() kinds.Kinds {
	return b.kind
}

func (b *Base) Node() scene.Node {
	return b.node
}

// begin marks the controller as initialized, returning false if it already was.
func (b *Base) begin() bool {
	if b.inited {
		return false
	}
	b.inited = true
	return true
}

// Field returns the field with the given label, or nil.
func (b *Base) Field(label string) *Field {
	for _, fd := range b.fields {
		if fd.Label == label {
			return fd
		}
	}
	return nil
}

// add title-cases the label of fd, records it and adds it to the surface.
func (b *Base) add(group string, fd *Field) *Field {
	fd.Label = b.caser.String(fd.Label)
	b.fields = append(b.fields, fd)
	if b.surface != nil {
		b.surface.AddField(b.caser.String(group), fd)
	}
	return fd
}

func (b *Base) addFloat(group, label string, v *float32, min, max, step float32, onChange func()) *Field {
	return b.add(group, &Field{Label: label, Value: v, Min: min, Max: max, Step: step, OnChange: onChange})
}

func (b *Base) addInt(group, label string, v *int, min, max int, onChange func()) *Field {
	return b.add(group, &Field{Label: label, Value: v, Min: float32(min), Max: float32(max), Step: 1, OnChange: onChange})
}

func (b *Base) addValue(group, label string, v any, onChange func()) *Field {
	return b.add(group, &Field{Label: label, Value: v, OnChange: onChange})
}

// addPose adds the position, rotation and scale fields.
func (b *Base) addPose(ps *scene.Pose, onChange func()) {
	b.capture(ps)
	b.addValue(GroupTransform, "position", &ps.Pos, onChange)
	b.addValue(GroupTransform, "rotation", &ps.Rot, onChange)
	b.addValue(GroupTransform, "scale", &ps.Scale, onChange)
}

// addMaterial adds the fields of a material. Materials may be shared,
// so edits apply to every object using it.
func (b *Base) addMaterial(mt *scene.Material) {
	if mt == nil {
		return
	}
	b.capture(mt)
	b.addValue(GroupMaterial, "color", &mt.Color, nil)
	b.addValue(GroupMaterial, "emissive", &mt.Emissive, nil)
	b.addFloat(GroupMaterial, "shiny", &mt.Shiny, 0, 128, 1, nil)
	b.addFloat(GroupMaterial, "reflective", &mt.Reflective, 0, 1, 0.05, nil)
	b.addFloat(GroupMaterial, "bright", &mt.Bright, 0, 10, 0.1, nil)
	b.addValue(GroupMaterial, "cull back", &mt.CullBack, nil)
}

// addLightBase adds the fields shared by all lights.
func (b *Base) addLightBase(lb *scene.LightBase) {
	b.capture(lb)
	b.addValue(GroupLight, "on", &lb.On, nil)
	b.addFloat(GroupLight, "lumens", &lb.Lumens, 0, 10, 0.1, nil)
	b.addValue(GroupLight, "color", &lb.Color, nil)
}

// capture stores a deep copy of the struct that ptr points to, for Reset.
func (b *Base) capture(ptr any) {
	snap := reflect.New(reflect.TypeOf(ptr).Elem()).Interface()
	if err := copier.CopyWithOption(snap, ptr, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("props: capturing values", "type", fmt.Sprintf("%T", ptr), "err", err)
		return
	}
	b.snapshots = append(b.snapshots, [2]any{ptr, snap})
}

// Reset restores the captured values and rebuilds derived state.
func (b *Base) Reset() {
	for _, s := range b.snapshots {
		errors.Log(copier.CopyWithOption(s[0], s[1], copier.Option{CaseSensitive: true, DeepCopy: true}))
	}
	if b.refresh != nil {
		b.refresh()
	}
}

// New returns a new controller for the node of the given kind, which
// must be of the matching type: a *scene.Solid for shapes and text, a
// *scene.Camera, a *scene.AmbientLight, a *scene.LightObject wrapping
// the matching light, or a *scene.Group for imported models.
// The controller is not initialized; call InitProperties on it.
func New(kind kinds.Kinds, node scene.Node, surface Surface) (Controller, error) {
	mismatch := func() error {
		return fmt.Errorf("%w: %v with %T", ErrNodeType, kind, node)
	}
	if kind.IsPrimitive() || kind == kinds.Text {
		sld, ok := node.(*scene.Solid)
		if !ok || sld.Kind != kind {
			return nil, mismatch()
		}
		var ctl interface {
			Controller
			setSolid(kind kinds.Kinds, sld *scene.Solid, surface Surface)
		}
		switch kind {
		case kinds.Plane:
			ctl = &PlaneProperties{}
		case kinds.Cube:
			ctl = &BoxProperties{}
		case kinds.Circle:
			ctl = &CircleProperties{}
		case kinds.UVSphere:
			ctl = &SphereProperties{}
		case kinds.IcoSphere:
			ctl = &IcosphereProperties{}
		case kinds.Cylinder:
			ctl = &CylinderProperties{}
		case kinds.Cone:
			ctl = &ConeProperties{}
		case kinds.Torus:
			ctl = &TorusProperties{}
		case kinds.Text:
			if sld.Text == nil {
				return nil, mismatch()
			}
			ctl = &TextProperties{}
		}
		ctl.setSolid(kind, sld, surface)
		return ctl, nil
	}
	switch kind {
	case kinds.Camera:
		cam, ok := node.(*scene.Camera)
		if !ok {
			return nil, mismatch()
		}
		return NewCameraProperties(cam, surface), nil
	case kinds.AmbientLight:
		lt, ok := node.(*scene.AmbientLight)
		if !ok {
			return nil, mismatch()
		}
		return NewAmbientLightProperties(lt, surface), nil
	case kinds.ImportedModel:
		gp, ok := node.(*scene.Group)
		if !ok {
			return nil, mismatch()
		}
		return NewNamedProperties(gp.Name, gp, surface), nil
	}
	if kind.IsLight() {
		lo, ok := node.(*scene.LightObject)
		if !ok {
			return nil, mismatch()
		}
		if ctl := newLightProperties(kind, lo, surface); ctl != nil {
			return ctl, nil
		}
		return nil, mismatch()
	}
	return nil, fmt.Errorf("%w: %v", kinds.ErrUnknownKind, kind)
}
