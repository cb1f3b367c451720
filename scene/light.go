// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a scene.
// Unlike a renderer that keeps lights in a separate table, lights
// here are ordinary nodes inserted into the current parent.
type Light interface {
	Node

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {
	NodeBase

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// initLight sets the shared light defaults: white at half intensity.
func (lb *LightBase) initLight(name string) {
	lb.InitNode(name)
	lb.On = true
	lb.Lumens = 0.5
	lb.Color = color.RGBA{0xff, 0xff, 0xff, 0xff}
}

////////  Light types

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new white ambient light at half intensity.
func NewAmbientLight(name string) *AmbientLight {
	lt := &AmbientLight{}
	lt.initLight(name)
	return lt
}

// DirLight is directional light, which projects light from its
// position toward Target with no attenuation, like the Sun.
type DirLight struct {
	LightBase

	// Target is the point the light shines toward.
	Target math32.Vector3
}

// NewDirLight returns a new directional light located overhead and
// toward the default camera (0, 1, 1), shining at the origin.
func NewDirLight(name string) *DirLight {
	lt := &DirLight{}
	lt.initLight(name)
	lt.Pose.Pos.Set(0, 1, 1)
	return lt
}

// Dir returns the unit direction the light travels in.
func (dl *DirLight) Dir() math32.Vector3 {
	return dl.Target.Sub(dl.Pose.Pos).Normal()
}

// HemisphereLight is a light positioned directly above the scene that
// fades from the sky Color to the GroundColor.
type HemisphereLight struct {
	LightBase

	// GroundColor is the color of light coming from below.
	GroundColor color.RGBA
}

// NewHemisphereLight returns a new hemisphere light with a light blue sky
// and a brown ground.
func NewHemisphereLight(name string) *HemisphereLight {
	lt := &HemisphereLight{}
	lt.initLight(name)
	lt.Color = color.RGBA{0x99, 0xcc, 0xff, 0xff}
	lt.GroundColor = color.RGBA{0x66, 0x33, 0x00, 0xff}
	lt.Pose.Pos.Set(0, 1, 0)
	return lt
}

// PointLight is an omnidirectional light with a position
// and a falloff with distance.
type PointLight struct {
	LightBase

	// Distance is the maximum range of the light; 0 is unlimited.
	Distance float32 `min:"0"`

	// Decay is the amount the light dims along the distance; 2 is physically correct.
	Decay float32 `min:"0"`
}

// NewPointLight returns a new point light located at (0, 5, 5).
func NewPointLight(name string) *PointLight {
	lt := &PointLight{}
	lt.initLight(name)
	lt.Decay = 2
	lt.Pose.Pos.Set(0, 5, 5)
	return lt
}

// RectAreaLight emits light uniformly across the face of a rectangle.
type RectAreaLight struct {
	LightBase

	// Width of the light surface.
	Width float32 `min:"0"`

	// Height of the light surface.
	Height float32 `min:"0"`

	// Target is the point the light surface faces.
	Target math32.Vector3
}

// NewRectAreaLight returns a new 10x10 area light.
func NewRectAreaLight(name string) *RectAreaLight {
	lt := &RectAreaLight{}
	lt.initLight(name)
	lt.Width = 10
	lt.Height = 10
	lt.Pose.Pos.Set(0, 5, 0)
	return lt
}

// SpotLight is a light with a position and direction and associated decay factors and angles.
type SpotLight struct {
	LightBase

	// Target is the point the light is pointing at.
	Target math32.Vector3

	// Distance is the maximum range of the light; 0 is unlimited.
	Distance float32 `min:"0"`

	// Angle is the maximum extent of the light cone, in degrees, max of 90.
	Angle float32 `min:"1" max:"90"`

	// Penumbra is the fraction of the cone attenuated at its edge, 0-1.
	Penumbra float32 `min:"0" max:"1"`

	// Decay is the amount the light dims along the distance.
	Decay float32 `min:"0"`
}

// NewSpotLight returns a new spot light located at (0, 2, 5) and
// pointing at the origin.
func NewSpotLight(name string) *SpotLight {
	lt := &SpotLight{}
	lt.initLight(name)
	lt.Angle = 60
	lt.Decay = 2
	lt.Pose.Pos.Set(0, 2, 5)
	return lt
}

// LookAt points the spotlight at given target location.
func (sl *SpotLight) LookAt(target math32.Vector3) {
	sl.Target = target
}

// Dir returns the unit direction of the center of the light cone.
func (sl *SpotLight) Dir() math32.Vector3 {
	return sl.Target.Sub(sl.Pose.Pos).Normal()
}

////////  LightObject

// LightObject wraps a light together with a small visible helper
// solid that marks where the light is. The wrapper is what carries
// the property controller.
type LightObject struct {
	NodeBase

	// Light is the wrapped light.
	Light Light

	// Helper is the marker solid for the light; may be nil.
	Helper *Solid
}

// NewLightObject returns a wrapper for the given light and helper,
// named after the light.
func NewLightObject(lt Light, helper *Solid) *LightObject {
	lo := &LightObject{Light: lt, Helper: helper}
	lo.InitNode(lt.AsNode().Name)
	lo.Pose = lt.AsNode().Pose
	return lo
}
