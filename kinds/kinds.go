// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinds defines the closed set of object kinds that the scene
// factory can build, along with the default geometry parameters for
// each primitive kind.
package kinds

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// ErrUnknownKind is returned when a name does not match any [Kinds] value.
var ErrUnknownKind = errors.New("kinds: unknown kind")

// Kinds are the kinds of scene objects that can be generated.
type Kinds int32 //enums:enum

const (
	// Plane is a 1x1 double sided plane in the XY plane.
	Plane Kinds = iota

	// Cube is a 1x1x1 box.
	Cube

	// Circle is a flat disk.
	Circle

	// UVSphere is a latitude / longitude tessellated sphere.
	UVSphere

	// IcoSphere is a subdivided icosahedron.
	IcoSphere

	// Cylinder is a capped cylinder along the Y axis.
	Cylinder

	// Cone is a capped cone along the Y axis.
	Cone

	// Torus is a ring in the XY plane.
	Torus

	// Text is extruded text; it requires a font load.
	Text

	// Camera is a perspective camera.
	Camera

	// AmbientLight is uniform light with no position.
	AmbientLight

	// DirectionalLight is light from a direction, like the sun.
	DirectionalLight

	// HemisphereLight is sky / ground gradient light.
	HemisphereLight

	// PointLight is an omnidirectional light with a position.
	PointLight

	// RectAreaLight is light emitted from a rectangle.
	RectAreaLight

	// SpotLight is a cone of light with a position and direction.
	SpotLight

	// ImportedModel is an external model; it requires a model load.
	ImportedModel
)

// IsPrimitive returns whether the kind is a primitive shape
// built directly from a [Geometry].
func (k Kinds) IsPrimitive() bool {
	return k >= Plane && k <= Torus
}

// IsLight returns whether the kind is one of the light kinds.
func (k Kinds) IsLight() bool {
	return k >= AmbientLight && k <= SpotLight
}

// IsAsync returns whether creating the kind requires an asset load.
func (k Kinds) IsAsync() bool {
	return k == Text || k == ImportedModel
}

// IsValid returns whether the kind is within the enum.
func (k Kinds) IsValid() bool {
	return k >= 0 && k < KindsN
}

// Parse returns the kind with the given name. Matching is exact first
// and then case insensitive. An error wrapping [ErrUnknownKind] is
// returned for any other name.
func Parse(name string) (Kinds, error) {
	if k, ok := _KindsValueMap[name]; ok {
		return k, nil
	}
	for k, nm := range _KindsMap {
		if strings.EqualFold(nm, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Names returns the names of all kinds, in enum order.
func Names() []string {
	nms := make([]string, KindsN)
	for i := range nms {
		nms[i] = Kinds(i).String()
	}
	return nms
}
