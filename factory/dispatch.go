// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrUnsupportedKind is returned by generic creation for a kind
	// that has no constructor.
	ErrUnsupportedKind = errors.New("factory: unsupported kind")

	// ErrAsyncKind is returned by generic creation for kinds that need
	// an asset load; use [Factory.AddText] or [Factory.AddObj] instead.
	ErrAsyncKind = errors.New("factory: kind requires an asset load")
)

// constructor creates an object of one kind. Lights and cameras ignore mat.
type constructor func(f *Factory, mat *scene.Material, props bool) scene.Node

// constructors is the closed table of synchronous kinds.
var constructors = map[kinds.Kinds]constructor{
	kinds.Plane:     func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreatePlane(mat, props) },
	kinds.Cube:      func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateCube(mat, props) },
	kinds.Circle:    func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateCircle(mat, props) },
	kinds.UVSphere:  func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateUVSphere(mat, props) },
	kinds.IcoSphere: func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateIcoSphere(mat, props) },
	kinds.Cylinder:  func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateCylinder(mat, props) },
	kinds.Cone:      func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateCone(mat, props) },
	kinds.Torus:     func(f *Factory, mat *scene.Material, props bool) scene.Node { return f.CreateTorus(mat, props) },

	kinds.Camera:           func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateCamera(props) },
	kinds.AmbientLight:     func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateAmbientLight(props) },
	kinds.DirectionalLight: func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateDirectionalLight(props) },
	kinds.HemisphereLight:  func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateHemisphereLight(props) },
	kinds.PointLight:       func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreatePointLight(props) },
	kinds.RectAreaLight:    func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateRectAreaLight(props) },
	kinds.SpotLight:        func(f *Factory, _ *scene.Material, props bool) scene.Node { return f.CreateSpotLight(props) },
}

func (f *Factory) create(kind kinds.Kinds, mat *scene.Material, props bool) (scene.Node, error) {
	if kind.IsAsync() {
		return nil, fmt.Errorf("%w: %v", ErrAsyncKind, kind)
	}
	fun, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
	}
	return fun(f, mat, props), nil
}

func (f *Factory) add(kind kinds.Kinds, mat *scene.Material, props bool) (scene.Node, error) {
	n, err := f.create(kind, mat, props)
	if err != nil {
		return nil, err
	}
	f.insert(n)
	return n, nil
}

// Create returns a new object of the given kind, as the matching
// Create method would. Text and ImportedModel fail with [ErrAsyncKind].
func (f *Factory) Create(kind kinds.Kinds, props bool) (scene.Node, error) {
	return f.create(kind, nil, props)
}

// Add creates an object of the given kind and inserts it, as the
// matching Add method would.
func (f *Factory) Add(kind kinds.Kinds, props bool) (scene.Node, error) {
	return f.add(kind, nil, props)
}

// CreateByName is [Factory.Create] for a kind name such as "UVSphere".
// Unknown names fail with [ErrUnsupportedKind].
func (f *Factory) CreateByName(name string, props bool) (scene.Node, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return f.Create(kind, props)
}

// AddByName is [Factory.Add] for a kind name.
func (f *Factory) AddByName(name string, props bool) (scene.Node, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return f.Add(kind, props)
}

// ParseKind returns the kind with the given name, or an error wrapping
// [ErrUnsupportedKind] that suggests the closest kind name.
func ParseKind(name string) (kinds.Kinds, error) {
	kind, err := kinds.Parse(name)
	if err == nil {
		return kind, nil
	}
	if sug := Suggest(name); sug != "" {
		return 0, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnsupportedKind, name, sug)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

// Suggest returns the kind name most similar to name, or "" if none
// is similar enough.
func Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.5
	for _, nm := range kinds.Names() {
		if sim := strutil.Similarity(name, nm, lev); sim >= bestSim {
			best, bestSim = nm, sim
		}
	}
	return best
}
