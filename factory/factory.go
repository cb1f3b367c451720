// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory provides [Factory], which creates scene objects of
// every kind in [kinds.Kinds], positions them at a cursor, resolves
// their materials, optionally attaches property controllers, and
// inserts them into the current parent.
//
// A Factory is owned by a single goroutine, typically the host frame
// loop, and is not safe for concurrent use. Asset loads complete on
// other goroutines; their continuations are queued and only run when
// the owner calls [Factory.Tick], [Pending.Wait] or [Batch.Wait].
package factory

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/assets"
	"cogentcore.org/scenegen/config"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/mesh"
	"cogentcore.org/scenegen/props"
	"cogentcore.org/scenegen/scene"
)

// Factory creates scene objects and inserts them into a scene.
type Factory struct {

	// Resolver loads fonts and models and provides materials.
	Resolver assets.Resolver

	// Host is the root parent that new objects are inserted into
	// unless [Factory.SetParent] redirects them.
	Host scene.Parent

	// Cameras is the registry that added cameras are registered with; may be nil.
	Cameras scene.CameraRegistry

	// Surface is the property editing surface that controllers
	// register their fields with; may be nil.
	Surface props.Surface

	// Cursor is the position that new objects are placed at.
	Cursor math32.Vector3

	// Config holds the camera, text and fallback material defaults.
	Config *config.Config

	// Picker is the file picker used by [Factory.ImportObj].
	// If nil, a [ZenityPicker] is used.
	Picker FilePicker

	parent scene.Parent
	shared *scene.Material
	meshes map[string]*mesh.Mesh
	queue  queue
}

// New returns a new factory that inserts into host and loads through res.
// If host also implements [scene.CameraRegistry], as [scene.Scene] does,
// it is used to register cameras.
func New(host scene.Parent, res assets.Resolver) *Factory {
	f := &Factory{
		Resolver: res,
		Host:     host,
		Config:   config.Default(),
		parent:   host,
		meshes:   make(map[string]*mesh.Mesh),
		queue:    queue{notify: make(chan struct{}, 1)},
	}
	if reg, ok := host.(scene.CameraRegistry); ok {
		f.Cameras = reg
	}
	return f
}

// SetParent redirects insertions to p, for building composite structures.
func (f *Factory) SetParent(p scene.Parent) {
	f.parent = p
}

// ResetParent restores insertions into [Factory.Host].
func (f *Factory) ResetParent() {
	f.parent = f.Host
}

// Parent returns the parent that objects are currently inserted into.
func (f *Factory) Parent() scene.Parent {
	return f.parent
}

// SetSharedMaterial sets the material used by every creation call that
// is not given one, until [Factory.UnsetSharedMaterial] is called.
// Prefer [Factory.NewBatch], which does not depend on this single slot.
func (f *Factory) SetSharedMaterial(mat *scene.Material) {
	f.shared = mat
}

// UnsetSharedMaterial clears the shared material slot. Objects already
// created keep the material they resolved.
func (f *Factory) UnsetSharedMaterial() {
	f.shared = nil
}

// SharedMaterial returns the shared material, or nil if unset.
func (f *Factory) SharedMaterial() *scene.Material {
	return f.shared
}

// MaterialByID returns the resolver material registered under id,
// or a new default material if there is none.
func (f *Factory) MaterialByID(id string) *scene.Material {
	if f.Resolver != nil {
		if mat := f.Resolver.Material(id); mat != nil {
			return mat
		}
	}
	return f.newMaterial()
}

// material resolves the material for a new object: mat if given,
// then the shared slot, then a new default material.
func (f *Factory) material(mat *scene.Material) *scene.Material {
	if mat != nil {
		return mat
	}
	if f.shared != nil {
		return f.shared
	}
	return f.newMaterial()
}

// newMaterial returns the resolver default material, falling back on
// the configured material if the resolver has none.
func (f *Factory) newMaterial() *scene.Material {
	if f.Resolver != nil {
		if mat := f.Resolver.DefaultMaterial(); mat != nil {
			return mat
		}
	}
	slog.Warn("factory: no default material from resolver, using configured material")
	return f.config().Material.New()
}

func (f *Factory) config() *config.Config {
	if f.Config == nil {
		f.Config = config.Default()
	}
	return f.Config
}

// mesh returns the cached mesh with the given name, building it
// with build the first time. Cached meshes are shared between solids
// and must not be modified.
func (f *Factory) mesh(name string, build func() (*mesh.Mesh, error)) *mesh.Mesh {
	if ms, ok := f.meshes[name]; ok {
		return ms
	}
	ms, err := build()
	if errors.Log(err) != nil {
		ms = mesh.NewMesh(name)
	}
	f.meshes[name] = ms
	return ms
}

// attach creates the controller matching kind for node, if on,
// and initializes it.
func (f *Factory) attach(kind kinds.Kinds, node scene.Node, on bool) {
	if !on {
		return
	}
	ctl, err := props.New(kind, node, f.Surface)
	if err != nil {
		slog.Error("factory: attaching properties", "kind", kind, "node", node.AsNode().Name, "err", err)
		return
	}
	ctl.InitProperties()
	node.AsNode().Properties = ctl
}

// insert adds n to the current parent. Cameras are also registered,
// and wrapped lights insert the underlying light as well.
func (f *Factory) insert(n scene.Node) {
	f.parent.AddChild(n)
	switch x := n.(type) {
	case *scene.Camera:
		if f.Cameras != nil {
			f.Cameras.AddCamera(x)
		}
	case *scene.LightObject:
		f.parent.AddChild(x.Light)
	}
}
