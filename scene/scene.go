// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
)

// Scene is a reference host for the factory: it owns the root group
// that nodes are inserted into by default, and the registry of
// selectable cameras. It implements both [Parent] and [CameraRegistry].
type Scene struct {

	// Root is the top-level group.
	Root *Group

	// Cameras are the registered cameras, by unique name.
	Cameras ordmap.Map[string, *Camera]

	// Active is the name of the currently selected camera.
	Active string

	// BackgroundColor is the clear color of the scene.
	BackgroundColor color.RGBA
}

// NewScene returns a new empty scene with the given name.
func NewScene(name string) *Scene {
	sc := &Scene{Root: NewGroup(name)}
	sc.BackgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	return sc
}

// AddChild inserts the node into the root group.
func (sc *Scene) AddChild(n Node) {
	sc.Root.AddChild(n)
}

// AddCamera registers the camera, giving it a unique name if the
// name is already taken. The first camera becomes active.
func (sc *Scene) AddCamera(cam *Camera) {
	name := cam.Name
	for i := 1; ; i++ {
		if _, has := sc.Cameras.ValueByKeyTry(name); !has {
			break
		}
		name = fmt.Sprintf("%s.%d", cam.Name, i)
	}
	cam.Name = name
	sc.Cameras.Add(name, cam)
	if sc.Active == "" {
		sc.Active = name
	}
}

// SetCamera selects the registered camera with the given name.
func (sc *Scene) SetCamera(name string) error {
	if _, has := sc.Cameras.ValueByKeyTry(name); !has {
		return errors.New("scene.SetCamera: camera named: " + name + " not found")
	}
	sc.Active = name
	return nil
}

// Camera returns the active camera, or nil if none are registered.
func (sc *Scene) Camera() *Camera {
	cam, _ := sc.Cameras.ValueByKeyTry(sc.Active)
	return cam
}

// NumNodes returns the total number of nodes under the root, not counting the root.
func (sc *Scene) NumNodes() int {
	n := -1
	Walk(sc.Root, func(Node, int) bool {
		n++
		return true
	})
	return n
}

// Bounds returns the bounding box of all solids in the scene, in
// world coordinates, taking into account positions and scales of
// the groups above them. Rotations are ignored.
func (sc *Scene) Bounds() math32.Box3 {
	var bb math32.Box3
	bb.SetEmpty()
	sc.bounds(sc.Root, math32.Vector3{}, math32.Vec3(1, 1, 1), &bb)
	return bb
}

func (sc *Scene) bounds(n Node, off, scale math32.Vector3, bb *math32.Box3) {
	nb := n.AsNode()
	sc2 := scale.Mul(nb.Pose.Scale)
	off2 := off.Add(nb.Pose.Pos.Mul(scale))
	switch nd := n.(type) {
	case *Solid:
		if nd.Mesh != nil && !nd.Mesh.BBox.IsEmpty() {
			bb.ExpandByPoint(nd.Mesh.BBox.Min.Mul(sc2).Add(off2))
			bb.ExpandByPoint(nd.Mesh.BBox.Max.Mul(sc2).Add(off2))
		}
	case *Group:
		for _, c := range nd.Children {
			sc.bounds(c, off2, sc2, bb)
		}
	}
}
