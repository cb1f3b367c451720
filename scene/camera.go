// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of a perspective camera.
type Camera struct {
	NodeBase

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Target is the target point to look at, used by [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera.
	UpDir math32.Vector3
}

// NewCamera returns a new camera with default parameters.
func NewCamera(name string) *Camera {
	cam := &Camera{}
	cam.InitNode(name)
	cam.Defaults()
	return cam
}

func (cam *Camera) Defaults() {
	cam.FOV = 50
	cam.Aspect = 1920.0 / 1200.0
	cam.Near = 0.1
	cam.Far = 50
	cam.UpDir = math32.Vec3(0, 1, 0)
}

// LookAt points the camera at the given target, setting Target.
func (cam *Camera) LookAt(target math32.Vector3) {
	cam.Target = target
}

// ViewDir returns the unit direction from the camera position to its target.
// It returns -Z when the target coincides with the position.
func (cam *Camera) ViewDir() math32.Vector3 {
	d := cam.Target.Sub(cam.Pose.Pos)
	if d.Length() == 0 {
		return math32.Vec3(0, 0, -1)
	}
	return d.Normal()
}
