// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Pose contains the full specification of the position and orientation
// of a node, relative to its parent.
type Pose struct {

	// Pos is the position of the center of the node.
	Pos math32.Vector3

	// Rot is the rotation as Euler angles in degrees, applied in XYZ order.
	Rot math32.Vector3

	// Scale is the scale on each axis.
	Scale math32.Vector3
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// SetScale sets a uniform scale on all axes.
func (ps *Pose) SetScale(s float32) {
	ps.Scale.Set(s, s, s)
}

func (ps Pose) String() string {
	return fmt.Sprintf("pos: (%g, %g, %g) rot: (%g, %g, %g) scale: (%g, %g, %g)",
		ps.Pos.X, ps.Pos.Y, ps.Pos.Z, ps.Rot.X, ps.Rot.Y, ps.Rot.Z, ps.Scale.X, ps.Scale.Y, ps.Scale.Z)
}
