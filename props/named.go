// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
)

// NamedProperties is a generic controller keyed by a display name,
// used for imported models: it edits the name and transform of the
// node.
type NamedProperties struct {
	Base

	// Name is the display name that the controller is keyed by.
	Name string
}

// NewNamedProperties returns a new controller for the node with the
// given display name. An empty name uses the name of the node.
func NewNamedProperties(name string, node scene.Node, surface Surface) *NamedProperties {
	if name == "" {
		name = node.AsNode().Name
	}
	np := &NamedProperties{Name: name}
	np.init(kinds.ImportedModel, node, surface)
	return np
}

func (np *NamedProperties) InitProperties() {
	if !np.begin() {
		return
	}
	nb := np.node.AsNode()
	np.capture(nb)
	np.addValue(np.Name, "name", &nb.Name, nil)
	np.addValue(np.Name, "position", &nb.Pose.Pos, nil)
	np.addValue(np.Name, "rotation", &nb.Pose.Rot, nil)
	np.addValue(np.Name, "scale", &nb.Pose.Scale, nil)
}
