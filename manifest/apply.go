// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"context"
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
	"cogentcore.org/scenegen/textmesh"
)

// Material returns the shared material to use with f, or nil if the
// manifest has none.
func (m *Manifest) Material(f *factory.Factory) *scene.Material {
	sm := m.SharedMaterial
	if sm == nil {
		return nil
	}
	if sm.ID != "" {
		return f.MaterialByID(sm.ID)
	}
	return sm.New()
}

// Apply creates every object of the manifest with f inside one batch
// and waits for the asynchronous ones. It returns the created objects
// in manifest order, with nil for objects that failed, and the joined
// errors of the failures.
func Apply(ctx context.Context, f *factory.Factory, m *Manifest) ([]scene.Node, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := f.NewBatch(m.Material(f))
	nodes := make([]scene.Node, len(m.Objects))
	var errs []error
	for i := range m.Objects {
		o := &m.Objects[i]
		kind, _ := o.KindValue()
		switch kind {
		case kinds.Text:
			b.AddText(o.Text, func(sld *scene.Solid) {
				o.place(sld)
				nodes[i] = sld
			}, textmesh.Options{}, o.Font, o.Props)
		case kinds.ImportedModel:
			b.AddObj(o.Path, o.Props, o.Name, func(gp *scene.Group) {
				o.place(gp)
				nodes[i] = gp
			})
		default:
			n, err := b.Add(kind, o.Props)
			if err != nil {
				errs = append(errs, fmt.Errorf("object %d: %w", i, err))
				continue
			}
			o.place(n)
			nodes[i] = n
		}
	}
	if err := b.Wait(ctx); err != nil {
		errs = append(errs, err)
	}
	return nodes, errors.Join(errs...)
}

// place applies the name and transform of the object to n.
func (o *Object) place(n scene.Node) {
	nb := n.AsNode()
	if o.Name != "" {
		nb.Name = o.Name
	}
	if len(o.Position) == 3 {
		nb.Pose.Pos = math32.Vec3(o.Position[0], o.Position[1], o.Position[2])
	}
	if len(o.Rotation) == 3 {
		nb.Pose.Rot = math32.Vec3(o.Rotation[0], o.Rotation[1], o.Rotation[2])
	}
	switch len(o.Scale) {
	case 1:
		nb.Pose.SetScale(o.Scale[0])
	case 3:
		nb.Pose.Scale = math32.Vec3(o.Scale[0], o.Scale[1], o.Scale[2])
	}
	if lo, ok := n.(*scene.LightObject); ok {
		lo.Light.AsNode().Pose = nb.Pose
	}
}
