// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
	"cogentcore.org/scenegen/textmesh"
)

// Batch is a creation session that gives every object it creates the
// same material, passed explicitly rather than through the shared
// slot. It counts the asynchronous items issued through it and fires
// its OnComplete functions once it is closed and every one of them
// has completed.
type Batch struct {
	f          *Factory
	mat        *scene.Material
	issued     int
	completed  int
	closed     bool
	fired      bool
	errs       []error
	onComplete []func()
}

// NewBatch returns a new batch that creates objects with mat.
// A nil mat resolves materials as the factory does, per object.
func (f *Factory) NewBatch(mat *scene.Material) *Batch {
	return &Batch{f: f, mat: mat}
}

// BeginShared returns a new batch for mat that also sets mat as the
// shared material, and unsets it once the batch completes.
func (f *Factory) BeginShared(mat *scene.Material) *Batch {
	b := f.NewBatch(mat)
	f.SetSharedMaterial(mat)
	b.OnComplete(func() {
		if f.shared == mat {
			f.UnsetSharedMaterial()
		}
	})
	return b
}

// Material returns the material of the batch.
func (b *Batch) Material() *scene.Material {
	return b.mat
}

// Add creates an object of the given synchronous kind with the batch
// material and inserts it.
func (b *Batch) Add(kind kinds.Kinds, props bool) (scene.Node, error) {
	return b.f.add(kind, b.mat, props)
}

// AddText is [Factory.AddText] with the batch material.
func (b *Batch) AddText(text string, onAfterAdd func(sld *scene.Solid), opts textmesh.Options, fontPath string, props bool) *Pending[*scene.Solid] {
	p := b.f.AddText(text, onAfterAdd, b.mat, opts, fontPath, props)
	track(b, p)
	return p
}

// AddObj is [Factory.AddObj] counted by the batch. Models keep their
// own materials.
func (b *Batch) AddObj(path string, props bool, name string, onAfterAdd func(gp *scene.Group)) *Pending[*scene.Group] {
	p := b.f.AddObj(path, props, name, onAfterAdd)
	track(b, p)
	return p
}

func track[T any](b *Batch, p *Pending[T]) {
	b.issued++
	p.whenDone(func() {
		b.completed++
		if _, err := p.Result(); err != nil {
			b.errs = append(b.errs, err)
		}
		b.check()
	})
}

// Close marks that no more items will be issued. Items issued after
// Close are still counted, but OnComplete may already have fired.
func (b *Batch) Close() {
	b.closed = true
	b.check()
}

func (b *Batch) check() {
	if !b.closed || b.fired || b.completed < b.issued {
		return
	}
	b.fired = true
	for _, fun := range b.onComplete {
		fun()
	}
	b.onComplete = nil
}

// OnComplete adds a function to call once the batch is complete,
// calling it now if it already is.
func (b *Batch) OnComplete(fun func()) {
	if b.fired {
		fun()
		return
	}
	b.onComplete = append(b.onComplete, fun)
}

// Done returns whether the batch is closed and complete.
func (b *Batch) Done() bool {
	return b.fired
}

// Counts returns the number of asynchronous items issued and completed.
func (b *Batch) Counts() (issued, completed int) {
	return b.issued, b.completed
}

// Err returns the joined errors of the items that failed.
func (b *Batch) Err() error {
	return errors.Join(b.errs...)
}

// Wait closes the batch and runs factory completions until it is
// complete or ctx ends. It returns the joined item errors, or the
// context error.
func (b *Batch) Wait(ctx context.Context) error {
	b.Close()
	if err := b.f.pump(ctx, b.Done); err != nil {
		return err
	}
	return b.Err()
}
