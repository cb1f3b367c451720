// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/obj"
	"cogentcore.org/scenegen/scene"
	"github.com/ncruces/zenity"
)

// DefaultObjName is the property name used for imported models
// when none is given.
const DefaultObjName = "Obj"

// ErrPickerCanceled is returned when the user cancels the file picker.
var ErrPickerCanceled = errors.New("factory: file selection canceled")

// FilePicker asks the user for a file to open.
type FilePicker interface {

	// PickFile returns the path of the chosen file, from files
	// matching one of the glob patterns. It returns an error wrapping
	// [ErrPickerCanceled] if the user cancels.
	PickFile(title string, patterns []string) (string, error)
}

// ZenityPicker is a [FilePicker] that shows the native file dialog.
type ZenityPicker struct{}

func (ZenityPicker) PickFile(title string, patterns []string) (string, error) {
	fnm, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.FileFilter{Name: "Wavefront OBJ", Patterns: patterns},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrPickerCanceled
	}
	return fnm, err
}

// addModel builds the group for md, attaching properties under name if
// props, and inserts it.
func (f *Factory) addModel(md *obj.Model, props bool, name string) *scene.Group {
	for _, w := range md.Warnings {
		slog.Warn("factory: model", "name", name, "warning", w)
	}
	gp := md.Build(name)
	f.attach(kinds.ImportedModel, gp, props)
	f.insert(gp)
	return gp
}

// AddObj loads the OBJ model at path, with its materials and textures,
// and then inserts it, attaching a [props.NamedProperties] keyed by
// name if props, and calls onAfterAdd. An empty name is [DefaultObjName].
// Load failures are logged and complete the [Pending] with the error.
func (f *Factory) AddObj(path string, props bool, name string, onAfterAdd func(gp *scene.Group)) *Pending[*scene.Group] {
	if name == "" {
		name = DefaultObjName
	}
	p := newPending[*scene.Group](f, path)
	f.Resolver.LoadModel(path,
		func(md *obj.Model) {
			f.post(func() {
				gp := f.addModel(md, props, name)
				if onAfterAdd != nil {
					onAfterAdd(gp)
				}
				p.resolve(gp, nil)
			})
		},
		func(frac float32) {
			slog.Debug("factory: loading model", "path", path, "progress", frac)
		},
		func(err error) {
			f.post(func() {
				slog.Error("factory: unable to load model", "path", path, "err", err)
				p.resolve(nil, err)
			})
		})
	return p
}

// ParseAndAddObj decodes OBJ data with default materials, builds it
// and inserts it into the current parent.
func (f *Factory) ParseAndAddObj(data []byte, props bool, name string) (*scene.Group, error) {
	if name == "" {
		name = DefaultObjName
	}
	md, err := obj.Decode(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	return f.addModel(md, props, name), nil
}

// ImportObj asks the user for an OBJ file with [Factory.Picker],
// reads it and inserts it without properties.
func (f *Factory) ImportObj() (*scene.Group, error) {
	picker := f.Picker
	if picker == nil {
		picker = ZenityPicker{}
	}
	fnm, err := picker.PickFile("Import OBJ model", []string{"*.obj"})
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fnm)
	if err != nil {
		return nil, fmt.Errorf("factory: importing model: %w", err)
	}
	return f.ParseAndAddObj(data, false, DefaultObjName)
}
