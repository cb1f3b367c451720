// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest describes scenes as lists of objects to create,
// read from YAML manifests or line based scripts, and applies them
// to a [factory.Factory].
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenegen/config"
	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/kinds"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Versions is the range of manifest versions that can be read.
const Versions = ">= 1.0, < 2.0"

// ErrVersion is returned for a manifest with a missing or unsupported version.
var ErrVersion = errors.New("manifest: unsupported version")

// Manifest is a scene description.
type Manifest struct {

	// Version is the manifest format version, such as "1.0".
	Version string `yaml:"version"`

	// SharedMaterial is the material given to every object that uses
	// one; if nil, each object gets its own default material.
	SharedMaterial *Material `yaml:"shared_material,omitempty"`

	// Objects are the objects to create, in order.
	Objects []Object `yaml:"objects"`
}

// Material is a material description. Missing fields take the values
// of the default configured material.
type Material struct {

	// ID is the id of a material registered with the asset resolver;
	// when set, the other fields are ignored.
	ID string `yaml:"id,omitempty"`

	config.Material `yaml:",inline"`
}

func (mt *Material) UnmarshalYAML(node *yaml.Node) error {
	type plain Material
	p := plain{Material: config.Default().Material}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*mt = Material(p)
	return nil
}

// Object describes one object to create.
type Object struct {

	// Kind is the name of the object kind, such as "UVSphere".
	Kind string `yaml:"kind"`

	// Name renames the object; for imported models it is also the
	// property name.
	Name string `yaml:"name,omitempty"`

	// Props attaches a property controller.
	Props bool `yaml:"props,omitempty"`

	// Position is the x, y, z position; the factory cursor if empty.
	Position []float32 `yaml:"position,flow,omitempty"`

	// Rotation is the x, y, z rotation in degrees.
	Rotation []float32 `yaml:"rotation,flow,omitempty"`

	// Scale is the x, y, z scale, or a single uniform scale.
	Scale []float32 `yaml:"scale,flow,omitempty"`

	// Text is the string for Text objects.
	Text string `yaml:"text,omitempty"`

	// Font is the font path for Text objects.
	Font string `yaml:"font,omitempty"`

	// Path is the model path for ImportedModel objects.
	Path string `yaml:"path,omitempty"`
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Open reads the manifest or script at the given path. Files ending in
// .yaml or .yml are manifests; anything else is read as a script.
func Open(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Parse(b)
	}
	return ParseScript(string(b))
}

// Encode returns the YAML encoding of the manifest.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), enc.Close()
}

// CheckVersion returns an error wrapping [ErrVersion] if the manifest
// version is not in [Versions].
func (m *Manifest) CheckVersion() error {
	if m.Version == "" {
		return fmt.Errorf("%w: no version given, need %s", ErrVersion, Versions)
	}
	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersion, m.Version, err)
	}
	c, err := semver.NewConstraint(Versions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s, need %s", ErrVersion, v, Versions)
	}
	return nil
}

// Validate checks the version and every object, returning all of the
// problems found.
func (m *Manifest) Validate() error {
	if err := m.CheckVersion(); err != nil {
		return err
	}
	var errs []error
	for i := range m.Objects {
		if err := m.Objects[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("object %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// KindValue returns the parsed kind of the object.
func (o *Object) KindValue() (kinds.Kinds, error) {
	return factory.ParseKind(o.Kind)
}

// Validate checks the kind and the fields the kind needs.
func (o *Object) Validate() error {
	kind, err := o.KindValue()
	if err != nil {
		return err
	}
	if kind == kinds.ImportedModel && o.Path == "" {
		return fmt.Errorf("%v needs a path", kind)
	}
	for _, v := range []struct {
		name string
		vals []float32
	}{{"position", o.Position}, {"rotation", o.Rotation}} {
		if len(v.vals) != 0 && len(v.vals) != 3 {
			return fmt.Errorf("%s needs 3 values, got %d", v.name, len(v.vals))
		}
	}
	if n := len(o.Scale); n != 0 && n != 1 && n != 3 {
		return fmt.Errorf("scale needs 1 or 3 values, got %d", n)
	}
	return nil
}
