// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/assets"
	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/props"
	"cogentcore.org/scenegen/scene"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
version: "1.2"
shared_material:
  color: "#336699"
  shiny: 60
objects:
  - kind: UVSphere
    name: ball
    props: true
    position: [1, 0, 0]
  - kind: pointlight
    position: [0, 4, 0]
  - kind: Text
    text: Hello
    scale: [2]
  - kind: ImportedModel
    path: models/tri.obj
    name: Tri
    rotation: [0, 90, 0]
`

func newFactory(t *testing.T) (*factory.Factory, *scene.Scene) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fsys, "models", 0o755))
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "models/tri.obj", []byte("o tri\nv 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n"), 0o644))
	sc := scene.NewScene("scene")
	return factory.New(sc, assets.NewLoader(fsys, 2)), sc
}

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sceneYAML))
	require.NoError(t, err)
	require.Len(t, m.Objects, 4)
	assert.Equal(t, "#336699", m.SharedMaterial.Color)
	assert.Equal(t, float32(60), m.SharedMaterial.Shiny)
	assert.Equal(t, float32(1), m.SharedMaterial.Reflective)
	assert.Equal(t, []float32{1, 0, 0}, m.Objects[0].Position)

	b, err := m.Encode()
	require.NoError(t, err)
	again, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("version: \"2.0\"\nobjects: []\n"))
	assert.ErrorIs(t, err, ErrVersion)
	_, err = Parse([]byte("objects: []\n"))
	assert.ErrorIs(t, err, ErrVersion)
	_, err = Parse([]byte("version: banana\n"))
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Parse([]byte("version: \"1.0\"\nobjects:\n  - kind: Torsu\n"))
	assert.ErrorIs(t, err, factory.ErrUnsupportedKind)
	assert.ErrorContains(t, err, `did you mean "Torus"`)

	_, err = Parse([]byte("version: \"1.0\"\nobjects:\n  - kind: Cube\n    position: [1, 2]\n"))
	assert.ErrorContains(t, err, "position")
	_, err = Parse([]byte("version: \"1.0\"\nobjects:\n  - kind: ImportedModel\n"))
	assert.ErrorContains(t, err, "path")
	_, err = Parse([]byte("version: \"1.0\"\ncolour: red\n"))
	assert.Error(t, err)
}

func TestParseScript(t *testing.T) {
	m, err := ParseScript(`
# a small scene
material --color "#ff0000" --shiny 10
add UVSphere --props --pos 1,0,0 --name ball
add Cube --scale 2 --rot=0,45,0
text "Hello world" --font default --pos=-1,2,0
obj models/tri.obj --name Tri
`)
	require.NoError(t, err)
	assert.Equal(t, ScriptVersion, m.Version)
	assert.Equal(t, "#ff0000", m.SharedMaterial.Color)
	assert.Equal(t, float32(10), m.SharedMaterial.Shiny)
	require.Len(t, m.Objects, 4)
	assert.Equal(t, Object{Kind: "UVSphere", Name: "ball", Props: true, Position: []float32{1, 0, 0}}, m.Objects[0])
	assert.Equal(t, []float32{2}, m.Objects[1].Scale)
	assert.Equal(t, []float32{0, 45, 0}, m.Objects[1].Rotation)
	assert.Equal(t, "Hello world", m.Objects[2].Text)
	assert.Equal(t, "default", m.Objects[2].Font)
	assert.Equal(t, []float32{-1, 2, 0}, m.Objects[2].Position)
	assert.Equal(t, "models/tri.obj", m.Objects[3].Path)

	for _, bad := range []string{
		"spin Cube",
		"add",
		"add Cube --pos 1,x,0",
		"add Cube --bogus",
		"add Cubes",
		"material --color mauve",
		`text "unterminated`,
	} {
		_, err := ParseScript(bad)
		assert.Error(t, err, bad)
	}
}

func TestApply(t *testing.T) {
	m, err := Parse([]byte(sceneYAML))
	require.NoError(t, err)
	f, sc := newFactory(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	nodes, err := Apply(ctx, f, m)
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	for i, n := range nodes {
		require.NotNil(t, n, i)
	}

	ball := nodes[0].(*scene.Solid)
	assert.Equal(t, "ball", ball.Name)
	assert.Equal(t, math32.Vec3(1, 0, 0), ball.Pose.Pos)
	assert.IsType(t, &props.SphereProperties{}, ball.Properties)
	assert.Equal(t, uint8(0x33), ball.Material.Color.R)
	assert.Equal(t, float32(60), ball.Material.Shiny)

	lo := nodes[1].(*scene.LightObject)
	assert.Equal(t, math32.Vec3(0, 4, 0), lo.Light.AsNode().Pose.Pos)

	text := nodes[2].(*scene.Solid)
	assert.Same(t, ball.Material, text.Material)
	assert.Equal(t, math32.Vec3(2, 2, 2), text.Pose.Scale)

	tri := nodes[3].(*scene.Group)
	assert.Equal(t, "Tri", tri.Name)
	assert.Equal(t, math32.Vec3(0, 90, 0), tri.Pose.Rot)

	assert.Len(t, sc.Root.Children, 5)
	assert.Nil(t, f.SharedMaterial())
}

func TestApplyFailures(t *testing.T) {
	m, err := ParseScript("add Cube\nobj models/missing.obj\n")
	require.NoError(t, err)
	f, sc := newFactory(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	nodes, err := Apply(ctx, f, m)
	assert.Error(t, err)
	require.Len(t, nodes, 2)
	assert.NotNil(t, nodes[0])
	assert.Nil(t, nodes[1])
	assert.Len(t, sc.Root.Children, 1)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(sceneYAML), 0o644))
	m, err := Open(yml)
	require.NoError(t, err)
	assert.Len(t, m.Objects, 4)

	script := filepath.Join(dir, "scene.txt")
	require.NoError(t, os.WriteFile(script, []byte("add Torus\n"), 0o644))
	m, err = Open(script)
	require.NoError(t, err)
	assert.Equal(t, "Torus", m.Objects[0].Kind)
}
