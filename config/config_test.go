// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/scenegen/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, float32(50), c.Camera.FOV)
	assert.Equal(t, float32(0.5), c.Text.Size)
	assert.Equal(t, "default", c.Assets.DefaultFont)

	clr, err := c.Material.RGBA()
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultColor, clr)

	lv, err := c.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lv)
}

func TestParseOverDefaults(t *testing.T) {
	c, err := Parse([]byte(`
[camera]
fov = 70

[material]
color = "#ff0000"

[text]
size = 1.5
bevel = false

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, float32(70), c.Camera.FOV)
	assert.Equal(t, float32(0.1), c.Camera.Near)
	assert.Equal(t, float32(1.5), c.Text.Size)
	assert.False(t, c.Text.Bevel)
	assert.Equal(t, 6, c.Text.CurveSegments)

	mt := c.Material.New()
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, mt.Color)
	assert.Equal(t, float32(30), mt.Shiny)

	cam := scene.NewCamera("cam")
	c.Camera.Apply(cam)
	assert.Equal(t, float32(70), cam.FOV)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("[camera]\nzoom = 2\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[material]\ncolor = \"teal\"\n"))
	assert.ErrorContains(t, err, "material.color")

	_, err = Parse([]byte("[camera]\nnear = 10\nfar = 5\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[assets]\nworkers = 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[log]\nlevel = \"loud\"\n"))
	assert.ErrorContains(t, err, "log.level")
}

func TestOpen(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "scenegen.toml")
	require.NoError(t, os.WriteFile(fnm, []byte("[assets]\nroot = \"~/models\"\nworkers = 8\n"), 0o644))
	c, err := Open(fnm)
	require.NoError(t, err)
	assert.Equal(t, "~/models", c.Assets.Root)
	assert.Equal(t, 8, c.Assets.Workers)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
