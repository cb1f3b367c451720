// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/scenegen/factory"
	"cogentcore.org/scenegen/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(slog.LevelWarn, false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(slog.LevelWarn, true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(slog.LevelError, false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(slog.LevelInfo, false, false, true))
}

func TestPrintTree(t *testing.T) {
	sc := scene.NewScene("root")
	f := factory.New(sc, nil)
	f.AddCube(nil, true)
	f.AddCamera(false)
	f.Cursor.Set(0, 2, 0)
	f.AddPointLight(false)

	var buf bytes.Buffer
	PrintTree(&buf, sc)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "root Group", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  Cube Cube tris="), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " [props]"), lines[1])
	assert.Equal(t, "  Camera Camera (active)", lines[2])
	assert.Equal(t, "  PointLight LightObject pos=0,2,0", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "    PointLightHelper PointLight tris="), lines[4])
	assert.Equal(t, "  PointLight PointLight pos=0,2,0", lines[5])
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKindsCmd(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "UVSphere")
	assert.Contains(t, out, "ImportedModel")
	assert.Contains(t, out, "(async)")
}

func TestBuildCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tri.obj"), []byte("o tri\nv 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n"), 0o644))
	script := filepath.Join(dir, "scene.txt")
	require.NoError(t, os.WriteFile(script, []byte("material --color '#ff8800'\nadd Torus --props\ntext Hi\nobj tri.obj --name Tri\n"), 0o644))
	cfg := filepath.Join(dir, "scenegen.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[assets]\nroot = \""+filepath.ToSlash(dir)+"\"\n[log]\nlevel = \"error\"\n"), 0o644))

	out, err := run(t, "build", "--config", cfg, script)
	require.NoError(t, err)
	assert.Contains(t, out, "Torus Torus")
	assert.Contains(t, out, "Hi Text")
	assert.Contains(t, out, "Tri Group")

	_, err = run(t, "build", "--config", cfg, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[log]\nlevel = \"loud\"\n"), 0o644))
	_, err = run(t, "build", "--config", bad, script)
	assert.Error(t, err)
}
