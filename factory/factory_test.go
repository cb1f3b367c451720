// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/assets"
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/obj"
	"cogentcore.org/scenegen/props"
	"cogentcore.org/scenegen/scene"
	"cogentcore.org/scenegen/textmesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fontRequest struct {
	path     string
	onLoaded func(fn *assets.Font)
}

type modelRequest struct {
	path     string
	onLoaded func(md *obj.Model)
	onError  func(err error)
}

// fakeResolver records load requests so tests can complete them in
// any order, from any goroutine.
type fakeResolver struct {
	mu        sync.Mutex
	fonts     []fontRequest
	models    []modelRequest
	noDefault bool
	materials map[string]*scene.Material
}

func (r *fakeResolver) LoadFont(path string, onLoaded func(fn *assets.Font)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts = append(r.fonts, fontRequest{path, onLoaded})
}

func (r *fakeResolver) LoadModel(path string, onLoaded func(md *obj.Model), onProgress func(frac float32), onError func(err error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, modelRequest{path, onLoaded, onError})
}

func (r *fakeResolver) LoadTexture(path string, onLoaded func(tx *scene.Texture)) {}

func (r *fakeResolver) DefaultMaterial() *scene.Material {
	if r.noDefault {
		return nil
	}
	return scene.NewMaterial()
}

func (r *fakeResolver) Material(id string) *scene.Material {
	return r.materials[id]
}

func (r *fakeResolver) font(t *testing.T, i int) fontRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	require.Less(t, i, len(r.fonts))
	return r.fonts[i]
}

func testFont(t *testing.T) *assets.Font {
	face, err := textmesh.DefaultFace()
	require.NoError(t, err)
	return &assets.Font{Path: assets.DefaultFontPath, Face: face}
}

func newTestFactory() (*Factory, *scene.Scene, *fakeResolver) {
	sc := scene.NewScene("scene")
	res := &fakeResolver{}
	return New(sc, res), sc, res
}

func TestCreatePrimitives(t *testing.T) {
	f, sc, _ := newTestFactory()
	f.Cursor = math32.Vec3(1, 2, 3)
	for _, kind := range kinds.KindsValues() {
		if !kind.IsPrimitive() {
			continue
		}
		n, err := f.Create(kind, false)
		require.NoError(t, err, kind.String())
		sld := n.(*scene.Solid)
		assert.NotNil(t, sld.Material, kind.String())
		assert.NotZero(t, sld.Mesh.NumTriangles(), kind.String())
		assert.Equal(t, f.Cursor, sld.Pose.Pos, kind.String())
		assert.Nil(t, sld.Properties, kind.String())
		assert.Equal(t, kind != kinds.Plane, sld.Material.CullBack, kind.String())
	}
	assert.Empty(t, sc.Root.Children)

	a := f.AddCube(nil, false)
	b := f.AddCube(nil, false)
	assert.Same(t, a.Mesh, b.Mesh)
	assert.NotSame(t, a.Material, b.Material)
	assert.Len(t, sc.Root.Children, 2)
}

func TestAttachProperties(t *testing.T) {
	f, _, _ := newTestFactory()
	want := map[kinds.Kinds]any{
		kinds.Plane:            &props.PlaneProperties{},
		kinds.Cube:             &props.BoxProperties{},
		kinds.Circle:           &props.CircleProperties{},
		kinds.UVSphere:         &props.SphereProperties{},
		kinds.IcoSphere:        &props.IcosphereProperties{},
		kinds.Cylinder:         &props.CylinderProperties{},
		kinds.Cone:             &props.ConeProperties{},
		kinds.Torus:            &props.TorusProperties{},
		kinds.Camera:           &props.CameraProperties{},
		kinds.AmbientLight:     &props.AmbientLightProperties{},
		kinds.DirectionalLight: &props.DirectionalLightProperties{},
		kinds.HemisphereLight:  &props.HemisphereLightProperties{},
		kinds.PointLight:       &props.PointLightProperties{},
		kinds.RectAreaLight:    &props.RectAreaLightProperties{},
		kinds.SpotLight:        &props.SpotLightProperties{},
	}
	for kind, typ := range want {
		n, err := f.Create(kind, true)
		require.NoError(t, err)
		ctl := n.AsNode().Properties
		require.NotNil(t, ctl, kind.String())
		assert.IsType(t, typ, ctl, kind.String())
		assert.NotEmpty(t, ctl.(props.Controller).Fields(), kind.String())

		n, err = f.Create(kind, false)
		require.NoError(t, err)
		assert.Nil(t, n.AsNode().Properties, kind.String())
	}
}

func TestSharedMaterial(t *testing.T) {
	f, _, _ := newTestFactory()
	m := scene.NewMaterial()
	f.SetSharedMaterial(m)
	a := f.CreateUVSphere(nil, false)
	b := f.CreateTorus(nil, false)
	assert.Same(t, m, a.Material)
	assert.Same(t, m, b.Material)
	assert.Same(t, m, f.SharedMaterial())

	f.UnsetSharedMaterial()
	assert.Same(t, m, a.Material)
	c := f.CreateUVSphere(nil, false)
	assert.NotSame(t, m, c.Material)

	own := scene.NewMaterial()
	f.SetSharedMaterial(m)
	assert.Same(t, own, f.CreateCube(own, false).Material)
}

func TestMaterialFallback(t *testing.T) {
	f, _, res := newTestFactory()
	res.noDefault = true
	f.Config.Material.Color = "#ff0000"
	sld := f.CreateCube(nil, false)
	require.NotNil(t, sld.Material)
	assert.Equal(t, uint8(0xff), sld.Material.Color.R)

	gold := scene.NewMaterial()
	res.materials = map[string]*scene.Material{"gold": gold}
	assert.Same(t, gold, f.MaterialByID("gold"))
	assert.NotNil(t, f.MaterialByID("silver"))
}

func TestAddCamera(t *testing.T) {
	f, sc, _ := newTestFactory()
	cam := f.AddCamera(true)
	assert.Equal(t, []scene.Node{cam}, sc.Root.Children)
	assert.Equal(t, 1, sc.Cameras.Len())
	assert.Same(t, cam, sc.Camera())
	assert.Equal(t, float32(50), cam.FOV)
	assert.InDelta(t, 1.6, cam.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(50), cam.Far)
}

func TestAddLights(t *testing.T) {
	f, sc, _ := newTestFactory()
	f.Cursor = math32.Vec3(0, 3, 0)
	adds := []func(bool) *scene.LightObject{
		f.AddDirectionalLight, f.AddHemisphereLight, f.AddPointLight, f.AddRectAreaLight, f.AddSpotLight,
	}
	for i, add := range adds {
		lo := add(false)
		ch := sc.Root.Children
		require.Len(t, ch, 2*(i+1))
		assert.Same(t, lo, ch[2*i])
		assert.Equal(t, lo.Light, ch[2*i+1])
		require.NotNil(t, lo.Helper)
		assert.NotZero(t, lo.Helper.Mesh.NumTriangles())
		assert.Equal(t, lo.Light.AsLightBase().Color, lo.Helper.Material.Emissive)
		assert.Equal(t, f.Cursor, lo.Pose.Pos)
		assert.Equal(t, f.Cursor, lo.Light.AsNode().Pose.Pos)
		assert.Equal(t, float32(0.5), lo.Light.AsLightBase().Lumens)
	}
	hemi := sc.Root.Children[3].(*scene.HemisphereLight)
	assert.Equal(t, uint8(0x99), hemi.Color.R)
	assert.Equal(t, uint8(0x66), hemi.GroundColor.R)

	amb := f.AddAmbientLight(false)
	assert.Len(t, sc.Root.Children, 11)
	assert.Same(t, amb, sc.Root.Children[10])
}

func TestSetParent(t *testing.T) {
	f, sc, _ := newTestFactory()
	gp := scene.NewGroup("composite")
	f.SetParent(gp)
	f.AddCube(nil, false)
	f.AddPointLight(false)
	assert.Empty(t, sc.Root.Children)
	assert.Len(t, gp.Children, 3)
	assert.Same(t, gp, f.Parent())
	f.ResetParent()
	f.AddCube(nil, false)
	assert.Len(t, sc.Root.Children, 1)
}

func TestGenericDispatch(t *testing.T) {
	f, sc, _ := newTestFactory()
	n, err := f.CreateByName("UVSphere", false)
	require.NoError(t, err)
	generic := n.(*scene.Solid)
	direct := f.CreateUVSphere(nil, false)
	assert.Same(t, direct.Mesh, generic.Mesh)
	assert.Equal(t, direct.Material, generic.Material)
	assert.Equal(t, direct.Geometry, generic.Geometry)
	assert.Equal(t, direct.Pose, generic.Pose)

	_, err = f.CreateByName("NotAKind", false)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	_, err = f.AddByName("UVSpher", false)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	assert.ErrorContains(t, err, `did you mean "UVSphere"`)
	assert.Empty(t, sc.Root.Children)

	_, err = f.Create(kinds.Text, false)
	assert.ErrorIs(t, err, ErrAsyncKind)
	_, err = f.Add(kinds.ImportedModel, false)
	assert.ErrorIs(t, err, ErrAsyncKind)
	_, err = f.Create(kinds.KindsN, false)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	n, err = f.AddByName("spotlight", false)
	require.NoError(t, err)
	assert.IsType(t, &scene.LightObject{}, n)
	assert.Len(t, sc.Root.Children, 2)
}

func TestDispatchTableComplete(t *testing.T) {
	for _, kind := range kinds.KindsValues() {
		_, ok := constructors[kind]
		assert.True(t, ok != kind.IsAsync(), kind.String())
	}
}

func TestTextCompletionOrder(t *testing.T) {
	f, sc, res := newTestFactory()
	shared := scene.NewMaterial()
	var added []string
	onAfter := func(sld *scene.Solid) { added = append(added, sld.Text.String) }
	pa := f.AddText("A", onAfter, shared, textmesh.Options{}, "", false)
	pb := f.AddText("B", onAfter, shared, textmesh.Options{}, "", true)
	assert.Equal(t, assets.DefaultFontPath, res.font(t, 0).path)

	fn := testFont(t)
	res.font(t, 1).onLoaded(fn)
	res.font(t, 0).onLoaded(fn)
	assert.Empty(t, sc.Root.Children)
	assert.False(t, pa.Done())

	assert.Equal(t, 2, f.Tick())
	assert.Equal(t, []string{"B", "A"}, added)
	a, err := pa.Result()
	require.NoError(t, err)
	b, err := pb.Result()
	require.NoError(t, err)
	assert.Same(t, shared, a.Material)
	assert.Same(t, shared, b.Material)
	assert.Nil(t, a.Properties)
	assert.IsType(t, &props.TextProperties{}, b.Properties)
	assert.Equal(t, []scene.Node{b, a}, sc.Root.Children)

	ctr := a.Mesh.BBox.Center()
	assert.InDelta(t, 0, ctr.X, 1e-3)
	assert.InDelta(t, 0, ctr.Y, 1e-3)
	assert.Equal(t, f.Config.Text, a.Text.Options)
}

func TestTextResolvesMaterialAtCompletion(t *testing.T) {
	f, sc, res := newTestFactory()
	first := scene.NewMaterial()
	f.SetSharedMaterial(first)
	p := f.AddText("", nil, nil, textmesh.Options{}, "fonts/any.ttf", false)
	second := scene.NewMaterial()
	f.SetSharedMaterial(second)
	gp := scene.NewGroup("later")
	f.SetParent(gp)

	res.font(t, 0).onLoaded(testFont(t))
	f.Tick()
	sld, err := p.Result()
	require.NoError(t, err)
	assert.Same(t, second, sld.Material)
	assert.Equal(t, DefaultText, sld.Text.String)
	assert.Empty(t, sc.Root.Children)
	assert.Len(t, gp.Children, 1)
}

func TestPendingWait(t *testing.T) {
	f, _, res := newTestFactory()
	p := f.AddText("wait", nil, nil, textmesh.Options{}, "", false)
	req := res.font(t, 0)
	go req.onLoaded(testFont(t))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sld, err := p.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wait", sld.Name)

	never := f.AddText("never", nil, nil, textmesh.Options{}, "missing.ttf", false)
	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = never.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, never.Done())
	assert.Equal(t, "missing.ttf", never.Path())
	assert.Equal(t, "default", p.Path())
}

func testModel(t *testing.T) *obj.Model {
	md, err := obj.Decode(strings.NewReader("o tri\nv 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n"), nil)
	require.NoError(t, err)
	return md
}

func TestAddObj(t *testing.T) {
	f, sc, res := newTestFactory()
	var after *scene.Group
	p := f.AddObj("models/tri.obj", true, "", func(gp *scene.Group) { after = gp })
	bad := f.AddObj("models/bad.obj", true, "Bad", nil)
	require.Len(t, res.models, 2)
	assert.Equal(t, "models/tri.obj", res.models[0].path)

	res.models[1].onError(fmt.Errorf("no such file"))
	res.models[0].onLoaded(testModel(t))
	f.Tick()

	gp, err := p.Result()
	require.NoError(t, err)
	assert.Same(t, gp, after)
	assert.Equal(t, DefaultObjName, gp.Name)
	require.IsType(t, &props.NamedProperties{}, gp.Properties)
	assert.Equal(t, DefaultObjName, gp.Properties.(*props.NamedProperties).Name)
	assert.Equal(t, []scene.Node{gp}, sc.Root.Children)

	_, err = bad.Result()
	assert.ErrorContains(t, err, "no such file")
	assert.True(t, bad.Done())
}

type fakePicker struct {
	path string
	err  error
}

func (fp fakePicker) PickFile(title string, patterns []string) (string, error) {
	return fp.path, fp.err
}

func TestImportObj(t *testing.T) {
	f, sc, _ := newTestFactory()
	fnm := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(fnm, []byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"), 0o644))

	f.Picker = fakePicker{path: fnm}
	gp, err := f.ImportObj()
	require.NoError(t, err)
	assert.Nil(t, gp.Properties)
	assert.Equal(t, []scene.Node{gp}, sc.Root.Children)
	sld := gp.Children[0].(*scene.Group).Children[0].(*scene.Solid)
	assert.Equal(t, 2, sld.Mesh.NumTriangles())

	f.Picker = fakePicker{err: ErrPickerCanceled}
	_, err = f.ImportObj()
	assert.ErrorIs(t, err, ErrPickerCanceled)

	_, err = f.ParseAndAddObj([]byte("f 1 2 3\n"), false, "")
	assert.Error(t, err)
	assert.Len(t, sc.Root.Children, 1)
}

func TestBatch(t *testing.T) {
	f, sc, res := newTestFactory()
	mat := scene.NewMaterial()
	b := f.NewBatch(mat)
	fired := 0
	b.OnComplete(func() { fired++ })

	n, err := b.Add(kinds.Cube, false)
	require.NoError(t, err)
	assert.Same(t, mat, n.(*scene.Solid).Material)
	b.AddText("one", nil, textmesh.Options{}, "", false)
	b.AddText("two", nil, textmesh.Options{}, "", false)
	b.AddObj("models/tri.obj", false, "", nil)
	b.Close()
	assert.False(t, b.Done())

	fn := testFont(t)
	res.font(t, 1).onLoaded(fn)
	res.models[0].onError(fmt.Errorf("broken"))
	f.Tick()
	issued, completed := b.Counts()
	assert.Equal(t, 3, issued)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 0, fired)

	res.font(t, 0).onLoaded(fn)
	f.Tick()
	assert.Equal(t, 1, fired)
	assert.True(t, b.Done())
	assert.ErrorContains(t, b.Err(), "broken")
	assert.Nil(t, f.SharedMaterial())
	for _, n := range sc.Root.Children {
		assert.Same(t, mat, n.(*scene.Solid).Material)
	}

	f.Tick()
	assert.Equal(t, 1, fired)
	late := 0
	b.OnComplete(func() { late++ })
	assert.Equal(t, 1, late)
}

func TestBeginShared(t *testing.T) {
	f, _, res := newTestFactory()
	mat := scene.NewMaterial()
	b := f.BeginShared(mat)
	assert.Same(t, mat, f.SharedMaterial())
	f.AddText("x", nil, nil, textmesh.Options{}, "", false)
	b.AddText("y", nil, textmesh.Options{}, "", false)
	assert.Same(t, mat, f.CreateCube(nil, false).Material)

	go res.font(t, 1).onLoaded(testFont(t))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, b.Wait(ctx))
	assert.Nil(t, f.SharedMaterial())

	res.font(t, 0).onLoaded(testFont(t))
	f.Tick()
	assert.NotSame(t, mat, f.Host.(*scene.Scene).Root.Children[1].(*scene.Solid).Material)
}

func TestBatchEmpty(t *testing.T) {
	f, _, _ := newTestFactory()
	b := f.BeginShared(scene.NewMaterial())
	require.NoError(t, b.Wait(context.Background()))
	assert.True(t, b.Done())
	assert.Nil(t, f.SharedMaterial())
}
