// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"cogentcore.org/scenegen/kinds"
	"cogentcore.org/scenegen/scene"
)

// CameraProperties edits a camera.
type CameraProperties struct {
	Base

	// Camera is the bound camera.
	Camera *scene.Camera
}

// NewCameraProperties returns a new controller for the camera.
func NewCameraProperties(cam *scene.Camera, surface Surface) *CameraProperties {
	cp := &CameraProperties{Camera: cam}
	cp.init(kinds.Camera, cam, surface)
	return cp
}

func (cp *CameraProperties) InitProperties() {
	if !cp.begin() {
		return
	}
	cam := cp.Camera
	cp.addPose(&cam.Pose, nil)
	cp.capture(cam)
	cp.addFloat(GroupCamera, "fov", &cam.FOV, 1, 179, 1, nil)
	cp.addFloat(GroupCamera, "aspect", &cam.Aspect, 0.1, 10, 0.1, nil)
	cp.addFloat(GroupCamera, "near", &cam.Near, 0.001, 1000, 0.1, nil)
	cp.addFloat(GroupCamera, "far", &cam.Far, 0.01, 100000, 1, nil)
	cp.addValue(GroupCamera, "target", &cam.Target, nil)
}

// AmbientLightProperties edits an ambient light, which has no wrapper.
type AmbientLightProperties struct {
	Base

	// Light is the bound light.
	Light *scene.AmbientLight
}

// NewAmbientLightProperties returns a new controller for the ambient light.
func NewAmbientLightProperties(lt *scene.AmbientLight, surface Surface) *AmbientLightProperties {
	ap := &AmbientLightProperties{Light: lt}
	ap.init(kinds.AmbientLight, lt, surface)
	return ap
}

func (ap *AmbientLightProperties) InitProperties() {
	if !ap.begin() {
		return
	}
	ap.addLightBase(&ap.Light.LightBase)
}

// LightObjectProperties is the shared part of the controllers for
// wrapped lights. Moving the wrapper moves the light with it.
type LightObjectProperties struct {
	Base

	// Object is the bound wrapper.
	Object *scene.LightObject
}

func (lp *LightObjectProperties) setObject(kind kinds.Kinds, lo *scene.LightObject, surface Surface) {
	lp.init(kind, lo, surface)
	lp.Object = lo
	lp.refresh = lp.syncPose
}

// syncPose copies the wrapper position to the light.
func (lp *LightObjectProperties) syncPose() {
	lp.Object.Light.AsNode().Pose = lp.Object.Pose
}

// initLight adds the transform and common light fields, then the
// fields added by extra.
func (lp *LightObjectProperties) initLight(extra func()) {
	if !lp.begin() {
		return
	}
	lp.addPose(&lp.Object.Pose, lp.syncPose)
	lp.addLightBase(lp.Object.Light.AsLightBase())
	if extra != nil {
		extra()
	}
}

// DirectionalLightProperties edits a directional light.
type DirectionalLightProperties struct {
	LightObjectProperties

	// Light is the bound light.
	Light *scene.DirLight
}

func (dp *DirectionalLightProperties) InitProperties() {
	dp.initLight(func() {
		dp.capture(dp.Light)
		dp.addValue(GroupLight, "target", &dp.Light.Target, nil)
	})
}

// HemisphereLightProperties edits a hemisphere light.
type HemisphereLightProperties struct {
	LightObjectProperties

	// Light is the bound light.
	Light *scene.HemisphereLight
}

func (hp *HemisphereLightProperties) InitProperties() {
	hp.initLight(func() {
		hp.capture(hp.Light)
		hp.addValue(GroupLight, "ground color", &hp.Light.GroundColor, nil)
	})
}

// PointLightProperties edits a point light.
type PointLightProperties struct {
	LightObjectProperties

	// Light is the bound light.
	Light *scene.PointLight
}

func (pp *PointLightProperties) InitProperties() {
	pp.initLight(func() {
		pp.capture(pp.Light)
		pp.addFloat(GroupLight, "distance", &pp.Light.Distance, 0, 10000, 1, nil)
		pp.addFloat(GroupLight, "decay", &pp.Light.Decay, 0, 10, 0.1, nil)
	})
}

// RectAreaLightProperties edits a rectangular area light.
type RectAreaLightProperties struct {
	LightObjectProperties

	// Light is the bound light.
	Light *scene.RectAreaLight
}

func (rp *RectAreaLightProperties) InitProperties() {
	rp.initLight(func() {
		rp.capture(rp.Light)
		rp.addFloat(GroupLight, "width", &rp.Light.Width, 0, 1000, 0.5, nil)
		rp.addFloat(GroupLight, "height", &rp.Light.Height, 0, 1000, 0.5, nil)
		rp.addValue(GroupLight, "target", &rp.Light.Target, nil)
	})
}

// SpotLightProperties edits a spot light.
type SpotLightProperties struct {
	LightObjectProperties

	// Light is the bound light.
	Light *scene.SpotLight
}

func (sp *SpotLightProperties) InitProperties() {
	sp.initLight(func() {
		sp.capture(sp.Light)
		sp.addFloat(GroupLight, "distance", &sp.Light.Distance, 0, 10000, 1, nil)
		sp.addFloat(GroupLight, "angle", &sp.Light.Angle, 1, 90, 1, nil)
		sp.addFloat(GroupLight, "penumbra", &sp.Light.Penumbra, 0, 1, 0.05, nil)
		sp.addFloat(GroupLight, "decay", &sp.Light.Decay, 0, 10, 0.1, nil)
		sp.addValue(GroupLight, "target", &sp.Light.Target, nil)
	})
}

// newLightProperties returns the controller for a wrapped light of the
// given kind, or nil if the wrapped light does not match.
func newLightProperties(kind kinds.Kinds, lo *scene.LightObject, surface Surface) Controller {
	var ctl interface {
		Controller
		setObject(kind kinds.Kinds, lo *scene.LightObject, surface Surface)
	}
	switch lt := lo.Light.(type) {
	case *scene.DirLight:
		if kind == kinds.DirectionalLight {
			ctl = &DirectionalLightProperties{Light: lt}
		}
	case *scene.HemisphereLight:
		if kind == kinds.HemisphereLight {
			ctl = &HemisphereLightProperties{Light: lt}
		}
	case *scene.PointLight:
		if kind == kinds.PointLight {
			ctl = &PointLightProperties{Light: lt}
		}
	case *scene.RectAreaLight:
		if kind == kinds.RectAreaLight {
			ctl = &RectAreaLightProperties{Light: lt}
		}
	case *scene.SpotLight:
		if kind == kinds.SpotLight {
			ctl = &SpotLightProperties{Light: lt}
		}
	}
	if ctl == nil {
		return nil
	}
	ctl.setObject(kind, lo, surface)
	return ctl
}
