// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs
// for the scene factory and the scenegen tool.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"cogentcore.org/scenegen/scene"
	"cogentcore.org/scenegen/textmesh"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all of the
// configuration options for the factory and the tool.
// It is loaded from TOML, over the values set by [Config.Defaults].
type Config struct {

	// the configuration options for loading assets
	Assets Assets `toml:"assets"`

	// the parameters of new cameras
	Camera Camera `toml:"camera"`

	// the default material, used when the asset resolver has none
	Material Material `toml:"material"`

	// the default text geometry options
	Text textmesh.Options `toml:"text"`

	// the logging options
	Log Log `toml:"log"`
}

type Assets struct {

	// the root directory that asset paths are relative to; ~ is expanded
	Root string `toml:"root"`

	// the font used by text when no font is given
	DefaultFont string `toml:"default_font"`

	// the maximum number of concurrent asset loads
	Workers int `toml:"workers"`

	// textures larger than this in either dimension are scaled down; 0 means no limit
	MaxTextureSize int `toml:"max_texture_size"`
}

type Camera struct {

	// the vertical field of view in degrees
	FOV float32 `toml:"fov"`

	// the aspect ratio (width / height)
	Aspect float32 `toml:"aspect"`

	// the near clipping plane distance
	Near float32 `toml:"near"`

	// the far clipping plane distance
	Far float32 `toml:"far"`
}

type Material struct {

	// the color, as a hex string like "#8e9091"
	Color string `toml:"color"`

	// the specular shininess factor
	Shiny float32 `toml:"shiny"`

	// the specular reflectiveness factor
	Reflective float32 `toml:"reflective"`
}

type Log struct {

	// the minimum level to log: debug, info, warn or error
	Level string `toml:"level"`
}

// Defaults sets every field to its default value.
func (c *Config) Defaults() {
	c.Assets = Assets{Root: ".", DefaultFont: "default", Workers: 4, MaxTextureSize: 2048}
	c.Camera = Camera{FOV: 50, Aspect: 1920.0 / 1200.0, Near: 0.1, Far: 50}
	c.Material = Material{Color: "#8e9091", Shiny: 30, Reflective: 1}
	c.Text.Defaults()
	c.Log = Log{Level: "info"}
}

// Default returns a new config with default values.
func Default() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open reads the TOML config file at the given path over the defaults.
func Open(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML data over the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Assets.Workers < 1 {
		return fmt.Errorf("assets.workers must be at least 1, got %d", c.Assets.Workers)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clipping planes must satisfy 0 < near < far, got %g and %g", c.Camera.Near, c.Camera.Far)
	}
	if _, err := c.Material.RGBA(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// RGBA returns the parsed material color.
func (m *Material) RGBA() (color.RGBA, error) {
	cf, err := colorful.Hex(m.Color)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("material.color: %w", err)
	}
	r, g, b := cf.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// New returns a new material with these parameters.
// An invalid color leaves the default color.
func (m *Material) New() *scene.Material {
	mt := scene.NewMaterial()
	if clr, err := m.RGBA(); err == nil {
		mt.Color = clr
	}
	mt.Shiny = m.Shiny
	mt.Reflective = m.Reflective
	return mt
}

// Apply sets the parameters of the given camera.
func (cm *Camera) Apply(cam *scene.Camera) {
	cam.FOV = cm.FOV
	cam.Aspect = cm.Aspect
	cam.Near = cm.Near
	cam.Far = cm.Far
}

// SlogLevel returns the parsed log level.
func (l *Log) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return lv, fmt.Errorf("log.level: %w", err)
	}
	return lv, nil
}
