// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

var (
	// ErrFieldType is returned when a value of the wrong type is set on a field.
	ErrFieldType = errors.New("props: wrong value type for field")

	// ErrFieldRange is returned when a numeric value is outside the field range.
	ErrFieldRange = errors.New("props: value out of range")
)

// Field is one editable attribute of a node, bound by pointer to the
// value it edits. Value is one of *float32, *int, *bool, *string,
// *math32.Vector3 or *color.RGBA.
type Field struct {

	// Label is the display label.
	Label string

	// Value is the pointer to the bound value.
	Value any

	// Min is the minimum numeric value, used when Max > Min.
	Min float32

	// Max is the maximum numeric value, used when Max > Min.
	Max float32

	// Step is the suggested increment for numeric values.
	Step float32

	// OnChange is called after the value is set.
	OnChange func()
}

// Get returns the current bound value.
func (fd *Field) Get() any {
	switch v := fd.Value.(type) {
	case *float32:
		return *v
	case *int:
		return *v
	case *bool:
		return *v
	case *string:
		return *v
	case *math32.Vector3:
		return *v
	case *color.RGBA:
		return *v
	}
	return nil
}

// Set sets the bound value, checking its type and range, and calls
// OnChange. Numeric fields accept any Go number type.
func (fd *Field) Set(v any) error {
	switch ptr := fd.Value.(type) {
	case *float32:
		f, ok := toFloat(v)
		if !ok {
			return fd.typeError(v)
		}
		if err := fd.checkRange(f); err != nil {
			return err
		}
		*ptr = float32(f)
	case *int:
		f, ok := toFloat(v)
		if !ok || f != float64(int(f)) {
			return fd.typeError(v)
		}
		if err := fd.checkRange(f); err != nil {
			return err
		}
		*ptr = int(f)
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return fd.typeError(v)
		}
		*ptr = b
	case *string:
		s, ok := v.(string)
		if !ok {
			return fd.typeError(v)
		}
		*ptr = s
	case *math32.Vector3:
		vec, ok := v.(math32.Vector3)
		if !ok {
			return fd.typeError(v)
		}
		*ptr = vec
	case *color.RGBA:
		c, ok := v.(color.Color)
		if !ok {
			return fd.typeError(v)
		}
		*ptr = color.RGBAModel.Convert(c).(color.RGBA)
	default:
		return fmt.Errorf("%w: unsupported binding %T for %q", ErrFieldType, fd.Value, fd.Label)
	}
	if fd.OnChange != nil {
		fd.OnChange()
	}
	return nil
}

func (fd *Field) typeError(v any) error {
	return fmt.Errorf("%w: %q is bound to %T, got %T", ErrFieldType, fd.Label, fd.Value, v)
}

func (fd *Field) checkRange(f float64) error {
	if fd.Max > fd.Min && (f < float64(fd.Min) || f > float64(fd.Max)) {
		return fmt.Errorf("%w: %q = %g, must be in [%g, %g]", ErrFieldRange, fd.Label, f, fd.Min, fd.Max)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint8:
		return float64(x), true
	}
	return 0, false
}
