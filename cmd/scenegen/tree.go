// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenegen/scene"
	"github.com/muesli/termenv"
)

// PrintTree prints the node tree of the scene to w, one node per line,
// indented by depth. Colors are used only if w is a color terminal.
func PrintTree(w io.Writer, sc *scene.Scene) {
	out := termenv.NewOutput(w)
	scene.Walk(sc.Root, func(n scene.Node, depth int) bool {
		nb := n.AsNode()
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(out.String(nb.Name).Bold().String())
		b.WriteString(" ")
		b.WriteString(out.String(nodeType(n)).Foreground(out.Color("6")).String())
		if nb.Pose.Pos != (math32.Vector3{}) {
			fmt.Fprintf(&b, " pos=%g,%g,%g", nb.Pose.Pos.X, nb.Pose.Pos.Y, nb.Pose.Pos.Z)
		}
		if sld, ok := n.(*scene.Solid); ok && sld.Mesh != nil {
			fmt.Fprintf(&b, " tris=%d", sld.Mesh.NumTriangles())
		}
		if nb.Properties != nil {
			b.WriteString(out.String(" [props]").Foreground(out.Color("3")).String())
		}
		if cam, ok := n.(*scene.Camera); ok && cam == sc.Camera() {
			b.WriteString(" (active)")
		}
		fmt.Fprintln(w, b.String())
		return true
	})
}

// nodeType returns the display type of n.
func nodeType(n scene.Node) string {
	switch x := n.(type) {
	case *scene.Solid:
		return x.Kind.String()
	case *scene.LightObject:
		return "LightObject"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*scene.")
}
