// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene object model produced by the
// factory: solids, cameras, lights and groups, along with the
// materials they reference and a reference host [Scene] that owns
// the parenting root and the camera registry.
package scene

import (
	"cogentcore.org/core/math32"
)

// Node is the interface for all scene objects.
type Node interface {

	// AsNode returns the [NodeBase] for this node, which provides
	// the name, transform and attached property controller.
	AsNode() *NodeBase
}

// PropertyController is the minimal interface of a controller that
// exposes the editable attributes of a node to a property surface.
// Concrete controllers live in the props package.
type PropertyController interface {

	// InitProperties builds the bindings for the node and registers
	// them with the property surface. It is called once.
	InitProperties()
}

// Parent is anything that new nodes can be inserted into.
type Parent interface {

	// AddChild inserts the given node as a child.
	AddChild(n Node)
}

// CameraRegistry is the registry of cameras that can be selected
// as the active viewpoint.
type CameraRegistry interface {

	// AddCamera registers the given camera.
	AddCamera(cam *Camera)
}

// NodeBase provides the core implementation of the [Node] interface.
type NodeBase struct {

	// Name is the name of the node.
	Name string

	// Pose is the position, rotation and scale of the node
	// relative to its parent.
	Pose Pose

	// Invisible hides the node from rendering.
	Invisible bool

	// Properties is the controller bound to this node, if any.
	// It has no lifecycle of its own and goes away with the node.
	Properties PropertyController `copier:"-"`
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

// InitNode sets the name and default pose.
func (nb *NodeBase) InitNode(name string) {
	nb.Name = name
	nb.Pose.Defaults()
}

// SetPos sets the position of the node.
func (nb *NodeBase) SetPos(pos math32.Vector3) {
	nb.Pose.Pos = pos
}

// Group is a node that contains other nodes. Imported models are
// returned as groups, and groups can be used as the current parent
// when building composite structures.
type Group struct {
	NodeBase

	// Children are the child nodes, in insertion order.
	Children []Node
}

// NewGroup returns a new empty group with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.InitNode(name)
	return gp
}

// AddChild appends the node to the children.
func (gp *Group) AddChild(n Node) {
	gp.Children = append(gp.Children, n)
}

// ChildByName returns the first direct child with the given name, or nil.
func (gp *Group) ChildByName(name string) Node {
	for _, c := range gp.Children {
		if c.AsNode().Name == name {
			return c
		}
	}
	return nil
}

// IndexOf returns the index of the given node in the children, or -1.
func (gp *Group) IndexOf(n Node) int {
	for i, c := range gp.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Walk calls fun on the node and, for groups and light objects,
// recursively on their contents, in depth-first order.
// Returning false from fun skips the contents of that node.
func Walk(n Node, fun func(n Node, depth int) bool) {
	walk(n, 0, fun)
}

func walk(n Node, depth int, fun func(n Node, depth int) bool) {
	if !fun(n, depth) {
		return
	}
	switch nd := n.(type) {
	case *Group:
		for _, c := range nd.Children {
			walk(c, depth+1, fun)
		}
	case *LightObject:
		if nd.Helper != nil {
			walk(nd.Helper, depth+1, fun)
		}
	}
}
