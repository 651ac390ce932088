// Package scene implements a small scene graph of transformed nodes with
// attached components, plus bulk helpers that operate on a node and all of
// its descendants.
//
// Nodes are not safe for concurrent mutation.
package scene

import (
	"errors"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// ErrCycle is returned when a node would become its own ancestor.
var ErrCycle = errors.New("node cannot be a descendant of itself")

var sceneLog atomic.Pointer[zap.Logger]

// SetLogger sets the logger used for scene diagnostics.
// Passing nil restores the default of zap.L().
func SetLogger(l *zap.Logger) {
	sceneLog.Store(l)
}

func log() *zap.Logger {
	if l := sceneLog.Load(); l != nil {
		return l
	}
	return zap.L().Named("scene")
}

// Transform is a node's position, rotation and scale relative to its parent.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.One,
	}
}

// Matrix returns translation * rotation * scale.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// Node is an element of the scene graph. A node owns its children and
// components; it has at most one parent.
type Node struct {
	Name      string
	Transform Transform

	parent     *Node
	children   []*Node
	components []Component
}

// NewNode creates a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: IdentityTransform()}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the immediate children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// AddChild makes child an immediate descendant of n, detaching it from
// its previous parent.
func (n *Node) AddChild(child *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Walk visits n and its descendants depth first, each parent before its
// children. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// LocalToWorld returns the matrix mapping points in n's space to world space.
func (n *Node) LocalToWorld() math.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul(m)
	}
	return m
}

// WorldToLocal returns the matrix mapping world points into n's space.
func (n *Node) WorldToLocal() math.Mat4 {
	return n.LocalToWorld().Inverse()
}
