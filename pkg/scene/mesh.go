package scene

import (
	"slices"

	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extents returns half the size.
func (b Bounds) Extents() math.Vec3 {
	return b.Size().Scale(0.5)
}

// Mesh is a triangle mesh in its node's local space.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
}

// SetVertices replaces the vertex positions with a copy of verts.
func (m *Mesh) SetVertices(verts []math.Vec3) {
	m.Vertices = slices.Clone(verts)
}

// Bounds returns the box enclosing every vertex. A mesh without
// vertices has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// MeshFilter holds the mesh drawn by a MeshRenderer.
type MeshFilter struct {
	Base
	Mesh *Mesh
}

// MeshCollider holds the mesh used for collision.
type MeshCollider struct {
	Base
	Mesh *Mesh
}

// GetMesh returns the mesh of n's MeshFilter, or nil when n has none.
func GetMesh(n *Node) *Mesh {
	f, ok := GetComponent[*MeshFilter](n)
	if !ok || f.Mesh == nil {
		log().Info("node has no mesh", zap.String("node", n.Name))
		return nil
	}
	return f.Mesh
}

// LocalMeshVertices returns a copy of n's mesh vertices, or nil when n
// has no mesh.
func LocalMeshVertices(n *Node) []math.Vec3 {
	mesh := GetMesh(n)
	if mesh == nil {
		return nil
	}
	return slices.Clone(mesh.Vertices)
}

// GlobalMeshVertices returns n's mesh vertices in world space, or nil when
// n has no mesh.
func GlobalMeshVertices(n *Node) []math.Vec3 {
	verts := LocalMeshVertices(n)
	if verts == nil {
		return nil
	}
	return ToGlobal(verts, n)
}

// SetLocalMeshVertices replaces n's mesh vertices. When replaceCollider is
// set, existing mesh colliders are swapped for one built from the new mesh.
// Nodes without a mesh are left unchanged.
func SetLocalMeshVertices(n *Node, verts []math.Vec3, replaceCollider bool) {
	mesh := GetMesh(n)
	if mesh == nil {
		return
	}
	mesh.SetVertices(verts)

	if replaceCollider {
		for {
			c, ok := GetComponent[*MeshCollider](n)
			if !ok {
				break
			}
			n.RemoveComponent(c)
		}
		n.AddComponent(&MeshCollider{Mesh: mesh})
	}
}

// SetGlobalMeshVertices is SetLocalMeshVertices with world-space vertices.
func SetGlobalMeshVertices(n *Node, verts []math.Vec3, replaceCollider bool) {
	SetLocalMeshVertices(n, ToLocal(verts, n), replaceCollider)
}

// LocalCenter returns the center of n's mesh bounds in local space, or the
// zero vector when n has no mesh.
func LocalCenter(n *Node) math.Vec3 {
	if mesh := GetMesh(n); mesh != nil {
		return mesh.Bounds().Center()
	}
	return math.Zero
}

// GlobalCenter returns LocalCenter in world space. Without a mesh this is
// the node's world position.
func GlobalCenter(n *Node) math.Vec3 {
	return n.LocalToWorld().TransformPoint(LocalCenter(n))
}

// LocalSize returns the size of n's mesh bounds, or the zero vector when n
// has no mesh.
func LocalSize(n *Node) math.Vec3 {
	if mesh := GetMesh(n); mesh != nil {
		return mesh.Bounds().Size()
	}
	return math.Zero
}

// GlobalSize returns LocalSize transformed as a vector into world space.
// Rotation can make components negative.
func GlobalSize(n *Node) math.Vec3 {
	return n.LocalToWorld().TransformVector(LocalSize(n))
}
