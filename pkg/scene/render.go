package scene

import (
	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// MainColor is the material property holding the main color.
const MainColor = "_Color"

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// Material is a named set of shader properties. Only properties the
// material declares can be queried with HasColor.
type Material struct {
	Name   string
	Colors map[string]Color
	Floats map[string]float32
}

// NewMaterial returns a material declaring a white main color.
func NewMaterial(name string) *Material {
	return &Material{
		Name:   name,
		Colors: map[string]Color{MainColor: White},
		Floats: map[string]float32{},
	}
}

// HasColor reports whether the material declares the color property.
func (m *Material) HasColor(prop string) bool {
	_, ok := m.Colors[prop]
	return ok
}

// Color returns a color property.
func (m *Material) Color(prop string) (Color, bool) {
	c, ok := m.Colors[prop]
	return c, ok
}

// SetColor sets a color property, declaring it if needed.
func (m *Material) SetColor(prop string, c Color) {
	if m.Colors == nil {
		m.Colors = make(map[string]Color)
	}
	m.Colors[prop] = c
}

// Float returns a float property.
func (m *Material) Float(prop string) (float32, bool) {
	f, ok := m.Floats[prop]
	return f, ok
}

// SetFloat sets a float property, declaring it if needed.
func (m *Material) SetFloat(prop string, f float32) {
	if m.Floats == nil {
		m.Floats = make(map[string]float32)
	}
	m.Floats[prop] = f
}

// Renderer is a component that draws with a material.
type Renderer interface {
	Component
	Material() *Material
	SetMaterial(m *Material)
}

type rendererBase struct {
	Base
	material *Material
}

func (r *rendererBase) Material() *Material {
	return r.material
}

func (r *rendererBase) SetMaterial(m *Material) {
	r.material = m
}

// MeshRenderer draws the node's mesh.
type MeshRenderer struct {
	rendererBase
}

// NewMeshRenderer returns a mesh renderer using mat.
func NewMeshRenderer(mat *Material) *MeshRenderer {
	r := &MeshRenderer{}
	r.material = mat
	return r
}

// LineRenderer draws a polyline through Points.
type LineRenderer struct {
	rendererBase
	Points []math.Vec3
	Width  float32
}

// NewLineRenderer returns a line renderer using mat.
func NewLineRenderer(mat *Material, points ...math.Vec3) *LineRenderer {
	r := &LineRenderer{Points: points, Width: 1}
	r.material = mat
	return r
}

// SetAllRendererMaterials assigns mat to every renderer on n and its descendants.
func SetAllRendererMaterials(n *Node, mat *Material) {
	SetAllRendererMaterialsOf[Renderer](n, mat)
}

// SetAllRendererMaterialsOf assigns mat to every renderer of type T on n and
// its descendants.
func SetAllRendererMaterialsOf[T Renderer](n *Node, mat *Material) {
	for _, r := range GetAll[T](n) {
		r.SetMaterial(mat)
	}
}

// SetAllRendererColors sets the main color of every renderer's material on n
// and its descendants. Materials without a main color are skipped and logged.
func SetAllRendererColors(n *Node, c Color) {
	SetAllRendererColorsOf[Renderer](n, c)
}

// SetAllRendererColorsOf is SetAllRendererColors restricted to renderers of type T.
func SetAllRendererColorsOf[T Renderer](n *Node, c Color) {
	for _, r := range GetAll[T](n) {
		mat := r.Material()
		if mat == nil {
			log().Info("renderer has no material", zap.String("node", r.Node().Name))
			continue
		}
		if !mat.HasColor(MainColor) {
			log().Info("material has no main color property", zap.String("material", mat.Name))
			continue
		}
		mat.SetColor(MainColor, c)
	}
}
