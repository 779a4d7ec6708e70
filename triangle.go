package raytracer

import "github.com/lucidtrace/raytracer/internal/prim"

// Triangle is three ordered vertices (a, b, c).
type Triangle struct {
	A, B, C prim.Vec3
}

// Area returns 1/2 |(b-a) x (c-a)|.
func (t Triangle) Area() float64 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return ab.Cross(ac).Length() / 2
}

// MeshTriangleObject binds a Triangle to a material and an optional
// per-vertex normal for each of its three corners. VertexNormals[i] is nil
// when the scene file did not supply a normal for that corner; the
// shading normal falls back to the intersection's geometric normal unless
// all three are present.
type MeshTriangleObject struct {
	Polygon       Triangle
	Material      *Material
	VertexNormals [3]*prim.Vec3
}

// HasVertexNormals reports whether all three corners carry a per-vertex
// normal, the precondition for barycentric normal interpolation.
func (m MeshTriangleObject) HasVertexNormals() bool {
	return m.VertexNormals[0] != nil && m.VertexNormals[1] != nil && m.VertexNormals[2] != nil
}
