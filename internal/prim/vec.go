// Package prim implements the 3-D vector arithmetic shared by every layer
// of the ray tracer: positions, directions, and linear-space radiance are
// all represented as Vec3.
package prim

import (
	"fmt"
	"math"
)

// Vec3 is a fixed-size ordered triple of 64-bit floats. Equality is
// bitwise on components; it is a plain value type so it can be passed and
// returned through the recursive shading evaluator without aliasing.
type Vec3 struct {
	X, Y, Z float64
}

// RGB is a convenience function to construct a vector
// from normalized RGB values [0.0, 1.0].
func RGB(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b}
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies two vectors pointwise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) CosineSimilarity(other Vec3) float64 {
	return v.Dot(other) / (v.Length() * other.Length())
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Normalize returns v scaled to unit length. Undefined for a zero-length
// vector; callers are responsible for never normalizing one.
func (v Vec3) Normalize() Vec3 {
	magnitude := v.Length()
	return Vec3{X: v.X / magnitude, Y: v.Y / magnitude, Z: v.Z / magnitude}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0
}

// RGBA implements the color.Color interface, interpreting v as a linear
// color with components in [0, 1].
func (v Vec3) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	return uint32(v.X * max), uint32(v.Y * max), uint32(v.Z * max), max
}

// Clamp01 clamps the X, Y, and Z values between 0 and 1.
func (v Vec3) Clamp01() Vec3 {
	return Vec3{X: clamp(0, 1, v.X), Y: clamp(0, 1, v.Y), Z: clamp(0, 1, v.Z)}
}

// clamp limits x between min and max
func clamp(min, max, x float64) float64 {
	return math.Min(math.Max(x, min), max)
}

// Reflect returns d reflected about the unit normal n: d - 2(d.n)n. If d
// and n are unit vectors the result is unit. The result is not
// renormalized.
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Refract computes the refracted direction of incident direction d across
// a surface with unit normal n (oriented opposing d), given
// eta = n_from / n_to. It reports false on total internal reflection, in
// which case the returned vector must not be used.
func Refract(d, n Vec3, eta float64) (Vec3, bool) {
	cosTheta := d.Dot(n)
	k := 1 - eta*eta*(1-cosTheta*cosTheta)
	if k < 0 {
		return Vec3{}, false
	}
	return d.Scale(eta).Sub(n.Scale(eta*cosTheta + math.Sqrt(k))), true
}

// Barycentric returns (gamma, alpha, beta) such that
// p == gamma*a + alpha*b + beta*c for a triangle with vertices a, b, c.
// Component 0 of the result always pairs with vertex a, regardless of how
// the caller orders the triangle's vertices.
func Barycentric(a, b, c, p Vec3) (gamma, alpha, beta float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	dotABAB := ab.Dot(ab)
	dotABAC := ab.Dot(ac)
	dotACAC := ac.Dot(ac)
	dotAPAB := ap.Dot(ab)
	dotAPAC := ap.Dot(ac)

	denom := dotABAB*dotACAC - dotABAC*dotABAC

	alpha = (dotACAC*dotAPAB - dotABAC*dotAPAC) / denom
	beta = (dotABAB*dotAPAC - dotABAC*dotAPAB) / denom
	gamma = 1 - alpha - beta
	return gamma, alpha, beta
}
