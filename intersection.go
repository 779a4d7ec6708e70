package raytracer

import (
	"math"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// triangleParallelEpsilon is the tolerance used to cull rays parallel to
// the triangle's plane in the Moller-Trumbore test. It is distinct from
// the surface-offset bias applied to secondary ray origins (see shading.go).
const triangleParallelEpsilon = 1e-7

// Intersection is a ray-primitive hit record. Normal is unit length and
// oriented against the incoming ray: dot(Normal, ray.Direction) <= 0.
// Intersections order by Distance ascending.
type Intersection struct {
	Position prim.Vec3
	Normal   prim.Vec3
	Distance float64
}

// newIntersection normalizes normal before storing it, matching the
// geometry kernel's contract that every returned Intersection carries a
// unit normal.
func newIntersection(position, normal prim.Vec3, distance float64) Intersection {
	return Intersection{Position: position, Normal: normal.Normalize(), Distance: distance}
}

// orientAgainst flips n if it points the same way as d, so that
// dot(result, d) <= 0.
func orientAgainst(n, d prim.Vec3) prim.Vec3 {
	if n.Dot(d) > 0 {
		return n.Neg()
	}
	return n
}

// IntersectSphere solves ||O + tD - C||^2 = r^2 for the smallest positive
// root. It tolerates a non-unit ray direction. Returns false on no hit.
func IntersectSphere(ray prim.Ray, sphere Sphere) (Intersection, bool) {
	oc := ray.Origin.Sub(sphere.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}, false
	}
	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	t, ok := smallestPositive(t1, t2)
	if !ok {
		return Intersection{}, false
	}

	position := ray.At(t)
	normal := orientAgainst(position.Sub(sphere.Center), ray.Direction)
	return newIntersection(position, normal, t), true
}

func smallestPositive(t1, t2 float64) (float64, bool) {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}

// IntersectTriangle implements the Moller-Trumbore algorithm. Rays
// parallel to the triangle's plane (within triangleParallelEpsilon) are
// culled, as are hits at or behind the ray origin.
func IntersectTriangle(ray prim.Ray, tri Triangle) (Intersection, bool) {
	edge1 := tri.B.Sub(tri.A)
	edge2 := tri.C.Sub(tri.A)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleParallelEpsilon && a < triangleParallelEpsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tri.A)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	t := f * edge2.Dot(q)
	if t <= triangleParallelEpsilon {
		return Intersection{}, false
	}

	position := ray.At(t)
	normal := orientAgainst(edge1.Cross(edge2), ray.Direction)
	return newIntersection(position, normal, t), true
}
