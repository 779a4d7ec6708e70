package raytracer

import "github.com/lucidtrace/raytracer/internal/prim"

// Scene owns a material table and the object/light lists that reference
// into it. Scenes are immutable after construction; the material table
// must outlive every object that references it.
type Scene struct {
	Materials map[string]*Material
	Triangles []MeshTriangleObject
	Spheres   []SphereObject
	Lights    []Light
}

// NewScene returns an empty, ready-to-populate Scene.
func NewScene() *Scene {
	return &Scene{Materials: make(map[string]*Material)}
}

// hit bundles the nearest Intersection with the material and shading
// normal the scene-level lookup computed for it.
type hit struct {
	intersection Intersection
	material     *Material
	normal       prim.Vec3
}

// nearestHit iterates every mesh triangle and sphere in the scene and
// returns the record with the smallest positive distance, computing the
// shading normal (which may differ from the geometric normal when a
// triangle carries interpolated per-vertex normals). Mesh triangles are
// tested before spheres; ties are broken by iteration order, which is not
// an externally observable property.
func (s *Scene) nearestHit(ray prim.Ray) (hit, bool) {
	var best hit
	found := false

	for i := range s.Triangles {
		obj := &s.Triangles[i]
		isect, ok := IntersectTriangle(ray, obj.Polygon)
		if !ok {
			continue
		}
		if found && isect.Distance >= best.intersection.Distance {
			continue
		}
		best = hit{
			intersection: isect,
			material:     obj.Material,
			normal:       triangleShadingNormal(obj, isect),
		}
		found = true
	}

	for i := range s.Spheres {
		obj := &s.Spheres[i]
		isect, ok := IntersectSphere(ray, obj.Sphere)
		if !ok {
			continue
		}
		if found && isect.Distance >= best.intersection.Distance {
			continue
		}
		best = hit{
			intersection: isect,
			material:     obj.Material,
			normal:       isect.Normal,
		}
		found = true
	}

	return best, found
}

// triangleShadingNormal returns the barycentric interpolation of the
// triangle's per-vertex normals when all three are present, normalized
// before being handed back; otherwise it returns the intersection's
// geometric normal verbatim.
func triangleShadingNormal(obj *MeshTriangleObject, isect Intersection) prim.Vec3 {
	if !obj.HasVertexNormals() {
		return isect.Normal
	}
	gamma, alpha, beta := prim.Barycentric(obj.Polygon.A, obj.Polygon.B, obj.Polygon.C, isect.Position)
	n := obj.VertexNormals[0].Scale(gamma).
		Add(obj.VertexNormals[1].Scale(alpha)).
		Add(obj.VertexNormals[2].Scale(beta))
	return n.Normalize()
}
