package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucidtrace/raytracer/internal/prim"
)

func TestNearestHitPicksClosest(t *testing.T) {
	near := NewMaterial("near")
	far := NewMaterial("far")
	scene := NewScene()
	scene.Spheres = []SphereObject{
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -10}, Radius: 1}, Material: &far},
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -5}, Radius: 1}, Material: &near},
	}

	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	h, ok := scene.nearestHit(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if h.material != &near {
		t.Errorf("expected the nearer sphere's material, got %v", h.material)
	}
}

func TestNearestHitNoObjects(t *testing.T) {
	scene := NewScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	if _, ok := scene.nearestHit(ray); ok {
		t.Fatalf("expected no hit against an empty scene")
	}
}

func TestNearestHitPrefersTriangleOverFartherSphere(t *testing.T) {
	triMat := NewMaterial("tri")
	sphereMat := NewMaterial("sphere")
	scene := NewScene()
	scene.Triangles = []MeshTriangleObject{
		{
			Polygon: Triangle{
				A: prim.Vec3{X: -1, Y: -1, Z: -3},
				B: prim.Vec3{X: 1, Y: -1, Z: -3},
				C: prim.Vec3{X: 0, Y: 1, Z: -3},
			},
			Material: &triMat,
		},
	}
	scene.Spheres = []SphereObject{
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -10}, Radius: 1}, Material: &sphereMat},
	}

	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	h, ok := scene.nearestHit(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if h.material != &triMat {
		t.Errorf("expected the triangle's material since it is closer")
	}
}

func TestTriangleShadingNormalFallsBackToGeometric(t *testing.T) {
	obj := &MeshTriangleObject{
		Polygon: Triangle{
			A: prim.Vec3{X: -1, Y: -1, Z: -5},
			B: prim.Vec3{X: 1, Y: -1, Z: -5},
			C: prim.Vec3{X: 0, Y: 1, Z: -5},
		},
	}
	isect := Intersection{Normal: prim.Vec3{X: 0, Y: 0, Z: 1}}
	got := triangleShadingNormal(obj, isect)
	if diff := cmp.Diff(isect.Normal, got, approxOpts); diff != "" {
		t.Errorf("expected geometric normal fallback (-want +got):\n%s", diff)
	}
}

func TestTriangleShadingNormalInterpolatesVertexNormals(t *testing.T) {
	a := prim.Vec3{X: 0, Y: 0, Z: 1}
	b := prim.Vec3{X: 0, Y: 0, Z: 1}
	c := prim.Vec3{X: 0, Y: 0, Z: 1}
	obj := &MeshTriangleObject{
		Polygon: Triangle{
			A: prim.Vec3{X: -1, Y: -1, Z: -5},
			B: prim.Vec3{X: 1, Y: -1, Z: -5},
			C: prim.Vec3{X: 0, Y: 1, Z: -5},
		},
		VertexNormals: [3]*prim.Vec3{&a, &b, &c},
	}
	isect := Intersection{Position: prim.Vec3{X: 0, Y: -1.0 / 3, Z: -5}}
	got := triangleShadingNormal(obj, isect)
	want := prim.Vec3{X: 0, Y: 0, Z: 1}
	if diff := cmp.Diff(want, got, approxOpts); diff != "" {
		t.Errorf("expected uniform vertex normal to interpolate to itself (-want +got):\n%s", diff)
	}
}
