package raytracer

import (
	"testing"

	"github.com/lucidtrace/raytracer/internal/prim"
)

func litSphereScene() (*Scene, Material) {
	mat := NewMaterial("lit")
	mat.DiffuseColor = prim.Vec3{X: 1, Y: 1, Z: 1}
	mat.Albedo = Albedo{Direct: 1}

	scene := NewScene()
	scene.Materials[mat.Name] = &mat
	scene.Spheres = []SphereObject{
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -5}, Radius: 1}, Material: &mat},
	}
	scene.Lights = []Light{
		{Position: prim.Vec3{X: 0, Y: 0, Z: 0}, Intensity: prim.Vec3{X: 1, Y: 1, Z: 1}},
	}
	return scene, mat
}

func TestTraceFullModeLitSphereIsNotBlack(t *testing.T) {
	scene, _ := litSphereScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	opts := RenderOptions{Depth: 3, Mode: ModeFull}

	got := trace(ray, scene, opts, 0, false)
	if got == black {
		t.Errorf("expected a directly-lit sphere to shade to a non-black color")
	}
}

func TestTraceFullModeMissIsBlack(t *testing.T) {
	scene, _ := litSphereScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 1, Y: 1, Z: 1}}
	opts := RenderOptions{Depth: 3, Mode: ModeFull}

	got := trace(ray, scene, opts, 0, false)
	if got != black {
		t.Errorf("expected a ray that hits nothing to shade to black, got %v", got)
	}
}

func TestTraceNormalModeEncodesHitNormal(t *testing.T) {
	scene, _ := litSphereScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	opts := RenderOptions{Depth: 3, Mode: ModeNormal}

	got := trace(ray, scene, opts, 0, false)
	want := prim.Vec3{X: 0.5, Y: 0.5, Z: 1}
	if diff := got.Sub(want).Length(); diff > 1e-6 {
		t.Errorf("normal-mode encoding mismatch: got %v want %v", got, want)
	}
}

func TestTraceDepthModeEncodesMissAsSentinel(t *testing.T) {
	scene, _ := litSphereScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 1, Y: 1, Z: 1}}
	opts := RenderOptions{Depth: 3, Mode: ModeDepth}

	got := trace(ray, scene, opts, 0, false)
	if got != depthMissed {
		t.Errorf("expected a miss to encode as the sentinel, got %v", got)
	}
}

func TestTraceDepthModeEncodesDistance(t *testing.T) {
	scene, _ := litSphereScene()
	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	opts := RenderOptions{Depth: 3, Mode: ModeDepth}

	got := trace(ray, scene, opts, 0, false)
	if got.X != 4 || got.Y != 4 || got.Z != 4 {
		t.Errorf("expected distance 4 replicated across channels, got %v", got)
	}
}

func TestTraceStopsAtDepthBudget(t *testing.T) {
	mat := NewMaterial("mirror")
	mat.Albedo = Albedo{Reflection: 1}
	scene := NewScene()
	scene.Materials[mat.Name] = &mat
	scene.Spheres = []SphereObject{
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -5}, Radius: 1}, Material: &mat},
	}

	ray := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	opts := RenderOptions{Depth: 0, Mode: ModeFull}
	got := trace(ray, scene, opts, 0, false)
	if got != black {
		t.Errorf("expected depth-0 budget to return black immediately, got %v", got)
	}
}

func TestIsShadowedDetectsOccluder(t *testing.T) {
	occluderMat := NewMaterial("occluder")
	scene := NewScene()
	scene.Spheres = []SphereObject{
		{Sphere: Sphere{Center: prim.Vec3{X: 0, Y: 0, Z: -2}, Radius: 1}, Material: &occluderMat},
	}

	shadowRay := prim.Ray{Origin: prim.Vec3{}, Direction: prim.Vec3{X: 0, Y: 0, Z: -1}}
	if !isShadowed(shadowRay, scene, 10) {
		t.Errorf("expected the occluder between the point and the light to cast a shadow")
	}
	if isShadowed(shadowRay, scene, 0.5) {
		t.Errorf("expected no shadow when the light is nearer than the occluder")
	}
}
