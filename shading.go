package raytracer

import (
	"math"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// surfaceBias offsets secondary ray origins off the surface to avoid
// self-intersection. It is distinct from triangleParallelEpsilon, which
// guards the triangle intersection test itself.
const surfaceBias = 1e-6

var (
	black       = prim.Vec3{}
	depthMissed = prim.Vec3{X: -1, Y: -1, Z: -1}
)

// trace is the recursive Whitted-style shading evaluator: intersect, then
// (in full mode) direct light + shadow, mirror reflection, and
// transmission, composed per the material's albedo weights.
func trace(ray prim.Ray, scene *Scene, opts RenderOptions, depth int, inside bool) prim.Vec3 {
	if depth == opts.Depth {
		return black
	}

	h, ok := scene.nearestHit(ray)
	if !ok {
		switch opts.Mode {
		case ModeDepth:
			return depthMissed
		default: // ModeNormal, ModeFull
			return black
		}
	}

	switch opts.Mode {
	case ModeNormal:
		n := h.normal
		return prim.Vec3{X: n.X/2 + 0.5, Y: n.Y/2 + 0.5, Z: n.Z/2 + 0.5}
	case ModeDepth:
		d := h.intersection.Distance
		return prim.Vec3{X: d, Y: d, Z: d}
	}

	return shadeFull(ray, scene, opts, depth, inside, h)
}

func shadeFull(ray prim.Ray, scene *Scene, opts RenderOptions, depth int, inside bool, h hit) prim.Vec3 {
	n := h.normal
	mat := h.material

	reflectOrigin := h.intersection.Position.Add(n.Scale(surfaceBias))
	reflectRay := prim.Ray{Origin: reflectOrigin, Direction: prim.Reflect(ray.Direction, n)}
	reflection := trace(reflectRay, scene, opts, depth+1, inside)

	direct := directLight(h, scene, ray)

	refraction := black
	if mat.Albedo.Refraction > 0 && depth < opts.Depth {
		eta := mat.RefractionIndex
		if !inside {
			eta = 1 / eta
		}
		if refractDir, ok := prim.Refract(ray.Direction, n, eta); ok {
			refractOrigin := h.intersection.Position.Sub(n.Scale(surfaceBias))
			refractRay := prim.Ray{Origin: refractOrigin, Direction: refractDir}

			weight := mat.Albedo.Refraction
			if inside {
				weight = 1
			}
			refraction = trace(refractRay, scene, opts, depth+1, !inside).Scale(weight)
		}
	}

	result := mat.AmbientColor.Add(mat.Emission)
	result = result.Add(direct.Scale(mat.Albedo.Direct))
	result = result.Add(reflection.Scale(mat.Albedo.Reflection))
	result = result.Add(refraction)
	return result
}

// directLight sums the Lambert diffuse and Phong specular contribution of
// every point light not in shadow.
func directLight(h hit, scene *Scene, ray prim.Ray) prim.Vec3 {
	n := h.normal
	mat := h.material
	p := h.intersection.Position.Add(n.Scale(surfaceBias))

	sum := black
	for _, light := range scene.Lights {
		toLight := light.Position.Sub(p)
		dist := toLight.Length()
		lightDir := toLight.Normalize()

		if isShadowed(prim.Ray{Origin: p, Direction: lightDir}, scene, dist) {
			continue
		}

		diffuseTerm := math.Max(0, n.Dot(lightDir))
		sum = sum.Add(light.Intensity.Mul(mat.DiffuseColor).Scale(diffuseTerm))

		specAngle := math.Max(0, prim.Reflect(lightDir, n).Dot(ray.Direction))
		specTerm := math.Pow(specAngle, mat.SpecularExponent)
		sum = sum.Add(light.Intensity.Mul(mat.SpecularColor).Scale(specTerm))
	}
	return sum
}

// isShadowed casts ray (whose origin is already offset off the surface)
// and reports whether the nearest hit lies strictly closer than
// lightDistance + surfaceBias.
func isShadowed(ray prim.Ray, scene *Scene, lightDistance float64) bool {
	h, ok := scene.nearestHit(ray)
	if !ok {
		return false
	}
	return h.intersection.Distance < lightDistance+surfaceBias
}
