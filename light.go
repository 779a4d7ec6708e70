package raytracer

import "github.com/lucidtrace/raytracer/internal/prim"

// Light is a point light: an omnidirectional source with no surface area.
// Intensity is a linear per-channel radiance scalar, not an RGB color
// clamped to [0, 1].
type Light struct {
	Position  prim.Vec3
	Intensity prim.Vec3
}
