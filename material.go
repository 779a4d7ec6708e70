package raytracer

import "github.com/lucidtrace/raytracer/internal/prim"

// Albedo is the three blending weights applied to direct light, mirror
// reflection, and refraction before they are summed in the shading
// evaluator. It is not a physical reflectance: the three weights are not
// required to sum to one, and reference scenes routinely violate energy
// conservation.
type Albedo struct {
	Direct, Reflection, Refraction float64
}

// DefaultAlbedo is the albedo assumed when a material file omits "al": pure
// diffuse.
var DefaultAlbedo = Albedo{Direct: 1, Reflection: 0, Refraction: 0}

// Material holds every per-surface parameter the shading evaluator reads.
type Material struct {
	Name string

	AmbientColor  prim.Vec3
	DiffuseColor  prim.Vec3
	SpecularColor prim.Vec3
	Emission      prim.Vec3

	SpecularExponent float64

	// RefractionIndex defaults to 1.0 (no refraction-index mismatch) when
	// a material library omits "Ni".
	RefractionIndex float64

	Albedo Albedo
}

// NewMaterial returns a Material with the spec-mandated defaults
// (RefractionIndex 1.0, pure-diffuse Albedo) and the given name.
func NewMaterial(name string) Material {
	return Material{
		Name:            name,
		RefractionIndex: 1.0,
		Albedo:          DefaultAlbedo,
	}
}
