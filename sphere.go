package raytracer

import "github.com/lucidtrace/raytracer/internal/prim"

// Sphere is a value type: a center and a strictly positive radius.
type Sphere struct {
	Center prim.Vec3
	Radius float64
}

// SphereObject binds a Sphere to a material. Its shading normal always
// equals the geometric normal from the intersection record.
type SphereObject struct {
	Sphere   Sphere
	Material *Material
}
