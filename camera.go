package raytracer

import (
	"math"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// nearlyVertical is the threshold (on 1 - |forward.y|) below which the
// camera's forward vector is treated as pointing straight up or down, so
// that the (0,1,0) world-up vector can no longer be used to derive right.
const nearlyVertical = 1e-5

// Screen maps a pixel coordinate to a world-space primary ray direction.
// It is built once per render from CameraOptions.
type Screen struct {
	options CameraOptions
	aspect  float64
	scale   float64

	forward, right, up prim.Vec3
}

// NewScreen derives the camera basis (forward, right, up) from
// options.LookFrom/LookTo, matching the spec's degenerate-vertical-camera
// fallback.
func NewScreen(options CameraOptions) *Screen {
	forward := options.LookFrom.Sub(options.LookTo).Normalize()

	var right prim.Vec3
	if 1-math.Abs(forward.Y) < nearlyVertical {
		right = prim.Vec3{X: 1, Y: 0, Z: 0}
	} else {
		right = prim.Vec3{X: 0, Y: 1, Z: 0}.Cross(forward).Normalize()
	}
	up := forward.Cross(right).Normalize()

	return &Screen{
		options: options,
		aspect:  float64(options.ScreenWidth) / float64(options.ScreenHeight),
		scale:   math.Tan(options.Fov / 2),
		forward: forward,
		right:   right,
		up:      up,
	}
}

// primaryRay returns the primary ray through pixel (i, j), with i in
// [0, width) and j in [0, height), originating at the camera position.
func (s *Screen) primaryRay(i, j int) prim.Ray {
	return prim.Ray{Origin: s.options.LookFrom, Direction: s.PointRay(i, j)}
}

// PointRay returns the normalized world-space direction of the primary ray
// through pixel (i, j), with i in [0, width) and j in [0, height).
func (s *Screen) PointRay(i, j int) prim.Vec3 {
	x := (2*(float64(i)+0.5)/float64(s.options.ScreenWidth) - 1) * s.aspect * s.scale
	y := (2*(float64(j)+0.5)/float64(s.options.ScreenHeight) - 1) * s.scale

	t := prim.Vec3{X: x, Y: -y, Z: -1}.Normalize()
	dir := s.right.Scale(t.X).Add(s.up.Scale(t.Y)).Add(s.forward.Scale(t.Z))
	return dir.Normalize()
}
