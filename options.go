package raytracer

import (
	"fmt"
	"math"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// RenderMode selects which of the three render passes the evaluator and
// post-processor run.
type RenderMode string

const (
	ModeFull   RenderMode = "full"
	ModeNormal RenderMode = "normal"
	ModeDepth  RenderMode = "depth"
)

func (m RenderMode) valid() bool {
	switch m {
	case ModeFull, ModeNormal, ModeDepth:
		return true
	default:
		return false
	}
}

// CameraOptions describes the virtual camera. ScreenWidth and ScreenHeight
// are required and must be positive. Fov, LookFrom, and LookTo are used
// exactly as given, zero values included; NewCameraOptions fills them with
// their documented defaults.
type CameraOptions struct {
	ScreenWidth, ScreenHeight int
	Fov                       float64
	LookFrom                  prim.Vec3
	LookTo                    prim.Vec3
}

// NewCameraOptions returns CameraOptions for the given screen size with
// the spec's documented defaults: Fov = pi/2, LookFrom = origin,
// LookTo = -z.
func NewCameraOptions(width, height int) CameraOptions {
	return CameraOptions{
		ScreenWidth:  width,
		ScreenHeight: height,
		Fov:          math.Pi / 2,
		LookFrom:     prim.Vec3{},
		LookTo:       prim.Vec3{X: 0, Y: 0, Z: -1},
	}
}

func (c CameraOptions) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("camera options: screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// RenderOptions configures the recursion budget and render mode.
type RenderOptions struct {
	// Depth is the maximum recursion depth; reaching it returns black.
	Depth int
	Mode  RenderMode
}

func (r RenderOptions) validate() error {
	if r.Depth < 0 {
		return fmt.Errorf("render options: depth must be non-negative, got %d", r.Depth)
	}
	if !r.Mode.valid() {
		return fmt.Errorf("render options: unknown render mode %q", r.Mode)
	}
	return nil
}
