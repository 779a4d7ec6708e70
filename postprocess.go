package raytracer

import (
	"math"

	"github.com/lucidtrace/raytracer/internal/imageio"
	"github.com/lucidtrace/raytracer/internal/prim"
)

// radianceBuffer is the width x height grid of linear radiance values
// produced by the raytrace pass, indexed [x][y].
type radianceBuffer [][]prim.Vec3

func newRadianceBuffer(width, height int) radianceBuffer {
	buf := make(radianceBuffer, width)
	for x := range buf {
		buf[x] = make([]prim.Vec3, height)
	}
	return buf
}

// postProcess dispatches to the mode-specific post-processor and returns
// an equally-shaped buffer of 8-bit pixels.
func postProcess(buf radianceBuffer, mode RenderMode) [][]imageio.RGB {
	switch mode {
	case ModeFull:
		return postProcessFull(buf)
	case ModeNormal:
		return postProcessNormal(buf)
	case ModeDepth:
		return postProcessDepth(buf)
	default:
		panic("raytracer: unknown render mode " + string(mode))
	}
}

// toneMap applies the Reinhard-style extended operator
// v_out = v * (1 + v/Vmax^2) / (1 + v), using the single maximum component
// across the whole buffer. A buffer that is entirely black is left
// untouched.
func toneMap(buf radianceBuffer) radianceBuffer {
	vmax := 0.0
	for _, col := range buf {
		for _, v := range col {
			vmax = math.Max(vmax, math.Max(v.X, math.Max(v.Y, v.Z)))
		}
	}
	if vmax == 0 {
		return buf
	}

	out := newRadianceBuffer(len(buf), len(buf[0]))
	vmax2 := vmax * vmax
	toneComponent := func(v float64) float64 {
		return v * (1 + v/vmax2) / (1 + v)
	}
	for x, col := range buf {
		for y, v := range col {
			out[x][y] = prim.Vec3{X: toneComponent(v.X), Y: toneComponent(v.Y), Z: toneComponent(v.Z)}
		}
	}
	return out
}

func gammaCorrect(buf radianceBuffer) [][]imageio.RGB {
	width, height := len(buf), len(buf[0])
	out := make([][]imageio.RGB, width)
	for x := range out {
		out[x] = make([]imageio.RGB, height)
		for y, v := range buf[x] {
			out[x][y] = imageio.RGB{
				R: gammaChannel(v.X),
				G: gammaChannel(v.Y),
				B: gammaChannel(v.Z),
			}
		}
	}
	return out
}

func gammaChannel(c float64) uint8 {
	return clampByte(math.Round(math.Pow(c, 1/2.2) * 255))
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func postProcessFull(buf radianceBuffer) [][]imageio.RGB {
	return gammaCorrect(toneMap(buf))
}

func postProcessNormal(buf radianceBuffer) [][]imageio.RGB {
	width, height := len(buf), len(buf[0])
	out := make([][]imageio.RGB, width)
	for x := range out {
		out[x] = make([]imageio.RGB, height)
		for y, v := range buf[x] {
			out[x][y] = imageio.RGB{
				R: clampByte(math.Round(v.X * 255)),
				G: clampByte(math.Round(v.Y * 255)),
				B: clampByte(math.Round(v.Z * 255)),
			}
		}
	}
	return out
}

// postProcessDepth finds the maximum distance among hit pixels and scales
// every hit pixel by it; unhit pixels (sentinel -1) render as full white.
func postProcessDepth(buf radianceBuffer) [][]imageio.RGB {
	dmax := 0.0
	for _, col := range buf {
		for _, v := range col {
			if v.X != -1 {
				dmax = math.Max(dmax, v.X)
			}
		}
	}

	width, height := len(buf), len(buf[0])
	out := make([][]imageio.RGB, width)
	channel := func(c float64) uint8 {
		if c == -1 {
			return 255
		}
		if dmax == 0 {
			return 0
		}
		return clampByte(math.Round(c / dmax * 255))
	}
	for x := range out {
		out[x] = make([]imageio.RGB, height)
		for y, v := range buf[x] {
			out[x][y] = imageio.RGB{R: channel(v.X), G: channel(v.Y), B: channel(v.Z)}
		}
	}
	return out
}
