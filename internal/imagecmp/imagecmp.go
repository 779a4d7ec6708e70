// Package imagecmp compares two rendered images for near-equality, since
// floating-point rounding and worker-partitioning order make exact
// byte-for-byte comparison unreliable across platforms.
package imagecmp

import (
	"fmt"
	"math"

	"github.com/lucidtrace/raytracer/internal/imageio"
	"github.com/lucidtrace/raytracer/internal/prim"
)

// pixelDistance is the Euclidean distance between two RGB pixels in
// 8-bit channel space.
func pixelDistance(a, b imageio.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// similarityThreshold is the per-pixel Euclidean distance below which two
// pixels are considered matching.
const similarityThreshold = 2.0

// requiredSimilarity is the fraction of matching pixels a pair of images
// must reach to be considered similar.
const requiredSimilarity = 0.99

// PixelSimilarity compares two equally-sized images pixel by pixel and
// returns the fraction of pixels whose Euclidean RGB distance is below
// similarityThreshold.
func PixelSimilarity(actual, expected *imageio.Image) (float64, error) {
	if actual.Width() != expected.Width() || actual.Height() != expected.Height() {
		return 0, fmt.Errorf("imagecmp: size mismatch: actual %dx%d, expected %dx%d",
			actual.Width(), actual.Height(), expected.Width(), expected.Height())
	}

	matches := 0
	total := actual.Width() * actual.Height()
	for y := 0; y < actual.Height(); y++ {
		for x := 0; x < actual.Width(); x++ {
			if pixelDistance(actual.GetPixel(y, x), expected.GetPixel(y, x)) < similarityThreshold {
				matches++
			}
		}
	}
	return float64(matches) / float64(total), nil
}

// Similar reports whether actual and expected match on at least
// requiredSimilarity of their pixels.
func Similar(actual, expected *imageio.Image) (bool, error) {
	similarity, err := PixelSimilarity(actual, expected)
	if err != nil {
		return false, err
	}
	return similarity >= requiredSimilarity, nil
}

// StructuralSimilarity is a looser comparison than PixelSimilarity: it
// tolerates the small per-pixel drift that antialiasing or a changed
// worker-partitioning order can introduce, at the cost of being more
// expensive to compute.
func StructuralSimilarity(actual, expected *imageio.Image) (float64, error) {
	return prim.SSIM(actual, expected)
}
