package imagecmp

import (
	"testing"

	"github.com/lucidtrace/raytracer/internal/imageio"
)

func TestPixelSimilarityIdenticalImages(t *testing.T) {
	a := imageio.NewImage(4, 4)
	b := imageio.NewImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a.SetPixel(imageio.RGB{R: 10, G: 20, B: 30}, y, x)
			b.SetPixel(imageio.RGB{R: 10, G: 20, B: 30}, y, x)
		}
	}
	similar, err := Similar(a, b)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if !similar {
		t.Errorf("expected identical images to be similar")
	}
}

func TestPixelSimilarityDetectsDifference(t *testing.T) {
	a := imageio.NewImage(4, 4)
	b := imageio.NewImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a.SetPixel(imageio.RGB{R: 0, G: 0, B: 0}, y, x)
			b.SetPixel(imageio.RGB{R: 255, G: 255, B: 255}, y, x)
		}
	}
	similar, err := Similar(a, b)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if similar {
		t.Errorf("expected maximally different images to not be similar")
	}
}

func TestStructuralSimilarityIdenticalImages(t *testing.T) {
	a := imageio.NewImage(16, 16)
	b := imageio.NewImage(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := imageio.RGB{R: uint8(x * 16), G: uint8(y * 16), B: 128}
			a.SetPixel(v, y, x)
			b.SetPixel(v, y, x)
		}
	}
	score, err := StructuralSimilarity(a, b)
	if err != nil {
		t.Fatalf("StructuralSimilarity: %v", err)
	}
	if score < 0.9 {
		t.Errorf("expected identical images to score near 1.0, got %v", score)
	}
}

func TestPixelSimilaritySizeMismatchErrors(t *testing.T) {
	a := imageio.NewImage(4, 4)
	b := imageio.NewImage(2, 2)
	if _, err := PixelSimilarity(a, b); err == nil {
		t.Fatalf("expected an error for mismatched image sizes")
	}
}

func TestPixelSimilarityToleratesSmallDifferences(t *testing.T) {
	a := imageio.NewImage(2, 2)
	b := imageio.NewImage(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a.SetPixel(imageio.RGB{R: 100, G: 100, B: 100}, y, x)
			b.SetPixel(imageio.RGB{R: 101, G: 100, B: 100}, y, x)
		}
	}
	similarity, err := PixelSimilarity(a, b)
	if err != nil {
		t.Fatalf("PixelSimilarity: %v", err)
	}
	if similarity != 1.0 {
		t.Errorf("expected a 1-unit channel difference to still count as matching, got %v", similarity)
	}
}
