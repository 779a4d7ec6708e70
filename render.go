package raytracer

import (
	"runtime"
	"sync"

	"github.com/lucidtrace/raytracer/internal/imageio"
)

// Render loads the scene at scenePath and traces every pixel of the
// configured screen, returning the post-processed 8-bit image. Each
// pixel is independent, so rows are partitioned across a worker pool
// sized to the host's CPU count; a sequential loop would produce an
// identical image, just slower.
func Render(scenePath string, cam CameraOptions, opts RenderOptions) (*imageio.Image, error) {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return nil, err
	}

	return RenderScene(scene, cam, opts)
}

// RenderScene is Render's scene-already-loaded half: it traces and
// post-processes an already-parsed *Scene. Callers that build or mutate a
// Scene in memory (or that load it once and render it several times) use
// this directly instead of going through Render's filesystem path.
func RenderScene(scene *Scene, cam CameraOptions, opts RenderOptions) (*imageio.Image, error) {
	if err := cam.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	screen := NewScreen(cam)
	buf := newRadianceBuffer(cam.ScreenWidth, cam.ScreenHeight)

	renderRows(cam.ScreenHeight, func(j int) {
		for i := 0; i < cam.ScreenWidth; i++ {
			ray := screen.primaryRay(i, j)
			buf[i][j] = trace(ray, scene, opts, 0, false)
		}
	})

	pixels := postProcess(buf, opts.Mode)

	img := imageio.NewImage(cam.ScreenWidth, cam.ScreenHeight)
	for x := 0; x < cam.ScreenWidth; x++ {
		for y := 0; y < cam.ScreenHeight; y++ {
			img.SetPixel(pixels[x][y], y, x)
		}
	}
	return img, nil
}

// renderRows partitions [0, height) into one contiguous row range per
// worker and runs rowFn(j) for every row, in parallel, waiting for every
// worker to finish before returning.
func renderRows(height int, rowFn func(j int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > height {
			end = height
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				rowFn(j)
			}
		}(start, end)
	}
	wg.Wait()
}
