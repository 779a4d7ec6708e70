// Command raytrace renders a wavefront-style scene file to a PNG image.
package main

import (
	"flag"
	"fmt"
	"log"

	rt "github.com/lucidtrace/raytracer"
	"github.com/lucidtrace/raytracer/internal/config"
	"github.com/lucidtrace/raytracer/internal/prim"
)

var (
	configFile = flag.String("config", "", "YAML config file (overrides the flags below)")

	sceneFile = flag.String("scene", "", "scene filename to render")
	outFile   = flag.String("out", "", "png filename to write")
	width     = flag.Int("width", 800, "image width in pixels")
	height    = flag.Int("height", 600, "image height in pixels")
	depth     = flag.Int("depth", 5, "maximum recursion depth")
	mode      = flag.String("mode", "full", "render mode: full, normal, or depth")
)

func resolve() (scene, out string, cam rt.CameraOptions, opts rt.RenderOptions, err error) {
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			return "", "", rt.CameraOptions{}, rt.RenderOptions{}, err
		}
		cam = rt.NewCameraOptions(cfg.Camera.Width, cfg.Camera.Height)
		if cfg.Camera.Fov != 0 {
			cam.Fov = cfg.Camera.Fov
		}
		if cfg.Camera.From != nil {
			cam.LookFrom = toVec3(*cfg.Camera.From)
		}
		if cfg.Camera.To != nil {
			cam.LookTo = toVec3(*cfg.Camera.To)
		}
		renderMode := rt.ModeFull
		if cfg.Render.Mode != "" {
			renderMode = rt.RenderMode(cfg.Render.Mode)
		}
		return cfg.Scene, cfg.Output, cam, rt.RenderOptions{Depth: cfg.Render.Depth, Mode: renderMode}, nil
	}

	if *sceneFile == "" {
		return "", "", rt.CameraOptions{}, rt.RenderOptions{}, fmt.Errorf("--scene is required (or pass --config)")
	}
	if *outFile == "" {
		return "", "", rt.CameraOptions{}, rt.RenderOptions{}, fmt.Errorf("--out is required (or pass --config)")
	}
	return *sceneFile, *outFile, rt.NewCameraOptions(*width, *height),
		rt.RenderOptions{Depth: *depth, Mode: rt.RenderMode(*mode)}, nil
}

func toVec3(v config.Vec3Config) prim.Vec3 {
	return prim.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func main() {
	flag.Parse()

	scene, out, cam, opts, err := resolve()
	if err != nil {
		log.Fatal(err)
	}

	img, err := rt.Render(scene, cam, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := img.Write(out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", out)
}
