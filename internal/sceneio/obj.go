// Package sceneio is the external scene-file collaborator: it parses the
// wavefront-style geometry file and its companion material library into
// plain data, leaving triangulation and material-reference resolution to
// the caller (mirroring how the original reader kept raw parsing separate
// from scene construction).
package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// FaceCorner is one corner of a polygon face: a 0-based index into
// ParsedScene.Vertices, and optionally a 0-based index into
// ParsedScene.Normals.
type FaceCorner struct {
	VertexIndex int
	NormalIndex int
	HasNormal   bool
}

// Face is a polygon (>= 3 corners) tagged with the material in effect when
// it was read.
type Face struct {
	MaterialName string
	Corners      []FaceCorner
}

// SphereData is an "S" directive: a sphere with the material in effect
// when it was read.
type SphereData struct {
	MaterialName string
	Center       prim.Vec3
	Radius       float64
}

// LightData is a "P" directive: a point light.
type LightData struct {
	Position  prim.Vec3
	Intensity prim.Vec3
}

// ParsedScene is the raw result of parsing a scene file: vertex/normal
// tables, faces, spheres, and lights, plus the resolved material table
// from the sibling mtllib file.
type ParsedScene struct {
	Vertices  []prim.Vec3
	Normals   []prim.Vec3
	Faces     []Face
	Spheres   []SphereData
	Lights    []LightData
	Materials map[string]MaterialData
}

// LoadScene reads the scene file at path and its companion material
// library (named by its "mtllib" directive, resolved relative to path's
// directory).
func LoadScene(path string) (*ParsedScene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: open %s: %w", path, err)
	}
	defer f.Close()

	scene, mtlFile, err := parseObj(f)
	if err != nil {
		return nil, fmt.Errorf("sceneio: parse %s: %w", path, err)
	}

	if mtlFile != "" {
		mtlPath := filepath.Join(filepath.Dir(path), mtlFile)
		materials, err := LoadMaterials(mtlPath)
		if err != nil {
			return nil, fmt.Errorf("sceneio: load materials for %s: %w", path, err)
		}
		scene.Materials = materials
	} else {
		scene.Materials = map[string]MaterialData{}
	}

	return scene, nil
}

func parseObj(r io.Reader) (*ParsedScene, string, error) {
	scene := &ParsedScene{}
	var mtlFile string
	var currentMaterial string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		directive, args := fields[0], fields[1:]
		var err error
		switch directive {
		case "mtllib":
			if len(args) < 1 {
				return nil, "", fmt.Errorf("line %d: mtllib requires a filename", lineNo)
			}
			mtlFile = args[0]
		case "v":
			var v prim.Vec3
			if v, err = parseVec3(args); err == nil {
				scene.Vertices = append(scene.Vertices, v)
			}
		case "vn":
			var v prim.Vec3
			if v, err = parseVec3(args); err == nil {
				scene.Normals = append(scene.Normals, v)
			}
		case "usemtl":
			if len(args) < 1 {
				return nil, "", fmt.Errorf("line %d: usemtl requires a material name", lineNo)
			}
			currentMaterial = args[0]
		case "f":
			var face Face
			if face, err = parseFace(args, currentMaterial, len(scene.Vertices), len(scene.Normals)); err == nil {
				scene.Faces = append(scene.Faces, face)
			}
		case "S":
			var sphere SphereData
			if sphere, err = parseSphere(args, currentMaterial); err == nil {
				scene.Spheres = append(scene.Spheres, sphere)
			}
		case "P":
			var light LightData
			if light, err = parseLight(args); err == nil {
				scene.Lights = append(scene.Lights, light)
			}
		default:
			// Unknown directives are ignored.
		}
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	return scene, mtlFile, nil
}

func parseVec3(args []string) (prim.Vec3, error) {
	if len(args) < 3 {
		return prim.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return prim.Vec3{}, err
	}
	return prim.Vec3{X: x, Y: y, Z: z}, nil
}

func parseSphere(args []string, material string) (SphereData, error) {
	if len(args) < 4 {
		return SphereData{}, fmt.Errorf("S requires cx cy cz r, got %d args", len(args))
	}
	center, err := parseVec3(args[:3])
	if err != nil {
		return SphereData{}, err
	}
	radius, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return SphereData{}, err
	}
	return SphereData{MaterialName: material, Center: center, Radius: radius}, nil
}

func parseLight(args []string) (LightData, error) {
	if len(args) < 6 {
		return LightData{}, fmt.Errorf("P requires px py pz ir ig ib, got %d args", len(args))
	}
	pos, err := parseVec3(args[:3])
	if err != nil {
		return LightData{}, err
	}
	intensity, err := parseVec3(args[3:6])
	if err != nil {
		return LightData{}, err
	}
	return LightData{Position: pos, Intensity: intensity}, nil
}

// parseFace parses a face's corner list, resolving 1-based (and negative,
// count-from-end) indices to 0-based indices against the vertex/normal
// counts seen so far.
func parseFace(args []string, material string, numVertices, numNormals int) (Face, error) {
	if len(args) < 3 {
		return Face{}, fmt.Errorf("f requires >= 3 corners, got %d", len(args))
	}
	face := Face{MaterialName: material}
	for _, corner := range args {
		parts := strings.Split(corner, "/")
		vIdx, err := strconv.Atoi(parts[0])
		if err != nil {
			return Face{}, fmt.Errorf("bad vertex index %q: %w", parts[0], err)
		}

		fc := FaceCorner{VertexIndex: resolveIndex(vIdx, numVertices)}
		if len(parts) >= 3 && parts[2] != "" {
			nIdx, err := strconv.Atoi(parts[2])
			if err != nil {
				return Face{}, fmt.Errorf("bad normal index %q: %w", parts[2], err)
			}
			fc.NormalIndex = resolveIndex(nIdx, numNormals)
			fc.HasNormal = true
		}
		face.Corners = append(face.Corners, fc)
	}
	return face, nil
}

// resolveIndex converts a 1-based obj index (or a negative,
// count-from-end index) to a 0-based index.
func resolveIndex(idx, size int) int {
	if idx < 0 {
		return size + idx
	}
	return idx - 1
}
