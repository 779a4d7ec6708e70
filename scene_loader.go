package raytracer

import (
	"fmt"

	"github.com/lucidtrace/raytracer/internal/prim"
	"github.com/lucidtrace/raytracer/internal/sceneio"
)

// LoadScene reads the wavefront-style scene file at path and its
// companion material library, fan-triangulates every polygon face, and
// resolves every material reference against the library, failing with a
// descriptive error the first time a name is not found.
func LoadScene(path string) (*Scene, error) {
	parsed, err := sceneio.LoadScene(path)
	if err != nil {
		return nil, err
	}

	scene := NewScene()
	for name, data := range parsed.Materials {
		m := NewMaterial(name)
		m.AmbientColor = data.Ambient
		m.DiffuseColor = data.Diffuse
		m.SpecularColor = data.Specular
		m.Emission = data.Emission
		m.SpecularExponent = data.SpecularExponent
		m.RefractionIndex = data.RefractionIndex
		m.Albedo = Albedo{
			Direct:     data.Albedo.X,
			Reflection: data.Albedo.Y,
			Refraction: data.Albedo.Z,
		}
		scene.Materials[name] = &m
	}

	lookupMaterial := func(name string) (*Material, error) {
		mat, ok := scene.Materials[name]
		if !ok {
			return nil, fmt.Errorf("raytracer: scene references undefined material %q", name)
		}
		return mat, nil
	}

	for _, face := range parsed.Faces {
		mat, err := lookupMaterial(face.MaterialName)
		if err != nil {
			return nil, err
		}
		triangles, err := fanTriangulate(face, parsed.Vertices, parsed.Normals)
		if err != nil {
			return nil, err
		}
		for _, tri := range triangles {
			tri.Material = mat
			scene.Triangles = append(scene.Triangles, tri)
		}
	}

	for _, sphereData := range parsed.Spheres {
		mat, err := lookupMaterial(sphereData.MaterialName)
		if err != nil {
			return nil, err
		}
		scene.Spheres = append(scene.Spheres, SphereObject{
			Sphere:   Sphere{Center: sphereData.Center, Radius: sphereData.Radius},
			Material: mat,
		})
	}

	for _, lightData := range parsed.Lights {
		scene.Lights = append(scene.Lights, Light{
			Position:  lightData.Position,
			Intensity: lightData.Intensity,
		})
	}

	return scene, nil
}

// fanTriangulate splits a polygon face with n >= 3 corners into n-2
// triangles, fanning out from its first corner, resolving each corner's
// vertex and (if present) normal index against the scene's tables.
func fanTriangulate(face sceneio.Face, vertices, normals []prim.Vec3) ([]MeshTriangleObject, error) {
	corners := face.Corners
	if len(corners) < 3 {
		return nil, fmt.Errorf("raytracer: face has %d corners, need at least 3", len(corners))
	}

	position := func(c sceneio.FaceCorner) (prim.Vec3, error) {
		if c.VertexIndex < 0 || c.VertexIndex >= len(vertices) {
			return prim.Vec3{}, fmt.Errorf("raytracer: face vertex index %d out of range", c.VertexIndex)
		}
		return vertices[c.VertexIndex], nil
	}
	normal := func(c sceneio.FaceCorner) (*prim.Vec3, error) {
		if !c.HasNormal {
			return nil, nil
		}
		if c.NormalIndex < 0 || c.NormalIndex >= len(normals) {
			return nil, fmt.Errorf("raytracer: face normal index %d out of range", c.NormalIndex)
		}
		n := normals[c.NormalIndex]
		return &n, nil
	}

	var triangles []MeshTriangleObject
	for i := 1; i+1 < len(corners); i++ {
		a, b, c := corners[0], corners[i], corners[i+1]

		pa, err := position(a)
		if err != nil {
			return nil, err
		}
		pb, err := position(b)
		if err != nil {
			return nil, err
		}
		pc, err := position(c)
		if err != nil {
			return nil, err
		}

		na, err := normal(a)
		if err != nil {
			return nil, err
		}
		nb, err := normal(b)
		if err != nil {
			return nil, err
		}
		nc, err := normal(c)
		if err != nil {
			return nil, err
		}

		triangles = append(triangles, MeshTriangleObject{
			Polygon:       Triangle{A: pa, B: pb, C: pc},
			VertexNormals: [3]*prim.Vec3{na, nb, nc},
		})
	}
	return triangles, nil
}
