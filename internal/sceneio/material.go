package sceneio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucidtrace/raytracer/internal/prim"
)

// MaterialData is the raw material-library record for one "newmtl" block.
type MaterialData struct {
	Name string

	Ambient  prim.Vec3
	Diffuse  prim.Vec3
	Specular prim.Vec3
	Emission prim.Vec3

	SpecularExponent float64
	RefractionIndex  float64
	Albedo           prim.Vec3
}

// newMaterialData returns a record with the keyword defaults applied:
// refraction index 1 (no bending) and albedo (1,0,0) (fully direct-lit).
func newMaterialData(name string) MaterialData {
	return MaterialData{
		Name:            name,
		RefractionIndex: 1.0,
		Albedo:          prim.Vec3{X: 1, Y: 0, Z: 0},
	}
}

// LoadMaterials parses a material library file into a table keyed by
// material name.
func LoadMaterials(path string) (map[string]MaterialData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: open %s: %w", path, err)
	}
	defer f.Close()

	materials := map[string]MaterialData{}
	var current *MaterialData

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		directive, args := fields[0], fields[1:]

		if directive == "newmtl" {
			if len(args) < 1 {
				return nil, fmt.Errorf("line %d: newmtl requires a name", lineNo)
			}
			m := newMaterialData(args[0])
			materials[args[0]] = m
			current = &m
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: %s directive before newmtl", lineNo, directive)
		}

		var err error
		switch directive {
		case "Ka":
			current.Ambient, err = parseVec3(args)
		case "Kd":
			current.Diffuse, err = parseVec3(args)
		case "Ks":
			current.Specular, err = parseVec3(args)
		case "Ke":
			current.Emission, err = parseVec3(args)
		case "Ns":
			current.SpecularExponent, err = parseFloat(args)
		case "Ni":
			current.RefractionIndex, err = parseFloat(args)
		case "al":
			current.Albedo, err = parseVec3(args)
		default:
			// Unknown keywords are ignored.
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		materials[current.Name] = *current
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

func parseFloat(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("expected 1 value, got 0")
	}
	return strconv.ParseFloat(args[0], 64)
}
