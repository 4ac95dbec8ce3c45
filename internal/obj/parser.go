package obj

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mesh3d-renderer/internal/math3d"
)

// Face is one triangle: vertex indices into Mesh.Verts and optional UV
// indices into Mesh.UVs (-1 when the face carries no texture coordinates).
type Face struct {
	V  [3]int
	UV [3]int
}

// Mesh holds a triangulated Wavefront OBJ model.
type Mesh struct {
	Verts   []math3d.Vec3
	UVs     []math3d.Vec2
	Normals []math3d.Vec3
	Faces   []Face
}

// Parse reads a Wavefront OBJ file. Supported statements: v, vt, vn and f
// with "v", "v/vt", "v//vn" and "v/vt/vn" vertex forms. Polygons are
// fan-triangulated. Negative indices resolve relative to the elements seen
// so far. Everything else (groups, materials, smoothing) is skipped.
func Parse(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("obj: read %s: %w", path, err)
	}
	defer f.Close()

	var mesh Mesh
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return Mesh{}, fmt.Errorf("obj: %s:%d: vertex: %w", path, lineNo, err)
			}
			mesh.Verts = append(mesh.Verts, v)
		case "vt":
			if len(fields) < 3 {
				return Mesh{}, fmt.Errorf("obj: %s:%d: texcoord needs 2 components", path, lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return Mesh{}, fmt.Errorf("obj: %s:%d: bad texcoord %q", path, lineNo, fields[1:])
			}
			mesh.UVs = append(mesh.UVs, math3d.Vec2{X: u, Y: v})
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return Mesh{}, fmt.Errorf("obj: %s:%d: normal: %w", path, lineNo, err)
			}
			mesh.Normals = append(mesh.Normals, n)
		case "f":
			if err := mesh.addFace(fields[1:]); err != nil {
				return Mesh{}, fmt.Errorf("obj: %s:%d: %w", path, lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Mesh{}, fmt.Errorf("obj: read %s: %w", path, err)
	}
	if len(mesh.Verts) == 0 {
		return Mesh{}, fmt.Errorf("obj: %s: no vertices", path)
	}
	return mesh, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("need 3 components")
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		out[i] = v
	}
	return math3d.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// addFace fan-triangulates a polygon face statement.
func (m *Mesh) addFace(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face needs at least 3 corners")
	}
	type corner struct{ v, uv int }
	parsed := make([]corner, len(corners))
	for i, c := range corners {
		v, uv, err := m.parseCorner(c)
		if err != nil {
			return err
		}
		parsed[i] = corner{v, uv}
	}
	for i := 1; i < len(parsed)-1; i++ {
		a, b, c := parsed[0], parsed[i], parsed[i+1]
		// drop degenerate triangles (repeated vertices)
		if a.v == b.v || b.v == c.v || a.v == c.v {
			continue
		}
		m.Faces = append(m.Faces, Face{
			V:  [3]int{a.v, b.v, c.v},
			UV: [3]int{a.uv, b.uv, c.uv},
		})
	}
	return nil
}

// parseCorner resolves one "v", "v/vt", "v//vn" or "v/vt/vn" reference to
// zero-based vertex and UV indices. Normal references are ignored entirely,
// invalid ones included; faces are flat-shaded from geometry.
func (m *Mesh) parseCorner(s string) (v, uv int, err error) {
	parts := strings.Split(s, "/")
	v, err = resolveIndex(parts[0], len(m.Verts))
	if err != nil {
		return 0, 0, fmt.Errorf("corner %q: %w", s, err)
	}
	uv = -1
	if len(parts) > 1 && parts[1] != "" {
		uv, err = resolveIndex(parts[1], len(m.UVs))
		if err != nil {
			return 0, 0, fmt.Errorf("corner %q: %w", s, err)
		}
	}
	return v, uv, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to a
// checked zero-based index.
func resolveIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx = n + idx
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, n)
	}
	return idx, nil
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Verts) == 0 {
		return math3d.Vec3{}, math3d.Vec3{}
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}
