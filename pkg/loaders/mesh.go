package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/primitive"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// LoadMesh reads a Wavefront-style OBJ mesh: "v x y z" vertex positions,
// optional "vn x y z" vertex normals, and "f a b c" triangle faces (1-based
// indices). When vn lines are present, each face vertex takes the normal
// named by its v//vn or v/vt/vn reference (the first vn when it names
// none), and a vertex shared by several faces averages them.
// Faces with more than three indices are fan-triangulated around the first
// vertex. Grounded on the teacher's pkg/loaders/ply.go scanner-and-fields
// line parser, adapted from PLY's fixed binary record layout to OBJ's
// free-form whitespace-separated text lines.
func LoadMesh(path string, mat material.Handle) (*primitive.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open mesh file %s: %w", path, err)
	}
	defer file.Close()

	var positions []vecmath.Vec3
	var normals []vecmath.Vec3
	var indices [][3]uint32
	var normalIndices [][3]uint32
	hasNormals := false

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			p, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh file %s line %d: %w", path, lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh file %s line %d: %w", path, lineNo, err)
			}
			normals = append(normals, n)
			hasNormals = true
		case "f":
			faceIdx, faceNormalIdx, err := parseFace(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh file %s line %d: %w", path, lineNo, err)
			}
			for i := 1; i+1 < len(faceIdx); i++ {
				indices = append(indices, [3]uint32{faceIdx[0], faceIdx[i], faceIdx[i+1]})
				normalIndices = append(normalIndices, [3]uint32{faceNormalIdx[0], faceNormalIdx[i], faceNormalIdx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading mesh file %s: %w", path, err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("loaders: mesh file %s has no vertices", path)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("loaders: mesh file %s has no faces", path)
	}

	vertices := make([]primitive.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = primitive.Vertex{Position: p}
	}

	if hasNormals {
		for fi, tri := range normalIndices {
			for k := 0; k < 3; k++ {
				vertexIdx := indices[fi][k]
				vertices[vertexIdx].Normal = vertices[vertexIdx].Normal.Add(normals[tri[k]])
			}
		}
	}
	for i := range vertices {
		if vertices[i].Normal.Length() > 1e-12 {
			vertices[i].Normal = vertices[i].Normal.Normalize()
		}
	}
	if !hasNormals {
		computeSmoothNormals(vertices, indices)
	}

	return primitive.NewMesh(vertices, indices, mat), nil
}

// computeSmoothNormals fills in vertex normals by accumulating face normals
// at each vertex, for mesh files that omit "vn" lines.
func computeSmoothNormals(vertices []primitive.Vertex, indices [][3]uint32) {
	for _, tri := range indices {
		v0 := vertices[tri[0]].Position
		v1 := vertices[tri[1]].Position
		v2 := vertices[tri[2]].Position
		faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0))
		for _, idx := range tri {
			vertices[idx].Normal = vertices[idx].Normal.Add(faceNormal)
		}
	}
	for i := range vertices {
		if vertices[i].Normal.Length() > 1e-12 {
			vertices[i].Normal = vertices[i].Normal.Normalize()
		}
	}
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Vec3{}, fmt.Errorf("invalid component %q: %w", fields[i], err)
		}
		v[i] = f
	}
	return vecmath.NewVec3(v[0], v[1], v[2]), nil
}

// parseFace parses OBJ face vertex references (v, v/vt, v//vn, v/vt/vn),
// returning 0-based position indices and 0-based normal indices (the
// latter zero-valued and meaningless when no vn reference is present).
func parseFace(fields []string) ([]uint32, []uint32, error) {
	if len(fields) < 3 {
		return nil, nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	posIdx := make([]uint32, len(fields))
	normIdx := make([]uint32, len(fields))
	for i, ref := range fields {
		parts := strings.Split(ref, "/")
		p, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid face vertex index %q: %w", ref, err)
		}
		posIdx[i] = uint32(p - 1)
		if len(parts) == 3 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, nil, fmt.Errorf("invalid face normal index %q: %w", ref, err)
			}
			normIdx[i] = uint32(n - 1)
		}
	}
	return posIdx, normIdx, nil
}
