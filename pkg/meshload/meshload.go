// Package meshload builds Polyhedron primitives from glTF/GLB files using
// github.com/qmuntal/gltf, feeding the triangle list Polyhedron wraps
// (spec.md §4.5).
package meshload

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/hittable"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Load reads every mesh primitive out of a .gltf/.glb document and returns
// one Polyhedron per primitive, assigning mat to every face (glTF material
// import is out of scope: the importance-sampling-aware Material types in
// pkg/material have no PBR-metallic-roughness equivalent to map onto).
func Load(path string, mat material.Material) ([]*hittable.Polyhedron, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshload: open %s: %w", path, err)
	}

	var meshes []*hittable.Polyhedron
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			faces, err := loadPrimitiveFaces(doc, *prim, mat)
			if err != nil {
				return nil, fmt.Errorf("meshload: mesh %d prim %d: %w", mi, pi, err)
			}
			if len(faces) > 0 {
				meshes = append(meshes, hittable.NewPolyhedron(faces))
			}
		}
	}
	return meshes, nil
}

func loadPrimitiveFaces(doc *gltf.Document, prim gltf.Primitive, mat material.Material) ([]*hittable.Triangle, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}

	vertices := make([]core.Point3, len(positions))
	for i, p := range positions {
		vertices[i] = core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	faces := make([]*hittable.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a, b, c := vertices[ia], vertices[ib], vertices[ic]

		var tri *hittable.Triangle
		var err error
		if len(normals) == len(positions) {
			na := vertexNormal(normals[ia])
			nb := vertexNormal(normals[ib])
			nc := vertexNormal(normals[ic])
			tri, err = hittable.NewTriangleSmooth(a, b, c, na, nb, nc, mat)
		} else {
			tri, err = hittable.NewTriangle(a, b, c, mat)
		}
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i/3, err)
		}
		faces = append(faces, tri)
	}
	return faces, nil
}

func vertexNormal(n [3]float32) core.Vec3 {
	return core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
}
