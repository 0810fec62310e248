// Package solid bridges SDF-modeled solids (github.com/deadsy/sdfx) and the
// containment query: it tessellates an SDF into a closed triangle mesh
// suitable for indexing, and evaluates the SDF sign as a ground-truth
// classification oracle for the same solid.
//
// Marching cubes output is closed and consistently oriented by construction,
// so meshes produced here satisfy the containment query's precondition.
package solid

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/enclose3d/enclose"
	"github.com/enclose3d/enclose/geom"
)

// DefaultCells is the default marching cubes resolution.
const DefaultCells = 100

// Mesh tessellates an SDF solid into a triangle mesh using uniform marching
// cubes with the given resolution. Zero or negative cells selects
// DefaultCells.
func Mesh(s sdf.SDF3, cells int) geom.Mesh {
	if cells <= 0 {
		cells = DefaultCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	m := geom.Mesh{Triangles: make([]geom.Triangle, 0, len(triangles))}
	for _, tri := range triangles {
		m.Add(geom.Triangle{
			A: fromV3(tri[0]),
			B: fromV3(tri[1]),
			C: fromV3(tri[2]),
		})
	}
	return m
}

// Bounds returns the SDF's bounding box.
func Bounds(s sdf.SDF3) geom.AABB {
	bb := s.BoundingBox()
	return geom.AABB{Min: fromV3(bb.Min), Max: fromV3(bb.Max)}
}

// Classify evaluates the signed distance of point to the solid: negative is
// inside, positive outside, and a magnitude within tol counts as on the
// surface. This is the ground-truth labeling the eval pipeline compares the
// mesh-based query against.
func Classify(s sdf.SDF3, point mgl64.Vec3, tol float64) enclose.Classification {
	d := s.Evaluate(toV3(point))
	switch {
	case d < -tol:
		return enclose.Inside
	case d > tol:
		return enclose.Outside
	default:
		return enclose.OnBoundary
	}
}

func fromV3(v v3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func toV3(v mgl64.Vec3) v3.Vec {
	return v3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}
}
