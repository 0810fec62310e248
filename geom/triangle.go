package geom

import "github.com/go-gl/mathgl/mgl64"

// Triangle is a single face of a surface mesh.
type Triangle struct {
	A mgl64.Vec3
	B mgl64.Vec3
	C mgl64.Vec3
}

// Bounds returns the bounding box of the triangle
func (t Triangle) Bounds() AABB {
	return EmptyAABB().Extend(t.A).Extend(t.B).Extend(t.C)
}

// Centroid returns the centroid of the triangle.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Normal returns the (non-normalized) face normal for CCW winding.
func (t Triangle) Normal() mgl64.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}
