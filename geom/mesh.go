package geom

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a triangle soup describing a surface. The containment query
// requires the surface to be closed and consistently oriented; Mesh itself
// does not enforce that.
type Mesh struct {
	Triangles []Triangle
}

// Add appends a triangle to the mesh.
func (m *Mesh) Add(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// Bounds returns the bounding box of all triangles.
func (m Mesh) Bounds() AABB {
	box := EmptyAABB()
	for _, t := range m.Triangles {
		box = box.Union(t.Bounds())
	}
	return box
}

// Box builds a closed axis-aligned box mesh with outward-facing CCW winding.
// Useful as a fixture with known inside/outside ground truth.
func Box(min, max mgl64.Vec3) Mesh {
	x0, y0, z0 := min.X(), min.Y(), min.Z()
	x1, y1, z1 := max.X(), max.Y(), max.Z()

	p000 := mgl64.Vec3{x0, y0, z0}
	p100 := mgl64.Vec3{x1, y0, z0}
	p010 := mgl64.Vec3{x0, y1, z0}
	p110 := mgl64.Vec3{x1, y1, z0}
	p001 := mgl64.Vec3{x0, y0, z1}
	p101 := mgl64.Vec3{x1, y0, z1}
	p011 := mgl64.Vec3{x0, y1, z1}
	p111 := mgl64.Vec3{x1, y1, z1}

	// Quads listed CCW as seen from outside the box.
	quads := [6][4]mgl64.Vec3{
		{p000, p010, p110, p100}, // -Z
		{p001, p101, p111, p011}, // +Z
		{p000, p001, p011, p010}, // -X
		{p100, p110, p111, p101}, // +X
		{p000, p100, p101, p001}, // -Y
		{p010, p011, p111, p110}, // +Y
	}

	var m Mesh
	for _, q := range quads {
		m.Add(Triangle{A: q[0], B: q[1], C: q[2]})
		m.Add(Triangle{A: q[0], B: q[2], C: q[3]})
	}
	return m
}

// UnitCube returns the closed [0,1]³ box mesh.
func UnitCube() Mesh {
	return Box(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
}
