package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{
		A: mgl64.Vec3{0, 0, 0},
		B: mgl64.Vec3{2, -1, 0},
		C: mgl64.Vec3{1, 3, -2},
	}

	want := AABB{Min: mgl64.Vec3{0, -1, -2}, Max: mgl64.Vec3{2, 3, 0}}
	if got := tri.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := Triangle{
		A: mgl64.Vec3{0, 0, 0},
		B: mgl64.Vec3{3, 0, 0},
		C: mgl64.Vec3{0, 3, 0},
	}

	want := mgl64.Vec3{1, 1, 0}
	if got := tri.Centroid(); got != want {
		t.Errorf("Centroid = %v, want %v", got, want)
	}
}

func TestBoxMeshBounds(t *testing.T) {
	min := mgl64.Vec3{-1, 0, 2}
	max := mgl64.Vec3{1, 3, 5}
	m := Box(min, max)

	if len(m.Triangles) != 12 {
		t.Fatalf("Box mesh has %d triangles, want 12", len(m.Triangles))
	}
	want := AABB{Min: min, Max: max}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

// TestBoxMeshClosed checks the precondition the containment query relies on:
// in a closed, consistently oriented mesh every directed edge appears
// exactly once, paired with its reverse in the neighboring triangle.
func TestBoxMeshClosed(t *testing.T) {
	m := UnitCube()

	type edge struct{ from, to mgl64.Vec3 }
	edges := map[edge]int{}

	for _, tri := range m.Triangles {
		verts := [3]mgl64.Vec3{tri.A, tri.B, tri.C}
		for i := 0; i < 3; i++ {
			edges[edge{verts[i], verts[(i+1)%3]}]++
		}
	}

	for e, n := range edges {
		if n != 1 {
			t.Errorf("directed edge %v->%v appears %d times, want 1", e.from, e.to, n)
		}
		if rev := edges[edge{e.to, e.from}]; rev != 1 {
			t.Errorf("reverse of edge %v->%v appears %d times, want 1", e.from, e.to, rev)
		}
	}
}

// TestBoxMeshOutwardWinding checks each face normal points away from the
// box center.
func TestBoxMeshOutwardWinding(t *testing.T) {
	m := UnitCube()
	center := mgl64.Vec3{0.5, 0.5, 0.5}

	for i, tri := range m.Triangles {
		outward := tri.Centroid().Sub(center)
		if tri.Normal().Dot(outward) <= 0 {
			t.Errorf("triangle %d: normal %v does not face outward", i, tri.Normal())
		}
	}
}
