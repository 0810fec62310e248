package rtree

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/enclose3d/enclose"
	"github.com/enclose3d/enclose/geom"
)

func TestBuildBounds(t *testing.T) {
	m := geom.Box(mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{1, 3, 5})

	index, err := Build(m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := geom.AABB{Min: mgl64.Vec3{-1, 0, 2}, Max: mgl64.Vec3{1, 3, 5}}
	if got := index.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

// TestTraverseVisitsAllCandidates mirrors the bvh traversal contract: no
// triangle the ray touches may be skipped.
func TestTraverseVisitsAllCandidates(t *testing.T) {
	m := geom.Box(mgl64.Vec3{-2, -1, 0}, mgl64.Vec3{2, 1, 3})

	index, err := Build(m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rays := []geom.Ray{
		{Origin: mgl64.Vec3{0, 0, -1}, Dir: mgl64.Vec3{0, 0, 1}},
		{Origin: mgl64.Vec3{0, 0, 1.5}, Dir: mgl64.Vec3{1, 0, 0}},
		{Origin: mgl64.Vec3{-3, -2, -1}, Dir: mgl64.Vec3{1, 1, 1}},
		{Origin: mgl64.Vec3{5, 5, 5}, Dir: mgl64.Vec3{1, 0, 0}}, // misses everything
	}

	for _, r := range rays {
		visited := map[geom.Triangle]bool{}
		index.Traverse(r, func(tri geom.Triangle) bool {
			visited[tri] = true
			return true
		})

		for i, tri := range m.Triangles {
			if r.IntersectsAABB(tri.Bounds()) && !visited[tri] {
				t.Errorf("ray %+v: candidate triangle %d was pruned", r, i)
			}
		}
	}
}

func TestClassifyAgreesWithBVHBackend(t *testing.T) {
	index, err := Build(geom.UnitCube())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  enclose.Classification
	}{
		{
			name:  "center",
			point: mgl64.Vec3{0.5, 0.5, 0.5},
			want:  enclose.Inside,
		},
		{
			name:  "outside the bounding box",
			point: mgl64.Vec3{10, 10, 10},
			want:  enclose.Outside,
		},
		{
			name:  "on the bottom face",
			point: mgl64.Vec3{0.25, 0.75, 0.0},
			want:  enclose.OnBoundary,
		},
		{
			name:  "on a cube vertex",
			point: mgl64.Vec3{0, 0, 0},
			want:  enclose.OnBoundary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enclose.Classify(tt.point, index); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
