package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 3}}

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  bool
	}{
		{
			name:  "interior point",
			point: mgl64.Vec3{0.5, 1, 1.5},
			want:  true,
		},
		{
			name:  "point on a face",
			point: mgl64.Vec3{0, 1, 1.5},
			want:  true,
		},
		{
			name:  "point on a corner",
			point: mgl64.Vec3{1, 2, 3},
			want:  true,
		},
		{
			name:  "outside on X",
			point: mgl64.Vec3{-0.1, 1, 1.5},
			want:  false,
		},
		{
			name:  "outside on Y",
			point: mgl64.Vec3{0.5, 2.1, 1.5},
			want:  false,
		},
		{
			name:  "outside on Z",
			point: mgl64.Vec3{0.5, 1, -1},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestAABBExtend(t *testing.T) {
	box := EmptyAABB().
		Extend(mgl64.Vec3{1, -2, 3}).
		Extend(mgl64.Vec3{-1, 2, 0})

	want := AABB{Min: mgl64.Vec3{-1, -2, 0}, Max: mgl64.Vec3{1, 2, 3}}
	if box != want {
		t.Errorf("Extend chain = %+v, want %+v", box, want)
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB{Min: mgl64.Vec3{-1, 0.5, 0}, Max: mgl64.Vec3{0.5, 3, 1}}

	want := AABB{Min: mgl64.Vec3{-1, 0, 0}, Max: mgl64.Vec3{1, 3, 1}}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestAABBCenter(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{0, -2, 1}, Max: mgl64.Vec3{2, 2, 3}}

	want := mgl64.Vec3{1, 0, 2}
	if got := box.Center(); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		want int
	}{
		{
			name: "X longest",
			box:  AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{5, 1, 1}},
			want: 0,
		},
		{
			name: "Y longest",
			box:  AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 5, 1}},
			want: 1,
		},
		{
			name: "Z longest",
			box:  AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 5}},
			want: 2,
		},
		{
			name: "ties fall back to X",
			box:  AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.want {
				t.Errorf("LongestAxis = %d, want %d", got, tt.want)
			}
		})
	}
}
