package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line starting at Origin and extending along Dir.
// Dir does not need to be normalized for the intersection tests here.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// IntersectsAABB checks if the ray hits the AABB (slab method).
func (r Ray) IntersectsAABB(box AABB) bool {
	const eps = 1e-12
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < eps {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return false
			}
			continue
		}

		t1 := (box.Min[i] - r.Origin[i]) / r.Dir[i]
		t2 := (box.Max[i] - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}

	return tmax >= 0
}

// ClipToAABB returns the parameter interval [tmin, tmax] where the ray
// overlaps the box, clamped to the forward half-line. ok is false when the
// ray misses the box entirely.
func (r Ray) ClipToAABB(box AABB) (tmin, tmax float64, ok bool) {
	const eps = 1e-12
	tmin = 0
	tmax = math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < eps {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, 0, false
			}
			continue
		}

		t1 := (box.Min[i] - r.Origin[i]) / r.Dir[i]
		t2 := (box.Max[i] - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, 0, false
		}
	}

	return tmin, tmax, true
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
