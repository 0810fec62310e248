package enclose

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/enclose3d/enclose/geom"
)

// TraversalOutcome is the tri-state result of submitting one probe ray to
// the index: a definite parity-based side, the point sitting exactly on the
// surface, or an ambiguous crossing count that demands a retry.
type TraversalOutcome int

const (
	// OutcomeIndeterminate means the probe grazed an edge or vertex, so the
	// crossing parity is ambiguous and the probe must be retried.
	OutcomeIndeterminate TraversalOutcome = iota
	// OutcomeInside means an odd number of proper crossings was counted.
	OutcomeInside
	// OutcomeOutside means an even number of proper crossings was counted.
	OutcomeOutside
	// OutcomeBoundary means the ray origin lies on a triangle of the surface.
	OutcomeBoundary
)

// crossingKind classifies one ray/triangle encounter.
type crossingKind int

const (
	crossingNone crossingKind = iota
	crossingProper
	crossingOrigin     // ray origin lies on the triangle
	crossingDegenerate // ray passes through an edge or vertex
)

// Tolerances for the crossing classification. The surface test is not an
// exact-arithmetic kernel: comparisons this close to zero are treated as
// degenerate and resolved by retrying with another direction.
const (
	parallelEps = 1e-12
	surfaceEps  = 1e-9
)

// crossingVisitor accumulates crossing parity and degeneracy flags for a
// single probe ray. One visitor serves one traversal and is then discarded.
type crossingVisitor struct {
	ray        geom.Ray
	crossings  int
	onSurface  bool
	degenerate bool
}

// visit folds one candidate triangle into the outcome. It returns false to
// stop the traversal once the origin is found on the surface, since that
// resolves the query regardless of any remaining triangles.
func (v *crossingVisitor) visit(t geom.Triangle) bool {
	switch classifyCrossing(v.ray, t) {
	case crossingProper:
		v.crossings++
	case crossingOrigin:
		v.onSurface = true
		return false
	case crossingDegenerate:
		v.degenerate = true
	}
	return true
}

func (v *crossingVisitor) outcome() TraversalOutcome {
	switch {
	case v.onSurface:
		return OutcomeBoundary
	case v.degenerate:
		return OutcomeIndeterminate
	case v.crossings%2 == 1:
		return OutcomeInside
	default:
		return OutcomeOutside
	}
}

// classifyCrossing intersects a probe ray with one triangle (Möller–Trumbore)
// and reports how the encounter affects the crossing count:
//
//   - a transversal hit strictly interior to the triangle and strictly in
//     front of the origin is a proper crossing;
//   - a hit at parameter zero means the origin is on the triangle, whether
//     in its interior or on its border;
//   - a hit within tolerance of the triangle border, or a ray coplanar with
//     a triangle it may touch, has ambiguous crossing multiplicity.
//
// The ray direction is assumed to be unit length, so the ray parameter is a
// distance and the tolerances are absolute.
func classifyCrossing(r geom.Ray, t geom.Triangle) crossingKind {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	pvec := r.Dir.Cross(e2)
	det := e1.Dot(pvec)

	if math.Abs(det) < parallelEps {
		// Ray parallel to the triangle plane. Off-plane it cannot cross;
		// in-plane it may graze, which parity counting cannot resolve.
		n := e1.Cross(e2)
		lenN := n.Len()
		if lenN < parallelEps {
			return crossingNone // degenerate zero-area triangle
		}
		dist := r.Origin.Sub(t.A).Dot(n) / lenN
		if math.Abs(dist) > surfaceEps {
			return crossingNone
		}
		if pointInTriangle(r.Origin, t) {
			return crossingOrigin
		}
		if r.IntersectsAABB(t.Bounds()) {
			return crossingDegenerate
		}
		return crossingNone
	}

	invDet := 1.0 / det
	tvec := r.Origin.Sub(t.A)
	u := tvec.Dot(pvec) * invDet
	if u < -surfaceEps || u > 1+surfaceEps {
		return crossingNone
	}
	qvec := tvec.Cross(e1)
	w := r.Dir.Dot(qvec) * invDet
	if w < -surfaceEps || u+w > 1+surfaceEps {
		return crossingNone
	}

	dist := e2.Dot(qvec) * invDet
	if dist < -surfaceEps {
		return crossingNone // intersection behind the origin
	}

	if math.Abs(dist) <= surfaceEps {
		return crossingOrigin
	}

	// In front of the origin; proper only if clear of the border.
	if u > surfaceEps && w > surfaceEps && u+w < 1-surfaceEps {
		return crossingProper
	}
	return crossingDegenerate
}

// pointInTriangle reports whether a point known to lie in the triangle's
// plane falls within the triangle (border included).
func pointInTriangle(p mgl64.Vec3, t geom.Triangle) bool {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	tp := p.Sub(t.A)

	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	dp1 := tp.Dot(e1)
	dp2 := tp.Dot(e2)

	denom := d11*d22 - d12*d12
	if math.Abs(denom) < parallelEps {
		return false
	}
	u := (d22*dp1 - d12*dp2) / denom
	w := (d11*dp2 - d12*dp1) / denom

	return u >= -surfaceEps && w >= -surfaceEps && u+w <= 1+surfaceEps
}
