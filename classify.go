// Package enclose implements a point-in-solid membership test over an
// indexed triangle surface.
//
// Given a query point and a read-only spatial index over the triangles of a
// closed surface, Classify decides whether the point lies strictly inside,
// strictly outside, or exactly on the surface. The test casts a probe ray
// from the point and counts proper ray/triangle crossings: by the parity
// rule, a ray from an interior point crosses a closed surface an odd number
// of times. Probes that graze an edge or vertex make the crossing count
// ambiguous; those are retried with fresh directions drawn from a
// deterministic unit-sphere sampler until a determinate answer is found.
//
// Precondition: the indexed surface must be closed and consistently oriented
// (every edge shared by exactly two triangles with opposite winding). This
// is not checked at run time; violating it yields a classification that may
// not match geometric ground truth.
//
// References:
//   - Schneider, Eberly: "Geometric Tools for Computer Graphics" (2003),
//     point-in-polyhedron by ray casting
package enclose

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/enclose3d/enclose/geom"
)

// Classification is the result of a containment query.
type Classification int

const (
	// Outside means the point lies strictly outside the surface.
	Outside Classification = iota
	// Inside means the point lies strictly inside the surface.
	Inside
	// OnBoundary means the point lies exactly on the surface.
	OnBoundary
	// Inconclusive is only returned when Options.MaxProbes is set and every
	// allowed probe came back indeterminate. It means "query inconclusive",
	// not "index faulty".
	Inconclusive
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	case Inconclusive:
		return "inconclusive"
	}
	return "unknown"
}

// SpatialIndex is the read-only capability the containment query requires
// from a triangle index. Implementations must tolerate any number of
// concurrent readers; the query never mutates the index.
type SpatialIndex interface {
	// Bounds returns the bounding box of the indexed triangles.
	Bounds() geom.AABB

	// Traverse calls visit for every indexed triangle the ray may hit.
	// Implementations may visit a superset of the actual hits; the visitor
	// performs the exact intersection test. Returning false from visit stops
	// the traversal early.
	Traverse(r geom.Ray, visit func(geom.Triangle) bool)
}

// Options configures a containment query.
type Options struct {
	// Seed for the fallback direction sampler. Zero selects DefaultSeed.
	// Every query call builds a fresh sampler from this constant, so the
	// fallback direction sequence is reproducible across calls and runs.
	Seed int64

	// MaxProbes caps the number of fallback probes. Zero means unbounded:
	// the query retries until a determinate outcome, relying on degenerate
	// directions being measure-zero for generic point sets. With a cap set,
	// exceeding it returns Inconclusive.
	MaxProbes int
}

// Classify reports whether point lies inside, outside or on the surface
// held by index. It never fails; see Options.MaxProbes for the only way a
// non-tri-state value can be produced.
func Classify(point mgl64.Vec3, index SpatialIndex) Classification {
	return ClassifyWithOptions(point, index, Options{})
}

// ClassifyWithOptions is Classify with an explicit sampler seed and probe cap.
func ClassifyWithOptions(point mgl64.Vec3, index SpatialIndex, opts Options) Classification {
	bounds := index.Bounds()

	// Geometry strictly outside the bounding box cannot be inside the
	// enclosed surface. No traversal happens for these points.
	if !bounds.ContainsPoint(point) {
		return Outside
	}

	outcome := probe(geom.Ray{Origin: point, Dir: primaryDirection(point, bounds)}, index)

	if outcome == OutcomeIndeterminate {
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		sampler := NewSphereSampler(seed)

		for i := 0; opts.MaxProbes == 0 || i < opts.MaxProbes; i++ {
			outcome = probe(geom.Ray{Origin: point, Dir: sampler.NextDirection()}, index)
			if outcome != OutcomeIndeterminate {
				break
			}
		}
	}

	switch outcome {
	case OutcomeInside:
		return Inside
	case OutcomeOutside:
		return Outside
	case OutcomeBoundary:
		return OnBoundary
	}
	return Inconclusive
}

// primaryDirection picks the vertical probe direction: down if the point is
// in the lower half of the box along Z, up otherwise. This halves the
// expected number of triangles the traversal visits; it has no effect on
// correctness.
func primaryDirection(point mgl64.Vec3, bounds geom.AABB) mgl64.Vec3 {
	if 2*point.Z() < bounds.Min.Z()+bounds.Max.Z() {
		return mgl64.Vec3{0, 0, -1}
	}
	return mgl64.Vec3{0, 0, 1}
}

// probe submits one ray to the index and folds the visited triangles into a
// traversal outcome.
func probe(r geom.Ray, index SpatialIndex) TraversalOutcome {
	v := crossingVisitor{ray: r}
	index.Traverse(r, v.visit)
	return v.outcome()
}
