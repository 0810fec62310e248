// Package rtree adapts an R-tree (github.com/dhconnelly/rtreego) to the
// spatial index capability the containment query consumes. It exists mainly
// to show the query is generic over the index; the bvh package is the
// default backend.
package rtree

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/enclose3d/enclose/geom"
)

// minLength pads degenerate rectangle extents; rtreego rejects zero-length
// sides, and axis-aligned triangles produce flat bounding boxes.
const minLength = 1e-9

// entry is one indexed triangle with its precomputed R-tree rectangle.
type entry struct {
	tri   geom.Triangle
	where rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.where
}

// Index is an immutable R-tree over mesh triangles.
type Index struct {
	tree   *rtreego.Rtree
	bounds geom.AABB
}

// Build indexes the triangles of a mesh.
func Build(m geom.Mesh) (*Index, error) {
	entries := make([]rtreego.Spatial, 0, len(m.Triangles))
	for i, tri := range m.Triangles {
		rect, err := rectFromAABB(tri.Bounds())
		if err != nil {
			return nil, fmt.Errorf("rtree: triangle %d: %w", i, err)
		}
		entries = append(entries, &entry{tri: tri, where: rect})
	}

	return &Index{
		tree:   rtreego.NewTree(3, 2, 8, entries...),
		bounds: m.Bounds(),
	}, nil
}

// Bounds returns the bounding box of all indexed triangles.
func (x *Index) Bounds() geom.AABB {
	return x.bounds
}

// Traverse calls visit for every triangle whose bounding box the ray hits.
// The R-tree has no native ray query, so the ray is clipped to the index
// bounds and its enclosing rectangle is used as the search region; the
// per-triangle slab test then discards the false positives of that region.
func (x *Index) Traverse(r geom.Ray, visit func(geom.Triangle) bool) {
	tmin, tmax, ok := r.ClipToAABB(x.bounds)
	if !ok {
		return
	}

	region := geom.EmptyAABB().Extend(r.At(tmin)).Extend(r.At(tmax))
	rect, err := rectFromAABB(region)
	if err != nil {
		return
	}

	for _, hit := range x.tree.SearchIntersect(rect) {
		e := hit.(*entry)
		if !r.IntersectsAABB(e.tri.Bounds()) {
			continue
		}
		if !visit(e.tri) {
			return
		}
	}
}

func rectFromAABB(box geom.AABB) (rtreego.Rect, error) {
	point := rtreego.Point{box.Min.X(), box.Min.Y(), box.Min.Z()}
	lengths := make([]float64, 3)
	size := box.Size()
	for i := 0; i < 3; i++ {
		lengths[i] = size[i]
		if lengths[i] < minLength {
			lengths[i] = minLength
		}
	}
	return rtreego.NewRect(point, lengths)
}
