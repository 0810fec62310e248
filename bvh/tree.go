// Package bvh provides a bounding-volume hierarchy over mesh triangles,
// usable as the spatial index behind the containment query.
//
// The tree is built once and is immutable afterwards, so any number of
// traversals may run concurrently against the same tree.
package bvh

import (
	"sort"

	"github.com/enclose3d/enclose/geom"
)

// maxTrianglesPerLeaf is the threshold for splitting nodes.
const maxTrianglesPerLeaf = 4

// node is one BVH node: either an internal node with two children or a leaf
// holding a small run of triangles.
type node struct {
	bounds    geom.AABB
	left      *node
	right     *node
	triangles []geom.Triangle // leaf nodes only
}

// Tree is an immutable bounding-volume hierarchy over triangles.
type Tree struct {
	root   *node
	bounds geom.AABB
}

// Build constructs a BVH from the triangles of a mesh. The input slice is
// copied; the mesh can be discarded or reused afterwards.
func Build(m geom.Mesh) *Tree {
	if len(m.Triangles) == 0 {
		return &Tree{bounds: geom.EmptyAABB()}
	}
	triangles := make([]geom.Triangle, len(m.Triangles))
	copy(triangles, m.Triangles)

	root := buildNode(triangles)
	return &Tree{root: root, bounds: root.bounds}
}

func buildNode(triangles []geom.Triangle) *node {
	n := &node{bounds: trianglesBounds(triangles)}

	if len(triangles) <= maxTrianglesPerLeaf {
		n.triangles = triangles
		return n
	}

	// Split at the median centroid along the widest axis.
	axis := n.bounds.LongestAxis()
	sort.Slice(triangles, func(i, j int) bool {
		return triangles[i].Centroid()[axis] < triangles[j].Centroid()[axis]
	})

	mid := len(triangles) / 2
	n.left = buildNode(triangles[:mid])
	n.right = buildNode(triangles[mid:])
	return n
}

func trianglesBounds(triangles []geom.Triangle) geom.AABB {
	bounds := geom.EmptyAABB()
	for _, t := range triangles {
		bounds = bounds.Union(t.Bounds())
	}
	return bounds
}

// Len returns the number of indexed triangles.
func (t *Tree) Len() int {
	return t.root.count()
}

func (n *node) count() int {
	if n == nil {
		return 0
	}
	if n.triangles != nil {
		return len(n.triangles)
	}
	return n.left.count() + n.right.count()
}

// Bounds returns the bounding box of all indexed triangles.
func (t *Tree) Bounds() geom.AABB {
	return t.bounds
}

// Traverse calls visit for every triangle whose node bounding box the ray
// hits. Returning false from visit stops the traversal.
func (t *Tree) Traverse(r geom.Ray, visit func(geom.Triangle) bool) {
	t.root.traverse(r, visit)
}

func (n *node) traverse(r geom.Ray, visit func(geom.Triangle) bool) bool {
	if n == nil || !r.IntersectsAABB(n.bounds) {
		return true
	}
	if n.triangles != nil {
		for _, tri := range n.triangles {
			if !visit(tri) {
				return false
			}
		}
		return true
	}
	if !n.left.traverse(r, visit) {
		return false
	}
	return n.right.traverse(r, visit)
}
