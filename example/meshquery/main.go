// Command meshquery tessellates an SDF solid into a triangle mesh, indexes
// it, classifies a batch of query points against the mesh, and scores the
// result against the exact SDF sign.
//
// With no arguments it classifies a regular grid spanning the solid's
// bounding box; with a file argument it reads query points from an XYZ
// point cloud instead:
//
//	meshquery [points.xyz]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/enclose3d/enclose"
	"github.com/enclose3d/enclose/bvh"
	"github.com/enclose3d/enclose/eval"
	"github.com/enclose3d/enclose/geom"
	"github.com/enclose3d/enclose/pointset"
	"github.com/enclose3d/enclose/solid"
)

// oracleTol is the half-width of the band around the exact surface within
// which points are excluded from scoring; the tessellated mesh cannot be
// expected to match the SDF sign there.
const oracleTol = 0.05

func main() {
	s, err := buildSolid()
	if err != nil {
		log.Fatalf("building solid: %v", err)
	}

	mesh := solid.Mesh(s, 128)
	index := bvh.Build(mesh)
	fmt.Printf("tessellated solid into %d triangles, bounds %v .. %v\n",
		len(mesh.Triangles), index.Bounds().Min, index.Bounds().Max)

	var points []mgl64.Vec3
	if len(os.Args) > 1 {
		points, err = readPoints(os.Args[1])
		if err != nil {
			log.Fatalf("reading points: %v", err)
		}
		fmt.Printf("read %d query points from %s\n", len(points), os.Args[1])
	} else {
		points = gridPoints(index.Bounds(), 20)
		fmt.Printf("classifying a %d-point grid\n", len(points))
	}

	groundTruth := make([]int, len(points))
	result := make([]int, len(points))
	counts := map[enclose.Classification]int{}

	for i, p := range points {
		c := enclose.Classify(p, index)
		counts[c]++
		result[i] = label(c)
		groundTruth[i] = label(solid.Classify(s, p, oracleTol))
	}

	fmt.Printf("query results: %d inside, %d outside, %d on boundary\n",
		counts[enclose.Inside], counts[enclose.Outside], counts[enclose.OnBoundary])

	e := eval.New("outside", "inside")
	e.Append(groundTruth, result)

	fmt.Printf("accuracy: %.4f\n", e.Accuracy())
	for i, name := range e.Labels() {
		fmt.Printf("%8s: precision %.4f, recall %.4f, F1 %.4f, IoU %.4f\n",
			name, e.Precision(i), e.Recall(i), e.F1Score(i), e.IoU(i))
	}
}

// buildSolid models the demo shape: a unit sphere unioned with a box, so the
// mesh has both curved and flat regions.
func buildSolid() (sdf.SDF3, error) {
	sphere, err := sdf.Sphere3D(1.0)
	if err != nil {
		return nil, err
	}
	box, err := sdf.Box3D(v3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, 0)
	if err != nil {
		return nil, err
	}
	return sdf.Union3D(sphere, box), nil
}

func readPoints(path string) ([]mgl64.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := pointset.ReadXYZ(f)
	if err != nil {
		return nil, err
	}
	return set.Positions(), nil
}

// gridPoints samples an n³ regular grid over a padded copy of the bounds, so
// the batch contains outside points too.
func gridPoints(bounds geom.AABB, n int) []mgl64.Vec3 {
	pad := bounds.Size().Mul(0.2)
	min := bounds.Min.Sub(pad)
	size := bounds.Size().Add(pad.Mul(2))

	points := make([]mgl64.Vec3, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				points = append(points, mgl64.Vec3{
					min.X() + size.X()*float64(i)/float64(n-1),
					min.Y() + size.Y()*float64(j)/float64(n-1),
					min.Z() + size.Z()*float64(k)/float64(n-1),
				})
			}
		}
	}
	return points
}

// label maps a classification to an eval label index; boundary results and
// points inside the oracle tolerance band are excluded from scoring.
func label(c enclose.Classification) int {
	switch c {
	case enclose.Outside:
		return 0
	case enclose.Inside:
		return 1
	}
	return eval.Ignored
}
