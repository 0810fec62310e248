// Package pointset reads query point clouds from whitespace-separated text
// (XYZ format), with optional per-point RGB columns.
package pointset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is one entry of a point cloud.
type Point struct {
	Position mgl64.Vec3
	Color    [3]uint8
}

// Set is an in-memory point cloud. HasColor reports whether any point
// carried a non-zero color; files whose color columns are all zero are
// treated as colorless, matching the usual point-cloud ingestion behavior
// of dropping property maps that never got a value.
type Set struct {
	Points   []Point
	HasColor bool
}

// Positions returns the bare point positions.
func (s *Set) Positions() []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, len(s.Points))
	for i, p := range s.Points {
		positions[i] = p.Position
	}
	return positions
}

// ReadXYZ parses a text point cloud with lines of the form
//
//	x y z [r g b]
//
// Blank lines and lines starting with '#' are skipped. Colors are 0-255.
func ReadXYZ(r io.Reader) (*Set, error) {
	set := &Set{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 6 {
			return nil, fmt.Errorf("pointset: line %d: expected 3 or 6 columns, got %d", lineNo, len(fields))
		}

		var p Point
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("pointset: line %d: %w", lineNo, err)
			}
			p.Position[i] = v
		}

		if len(fields) == 6 {
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseUint(fields[3+i], 10, 8)
				if err != nil {
					return nil, fmt.Errorf("pointset: line %d: %w", lineNo, err)
				}
				p.Color[i] = uint8(c)
			}
			if p.Color != [3]uint8{} {
				set.HasColor = true
			}
		}

		set.Points = append(set.Points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pointset: %w", err)
	}

	return set, nil
}
