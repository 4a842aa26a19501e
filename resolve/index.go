package resolve

import (
	"sort"

	"github.com/c360studio/ricdraw/diagram"
)

// Index answers nearest-shape queries over an immutable set of shapes.
// Shapes are kept sorted by their left edge so a query only scans shapes
// starting left of the query point plus the tolerance.
type Index struct {
	shapes []*diagram.Shape
}

// NewIndex builds an index over shapes. The slice is copied.
func NewIndex(shapes []*diagram.Shape) *Index {
	sorted := make([]*diagram.Shape, len(shapes))
	copy(sorted, shapes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds.X < sorted[j].Bounds.X
	})
	return &Index{shapes: sorted}
}

// Nearest returns the shape a point most plausibly belongs to. Shapes
// containing p win over shapes merely near it; among either group the one
// whose boundary is closest to p wins, then the smallest id. Shapes further
// than maxGap from p are never returned.
func (ix *Index) Nearest(p diagram.Point, maxGap float64) (*diagram.Shape, float64, bool) {
	limit := sort.Search(len(ix.shapes), func(i int) bool {
		return ix.shapes[i].Bounds.X > p.X+maxGap
	})

	var best *diagram.Shape
	var bestDist float64
	bestInside := false
	for _, s := range ix.shapes[:limit] {
		if s.Bounds.Distance(p) > maxGap {
			continue
		}
		inside := s.Bounds.Contains(p)
		dist := s.Bounds.BoundaryDistance(p)
		switch {
		case best == nil:
		case inside != bestInside:
			if !inside {
				continue
			}
		case dist > bestDist:
			continue
		case dist == bestDist && s.ID > best.ID:
			continue
		}
		best, bestDist, bestInside = s, dist, inside
	}
	if best == nil {
		return nil, 0, false
	}
	return best, best.Bounds.Distance(p), true
}
