package raster

import "math"

// Point represents a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal polygon edge prepared for scanline traversal,
// stored with y0 < y1 and the original winding direction.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 downward, -1 upward (before the swap)
}

// horizontalEps drops edges too flat to cross a scanline.
const horizontalEps = 0.001

// NewEdge creates an edge from two points, normalizing so y0 < y1 while
// remembering the direction for the non-zero winding rule.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// XAtY returns the x coordinate where the edge crosses the given y.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// buildEdges converts a polygon's points into scanline edges, closing the
// loop if needed and skipping horizontal edges.
func buildEdges(points []Point) []Edge {
	if len(points) < 3 {
		return nil
	}
	closed := points
	if points[0] != points[len(points)-1] {
		closed = append(append(make([]Point, 0, len(points)+1), points...), points[0])
	}

	edges := make([]Edge, 0, len(closed)-1)
	for i := 0; i+1 < len(closed); i++ {
		if math.Abs(closed[i+1].Y-closed[i].Y) < horizontalEps {
			continue
		}
		edges = append(edges, NewEdge(closed[i], closed[i+1]))
	}
	return edges
}

// edgeBoundsY returns the vertical extent of an edge list.
func edgeBoundsY(edges []Edge) (yMin, yMax float64) {
	yMin = math.MaxFloat64
	yMax = -math.MaxFloat64
	for i := range edges {
		yMin = math.Min(yMin, edges[i].y0)
		yMax = math.Max(yMax, edges[i].y1)
	}
	return yMin, yMax
}
