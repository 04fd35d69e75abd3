package facewire

import "math"

// discSegments is the polygon resolution used for round joins, caps and
// single-point dots.
const discSegments = 12

// degenerateSegment is the minimum segment length that still produces a
// quad; shorter segments are covered by the joint discs.
const degenerateSegment = 0.001

// segmentQuad returns the four corners of the rectangle covering a stroked
// segment, or ok=false for a degenerate segment.
func segmentQuad(p0, p1 Point, width float64) (quad [4]Point, ok bool) {
	d := p1.Sub(p0)
	length := d.Length()
	if length < degenerateSegment {
		return quad, false
	}
	n := d.Perp().Mul(width / 2 / length)
	quad = [4]Point{
		p0.Add(n),
		p0.Sub(n),
		p1.Sub(n),
		p1.Add(n),
	}
	return quad, true
}

// discPolygon returns a closed polygon approximating a disc of the given
// diameter, used for round joins and caps. The first point is repeated
// verbatim at the end so the loop closes exactly.
func discPolygon(center Point, diameter float64) []Point {
	r := diameter / 2
	pts := make([]Point, 0, discSegments+1)
	for i := 0; i < discSegments; i++ {
		theta := 2 * math.Pi * float64(i) / discSegments
		pts = append(pts, Pt(center.X+r*math.Cos(theta), center.Y+r*math.Sin(theta)))
	}
	return append(pts, pts[0])
}

// strokePolygons decomposes a stroked polyline into fill polygons: one quad
// per non-degenerate segment plus one disc per vertex. The discs provide
// round joins between segments and round caps at the ends; for a
// single-point polyline they degenerate to the dot the host expects.
func strokePolygons(points []Point, width float64) [][]Point {
	if len(points) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	polys := make([][]Point, 0, 2*len(points))
	for i := 0; i+1 < len(points); i++ {
		if quad, ok := segmentQuad(points[i], points[i+1], width); ok {
			polys = append(polys, []Point{quad[0], quad[1], quad[2], quad[3], quad[0]})
		}
	}
	for _, p := range points {
		polys = append(polys, discPolygon(p, width))
	}
	return polys
}
