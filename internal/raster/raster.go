// Package raster provides scanline polygon rasterization for the wireframe
// renderer. Fills clip to the target bounds, so geometry pushed off-canvas
// by extreme camera angles degrades to partial strokes instead of errors.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid an import cycle with the
// root package).
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is the minimal pixel sink for aliased filling.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// AAPixmap extends Pixmap with alpha-blended pixel writing for
// anti-aliased filling. alpha is coverage in the range 0-255.
type AAPixmap interface {
	Pixmap
	BlendPixel(x, y int, c RGBA, alpha uint8)
}

// Rasterizer fills polygons onto a pixmap using the non-zero winding rule.
// A Rasterizer is not safe for concurrent use; allocate one per render call.
type Rasterizer struct {
	width  int
	height int

	crossings []crossing
	coverage  []float64
}

// crossing is one edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int
}

// NewRasterizer creates a rasterizer for the given target dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		crossings: make([]crossing, 0, 16),
		coverage:  make([]float64, width),
	}
}

// FillPolygon rasterizes a closed polygon. The last point is connected back
// to the first if the caller did not close the loop. With antialias set,
// coverage is computed by 4x vertical supersampling with exact horizontal
// span overlap; otherwise each pixel center is tested directly.
func (r *Rasterizer) FillPolygon(pm AAPixmap, points []Point, color RGBA, antialias bool) {
	edges := buildEdges(points)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := edgeBoundsY(edges)
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.height {
		y1 = r.height
	}

	if antialias {
		r.fillAA(pm, edges, y0, y1, color)
		return
	}
	for y := y0; y < y1; y++ {
		r.scanline(edges, float64(y)+0.5)
		for i := 0; i+1 < len(r.crossings); i += 2 {
			r.fillSpan(pm, r.crossings[i].x, r.crossings[i+1].x, y, color)
		}
	}
}

// scanline collects the winding-resolved span boundaries at the given y.
// The result in r.crossings holds an even number of entries: consecutive
// pairs delimit filled spans.
func (r *Rasterizer) scanline(edges []Edge, y float64) {
	r.crossings = r.crossings[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= y && y < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(y), dir: e.dir})
		}
	}
	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	// Resolve non-zero winding into span boundary pairs in place.
	out := r.crossings[:0]
	winding := 0
	var spanStart float64
	for _, c := range r.crossings {
		if winding == 0 {
			spanStart = c.x
		}
		winding += c.dir
		if winding == 0 {
			out = append(out, crossing{x: spanStart}, crossing{x: c.x})
		}
	}
	r.crossings = out
}

// fillSpan writes a fully covered horizontal span, clamped to bounds.
func (r *Rasterizer) fillSpan(pm Pixmap, xf1, xf2 float64, y int, color RGBA) {
	if y < 0 || y >= r.height {
		return
	}
	x1 := int(xf1)
	x2 := int(xf2)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > r.width {
		x2 = r.width
	}
	for x := x1; x < x2; x++ {
		pm.SetPixel(x, y, color)
	}
}
