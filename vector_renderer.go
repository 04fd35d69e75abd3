package facewire

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// VectorRenderer rasterizes strokes through golang.org/x/image/vector.
// It produces the same stroke decomposition as the software renderer but
// delegates coverage accumulation to the x/image rasterizer, which computes
// exact analytic coverage per pixel.
type VectorRenderer struct {
	rasterizer *vector.Rasterizer
}

// NewVectorRenderer creates a renderer backed by golang.org/x/image/vector.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{}
}

// StrokePolyline implements Renderer. All stroke polygons of the polyline
// are accumulated into a single rasterizer pass; coverage saturates where
// quads and joint discs overlap, so seams do not double-blend.
func (r *VectorRenderer) StrokePolyline(pm *Pixmap, points []Point, width float64, color RGBA) error {
	if len(points) == 0 {
		return nil
	}

	w, h := pm.Width(), pm.Height()
	if r.rasterizer == nil || r.rasterizer.Size() != image.Pt(w, h) {
		r.rasterizer = vector.NewRasterizer(w, h)
	} else {
		r.rasterizer.Reset(w, h)
	}
	r.rasterizer.DrawOp = draw.Over

	for _, poly := range strokePolygons(points, width) {
		if len(poly) < 3 {
			continue
		}
		r.rasterizer.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.rasterizer.LineTo(float32(p.X), float32(p.Y))
		}
		r.rasterizer.ClosePath()
	}

	dst := pm.RGBAImage()
	src := image.NewUniform(color.Color())
	r.rasterizer.Draw(dst, dst.Bounds(), src, image.Point{})
	return nil
}
