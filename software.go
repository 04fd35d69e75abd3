package facewire

import "github.com/faceforge/facewire/internal/raster"

// SoftwareRenderer is the default CPU scanline rasterizer backend.
// It is not safe for concurrent use; Render allocates one per call.
type SoftwareRenderer struct {
	antialias  bool
	width      int
	height     int
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a software renderer with anti-aliasing
// enabled.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{antialias: true}
}

// NewSoftwareRendererNoAA creates a software renderer without
// anti-aliasing (faster but aliased).
func NewSoftwareRendererNoAA() *SoftwareRenderer {
	return &SoftwareRenderer{antialias: false}
}

// pixmapAdapter adapts Pixmap to the raster.AAPixmap interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (p *pixmapAdapter) BlendPixel(x, y int, c raster.RGBA, alpha uint8) {
	p.pixmap.BlendPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, alpha)
}

// convertPoints converts root-package points to raster points.
func convertPoints(points []Point) []raster.Point {
	result := make([]raster.Point, len(points))
	for i, p := range points {
		result[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return result
}

// StrokePolyline implements Renderer by filling one quad per segment and
// one disc per joint through the scanline rasterizer. All fills clip to the
// pixmap bounds.
func (r *SoftwareRenderer) StrokePolyline(pm *Pixmap, points []Point, width float64, color RGBA) error {
	if len(points) == 0 {
		return nil
	}
	if r.width != pm.Width() || r.height != pm.Height() || r.rasterizer == nil {
		r.width = pm.Width()
		r.height = pm.Height()
		r.rasterizer = raster.NewRasterizer(r.width, r.height)
	}

	adapter := &pixmapAdapter{pixmap: pm}
	rc := raster.RGBA{R: color.R, G: color.G, B: color.B, A: color.A}
	for _, poly := range strokePolygons(points, width) {
		r.rasterizer.FillPolygon(adapter, convertPoints(poly), rc, r.antialias)
	}
	return nil
}
