package facewire

import (
	"math"
	"testing"
)

func TestSegmentQuad(t *testing.T) {
	quad, ok := segmentQuad(Pt(0, 0), Pt(10, 0), 4)
	if !ok {
		t.Fatal("horizontal segment rejected")
	}

	// The quad covers the segment: width 4 centered on y=0, x in [0, 10].
	for _, c := range quad {
		if math.Abs(c.Y) != 2 {
			t.Errorf("corner %+v not at half-width offset", c)
		}
		if c.X != 0 && c.X != 10 {
			t.Errorf("corner %+v not at a segment endpoint", c)
		}
	}

	if _, ok := segmentQuad(Pt(5, 5), Pt(5, 5), 4); ok {
		t.Error("degenerate segment produced a quad")
	}
}

func TestDiscPolygon(t *testing.T) {
	disc := discPolygon(Pt(3, -2), 8)
	if len(disc) != discSegments+1 {
		t.Fatalf("disc has %d points, want %d", len(disc), discSegments+1)
	}
	if disc[0] != disc[len(disc)-1] {
		t.Error("disc polygon is not closed")
	}
	for _, p := range disc {
		if r := p.Distance(Pt(3, -2)); math.Abs(r-4) > 1e-9 {
			t.Fatalf("disc point %+v at radius %v, want 4", p, r)
		}
	}
}

func TestStrokePolygons(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	polys := strokePolygons(pts, 2)

	// Two segment quads plus three joint discs.
	if len(polys) != 5 {
		t.Fatalf("stroke produced %d polygons, want 5", len(polys))
	}

	if got := strokePolygons(nil, 2); got != nil {
		t.Error("empty polyline produced polygons")
	}

	// A single point strokes as a dot.
	dot := strokePolygons([]Point{Pt(5, 5)}, 3)
	if len(dot) != 1 {
		t.Fatalf("single point produced %d polygons, want 1", len(dot))
	}
	for _, p := range dot[0] {
		if r := p.Distance(Pt(5, 5)); math.Abs(r-1.5) > 1e-9 {
			t.Fatalf("dot point at radius %v, want 1.5", r)
		}
	}
}

func TestStrokeMinimumWidth(t *testing.T) {
	// Widths below one pixel are drawn at one pixel.
	polys := strokePolygons([]Point{Pt(0, 0)}, 0.1)
	for _, p := range polys[0] {
		if r := p.Distance(Pt(0, 0)); math.Abs(r-0.5) > 1e-9 {
			t.Fatalf("sub-pixel stroke radius %v, want 0.5", r)
		}
	}
}

func TestSoftwareRendererStroke(t *testing.T) {
	pm := NewPixmap(64, 64)
	pm.Clear(Black)

	r := NewSoftwareRenderer()
	err := r.StrokePolyline(pm, []Point{Pt(8, 32), Pt(56, 32)}, 4, White)
	if err != nil {
		t.Fatalf("StrokePolyline failed: %v", err)
	}

	if c := pm.GetPixel(32, 32); c.R < 0.9 {
		t.Errorf("stroke center pixel %+v, want white", c)
	}
	if c := pm.GetPixel(32, 8); c.R != 0 {
		t.Errorf("pixel far from stroke %+v, want black", c)
	}
	// Caps extend half a width past the endpoints.
	if c := pm.GetPixel(6, 32); c.R < 0.5 {
		t.Errorf("round cap pixel %+v, want drawn", c)
	}
}

func TestSoftwareRendererClips(t *testing.T) {
	pm := NewPixmap(32, 32)
	r := NewSoftwareRenderer()

	// Strokes leaving the canvas clip without error.
	err := r.StrokePolyline(pm, []Point{Pt(-100, 16), Pt(200, 16)}, 6, White)
	if err != nil {
		t.Fatalf("off-canvas stroke failed: %v", err)
	}
	if c := pm.GetPixel(16, 16); c.R < 0.9 {
		t.Errorf("clipped stroke missing on canvas: %+v", c)
	}
}

func TestSoftwareRendererResize(t *testing.T) {
	r := NewSoftwareRenderer()

	small := NewPixmap(16, 16)
	if err := r.StrokePolyline(small, []Point{Pt(2, 8), Pt(14, 8)}, 2, White); err != nil {
		t.Fatalf("stroke on small canvas failed: %v", err)
	}

	// Reusing the renderer on a larger canvas must not clip to the old size.
	large := NewPixmap(64, 64)
	if err := r.StrokePolyline(large, []Point{Pt(4, 48), Pt(60, 48)}, 2, White); err != nil {
		t.Fatalf("stroke on large canvas failed: %v", err)
	}
	if c := large.GetPixel(40, 48); c.R < 0.9 {
		t.Errorf("stroke beyond old canvas bounds missing: %+v", c)
	}
}

func TestVectorRendererStroke(t *testing.T) {
	pm := NewPixmap(64, 64)
	pm.Clear(Black)

	r := NewVectorRenderer()
	err := r.StrokePolyline(pm, []Point{Pt(8, 32), Pt(56, 32)}, 4, White)
	if err != nil {
		t.Fatalf("StrokePolyline failed: %v", err)
	}

	if c := pm.GetPixel(32, 32); c.R < 0.9 {
		t.Errorf("stroke center pixel %+v, want white", c)
	}
	if c := pm.GetPixel(32, 8); c.R != 0 {
		t.Errorf("pixel far from stroke %+v, want black", c)
	}
}
