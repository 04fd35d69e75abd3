package facewire

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/faceforge/facewire/topology"
)

// drawnBounds returns the bounding box of pixels brighter than half white,
// and whether any were found.
func drawnBounds(pm *Pixmap) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = pm.Width(), pm.Height()
	maxX, maxY = -1, -1
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).R > 0.5 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return minX, minY, maxX, maxY, maxY >= 0
}

func TestRenderCanvasDimensions(t *testing.T) {
	for _, dims := range [][2]int{{512, 512}, {640, 480}, {64, 128}} {
		p := DefaultParameters()
		p.ImageWidth = dims[0]
		p.ImageHeight = dims[1]

		pm, err := Render(p)
		if err != nil {
			t.Fatalf("Render(%dx%d) failed: %v", dims[0], dims[1], err)
		}
		if pm.Width() != dims[0] || pm.Height() != dims[1] {
			t.Errorf("canvas is %dx%d, want %dx%d",
				pm.Width(), pm.Height(), dims[0], dims[1])
		}
	}
}

func TestRenderInvalidResolution(t *testing.T) {
	p := DefaultParameters()
	p.ImageWidth = 0

	pm, err := Render(p)
	if !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("Render() error = %v, want ErrInvalidResolution", err)
	}
	if pm != nil {
		t.Error("Render() returned a partial canvas on error")
	}
}

func TestRenderInvalidParameter(t *testing.T) {
	p := DefaultParameters()
	p.EyeDistance = math.NaN()

	if _, err := Render(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Render() error = %v, want ErrInvalidParameter", err)
	}
}

func TestRenderExampleScenario(t *testing.T) {
	// FaceParameters{eyeDistance=60, eyeSize=10, noseWidth=20,
	// jawWidth=100, faceHeight=140, faceDepth=80, yaw=0, pitch=0,
	// 512x512, thickness=2} are exactly the defaults.
	pm, err := Render(DefaultParameters())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	minX, minY, maxX, maxY, ok := drawnBounds(pm)
	if !ok {
		t.Fatal("nothing was drawn")
	}

	// The face outline is centered on the canvas.
	cx := float64(minX+maxX) / 2
	cy := float64(minY+maxY) / 2
	if math.Abs(cx-256) > 3 || math.Abs(cy-256) > 3 {
		t.Errorf("drawing centered at (%v, %v), want (256, 256)", cx, cy)
	}

	// The outline spans the canvas margin vertically: FaceHeight
	// normalizes to the full margin height.
	wantTop := 256 - canvasMargin*256
	if math.Abs(float64(minY)-wantTop) > 4 {
		t.Errorf("outline top at y=%d, want about %v", minY, wantTop)
	}

	// Background stays untouched in the corners.
	if c := pm.GetPixel(2, 2); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("corner pixel %+v, want black background", c)
	}

	// The outline's right edge sits at the projected jaw half-width.
	wantRight := 256 + canvasMargin*256*(50.0/70.0)
	if math.Abs(float64(maxX)-wantRight) > 4 {
		t.Errorf("outline right edge at x=%d, want about %v", maxX, wantRight)
	}
}

func TestRenderYawChangesImageNotSize(t *testing.T) {
	front, err := Render(DefaultParameters())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	p := DefaultParameters()
	p.Yaw = 45
	turned, err := Render(p)
	if err != nil {
		t.Fatalf("Render(yaw=45) failed: %v", err)
	}

	if turned.Width() != front.Width() || turned.Height() != front.Height() {
		t.Error("yaw changed the canvas size")
	}

	same := true
	for i, v := range front.Data() {
		if turned.Data()[i] != v {
			same = false
			break
		}
	}
	if same {
		t.Error("yaw=45 produced a pixel-identical image")
	}
}

func TestRenderOptions(t *testing.T) {
	p := DefaultParameters()
	p.ImageWidth = 128
	p.ImageHeight = 128

	pm, err := Render(p,
		WithBackground(White),
		WithLineColor(Black),
		WithDetail(),
		WithProjection(ProjectionPerspective),
	)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if c := pm.GetPixel(2, 2); c.R < 0.9 {
		t.Errorf("corner pixel %+v, want white background", c)
	}

	// Some pixel must be dark (the stroked wireframe).
	found := false
	for y := 0; y < pm.Height() && !found; y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).R < 0.5 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no dark wireframe pixels on white background")
	}
}

func TestRenderTopologyMask(t *testing.T) {
	for _, topo := range []topology.Topology{topology.Male(), topology.Female()} {
		p := DefaultParameters()
		p.ImageWidth = 256
		p.ImageHeight = 256

		pm, err := Render(p, WithTopology(topo))
		if err != nil {
			t.Fatalf("Render(%s mask) failed: %v", topo.Name, err)
		}
		if _, _, _, _, ok := drawnBounds(pm); !ok {
			t.Errorf("%s mask drew nothing", topo.Name)
		}
	}
}

func TestRenderWithVectorRenderer(t *testing.T) {
	p := DefaultParameters()
	p.ImageWidth = 256
	p.ImageHeight = 256

	pm, err := Render(p, WithRenderer(NewVectorRenderer()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	minX, _, maxX, _, ok := drawnBounds(pm)
	if !ok {
		t.Fatal("vector renderer drew nothing")
	}
	if cx := float64(minX+maxX) / 2; math.Abs(cx-128) > 3 {
		t.Errorf("vector rendering centered at x=%v, want 128", cx)
	}
}

func TestRenderWideFaceFits(t *testing.T) {
	// A jaw wider than the face is tall sets the normalization scale, so
	// the outline stays inside the canvas margin instead of clipping.
	p := DefaultParameters()
	p.JawWidth = 260
	p.FaceHeight = 60

	pm, err := Render(p)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	minX, _, maxX, _, ok := drawnBounds(pm)
	if !ok {
		t.Fatal("nothing was drawn")
	}
	for y := 0; y < pm.Height(); y++ {
		if pm.GetPixel(0, y).R > 0.5 || pm.GetPixel(pm.Width()-1, y).R > 0.5 {
			t.Fatalf("outline clipped at canvas edge on row %d", y)
		}
	}

	// The outline spans the full margin horizontally.
	wantRight := 256 + canvasMargin*256
	if math.Abs(float64(maxX)-wantRight) > 4 {
		t.Errorf("outline right edge at x=%d, want about %v", maxX, wantRight)
	}
	if math.Abs(float64(minX)-(512-wantRight)) > 4 {
		t.Errorf("outline left edge at x=%d, want about %v", minX, 512-wantRight)
	}
}

func TestRenderExtremeRotationClips(t *testing.T) {
	// Near-profile views collapse features and push geometry around;
	// rendering must clip, not fail.
	p := DefaultParameters()
	p.Yaw = 90
	p.Pitch = -60
	p.LineThickness = 20

	pm, err := Render(p)
	if err != nil {
		t.Fatalf("Render(extreme rotation) failed: %v", err)
	}
	if pm.Width() != 512 || pm.Height() != 512 {
		t.Error("canvas size changed under extreme rotation")
	}
}

func TestRenderIsolation(t *testing.T) {
	// Concurrent renders share no canvas or curve state.
	var wg sync.WaitGroup
	results := make([]*Pixmap, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := DefaultParameters()
			p.ImageWidth = 128
			p.ImageHeight = 128
			p.Yaw = float64(i * 10)
			pm, err := Render(p)
			if err != nil {
				t.Errorf("concurrent render %d failed: %v", i, err)
				return
			}
			results[i] = pm
		}(i)
	}
	wg.Wait()

	for i, pm := range results {
		if pm == nil {
			continue
		}
		if pm.Width() != 128 || pm.Height() != 128 {
			t.Errorf("render %d produced %dx%d canvas", i, pm.Width(), pm.Height())
		}
	}
}
