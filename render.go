package facewire

import (
	"fmt"
	"math"

	"github.com/faceforge/facewire/topology"
)

// Render rasterizes the parametric face into a fresh canvas.
//
// The pipeline is a single pass: validate parameters, generate the model
// curves, rotate and project them, map to pixel space, stroke. Render is a
// pure function of its inputs; no state is shared between calls and no
// partial canvas is ever returned on error.
func Render(p FaceParameters, opts ...RenderOption) (*Pixmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cam := DefaultCamera()
	cam.Yaw = p.Yaw
	cam.Pitch = p.Pitch
	cam.Projection = o.projection
	if o.camera != nil {
		cam = *o.camera
	}

	var curves []Curve
	if o.topology != nil {
		curves = topologyCurves(*o.topology, p)
	} else {
		curves = FaceModel(p)
		if o.detail {
			curves = append(curves, DetailCurves(p)...)
		}
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	Logger().Debug("facewire: render",
		"curves", len(curves),
		"width", p.ImageWidth,
		"height", p.ImageHeight,
		"yaw", cam.Yaw,
		"pitch", cam.Pitch,
		"perspective", cam.Projection == ProjectionPerspective,
	)

	pm := NewPixmap(p.ImageWidth, p.ImageHeight)
	pm.Clear(o.background)

	// Normalize by the outline's larger extent so the face spans the canvas
	// margin regardless of the model units chosen by the caller, and a jaw
	// wider than the face is tall still fits on the canvas.
	norm := 2 / math.Max(p.JawWidth, p.FaceHeight)
	vp := newViewport(p.ImageWidth, p.ImageHeight)
	rot := cam.Rotation()

	pts := make([]Point, 0, outlineSamples+1)
	for _, curve := range curves {
		pts = pts[:0]
		for _, v := range curve.Points {
			proj := cam.projectRotated(rot.Transform(v.Mul(norm)))
			pts = append(pts, vp.toPixel(proj))
		}
		if err := renderer.StrokePolyline(pm, pts, p.LineThickness, o.lineColor); err != nil {
			return nil, fmt.Errorf("facewire: stroke %s: %w", curve.Name, err)
		}
	}
	return pm, nil
}

// topologyCurves converts a deformed landmark graph into drawable curves:
// one two-point curve per edge and one ellipse per eye circle.
func topologyCurves(t topology.Topology, p FaceParameters) []Curve {
	d := topology.Deform(t, topology.Sliders{
		EyeDistance: p.EyeDistance,
		EyeSize:     p.EyeSize,
		NoseWidth:   p.NoseWidth,
		NoseHeight:  p.NoseHeight,
		JawWidth:    p.JawWidth,
		FaceHeight:  p.FaceHeight,
		FaceDepth:   p.FaceDepth,
	})

	curves := make([]Curve, 0, len(d.Edges)+len(d.Eyes))
	for _, e := range d.Edges {
		from, okFrom := d.Points[e.From]
		to, okTo := d.Points[e.To]
		if !okFrom || !okTo {
			continue
		}
		curves = append(curves, Curve{
			Name: CurveName(e.From + "-" + e.To),
			Points: []Vec3{
				V3(from.X, from.Y, from.Z),
				V3(to.X, to.Y, to.Z),
			},
		})
	}
	for i, eye := range d.Eyes {
		name := CurveLeftEye
		if i == 1 {
			name = CurveRightEye
		}
		curves = append(curves, Ellipse(name,
			V3(eye.Center.X, eye.Center.Y, eye.Center.Z),
			eye.Radius, eye.Radius, PlaneXZ, eyeSamples))
	}
	return curves
}
