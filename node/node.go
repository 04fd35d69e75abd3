package node

import (
	"fmt"
	"math"

	"github.com/faceforge/facewire"
	"github.com/faceforge/facewire/topology"
)

// Node and display identifiers under which hosts register this plugin.
const (
	ID          = "parametric_face_canvas"
	DisplayName = "Parametric Face Canvas"
	Category    = "conditioning/face"
)

// Gender selects which base topology and defaults to load.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// WidgetKind is the control type a host should present for a parameter.
type WidgetKind int

const (
	KindFloat WidgetKind = iota
	KindInt
	KindSelect
	KindToggle
)

// Widget declares one host-side input control. Numeric widgets carry the
// default and valid range enforced at the host boundary.
type Widget struct {
	Name    string
	Kind    WidgetKind
	Default float64
	Min     float64
	Max     float64
	Step    float64
	Options []string // KindSelect only
}

// Extra camera widgets beyond the core parameter table.
const (
	ParamGender         = "gender"
	ParamCameraDistance = "camera_distance"
	ParamFOV            = "fov"
	ParamPerspective    = "perspective"
	ParamResetAll       = "reset_all"
)

// Declared ranges of the camera widgets, shared by InputSpec and the
// host-boundary clamp in Execute.
const (
	cameraDistanceMin = 0.5
	cameraDistanceMax = 10
	fovMin            = 0.2
	fovMax            = 5
)

// intParams lists core parameters hosts should present as integer sliders.
var intParams = map[string]bool{
	facewire.ParamImageWidth:    true,
	facewire.ParamImageHeight:   true,
	facewire.ParamLineThickness: true,
}

// InputSpec returns the full ordered widget list for this node: the gender
// selector, every core parameter range, the perspective camera controls and
// the reset toggle.
func InputSpec() []Widget {
	widgets := []Widget{
		{Name: ParamGender, Kind: KindSelect, Options: []string{GenderMale, GenderFemale}},
	}
	for _, r := range facewire.Ranges() {
		kind := KindFloat
		if intParams[r.Name] {
			kind = KindInt
		}
		widgets = append(widgets, Widget{
			Name: r.Name, Kind: kind,
			Default: r.Default, Min: r.Min, Max: r.Max, Step: r.Step,
		})
	}
	widgets = append(widgets,
		Widget{Name: ParamPerspective, Kind: KindToggle},
		Widget{Name: ParamCameraDistance, Kind: KindFloat,
			Default: facewire.DefaultCameraDistance,
			Min:     cameraDistanceMin, Max: cameraDistanceMax, Step: 0.1},
		Widget{Name: ParamFOV, Kind: KindFloat,
			Default: facewire.DefaultCameraFOV,
			Min:     fovMin, Max: fovMax, Step: 0.1},
		Widget{Name: ParamResetAll, Kind: KindToggle},
	)
	return widgets
}

// Defaults returns the preset face proportions for a gender. Unknown
// genders fall back to the male preset.
func Defaults(gender string) facewire.FaceParameters {
	p := facewire.DefaultParameters()
	if gender == GenderFemale {
		p.EyeDistance = 56
		p.EyeSize = 11
		p.NoseWidth = 18
		p.NoseHeight = 38
		p.JawWidth = 94
		p.FaceDepth = 70
	}
	return p
}

// Inputs is one resolved set of widget values for an Execute call.
type Inputs struct {
	Gender string
	Params facewire.FaceParameters

	// Perspective camera controls; Distance and FOV are ignored unless
	// Perspective is set.
	Perspective    bool
	CameraDistance float64
	FOV            float64

	// ResetAll restores the gender preset for the face proportions and the
	// camera defaults, keeping the requested canvas size and line thickness.
	ResetAll bool
}

// Node renders landmark-graph faces for a hosting pipeline. The zero value
// is ready to use; Topology selection happens per call from the gender
// input.
type Node struct {
	// Renderer optionally overrides the rasterizer backend.
	Renderer facewire.Renderer
}

// Execute renders one face and returns it as a BHWC tensor. Slider values
// are clamped to their declared ranges (host-boundary semantics); only a
// non-positive canvas size is rejected outright.
func (n *Node) Execute(in Inputs) (Tensor, error) {
	params := in.Params
	if params.ImageWidth <= 0 || params.ImageHeight <= 0 {
		return Tensor{}, fmt.Errorf("node %s: %w: %dx%d",
			ID, facewire.ErrInvalidResolution, params.ImageWidth, params.ImageHeight)
	}
	dist, fov := in.CameraDistance, in.FOV
	if in.ResetAll {
		preset := Defaults(in.Gender)
		preset.ImageWidth = params.ImageWidth
		preset.ImageHeight = params.ImageHeight
		preset.LineThickness = params.LineThickness
		params = preset
		dist, fov = facewire.DefaultCameraDistance, facewire.DefaultCameraFOV
	}
	params = params.Clamped()
	dist = clampWidget(dist, cameraDistanceMin, cameraDistanceMax,
		facewire.DefaultCameraDistance)
	fov = clampWidget(fov, fovMin, fovMax, facewire.DefaultCameraFOV)

	topo := topology.Male()
	if in.Gender == GenderFemale {
		topo = topology.Female()
	}

	opts := []facewire.RenderOption{facewire.WithTopology(topo)}
	if in.Perspective {
		opts = append(opts, facewire.WithCamera(facewire.Camera{
			Yaw:        params.Yaw,
			Pitch:      params.Pitch,
			Distance:   dist,
			FOV:        fov,
			Projection: facewire.ProjectionPerspective,
		}))
	}
	if n.Renderer != nil {
		opts = append(opts, facewire.WithRenderer(n.Renderer))
	}

	pm, err := facewire.Render(params, opts...)
	if err != nil {
		return Tensor{}, fmt.Errorf("node %s: %w", ID, err)
	}
	return FromPixmap(pm), nil
}

// clampWidget applies the widget range to one camera value. An unset (zero)
// or non-finite value falls back to the widget default.
func clampWidget(v, min, max, def float64) float64 {
	switch {
	case v == 0 || math.IsNaN(v) || math.IsInf(v, 0):
		return def
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}
