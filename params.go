package facewire

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by Render before any geometry or pixel work.
var (
	// ErrInvalidParameter indicates an out-of-range or non-finite parameter.
	ErrInvalidParameter = errors.New("facewire: invalid parameter")

	// ErrInvalidResolution indicates a non-positive canvas dimension.
	ErrInvalidResolution = errors.New("facewire: invalid resolution")
)

// FaceParameters holds every scalar input of a render call. Values are in
// model units (the default face is 140 units tall); angles are in degrees.
// A FaceParameters value is never mutated by Render.
type FaceParameters struct {
	// Facial proportions.
	EyeDistance float64 // distance between eye centers
	EyeSize     float64 // horizontal eye radius
	NoseWidth   float64 // nose width at its base
	NoseHeight  float64 // vertical drop from eye level to nose base
	JawWidth    float64 // jaw width between the cheeks
	FaceHeight  float64 // overall face height
	FaceDepth   float64 // nose/outline protrusion along the depth axis

	// Camera.
	Yaw   float64 // rotation about the vertical axis, degrees
	Pitch float64 // rotation about the horizontal axis, degrees

	// Output canvas.
	ImageWidth    int
	ImageHeight   int
	LineThickness float64 // stroke width in pixels
}

// ParamRange declares the default and valid range of one scalar parameter.
// The table is the plain-struct re-expression of a host's parameter-widget
// declarations: the rendering core depends only on resolved values.
type ParamRange struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

// Parameter names as used in Ranges and by host adapters.
const (
	ParamEyeDistance   = "eye_distance"
	ParamEyeSize       = "eye_size"
	ParamNoseWidth     = "nose_width"
	ParamNoseHeight    = "nose_height"
	ParamJawWidth      = "jaw_width"
	ParamFaceHeight    = "face_height"
	ParamFaceDepth     = "face_depth"
	ParamYaw           = "yaw"
	ParamPitch         = "pitch"
	ParamImageWidth    = "image_width"
	ParamImageHeight   = "image_height"
	ParamLineThickness = "line_thickness"
)

var paramRanges = []ParamRange{
	{ParamEyeDistance, 60, 10, 200, 1},
	{ParamEyeSize, 10, 2, 40, 0.5},
	{ParamNoseWidth, 20, 4, 60, 1},
	{ParamNoseHeight, 40, 8, 100, 1},
	{ParamJawWidth, 100, 40, 260, 1},
	{ParamFaceHeight, 140, 60, 280, 1},
	{ParamFaceDepth, 80, 0, 200, 1},
	{ParamYaw, 0, -90, 90, 0.5},
	{ParamPitch, 0, -60, 60, 0.5},
	{ParamImageWidth, 512, 64, 4096, 1},
	{ParamImageHeight, 512, 64, 4096, 1},
	{ParamLineThickness, 2, 1, 20, 1},
}

// Ranges returns the declared range for every parameter, in a stable order.
// The returned slice is a copy and may be modified by the caller.
func Ranges() []ParamRange {
	out := make([]ParamRange, len(paramRanges))
	copy(out, paramRanges)
	return out
}

// RangeFor returns the declared range for the named parameter.
func RangeFor(name string) (ParamRange, bool) {
	for _, r := range paramRanges {
		if r.Name == name {
			return r, true
		}
	}
	return ParamRange{}, false
}

// DefaultParameters returns FaceParameters populated with every declared
// default.
func DefaultParameters() FaceParameters {
	p := FaceParameters{}
	p.apply(func(name string, v *float64) {
		r, _ := RangeFor(name)
		*v = r.Default
	})
	return p
}

// apply visits every scalar field together with its declared name.
// ImageWidth and ImageHeight are visited through temporaries since they are
// integers in the struct.
func (p *FaceParameters) apply(visit func(name string, v *float64)) {
	visit(ParamEyeDistance, &p.EyeDistance)
	visit(ParamEyeSize, &p.EyeSize)
	visit(ParamNoseWidth, &p.NoseWidth)
	visit(ParamNoseHeight, &p.NoseHeight)
	visit(ParamJawWidth, &p.JawWidth)
	visit(ParamFaceHeight, &p.FaceHeight)
	visit(ParamFaceDepth, &p.FaceDepth)
	visit(ParamYaw, &p.Yaw)
	visit(ParamPitch, &p.Pitch)

	w := float64(p.ImageWidth)
	visit(ParamImageWidth, &w)
	p.ImageWidth = int(w)

	h := float64(p.ImageHeight)
	visit(ParamImageHeight, &h)
	p.ImageHeight = int(h)

	visit(ParamLineThickness, &p.LineThickness)
}

// Validate checks that every parameter is finite and within its declared
// range. A non-positive resolution is reported as ErrInvalidResolution;
// every other violation as ErrInvalidParameter. Validate never mutates p.
func (p FaceParameters) Validate() error {
	if p.ImageWidth <= 0 || p.ImageHeight <= 0 {
		return fmt.Errorf("%w: %dx%d (both dimensions must be > 0)",
			ErrInvalidResolution, p.ImageWidth, p.ImageHeight)
	}

	var err error
	p.apply(func(name string, v *float64) {
		if err != nil {
			return
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			err = fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, name)
			return
		}
		r, _ := RangeFor(name)
		if *v < r.Min || *v > r.Max {
			err = fmt.Errorf("%w: %s=%v outside [%v, %v]",
				ErrInvalidParameter, name, *v, r.Min, r.Max)
		}
	})
	return err
}

// Clamped returns a copy with every finite parameter clamped to its declared
// range. Non-finite values are replaced by the parameter default. Host
// adapters use this to apply slider-boundary semantics before rendering.
func (p FaceParameters) Clamped() FaceParameters {
	p.apply(func(name string, v *float64) {
		r, _ := RangeFor(name)
		switch {
		case math.IsNaN(*v) || math.IsInf(*v, 0):
			*v = r.Default
		case *v < r.Min:
			*v = r.Min
		case *v > r.Max:
			*v = r.Max
		}
	})
	return p
}
