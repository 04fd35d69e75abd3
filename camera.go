package facewire

import "math"

// Projection selects how rotated 3D points are mapped to the image plane.
type Projection int

const (
	// ProjectionOrthographic drops the depth axis after rotation. It is
	// the default: fully deterministic and free of perspective scaling.
	ProjectionOrthographic Projection = iota

	// ProjectionPerspective applies a pin-hole perspective divide with the
	// camera on the positive depth axis looking at the origin.
	ProjectionPerspective
)

// Perspective camera defaults, in normalized model units (the outline's
// larger extent maps to the range [-1, 1]).
const (
	DefaultCameraDistance = 2.5
	DefaultCameraFOV      = 1.0
)

// minRelativeDepth guards the perspective divide when a point reaches the
// camera plane.
const minRelativeDepth = 1e-6

// Camera rotates the face model and projects it onto a normalized image
// plane. Yaw turns the face left/right about the vertical axis; pitch tilts
// it up/down about the horizontal axis. Both are in degrees and applied in
// that order.
type Camera struct {
	Yaw   float64
	Pitch float64

	// Distance and FOV only affect ProjectionPerspective. Distance is
	// measured in normalized model units from the origin; larger values
	// zoom out. FOV scales the projected coordinates; larger values
	// zoom in.
	Distance float64
	FOV      float64

	Projection Projection
}

// DefaultCamera returns a front-facing orthographic camera with the standard
// perspective constants pre-filled.
func DefaultCamera() Camera {
	return Camera{
		Distance:   DefaultCameraDistance,
		FOV:        DefaultCameraFOV,
		Projection: ProjectionOrthographic,
	}
}

// Rotation returns the composed yaw-then-pitch rotation matrix.
func (c Camera) Rotation() Matrix3 {
	return YawPitch(c.Yaw, c.Pitch)
}

// ProjectPoint rotates a single model-space point and projects it to the
// normalized image plane (X right, Y up). At yaw = pitch = 0 with
// orthographic projection this is exactly the (x, z) drop of the input.
func (c Camera) ProjectPoint(v Vec3) Point {
	return c.projectRotated(c.Rotation().Transform(v))
}

// ProjectCurve rotates and projects every point of a curve. The rotation
// matrix is built once per call.
func (c Camera) ProjectCurve(curve Curve) []Point {
	rot := c.Rotation()
	out := make([]Point, len(curve.Points))
	for i, v := range curve.Points {
		out[i] = c.projectRotated(rot.Transform(v))
	}
	return out
}

func (c Camera) projectRotated(v Vec3) Point {
	if c.Projection == ProjectionPerspective {
		dist := c.Distance
		if dist == 0 {
			dist = DefaultCameraDistance
		}
		fov := c.FOV
		if fov == 0 {
			fov = DefaultCameraFOV
		}
		rel := dist - v.Y
		if math.Abs(rel) < minRelativeDepth {
			rel = minRelativeDepth
		}
		return Pt(v.X*fov/rel, v.Z*fov/rel)
	}
	return Pt(v.X, v.Z)
}

// canvasMargin is the fraction of the half-canvas the normalized face spans:
// a fixed 5% margin on each side.
const canvasMargin = 0.9

// viewport maps normalized image-plane coordinates to pixel coordinates.
// The model origin maps to the canvas center and the scale is fixed by the
// canvas size alone, so rotation never re-fits the drawing.
type viewport struct {
	scale  float64
	cx, cy float64
}

func newViewport(width, height int) viewport {
	side := width
	if height < side {
		side = height
	}
	return viewport{
		scale: canvasMargin * float64(side) / 2,
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

// toPixel converts one normalized image-plane point. The vertical axis flips
// because canvas Y grows downward.
func (vp viewport) toPixel(p Point) Point {
	return Pt(vp.cx+p.X*vp.scale, vp.cy-p.Y*vp.scale)
}
