package facewire

import "math"

// CurveName identifies one facial feature's outline.
type CurveName string

// The five core curves produced by FaceModel.
const (
	CurveLeftEye  CurveName = "left_eye"
	CurveRightEye CurveName = "right_eye"
	CurveNose     CurveName = "nose"
	CurveJaw      CurveName = "jaw"
	CurveOutline  CurveName = "face_outline"
)

// Optional detail curves, present only when rendering with WithDetail.
const (
	CurveMouth      CurveName = "mouth"
	CurveLeftBrow   CurveName = "left_brow"
	CurveRightBrow  CurveName = "right_brow"
	CurveNoseBridge CurveName = "nose_bridge"
)

// Curve is an ordered sequence of 3D points tracing one facial feature.
// Curves are created fresh per render call and discarded after
// rasterization; they are never shared between calls.
type Curve struct {
	Name   CurveName
	Points []Vec3
}

// EllipsePlane selects the plane an ellipse is sampled in.
type EllipsePlane int

const (
	// PlaneXZ is the frontal plane (constant depth). Almost every facial
	// curve lives here.
	PlaneXZ EllipsePlane = iota
	// PlaneXY is the horizontal plane (constant height).
	PlaneXY
)

// Ellipse samples a closed ellipse of n segments around center.
// ru and rv are the radii along the plane's two axes. The returned sequence
// has n+1 points: the first point is repeated at the end to close the loop.
func Ellipse(name CurveName, center Vec3, ru, rv float64, plane EllipsePlane, n int) Curve {
	points := make([]Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		u := math.Cos(theta) * ru
		v := math.Sin(theta) * rv
		switch plane {
		case PlaneXY:
			points = append(points, V3(center.X+u, center.Y+v, center.Z))
		default: // PlaneXZ
			points = append(points, V3(center.X+u, center.Y, center.Z+v))
		}
	}
	return Curve{Name: name, Points: points}
}

// Arc samples the arc of an ellipse in the XZ plane from angle a0 to a1
// (radians, counter-clockwise) with n segments, producing n+1 points.
func Arc(name CurveName, center Vec3, ru, rv, a0, a1 float64, n int) Curve {
	points := make([]Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := a0 + (a1-a0)*float64(i)/float64(n)
		points = append(points, V3(
			center.X+math.Cos(theta)*ru,
			center.Y,
			center.Z+math.Sin(theta)*rv,
		))
	}
	return Curve{Name: name, Points: points}
}

// Polyline samples straight segments through the given anchor points,
// inserting n evenly spaced points per segment (n+1 points per segment
// including both endpoints, shared endpoints not duplicated).
func Polyline(name CurveName, anchors []Vec3, n int) Curve {
	if len(anchors) == 0 {
		return Curve{Name: name}
	}
	points := []Vec3{anchors[0]}
	for i := 0; i+1 < len(anchors); i++ {
		for j := 1; j <= n; j++ {
			t := float64(j) / float64(n)
			points = append(points, anchors[i].Lerp(anchors[i+1], t))
		}
	}
	return Curve{Name: name, Points: points}
}

// Center returns the centroid of the curve's points. For closed curves the
// repeated endpoint is not counted twice.
func (c Curve) Center() Vec3 {
	pts := c.Points
	if len(pts) > 1 && pts[0].Approx(pts[len(pts)-1], 1e-9) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}
