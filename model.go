package facewire

import "math"

// Sample counts per curve type. Ellipse-like curves are sampled densely
// enough that the stroked polyline reads as smooth at 4k resolution; line
// features need far fewer points.
const (
	outlineSamples = 48
	eyeSamples     = 32
	mouthSamples   = 32
	jawSamples     = 24
	browSamples    = 12
	noseSamples    = 8
)

// Vertical anchor proportions relative to face height, measured from the
// origin at the face center.
const (
	eyeLevelRatio   = 0.20 // eye line sits above center
	mouthDropRatio  = 0.20 // mouth sits below the nose base
	chinDropRatio   = 0.25 // chin sits below the mouth
	maxNoseRatio    = 0.50 // nose height is clamped to half the face height
	bridgeRiseRatio = 0.10 // nose bridge starts slightly above eye level
)

// FaceModel constructs the five core curves of the face in model space,
// centered at the origin: left eye, right eye, nose, jaw and face outline.
// The input is assumed validated; FaceModel itself never fails.
func FaceModel(p FaceParameters) []Curve {
	zEye := eyeLevelRatio * p.FaceHeight
	zNoseBase := zEye - math.Min(p.NoseHeight, maxNoseRatio*p.FaceHeight)
	zMouth := zNoseBase - mouthDropRatio*p.FaceHeight
	// The chin may not drop past the outline bottom: the jaw arc bottoms out
	// exactly at the chin, and the outline is what the viewport is fit to.
	zChin := math.Max(zMouth-chinDropRatio*p.FaceHeight, -p.FaceHeight/2)

	// Eyes: vertically flattened ellipses following the curved face
	// surface. Each eye tilts about the vertical axis into the local
	// tangent plane, so a yaw rotation foreshortens the near and far eye
	// by different amounts while the front view stays symmetric.
	tilt := eyeTilt(p)
	leftEye := tiltedEllipse(CurveLeftEye,
		V3(-p.EyeDistance/2, 0, zEye), p.EyeSize, 0.6*p.EyeSize, tilt, eyeSamples)
	rightEye := tiltedEllipse(CurveRightEye,
		V3(p.EyeDistance/2, 0, zEye), p.EyeSize, 0.6*p.EyeSize, -tilt, eyeSamples)

	// Nose: a two-segment tent whose tip protrudes toward the viewer.
	nose := Polyline(CurveNose, []Vec3{
		V3(-p.NoseWidth/2, 0, zNoseBase),
		V3(0, p.FaceDepth/2, zNoseBase),
		V3(p.NoseWidth/2, 0, zNoseBase),
	}, noseSamples)

	// Jaw: the lower half of an ellipse running from cheek to cheek
	// through the chin, with the slight forward offset of the chin.
	jaw := Arc(CurveJaw,
		V3(0, 0.05*p.FaceDepth, (zNoseBase+zChin)/2),
		p.JawWidth/2, (zNoseBase-zChin)/2,
		math.Pi, 2*math.Pi, jawSamples)

	return []Curve{leftEye, rightEye, nose, jaw, faceOutline(p)}
}

// eyeTilt computes the angle each eye plane rotates about the vertical axis
// to lie tangent to the frontal face surface, an ellipse of half-width
// JawWidth/2 and depth FaceDepth/2. The lateral position is clamped short of
// the face edge where the tangent turns vertical.
func eyeTilt(p FaceParameters) float64 {
	if p.FaceDepth == 0 || p.JawWidth == 0 {
		return 0
	}
	rx := p.JawWidth / 2
	u := (p.EyeDistance / 2) / rx
	if u > 0.95 {
		u = 0.95
	}
	slope := (p.FaceDepth / 2) * u / (rx * math.Sqrt(1-u*u))
	return math.Atan(slope)
}

// tiltedEllipse samples an XZ-plane ellipse rotated about the vertical axis
// through its center by the given angle (radians).
func tiltedEllipse(name CurveName, center Vec3, ru, rv, tilt float64, n int) Curve {
	rot := RotateZ(tilt)
	points := make([]Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		offset := rot.Transform(V3(math.Cos(theta)*ru, 0, math.Sin(theta)*rv))
		points = append(points, center.Add(offset))
	}
	return Curve{Name: name, Points: points}
}

// faceOutline samples the outer face ellipse. The horizontal radius follows
// the jaw width and the vertical radius half the face height. Samples recede
// along the depth axis by up to FaceDepth/2 toward forehead and chin, which
// shapes the silhouette under rotation but projects identically to a flat
// ellipse at yaw = pitch = 0.
func faceOutline(p FaceParameters) Curve {
	rx := p.JawWidth / 2
	rz := p.FaceHeight / 2
	ry := p.FaceDepth / 2

	points := make([]Vec3, 0, outlineSamples+1)
	for i := 0; i <= outlineSamples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(outlineSamples)
		sin := math.Sin(theta)
		points = append(points, V3(
			rx*math.Cos(theta),
			-ry*sin*sin,
			rz*sin,
		))
	}
	return Curve{Name: CurveOutline, Points: points}
}

// DetailCurves constructs the optional secondary features: mouth, brows and
// nose bridge. They are appended to the core model when rendering with
// WithDetail.
func DetailCurves(p FaceParameters) []Curve {
	zEye := eyeLevelRatio * p.FaceHeight
	zNoseBase := zEye - math.Min(p.NoseHeight, maxNoseRatio*p.FaceHeight)
	zMouth := zNoseBase - mouthDropRatio*p.FaceHeight

	mouth := Ellipse(CurveMouth,
		V3(0, 0, zMouth), 0.4*p.JawWidth, 0.05*p.FaceHeight, PlaneXZ, mouthSamples)

	zBrow := zEye + 1.8*p.EyeSize
	leftBrow := Arc(CurveLeftBrow,
		V3(-p.EyeDistance/2, 0, zBrow),
		1.5*p.EyeSize, 0.7*p.EyeSize,
		0.15*math.Pi, 0.85*math.Pi, browSamples)
	rightBrow := Arc(CurveRightBrow,
		V3(p.EyeDistance/2, 0, zBrow),
		1.5*p.EyeSize, 0.7*p.EyeSize,
		0.15*math.Pi, 0.85*math.Pi, browSamples)

	bridge := Polyline(CurveNoseBridge, []Vec3{
		V3(0, 0, zEye+bridgeRiseRatio*p.FaceHeight),
		V3(0, 0, zNoseBase),
	}, noseSamples)

	return []Curve{mouth, leftBrow, rightBrow, bridge}
}
