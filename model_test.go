package facewire

import (
	"math"
	"testing"
)

func curveByName(t *testing.T, curves []Curve, name CurveName) Curve {
	t.Helper()
	for _, c := range curves {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("curve %q not found", name)
	return Curve{}
}

func TestFaceModelProducesFiveCurves(t *testing.T) {
	curves := FaceModel(DefaultParameters())
	if len(curves) != 5 {
		t.Fatalf("FaceModel produced %d curves, want 5", len(curves))
	}

	want := []CurveName{CurveLeftEye, CurveRightEye, CurveNose, CurveJaw, CurveOutline}
	for _, name := range want {
		c := curveByName(t, curves, name)
		if len(c.Points) == 0 {
			t.Errorf("curve %q is empty", name)
		}
	}
}

func TestEyeSeparationMonotonic(t *testing.T) {
	cam := DefaultCamera()
	prev := -1.0
	for _, d := range []float64{20, 40, 60, 90, 140, 200} {
		p := DefaultParameters()
		p.EyeDistance = d

		curves := FaceModel(p)
		left := curveByName(t, curves, CurveLeftEye).Center()
		right := curveByName(t, curves, CurveRightEye).Center()

		sep := cam.ProjectPoint(right).X - cam.ProjectPoint(left).X
		if sep <= prev {
			t.Fatalf("eye separation %v at distance %v not greater than %v", sep, d, prev)
		}
		prev = sep
	}
}

func TestEyesSymmetricAtFront(t *testing.T) {
	curves := FaceModel(DefaultParameters())
	left := curveByName(t, curves, CurveLeftEye)
	right := curveByName(t, curves, CurveRightEye)

	lc := left.Center()
	rc := right.Center()
	if math.Abs(lc.Z-rc.Z) > 1e-9 {
		t.Errorf("eye centers at different heights: %v vs %v", lc.Z, rc.Z)
	}
	if math.Abs(lc.X+rc.X) > 1e-9 {
		t.Errorf("eye centers not mirrored: %v vs %v", lc.X, rc.X)
	}

	cam := DefaultCamera()
	lw := curveWidth(cam.ProjectCurve(left))
	rw := curveWidth(cam.ProjectCurve(right))
	if math.Abs(lw-rw) > 1e-9 {
		t.Errorf("front-view eye widths differ: %v vs %v", lw, rw)
	}
}

func TestNoseBelowEyeLevel(t *testing.T) {
	p := DefaultParameters()
	curves := FaceModel(p)
	nose := curveByName(t, curves, CurveNose)
	eyeZ := curveByName(t, curves, CurveLeftEye).Center().Z

	for _, pt := range nose.Points {
		if pt.Z >= eyeZ {
			t.Fatalf("nose point z=%v not below eye level %v", pt.Z, eyeZ)
		}
	}
}

func TestNoseWidthSpansParameter(t *testing.T) {
	p := DefaultParameters()
	nose := curveByName(t, FaceModel(p), CurveNose)

	minX := math.MaxFloat64
	maxX := -math.MaxFloat64
	for _, pt := range nose.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}
	if math.Abs((maxX-minX)-p.NoseWidth) > 1e-9 {
		t.Errorf("nose spans %v, want %v", maxX-minX, p.NoseWidth)
	}
}

func TestOutlineExtents(t *testing.T) {
	p := DefaultParameters()
	outline := curveByName(t, FaceModel(p), CurveOutline)

	var maxX, maxZ, maxDepth float64
	for _, pt := range outline.Points {
		maxX = math.Max(maxX, math.Abs(pt.X))
		maxZ = math.Max(maxZ, math.Abs(pt.Z))
		maxDepth = math.Max(maxDepth, math.Abs(pt.Y))
	}
	if math.Abs(maxX-p.JawWidth/2) > 1e-9 {
		t.Errorf("outline half-width %v, want %v", maxX, p.JawWidth/2)
	}
	if math.Abs(maxZ-p.FaceHeight/2) > 1e-9 {
		t.Errorf("outline half-height %v, want %v", maxZ, p.FaceHeight/2)
	}
	if maxDepth > p.FaceDepth/2+1e-9 {
		t.Errorf("outline depth %v exceeds radius %v", maxDepth, p.FaceDepth/2)
	}
}

func TestJawWithinWidth(t *testing.T) {
	p := DefaultParameters()
	jaw := curveByName(t, FaceModel(p), CurveJaw)

	for _, pt := range jaw.Points {
		if math.Abs(pt.X) > p.JawWidth/2+1e-9 {
			t.Fatalf("jaw point x=%v outside half-width %v", pt.X, p.JawWidth/2)
		}
	}

	// The jaw is the lower half: no point rises above the nose base.
	zEye := eyeLevelRatio * p.FaceHeight
	zNoseBase := zEye - math.Min(p.NoseHeight, maxNoseRatio*p.FaceHeight)
	for _, pt := range jaw.Points {
		if pt.Z > zNoseBase+1e-9 {
			t.Fatalf("jaw point z=%v above nose base %v", pt.Z, zNoseBase)
		}
	}
}

func TestJawStaysInsideOutline(t *testing.T) {
	// The chin drop is clamped so the jaw arc never protrudes below the
	// face outline, which would shift the drawn bounding box off center.
	for _, tc := range []struct {
		noseHeight, faceHeight float64
	}{
		{8, 60}, {40, 140}, {100, 140}, {100, 280}, {40, 60},
	} {
		p := DefaultParameters()
		p.NoseHeight = tc.noseHeight
		p.FaceHeight = tc.faceHeight

		jaw := curveByName(t, FaceModel(p), CurveJaw)
		for _, pt := range jaw.Points {
			if pt.Z < -p.FaceHeight/2-1e-9 {
				t.Fatalf("noseHeight=%v faceHeight=%v: jaw point z=%v below outline bottom %v",
					tc.noseHeight, tc.faceHeight, pt.Z, -p.FaceHeight/2)
			}
		}
	}

	// At defaults the chin rests exactly on the outline bottom.
	jaw := curveByName(t, FaceModel(DefaultParameters()), CurveJaw)
	minZ := math.MaxFloat64
	for _, pt := range jaw.Points {
		minZ = math.Min(minZ, pt.Z)
	}
	if math.Abs(minZ-(-70)) > 1e-9 {
		t.Errorf("default chin at z=%v, want -70", minZ)
	}
}

func TestEyeTiltSymmetricAndBounded(t *testing.T) {
	p := DefaultParameters()
	tilt := eyeTilt(p)
	if tilt <= 0 || tilt >= math.Pi/2 {
		t.Errorf("eye tilt %v outside (0, pi/2)", tilt)
	}

	p.FaceDepth = 0
	if got := eyeTilt(p); got != 0 {
		t.Errorf("flat face has tilt %v, want 0", got)
	}

	// Eyes wider than the face clamp instead of producing NaN.
	p = DefaultParameters()
	p.EyeDistance = 200
	p.JawWidth = 40
	if got := eyeTilt(p); math.IsNaN(got) {
		t.Error("extreme eye distance produced NaN tilt")
	}
}

func TestDetailCurves(t *testing.T) {
	p := DefaultParameters()
	curves := DetailCurves(p)
	if len(curves) != 4 {
		t.Fatalf("DetailCurves produced %d curves, want 4", len(curves))
	}
	for _, name := range []CurveName{CurveMouth, CurveLeftBrow, CurveRightBrow, CurveNoseBridge} {
		if c := curveByName(t, curves, name); len(c.Points) == 0 {
			t.Errorf("curve %q is empty", name)
		}
	}

	// The mouth spans 0.8 of the jaw width.
	mouth := curveByName(t, curves, CurveMouth)
	minX := math.MaxFloat64
	maxX := -math.MaxFloat64
	for _, pt := range mouth.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}
	if math.Abs((maxX-minX)-0.8*p.JawWidth) > 1e-9 {
		t.Errorf("mouth spans %v, want %v", maxX-minX, 0.8*p.JawWidth)
	}
}
