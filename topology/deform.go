package topology

import "math"

// Sliders holds the semantic deformation inputs, in the model units of the
// rendering core (the default face is 140 units tall).
type Sliders struct {
	EyeDistance float64
	EyeSize     float64
	NoseWidth   float64
	NoseHeight  float64
	JawWidth    float64
	FaceHeight  float64
	FaceDepth   float64
}

// Circle is a deformed eye outline in model units.
type Circle struct {
	Center Point
	Radius float64
}

// Deformed is a landmark graph after slider deformation, expressed in model
// units and ready for projection.
type Deformed struct {
	Points map[string]Point
	Edges  []Edge
	Eyes   []Circle
}

// Deform converts the normalized mask into model units and applies the
// semantic sliders: face height/depth scale every landmark, the jaw group
// scales laterally against the male-mask baseline, eye centers move to
// ±eye_distance/2, nostrils to ±nose_width/2, and the nose ridge stretches
// to nose_height below its top. The base topology is never mutated.
func Deform(t Topology, s Sliders) Deformed {
	hu := s.FaceHeight / 2
	du := s.FaceDepth / 2

	points := make(map[string]Point, len(t.Points))
	for k, p := range t.Points {
		points[k] = Point{X: p.X * hu, Y: p.Y * du, Z: p.Z * hu}
	}

	for _, k := range jawGroup {
		if p, ok := points[k]; ok {
			base := t.Points[k]
			p.X = signOf(base.X) * math.Abs(base.X) * s.JawWidth / maskJawSpan
			points[k] = p
		}
	}

	if l, ok := points["eye_c_l"]; ok {
		l.X = -math.Abs(s.EyeDistance) / 2
		points["eye_c_l"] = l
	}
	if r, ok := points["eye_c_r"]; ok {
		r.X = math.Abs(s.EyeDistance) / 2
		points["eye_c_r"] = r
	}

	for _, k := range []string{"nostril_l", "nostril_r"} {
		if p, ok := points[k]; ok {
			p.X = signOf(t.Points[k].X) * math.Abs(s.NoseWidth) / 2
			points[k] = p
		}
	}

	if top, ok := points["nose_top"]; ok {
		if mid, ok := points["nose_mid"]; ok {
			mid.Z = top.Z - 0.6*s.NoseHeight
			points["nose_mid"] = mid
		}
		if base, ok := points["nose_base"]; ok {
			base.Z = top.Z - s.NoseHeight
			points["nose_base"] = base
		}
	}

	eyes := make([]Circle, 0, len(t.Eyes))
	for _, side := range []string{"left", "right"} {
		eye, ok := t.Eyes[side]
		if !ok {
			continue
		}
		center, ok := points[eye.CenterKey]
		if !ok {
			continue
		}
		eyes = append(eyes, Circle{
			Center: center,
			Radius: eye.Radius / maskEyeSize * s.EyeSize,
		})
	}

	edges := make([]Edge, len(t.Edges))
	copy(edges, t.Edges)

	return Deformed{Points: points, Edges: edges, Eyes: eyes}
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
