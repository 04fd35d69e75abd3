// Package topology defines landmark-graph face variants: fixed sets of
// named 3D points connected by straight edges, with circular eyes drawn
// separately. The coordinates approximate the proportions of the Marquardt
// "Repose Frontal" beauty mask in a normalized space (face half-height 1.0,
// origin at the face center, x right, y depth toward the viewer, z up).
//
// A Topology is deformed along semantic axes (eye distance, jaw width, nose
// proportions) by Deform, which converts the normalized mask into model
// units compatible with the analytic face model.
package topology

// Point is a location in normalized mask space.
type Point struct {
	X, Y, Z float64
}

// Edge connects two named landmarks with a straight segment.
type Edge struct {
	From, To string
}

// Eye places a circular eye outline at a named landmark.
type Eye struct {
	CenterKey string
	Radius    float64 // in mask units, calibrated to an eye_size of 0.12
}

// Topology is one complete landmark graph. The zero value is not useful;
// start from Male or Female. Deform never mutates the base maps.
type Topology struct {
	Name   string
	Points map[string]Point
	Edges  []Edge
	Eyes   map[string]Eye
}

// Mask calibration constants shared by the deformation logic.
const (
	// maskJawSpan is the cheek-to-cheek width of the male mask, the
	// baseline the jaw_width slider scales against.
	maskJawSpan = 1.56

	// maskEyeSize is the eye_size value the mask eye radii are
	// calibrated for.
	maskEyeSize = 0.12
)

// jawGroup lists the lateral landmarks scaled by the jaw width slider.
var jawGroup = []string{
	"temple_l", "cheek_l", "jaw_l",
	"temple_r", "cheek_r", "jaw_r",
}

// outlineEdges builds the shared head-contour, nose, mouth and brow edge
// list; both masks use the same connectivity.
func outlineEdges() []Edge {
	return []Edge{
		// Head outline
		{"top", "temple_l"}, {"temple_l", "cheek_l"}, {"cheek_l", "jaw_l"},
		{"jaw_l", "chin"}, {"chin", "jaw_r"}, {"jaw_r", "cheek_r"},
		{"cheek_r", "temple_r"}, {"temple_r", "top"},

		// Nose
		{"nose_top", "nose_mid"}, {"nose_mid", "nose_base"},
		{"nostril_l", "nose_base"}, {"nostril_r", "nose_base"},

		// Mouth
		{"mouth_l", "mouth_top"}, {"mouth_top", "mouth_r"},
		{"mouth_l", "mouth_bot"}, {"mouth_bot", "mouth_r"},

		// Brows
		{"brow_l", "nose_top"}, {"brow_r", "nose_top"},
	}
}
