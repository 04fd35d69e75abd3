package topology

// Female returns the female mask: the same connectivity as the male mask
// with a narrower jaw, smaller nose and slightly larger eyes.
func Female() Topology {
	return Topology{
		Name: "female",
		Points: map[string]Point{
			"top":      {0.0, 0.0, 0.98},
			"temple_l": {-0.60, 0.0, 0.78},
			"cheek_l":  {-0.72, 0.0, 0.12},
			"jaw_l":    {-0.50, 0.0, -0.55},
			"chin":     {0.0, 0.0, -0.75},
			"jaw_r":    {0.50, 0.0, -0.55},
			"cheek_r":  {0.72, 0.0, 0.12},
			"temple_r": {0.60, 0.0, 0.78},

			"nose_top":  {0.0, 0.0, 0.58},
			"nose_mid":  {0.0, 0.0, 0.28},
			"nose_base": {0.0, 0.0, 0.06},
			"nostril_l": {-0.10, 0.0, 0.03},
			"nostril_r": {0.10, 0.0, 0.03},

			"mouth_l":   {-0.26, 0.0, -0.23},
			"mouth_r":   {0.26, 0.0, -0.23},
			"mouth_top": {0.0, 0.0, -0.19},
			"mouth_bot": {0.0, 0.0, -0.31},

			"brow_l": {-0.33, 0.0, 0.47},
			"brow_r": {0.33, 0.0, 0.47},

			"eye_c_l": {-0.27, 0.0, 0.36},
			"eye_c_r": {0.27, 0.0, 0.36},
		},
		Edges: outlineEdges(),
		Eyes: map[string]Eye{
			"left":  {CenterKey: "eye_c_l", Radius: 0.12},
			"right": {CenterKey: "eye_c_r", Radius: 0.12},
		},
	}
}
