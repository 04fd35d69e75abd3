package topology

// Male returns the male mask: a coarse landmark set whose proportions
// roughly follow the male golden-ratio mask, symmetric about the vertical
// axis. Depth (y) is zero for every base landmark; the face_depth slider
// scales it during deformation.
func Male() Topology {
	return Topology{
		Name: "male",
		Points: map[string]Point{
			// Outer head contour
			"top":      {0.0, 0.0, 0.95},
			"temple_l": {-0.65, 0.0, 0.75},
			"cheek_l":  {-0.78, 0.0, 0.10},
			"jaw_l":    {-0.55, 0.0, -0.55},
			"chin":     {0.0, 0.0, -0.78},
			"jaw_r":    {0.55, 0.0, -0.55},
			"cheek_r":  {0.78, 0.0, 0.10},
			"temple_r": {0.65, 0.0, 0.75},

			// Nose ridge and base
			"nose_top":  {0.0, 0.0, 0.55},
			"nose_mid":  {0.0, 0.0, 0.25},
			"nose_base": {0.0, 0.0, 0.05},
			"nostril_l": {-0.12, 0.0, 0.02},
			"nostril_r": {0.12, 0.0, 0.02},

			// Mouth
			"mouth_l":   {-0.28, 0.0, -0.25},
			"mouth_r":   {0.28, 0.0, -0.25},
			"mouth_top": {0.0, 0.0, -0.20},
			"mouth_bot": {0.0, 0.0, -0.33},

			// Brows
			"brow_l": {-0.35, 0.0, 0.45},
			"brow_r": {0.35, 0.0, 0.45},

			// Eye centres, drawn separately as circles
			"eye_c_l": {-0.28, 0.0, 0.35},
			"eye_c_r": {0.28, 0.0, 0.35},
		},
		Edges: outlineEdges(),
		Eyes: map[string]Eye{
			"left":  {CenterKey: "eye_c_l", Radius: 0.11},
			"right": {CenterKey: "eye_c_r", Radius: 0.11},
		},
	}
}
