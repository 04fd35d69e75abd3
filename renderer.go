package facewire

// Renderer rasterizes projected curves onto a pixmap. Implementations must
// clip to the pixmap bounds rather than reject out-of-bounds geometry.
type Renderer interface {
	// StrokePolyline draws connected line segments of the given width
	// through the points, with round joins and caps. A single point is
	// drawn as a dot of the stroke width.
	// Returns an error if the rendering operation fails.
	StrokePolyline(pm *Pixmap, points []Point, width float64, color RGBA) error
}
