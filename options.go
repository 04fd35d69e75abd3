package facewire

import "github.com/faceforge/facewire/topology"

// RenderOption configures a render call beyond its FaceParameters.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: orthographic camera, black background, white lines
//	pm, err := facewire.Render(params)
//
//	// Perspective projection with detail curves
//	pm, err := facewire.Render(params,
//	    facewire.WithProjection(facewire.ProjectionPerspective),
//	    facewire.WithDetail())
type RenderOption func(*renderOptions)

// renderOptions holds the resolved configuration of one render call.
type renderOptions struct {
	background RGBA
	lineColor  RGBA
	camera     *Camera
	projection Projection
	renderer   Renderer
	detail     bool
	topology   *topology.Topology
}

// defaultRenderOptions returns the default configuration: black background,
// white wireframe, orthographic projection, software renderer.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		background: Black,
		lineColor:  White,
		projection: ProjectionOrthographic,
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c RGBA) RenderOption {
	return func(o *renderOptions) {
		o.background = c
	}
}

// WithLineColor sets the wireframe stroke color.
func WithLineColor(c RGBA) RenderOption {
	return func(o *renderOptions) {
		o.lineColor = c
	}
}

// WithCamera replaces the camera derived from the parameters' yaw and pitch
// entirely, including projection mode, distance and field of view.
func WithCamera(c Camera) RenderOption {
	return func(o *renderOptions) {
		cam := c
		o.camera = &cam
	}
}

// WithProjection selects the projection mode while keeping yaw and pitch
// from the parameters. Ignored if WithCamera is also given.
func WithProjection(p Projection) RenderOption {
	return func(o *renderOptions) {
		o.projection = p
	}
}

// WithRenderer sets a custom rasterizer backend.
//
// Example:
//
//	pm, err := facewire.Render(params,
//	    facewire.WithRenderer(facewire.NewVectorRenderer()))
func WithRenderer(r Renderer) RenderOption {
	return func(o *renderOptions) {
		o.renderer = r
	}
}

// WithDetail adds the secondary feature curves (mouth, brows, nose bridge)
// to the five core curves.
func WithDetail() RenderOption {
	return func(o *renderOptions) {
		o.detail = true
	}
}

// WithTopology renders a landmark-graph face (see the topology package)
// instead of the analytic curve model. The graph is deformed by the same
// proportion parameters before projection.
func WithTopology(t topology.Topology) RenderOption {
	return func(o *renderOptions) {
		topo := t
		o.topology = &topo
	}
}
