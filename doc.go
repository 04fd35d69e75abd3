// Package facewire renders a parametric face wireframe into a pixel buffer.
//
// # Overview
//
// facewire is a pure Go geometry-to-pixel converter: a handful of slider
// parameters (eye distance, nose width, jaw width, face height/depth, camera
// yaw/pitch) drive a fixed set of analytic 3D curves which are rotated,
// projected and stroked onto a blank canvas. It is designed as the core of a
// plugin node for visual pipeline hosts that condition image models on
// wireframe sketches.
//
// # Quick Start
//
//	import "github.com/faceforge/facewire"
//
//	params := facewire.DefaultParameters()
//	params.Yaw = 30
//
//	pm, err := facewire.Render(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("face.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Render, FaceParameters, Curve, Camera, Pixmap
//   - internal/raster: scanline rasterization with optional anti-aliasing
//   - topology: landmark-graph face variants (male/female masks)
//   - node: host-boundary adapter (parameter widgets, tensor conversion)
//
// # Coordinate System
//
// Model space is right-handed with the face centered at the origin:
//   - X increases toward the right ear
//   - Y increases toward the viewer (nose tip)
//   - Z increases upward (forehead)
//
// Canvas space uses standard raster coordinates: origin at top-left,
// Y increasing down. Yaw and pitch are given in degrees.
//
// # Concurrency
//
// Render is a pure function. Every call allocates its own curves and canvas,
// so concurrent renders never share state.
package facewire

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
