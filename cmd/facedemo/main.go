// Command facedemo renders a parametric face wireframe to a PNG file.
package main

import (
	"flag"
	"log"

	"github.com/faceforge/facewire"
	"github.com/faceforge/facewire/topology"
)

func main() {
	var (
		width       = flag.Int("width", 512, "image width")
		height      = flag.Int("height", 512, "image height")
		yaw         = flag.Float64("yaw", 0, "yaw in degrees")
		pitch       = flag.Float64("pitch", 0, "pitch in degrees")
		thickness   = flag.Float64("thickness", 2, "line thickness in pixels")
		perspective = flag.Bool("perspective", false, "use perspective projection")
		detail      = flag.Bool("detail", false, "draw mouth, brows and nose bridge")
		mask        = flag.String("mask", "", "render a landmark mask instead: male or female")
		output      = flag.String("output", "face.png", "output file")
	)
	flag.Parse()

	params := facewire.DefaultParameters()
	params.ImageWidth = *width
	params.ImageHeight = *height
	params.Yaw = *yaw
	params.Pitch = *pitch
	params.LineThickness = *thickness

	var opts []facewire.RenderOption
	if *perspective {
		opts = append(opts, facewire.WithProjection(facewire.ProjectionPerspective))
	}
	if *detail {
		opts = append(opts, facewire.WithDetail())
	}
	switch *mask {
	case "male":
		opts = append(opts, facewire.WithTopology(topology.Male()))
	case "female":
		opts = append(opts, facewire.WithTopology(topology.Female()))
	case "":
	default:
		log.Fatalf("Unknown mask %q (want male or female)", *mask)
	}

	pm, err := facewire.Render(params, opts...)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Face saved to %s (%dx%d)\n", *output, *width, *height)
}
