package node

import "github.com/faceforge/facewire"

// Channels is the channel count of produced tensors (RGB; alpha dropped).
const Channels = 3

// Tensor is an image buffer in BHWC layout with float32 values in [0, 1],
// the convention image-conditioning hosts consume. Batch size is always 1.
type Tensor struct {
	Data  []float32
	Shape [4]int // batch, height, width, channels
}

// FromPixmap converts a rendered pixmap into a 1xHxWx3 tensor, scaling
// 8-bit channels into [0, 1] and dropping alpha.
func FromPixmap(pm *facewire.Pixmap) Tensor {
	w, h := pm.Width(), pm.Height()
	data := make([]float32, h*w*Channels)
	src := pm.Data()

	for i := 0; i < w*h; i++ {
		data[i*Channels+0] = float32(src[i*4+0]) / 255
		data[i*Channels+1] = float32(src[i*4+1]) / 255
		data[i*Channels+2] = float32(src[i*4+2]) / 255
	}
	return Tensor{
		Data:  data,
		Shape: [4]int{1, h, w, Channels},
	}
}

// At returns the value at (y, x, c) in the first batch element.
func (t Tensor) At(y, x, c int) float32 {
	w := t.Shape[2]
	return t.Data[(y*w+x)*Channels+c]
}
