package raster

import "math"

// Supersampling factor for anti-aliased fills: 4 vertical subscanlines per
// pixel row, with exact horizontal span overlap per subscanline.
const supersample = 4

// fillAA rasterizes one polygon row by row, accumulating fractional
// coverage in a per-row buffer and blending each touched pixel once.
// It is a compact rewrite of the supersampling blitter approach: vertical
// coverage comes from the subscanline count, horizontal coverage from the
// exact overlap of each span with the pixel's unit interval.
func (r *Rasterizer) fillAA(pm AAPixmap, edges []Edge, y0, y1 int, color RGBA) {
	for y := y0; y < y1; y++ {
		xTouchMin, xTouchMax := r.width, 0

		for sub := 0; sub < supersample; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/supersample
			r.scanline(edges, scanY)

			for i := 0; i+1 < len(r.crossings); i += 2 {
				x1 := r.crossings[i].x
				x2 := r.crossings[i+1].x
				if x1 > x2 {
					x1, x2 = x2, x1
				}
				if x1 < 0 {
					x1 = 0
				}
				if x2 > float64(r.width) {
					x2 = float64(r.width)
				}
				if x1 >= x2 {
					continue
				}

				ix1 := int(math.Floor(x1))
				ix2 := int(math.Ceil(x2))
				if ix1 < xTouchMin {
					xTouchMin = ix1
				}
				if ix2 > xTouchMax {
					xTouchMax = ix2
				}
				for ix := ix1; ix < ix2; ix++ {
					left := math.Max(x1, float64(ix))
					right := math.Min(x2, float64(ix+1))
					if right > left {
						r.coverage[ix] += (right - left) / supersample
					}
				}
			}
		}

		// Blend and reset only the touched range.
		for x := xTouchMin; x < xTouchMax; x++ {
			cov := r.coverage[x]
			if cov > 0 {
				if cov > 1 {
					cov = 1
				}
				pm.BlendPixel(x, y, color, uint8(cov*255+0.5))
				r.coverage[x] = 0
			}
		}
	}
}
