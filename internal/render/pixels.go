package render

import "image/color"

// FillPalette converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry; an empty palette clears the
// buffer to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Highlight tints the pixel at index i toward col by the given weight in
// [0, 1].
func Highlight(buf []byte, i int, col color.RGBA, weight float64) {
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	base := i * 4
	if base < 0 || base+3 >= len(buf) {
		return
	}
	inv := 1 - weight
	buf[base+0] = uint8(float64(buf[base+0])*inv + float64(col.R)*weight + 0.5)
	buf[base+1] = uint8(float64(buf[base+1])*inv + float64(col.G)*weight + 0.5)
	buf[base+2] = uint8(float64(buf[base+2])*inv + float64(col.B)*weight + 0.5)
	buf[base+3] = 255
}
