package render

import (
	"image"
	"image/color"
)

// rgba converts c to 8-bit RGBA.
func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillCircle paints every pixel whose squared distance to center is below
// radius squared, the same rule the hit test uses. Pixels outside dst are
// skipped.
func fillCircle(dst *image.RGBA, center image.Point, radius int, c color.Color) {
	if radius <= 0 {
		return
	}
	col := rgba(c)
	r2 := radius * radius
	box := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1).Intersect(dst.Rect)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		dy := y - center.Y
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := x - center.X
			if dx*dx+dy*dy >= r2 {
				continue
			}
			base := dst.PixOffset(x, y)
			dst.Pix[base+0] = col.R
			dst.Pix[base+1] = col.G
			dst.Pix[base+2] = col.B
			dst.Pix[base+3] = col.A
		}
	}
}
