package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawTextCentered draws s so that its line box is centered on center.
func DrawTextCentered(dst draw.Image, face font.Face, s string, center image.Point, c color.Color) {
	if face == nil || s == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	w := d.MeasureString(s).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	top := center.Y - h/2
	d.Dot = fixed.P(center.X-w/2, top+m.Ascent.Ceil())
	d.DrawString(s)
}
