//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads composed RGBA frames into a GPU image and draws them.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads frame and draws it at the origin of dst. Frames of the wrong
// size are dropped.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame *image.RGBA) {
	if frame.Rect.Dx() != fp.w || frame.Rect.Dy() != fp.h || frame.Stride != 4*fp.w {
		return
	}
	fp.img.WritePixels(frame.Pix)
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
