// Package assets loads and prepares the static images the simulator draws:
// the chassis background, the LCD placeholder and the font faces.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"panel-sim/internal/core"

	xdraw "golang.org/x/image/draw"
)

// DefaultBackgroundPath is the background image location relative to the
// working directory.
const DefaultBackgroundPath = "docs/AkiraSim.png"

// LoadBackground decodes the image at path and scales it to size. The
// result is never modified afterwards.
func LoadBackground(path string, size core.Size) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load background %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %q: %w", path, err)
	}
	return ScaleTo(src, size), nil
}

// ScaleTo resamples src to exactly size using a Catmull-Rom filter.
func ScaleTo(src image.Image, size core.Size) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
