package assets

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"panel-sim/internal/core"
	"panel-sim/internal/render"

	"golang.org/x/image/font"
)

// Placeholder colors and text for the simulated LCD.
var (
	LCDFill      = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	LCDTextColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// LCDBanner is the static text shown on the placeholder screen.
const LCDBanner = "AKIRA SIM"

// NewLCDPlaceholder renders the static LCD surface with the banner centered.
func NewLCDPlaceholder(size core.Size, face font.Face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(img, img.Rect, image.NewUniform(LCDFill), image.Point{}, draw.Src)
	render.DrawTextCentered(img, face, LCDBanner, image.Pt(size.W/2, size.H/2), LCDTextColor)
	return img
}

// LoadRGB565 reads a raw little-endian RGB565 framebuffer dump of exactly
// size pixels.
func LoadRGB565(path string, size core.Size) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lcd frame %q: %w", path, err)
	}
	img, err := DecodeRGB565(data, size)
	if err != nil {
		return nil, fmt.Errorf("load lcd frame %q: %w", path, err)
	}
	return img, nil
}

// DecodeRGB565 converts a little-endian RGB565 buffer to RGBA.
func DecodeRGB565(data []byte, size core.Size) (*image.RGBA, error) {
	want := 2 * size.W * size.H
	if len(data) != want {
		return nil, fmt.Errorf("rgb565 frame is %d bytes, want %d for %dx%d", len(data), want, size.W, size.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for i := 0; i < size.W*size.H; i++ {
		r, g, b := rgb565ToRGB888(binary.LittleEndian.Uint16(data[2*i:]))
		base := i * 4
		img.Pix[base+0] = r
		img.Pix[base+1] = g
		img.Pix[base+2] = b
		img.Pix[base+3] = 0xff
	}
	return img, nil
}

// rgb565ToRGB888 expands each channel and replicates its high bits into the
// low bits so full intensity maps to 0xff.
func rgb565ToRGB888(c uint16) (r, g, b uint8) {
	r = uint8(c>>11&0x1f) << 3
	g = uint8(c>>5&0x3f) << 2
	b = uint8(c&0x1f) << 3
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return r, g, b
}
