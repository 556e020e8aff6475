package assets

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

// Font sizes in pixels for the LCD banner and the button labels.
const (
	BannerSize = 32
	LabelSize  = 16
)

var boldFont *truetype.Font

func init() {
	f, err := truetype.Parse(gobold.TTF)
	if err == nil {
		boldFont = f
	}
}

// BoldFace returns a bold face at the given pixel size. When the embedded
// font cannot be parsed it falls back to basicfont.Face7x13.
func BoldFace(size float64) font.Face {
	if boldFont == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(boldFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
