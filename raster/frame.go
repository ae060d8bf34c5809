package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	captionSize   = 12.0
	captionMargin = 8.0
)

var colorCaption = color.NRGBA{R: 180, G: 180, B: 180, A: 255}

// Composer flattens canvas frames onto an opaque background
type Composer struct {
	background color.Color
	face       font.Face
}

// NewComposer creates a composer; the caption font is loaded up front so a
// broken font fails before any frame is rendered
func NewComposer(background color.Color) (*Composer, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}

	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &Composer{
		background: background,
		face:       face,
	}, nil
}

// Compose draws src over the background and adds an optional caption in the
// bottom-left corner
func (c *Composer) Compose(src image.Image, caption string) image.Image {
	bounds := src.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetColor(c.background)
	dc.Clear()
	dc.DrawImage(src, 0, 0)

	if caption != "" {
		dc.SetFontFace(c.face)
		dc.SetColor(colorCaption)
		dc.DrawString(caption, captionMargin, float64(bounds.Dy())-captionMargin)
	}

	return dc.Image()
}

// SavePNG composes src and writes it to path
func (c *Composer) SavePNG(path string, src image.Image, caption string) error {
	if err := gg.SavePNG(path, c.Compose(src, caption)); err != nil {
		return fmt.Errorf("failed to save frame %s: %w", path, err)
	}
	return nil
}
