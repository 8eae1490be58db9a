package atlas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Config describes a single atlas bitmap.
type Config struct {
	Width          int
	Height         int
	Grid           Grid
	FontSize       int
	VerticalOffset int
	FontColor      color.Color
	Background     color.Color
	Characters     []rune
}

// Generate rasterizes one glyph per grid cell onto a bitmap of the
// configured dimensions. Each glyph is centered horizontally in its
// cell; vertically it sits at (cellH - fontSize)/2 minus the
// configured offset from the cell top.
func Generate(ttFont *truetype.Font, cfg Config) (*image.RGBA, error) {
	if err := cfg.Grid.Validate(len(cfg.Characters)); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	face := truetype.NewFace(ttFont, &truetype.Options{
		Size:              float64(cfg.FontSize),
		GlyphCacheEntries: 1,
	})
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.FontColor),
		Face: face,
	}

	cellW, cellH := cfg.Grid.CellSize(float64(cfg.Width), float64(cfg.Height))
	ascent := face.Metrics().Ascent

	for i, run := range cfg.Characters {
		bounds, _, ok := face.GlyphBounds(run)

		if !ok {
			continue
		}

		glyphW := i2f(bounds.Max.X - bounds.Min.X)

		x, y := cfg.Grid.CellOrigin(i, float64(cfg.Width), float64(cfg.Height))
		x += (cellW - glyphW) / 2
		y += (cellH-float64(cfg.FontSize))/2 - float64(cfg.VerticalOffset)

		// The dot is on the baseline; shift it so the left
		// bearing lands on the computed cell position.
		drawer.Dot = fixed.Point26_6{
			X: f2i(x) - bounds.Min.X,
			Y: f2i(y) + ascent,
		}
		drawer.DrawString(string(run))
	}

	return img, nil
}

func i2f(i fixed.Int26_6) float64 {
	return float64(i) / (1 << 6)
}

func f2i(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * (1 << 6))
}
