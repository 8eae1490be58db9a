package atlas

import (
	"github.com/golang/freetype/truetype"
)

// widthTightening narrows measured glyph widths so adjacent letter
// quads sit slightly tucked together instead of spaced out.
const widthTightening = 0.8

// MeasureWidths returns the decal-unit width of each character: the
// measured glyph width relative to the font size. Characters with an
// empty outline, like the space, fall back to the advance so they
// still take room on the line.
func MeasureWidths(ttFont *truetype.Font, fontSize int, chars []rune) map[rune]float64 {
	face := truetype.NewFace(ttFont, &truetype.Options{
		Size:              float64(fontSize),
		GlyphCacheEntries: 1,
	})
	defer face.Close()

	widths := make(map[rune]float64, len(chars))

	for _, run := range chars {
		bounds, advance, ok := face.GlyphBounds(run)

		if !ok {
			continue
		}

		w := i2f(bounds.Max.X - bounds.Min.X)

		if w <= 0 {
			w = i2f(advance)
		}

		widths[run] = w / float64(fontSize) * widthTightening
	}

	return widths
}
