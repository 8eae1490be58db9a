// Package atlas rasterizes font glyphs onto a fixed cell grid and
// derives the texture rectangles and character widths a text decal
// needs to sample from the resulting bitmap.
package atlas

import "fmt"

// Grid is the fixed cell layout of an atlas: characters take cells
// left to right, top to bottom.
type Grid struct {
	Cols int
	Rows int
}

func (g Grid) Cells() int { return g.Cols * g.Rows }

// Validate checks that the grid can hold the requested number of
// characters.
func (g Grid) Validate(charCount int) error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("invalid cell grid %dx%d", g.Cols, g.Rows)
	}

	if charCount > g.Cells() {
		return fmt.Errorf("cell grid %dx%d holds %d cells but %d characters requested",
			g.Cols, g.Rows, g.Cells(), charCount)
	}

	return nil
}

// CellOrigin returns the top-left pixel corner of the i-th cell in
// an atlas of the given dimensions.
func (g Grid) CellOrigin(i int, atlasWidth, atlasHeight float64) (float64, float64) {
	col := i % g.Cols
	row := i / g.Cols
	return float64(col) * atlasWidth / float64(g.Cols),
		float64(row) * atlasHeight / float64(g.Rows)
}

// CellSize returns the pixel dimensions of a single cell.
func (g Grid) CellSize(atlasWidth, atlasHeight float64) (float64, float64) {
	return atlasWidth / float64(g.Cols), atlasHeight / float64(g.Rows)
}
