package atlas

// UVRect is a normalized texture rectangle into the atlas. V grows
// upwards, the way mesh UV layers expect, so the first grid cell
// maps to the top-left corner of the unit square.
type UVRect struct {
	MinU float64
	MinV float64
	MaxU float64
	MaxV float64
}

// Corners lists the rectangle corners in quad winding order:
// bottom-left, bottom-right, top-right, top-left.
func (r UVRect) Corners() [4][2]float64 {
	return [4][2]float64{
		{r.MinU, r.MinV},
		{r.MaxU, r.MinV},
		{r.MaxU, r.MaxV},
		{r.MinU, r.MaxV},
	}
}

// UVRect returns the normalized texture rectangle of the i-th cell.
// Across all cell indexes the rectangles tile the unit square with
// no gaps and no overlaps.
func (g Grid) UVRect(i int) UVRect {
	col := i % g.Cols
	row := i / g.Cols

	return UVRect{
		MinU: float64(col) / float64(g.Cols),
		MaxU: float64(col+1) / float64(g.Cols),
		MinV: 1 - float64(row+1)/float64(g.Rows),
		MaxV: 1 - float64(row)/float64(g.Rows),
	}
}

// UVMapping assigns one texture rectangle per character, in cell
// order. The mapping has exactly one entry per character.
func UVMapping(chars []rune, g Grid) (map[rune]UVRect, error) {
	if err := g.Validate(len(chars)); err != nil {
		return nil, err
	}

	mapping := make(map[rune]UVRect, len(chars))

	for i, run := range chars {
		mapping[run] = g.UVRect(i)
	}

	return mapping, nil
}
