package atlas

import (
	"math"
	"testing"
)

const uvEpsilon = 1e-9

func TestUVRectPlacement(t *testing.T) {
	grid := Grid{Cols: 4, Rows: 2}

	// Cell 5 sits in the second column of the second row, which
	// maps to the lower half of the texture.
	rect := grid.UVRect(5)

	expected := UVRect{MinU: 0.25, MaxU: 0.5, MinV: 0, MaxV: 0.5}

	if rect != expected {
		t.Fatalf("cell 5 of a 4x2 grid: got %+v, want %+v", rect, expected)
	}

	// The first cell maps to the top-left corner of the unit square.
	rect = grid.UVRect(0)

	if rect.MinU != 0 || rect.MaxV != 1 {
		t.Fatalf("cell 0 should touch the top-left corner, got %+v", rect)
	}
}

func TestUVRectsTileUnitSquare(t *testing.T) {
	grids := []Grid{
		{Cols: 1, Rows: 1},
		{Cols: 8, Rows: 8},
		{Cols: 3, Rows: 5},
		{Cols: 5, Rows: 3},
	}

	for _, grid := range grids {
		rects := make([]UVRect, grid.Cells())
		var totalArea float64

		for i := range rects {
			rect := grid.UVRect(i)
			rects[i] = rect

			if rect.MinU < -uvEpsilon || rect.MaxU > 1+uvEpsilon ||
				rect.MinV < -uvEpsilon || rect.MaxV > 1+uvEpsilon {
				t.Fatalf("grid %dx%d cell %d outside the unit square: %+v",
					grid.Cols, grid.Rows, i, rect)
			}

			if rect.MaxU <= rect.MinU || rect.MaxV <= rect.MinV {
				t.Fatalf("grid %dx%d cell %d is degenerate: %+v",
					grid.Cols, grid.Rows, i, rect)
			}

			totalArea += (rect.MaxU - rect.MinU) * (rect.MaxV - rect.MinV)
		}

		// Disjoint cells whose areas sum to 1 tile the square
		// with no gaps and no overlaps.
		if math.Abs(totalArea-1) > uvEpsilon {
			t.Fatalf("grid %dx%d cells cover area %v, want 1",
				grid.Cols, grid.Rows, totalArea)
		}

		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				overlapU := math.Min(rects[i].MaxU, rects[j].MaxU) -
					math.Max(rects[i].MinU, rects[j].MinU)
				overlapV := math.Min(rects[i].MaxV, rects[j].MaxV) -
					math.Max(rects[i].MinV, rects[j].MinV)

				if overlapU > uvEpsilon && overlapV > uvEpsilon {
					t.Fatalf("grid %dx%d cells %d and %d overlap: %+v vs %+v",
						grid.Cols, grid.Rows, i, j, rects[i], rects[j])
				}
			}
		}
	}
}

func TestUVRectCornerOrder(t *testing.T) {
	rect := UVRect{MinU: 0.25, MinV: 0.5, MaxU: 0.5, MaxV: 0.75}
	corners := rect.Corners()

	expected := [4][2]float64{
		{0.25, 0.5},
		{0.5, 0.5},
		{0.5, 0.75},
		{0.25, 0.75},
	}

	if corners != expected {
		t.Fatalf("corner order: got %v, want %v", corners, expected)
	}
}

func TestUVMappingOneRectPerCharacter(t *testing.T) {
	grid := Grid{Cols: 3, Rows: 2}
	chars := []rune("ABCDE")

	mapping, err := UVMapping(chars, grid)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mapping) != len(chars) {
		t.Fatalf("mapping has %d entries for %d characters", len(mapping), len(chars))
	}

	if mapping['A'] != grid.UVRect(0) || mapping['E'] != grid.UVRect(4) {
		t.Fatalf("characters not assigned in cell order: %+v", mapping)
	}
}

func TestUVMappingGridTooSmall(t *testing.T) {
	if _, err := UVMapping([]rune("ABCDE"), Grid{Cols: 2, Rows: 2}); err == nil {
		t.Fatal("expected an error for 5 characters on a 2x2 grid")
	}
}
