package atlas

import "testing"

func TestMeasureWidths(t *testing.T) {
	ttFont := testFont(t)
	widths := MeasureWidths(ttFont, 32, []rune("IW ."))

	if len(widths) != 4 {
		t.Fatalf("got %d widths, want 4", len(widths))
	}

	for run, w := range widths {
		if w <= 0 {
			t.Fatalf("character %q measured with non-positive width %v", run, w)
		}
	}

	if widths['W'] <= widths['I'] {
		t.Fatalf("'W' (%v) should be wider than 'I' (%v)", widths['W'], widths['I'])
	}

	// The space has an empty outline and must fall back to its
	// advance instead of collapsing to zero.
	if widths[' '] <= 0 {
		t.Fatalf("space width must come from the advance, got %v", widths[' '])
	}
}

func TestMeasureWidthsScaleWithFontSize(t *testing.T) {
	ttFont := testFont(t)

	small := MeasureWidths(ttFont, 16, []rune("M"))
	large := MeasureWidths(ttFont, 64, []rune("M"))

	// Widths are relative to the font size, so they should stay
	// roughly stable across sizes.
	ratio := large['M'] / small['M']

	if ratio < 0.8 || ratio > 1.25 {
		t.Fatalf("relative width drifted across font sizes: 16pt=%v 64pt=%v",
			small['M'], large['M'])
	}
}
