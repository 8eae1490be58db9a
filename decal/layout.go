package decal

import (
	"errors"
	"strings"
	"unicode"

	"github.com/g3n/engine/math32"

	"github.com/michal-juzhak/decalnik/atlas"
)

var (
	// ErrNoText means the decal was asked to spell an empty string.
	ErrNoText = errors.New("no text content")
	// ErrNoGlyphs means none of the text's characters exist in the atlas.
	ErrNoGlyphs = errors.New("text contains no atlas characters")
)

// normalOffset keeps the finished decal from z-fighting with the
// surface it sits on.
const normalOffset = 0.001

// Layout places one quad per text character, sized by the measured
// character widths and textured through the atlas UV mapping, then
// positions the joined mesh in the scene.
type Layout struct {
	UVs    map[rune]atlas.UVRect
	Widths map[rune]float64

	Scale    float32
	Position math32.Vector3
	Rotation math32.Vector3 // euler angles, radians
}

// Build spells out the text as a single quad mesh. Lines are split on
// '\n' (the literal sequence "\n" counts too) and stacked one unit
// apart, each centered on the anchor. Characters without an atlas
// cell are skipped; lowercase input matches uppercase cells.
func (l *Layout) Build(text string) (*Mesh, error) {
	if text == "" {
		return nil, ErrNoText
	}

	text = strings.ReplaceAll(text, `\n`, "\n")
	mesh := &Mesh{}

	for lineIdx, line := range strings.Split(text, "\n") {
		y := -float64(lineIdx)
		cursor := -l.lineWidth(line) / 2

		for _, run := range line {
			run = l.lookupRune(run)
			uv, ok := l.UVs[run]

			if !ok {
				continue
			}

			w := l.Widths[run]
			mesh.Join(charQuad(cursor, y, w, uv))
			cursor += w
		}
	}

	if len(mesh.Positions) == 0 {
		return nil, ErrNoGlyphs
	}

	l.place(mesh)

	return mesh, nil
}

// lineWidth sums the measured widths of the line's characters that
// exist in the atlas.
func (l *Layout) lineWidth(line string) float64 {
	var total float64

	for _, run := range line {
		run = l.lookupRune(run)

		if _, ok := l.UVs[run]; ok {
			total += l.Widths[run]
		}
	}

	return total
}

func (l *Layout) lookupRune(run rune) rune {
	if _, ok := l.UVs[run]; ok {
		return run
	}

	return unicode.ToUpper(run)
}

// charQuad builds a unit-height quad of the given width. The UV span
// is squeezed horizontally about the cell center by the same width,
// so narrow glyphs keep their aspect instead of stretching across
// the whole cell.
func charQuad(x, y, w float64, uv atlas.UVRect) *Mesh {
	uvCenter := (uv.MinU + uv.MaxU) / 2
	minU := uvCenter + (uv.MinU-uvCenter)*w
	maxU := uvCenter + (uv.MaxU-uvCenter)*w

	quad := &Mesh{}
	quad.AddQuad(
		[4]math32.Vector3{
			{X: float32(x), Y: float32(y) - 0.5},
			{X: float32(x + w), Y: float32(y) - 0.5},
			{X: float32(x + w), Y: float32(y) + 0.5},
			{X: float32(x), Y: float32(y) + 0.5},
		},
		[4]math32.Vector2{
			{X: float32(minU), Y: float32(uv.MinV)},
			{X: float32(maxU), Y: float32(uv.MinV)},
			{X: float32(maxU), Y: float32(uv.MaxV)},
			{X: float32(minU), Y: float32(uv.MaxV)},
		},
	)

	return quad
}

// place recenters the joined mesh on its bounding box, applies the
// configured rotation, scale and position, and nudges the result
// along its local normal so it doesn't z-fight the target surface.
func (l *Layout) place(mesh *Mesh) {
	center := mesh.Center()
	mesh.Translate(center.Negate())

	scale := l.Scale

	if scale == 0 {
		scale = 1
	}

	mesh.Scale(scale)

	rotation := l.Rotation
	q := (&math32.Quaternion{}).SetFromEuler(&rotation)
	mesh.Rotate(q)

	normal := math32.Vector3{Z: 1}
	normal.ApplyQuaternion(q).MultiplyScalar(normalOffset)

	position := l.Position
	position.Add(&normal)
	mesh.Translate(&position)
}
