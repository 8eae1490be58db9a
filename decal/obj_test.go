package decal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/g3n/engine/math32"
)

func TestWriteOBJ(t *testing.T) {
	mesh := &Mesh{}
	mesh.AddQuad(
		[4]math32.Vector3{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
		[4]math32.Vector2{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
	)

	var buf bytes.Buffer

	if err := WriteOBJ(&buf, mesh, "sign", "sign.mtl", "sign"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if lines[0] != "mtllib sign.mtl" || lines[1] != "o sign" {
		t.Fatalf("unexpected header: %q, %q", lines[0], lines[1])
	}

	var vCount, vtCount int
	var faceLine string

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "vt "):
			vtCount++
		case strings.HasPrefix(line, "f "):
			faceLine = line
		}
	}

	if vCount != 4 || vtCount != 4 {
		t.Fatalf("got %d positions and %d UVs, want 4 and 4", vCount, vtCount)
	}

	if faceLine != "f 1/1 2/2 3/3 4/4" {
		t.Fatalf("face indexes must be 1-based: %q", faceLine)
	}

	if !strings.Contains(buf.String(), "usemtl sign") {
		t.Fatal("material reference missing")
	}
}

func TestWriteMTL(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteMTL(&buf, "sign", "sign.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "newmtl sign") {
		t.Fatal("material name missing")
	}

	// The atlas drives both the diffuse color and the alpha clip.
	if !strings.Contains(out, "map_Kd sign.png") || !strings.Contains(out, "map_d sign.png") {
		t.Fatalf("texture maps missing:\n%s", out)
	}
}

func TestMeshJoinReindexesQuads(t *testing.T) {
	a := &Mesh{}
	a.AddQuad(
		[4]math32.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[4]math32.Vector2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
	)

	b := &Mesh{}
	b.AddQuad(
		[4]math32.Vector3{{X: 2}, {X: 3}, {X: 3, Y: 1}, {X: 2, Y: 1}},
		[4]math32.Vector2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
	)

	a.Join(b)

	if len(a.Positions) != 8 || len(a.UVs) != 8 || len(a.Quads) != 2 {
		t.Fatalf("join result: %d positions, %d UVs, %d quads",
			len(a.Positions), len(a.UVs), len(a.Quads))
	}

	if a.Quads[1] != [4]int{4, 5, 6, 7} {
		t.Fatalf("joined quad not reindexed: %v", a.Quads[1])
	}
}
