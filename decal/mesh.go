// Package decal lays out flat textured quads that spell a text by
// sampling per-character rectangles from a glyph atlas, and writes
// the joined result as Wavefront geometry.
package decal

import "github.com/g3n/engine/math32"

// Mesh is a flat quad soup with a single UV layer. Quads index into
// Positions and UVs, which always have the same length.
type Mesh struct {
	Positions []math32.Vector3
	UVs       []math32.Vector2
	Quads     [][4]int
}

// AddQuad appends four corners with their texture coordinates as one
// face. Corners are expected in bottom-left, bottom-right, top-right,
// top-left order.
func (m *Mesh) AddQuad(positions [4]math32.Vector3, uvs [4]math32.Vector2) {
	base := len(m.Positions)
	m.Positions = append(m.Positions, positions[:]...)
	m.UVs = append(m.UVs, uvs[:]...)
	m.Quads = append(m.Quads, [4]int{base, base + 1, base + 2, base + 3})
}

// Join absorbs the geometry of the given meshes into the receiver.
func (m *Mesh) Join(others ...*Mesh) {
	for _, other := range others {
		base := len(m.Positions)
		m.Positions = append(m.Positions, other.Positions...)
		m.UVs = append(m.UVs, other.UVs...)

		for _, quad := range other.Quads {
			m.Quads = append(m.Quads, [4]int{
				quad[0] + base, quad[1] + base, quad[2] + base, quad[3] + base,
			})
		}
	}
}

// Center returns the center of the mesh's bounding box.
func (m *Mesh) Center() math32.Vector3 {
	if len(m.Positions) == 0 {
		return math32.Vector3{}
	}

	min := m.Positions[0]
	max := m.Positions[0]

	for _, p := range m.Positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	return math32.Vector3{
		X: (min.X + max.X) / 2,
		Y: (min.Y + max.Y) / 2,
		Z: (min.Z + max.Z) / 2,
	}
}

// Translate moves every vertex by delta.
func (m *Mesh) Translate(delta *math32.Vector3) {
	for i := range m.Positions {
		m.Positions[i].Add(delta)
	}
}

// Scale multiplies every vertex by the given factor.
func (m *Mesh) Scale(factor float32) {
	for i := range m.Positions {
		m.Positions[i].MultiplyScalar(factor)
	}
}

// Rotate applies the quaternion to every vertex.
func (m *Mesh) Rotate(q *math32.Quaternion) {
	for i := range m.Positions {
		m.Positions[i].ApplyQuaternion(q)
	}
}
