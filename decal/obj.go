package decal

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as Wavefront geometry with quad faces and
// a single UV channel. mtlLib names the companion .mtl file and
// material the entry inside it.
func WriteOBJ(w io.Writer, mesh *Mesh, name, mtlLib, material string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mtllib %s\n", mtlLib)
	fmt.Fprintf(bw, "o %s\n", name)

	for _, p := range mesh.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}

	fmt.Fprintf(bw, "usemtl %s\n", material)
	fmt.Fprintln(bw, "s off")

	// OBJ indexes are 1-based.
	for _, quad := range mesh.Quads {
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d %d/%d\n",
			quad[0]+1, quad[0]+1,
			quad[1]+1, quad[1]+1,
			quad[2]+1, quad[2]+1,
			quad[3]+1, quad[3]+1)
	}

	return bw.Flush()
}

// WriteMTL writes a single material mapping the atlas image onto the
// diffuse and alpha channels, matching the original alpha-clipped
// decal material.
func WriteMTL(w io.Writer, material, texture string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "newmtl %s\n", material)
	fmt.Fprintln(bw, "Ka 1.000 1.000 1.000")
	fmt.Fprintln(bw, "Kd 1.000 1.000 1.000")
	fmt.Fprintln(bw, "illum 1")
	fmt.Fprintf(bw, "map_Kd %s\n", texture)
	fmt.Fprintf(bw, "map_d %s\n", texture)

	return bw.Flush()
}
