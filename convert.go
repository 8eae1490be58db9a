package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path"
	"strings"

	"github.com/g3n/engine/math32"
	"github.com/golang/freetype/truetype"
	bolt "go.etcd.io/bbolt"

	"github.com/michal-juzhak/decalnik/atlas"
	"github.com/michal-juzhak/decalnik/codec"
	"github.com/michal-juzhak/decalnik/decal"
)

// DecalResult carries the serialized resource records of one decal
// after its files have been written out.
type DecalResult struct {
	AtlasBytes []byte
	MeshBytes  []byte
}

// ToDecalData rasterizes the atlas for the meta, lays out the text
// decal mesh, writes the PNG/OBJ/MTL files into outDir and returns
// the compressed records for the resource file.
func (decalMeta DecalMeta) ToDecalData(resourceFile *bolt.DB, outDir string) (*DecalResult, error) {
	ttFont, err := decalMeta.loadFont(resourceFile)

	if err != nil {
		return nil, err
	}

	chars := decalMeta.charSet()
	grid := atlas.Grid{
		Cols: decalMeta.CellCount[0],
		Rows: decalMeta.CellCount[1],
	}

	atlasImg, err := atlas.Generate(ttFont, atlas.Config{
		Width:          decalMeta.AtlasSize[0],
		Height:         decalMeta.AtlasSize[1],
		Grid:           grid,
		FontSize:       decalMeta.FontSize,
		VerticalOffset: *decalMeta.SymbolVerticalOffset,
		FontColor:      toRGBA(*decalMeta.FontColor),
		Background:     toRGBA(*decalMeta.BackgroundColor),
		Characters:     chars,
	})

	if err != nil {
		return nil, err
	}

	var picture bytes.Buffer

	if err := png.Encode(&picture, atlasImg); err != nil {
		return nil, err
	}

	atlasPath := path.Join(outDir, decalMeta.Name+".png")

	if err := os.WriteFile(atlasPath, picture.Bytes(), 0666); err != nil {
		return nil, fmt.Errorf("cannot save the atlas image: %w", err)
	}

	uvs, err := atlas.UVMapping(chars, grid)

	if err != nil {
		return nil, err
	}

	widths := atlas.MeasureWidths(ttFont, decalMeta.FontSize, chars)

	layout := &decal.Layout{
		UVs:    uvs,
		Widths: widths,
		Scale:  float32(decalMeta.DecalScale),
		Position: math32.Vector3{
			X: float32(decalMeta.Position[0]),
			Y: float32(decalMeta.Position[1]),
			Z: float32(decalMeta.Position[2]),
		},
		Rotation: math32.Vector3{
			X: float32(decalMeta.Rotation[0]),
			Y: float32(decalMeta.Rotation[1]),
			Z: float32(decalMeta.Rotation[2]),
		},
	}

	mesh, err := layout.Build(decalMeta.Text)

	if err != nil {
		return nil, fmt.Errorf("decal '%s': %w", decalMeta.Name, err)
	}

	mtlName := decalMeta.Name + ".mtl"
	var objBuf bytes.Buffer

	if err := decal.WriteOBJ(&objBuf, mesh, decalMeta.Name, mtlName, decalMeta.Name); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path.Join(outDir, decalMeta.Name+".obj"), objBuf.Bytes(), 0666); err != nil {
		return nil, err
	}

	var mtlBuf bytes.Buffer

	if err := decal.WriteMTL(&mtlBuf, decalMeta.Name, decalMeta.Name+".png"); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path.Join(outDir, mtlName), mtlBuf.Bytes(), 0666); err != nil {
		return nil, err
	}

	glyphs := make(map[rune]codec.GlyphData, len(chars))

	for _, run := range chars {
		glyphs[run] = codec.GlyphData{
			UV:    uvs[run],
			Width: widths[run],
		}
	}

	atlasData := &codec.AtlasData{
		FontName: decalMeta.Font,
		Grid:     grid,
		Glyphs:   glyphs,
		Picture:  picture.Bytes(),
	}

	compressedAtlasData, err := atlasData.Compress()

	if err != nil {
		return nil, err
	}

	dataBytes, err := compressedAtlasData.ToBytes()

	if err != nil {
		return nil, err
	}

	return &DecalResult{
		AtlasBytes: dataBytes,
		MeshBytes:  objBuf.Bytes(),
	}, nil
}

// loadFont resolves the meta's font either from a .ttf/.otf file
// on disk or from the 'fonts' bucket of the resource file.
func (decalMeta DecalMeta) loadFont(resourceFile *bolt.DB) (*truetype.Font, error) {
	var fontData []byte

	if hasFontExtension(decalMeta.Font) {
		data, err := os.ReadFile(decalMeta.Font)

		if err != nil {
			return nil, err
		}

		fontData = data
	} else {
		err := resourceFile.View(func(tx *bolt.Tx) error {
			buck := tx.Bucket([]byte("fonts"))

			if buck == nil {
				return fmt.Errorf("fonts bucket not found")
			}

			data := buck.Get([]byte(decalMeta.Font))

			if data == nil {
				return fmt.Errorf(
					"the '%s' font not found", decalMeta.Font)
			}

			// bbolt values are only valid inside the transaction.
			fontData = append([]byte(nil), data...)

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return truetype.Parse(fontData)
}

func hasFontExtension(fontPath string) bool {
	ext := strings.ToLower(path.Ext(fontPath))
	return ext == ".ttf" || ext == ".otf"
}

func toRGBA(c [3]float64) color.RGBA {
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	}
}
