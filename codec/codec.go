// Package codec serializes generated atlas records for storage in
// the resource file.
package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"

	"github.com/michal-juzhak/decalnik/atlas"
)

// GlyphData is the per-character record stored alongside an atlas:
// where the character lives in the texture and how wide its decal
// quad is in decal units.
type GlyphData struct {
	UV    atlas.UVRect
	Width float64
}

// AtlasData bundles everything a consumer needs to spell text with
// the atlas: the glyph mapping, the cell grid and the PNG-encoded
// bitmap itself.
type AtlasData struct {
	FontName string
	Grid     atlas.Grid
	Glyphs   map[rune]GlyphData
	Picture  []byte
}

// CompressedAtlasData is an AtlasData after gob encoding and zlib
// deflation, ready for the resource file.
type CompressedAtlasData struct {
	data []byte
}

// Compress gob-encodes the record and deflates it.
func (atlasData *AtlasData) Compress() (*CompressedAtlasData, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)

	if err := gob.NewEncoder(zw).Encode(atlasData); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return &CompressedAtlasData{data: buf.Bytes()}, nil
}

// ToBytes returns the stored representation.
func (compressed *CompressedAtlasData) ToBytes() ([]byte, error) {
	return compressed.data, nil
}

// AtlasDataFromBytes reverses Compress followed by ToBytes.
func AtlasDataFromBytes(data []byte) (*AtlasData, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))

	if err != nil {
		return nil, err
	}
	defer zr.Close()

	atlasData := &AtlasData{}

	if err := gob.NewDecoder(zr).Decode(atlasData); err != nil {
		return nil, err
	}

	return atlasData, nil
}
