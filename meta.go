package main

import "fmt"

// defaultCharacters is the symbol set an atlas carries when the
// descriptor doesn't configure its own.
const defaultCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789&-+/.,!? "

type DecalMeta struct {
	Name                 string      `yaml:"name"`
	Font                 string      `yaml:"font"`
	FontSize             int         `yaml:"fontSize"`
	AtlasSize            [2]int      `yaml:"atlasSize"`
	CellCount            [2]int      `yaml:"cellCount"`
	Characters           string      `yaml:"characters"`
	FontColor            *[3]float64 `yaml:"fontColor"`
	BackgroundColor      *[3]float64 `yaml:"backgroundColor"`
	SymbolVerticalOffset *int        `yaml:"symbolVerticalOffset"`
	Text                 string      `yaml:"text"`
	DecalScale           float64     `yaml:"decalScale"`
	Position             [3]float64  `yaml:"position"`
	Rotation             [3]float64  `yaml:"rotation"`
}

func (decalMeta *DecalMeta) applyDefaults() {
	if decalMeta.FontSize <= 0 {
		decalMeta.FontSize = 95
	}

	if decalMeta.AtlasSize[0] <= 0 || decalMeta.AtlasSize[1] <= 0 {
		decalMeta.AtlasSize = [2]int{1024, 1024}
	}

	if decalMeta.CellCount[0] <= 0 || decalMeta.CellCount[1] <= 0 {
		decalMeta.CellCount = [2]int{8, 8}
	}

	if decalMeta.Characters == "" {
		decalMeta.Characters = defaultCharacters
	}

	if decalMeta.FontColor == nil {
		decalMeta.FontColor = &[3]float64{1, 1, 1}
	}

	if decalMeta.BackgroundColor == nil {
		decalMeta.BackgroundColor = &[3]float64{0, 0, 0}
	}

	if decalMeta.SymbolVerticalOffset == nil {
		offset := 15
		decalMeta.SymbolVerticalOffset = &offset
	}

	if decalMeta.DecalScale <= 0 {
		decalMeta.DecalScale = 0.01
	}
}

// Validate reports descriptor mistakes the user has to correct
// before the decal can be generated.
func (decalMeta DecalMeta) Validate() error {
	if decalMeta.Name == "" {
		return fmt.Errorf("decal has no name")
	}

	if decalMeta.Font == "" {
		return fmt.Errorf("decal '%s': no font configured", decalMeta.Name)
	}

	if decalMeta.Text == "" {
		return fmt.Errorf("decal '%s': enter the text content", decalMeta.Name)
	}

	cells := decalMeta.CellCount[0] * decalMeta.CellCount[1]
	charCount := len(decalMeta.charSet())

	if charCount > cells {
		return fmt.Errorf("decal '%s': cell grid %dx%d holds %d cells but %d characters are configured",
			decalMeta.Name, decalMeta.CellCount[0], decalMeta.CellCount[1], cells, charCount)
	}

	return nil
}

// charSet splits the configured characters into runes, dropping
// duplicates while preserving cell order.
func (decalMeta DecalMeta) charSet() []rune {
	seen := map[rune]struct{}{}
	runes := make([]rune, 0, len(decalMeta.Characters))

	for _, run := range decalMeta.Characters {
		if _, ok := seen[run]; ok {
			continue
		}

		seen[run] = struct{}{}
		runes = append(runes, run)
	}

	return runes
}
