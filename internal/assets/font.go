// internal/assets/font.go
package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces holds the text faces used by the HUD.
type Faces struct {
	HUD    font.Face
	Prompt font.Face
}

// LoadFaces parses the TTF/OTF at path, or the bundled Go font when path is
// empty or unreadable.
func LoadFaces(path string, hudSize, promptSize float64) (*Faces, error) {
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("WARNING: failed to read font %s: %v, using Go Regular", path, err)
		} else {
			data = raw
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	hud, err := newFace(tt, hudSize)
	if err != nil {
		return nil, err
	}
	prompt, err := newFace(tt, promptSize)
	if err != nil {
		return nil, err
	}
	return &Faces{HUD: hud, Prompt: prompt}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpx face: %w", size, err)
	}
	return face, nil
}
