package render

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Faces — набор шрифтов для HUD.
type Faces struct {
	Title   font.Face
	Large   font.Face
	Regular font.Face
	Small   font.Face
}

// LoadFaces собирает шрифты из встроенного TTF. Если разобрать шрифт
// не удалось, все размеры получают растровый basicfont.
func LoadFaces() *Faces {
	faces, err := loadOpenTypeFaces()
	if err != nil {
		log.Printf("LoadFaces: falling back to basicfont: %v", err)
		return &Faces{
			Title:   basicfont.Face7x13,
			Large:   basicfont.Face7x13,
			Regular: basicfont.Face7x13,
			Small:   basicfont.Face7x13,
		}
	}
	return faces
}

func loadOpenTypeFaces() (*Faces, error) {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	sizes := []float64{72, 40, 24, 14}
	faces := make([]font.Face, len(sizes))
	for i, size := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
		}
		faces[i] = face
	}
	return &Faces{Title: faces[0], Large: faces[1], Regular: faces[2], Small: faces[3]}, nil
}
