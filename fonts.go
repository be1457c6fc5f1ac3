package frost

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error
)

// newBoldFace returns a fresh bold face at the given pixel size. Faces are not
// safe for concurrent use, so every renderer owns its own.
func newBoldFace(size float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, fmt.Errorf("parse bold font: %w", boldErr)
	}
	face, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("bold face %.0fpx: %w", size, err)
	}
	return face, nil
}
