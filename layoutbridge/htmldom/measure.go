package htmldom

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"docstyle/layoutbridge"
)

// FontMeasurer measures text with real font metrics (Go Regular) at the font
// size of the element. Faces are cached per size. It is safe for concurrent
// use.
type FontMeasurer struct {
	defaultSize float64

	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontMeasurer creates a measurer using defaultSize (pixels) for elements
// which do not report their own font size.
func NewFontMeasurer(defaultSize float64) (*FontMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse builtin font: %w", err)
	}
	if defaultSize <= 0 {
		defaultSize = DefaultFontSize
	}
	return &FontMeasurer{
		defaultSize: defaultSize,
		font:        f,
		faces:       make(map[float64]font.Face),
	}, nil
}

// Advance implements layoutbridge.Measurer.
func (m *FontMeasurer) Advance(el layoutbridge.Element, text string) float64 {
	size := m.defaultSize
	if sized, ok := el.(interface{ FontSize() float64 }); ok && sized.FontSize() > 0 {
		size = sized.FontSize()
	}

	// faces are not safe for concurrent use
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, text)) / 64
}

func (m *FontMeasurer) face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	// 72 DPI makes the face size equal to pixels
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = face
	return face, nil
}

// Close releases cached faces.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	for size, face := range m.faces {
		err = multierr.Append(err, face.Close())
		delete(m.faces, size)
	}
	return err
}
