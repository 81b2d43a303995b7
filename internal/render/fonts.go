package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/inkpad/internal/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
)

// DefaultFamily is used for annotations whose font is not known.
const DefaultFamily = "go"

// variant indexes the four faces of a family.
type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
)

func variantOf(isBold, isItalic bool) variant {
	switch {
	case isBold && isItalic:
		return boldItalic
	case isBold:
		return bold
	case isItalic:
		return italic
	}
	return regular
}

// families maps a family name to its regular, bold, italic and bold-italic
// TTF data. Go Medium and Go Smallcaps have no bold cut; Go Bold stands in
// for Medium and Smallcaps stays as is.
var families = map[string][4][]byte{
	"go":           {goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF},
	"go-mono":      {gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF},
	"go-medium":    {gomedium.TTF, gobold.TTF, gomediumitalic.TTF, gobolditalic.TTF},
	"go-smallcaps": {gosmallcaps.TTF, gosmallcaps.TTF, gosmallcapsitalic.TTF, gosmallcapsitalic.TTF},
}

// aliases maps common CSS and desktop font names onto the Go family.
var aliases = map[string]string{
	"sans-serif":      "go",
	"arial":           "go",
	"helvetica":       "go",
	"serif":           "go-medium",
	"times":           "go-medium",
	"times new roman": "go-medium",
	"georgia":         "go-medium",
	"monospace":       "go-mono",
	"courier":         "go-mono",
	"courier new":     "go-mono",
	"fantasy":         "go-smallcaps",
	"cursive":         "go-smallcaps",
}

// Families returns the built-in family names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFamily maps a font name onto a built-in family. The second result
// is false when name was unknown and DefaultFamily was substituted.
func ResolveFamily(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := families[key]; ok {
		return key, true
	}
	if family, ok := aliases[key]; ok {
		return family, true
	}
	return DefaultFamily, false
}

type faceKey struct {
	family  string
	variant variant
	size    int
}

type fontKey struct {
	family  string
	variant variant
}

// FontSet parses the Go fonts on demand and caches one face per family,
// variant and pixel size. Face lookups are safe for concurrent use, but a
// returned face keeps glyph state and must not be drawn with from more than
// one goroutine at a time.
type FontSet struct {
	mu    sync.Mutex
	fonts map[fontKey]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFontSet returns an empty font cache.
func NewFontSet() *FontSet {
	return &FontSet{
		fonts: make(map[fontKey]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Face returns the face for a font name, style flags and pixel size.
func (fs *FontSet) Face(name string, isBold, isItalic bool, size int) (font.Face, error) {
	family, ok := ResolveFamily(name)
	if !ok {
		logger.Debugf("FontSet: unknown font '%s', using '%s'", name, family)
	}
	if size <= 0 {
		size = 1
	}
	key := faceKey{family: family, variant: variantOf(isBold, isItalic), size: size}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if face, ok := fs.faces[key]; ok {
		return face, nil
	}

	fk := fontKey{family: key.family, variant: key.variant}
	f, ok := fs.fonts[fk]
	if !ok {
		var err error
		f, err = opentype.Parse(families[family][key.variant])
		if err != nil {
			return nil, fmt.Errorf("parse font '%s': %w", family, err)
		}
		fs.fonts[fk] = f
	}

	// 72 DPI makes one point one pixel, so Size is in canvas units.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face '%s' %dpx: %w", family, size, err)
	}
	fs.faces[key] = face
	return face, nil
}

// Close releases all cached faces.
func (fs *FontSet) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for key, face := range fs.faces {
		if err := face.Close(); err != nil {
			return fmt.Errorf("close face '%s': %w", key.family, err)
		}
		delete(fs.faces, key)
	}
	return nil
}
