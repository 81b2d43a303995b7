package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/types"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Raster draws annotations onto an RGBA image using the Go fonts. One
// canvas unit is one pixel.
type Raster struct {
	Width, Height int
	Background    color.Color
	Ink           color.Color
	Fonts         *FontSet
}

// NewRaster returns a width x height raster with black ink on white.
func NewRaster(width, height int, fonts *FontSet) *Raster {
	if fonts == nil {
		fonts = NewFontSet()
	}
	return &Raster{
		Width:      width,
		Height:     height,
		Background: color.White,
		Ink:        color.Black,
		Fonts:      fonts,
	}
}

func (r *Raster) face(a types.Annotation) (font.Face, error) {
	return r.Fonts.Face(a.Font, a.IsBold, a.IsItalic, a.FontSize)
}

// TextWidth measures the advance width of a's text in pixels.
func (r *Raster) TextWidth(a types.Annotation) float64 {
	face, err := r.face(a)
	if err != nil {
		logger.Warnf("Raster: %v", err)
		return 0
	}
	return fixedToFloat(font.MeasureString(face, a.Text))
}

// SurfaceWidth is the image width.
func (r *Raster) SurfaceWidth() float64 {
	return float64(r.Width)
}

// Extent reports the face's ascent and descent.
func (r *Raster) Extent(a types.Annotation) (ascent, descent float64) {
	face, err := r.face(a)
	if err != nil {
		logger.Warnf("Raster: %v", err)
		return float64(a.FontSize), 0
	}
	m := face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// Render draws list in order onto a new image.
func (r *Raster) Render(list []types.Annotation) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	ink := image.NewUniform(r.Ink)
	for i, a := range list {
		face, err := r.face(a)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		x := AlignedX(a, r)
		d := &font.Drawer{Dst: img, Src: ink, Face: face}
		d.Dot = fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(a.Y)}
		d.DrawString(a.Text)

		if a.IsUnderline {
			x0 := int(math.Round(x))
			x1 := d.Dot.X.Round()
			y := int(math.Round(a.Y)) + 1
			draw.Draw(img, image.Rect(x0, y, x1, y+1), ink, image.Point{}, draw.Over)
		}
	}
	return img, nil
}

// WritePNG renders list and encodes it as PNG.
func (r *Raster) WritePNG(w io.Writer, list []types.Annotation) error {
	img, err := r.Render(list)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered list to path.
func (r *Raster) SavePNG(path string, list []types.Annotation) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close '%s': %w", path, cerr)
		}
	}()
	if err := r.WritePNG(f, list); err != nil {
		return fmt.Errorf("export '%s': %w", path, err)
	}
	logger.Infof("Raster: exported %d annotation(s) to '%s' (%dx%d)", len(list), path, r.Width, r.Height)
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
