package app

import (
	"fmt"
	"image/color"

	"github.com/bethropolis/inkpad/internal/config"
	"github.com/bethropolis/inkpad/internal/document"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/render"
	"github.com/bethropolis/inkpad/internal/theme"
)

// SaveDocument writes the annotations to path, or to the current document
// when path is "".
func (a *App) SaveDocument(path string) error {
	if err := a.store.Save(path, document.Save); err != nil {
		return err
	}
	logger.Infof("App: saved '%s'", a.store.FilePath())
	return nil
}

// LoadDocument replaces the annotations with the document at path and
// clears the history.
func (a *App) LoadDocument(path string) error {
	list, err := document.Load(path)
	if err != nil {
		return err
	}
	a.store.Load(list, path)
	return nil
}

// ExportPNG renders the annotations to a PNG image at path.
func (a *App) ExportPNG(path string) error {
	r := NewExportRaster(a.cfg.Canvas, a.fonts)
	if err := r.SavePNG(path, a.store.Annotations()); err != nil {
		return err
	}
	a.eventManager.Dispatch(event.TypeDocumentExported, event.DocumentExportedData{
		FilePath: path,
		Width:    r.Width,
		Height:   r.Height,
	})
	return nil
}

// ExportFile renders the document at docPath to pngPath without a terminal.
func ExportFile(cfg *config.Config, docPath, pngPath string) error {
	list, err := document.Load(docPath)
	if err != nil {
		return err
	}
	fonts := render.NewFontSet()
	defer fonts.Close()
	return NewExportRaster(cfg.Canvas, fonts).SavePNG(pngPath, list)
}

// NewExportRaster builds the PNG renderer from the canvas settings.
// Unparseable colors keep the raster's defaults.
func NewExportRaster(c config.CanvasConfig, fonts *render.FontSet) *render.Raster {
	r := render.NewRaster(c.ExportWidth, c.ExportHeight, fonts)
	if bg, err := parseRGBA(c.ExportBackground); err != nil {
		logger.Warnf("App: export_background: %v", err)
	} else {
		r.Background = bg
	}
	if ink, err := parseRGBA(c.ExportInk); err != nil {
		logger.Warnf("App: export_ink: %v", err)
	} else {
		r.Ink = ink
	}
	return r
}

// parseRGBA accepts the same color names as themes.
func parseRGBA(s string) (color.RGBA, error) {
	c, err := theme.ParseColor(s)
	if err != nil {
		return color.RGBA{}, err
	}
	if !c.Valid() {
		return color.RGBA{}, fmt.Errorf("color '%s' has no RGB value", s)
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}
