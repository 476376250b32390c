package game

import (
	"errors"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cipher-visualization/internal/render"
)

// exportPNG renders the current scene at the window size into an image
// surface and writes it where the save dialog points. Cancel is not an
// error.
func (g *Game) exportPNG() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Scene"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("cipher-scene.png"),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	surf := render.NewImageSurface(g.width, g.height)
	g.renderer.Frame(surf, g.cam, g.torusPoints, g.polyPoints, g.showTorus, g.showPoly)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := surf.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("scene exported", "path", path)
	return nil
}

// openMessageFile replaces the message with the contents of a chosen text
// file.
func (g *Game) openMessageFile() error {
	path, err := zenity.SelectFile(
		zenity.Title("Open Message File"),
		zenity.FileFilters{{
			Name:     "Text",
			Patterns: []string{"*.txt", "*.md"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	g.message = flattenMessage(string(raw))
	g.recompute()
	slog.Info("message loaded", "path", path, "runes", g.status.CharacterCount)
	return nil
}
