package gui

import (
	"os"
	"path/filepath"

	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/catalog"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadPieceTextures loads each piece image from the assets dir. Missing or
// unloadable files are simply skipped; rendering falls back to a flat
// colored swatch for those pieces.
func loadPieceTextures(assetsDir string, pieces []catalog.Piece) map[string]rl.Texture2D {
	out := make(map[string]rl.Texture2D, len(pieces))
	for _, p := range pieces {
		if p.Image == "" {
			continue
		}
		path := filepath.Join(assetsDir, p.Image)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			continue
		}
		out[p.ID] = tex
	}
	return out
}

func unloadPieceTextures(textures map[string]rl.Texture2D) {
	for _, tex := range textures {
		rl.UnloadTexture(tex)
	}
}

// drawPieceVisual renders the piece image scaled into rect, or a colored
// block with the piece initial when no texture is available.
func (ui *widgetUI) drawPieceVisual(rect rl.Rectangle, piece catalog.Piece, animating bool) {
	if tex, ok := ui.textures[piece.ID]; ok && tex.ID != 0 {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		tint := rl.White
		if animating {
			tint = rl.Fade(rl.White, 0.85)
		}
		rl.DrawTexturePro(tex, src, rect, rl.NewVector2(0, 0), 0, tint)
		return
	}

	swatch := ui.colors[piece.ID]
	if animating {
		swatch = rl.Fade(swatch, 0.85)
	}
	rl.DrawRectangleRounded(rect, 0.15, 8, swatch)
	rl.DrawRectangleRoundedLinesEx(rect, 0.15, 8, 3, colorBorder)
	initial := piece.Name
	if len(initial) > 1 {
		initial = initial[:1]
	}
	drawTextCentered(initial, rect, int32(rect.Height/2)-40, 96, colorBG)
}
