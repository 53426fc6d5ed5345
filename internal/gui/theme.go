package gui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBG     = rl.NewColor(10, 12, 22, 255)
	colorPanel  = rl.NewColor(18, 22, 38, 255)
	colorBorder = rl.NewColor(70, 90, 160, 255)
	colorText   = rl.NewColor(225, 230, 245, 255)
	colorDim    = rl.NewColor(130, 140, 170, 255)
	colorAccent = rl.NewColor(90, 180, 255, 255)
	colorWarn   = rl.NewColor(255, 198, 96, 255)
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

// parseHexColor turns "#RRGGBB" into a raylib color, falling back to the
// dim text color for anything unparseable.
func parseHexColor(s string) rl.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return colorDim
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return colorDim
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
