package gui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/catalog"
	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/draw"
	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/store"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const purchaseURL = "https://www.tokopedia.com/find/tetris-block"

// typeBufferIdle is how long the shared quick-jump/count type buffer
// survives between keystrokes before it resets.
const typeBufferIdle = 900 * time.Millisecond

const maxStartingCount = 99

type AppConfig struct {
	Version      string
	Commit       string
	BuildDate    string
	StorePath    string
	AssetsDir    string
	SpinDuration time.Duration
	WindowWidth  int
	WindowHeight int
	Seed         int64
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newWidgetUI(a.cfg)
	return ui.Run()
}

// widgetUI is the single controller owning all session state. Input
// handling translates raylib key events into the action methods below, so
// the actions stay testable without a window.
type widgetUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	pieces  []catalog.Piece
	colors  map[string]rl.Color
	session *draw.Session
	store   *store.Store

	editMode   bool
	editCursor int
	typeBuffer string
	typedAt    time.Time

	status   string
	textures map[string]rl.Texture2D
}

func newWidgetUI(cfg AppConfig) *widgetUI {
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = 960
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = 640
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pieces := catalog.Builtin()
	st := store.New(cfg.StorePath)
	counts := st.Load(defaultEntries(pieces))

	cats := make([]draw.Category, len(pieces))
	colors := make(map[string]rl.Color, len(pieces))
	for i, p := range pieces {
		cats[i] = draw.Category{
			ID:       p.ID,
			Name:     p.Name,
			Image:    p.Image,
			Starting: counts[i].Initial,
		}
		colors[p.ID] = parseHexColor(p.Color)
	}

	return &widgetUI{
		cfg:     cfg,
		width:   int32(cfg.WindowWidth),
		height:  int32(cfg.WindowHeight),
		pieces:  pieces,
		colors:  colors,
		session: draw.NewSession(cats, cfg.SpinDuration, rand.New(rand.NewSource(seed))),
		store:   st,
	}
}

func defaultEntries(pieces []catalog.Piece) []store.Entry {
	out := make([]store.Entry, len(pieces))
	for i, p := range pieces {
		out[i] = store.Entry{ID: p.ID, Initial: p.DefaultCount}
	}
	return out
}

func (ui *widgetUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "tetris-block-randomizer")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	ui.textures = loadPieceTextures(ui.cfg.AssetsDir, ui.pieces)

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(time.Now())

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	// Window teardown withdraws any in-flight reveal so no late draw fires.
	ui.session.CancelReveal()
	unloadPieceTextures(ui.textures)
	rl.CloseWindow()
	return nil
}

func (ui *widgetUI) update(now time.Time) {
	ui.session.Advance(now)

	if rl.IsKeyPressed(rl.KeyQ) && !ui.editMode {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if ui.editMode {
			ui.toggleEdit()
		} else {
			ui.quit = true
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyE) && !ui.editMode {
		ui.toggleEdit()
		return
	}
	if rl.IsKeyPressed(rl.KeyB) && !ui.editMode {
		rl.OpenURL(purchaseURL)
		return
	}

	if ui.editMode {
		ui.updateEdit(now)
		return
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		ui.requestDraw(now)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		ui.requestReset()
	}
}

func (ui *widgetUI) updateEdit(now time.Time) {
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.moveCursor(1)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.moveCursor(-1)
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyKpAdd) {
		ui.adjustCount(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		ui.adjustCount(-1)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.toggleEdit()
		return
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 {
			ui.typeRune(rune(ch), now)
		}
	}
}

// requestDraw starts the next reveal. Drawing is refused while a cycle is
// in flight or when the pool is exhausted.
func (ui *widgetUI) requestDraw(now time.Time) bool {
	snap := ui.session.Snapshot()
	ok := false
	if snap.Started {
		ok = ui.session.DrawAgain(now)
	} else {
		ok = ui.session.StartFirstDraw(now)
	}
	switch {
	case ok:
		ui.status = ""
	case snap.Animating:
		// Ignore mashed keys mid-cycle.
	case snap.TotalRemaining == 0:
		ui.status = "No blocks left. Press R to reset."
	}
	return ok
}

// requestReset rebases every count on the currently saved configuration.
func (ui *widgetUI) requestReset() bool {
	if !ui.session.ResetSession(ui.savedBaseline()) {
		return false
	}
	ui.status = "Pool reset."
	return true
}

func (ui *widgetUI) savedBaseline() map[string]int {
	entries := ui.store.Load(defaultEntries(ui.pieces))
	baseline := make(map[string]int, len(entries))
	for _, e := range entries {
		baseline[e.ID] = e.Initial
	}
	return baseline
}

func (ui *widgetUI) toggleEdit() {
	ui.editMode = !ui.editMode
	ui.typeBuffer = ""
	if ui.editMode {
		ui.status = "Editing counts. Enter to finish."
	} else {
		ui.status = ""
	}
}

func (ui *widgetUI) moveCursor(delta int) {
	ui.editCursor = wrapIndex(ui.editCursor+delta, len(ui.pieces))
	ui.typeBuffer = ""
}

// adjustCount nudges the selected piece's starting count. Every committed
// change persists immediately and refills that piece's live count.
func (ui *widgetUI) adjustCount(delta int) {
	cats := ui.session.Snapshot().Categories
	if ui.editCursor < 0 || ui.editCursor >= len(cats) {
		return
	}
	cat := cats[ui.editCursor]
	ui.commitCount(cat.ID, cat.Starting+delta)
}

func (ui *widgetUI) commitCount(id string, n int) {
	n = clampInt(n, 0, maxStartingCount)
	if !ui.session.EditStartingCount(id, n) {
		return
	}
	// A failed write degrades to in-memory configuration for this session;
	// the widget never surfaces storage trouble.
	_ = ui.store.Save([]store.Entry{{ID: id, Initial: n}})
}

// typeRune feeds the shared edit-mode type buffer: an all-digit buffer sets
// the selected count directly, anything else fuzzy-jumps the cursor to the
// best-matching piece name.
func (ui *widgetUI) typeRune(r rune, now time.Time) {
	if now.Sub(ui.typedAt) > typeBufferIdle {
		ui.typeBuffer = ""
	}
	ui.typedAt = now
	ui.typeBuffer += string(r)

	if n, err := strconv.Atoi(ui.typeBuffer); err == nil {
		cats := ui.session.Snapshot().Categories
		if ui.editCursor >= 0 && ui.editCursor < len(cats) {
			ui.commitCount(cats[ui.editCursor].ID, n)
		}
		return
	}
	names := make([]string, len(ui.pieces))
	for i, p := range ui.pieces {
		names[i] = p.Name
	}
	if idx := quickJumpIndex(names, ui.typeBuffer); idx >= 0 {
		ui.editCursor = idx
	}
}

func (ui *widgetUI) draw() {
	snap := ui.session.Snapshot()

	banner := rl.NewRectangle(20, 20, float32(ui.width-40), 86)
	drawPanel(banner, "TETRIS BLOCK RANDOMIZER")
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), banner, 40, 17, colorDim)
	drawTextCentered("B: buy the physical block set", banner, 62, 17, colorAccent)

	contentY := float32(122)
	contentH := float32(ui.height) - contentY - 64
	revealRect := rl.NewRectangle(20, contentY, float32(ui.width)*0.52, contentH)
	poolRect := rl.NewRectangle(revealRect.X+revealRect.Width+16, contentY, float32(ui.width)-revealRect.Width-56, contentH)

	ui.drawReveal(revealRect, snap)
	ui.drawPool(poolRect, snap)

	hintRect := rl.NewRectangle(20, float32(ui.height-54), float32(ui.width-40), 36)
	hint := "Enter: draw   R: reset   E: edit counts   B: buy   Q: quit"
	if ui.editMode {
		hint = "Up/Down: row   Left/Right: count   digits: set   letters: jump   Enter: done"
	}
	if strings.TrimSpace(ui.status) != "" {
		hint = ui.status + "   |   " + hint
	}
	drawTextCentered(hint, hintRect, 8, 18, colorDim)
}

func (ui *widgetUI) drawReveal(rect rl.Rectangle, snap draw.Snapshot) {
	drawPanel(rect, "Next Block")

	displayID := snap.Displayed
	caption := ""
	switch {
	case snap.Animating:
		caption = "Drawing..."
	case snap.Selected != "":
		caption = "You drew:"
	default:
		displayID = ""
		caption = "Press Enter to draw a block"
	}
	drawTextCentered(caption, rect, 44, 20, colorDim)

	if displayID == "" {
		drawTextCentered(fmt.Sprintf("%d blocks in the pool", snap.TotalRemaining), rect, int32(rect.Height/2), 24, colorText)
		return
	}

	piece := ui.pieceByID(displayID)
	visual := rl.NewRectangle(
		rect.X+(rect.Width-200)/2,
		rect.Y+80,
		200, 200,
	)
	ui.drawPieceVisual(visual, piece, snap.Animating)

	nameColor := colorText
	if !snap.Animating {
		nameColor = colorAccent
	}
	drawTextCentered(piece.Name, rect, int32(visual.Y-rect.Y)+216, 32, nameColor)
}

func (ui *widgetUI) drawPool(rect rl.Rectangle, snap draw.Snapshot) {
	title := fmt.Sprintf("Pool  (%d left)", snap.TotalRemaining)
	if ui.editMode {
		title = "Pool  (editing)"
	}
	drawPanel(rect, title)

	rowH := float32(46)
	y := rect.Y + 44
	for i, cat := range snap.Categories {
		row := rl.NewRectangle(rect.X+14, y, rect.Width-28, rowH-6)
		selected := ui.editMode && i == ui.editCursor
		depleted := cat.Remaining == 0

		if selected {
			rl.DrawRectangleRounded(row, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(row, 0.3, 8, 2, colorAccent)
		} else {
			rl.DrawRectangleRounded(row, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(row, 0.3, 8, 1.5, colorBorder)
		}

		swatch := rl.NewRectangle(row.X+8, row.Y+8, 24, 24)
		swatchColor := ui.colors[cat.ID]
		if depleted {
			swatchColor = rl.Fade(swatchColor, 0.35)
		}
		rl.DrawRectangleRounded(swatch, 0.3, 4, swatchColor)

		textColor := colorText
		if depleted {
			textColor = colorDim
		}
		if selected {
			textColor = colorAccent
		}
		rl.DrawText(cat.Name, int32(row.X)+44, int32(row.Y)+10, 22, textColor)

		counts := fmt.Sprintf("%d / %d", cat.Remaining, cat.Starting)
		countColor := textColor
		if ui.editMode {
			counts = fmt.Sprintf("start: %d", cat.Starting)
		} else if depleted {
			countColor = colorWarn
		}
		countW := rl.MeasureText(counts, 22)
		rl.DrawText(counts, int32(row.X+row.Width)-countW-14, int32(row.Y)+10, 22, countColor)

		y += rowH
	}
}

func (ui *widgetUI) pieceByID(id string) catalog.Piece {
	for _, p := range ui.pieces {
		if p.ID == id {
			return p
		}
	}
	return catalog.Piece{ID: id, Name: strings.ToUpper(id)}
}
