package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/rpgplayer/archetypes"
	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/fonts"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// The cursor field on the status screen, in cells
const (
	FieldCols = 16
	FieldRows = 7
	cellSize  = 10
	// CursorStepTicks is the delay between steps while a direction is held
	CursorStepTicks = 8
)

func newCursor() components.CursorData {
	return components.CursorData{X: FieldCols / 2, Y: FieldRows / 2}
}

// UpdateCursor moves the cursor one cell in the resolved eight-way
// direction, then keeps stepping while the direction is held.
func UpdateCursor(e *ecs.ECS) {
	eng := getEngine(e)
	c := GetOrCreateCursor(e)
	d := eng.Resolver().Dir8()
	if d == input.DirNone {
		c.StepTimer = 0
		return
	}
	if c.StepTimer > 0 {
		c.StepTimer--
		return
	}
	c.StepTimer = CursorStepTicks

	dx, dy := d.Delta()
	if !MoveCursor(c, dx, dy, eng.State().ThroughWalls) {
		PlaySFX(e, components.SoundBuzzer)
	}
}

// MoveCursor steps c by (dx, dy). The field edges are walls unless
// throughWalls is set, then the cursor wraps around. Returns false when a
// wall stopped the whole move.
func MoveCursor(c *components.CursorData, dx, dy int, throughWalls bool) bool {
	x, y := c.X+dx, c.Y+dy
	if throughWalls {
		c.X = (x + FieldCols) % FieldCols
		c.Y = (y + FieldRows) % FieldRows
		c.Blocked = false
		return true
	}
	nx, ny := clampInt(x, 0, FieldCols-1), clampInt(y, 0, FieldRows-1)
	moved := nx != c.X || ny != c.Y
	c.X, c.Y = nx, ny
	c.Blocked = nx != x || ny != y
	return moved
}

// DrawStatus renders the input status screen: resolved directions, held
// buttons, run state and the cursor field.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	rt := getRuntime(e)
	eng := rt.Engine
	r := eng.Resolver()
	st := eng.State()
	width := screen.Bounds().Dx()

	title := fonts.Title.Get()
	text.Draw(screen, rt.Title, title, marginX, titleY, ColorText)

	face := fonts.Regular.Get()
	y := rowsTop + rowHeight
	line := func(s string, clr color.Color) {
		text.Draw(screen, fitText(face, s, width-2*marginX), face, marginX, y, clr)
		y += rowHeight
	}

	line(fmt.Sprintf("Dir4: %-10s Dir8: %s", r.Dir4(), r.Dir8()), ColorText)
	line("Held: "+strings.Join(heldButtons(r), " "), ColorText)

	speed := fmt.Sprintf("Speed: x%.2f (factor %.2f)", eng.Speed(), st.SpeedFactor)
	if st.ThroughWalls {
		speed += "  " + input.DebugThrough.String()
	}
	line(speed, ColorTextDim)
	line(fmt.Sprintf("Method: %s  Frame: %d", inputMethodName(getOrCreateInput(e).LastInputMethod), eng.Snapshot().Frame), ColorTextDim)

	drawField(screen, GetOrCreateCursor(e), y)
}

func drawField(screen *ebiten.Image, c *components.CursorData, top int) {
	w := FieldCols * cellSize
	h := FieldRows * cellSize
	x0 := float32(screen.Bounds().Dx()-w) / 2
	y0 := float32(top)

	vector.StrokeRect(screen, x0-1, y0-1, float32(w+2), float32(h+2), 1, ColorGrid, false)
	for col := 1; col < FieldCols; col++ {
		x := x0 + float32(col*cellSize)
		vector.StrokeLine(screen, x, y0, x, y0+float32(h), 1, ColorGrid, false)
	}
	for row := 1; row < FieldRows; row++ {
		y := y0 + float32(row*cellSize)
		vector.StrokeLine(screen, x0, y, x0+float32(w), y, 1, ColorGrid, false)
	}

	clr := ColorCursor
	if c.Blocked {
		clr = ColorBlocked
	}
	vector.DrawFilledRect(screen,
		x0+float32(c.X*cellSize)+1, y0+float32(c.Y*cellSize)+1,
		cellSize-2, cellSize-2, clr, false)
}

// heldButtons names every pressed logical button in declaration order
func heldButtons(r *input.Resolver) []string {
	var out []string
	for _, b := range input.Buttons() {
		if r.IsPressed(b) {
			out = append(out, b.String())
		}
	}
	return out
}

func inputMethodName(m components.InputMethod) string {
	switch m {
	case components.InputGamepad:
		return "gamepad"
	case components.InputMouse:
		return "mouse"
	}
	return "keyboard"
}

// GetOrCreateCursor returns the cursor, spawning it in the middle of the
// field if needed.
func GetOrCreateCursor(e *ecs.ECS) *components.CursorData {
	entry, ok := tags.Cursor.First(e.World)
	if !ok {
		entry = archetypes.Cursor.Spawn(e)
		components.Cursor.SetValue(entry, newCursor())
	}
	return components.Cursor.Get(entry)
}
