package systems

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/fonts"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/locale"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	maxVisibleRows = 11
	// captureTicks is how long the key bindings page waits for a key
	captureTicks = 300
	// settingsMessageTicks is how long a menu message stays up
	settingsMessageTicks = 120
	// bigStep is the Range step while Shift is held
	bigStep = 10
)

type rowKind int

const (
	rowPage rowKind = iota
	rowKeys
	rowReset
	rowSave
	rowParam
	rowButton
)

// settingsRow is one line of the overlay
type settingsRow struct {
	kind    rowKind
	label   string
	value   string
	help    string
	section string
	param   config.Param
	button  input.Button
}

// UpdateSettingsMenu handles navigation and edits while the overlay is open.
// Runs on logic ticks.
func UpdateSettingsMenu(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}

	if menu.MessageTimer > 0 {
		menu.MessageTimer--
		if menu.MessageTimer == 0 {
			menu.Message = ""
		}
	}

	if menu.Capturing {
		updateCapture(e, menu)
		return
	}
	if menu.HeldKey != keys.None {
		if getEngine(e).Raw().Pressed(menu.HeldKey) {
			return
		}
		menu.HeldKey = keys.None
	}

	rt := getRuntime(e)
	rows := settingsRows(rt, menu)
	if len(rows) == 0 {
		goBack(e, menu)
		return
	}
	menu.Selected = clampInt(menu.Selected, 0, len(rows)-1)

	// Navigate with wrap-around, paging stops at the ends
	switch {
	case GetAction(e, input.Up).Repeated:
		menu.Selected = (menu.Selected - 1 + len(rows)) % len(rows)
		PlaySFX(e, components.SoundCursor)
	case GetAction(e, input.Down).Repeated:
		menu.Selected = (menu.Selected + 1) % len(rows)
		PlaySFX(e, components.SoundCursor)
	case GetAction(e, input.PageUp).Repeated:
		menu.Selected = max(0, menu.Selected-maxVisibleRows)
		PlaySFX(e, components.SoundCursor)
	case GetAction(e, input.PageDown).Repeated:
		menu.Selected = min(len(rows)-1, menu.Selected+maxVisibleRows)
		PlaySFX(e, components.SoundCursor)
	}
	scrollToSelected(menu, len(rows))

	if GetAction(e, input.Cancel).JustPressed {
		PlaySFX(e, components.SoundCancel)
		goBack(e, menu)
		return
	}

	row := rows[menu.Selected]
	switch menu.Page {
	case components.PageMain:
		if GetAction(e, input.Decision).JustPressed {
			activateMainRow(e, menu, row)
		}
	case components.PageOptions:
		dir := 0
		switch {
		case GetAction(e, input.Left).Repeated:
			dir = -1
		case GetAction(e, input.Right).Repeated, GetAction(e, input.Decision).JustPressed:
			dir = 1
		}
		if dir == 0 {
			return
		}
		big := GetAction(e, input.Shift).Pressed
		if adjustParam(rt.Engine.Config(), row.param, dir, big) {
			PlaySFX(e, components.SoundCursor)
			log.Debug("setting changed", "section", row.param.Section(), "key", row.param.Key(), "value", row.param.Text())
		} else {
			PlaySFX(e, components.SoundBuzzer)
		}
	case components.PageKeys:
		switch {
		case GetAction(e, input.Decision).JustPressed:
			menu.Capturing = true
			menu.CaptureTimer = captureTicks
			TakeNewKey(e)
			PlaySFX(e, components.SoundDecision)
		case GetAction(e, input.Shift).JustPressed:
			removeLastKey(e, menu, row.button)
		}
	}
}

func activateMainRow(e *ecs.ECS, menu *components.SettingsMenuData, row settingsRow) {
	rt := getRuntime(e)
	switch row.kind {
	case rowPage, rowKeys:
		menu.MainSelected = menu.Selected
		menu.Page = components.PageOptions
		if row.kind == rowKeys {
			menu.Page = components.PageKeys
		}
		menu.Section = row.section
		menu.Selected = 0
		menu.Scroll = 0
		PlaySFX(e, components.SoundDecision)
	case rowReset:
		rt.Engine.Config().Reset()
		rt.Engine.Resolver().Reset()
		showMenuMessage(menu, rt.Catalog.Text("reset_defaults"))
		PlaySFX(e, components.SoundDecision)
		log.Info("settings reset to defaults")
	case rowSave:
		if err := SaveSettings(e); err != nil {
			showMenuMessage(menu, rt.Catalog.Text("save_failed"))
			PlaySFX(e, components.SoundBuzzer)
			return
		}
		showMenuMessage(menu, rt.Catalog.Text("saved"))
		PlaySFX(e, components.SoundDecision)
	}
}

// updateCapture binds the next fresh key press to the selected button
func updateCapture(e *ecs.ECS, menu *components.SettingsMenuData) {
	menu.CaptureTimer--
	k, ok := TakeNewKey(e)
	if !ok {
		if menu.CaptureTimer <= 0 {
			menu.Capturing = false
			PlaySFX(e, components.SoundCancel)
		}
		return
	}
	menu.Capturing = false
	menu.HeldKey = k

	rt := getRuntime(e)
	m := rt.Engine.Config().Input.Buttons
	b := input.Button(menu.Selected)
	if err := input.Rebind(m, b, k); err != nil {
		if errors.Is(err, input.ErrLastBinding) {
			showMenuMessage(menu, rt.Catalog.Textf("last_key", strandedOwner(m, b, k)))
		}
		PlaySFX(e, components.SoundBuzzer)
		return
	}
	log.Info("button rebound", "button", b, "key", k)
	PlaySFX(e, components.SoundDecision)
}

// strandedOwner finds the protected button that would lose its only key
func strandedOwner(m *input.ButtonMapping, b input.Button, k keys.Key) input.Button {
	for _, owner := range m.Left(k) {
		if owner != b && input.IsProtectedButton(owner) && m.CountLeft(owner) == 1 {
			return owner
		}
	}
	return b
}

func removeLastKey(e *ecs.ECS, menu *components.SettingsMenuData, b input.Button) {
	rt := getRuntime(e)
	m := rt.Engine.Config().Input.Buttons
	bound := m.Right(b)
	if len(bound) == 0 {
		PlaySFX(e, components.SoundBuzzer)
		return
	}
	if err := input.Unbind(m, b, bound[len(bound)-1]); err != nil {
		showMenuMessage(menu, rt.Catalog.Textf("last_key", b))
		PlaySFX(e, components.SoundBuzzer)
		return
	}
	PlaySFX(e, components.SoundCancel)
}

func goBack(e *ecs.ECS, menu *components.SettingsMenuData) {
	if menu.Page == components.PageMain {
		CloseSettings(e)
		return
	}
	menu.Page = components.PageMain
	menu.Selected = menu.MainSelected
	menu.Scroll = 0
}

func showMenuMessage(menu *components.SettingsMenuData, msg string) {
	menu.Message = msg
	menu.MessageTimer = settingsMessageTicks
}

func scrollToSelected(menu *components.SettingsMenuData, n int) {
	if menu.Selected < menu.Scroll {
		menu.Scroll = menu.Selected
	}
	if menu.Selected >= menu.Scroll+maxVisibleRows {
		menu.Scroll = menu.Selected - maxVisibleRows + 1
	}
	menu.Scroll = clampInt(menu.Scroll, 0, max(0, n-maxVisibleRows))
}

func settingsRows(rt *components.RuntimeData, menu *components.SettingsMenuData) []settingsRow {
	cfg := rt.Engine.Config()
	switch menu.Page {
	case components.PageOptions:
		return optionRows(cfg, menu.Section)
	case components.PageKeys:
		return keyRows(cfg, rt.Catalog)
	}
	return mainRows(cfg, rt.Catalog)
}

func mainRows(cfg *config.Config, cat *locale.Catalog) []settingsRow {
	var rows []settingsRow
	for _, g := range cfg.Groups() {
		if g.IsHidden() || !hasVisibleParams(g) {
			continue
		}
		rows = append(rows, settingsRow{
			kind:    rowPage,
			label:   pageTitle(cat, g.Section()),
			section: g.Section(),
		})
	}
	if !cfg.Input.IsHidden() {
		rows = append(rows, settingsRow{kind: rowKeys, label: cat.Text("page_keys")})
	}
	return append(rows,
		settingsRow{kind: rowReset, label: cat.Text("reset_defaults")},
		settingsRow{kind: rowSave, label: cat.Text("save")},
	)
}

func hasVisibleParams(g config.Group) bool {
	for _, p := range g.Params() {
		if p.IsVisible() {
			return true
		}
	}
	return false
}

func optionRows(cfg *config.Config, section string) []settingsRow {
	g, ok := cfg.Group(section)
	if !ok {
		return nil
	}
	var rows []settingsRow
	for _, p := range g.Params() {
		if !p.IsVisible() {
			continue
		}
		rows = append(rows, settingsRow{
			kind:  rowParam,
			label: p.Name(),
			help:  paramHelp(p),
			param: p,
		})
	}
	return rows
}

// keyRows lists every button in declaration order, so a row index is a Button
func keyRows(cfg *config.Config, cat *locale.Catalog) []settingsRow {
	rows := make([]settingsRow, 0, input.ButtonCount)
	for _, b := range input.Buttons() {
		speed := 0
		switch b {
		case input.FastForwardA:
			speed = cfg.Input.SpeedModifierA.Get()
		case input.FastForwardB:
			speed = cfg.Input.SpeedModifierB.Get()
		}
		value := input.EncodeKeys(cfg.Input.Buttons, b)
		if value == "" {
			value = "-"
		}
		rows = append(rows, settingsRow{
			kind:   rowButton,
			label:  b.String(),
			value:  value,
			help:   cat.ButtonHelp(b, speed),
			button: b,
		})
	}
	return rows
}

func pageTitle(cat *locale.Catalog, section string) string {
	return cat.Text("page_" + strings.ToLower(section))
}

func paramHelp(p config.Param) string {
	if h, ok := p.(interface{ Help() string }); ok && h.Help() != "" {
		return p.Description() + ": " + h.Help()
	}
	return p.Description()
}

// adjustParam steps p in direction dir. Returns false when nothing changed.
func adjustParam(cfg *config.Config, p config.Param, dir int, big bool) bool {
	if p == nil || p.IsLocked() {
		return false
	}
	switch v := p.(type) {
	case *config.Bool:
		v.Toggle()
		return true
	case *config.Range:
		step := 1
		if big {
			step = bigStep
		}
		before := v.Get()
		v.Step(dir * step)
		return v.Get() != before
	case *config.Int:
		before := v.Get()
		next := before + dir
		if v == cfg.Video.WindowZoom {
			next = clampInt(next, 1, MaxWindowZoom)
		}
		v.Set(next)
		return v.Get() != before
	case config.Cycler:
		if dir < 0 {
			v.Prev()
		} else {
			v.Next()
		}
		return true
	}
	return false
}

// formatValue renders the current value of p for display.
func formatValue(cfg *config.Config, cat *locale.Catalog, p config.Param) string {
	switch v := p.(type) {
	case *config.Bool:
		if v.Get() {
			return cat.Text("on")
		}
		return cat.Text("off")
	case *config.Range:
		if v == cfg.Video.FpsLimit && v.Get() == 0 {
			return cat.Text("unlimited")
		}
		return strconv.Itoa(v.Get())
	case *config.Int:
		if v == cfg.Video.WindowZoom {
			return fmt.Sprintf("x%d", v.Get())
		}
		return strconv.Itoa(v.Get())
	case config.Cycler:
		return v.Label()
	}
	return p.Text()
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}

	rt := getRuntime(e)
	cat := rt.Catalog
	cfg := rt.Engine.Config()
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), ColorPanel, false)

	title := cat.Text("settings")
	hint := cat.Text("hint_main")
	switch menu.Page {
	case components.PageOptions:
		title += " / " + pageTitle(cat, menu.Section)
		hint = cat.Text("hint_options")
	case components.PageKeys:
		title += " / " + cat.Text("page_keys")
		hint = cat.Text("hint_keys")
	}
	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, title).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFace, (width-titleWidth)/2, titleY, ColorText)

	rows := settingsRows(rt, menu)
	face := fonts.Regular.Get()
	end := min(len(rows), menu.Scroll+maxVisibleRows)
	for i := menu.Scroll; i < end; i++ {
		row := rows[i]
		y := rowsTop + (i-menu.Scroll+1)*rowHeight

		textColor := ColorText
		if i == menu.Selected {
			vector.DrawFilledRect(screen, marginX-2, float32(y-rowHeight+3), float32(width-2*marginX+4), rowHeight, ColorHighlight, false)
			textColor = ColorSelected
		}

		value := row.value
		if row.kind == rowParam {
			value = formatValue(cfg, cat, row.param)
		}
		labelRoom := width - 2*marginX
		if value != "" {
			value = fitText(face, value, width/2-marginX)
			valueWidth := text.BoundString(face, value).Dx() //nolint:staticcheck // TODO: migrate to text/v2
			text.Draw(screen, value, face, width-marginX-valueWidth, y, textColor)
			labelRoom -= valueWidth + 6
		}
		text.Draw(screen, fitText(face, row.label, labelRoom), face, marginX, y, textColor)
	}

	// More rows above or below
	if menu.Scroll > 0 {
		text.Draw(screen, "^", face, width-marginX-6, rowsTop+2, ColorTextDim)
	}
	if end < len(rows) {
		text.Draw(screen, "v", face, width-marginX-6, rowsTop+(maxVisibleRows+1)*rowHeight+2, ColorTextDim)
	}

	small := fonts.Small.Get()
	help := ""
	if menu.Selected < len(rows) {
		help = rows[menu.Selected].help
	}
	if menu.Capturing {
		help = cat.Textf("press_key", input.Button(menu.Selected))
	}
	helpColor := ColorTextDim
	if menu.Message != "" {
		help = menu.Message
		helpColor = ColorWarning
	}
	text.Draw(screen, fitText(small, help, width-2*marginX), small, marginX, height-hintMargin-10, helpColor)
	text.Draw(screen, fitText(small, hint, width-2*marginX), small, marginX, height-hintMargin, ColorTextDim)
}

// fitText shortens s with an ellipsis until it is at most maxWidth wide
func fitText(face font.Face, s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if text.BoundString(face, s).Dx() <= maxWidth { //nolint:staticcheck // TODO: migrate to text/v2
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		cut := string(r) + "..."
		if text.BoundString(face, cut).Dx() <= maxWidth { //nolint:staticcheck // TODO: migrate to text/v2
			return cut
		}
	}
	return ""
}

// OpenSettings opens the overlay on its main page.
func OpenSettings(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	if menu.IsOpen {
		return
	}
	*menu = components.SettingsMenuData{IsOpen: true, Page: components.PageMain}
	PlaySFX(e, components.SoundDecision)
	log.Debug("settings opened")
}

// CloseSettings closes the overlay. Nothing is saved here, see SaveOnExit.
func CloseSettings(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	menu.IsOpen = false
	menu.Capturing = false
	log.Debug("settings closed")
}

// IsSettingsOpen returns true if the settings menu overlay is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(ecs *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.SettingsMenu))
	}

	ent, _ := components.SettingsMenu.First(ecs.World)
	return components.SettingsMenu.Get(ent)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
