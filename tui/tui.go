// Package tui is the terminal frontend: the same two screens and summary bar
// as the desktop window, drawn on a tcell screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"

	"partymenu/data"
	"partymenu/menu"
)

const (
	title     = "Party Menu Selection"
	emptyText = "No dishes match your filters."
	noIngText = "No ingredient data available."
	helpList  = "←/→ tab  ↑/↓ move  Space add/remove  Enter ingredients  F2 Veg  F3 Non-Veg  Ctrl-C quit"
	helpDet   = "Esc/Backspace back  Ctrl-C quit"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleActive   = tcell.StyleDefault.Reverse(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// line is one row of output before it is painted.
type line struct {
	text  string
	style tcell.Style
}

// App drives a menu.Session from terminal key events.
type App struct {
	screen  tcell.Screen
	session *menu.Session
	cursor  int // index into the visible dishes
}

// New wraps an initialized screen.
func New(screen tcell.Screen, session *menu.Session) *App {
	return &App{screen: screen, session: session}
}

// Run draws and processes events until the user quits.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev.Key(), ev.Rune(), ev.Modifiers()) {
				return
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
		a.draw()
	}
}

// handleKey applies one keystroke and reports whether the app keeps running.
func (a *App) handleKey(key tcell.Key, r rune, mod tcell.ModMask) bool {
	if key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q' && mod&tcell.ModCtrl != 0) {
		return false
	}
	if a.session.Route().Screen == menu.DetailScreen {
		switch key {
		case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
			a.session.Back()
		}
		return true
	}

	visible := a.session.Visible()
	switch key {
	case tcell.KeyLeft:
		a.shiftTab(-1)
	case tcell.KeyRight, tcell.KeyTab:
		a.shiftTab(1)
	case tcell.KeyUp:
		a.cursor--
	case tcell.KeyDown:
		a.cursor++
	case tcell.KeyEnter:
		if a.cursor < len(visible) {
			a.session.OpenDetail(visible[a.cursor].ID)
			log.WithField("location", a.session.Location()).Debug("Opened ingredient screen")
		}
	case tcell.KeyF2:
		a.session.SetShowVeg(!a.session.Query().ShowVeg)
	case tcell.KeyF3:
		a.session.SetShowNonVeg(!a.session.Query().ShowNonVeg)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		text := []rune(a.session.Query().Text)
		if len(text) > 0 {
			a.session.SetSearch(string(text[:len(text)-1]))
		}
	case tcell.KeyRune:
		// Space is the selection key, so search text never contains one.
		if r == ' ' {
			if a.cursor < len(visible) {
				a.session.Toggle(visible[a.cursor].ID)
			}
			break
		}
		a.session.SetSearch(a.session.Query().Text + string(r))
	}
	a.clampCursor()
	return true
}

func (a *App) shiftTab(delta int) {
	cats := data.MealCategories()
	cur := 0
	for i, c := range cats {
		if c == a.session.Query().Category {
			cur = i
		}
	}
	next := (cur + delta + len(cats)) % len(cats)
	a.session.SetCategory(cats[next])
	a.cursor = 0
}

func (a *App) clampCursor() {
	n := len(a.session.Visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// lines renders the current state as rows of text; the summary rows come last.
func (a *App) lines() []line {
	out := []line{{text: fmt.Sprintf("%s    %s", title, a.session.Location()), style: styleTitle}}
	if a.session.Route().Screen == menu.DetailScreen {
		out = append(out, a.detailLines()...)
	} else {
		out = append(out, a.listLines()...)
	}
	return out
}

func (a *App) listLines() []line {
	q := a.session.Query()
	counts := a.session.Counts()

	var tabs []string
	for _, c := range data.MealCategories() {
		label := fmt.Sprintf(" %s (%d) ", c, counts[c])
		if c == q.Category {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	out := []line{
		{text: strings.Join(tabs, " "), style: styleDefault},
		{text: fmt.Sprintf("Search: %s_   %s Veg   %s Non-Veg", q.Text, checkbox(q.ShowVeg), checkbox(q.ShowNonVeg)), style: styleDefault},
		{},
	}

	visible := a.session.Visible()
	if len(visible) == 0 {
		out = append(out, line{text: emptyText, style: styleDim})
	}
	for i, d := range visible {
		mark := "[ ]"
		style := styleDefault
		if a.session.IsSelected(d.ID) {
			mark = "[x]"
			style = styleSelected
		}
		if i == a.cursor {
			style = styleActive
		}
		text := fmt.Sprintf("%s %s", mark, d.Name)
		if d.Description != "" {
			text += " — " + d.Description
		}
		out = append(out, line{text: text, style: style})
	}
	return out
}

func (a *App) detailLines() []line {
	det := a.session.Detail()
	out := []line{
		{text: "< Back", style: styleDim},
		{text: det.Dish.Name, style: styleTitle},
		{text: det.Dish.Description, style: styleDefault},
		{},
		{text: "Ingredients", style: styleTitle},
	}
	if len(det.Ingredients) == 0 {
		out = append(out, line{text: "  " + noIngText, style: styleDim})
	}
	for _, ing := range det.Ingredients {
		out = append(out, line{text: fmt.Sprintf("  • %s — %s", ing.Name, ing.Quantity), style: styleDefault})
	}
	return out
}

// summaryLines is the bar kept at the bottom of both screens.
func (a *App) summaryLines() []line {
	counts := a.session.Counts()
	var parts []string
	for _, c := range data.MealCategories() {
		parts = append(parts, fmt.Sprintf("%s %d", c, counts[c]))
	}
	help := helpList
	if a.session.Route().Screen == menu.DetailScreen {
		help = helpDet
	}
	return []line{
		{text: fmt.Sprintf("%s   Total: %d", strings.Join(parts, " | "), a.session.Total()), style: styleTitle},
		{text: help, style: styleDim},
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	summary := a.summaryLines()
	body := a.lines()
	room := height - len(summary)
	if room < 0 {
		room = 0
	}
	if len(body) > room {
		body = body[:room]
	}
	for y, ln := range body {
		drawText(a.screen, 0, y, width, ln.style, ln.text)
	}
	for i, ln := range summary {
		drawText(a.screen, 0, height-len(summary)+i, width, ln.style, ln.text)
	}
	a.screen.Show()
}

// drawText writes text from (x, y), cutting it at maxX.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	if y < 0 {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}
