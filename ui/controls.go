package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"partymenu/data"
)

//
// List-screen controls: the category tab row, the search box and the two
// diet checkboxes. Each control writes into the session and re-renders.
//

// tabLabel is the text of a category tab, e.g. "STARTER (2)".
func tabLabel(c data.MealCategory, count int) string {
	return fmt.Sprintf("%s (%d)", c, count)
}

func (v *menuView) buildTabs() fyne.CanvasObject {
	v.tabButtons = make(map[data.MealCategory]*widget.Button)
	row := container.NewGridWithColumns(len(data.MealCategories()))
	for _, c := range data.MealCategories() {
		c := c // per-iteration copy; go.mod targets go 1.21 loop semantics
		btn := widget.NewButton(tabLabel(c, 0), func() {
			if v.session.Query().Category == c {
				return
			}
			log.Println("Selected tab:", c)
			v.session.SetCategory(c)
			v.refresh()
		})
		v.tabButtons[c] = btn
		row.Add(btn)
	}
	return row
}

func (v *menuView) refreshTabs() {
	counts := v.session.Counts()
	active := v.session.Query().Category
	for c, btn := range v.tabButtons {
		btn.SetText(tabLabel(c, counts[c]))
		if c == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (v *menuView) buildControls() fyne.CanvasObject {
	q := v.session.Query()

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder("Search dishes...")
	v.searchEntry.SetText(q.Text)
	v.searchEntry.OnChanged = func(text string) {
		v.session.SetSearch(text)
		v.refresh()
	}

	// Initial state is set before the callbacks so construction does not render.
	v.vegCheck = widget.NewCheck("Veg", nil)
	v.vegCheck.SetChecked(q.ShowVeg)
	v.vegCheck.OnChanged = func(on bool) {
		v.session.SetShowVeg(on)
		v.refresh()
	}
	v.nonVegCheck = widget.NewCheck("Non-Veg", nil)
	v.nonVegCheck.SetChecked(q.ShowNonVeg)
	v.nonVegCheck.OnChanged = func(on bool) {
		v.session.SetShowNonVeg(on)
		v.refresh()
	}

	toggles := container.NewHBox(v.vegCheck, v.nonVegCheck)
	return container.NewBorder(nil, nil, nil, toggles, v.searchEntry)
}
