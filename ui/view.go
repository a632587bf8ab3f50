// ui/view.go
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"partymenu/data"
	"partymenu/menu"
)

// menuView holds every widget the window updates after a state change.
// All state lives in session; the widgets are rebuilt from it by refresh().
type menuView struct {
	session *menu.Session
	win     fyne.Window

	// List screen
	listScreen    fyne.CanvasObject
	tabButtons    map[data.MealCategory]*widget.Button
	searchEntry   *widget.Entry
	vegCheck      *widget.Check
	nonVegCheck   *widget.Check
	dishBox       *fyne.Container // grid of dish cards
	emptyLabel    *widget.Label
	cards         []dishCard
	locationLabel *widget.Label

	// Detail screen
	detailScreen     fyne.CanvasObject
	detailName       *widget.Label
	detailDesc       *widget.Label
	ingredientBox    *fyne.Container
	detailBackButton *widget.Button

	// Summary bar, visible on both screens
	summaryTable   *widget.Table
	summaryData    [][]string
	totalLabel     *widget.Label
	continueButton *widget.Button
}

// dishCard is one rendered dish and its two actions.
type dishCard struct {
	dishID      int
	card        *widget.Card
	toggle      *widget.Button
	ingredients *widget.Button
}
