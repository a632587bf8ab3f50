package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"partymenu/data"
)

//
// The ingredient screen. formatIngredientLines is plain text logic;
// renderIngredientLines turns those lines into widgets.
//

const noIngredientsText = "No ingredient data available."

// formatIngredientLines renders each ingredient as "name — qty". An empty list
// yields the single "no data" line.
func formatIngredientLines(list []data.Ingredient) []string {
	if len(list) == 0 {
		return []string{noIngredientsText}
	}
	lines := make([]string, len(list))
	for i, ing := range list {
		lines[i] = fmt.Sprintf("%s — %s", ing.Name, ing.Quantity)
	}
	return lines
}

// renderIngredientLines lays out one bulleted label per line.
func renderIngredientLines(box *fyne.Container, lines []string) {
	objects := make([]fyne.CanvasObject, len(lines))
	for i, ln := range lines {
		lbl := widget.NewLabel("• " + ln)
		lbl.Wrapping = fyne.TextWrapWord
		objects[i] = lbl
	}
	box.Objects = objects
	box.Refresh()
}

func (v *menuView) buildDetailScreen() fyne.CanvasObject {
	v.detailBackButton = widget.NewButton("Back", v.back)
	v.detailName = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.detailDesc = widget.NewLabel("")
	v.detailDesc.Wrapping = fyne.TextWrapWord
	v.ingredientBox = container.NewVBox()

	heading := widget.NewLabelWithStyle("Ingredients", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	top := container.NewVBox(
		container.NewHBox(v.detailBackButton),
		v.detailName,
		v.detailDesc,
		widget.NewSeparator(),
		heading,
	)
	screen := container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.ingredientBox))
	screen.Hide()
	return screen
}

func (v *menuView) refreshDetail() {
	d := v.session.Detail()
	v.detailName.SetText(d.Dish.Name)
	v.detailDesc.SetText(d.Dish.Description)
	renderIngredientLines(v.ingredientBox, formatIngredientLines(d.Ingredients))
}
