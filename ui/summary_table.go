package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"partymenu/data"
	"partymenu/menu"
)

//
// The summary bar sits under both screens: a two-column table of
// per-category counts, the running total and the Continue button.
//

// summaryRows builds the table rows, header first, one row per category in tab order.
func summaryRows(counts map[data.MealCategory]int) [][]string {
	rows := [][]string{{"Meal", "Selected"}}
	for _, c := range data.MealCategories() {
		rows = append(rows, []string{string(c), strconv.Itoa(counts[c])})
	}
	return rows
}

func totalText(total int) string {
	return fmt.Sprintf("Total: %d", total)
}

// selectionSummary is the text of the Continue dialog.
func selectionSummary(s *menu.Session) string {
	dishes := s.SelectedDishes()
	if len(dishes) == 0 {
		return "No dishes selected yet."
	}
	var b strings.Builder
	for _, c := range data.MealCategories() {
		var names []string
		for _, d := range dishes {
			if d.Category == c {
				names = append(names, d.Name)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", c, strings.Join(names, ", "))
		}
	}
	b.WriteString(totalText(len(dishes)))
	return b.String()
}

func (v *menuView) buildSummaryBar() fyne.CanvasObject {
	v.summaryData = summaryRows(nil)
	v.summaryTable = widget.NewTable(
		func() (int, int) {
			return len(v.summaryData), 2
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			lbl := cell.(*widget.Label)
			if id.Row < len(v.summaryData) && id.Col < len(v.summaryData[id.Row]) {
				lbl.SetText(v.summaryData[id.Row][id.Col])
				lbl.TextStyle.Bold = id.Row == 0
				if id.Col == 0 {
					lbl.Alignment = fyne.TextAlignLeading
				} else {
					lbl.Alignment = fyne.TextAlignTrailing
				}
			} else {
				lbl.SetText("")
			}
		},
	)
	v.summaryTable.SetColumnWidth(0, 160)
	v.summaryTable.SetColumnWidth(1, 90)

	v.totalLabel = widget.NewLabelWithStyle(totalText(0), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	v.continueButton = widget.NewButton("Continue", func() {
		dialog.ShowInformation("Your selection", selectionSummary(v.session), v.win)
	})
	v.continueButton.Importance = widget.HighImportance

	tableScroll := container.NewHScroll(v.summaryTable)
	tableScroll.SetMinSize(fyne.NewSize(260, 150))
	right := container.NewVBox(v.totalLabel, v.continueButton)
	return container.NewBorder(widget.NewSeparator(), nil, nil, right, tableScroll)
}

func (v *menuView) refreshSummary() {
	v.summaryData = summaryRows(v.session.Counts())
	v.summaryTable.Refresh()
	v.totalLabel.SetText(totalText(v.session.Total()))
}
