package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"partymenu/data"
)

const emptyListText = "No dishes match your filters."

var (
	cardSize      = fyne.NewSize(400, 170)
	thumbnailSize = fyne.NewSize(72, 72)
	placeholderBg = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// toggleLabel is the selection button text for a dish.
func toggleLabel(selected bool) string {
	if selected {
		return "Remove"
	}
	return "Add"
}

func (v *menuView) buildListScreen() fyne.CanvasObject {
	tabs := v.buildTabs()
	controls := v.buildControls()

	v.emptyLabel = widget.NewLabel(emptyListText)
	v.emptyLabel.Hide()
	v.dishBox = container.NewGridWrap(cardSize)

	list := container.NewVScroll(container.NewVBox(v.emptyLabel, v.dishBox))
	return container.NewBorder(container.NewVBox(tabs, controls), nil, nil, nil, list)
}

// refreshDishes rebuilds one card per visible dish.
func (v *menuView) refreshDishes() {
	visible := v.session.Visible()
	v.cards = v.cards[:0]
	objects := make([]fyne.CanvasObject, 0, len(visible))
	for _, d := range visible {
		dc := v.newDishCard(d)
		v.cards = append(v.cards, dc)
		objects = append(objects, dc.card)
	}
	v.dishBox.Objects = objects
	v.dishBox.Refresh()

	if len(visible) == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
}

func (v *menuView) newDishCard(d data.Dish) dishCard {
	dc := dishCard{dishID: d.ID}
	dc.toggle = widget.NewButton(toggleLabel(v.session.IsSelected(d.ID)), func() {
		v.session.Toggle(d.ID)
		v.refresh()
	})
	if v.session.IsSelected(d.ID) {
		dc.toggle.Importance = widget.SuccessImportance
	}
	dc.ingredients = widget.NewButton("Ingredient", func() {
		v.openDetail(d.ID)
	})
	dc.ingredients.Importance = widget.LowImportance

	actions := container.NewHBox(dc.toggle, dc.ingredients)
	body := container.NewBorder(nil, nil, dishImage(d), nil, container.NewVBox(actions))
	dc.card = widget.NewCard(d.Name, d.Description, body)
	return dc
}

// dishImage returns the dish picture, or a grey "Img" box when it has none
// or the reference cannot be parsed.
func dishImage(d data.Dish) fyne.CanvasObject {
	if d.Image.Valid && d.Image.String != "" {
		uri, err := imageURI(d.Image.String)
		if err == nil {
			img := canvas.NewImageFromURI(uri)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(thumbnailSize)
			return img
		}
		log.WithField("dish_id", d.ID).Printf("Bad image reference %q: %v", d.Image.String, err)
	}
	bg := canvas.NewRectangle(placeholderBg)
	bg.SetMinSize(thumbnailSize)
	bg.CornerRadius = 6
	return container.NewStack(bg, widget.NewLabelWithStyle("Img", fyne.TextAlignCenter, fyne.TextStyle{}))
}

func imageURI(ref string) (fyne.URI, error) {
	if strings.Contains(ref, "://") {
		return storage.ParseURI(ref)
	}
	return storage.NewFileURI(ref), nil
}
