package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"partymenu/menu"
)

// AppTitle is the window title and the heading of the main screen.
const AppTitle = "Party Menu Selection"

// BuildUI creates and returns the main window of the application.
// It builds both screens and the summary bar and renders the session's
// current state.
func BuildUI(app fyne.App, session *menu.Session) fyne.Window {
	v := newMenuView(app, session)
	return v.win
}

func newMenuView(app fyne.App, session *menu.Session) *menuView {
	v := &menuView{session: session}
	v.win = app.NewWindow(AppTitle)
	v.win.SetMaster()

	v.listScreen = v.buildListScreen()
	v.detailScreen = v.buildDetailScreen()
	summary := v.buildSummaryBar()

	heading := widget.NewLabelWithStyle(AppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.locationLabel = widget.NewLabel("")
	top := container.NewBorder(nil, nil, heading, v.locationLabel)

	screens := container.NewStack(v.listScreen, v.detailScreen)
	v.win.SetContent(container.NewBorder(top, summary, nil, nil, screens))
	v.win.Resize(fyne.NewSize(900, 700))

	v.refresh()
	return v
}

// refresh re-renders everything from the session. Calling it twice in a row
// produces the same widgets.
func (v *menuView) refresh() {
	route := v.session.Route()
	v.locationLabel.SetText(route.Location())

	switch route.Screen {
	case menu.DetailScreen:
		v.listScreen.Hide()
		v.refreshDetail()
		v.detailScreen.Show()
	default:
		v.detailScreen.Hide()
		v.refreshTabs()
		v.refreshDishes()
		v.listScreen.Show()
	}
	v.refreshSummary()
}

func (v *menuView) openDetail(dishID int) {
	v.session.OpenDetail(dishID)
	log.WithField("location", v.session.Location()).Debug("Opened ingredient screen")
	v.refresh()
}

func (v *menuView) back() {
	v.session.Back()
	v.refresh()
}
