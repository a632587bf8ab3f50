package menu

import (
	log "github.com/sirupsen/logrus"

	"partymenu/data"
)

// DetailModel is everything the ingredient screen shows.
type DetailModel struct {
	Dish        data.Dish
	Ingredients []data.Ingredient
	Found       bool // false when Dish is the Unknown placeholder
}

// Session owns all mutable UI state: filter parameters, selections and the
// router. Frontends call its setters on input events and re-render from its
// getters afterwards. It is not safe for concurrent use.
type Session struct {
	catalog   *data.Catalog
	query     Query
	selection *Selection
	router    Router
}

// NewSession starts on the list screen with both diet flags on, an empty
// search and category as the active tab. An invalid category falls back to
// MAIN COURSE.
func NewSession(c *data.Catalog, category data.MealCategory) *Session {
	if !category.Valid() {
		category = data.MainCourse
	}
	return &Session{
		catalog:   c,
		query:     Query{Category: category, ShowVeg: true, ShowNonVeg: true},
		selection: NewSelection(),
	}
}

// Catalog returns the catalog the session browses.
func (s *Session) Catalog() *data.Catalog { return s.catalog }

// Query returns the current filter parameters.
func (s *Session) Query() Query { return s.query }

// SetCategory switches the active tab. Unknown categories are ignored.
func (s *Session) SetCategory(c data.MealCategory) {
	if !c.Valid() {
		log.WithField("category", c).Debug("Ignoring unknown category")
		return
	}
	s.query.Category = c
}

func (s *Session) SetSearch(text string) { s.query.Text = text }
func (s *Session) SetShowVeg(on bool)    { s.query.ShowVeg = on }
func (s *Session) SetShowNonVeg(on bool) { s.query.ShowNonVeg = on }

// Visible returns the dishes on the list screen under the current query.
func (s *Session) Visible() []data.Dish {
	return Filter(s.catalog.Dishes(), s.query)
}

// Toggle flips the selection of a catalog dish and returns its new state.
// IDs that are not in the catalog are never selected.
func (s *Session) Toggle(id int) bool {
	d, ok := s.catalog.Dish(id)
	if !ok {
		log.WithField("dish_id", id).Debug("Ignoring toggle of unknown dish")
		return false
	}
	on := s.selection.Toggle(id)
	log.WithField("dish_id", id).Debugf("%s selected=%v", d.Name, on)
	return on
}

func (s *Session) IsSelected(id int) bool { return s.selection.IsSelected(id) }

// Total is the number of selected dishes.
func (s *Session) Total() int { return s.selection.Total() }

// Counts is the per-category selection count; every category is present.
func (s *Session) Counts() map[data.MealCategory]int {
	return s.selection.CountsByCategory(s.catalog)
}

// SelectedDishes returns the selected dishes in catalog order.
func (s *Session) SelectedDishes() []data.Dish {
	var out []data.Dish
	for _, d := range s.catalog.Dishes() {
		if s.selection.IsSelected(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Route returns the active route.
func (s *Session) Route() Route { return s.router.Current() }

// Location returns the shareable address of the active route.
func (s *Session) Location() string { return s.router.Current().Location() }

func (s *Session) OpenDetail(id int) { s.router.OpenDetail(id) }
func (s *Session) Back()             { s.router.Back() }

// Navigate jumps to a location such as "/ingredient/401".
func (s *Session) Navigate(loc string) error { return s.router.Navigate(loc) }

// Detail builds the ingredient screen for the active route. Off the detail
// screen, or for an unknown dish, it returns the Unknown placeholder.
func (s *Session) Detail() DetailModel {
	r := s.router.Current()
	if !r.HasDish() {
		return DetailModel{Dish: data.UnknownDish(0), Ingredients: []data.Ingredient{}}
	}
	d, found := s.catalog.Dish(r.DishID)
	if !found {
		d = data.UnknownDish(r.DishID)
	}
	return DetailModel{
		Dish:        d,
		Ingredients: s.catalog.Ingredients(r.DishID),
		Found:       found,
	}
}
