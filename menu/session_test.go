package menu

import (
	"reflect"
	"testing"

	"partymenu/data"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(testCatalog(), "BRUNCH")
	q := s.Query()
	if q.Category != data.MainCourse || !q.ShowVeg || !q.ShowNonVeg || q.Text != "" {
		t.Errorf("NewSession(BRUNCH).Query() = %+v, want MAIN COURSE with both flags on", q)
	}
	if s.Route().Screen != ListScreen {
		t.Errorf("NewSession starts on %v, want list", s.Route().Screen)
	}
}

func TestSession_SelectWingsAndPaneer(t *testing.T) {
	s := NewSession(testCatalog(), data.MainCourse)
	s.Toggle(1)
	s.SetCategory(data.Starter)
	s.Toggle(401)

	want := map[data.MealCategory]int{data.Starter: 1, data.MainCourse: 1, data.Dessert: 0, data.Sides: 0}
	if got := s.Counts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Counts() = %v, want %v", got, want)
	}
	if s.Total() != 2 {
		t.Errorf("Total() = %d, want 2", s.Total())
	}
	if got := ids(s.SelectedDishes()); !reflect.DeepEqual(got, []int{1, 401}) {
		t.Errorf("SelectedDishes() = %v, want [1 401]", got)
	}
	// Switching tabs keeps selections.
	s.SetCategory(data.Dessert)
	if !s.IsSelected(1) || !s.IsSelected(401) {
		t.Errorf("selections lost after switching tabs")
	}
}

func TestSession_ToggleUnknownDish(t *testing.T) {
	s := NewSession(testCatalog(), data.MainCourse)
	if s.Toggle(999) {
		t.Errorf("Toggle(999) = true, want false")
	}
	if s.Total() != 0 {
		t.Errorf("Total() = %d after toggling unknown dish, want 0", s.Total())
	}
}

func TestSession_VisibleFollowsQuery(t *testing.T) {
	s := NewSession(testCatalog(), data.MainCourse)
	s.SetSearch("paneer")
	if got := ids(s.Visible()); !reflect.DeepEqual(got, []int{1, 2, 4}) {
		t.Errorf("Visible() for paneer = %v, want [1 2 4]", got)
	}
	s.SetShowVeg(false)
	s.SetShowNonVeg(false)
	if got := s.Visible(); len(got) != 0 {
		t.Errorf("Visible() with both flags off = %v, want empty", ids(got))
	}
	s.SetCategory("BRUNCH")
	if s.Query().Category != data.MainCourse {
		t.Errorf("SetCategory(BRUNCH) changed category to %q", s.Query().Category)
	}
}

func TestSession_DetailUnknownDish(t *testing.T) {
	s := NewSession(testCatalog(), data.MainCourse)
	s.OpenDetail(999)

	d := s.Detail()
	if d.Found {
		t.Errorf("Detail().Found = true for 999")
	}
	if d.Dish.Name != "Unknown" || d.Dish.Description != "" {
		t.Errorf("Detail().Dish = %+v, want Unknown placeholder", d.Dish)
	}
	if d.Ingredients == nil || len(d.Ingredients) != 0 {
		t.Errorf("Detail().Ingredients = %#v, want empty", d.Ingredients)
	}
	if s.Location() != "/ingredient/999" {
		t.Errorf("Location() = %q, want /ingredient/999", s.Location())
	}
}

func TestSession_DetailAndBackKeepsListState(t *testing.T) {
	s := NewSession(testCatalog(), data.Starter)
	s.SetSearch("chi")
	s.SetShowVeg(false)

	s.OpenDetail(401)
	d := s.Detail()
	if !d.Found || d.Dish.Name != "Chicken Wings" || len(d.Ingredients) != 1 {
		t.Errorf("Detail() = %+v, want Chicken Wings with one ingredient", d)
	}

	s.Back()
	if s.Route().Screen != ListScreen {
		t.Fatalf("Back() left us on %v", s.Route().Screen)
	}
	q := s.Query()
	if q.Category != data.Starter || q.Text != "chi" || q.ShowVeg || !q.ShowNonVeg {
		t.Errorf("Query() after Back() = %+v, want the pre-detail filters", q)
	}
}

func TestSession_Navigate(t *testing.T) {
	s := NewSession(testCatalog(), data.MainCourse)
	if err := s.Navigate("/ingredient/1"); err != nil {
		t.Fatalf("Navigate returned error: %v", err)
	}
	if d := s.Detail(); d.Dish.ID != 1 || len(d.Ingredients) != 2 {
		t.Errorf("Detail() after Navigate = %+v", d)
	}
}

func TestSession_NavigateNonNumericID(t *testing.T) {
	for _, loc := range []string{"/ingredient/abc", "/ingredient/12x"} {
		s := NewSession(testCatalog(), data.MainCourse)
		if err := s.Navigate(loc); err != nil {
			t.Fatalf("Navigate(%q) returned error: %v", loc, err)
		}
		if s.Route().Screen != DetailScreen {
			t.Errorf("Navigate(%q) screen = %v, want detail", loc, s.Route().Screen)
		}
		if s.Location() != loc {
			t.Errorf("Location() = %q, want %q", s.Location(), loc)
		}
		d := s.Detail()
		if d.Found || d.Dish.Name != data.UnknownName || d.Dish.Description != "" {
			t.Errorf("Detail() after Navigate(%q) = %+v, want Unknown placeholder", loc, d)
		}
		if d.Ingredients == nil || len(d.Ingredients) != 0 {
			t.Errorf("Detail().Ingredients = %#v, want empty non-nil slice", d.Ingredients)
		}
	}
}
